package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Question difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Topic groups free topic-wise questions.
type Topic struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Question belongs to either a topic (free tier) or a company (premium
// tier); exactly one of TopicID/CompanyID is set.
type Question struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TopicID    string    `gorm:"type:varchar(36);default:null;index" json:"topic_id,omitempty"`
	CompanyID  string    `gorm:"type:varchar(36);default:null;index" json:"company_id,omitempty"`
	Question   string    `gorm:"type:text;not null" json:"question" validate:"required"`
	Answer     string    `gorm:"type:text" json:"answer,omitempty"`
	Difficulty string    `gorm:"type:varchar(20);not null" json:"difficulty" validate:"oneof=easy medium hard"`
	Category   string    `gorm:"type:varchar(50);default:null" json:"category,omitempty"`
	Tags       string    `gorm:"type:varchar(255);default:''" json:"tags"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Company is a question bank owner; QuestionCount is denormalized and
// recounted on admin writes.
type Company struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"name" validate:"required,min=1,max=150"`
	LogoURL       string    `gorm:"type:varchar(255);default:null" json:"logo_url,omitempty"`
	QuestionCount int64     `gorm:"not null;default:0" json:"question_count"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Experience is an interview write-up; the full text is premium-gated.
type Experience struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CompanyID   string    `gorm:"type:varchar(36);not null;index" json:"company_id" validate:"required"`
	CompanyName string    `gorm:"type:varchar(150);not null" json:"company_name" validate:"required"`
	Role        string    `gorm:"type:varchar(150);not null" json:"role" validate:"required"`
	Rounds      int       `gorm:"not null;default:1" json:"rounds" validate:"min=1"`
	Experience  string    `gorm:"type:text;not null" json:"experience" validate:"required"`
	PostedAt    time.Time `gorm:"autoCreateTime" json:"posted_at"`
}

// Alumni is a directory entry whose contact fields are premium-gated.
type Alumni struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null;index" json:"name" validate:"required"`
	Company   string    `gorm:"type:varchar(150);not null;index" json:"company" validate:"required"`
	Role      string    `gorm:"type:varchar(150)" json:"role"`
	Batch     string    `gorm:"type:varchar(20)" json:"batch"`
	Email     string    `gorm:"type:varchar(200)" json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	LinkedIn  string    `gorm:"type:varchar(255)" json:"linkedin,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Masked returns a copy with contact fields obscured for non-premium
// viewers. The reveal endpoint returns the unmasked record.
func (a Alumni) Masked() Alumni {
	a.Email = maskEmail(a.Email)
	a.Phone = maskPhone(a.Phone)
	a.LinkedIn = ""
	return a
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return ""
	}
	return email[:1] + strings.Repeat("*", at-1) + "@***"
}

func maskPhone(phone string) string {
	if len(phone) < 4 {
		return ""
	}
	return strings.Repeat("*", len(phone)-2) + phone[len(phone)-2:]
}

func validateStruct(v any) error {
	return validator.New().Struct(v)
}

// NewTopic builds a topic with a generated id.
func NewTopic(name, description string) (*Topic, error) {
	t := &Topic{ID: uuid.NewString(), Name: name, Description: description}
	if err := validateStruct(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (q *Question) Validate() error   { return validateStruct(q) }
func (c *Company) Validate() error    { return validateStruct(c) }
func (e *Experience) Validate() error { return validateStruct(e) }
func (a *Alumni) Validate() error     { return validateStruct(a) }
