package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Name      string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=1,max=150"`
	Picture   string         `gorm:"type:varchar(255);default:null" json:"picture,omitempty" validate:"max=255"`
	IsPremium bool           `gorm:"not null;default:false" json:"is_premium"`
	IsAdmin   bool           `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// NewUser builds a user record for a first-time sign-in. Entitlement
// flags default to false; admins are provisioned via ADMIN_EMAILS, not
// via payment.
func NewUser(email, name, picture string) (*User, error) {
	u := &User{
		ID:      uuid.NewString(),
		Email:   email,
		Name:    name,
		Picture: picture,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// Bookmark is one saved question for one user. Membership is a unique
// (user_id, question_id) pair so concurrent duplicate toggles cannot
// produce duplicate rows.
type Bookmark struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(36);not null;index:ux_bookmarks_user_question,unique,priority:1" json:"user_id"`
	QuestionID string    `gorm:"type:varchar(36);not null;index:ux_bookmarks_user_question,unique,priority:2" json:"question_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
