package repository

import (
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
)

// UserRepository provides access to user records and their entitlement
// flags. Per-user writes are serialized by the database (unique keys and
// single-row UPDATEs), so callers do not hold application-level locks.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	SetPremium(userID string, premium bool) error
	SetAdmin(userID string, admin bool) error
	ToggleBookmark(userID, questionID string) (bool, error)
	ListBookmarkedQuestionIDs(userID string) ([]string, error)
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	CountPremium() (int64, error)
}

// SessionRepository stores issued bearer credentials.
type SessionRepository interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
	DeleteExpired() (int64, error)
}

// Payment orders have no repository here: their lifecycle (create,
// conditional verify, premium grant) is owned by internal/pkg/payment,
// which keeps its own repository so the grant transaction has a single
// home.

// TopicRepository is plain CRUD for free topic content.
type TopicRepository interface {
	Create(topic *models.Topic) error
	GetByID(id string) (*models.Topic, error)
	List() ([]models.Topic, error)
	Update(topic *models.Topic) error
	Delete(id string) error
}

// QuestionRepository is CRUD plus the filtered reads the API serves.
type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id string) (*models.Question, error)
	ListByTopic(topicID, difficulty string) ([]models.Question, error)
	ListByCompany(companyID, category string) ([]models.Question, error)
	ListByIDs(ids []string) ([]models.Question, error)
	ListAll() ([]models.Question, error)
	Update(question *models.Question) error
	Delete(id string) error
	CountByCompany(companyID string) (int64, error)
}

// CompanyRepository is CRUD for company question banks.
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id string) (*models.Company, error)
	List() ([]models.Company, error)
	Update(company *models.Company) error
	Delete(id string) error
	SetQuestionCount(id string, count int64) error
	Count() (int64, error)
}

// ExperienceRepository is CRUD for interview write-ups.
type ExperienceRepository interface {
	Create(experience *models.Experience) error
	GetByID(id string) (*models.Experience, error)
	List(companyID string) ([]models.Experience, error)
	Update(experience *models.Experience) error
	Delete(id string) error
	Count() (int64, error)
}

// AlumniRepository is CRUD plus the name/company search the directory uses.
type AlumniRepository interface {
	Create(alumni *models.Alumni) error
	GetByID(id string) (*models.Alumni, error)
	Search(name, company string) ([]models.Alumni, error)
	Update(alumni *models.Alumni) error
	Delete(id string) error
}

// Repositories bundles all repository instances.
type Repositories struct {
	User       UserRepository
	Session    SessionRepository
	Topic      TopicRepository
	Question   QuestionRepository
	Company    CompanyRepository
	Experience ExperienceRepository
	Alumni     AlumniRepository
}
