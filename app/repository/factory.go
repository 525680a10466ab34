package repository

import (
	"sync"

	"gorm.io/gorm"
)

// NewRepositories creates all repository implementations bound to one DB handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Session:    NewSessionRepository(db),
		Topic:      NewTopicRepository(db),
		Question:   NewQuestionRepository(db),
		Company:    NewCompanyRepository(db),
		Experience: NewExperienceRepository(db),
		Alumni:     NewAlumniRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetSessionRepository returns the session repository instance
func (f *Factory) GetSessionRepository() SessionRepository {
	return f.GetRepositories().Session
}

// GetTopicRepository returns the topic repository instance
func (f *Factory) GetTopicRepository() TopicRepository {
	return f.GetRepositories().Topic
}

// GetQuestionRepository returns the question repository instance
func (f *Factory) GetQuestionRepository() QuestionRepository {
	return f.GetRepositories().Question
}

// GetCompanyRepository returns the company repository instance
func (f *Factory) GetCompanyRepository() CompanyRepository {
	return f.GetRepositories().Company
}

// GetExperienceRepository returns the experience repository instance
func (f *Factory) GetExperienceRepository() ExperienceRepository {
	return f.GetRepositories().Experience
}

// GetAlumniRepository returns the alumni repository instance
func (f *Factory) GetAlumniRepository() AlumniRepository {
	return f.GetRepositories().Alumni
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
