package repository

import (
	"strings"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"gorm.io/gorm"
)

// topicRepository implements the TopicRepository interface
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository instance
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

func (r *topicRepository) GetByID(id string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.Where("id = ?", id).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) List() ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Order("name ASC").Find(&topics).Error
	return topics, err
}

func (r *topicRepository) Update(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

func (r *topicRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Topic{}).Error
}

// questionRepository implements the QuestionRepository interface
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository instance
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id string) (*models.Question, error) {
	var question models.Question
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// ListByTopic returns topic-wise questions, optionally filtered by difficulty.
func (r *questionRepository) ListByTopic(topicID, difficulty string) ([]models.Question, error) {
	q := r.db.Where("topic_id IS NOT NULL AND topic_id <> ''")
	if topicID != "" {
		q = q.Where("topic_id = ?", topicID)
	}
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	var questions []models.Question
	err := q.Order("created_at ASC").Find(&questions).Error
	return questions, err
}

// ListByCompany returns a company's question bank, optionally filtered by category.
func (r *questionRepository) ListByCompany(companyID, category string) ([]models.Question, error) {
	q := r.db.Where("company_id = ?", companyID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var questions []models.Question
	err := q.Order("created_at ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) ListByIDs(ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return []models.Question{}, nil
	}
	var questions []models.Question
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) ListAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Question{}).Error
}

func (r *questionRepository) CountByCompany(companyID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

// companyRepository implements the CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) GetByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// Delete removes a company and its question bank together.
func (r *companyRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Company{}).Error
	})
}

// SetQuestionCount writes the denormalized question count after admin edits.
func (r *companyRepository) SetQuestionCount(id string, count int64) error {
	return r.db.Model(&models.Company{}).Where("id = ?", id).Update("question_count", count).Error
}

func (r *companyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Count(&count).Error
	return count, err
}

// experienceRepository implements the ExperienceRepository interface
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository instance
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

func (r *experienceRepository) GetByID(id string) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.Where("id = ?", id).First(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) List(companyID string) ([]models.Experience, error) {
	q := r.db.Order("posted_at DESC")
	if companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}
	var experiences []models.Experience
	err := q.Find(&experiences).Error
	return experiences, err
}

func (r *experienceRepository) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

func (r *experienceRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Experience{}).Error
}

func (r *experienceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Experience{}).Count(&count).Error
	return count, err
}

// alumniRepository implements the AlumniRepository interface
type alumniRepository struct {
	db *gorm.DB
}

// NewAlumniRepository creates a new alumni repository instance
func NewAlumniRepository(db *gorm.DB) AlumniRepository {
	return &alumniRepository{db: db}
}

func (r *alumniRepository) Create(alumni *models.Alumni) error {
	return r.db.Create(alumni).Error
}

func (r *alumniRepository) GetByID(id string) (*models.Alumni, error) {
	var alumni models.Alumni
	if err := r.db.Where("id = ?", id).First(&alumni).Error; err != nil {
		return nil, err
	}
	return &alumni, nil
}

// Search filters the directory by partial name and company match.
func (r *alumniRepository) Search(name, company string) ([]models.Alumni, error) {
	q := r.db.Order("name ASC")
	if n := strings.TrimSpace(name); n != "" {
		q = q.Where("name LIKE ?", "%"+n+"%")
	}
	if c := strings.TrimSpace(company); c != "" {
		q = q.Where("company LIKE ?", "%"+c+"%")
	}
	var alumni []models.Alumni
	err := q.Find(&alumni).Error
	return alumni, err
}

func (r *alumniRepository) Update(alumni *models.Alumni) error {
	return r.db.Save(alumni).Error
}

func (r *alumniRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Alumni{}).Error
}
