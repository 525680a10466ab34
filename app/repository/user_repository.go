package repository

import (
	"strings"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetPremium writes the premium flag. Setting an already-equal value is
// a no-op success, which keeps the call idempotent under replays.
func (r *userRepository) SetPremium(userID string, premium bool) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_premium", premium).Error
}

// SetAdmin writes the admin flag (out-of-band provisioning only).
func (r *userRepository) SetAdmin(userID string, admin bool) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_admin", admin).Error
}

// ToggleBookmark flips membership of questionID in the user's bookmark
// set and returns the resulting state. The unique (user_id, question_id)
// index serializes duplicate concurrent toggles: the insert either wins
// or conflicts, and the conflicting caller deletes instead.
func (r *userRepository) ToggleBookmark(userID, questionID string) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "question_id"},
		},
		DoNothing: true,
	}).Create(&models.Bookmark{UserID: userID, QuestionID: questionID})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// Row already existed: this toggle removes it.
	if err := r.db.Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&models.Bookmark{}).Error; err != nil {
		return false, err
	}
	return false, nil
}

// ListBookmarkedQuestionIDs returns the user's bookmarked question ids.
func (r *userRepository) ListBookmarkedQuestionIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("question_id", &ids).Error
	return ids, err
}

// List retrieves a paginated list of users
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountPremium returns how many users currently hold the premium flag.
func (r *userRepository) CountPremium() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_premium = ?", true).Count(&count).Error
	return count, err
}
