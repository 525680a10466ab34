package repository

import (
	"time"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"gorm.io/gorm"
)

// sessionRepository implements the SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create stores a newly issued session token
func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByToken resolves a bearer token to its session row
func (r *sessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token = ?", token).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken revokes a session (logout, or cleanup of an expired token)
func (r *sessionRepository) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes all sessions past their expiry and returns the count.
func (r *sessionRepository) DeleteExpired() (int64, error) {
	res := r.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
