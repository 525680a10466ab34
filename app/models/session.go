package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Session is one issued bearer credential. Tokens are opaque random
// strings; every request re-validates the row so revocation and expiry
// take effect immediately.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Token     string    `gorm:"type:varchar(100);uniqueIndex" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NewSession mints a session with a fresh random token for the user.
func NewSession(userID string) (*Session, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &Session{
		Token:     hex.EncodeToString(b),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}, nil
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
