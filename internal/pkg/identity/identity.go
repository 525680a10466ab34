// Package identity turns an externally authenticated profile into a
// local user record plus a bearer session. The local store is the single
// source of truth for entitlement: the identity provider's profile is a
// one-way import at sign-in and is never consulted for authorization.
package identity

import (
	"errors"
	"log"
	"strings"

	"github.com/markbates/goth"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
)

// ErrNoEmail means the provider returned a profile without an email
// address, which we cannot key a user on.
var ErrNoEmail = errors.New("identity provider returned no email")

// Gateway maps provider profiles to local users and sessions.
type Gateway struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

// NewGateway creates an identity gateway over the given repositories.
func NewGateway(users repository.UserRepository, sessions repository.SessionRepository) *Gateway {
	return &Gateway{users: users, sessions: sessions}
}

// EstablishSession finds or creates the local user for an authenticated
// provider profile and mints a session token. On first sign-in the user
// starts non-premium; emails listed in ADMIN_EMAILS get the admin flag
// (and with it effective premium) imported exactly here and nowhere else.
func (g *Gateway) EstablishSession(profile goth.User) (*models.User, *models.Session, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if email == "" {
		return nil, nil, ErrNoEmail
	}

	user, err := g.users.GetByEmail(email)
	switch {
	case err == nil:
		if isAdminEmail(email) && !user.IsAdmin {
			// One-way import: the admin list can promote a user but
			// the flag lives in the local store from here on.
			if err := g.users.SetAdmin(user.ID, true); err != nil {
				return nil, nil, err
			}
			if err := g.users.SetPremium(user.ID, true); err != nil {
				return nil, nil, err
			}
			user.IsAdmin = true
			user.IsPremium = true
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := strings.TrimSpace(profile.Name)
		if name == "" {
			name = email
		}
		user, err = models.NewUser(email, name, profile.AvatarURL)
		if err != nil {
			return nil, nil, err
		}
		if isAdminEmail(email) {
			user.IsAdmin = true
			user.IsPremium = true
		}
		if err := g.users.Create(user); err != nil {
			return nil, nil, err
		}
		log.Printf("created user %s for %s", user.ID, email)
	default:
		return nil, nil, err
	}

	sess, err := models.NewSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := g.sessions.Create(sess); err != nil {
		return nil, nil, err
	}
	return user, sess, nil
}

func isAdminEmail(email string) bool {
	for _, admin := range env.GetEnvList("ADMIN_EMAILS") {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}
