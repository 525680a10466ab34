package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// UserContextMiddleware establishes the request principal from the
// bearer credential. The token is validated against the session store on
// every request; trust never outlives the row's own expiry. Missing or
// invalid credentials yield an anonymous context rather than an error,
// so optional-auth endpoints can still serve previews.
func UserContextMiddleware(c *fiber.Ctx) error {
	token := extractSessionToken(c)
	if token == "" {
		return anonymous(c)
	}

	repos := repository.GetGlobalRepositories()
	sess, err := repos.Session.GetByToken(token)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("session lookup failed: %v", err)
		}
		return anonymous(c)
	}
	if sess.IsExpired() {
		// Expired rows are removed on sight so they cannot pile up.
		if err := repos.Session.DeleteByToken(token); err != nil {
			log.Printf("failed to delete expired session: %v", err)
		}
		return anonymous(c)
	}

	user, err := repos.User.GetByID(sess.UserID)
	if err != nil {
		// A session pointing at a missing user is an inconsistency
		// (externally deleted account); treat as anonymous and log.
		log.Printf("session %d references missing user %s: %v", sess.ID, sess.UserID, err)
		return anonymous(c)
	}

	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		IsLoggedIn: true,
		IsPremium:  user.IsPremium,
		IsAdmin:    user.IsAdmin,
	})
	c.Locals(usercontext.KeySessionToken, token)
	return c.Next()
}

func anonymous(c *fiber.Ctx) error {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	return c.Next()
}

func extractSessionToken(c *fiber.Ctx) string {
	if cookie := strings.TrimSpace(c.Cookies("session_token")); cookie != "" {
		return cookie
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
