package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/accessgate"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/entitlements"
)

// UserContext represents the server-established principal for a request.
// It is rebuilt from the bearer credential on every call; a client's
// cached premium flag never feeds into it.
type UserContext struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	IsLoggedIn bool   `json:"is_logged_in"`
	IsPremium  bool   `json:"is_premium"`
	IsAdmin    bool   `json:"is_admin"`
}

// EffectivePremium reports whether this principal may access premium content.
func (u UserContext) EffectivePremium() bool {
	return u.IsLoggedIn && entitlements.EffectivePremium(u.IsPremium, u.IsAdmin)
}

// Viewer converts the principal into an access-gate viewer.
func (u UserContext) Viewer() accessgate.Viewer {
	return accessgate.Viewer{
		SignedIn:  u.IsLoggedIn,
		IsPremium: u.IsPremium,
		IsAdmin:   u.IsAdmin,
	}
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(KeyUserContext); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, IsAdmin: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAdmin
}

// GetUserID returns the current user's ID, or empty string if not logged in
func GetUserID(c *fiber.Ctx) string {
	return GetUserContext(c).UserID
}
