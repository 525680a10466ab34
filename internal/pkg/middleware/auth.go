package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// RequireAuth ensures an authenticated caller and returns JSON 401
// otherwise; the client surfaces it as a sign-in prompt.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.GetUserContext(c).IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "sign in required",
		})
	}
	return c.Next()
}

// RequirePremium ensures the caller holds effective premium (premium or
// admin). 403 is surfaced as an upgrade prompt, never a generic error.
func RequirePremium(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "sign in required",
		})
	}
	if !userCtx.EffectivePremium() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "premium_required",
			"message": "premium subscription required",
		})
	}
	return c.Next()
}

// RequireAdmin ensures a logged-in admin.
func RequireAdmin(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "sign in required",
		})
	}
	if !userCtx.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "admin access required",
		})
	}
	return c.Next()
}
