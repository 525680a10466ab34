package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/identity"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// HandleGoogleLogin starts the OAuth flow with the identity provider.
func HandleGoogleLogin(c *fiber.Ctx) error {
	return gothfiber.BeginAuthHandler(c)
}

// HandleGoogleCallback completes the OAuth flow, imports the profile
// into the local user store and issues the bearer session.
func HandleGoogleCallback(c *fiber.Ctx) error {
	profile, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		log.Printf("oauth callback failed: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Authentication failed"})
	}

	repos := repository.GetGlobalRepositories()
	gateway := identity.NewGateway(repos.User, repos.Session)
	user, sess, err := gateway.EstablishSession(profile)
	if err != nil {
		log.Printf("failed to establish session for %s: %v", profile.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Sign-in failed"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    sess.Token,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: "Lax",
		Path:     "/",
	})

	if redirect := env.GetEnv("FRONTEND_URL", ""); redirect != "" {
		return c.Redirect(redirect, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleGetMe returns the current user record including bookmarks, or an
// anonymous marker. Clients re-query this after every verify attempt
// instead of trusting their cached premium flag.
func HandleGetMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.JSON(fiber.Map{"user": nil})
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load user"})
	}
	bookmarks, err := repos.User.ListBookmarkedQuestionIDs(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load bookmarks"})
	}

	return c.JSON(fiber.Map{"user": meResponse(user, bookmarks)})
}

// HandleLogout revokes the current session token.
func HandleLogout(c *fiber.Ctx) error {
	token, _ := c.Locals(usercontext.KeySessionToken).(string)
	if token != "" {
		if err := repository.GetGlobalRepositories().Session.DeleteByToken(token); err != nil {
			log.Printf("failed to delete session on logout: %v", err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

func meResponse(user *models.User, bookmarks []string) fiber.Map {
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return fiber.Map{
		"id":                   user.ID,
		"email":                user.Email,
		"name":                 user.Name,
		"picture":              user.Picture,
		"is_premium":           user.IsPremium,
		"is_admin":             user.IsAdmin,
		"bookmarked_questions": bookmarks,
		"created_at":           user.CreatedAt,
	}
}
