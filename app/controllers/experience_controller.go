package controllers

import (
	"errors"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/accessgate"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

const experienceExcerptLen = 200

// experienceExcerpt trims the full text to the index preview length.
// The cut backs up to the nearest rune start so a multi-byte character
// on the boundary is dropped whole instead of split.
func experienceExcerpt(text string) string {
	if len(text) <= experienceExcerptLen {
		return text
	}
	cut := experienceExcerptLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

// HandleListExperiences serves the experience index: company, role and
// round metadata for everyone, no full text.
func HandleListExperiences(c *fiber.Ctx) error {
	experiences, err := repository.GetGlobalRepositories().Experience.List(c.Query("company_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load experiences"})
	}

	items := make([]fiber.Map, len(experiences))
	for i, exp := range experiences {
		items[i] = fiber.Map{
			"id":           exp.ID,
			"company_id":   exp.CompanyID,
			"company_name": exp.CompanyName,
			"role":         exp.Role,
			"rounds":       exp.Rounds,
			"excerpt":      experienceExcerpt(exp.Experience),
			"posted_at":    exp.PostedAt,
		}
	}
	return c.JSON(items)
}

// HandleExperienceDetail serves one write-up through the access gate:
// full text for premium viewers, a locked response with the right prompt
// (sign-in vs upgrade) for everyone else.
func HandleExperienceDetail(c *fiber.Ctx) error {
	experience, err := repository.GetGlobalRepositories().Experience.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Experience not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load experience"})
	}

	decision := accessgate.Decide(usercontext.GetUserContext(c).Viewer(), accessgate.ResourceExperienceDetail)
	if decision.Allows() {
		return c.JSON(experience)
	}

	status := fiber.StatusForbidden
	if decision.Reason == accessgate.ReasonSignInRequired {
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   decision.Reason,
		"message": "Premium access required for full experiences",
		"preview": fiber.Map{
			"id":           experience.ID,
			"company_name": experience.CompanyName,
			"role":         experience.Role,
			"rounds":       experience.Rounds,
		},
	})
}
