package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/accessgate"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// HandleSearchAlumni serves the directory with contact fields masked.
// Premium viewers also get masked results here; reveal is an explicit
// per-record call so contact access stays auditable.
func HandleSearchAlumni(c *fiber.Ctx) error {
	alumni, err := repository.GetGlobalRepositories().Alumni.Search(c.Query("name"), c.Query("company"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to search alumni"})
	}

	masked := make([]models.Alumni, len(alumni))
	for i, a := range alumni {
		masked[i] = a.Masked()
	}
	return c.JSON(masked)
}

// HandleRevealAlumni returns the unmasked contact fields for one alumni
// record. The route requires premium; the gate is still consulted here
// because this is a data-returning call.
func HandleRevealAlumni(c *fiber.Ctx) error {
	decision := accessgate.Decide(usercontext.GetUserContext(c).Viewer(), accessgate.ResourceAlumniContact)
	if !decision.Allows() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": decision.Reason, "message": "Premium required to reveal contacts"})
	}

	alumni, err := repository.GetGlobalRepositories().Alumni.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Alumni not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load alumni"})
	}

	return c.JSON(alumni)
}
