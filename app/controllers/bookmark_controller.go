package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// HandleToggleBookmark flips a question in the caller's bookmark set and
// returns the resulting state, so duplicate clicks alternate instead of
// erroring. Premium entitlement is enforced by the route middleware and
// re-checked nowhere else.
func HandleToggleBookmark(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	questionID := c.Params("questionId")
	if questionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "question id missing"})
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Question.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Question not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load question"})
	}

	bookmarked, err := repos.User.ToggleBookmark(userCtx.UserID, questionID)
	if err != nil {
		log.Printf("bookmark toggle failed for user %s question %s: %v", userCtx.UserID, questionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to toggle bookmark"})
	}

	return c.JSON(fiber.Map{"bookmarked": bookmarked})
}

// HandleListBookmarks returns the caller's bookmarked questions in full.
func HandleListBookmarks(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repos := repository.GetGlobalRepositories()
	ids, err := repos.User.ListBookmarkedQuestionIDs(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load bookmarks"})
	}
	questions, err := repos.Question.ListByIDs(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load questions"})
	}

	return c.JSON(questions)
}
