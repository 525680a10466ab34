package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/aigen"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/quota"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// Generator is swappable for tests; the default talks to the real API.
var interviewGenerator aigen.Generator

func getGenerator() aigen.Generator {
	if interviewGenerator != nil {
		return interviewGenerator
	}
	return aigen.NewClientFromEnv()
}

// HandleGenerationRateLimit reports the remaining daily generations
// without consuming any.
func HandleGenerationRateLimit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	remaining, err := quota.NewTracker().Peek(c.UserContext(), userCtx.UserID, quota.FeatureInterviewGeneration, quota.DefaultDailyLimit)
	if err != nil {
		log.Printf("quota peek failed for user %s: %v", userCtx.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to read rate limit"})
	}

	return c.JSON(fiber.Map{"remaining_generations": remaining})
}

// HandleGenerateInterview produces a set of project interview questions.
// Premium is enforced by the route middleware. The daily quota is
// consumed before the generation backend is called; a unit spent on a
// failed generation is not refunded.
func HandleGenerateInterview(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req aigen.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	if err := validator.New().Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "project title, tech stack, description, features and role are required"})
	}

	tracker := quota.NewTracker()
	remaining, err := tracker.Consume(c.UserContext(), userCtx.UserID, quota.FeatureInterviewGeneration, quota.DefaultDailyLimit)
	if err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "quota_exceeded",
				"message": "Daily generation limit reached, try again tomorrow",
			})
		}
		log.Printf("quota consume failed for user %s: %v", userCtx.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to check rate limit"})
	}

	result, err := getGenerator().Generate(c.UserContext(), req)
	if err != nil {
		log.Printf("generation failed for user %s: %v", userCtx.UserID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "generation_unavailable", "message": "Question generation failed, please try again"})
	}

	return c.JSON(fiber.Map{
		"questions":             result.Questions,
		"remaining_generations": remaining,
	})
}
