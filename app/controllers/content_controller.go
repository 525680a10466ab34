package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/accessgate"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/cache"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// Cache keys for content listings invalidated on admin writes.
const (
	cacheKeyTopics    = "topics"
	cacheKeyCompanies = "companies"
	contentCacheTTL   = time.Hour
)

// HandleListTopics serves the free topic list, cached in Redis.
func HandleListTopics(c *fiber.Ctx) error {
	if cached, err := cache.Get(cacheKeyTopics); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	topics, err := repository.GetGlobalRepositories().Topic.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load topics"})
	}
	if payload, err := json.Marshal(topics); err == nil {
		_ = cache.Set(cacheKeyTopics, payload, contentCacheTTL)
	}
	return c.JSON(topics)
}

// HandleListQuestions serves topic-wise questions. Free for everyone per
// the access policy; the gate is still consulted so the policy table
// stays the single source of truth.
func HandleListQuestions(c *fiber.Ctx) error {
	viewer := usercontext.GetUserContext(c).Viewer()
	if !accessgate.Decide(viewer, accessgate.ResourceTopicQuestions).Allows() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden", "message": "Not available"})
	}

	questions, err := repository.GetGlobalRepositories().Question.ListByTopic(
		c.Query("topic_id"),
		c.Query("difficulty"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load questions"})
	}
	return c.JSON(questions)
}

// HandleListCompanies serves the company directory (names, logos and
// question counts). The listing itself is the preview payload, so it is
// public; the question banks behind it are gated.
func HandleListCompanies(c *fiber.Ctx) error {
	if cached, err := cache.Get(cacheKeyCompanies); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	companies, err := repository.GetGlobalRepositories().Company.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load companies"})
	}
	if payload, err := json.Marshal(companies); err == nil {
		_ = cache.Set(cacheKeyCompanies, payload, contentCacheTTL)
	}
	return c.JSON(companies)
}

// HandleCompanyQuestions serves one company's question bank through the
// access gate: premium viewers get the full payload including answers,
// everyone else gets the preview with answer text stripped.
func HandleCompanyQuestions(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	repos := repository.GetGlobalRepositories()

	if _, err := repos.Company.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load company"})
	}

	questions, err := repos.Question.ListByCompany(companyID, c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load questions"})
	}

	decision := accessgate.Decide(usercontext.GetUserContext(c).Viewer(), accessgate.ResourceCompanyQuestions)
	if decision.Allows() {
		return c.JSON(fiber.Map{
			"questions": questions,
			"total":     len(questions),
			"locked":    false,
		})
	}

	preview := make([]models.Question, len(questions))
	for i, q := range questions {
		q.Answer = ""
		preview[i] = q
	}
	return c.JSON(fiber.Map{
		"questions": preview,
		"total":     len(questions),
		"locked":    true,
		"reason":    decision.Reason,
	})
}
