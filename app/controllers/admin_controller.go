package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/repository"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/cache"
)

// Admin CRUD for the content catalog. Admin access is enforced by the
// route middleware; content writes invalidate the Redis listings and
// keep the denormalized company question counts in sync.

// HandleAdminStats returns catalog and user totals for the dashboard.
func HandleAdminStats(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	totalUsers, err := repos.User.Count()
	if err != nil {
		return adminInternalError(c, "Failed to count users", err)
	}
	premiumUsers, err := repos.User.CountPremium()
	if err != nil {
		return adminInternalError(c, "Failed to count premium users", err)
	}
	questions, err := repos.Question.ListAll()
	if err != nil {
		return adminInternalError(c, "Failed to count questions", err)
	}
	totalCompanies, err := repos.Company.Count()
	if err != nil {
		return adminInternalError(c, "Failed to count companies", err)
	}
	totalExperiences, err := repos.Experience.Count()
	if err != nil {
		return adminInternalError(c, "Failed to count experiences", err)
	}

	return c.JSON(fiber.Map{
		"total_users":       totalUsers,
		"premium_users":     premiumUsers,
		"total_questions":   len(questions),
		"total_companies":   totalCompanies,
		"total_experiences": totalExperiences,
	})
}

// HandleAdminListUsers returns all user records.
func HandleAdminListUsers(c *fiber.Ctx) error {
	users, err := repository.GetGlobalRepositories().User.List(0, 10000)
	if err != nil {
		return adminInternalError(c, "Failed to list users", err)
	}
	return c.JSON(users)
}

// --- Topics ---

func HandleAdminCreateTopic(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	topic, err := models.NewTopic(body.Name, body.Description)
	if err != nil {
		return badRequest(c, "name is required")
	}
	if err := repository.GetGlobalRepositories().Topic.Create(topic); err != nil {
		return adminInternalError(c, "Failed to create topic", err)
	}
	invalidateCache(cacheKeyTopics)
	return c.Status(fiber.StatusCreated).JSON(topic)
}

func HandleAdminUpdateTopic(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	topic, err := repos.Topic.GetByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Topic not found")
	}
	if err := c.BodyParser(topic); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := repos.Topic.Update(topic); err != nil {
		return adminInternalError(c, "Failed to update topic", err)
	}
	invalidateCache(cacheKeyTopics)
	return c.JSON(topic)
}

func HandleAdminDeleteTopic(c *fiber.Ctx) error {
	if err := repository.GetGlobalRepositories().Topic.Delete(c.Params("id")); err != nil {
		return adminInternalError(c, "Failed to delete topic", err)
	}
	invalidateCache(cacheKeyTopics)
	return c.JSON(fiber.Map{"success": true})
}

// --- Questions ---

func HandleAdminListQuestions(c *fiber.Ctx) error {
	questions, err := repository.GetGlobalRepositories().Question.ListAll()
	if err != nil {
		return adminInternalError(c, "Failed to list questions", err)
	}
	return c.JSON(questions)
}

func HandleAdminCreateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := c.BodyParser(&question); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	if err := question.Validate(); err != nil {
		return badRequest(c, "question text and difficulty are required")
	}
	repos := repository.GetGlobalRepositories()
	if err := repos.Question.Create(&question); err != nil {
		return adminInternalError(c, "Failed to create question", err)
	}
	refreshCompanyCount(question.CompanyID)
	return c.Status(fiber.StatusCreated).JSON(question)
}

func HandleAdminUpdateQuestion(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	question, err := repos.Question.GetByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Question not found")
	}
	if err := c.BodyParser(question); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := question.Validate(); err != nil {
		return badRequest(c, "question text and difficulty are required")
	}
	if err := repos.Question.Update(question); err != nil {
		return adminInternalError(c, "Failed to update question", err)
	}
	refreshCompanyCount(question.CompanyID)
	return c.JSON(question)
}

func HandleAdminDeleteQuestion(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	question, err := repos.Question.GetByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Question not found")
	}
	if err := repos.Question.Delete(question.ID); err != nil {
		return adminInternalError(c, "Failed to delete question", err)
	}
	refreshCompanyCount(question.CompanyID)
	return c.JSON(fiber.Map{"success": true})
}

// --- Companies ---

func HandleAdminCreateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	if err := company.Validate(); err != nil {
		return badRequest(c, "name is required")
	}
	if err := repository.GetGlobalRepositories().Company.Create(&company); err != nil {
		return adminInternalError(c, "Failed to create company", err)
	}
	invalidateCache(cacheKeyCompanies)
	return c.Status(fiber.StatusCreated).JSON(company)
}

func HandleAdminUpdateCompany(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	company, err := repos.Company.GetByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Company not found")
	}
	if err := c.BodyParser(company); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := repos.Company.Update(company); err != nil {
		return adminInternalError(c, "Failed to update company", err)
	}
	invalidateCache(cacheKeyCompanies)
	return c.JSON(company)
}

func HandleAdminDeleteCompany(c *fiber.Ctx) error {
	if err := repository.GetGlobalRepositories().Company.Delete(c.Params("id")); err != nil {
		return adminInternalError(c, "Failed to delete company", err)
	}
	invalidateCache(cacheKeyCompanies)
	return c.JSON(fiber.Map{"success": true})
}

// --- Experiences ---

func HandleAdminCreateExperience(c *fiber.Ctx) error {
	var experience models.Experience
	if err := c.BodyParser(&experience); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if experience.ID == "" {
		experience.ID = uuid.NewString()
	}
	if err := experience.Validate(); err != nil {
		return badRequest(c, "company, role and experience text are required")
	}
	if err := repository.GetGlobalRepositories().Experience.Create(&experience); err != nil {
		return adminInternalError(c, "Failed to create experience", err)
	}
	return c.Status(fiber.StatusCreated).JSON(experience)
}

func HandleAdminUpdateExperience(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	experience, err := repos.Experience.GetByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Experience not found")
	}
	if err := c.BodyParser(experience); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := repos.Experience.Update(experience); err != nil {
		return adminInternalError(c, "Failed to update experience", err)
	}
	return c.JSON(experience)
}

func HandleAdminDeleteExperience(c *fiber.Ctx) error {
	if err := repository.GetGlobalRepositories().Experience.Delete(c.Params("id")); err != nil {
		return adminInternalError(c, "Failed to delete experience", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// --- Alumni ---

func HandleAdminCreateAlumni(c *fiber.Ctx) error {
	var alumni models.Alumni
	if err := c.BodyParser(&alumni); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if alumni.ID == "" {
		alumni.ID = uuid.NewString()
	}
	if err := alumni.Validate(); err != nil {
		return badRequest(c, "name and company are required")
	}
	if err := repository.GetGlobalRepositories().Alumni.Create(&alumni); err != nil {
		return adminInternalError(c, "Failed to create alumni", err)
	}
	return c.Status(fiber.StatusCreated).JSON(alumni)
}

func HandleAdminUpdateAlumni(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	alumni, err := repos.Alumni.GetByID(c.Params("id"))
	if err != nil {
		return notFoundOrInternal(c, err, "Alumni not found")
	}
	if err := c.BodyParser(alumni); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := repos.Alumni.Update(alumni); err != nil {
		return adminInternalError(c, "Failed to update alumni", err)
	}
	return c.JSON(alumni)
}

func HandleAdminDeleteAlumni(c *fiber.Ctx) error {
	if err := repository.GetGlobalRepositories().Alumni.Delete(c.Params("id")); err != nil {
		return adminInternalError(c, "Failed to delete alumni", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// --- helpers ---

// refreshCompanyCount recounts a company's question bank after a write.
func refreshCompanyCount(companyID string) {
	if companyID == "" {
		return
	}
	repos := repository.GetGlobalRepositories()
	count, err := repos.Question.CountByCompany(companyID)
	if err != nil {
		log.Printf("failed to recount questions for company %s: %v", companyID, err)
		return
	}
	if err := repos.Company.SetQuestionCount(companyID, count); err != nil {
		log.Printf("failed to update question count for company %s: %v", companyID, err)
	}
	invalidateCache(cacheKeyCompanies)
}

func invalidateCache(key string) {
	if err := cache.Delete(key); err != nil {
		log.Printf("failed to invalidate cache key %s: %v", key, err)
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": message})
}

func adminInternalError(c *fiber.Ctx, message string, err error) error {
	log.Printf("admin: %s: %v", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": message})
}

func notFoundOrInternal(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": message})
	}
	return adminInternalError(c, message, err)
}
