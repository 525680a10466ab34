package router

import (
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/controllers"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{Max: 120}))

	// Auth
	auth := api.Group("/auth")
	auth.Get("/google/login", controllers.HandleGoogleLogin)
	auth.Get("/google/callback", controllers.HandleGoogleCallback)
	auth.Get("/me", controllers.HandleGetMe)
	auth.Post("/logout", controllers.HandleLogout)

	// Content catalog
	api.Get("/topics", controllers.HandleListTopics)
	api.Get("/questions", controllers.HandleListQuestions)
	api.Get("/companies", controllers.HandleListCompanies)
	api.Get("/company-questions/:companyId", controllers.HandleCompanyQuestions)
	api.Get("/experiences", controllers.HandleListExperiences)
	api.Get("/experiences/:id", controllers.HandleExperienceDetail)
	api.Get("/alumni", controllers.HandleSearchAlumni)
	api.Get("/alumni/:id/reveal", middleware.RequirePremium, controllers.HandleRevealAlumni)

	// Bookmarks
	api.Post("/bookmark/:questionId", middleware.RequirePremium, controllers.HandleToggleBookmark)
	api.Get("/bookmarks", middleware.RequirePremium, controllers.HandleListBookmarks)

	// Payments
	payment := api.Group("/payment", middleware.RequireAuth)
	payment.Post("/create-order", controllers.HandleCreateOrder)
	payment.Post("/verify", controllers.HandleVerifyPayment)
	payment.Get("/orders", controllers.HandleListOrders)

	// Project interview question generation
	interview := api.Group("/project-interview", middleware.RequirePremium)
	interview.Get("/rate-limit", controllers.HandleGenerationRateLimit)
	interview.Post("/generate", controllers.HandleGenerateInterview)

	h.registerAdminRoutes(api)
}

func (h ApiRouter) registerAdminRoutes(api fiber.Router) {
	admin := api.Group("/admin", middleware.RequireAdmin)
	admin.Get("/stats", controllers.HandleAdminStats)
	admin.Get("/users", controllers.HandleAdminListUsers)

	admin.Post("/topics", controllers.HandleAdminCreateTopic)
	admin.Put("/topics/:id", controllers.HandleAdminUpdateTopic)
	admin.Delete("/topics/:id", controllers.HandleAdminDeleteTopic)

	admin.Get("/questions", controllers.HandleAdminListQuestions)
	admin.Post("/questions", controllers.HandleAdminCreateQuestion)
	admin.Put("/questions/:id", controllers.HandleAdminUpdateQuestion)
	admin.Delete("/questions/:id", controllers.HandleAdminDeleteQuestion)

	admin.Post("/companies", controllers.HandleAdminCreateCompany)
	admin.Put("/companies/:id", controllers.HandleAdminUpdateCompany)
	admin.Delete("/companies/:id", controllers.HandleAdminDeleteCompany)

	admin.Post("/experiences", controllers.HandleAdminCreateExperience)
	admin.Put("/experiences/:id", controllers.HandleAdminUpdateExperience)
	admin.Delete("/experiences/:id", controllers.HandleAdminDeleteExperience)

	admin.Post("/alumni", controllers.HandleAdminCreateAlumni)
	admin.Put("/alumni/:id", controllers.HandleAdminUpdateAlumni)
	admin.Delete("/alumni/:id", controllers.HandleAdminDeleteAlumni)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
