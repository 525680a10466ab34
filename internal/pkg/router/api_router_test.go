package router

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(app *fiber.App) map[string]bool {
	routes := map[string]bool{}
	for _, route := range app.GetRoutes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestApiRouter_RegistersDocumentedPaths(t *testing.T) {
	app := fiber.New()
	NewApiRouter().InstallRouter(app)
	routes := registeredRoutes(app)

	for _, want := range []string{
		"GET /api/auth/me",
		"POST /api/auth/logout",
		"GET /api/topics",
		"GET /api/questions",
		"GET /api/companies",
		"GET /api/company-questions/:companyId",
		"GET /api/experiences",
		"GET /api/experiences/:id",
		"GET /api/alumni",
		"GET /api/alumni/:id/reveal",
		"POST /api/bookmark/:questionId",
		"GET /api/bookmarks",
		"POST /api/payment/create-order",
		"POST /api/payment/verify",
		"GET /api/payment/orders",
		"GET /api/project-interview/rate-limit",
		"POST /api/project-interview/generate",
		"GET /api/admin/stats",
		"GET /api/admin/users",
	} {
		assert.True(t, routes[want], "route %s not registered", want)
	}

	// The nested form was replaced, not kept as an alias.
	assert.False(t, routes["GET /api/companies/:companyId/questions"])
}
