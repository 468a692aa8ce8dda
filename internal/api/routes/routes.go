// internal/api/routes/routes.go
package routes

import (
	"agenda-modista/internal/api/handlers"
	"agenda-modista/internal/app"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	financeHandler := handlers.NewFinanceHandler(app.JobService)

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler)
	RegisterFinanceRoutes(apiV1, financeHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
}
