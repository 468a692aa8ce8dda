// internal/api/routes/job_routes.go
package routes

import (
	"agenda-modista/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to trabajos.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface, // Use interface
) {
	jobs := rg.Group("/trabajos")
	{
		jobs.GET("", jobHandler.ListJobs)               // Chronological list with derived fields
		jobs.GET("/tablero", jobHandler.GetBoard)       // Kanban partition
		jobs.GET("/:id", jobHandler.GetJobByID)         // Detail view
		jobs.POST("", jobHandler.CreateJob)             // Create a new job
		jobs.PATCH("/:id", jobHandler.UpdateJob)        // Partial update
		jobs.PATCH("/:id/estado", jobHandler.MoveJobStatus) // Move between columns
		jobs.DELETE("/:id", jobHandler.DeleteJob)       // Delete (requires confirm=true)
	}
}
