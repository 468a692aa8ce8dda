// internal/api/handlers/jobs.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"agenda-modista/internal/services"
	"agenda-modista/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListJobs returns the whole collection sorted by reception date, derived
// fields included.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs := h.service.ListChronological(c.Request.Context())
	c.JSON(http.StatusOK, MapJobsToResponses(jobs))
}

// GetBoard returns the kanban partition (Por Hacer / En Proceso / Terminado).
func (h *JobHandler) GetBoard(c *gin.Context) {
	board := h.service.Board(c.Request.Context())
	c.JSON(http.StatusOK, MapBoardToResponse(board))
}

// GetJobByID returns a single job for the detail view.
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Error fetching job %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// CreateJob creates a new job from the form payload.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	createdJob, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(createdJob))
}

// UpdateJob applies a partial update; omitted fields keep their value.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = id

	updatedJob, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(updatedJob))
}

// MoveJobStatus moves a job to another workflow column.
func (h *JobHandler) MoveJobStatus(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	var req dto.MoveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = id

	movedJob, err := h.service.MoveStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to move job")
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(movedJob))
}

// DeleteJob removes a job. The dashboard shows the "¿Seguro que quieres
// eliminar?" prompt and passes confirm=true; without it the request is
// rejected before reaching the collection.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	req := dto.DeleteJobRequest{
		ID:      id,
		Confirm: c.Query("confirm") == "true",
	}
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion requires confirm=true"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "Failed to delete job")
		return
	}

	c.Status(http.StatusNoContent)
}

// parseJobID reads the numeric id from the URL path; responds 400 itself on
// malformed input.
func parseJobID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	case errors.Is(err, services.ErrPersistence):
		log.Printf("Persistence error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Storage backend unavailable, please retry"})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
