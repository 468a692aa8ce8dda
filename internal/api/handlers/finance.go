// internal/api/handlers/finance.go
package handlers

import (
	"log"
	"net/http"

	"agenda-modista/internal/finance"
	"agenda-modista/internal/services"

	"github.com/gin-gonic/gin"
)

// FinanceHandler serves the Finanzas view: period buckets plus grand totals.
type FinanceHandler struct {
	service services.JobService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(service services.JobService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// GetSummary returns the weekly or monthly rollup. `periodo` defaults to the
// monthly view, like the dashboard.
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", string(finance.GranularityMonthly))
	granularity, err := finance.ParseGranularity(periodo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.service.FinanceSummary(c.Request.Context(), granularity)
	if err != nil {
		log.Printf("Error computing finance summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute finance summary"})
		return
	}

	c.JSON(http.StatusOK, MapSummaryToResponse(summary, granularity))
}
