// internal/api/routes/finance_routes.go
package routes

import (
	"agenda-modista/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterFinanceRoutes registers the finance rollup endpoint.
func RegisterFinanceRoutes(
	rg *gin.RouterGroup,
	financeHandler handlers.FinanceHandlerInterface,
) {
	rg.GET("/finanzas", financeHandler.GetSummary)
}
