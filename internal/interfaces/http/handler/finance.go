package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfinance "github.com/courierops/backend/internal/application/finance"
	"github.com/courierops/backend/internal/domain/finance"
)

// ReconciliationService is the application-layer surface the finance
// handler depends on.
type ReconciliationService interface {
	GetReconciliation(ctx context.Context, subOrgID uuid.UUID, query appfinance.ReconciliationQuery) (*finance.ReconciliationReport, error)
}

// FinanceHandler handles financial reporting endpoints
type FinanceHandler struct {
	BaseHandler
	reconciliation ReconciliationService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(reconciliation ReconciliationService) *FinanceHandler {
	return &FinanceHandler{reconciliation: reconciliation}
}

// RegisterRoutes registers finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/finance")
	{
		group.GET("/reconciliation", h.GetReconciliation)
	}
}

// GetReconciliation godoc
// @Summary Get the financial reconciliation report
// @Description Builds the revenue, expense and profit report for a date window
// @Tags finance
// @Produce json
// @Param X-Sub-Org-ID header string true "Sub-organization ID"
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=finance.ReconciliationReport}
// @Failure 400 {object} dto.Response
// @Router /finance/reconciliation [get]
func (h *FinanceHandler) GetReconciliation(c *gin.Context) {
	subOrgID, err := h.getSubOrgID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var query appfinance.ReconciliationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	report, err := h.reconciliation.GetReconciliation(c.Request.Context(), subOrgID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}
