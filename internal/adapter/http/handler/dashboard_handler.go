package handler

import (
	"localpay-gateway/internal/adapter/http/dto"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard endpoints.
type DashboardHandler struct {
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingSvc: reportingSvc}
}

// GetStats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	period := c.DefaultQuery("period", "all")
	stats, err := h.reportingSvc.GetDashboardStats(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DashboardStatsResponse{
		Period:        period,
		TotalInvoices: stats.TotalInvoices,
		Pending:       stats.Pending,
		Paid:          stats.Paid,
		Failed:        stats.Failed,
		Revenue:       stats.Revenue,
		CartTotal:     stats.CartTotal,
		CartItems:     stats.CartItems,
		Latest:        stats.Latest,
	})
}
