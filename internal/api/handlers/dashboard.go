package handlers

import (
	"net/http"

	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/service"
)

// trendMonths is the window of the monthly growth trend.
const trendMonths = 6

// DashboardHandler handles HTTP requests for dashboard endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats handles GET requests for the full dashboard payload.
//
// Endpoint: GET /api/dashboard/stats
// Response: 200 OK with DashboardStats
// Error: 500 Internal Server Error if aggregation fails
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, stats)
}

// MonthlyTrend handles GET requests for the 6-month growth trend.
//
// Endpoint: GET /api/dashboard/monthly-trend
// Response: 200 OK with array of TrendPoint, oldest first
// Error: 500 Internal Server Error if aggregation fails
func (h *DashboardHandler) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.dashboardService.MonthlyTrend(trendMonths)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDashboard.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, trend)
}
