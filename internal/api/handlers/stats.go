package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/service"
)

// StatsHandler handles HTTP requests for expense statistics endpoints.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler with the provided service dependency.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Daily handles GET requests for the current month's spending summary.
//
// Endpoint: GET /api/stats/daily
// Response: 200 OK with MonthlyStats
// Error: 500 Internal Server Error if aggregation fails
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.MonthStats()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetStats.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, stats)
}

// Trend handles GET requests for the 7-day spending trend.
//
// Endpoint: GET /api/stats/trend
// Response: 200 OK with array of DailyTotal, oldest first
// Error: 500 Internal Server Error if aggregation fails
func (h *StatsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.statsService.WeeklyTrend()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetStats.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, trend)
}

// Calendar handles GET requests for per-day totals of a month.
//
// Endpoint: GET /api/stats/calendar?month=2025-01
// Response: 200 OK with map of "2006-01-02" to amount
// Error: 400 Bad Request on a malformed month
// Error: 500 Internal Server Error if aggregation fails
func (h *StatsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	month := time.Now().UTC()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "month must be YYYY-MM", err.Error())
			return
		}
		month = parsed
	}

	totals, err := h.statsService.CalendarTotals(month)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetStats.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, totals)
}

// CategoryLimits handles GET requests for the month's spend per category
// against the configured limits.
//
// Endpoint: GET /api/stats/category-limits
// Response: 200 OK with array of CategoryLimitStat
// Error: 500 Internal Server Error if aggregation fails
func (h *StatsHandler) CategoryLimits(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.CategoryLimits()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetStats.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, stats)
}
