package handlers

import (
	"net/http"

	"fintrack/internal/api/response"
	"fintrack/internal/service"
)

// SystemHandler handles HTTP requests for system endpoints.
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler with the provided service dependency.
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health handles GET requests to check system health.
//
// Endpoint: GET /api/system/health
// Response: 200 OK when the database responds
// Error: 503 Service Unavailable if the database ping fails
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "database unavailable", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET requests for the application and schema versions.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with version info
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	appVersion, schemaVersion := h.systemService.VersionInfo()

	response.RespondData(w, http.StatusOK, map[string]any{
		"version":        appVersion,
		"schema_version": schemaVersion,
	})
}
