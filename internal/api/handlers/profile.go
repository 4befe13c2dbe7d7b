package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/api/request"
	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/service"
	"fintrack/internal/validation"
)

// ProfileHandler handles HTTP requests for the user profile endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Profile handles GET requests for the user profile.
// The profile is created empty on first read.
//
// Endpoint: GET /api/profile
// Response: 200 OK with UserProfile
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve profile", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT requests to edit the user profile.
//
// Endpoint: PUT /api/profile
// Request Body: UpdateProfileRequest
// Response: 200 OK with updated UserProfile
// Error: 400 Bad Request if validation fails or allocations do not sum
// to the monthly salary
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateProfileRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProfile(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAllocationMismatch) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrAllocationMismatch.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, profile)
}
