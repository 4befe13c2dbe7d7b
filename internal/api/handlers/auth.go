package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/api/request"
	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/auth"
	"fintrack/internal/validation"
)

// AuthHandler handles HTTP requests for PIN authentication.
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ValidatePIN handles POST requests to exchange the PIN for a bearer token.
//
// Endpoint: POST /api/auth/validate-pin
// Request Body: LoginRequest (pin)
// Response: 200 OK with token
// Error: 400 Bad Request on a missing or invalid request body
// Error: 401 Unauthorized on a wrong PIN
// Error: 429 Too Many Requests while locked out, with waitSeconds
func (h *AuthHandler) ValidatePIN(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	token, waitSeconds, err := h.authService.ValidatePIN(req.PIN)
	if err != nil {
		if errors.Is(err, apperrors.ErrLockedOut) {
			response.RespondJSON(w, http.StatusTooManyRequests, map[string]any{
				"success":     false,
				"error":       apperrors.ErrLockedOut.Error(),
				"waitSeconds": waitSeconds,
			})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidPIN) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidPIN.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to validate PIN", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, map[string]string{"token": token})
}
