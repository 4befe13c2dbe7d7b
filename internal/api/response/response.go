// Package response provides utilities for sending consistent HTTP responses.
// Every payload is wrapped in a success/error envelope so clients can branch
// on a single boolean.
package response

import (
	"encoding/json"
	"log"
	"net/http"

	"fintrack/internal/model"
)

// Envelope is the success response shape.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse represents a structured error response returned by the API.
// The Details field is optional and can contain additional context about the error.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RefreshReport is the bulk-refresh response shape: always HTTP 200, with
// per-item outcomes so partial failures are visible without being fatal.
type RefreshReport struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    interface{}            `json:"data,omitempty"`
	Results []model.RefreshOutcome `json:"results"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondData wraps the payload in the success envelope.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondMessage wraps a payload and a human-readable message in the
// success envelope.
func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

// RespondError sends a structured error response with the given status code.
// The message should be a user-friendly error description.
// The details parameter can be an error string, additional context, or nil.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// RespondRefresh sends the bulk-refresh outcome report. The HTTP status is
// always 200: individual failures are data, not transport errors.
func RespondRefresh(w http.ResponseWriter, message string, results []model.RefreshOutcome) {
	RespondJSON(w, http.StatusOK, RefreshReport{
		Success: true,
		Message: message,
		Results: results,
	})
}

// RespondSync sends a sync outcome report along with the synced records.
// Same contract as RespondRefresh: per-item failures are data, not
// transport errors, so the status is always 200.
func RespondSync(w http.ResponseWriter, message string, data interface{}, results []model.RefreshOutcome) {
	RespondJSON(w, http.StatusOK, RefreshReport{
		Success: true,
		Message: message,
		Data:    data,
		Results: results,
	})
}
