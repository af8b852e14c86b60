package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// Standard response types for consistent API responses

// MessageResponse represents a simple operation result message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body for every failed request. Errors carries
// per-field detail for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// respondValidationError sends a 400 with per-field detail
func respondValidationError(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: ErrMsgInvalidRequestSummary,
		Errors:  fields,
	})
}

// respondServiceError maps a domain error to an HTTP error response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceError(err)
	respondError(w, status, message)
}

// mapServiceError maps domain errors to HTTP status codes and messages
// users can understand and act upon. Unknown errors collapse to a generic
// 500 so internals never leak.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrMsgUserNotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, domain.ErrMsgUsernameTaken
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, domain.ErrMsgBadCredentials
	case errors.Is(err, domain.ErrWorkoutNotFound):
		return http.StatusNotFound, domain.ErrMsgWorkoutNotFound
	case errors.Is(err, domain.ErrExerciseNotFound):
		return http.StatusNotFound, domain.ErrMsgExerciseNotFound
	case errors.Is(err, domain.ErrWorkoutExerciseNotFound):
		return http.StatusNotFound, domain.ErrMsgWorkoutExerciseNotFound
	case errors.Is(err, domain.ErrMealNotFound):
		return http.StatusNotFound, domain.ErrMsgMealNotFound
	case errors.Is(err, domain.ErrChallengeNotFound):
		return http.StatusNotFound, domain.ErrMsgChallengeNotFound
	case errors.Is(err, domain.ErrParticipationNotFound):
		return http.StatusNotFound, domain.ErrMsgParticipationNotFound
	case errors.Is(err, domain.ErrAlreadyJoined):
		return http.StatusConflict, domain.ErrMsgAlreadyJoined
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, domain.ErrMsgCharacterNotFound
	case errors.Is(err, domain.ErrInvalidClass):
		return http.StatusBadRequest, domain.ErrMsgInvalidClass
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusBadRequest, domain.ErrMsgInvalidTier
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, domain.ErrMsgInvalidInput
	case errors.Is(err, domain.ErrPlanUnavailable):
		return http.StatusServiceUnavailable, domain.ErrMsgPlanUnavailable
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
