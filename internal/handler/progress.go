package handler

import (
	"net/http"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/progress"
)

// CreateProgressRequest represents the request to record a measurement snapshot
type CreateProgressRequest struct {
	UserID            int        `json:"userId" validate:"required,gt=0"`
	Weight            int        `json:"weight"`
	Strength          int        `json:"strength"`
	WorkoutsCompleted int        `json:"workoutsCompleted"`
	RecordDate        *time.Time `json:"recordDate"`
}

// HandleGetUserProgress returns a user's progress records, oldest first
// @Summary Get progress history for a user
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} domain.ProgressRecord
// @Router /api/progress/{userId} [get]
func HandleGetUserProgress(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamInt(r, w, "userId")
		if !ok {
			return
		}

		records, err := svc.GetUserProgress(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

// HandleCreateProgressRecord records a measurement snapshot
// @Summary Create a progress record
// @Tags progress
// @Accept json
// @Produce json
// @Param request body CreateProgressRequest true "Measurement snapshot"
// @Success 201 {object} domain.ProgressRecord
// @Failure 400 {object} ErrorResponse
// @Router /api/progress [post]
func HandleCreateProgressRecord(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProgressRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create progress record"); err != nil {
			return
		}

		input := domain.NewProgressRecord{
			UserID:            req.UserID,
			Weight:            req.Weight,
			Strength:          req.Strength,
			WorkoutsCompleted: req.WorkoutsCompleted,
		}
		if req.RecordDate != nil {
			input.RecordDate = *req.RecordDate
		}

		created, err := svc.CreateProgressRecord(r.Context(), input)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}
