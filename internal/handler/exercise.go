package handler

import (
	"net/http"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/workout"
)

// CreateExerciseRequest represents the request to add an exercise to the catalog
type CreateExerciseRequest struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required"`
	MuscleGroup  string `json:"muscleGroup" validate:"required"`
	Difficulty   string `json:"difficulty"`
	Equipment    string `json:"equipment"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	VideoURL     string `json:"videoUrl"`
}

// HandleListExercises returns the exercise catalog, optionally filtered
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Param type query string false "Exercise type"
// @Param muscleGroup query string false "Muscle group"
// @Success 200 {array} domain.Exercise
// @Router /api/exercises [get]
func HandleListExercises(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.ExerciseFilter{
			Type:        r.URL.Query().Get("type"),
			MuscleGroup: r.URL.Query().Get("muscleGroup"),
		}

		exercises, err := svc.ListExercises(r.Context(), filter)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, exercises)
	}
}

// HandleGetExercise returns a single exercise
// @Summary Get an exercise
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} ErrorResponse
// @Router /api/exercises/{id} [get]
func HandleGetExercise(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := svc.GetExercise(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, found)
	}
}

// HandleCreateExercise adds an exercise to the catalog
// @Summary Create an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} domain.Exercise
// @Failure 400 {object} ErrorResponse
// @Router /api/exercises [post]
func HandleCreateExercise(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateExerciseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create exercise"); err != nil {
			return
		}

		created, err := svc.CreateExercise(r.Context(), domain.NewExercise{
			Name:         req.Name,
			Type:         req.Type,
			MuscleGroup:  req.MuscleGroup,
			Difficulty:   req.Difficulty,
			Equipment:    req.Equipment,
			Description:  req.Description,
			Instructions: req.Instructions,
			VideoURL:     req.VideoURL,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}
