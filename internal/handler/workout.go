package handler

import (
	"net/http"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/workout"
)

// CreateWorkoutRequest represents the request to create a workout
type CreateWorkoutRequest struct {
	UserID       int        `json:"userId" validate:"required,gt=0"`
	Name         string     `json:"name" validate:"required"`
	Type         string     `json:"type"`
	Difficulty   string     `json:"difficulty"`
	Duration     int        `json:"duration"`
	Calories     int        `json:"calories"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// AddWorkoutExerciseRequest links an exercise into a workout
type AddWorkoutExerciseRequest struct {
	ExerciseID int `json:"exerciseId" validate:"required,gt=0"`
	Sets       int `json:"sets"`
	Reps       int `json:"reps"`
	Weight     int `json:"weight"`
	Duration   int `json:"duration"`
	RestTime   int `json:"restTime"`
	Order      int `json:"order"`
}

// HandleListWorkouts returns a user's workouts
// @Summary List workouts for a user
// @Tags workouts
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {array} domain.Workout
// @Router /api/workouts [get]
func HandleListWorkouts(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := QueryParamInt(r, w, "userId")
		if !ok {
			return
		}

		workouts, err := svc.GetUserWorkouts(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, workouts)
	}
}

// HandleCreateWorkout creates a workout
// @Summary Create a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param request body CreateWorkoutRequest true "Workout details"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} ErrorResponse
// @Router /api/workouts [post]
func HandleCreateWorkout(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWorkoutRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create workout"); err != nil {
			return
		}

		created, err := svc.CreateWorkout(r.Context(), domain.NewWorkout{
			UserID:       req.UserID,
			Name:         req.Name,
			Type:         req.Type,
			Difficulty:   req.Difficulty,
			Duration:     req.Duration,
			Calories:     req.Calories,
			Description:  req.Description,
			Completed:    req.Completed,
			ScheduledFor: req.ScheduledFor,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetWorkout returns a single workout
// @Summary Get a workout
// @Tags workouts
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} ErrorResponse
// @Router /api/workouts/{id} [get]
func HandleGetWorkout(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := svc.GetWorkout(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, found)
	}
}

// HandleUpdateWorkout applies a partial update to a workout
// @Summary Update a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path int true "Workout ID"
// @Param request body domain.WorkoutPatch true "Fields to update"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} ErrorResponse
// @Router /api/workouts/{id} [put]
func HandleUpdateWorkout(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var patch domain.WorkoutPatch
		if err := DecodeAndValidateRequest(r, w, &patch, "Update workout"); err != nil {
			return
		}

		updated, err := svc.UpdateWorkout(r.Context(), id, patch)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteWorkout removes a workout
// @Summary Delete a workout
// @Tags workouts
// @Param id path int true "Workout ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/workouts/{id} [delete]
func HandleDeleteWorkout(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		if err := svc.DeleteWorkout(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleGetWorkoutExercises lists the exercises in a workout
// @Summary List exercises in a workout
// @Tags workouts
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {array} domain.WorkoutExercise
// @Failure 404 {object} ErrorResponse
// @Router /api/workouts/{id}/exercises [get]
func HandleGetWorkoutExercises(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		links, err := svc.GetWorkoutExercises(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, links)
	}
}

// HandleAddWorkoutExercise links an exercise into a workout
// @Summary Add an exercise to a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path int true "Workout ID"
// @Param request body AddWorkoutExerciseRequest true "Exercise prescription"
// @Success 201 {object} domain.WorkoutExercise
// @Failure 404 {object} ErrorResponse
// @Router /api/workouts/{id}/exercises [post]
func HandleAddWorkoutExercise(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req AddWorkoutExerciseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add workout exercise"); err != nil {
			return
		}

		link, err := svc.AddExerciseToWorkout(r.Context(), domain.NewWorkoutExercise{
			WorkoutID:  id,
			ExerciseID: req.ExerciseID,
			Sets:       req.Sets,
			Reps:       req.Reps,
			Weight:     req.Weight,
			Duration:   req.Duration,
			RestTime:   req.RestTime,
			Order:      req.Order,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, link)
	}
}

// HandleRemoveWorkoutExercise removes one exercise pairing from a workout
// @Summary Remove an exercise from a workout
// @Tags workouts
// @Param workoutId path int true "Workout ID"
// @Param exerciseId path int true "Exercise ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/workouts/{workoutId}/exercises/{exerciseId} [delete]
func HandleRemoveWorkoutExercise(svc workout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workoutID, ok := URLParamInt(r, w, "workoutId")
		if !ok {
			return
		}
		exerciseID, ok := URLParamInt(r, w, "exerciseId")
		if !ok {
			return
		}

		if err := svc.RemoveExerciseFromWorkout(r.Context(), workoutID, exerciseID); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
