package handler

import (
	"net/http"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/meal"
)

// CreateMealRequest represents the request to log a meal
type CreateMealRequest struct {
	UserID       int        `json:"userId" validate:"required,gt=0"`
	Name         string     `json:"name" validate:"required"`
	Type         string     `json:"type"`
	Calories     int        `json:"calories"`
	Protein      int        `json:"protein"`
	Carbs        int        `json:"carbs"`
	Fat          int        `json:"fat"`
	Description  string     `json:"description"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// HandleListMeals returns a user's meals
// @Summary List meals for a user
// @Tags meals
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {array} domain.Meal
// @Router /api/meals [get]
func HandleListMeals(svc meal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := QueryParamInt(r, w, "userId")
		if !ok {
			return
		}

		meals, err := svc.GetUserMeals(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, meals)
	}
}

// HandleCreateMeal logs a meal
// @Summary Create a meal
// @Tags meals
// @Accept json
// @Produce json
// @Param request body CreateMealRequest true "Meal details"
// @Success 201 {object} domain.Meal
// @Failure 400 {object} ErrorResponse
// @Router /api/meals [post]
func HandleCreateMeal(svc meal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create meal"); err != nil {
			return
		}

		created, err := svc.CreateMeal(r.Context(), domain.NewMeal{
			UserID:       req.UserID,
			Name:         req.Name,
			Type:         req.Type,
			Calories:     req.Calories,
			Protein:      req.Protein,
			Carbs:        req.Carbs,
			Fat:          req.Fat,
			Description:  req.Description,
			ScheduledFor: req.ScheduledFor,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetMeal returns a single meal
// @Summary Get a meal
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} domain.Meal
// @Failure 404 {object} ErrorResponse
// @Router /api/meals/{id} [get]
func HandleGetMeal(svc meal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := svc.GetMeal(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, found)
	}
}

// HandleUpdateMeal applies a partial update to a meal
// @Summary Update a meal
// @Tags meals
// @Accept json
// @Produce json
// @Param id path int true "Meal ID"
// @Param request body domain.MealPatch true "Fields to update"
// @Success 200 {object} domain.Meal
// @Failure 404 {object} ErrorResponse
// @Router /api/meals/{id} [put]
func HandleUpdateMeal(svc meal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var patch domain.MealPatch
		if err := DecodeAndValidateRequest(r, w, &patch, "Update meal"); err != nil {
			return
		}

		updated, err := svc.UpdateMeal(r.Context(), id, patch)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteMeal removes a meal
// @Summary Delete a meal
// @Tags meals
// @Param id path int true "Meal ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/meals/{id} [delete]
func HandleDeleteMeal(svc meal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		if err := svc.DeleteMeal(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
