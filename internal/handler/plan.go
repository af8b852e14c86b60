package handler

import (
	"net/http"

	"github.com/fitquest/FitQuest_Go/internal/planner"
)

// WorkoutPlanHTTPRequest represents the request for a generated workout plan
type WorkoutPlanHTTPRequest struct {
	UserID       int    `json:"userId" validate:"required,gt=0"`
	FitnessLevel string `json:"fitnessLevel"`
	Goal         string `json:"goal"`
	Equipment    string `json:"equipment"`
	Duration     int    `json:"duration"`
	Frequency    int    `json:"frequency"`
	Preferences  string `json:"preferences"`
	Restrictions string `json:"restrictions"`
}

// DietPlanHTTPRequest represents the request for a generated diet plan
type DietPlanHTTPRequest struct {
	UserID       int    `json:"userId" validate:"required,gt=0"`
	CalorieGoal  int    `json:"calorieGoal"`
	DietType     string `json:"dietType"`
	Restrictions string `json:"restrictions"`
	Goal         string `json:"goal"`
	MealsPerDay  int    `json:"mealsPerDay"`
}

// FormAnalysisHTTPRequest represents the request for exercise form feedback
type FormAnalysisHTTPRequest struct {
	UserID      int    `json:"userId" validate:"required,gt=0"`
	Exercise    string `json:"exercise" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// InsightsHTTPRequest represents the request for fitness insights
type InsightsHTTPRequest struct {
	UserID          int    `json:"userId" validate:"required,gt=0"`
	WorkoutHistory  string `json:"workoutHistory"`
	DietHistory     string `json:"dietHistory"`
	ProgressMetrics string `json:"progressMetrics"`
	Goal            string `json:"goal"`
}

// FitnessQuestionRequest represents a free-form fitness question
type FitnessQuestionRequest struct {
	UserID   int    `json:"userId" validate:"required,gt=0"`
	Question string `json:"question" validate:"required"`
}

// WorkoutPlanResponse wraps a generated workout plan
type WorkoutPlanResponse struct {
	WorkoutPlan string `json:"workoutPlan"`
}

// DietPlanResponse wraps a generated diet plan
type DietPlanResponse struct {
	DietPlan string `json:"dietPlan"`
}

// FormAnalysisResponse wraps generated form feedback
type FormAnalysisResponse struct {
	FormAnalysis string `json:"formAnalysis"`
}

// InsightsResponse wraps generated fitness insights
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// AnswerResponse wraps a generated answer
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// HandleGenerateWorkoutPlan generates a personalized workout plan
// @Summary Generate a workout plan
// @Tags ai
// @Accept json
// @Produce json
// @Param request body WorkoutPlanHTTPRequest true "Plan parameters"
// @Success 200 {object} WorkoutPlanResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ai/workout-plan [post]
func HandleGenerateWorkoutPlan(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WorkoutPlanHTTPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate workout plan"); err != nil {
			return
		}

		plan, err := svc.GenerateWorkoutPlan(r.Context(), planner.WorkoutPlanRequest{
			UserID:       req.UserID,
			FitnessLevel: req.FitnessLevel,
			Goal:         req.Goal,
			Equipment:    req.Equipment,
			Duration:     req.Duration,
			Frequency:    req.Frequency,
			Preferences:  req.Preferences,
			Restrictions: req.Restrictions,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, WorkoutPlanResponse{WorkoutPlan: plan})
	}
}

// HandleGenerateDietPlan generates a personalized diet plan
// @Summary Generate a diet plan
// @Tags ai
// @Accept json
// @Produce json
// @Param request body DietPlanHTTPRequest true "Plan parameters"
// @Success 200 {object} DietPlanResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ai/diet-plan [post]
func HandleGenerateDietPlan(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DietPlanHTTPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate diet plan"); err != nil {
			return
		}

		plan, err := svc.GenerateDietPlan(r.Context(), planner.DietPlanRequest{
			UserID:       req.UserID,
			CalorieGoal:  req.CalorieGoal,
			DietType:     req.DietType,
			Restrictions: req.Restrictions,
			Goal:         req.Goal,
			MealsPerDay:  req.MealsPerDay,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DietPlanResponse{DietPlan: plan})
	}
}

// HandleAnalyzeForm reviews a described exercise attempt
// @Summary Analyze workout form
// @Tags ai
// @Accept json
// @Produce json
// @Param request body FormAnalysisHTTPRequest true "Form description"
// @Success 200 {object} FormAnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ai/form-analysis [post]
func HandleAnalyzeForm(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FormAnalysisHTTPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Analyze form"); err != nil {
			return
		}

		analysis, err := svc.AnalyzeWorkoutForm(r.Context(), planner.FormAnalysisRequest{
			UserID:      req.UserID,
			Exercise:    req.Exercise,
			Description: req.Description,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, FormAnalysisResponse{FormAnalysis: analysis})
	}
}

// HandleGenerateInsights analyzes a user's history
// @Summary Generate fitness insights
// @Tags ai
// @Accept json
// @Produce json
// @Param request body InsightsHTTPRequest true "History summary"
// @Success 200 {object} InsightsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ai/fitness-insights [post]
func HandleGenerateInsights(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InsightsHTTPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate insights"); err != nil {
			return
		}

		insights, err := svc.GenerateFitnessInsights(r.Context(), planner.InsightsRequest{
			UserID:          req.UserID,
			WorkoutHistory:  req.WorkoutHistory,
			DietHistory:     req.DietHistory,
			ProgressMetrics: req.ProgressMetrics,
			Goal:            req.Goal,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, InsightsResponse{Insights: insights})
	}
}

// HandleFitnessQuestion answers a free-form fitness question
// @Summary Answer a fitness question
// @Tags ai
// @Accept json
// @Produce json
// @Param request body FitnessQuestionRequest true "Question"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ai/fitness-question [post]
func HandleFitnessQuestion(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FitnessQuestionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Fitness question"); err != nil {
			return
		}

		answer, err := svc.AnswerFitnessQuestion(r.Context(), req.UserID, req.Question)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, AnswerResponse{Answer: answer})
	}
}
