// Package planner implements AI-assisted coaching: workout and diet plan
// generation, form analysis, fitness insights and Q&A. A Gemini backend is
// optional; without one every operation serves a canned plan so the API
// surface works out of the box.
package planner

import (
	"context"
	"fmt"

	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/logger"
)

// Plan types used in events and metrics
const (
	PlanTypeWorkout  = "workout"
	PlanTypeDiet     = "diet"
	PlanTypeForm     = "form"
	PlanTypeInsights = "insights"
	PlanTypeQuestion = "question"
)

// WorkoutPlanRequest carries the parameters for workout plan generation
type WorkoutPlanRequest struct {
	UserID       int
	FitnessLevel string
	Goal         string
	Equipment    string
	Duration     int // minutes per session
	Frequency    int // days per week
	Preferences  string
	Restrictions string
}

// DietPlanRequest carries the parameters for diet plan generation
type DietPlanRequest struct {
	UserID       int
	CalorieGoal  int
	DietType     string
	Restrictions string
	Goal         string
	MealsPerDay  int
}

// FormAnalysisRequest carries a described exercise attempt for review
type FormAnalysisRequest struct {
	UserID      int
	Exercise    string
	Description string
}

// InsightsRequest carries a user's history summary for analysis
type InsightsRequest struct {
	UserID          int
	WorkoutHistory  string
	DietHistory     string
	ProgressMetrics string
	Goal            string
}

// Service defines the AI coaching operations
type Service interface {
	GenerateWorkoutPlan(ctx context.Context, req WorkoutPlanRequest) (string, error)
	GenerateDietPlan(ctx context.Context, req DietPlanRequest) (string, error)
	AnalyzeWorkoutForm(ctx context.Context, req FormAnalysisRequest) (string, error)
	GenerateFitnessInsights(ctx context.Context, req InsightsRequest) (string, error)
	AnswerFitnessQuestion(ctx context.Context, userID int, question string) (string, error)
}

type service struct {
	generator Generator // nil when no backend is configured
	bus       event.Bus
}

// NewService creates a new planner service. Pass a nil generator to run in
// fallback-only mode.
func NewService(generator Generator, bus event.Bus) Service {
	return &service{
		generator: generator,
		bus:       bus,
	}
}

// generate runs the prompt through the backend when one is configured,
// falling back to the canned plan on any failure.
func (s *service) generate(ctx context.Context, userID int, planType, prompt, fallback string) (string, error) {
	log := logger.FromContext(ctx)

	text := fallback
	usedFallback := true

	if s.generator != nil {
		generated, err := s.generator.GenerateContent(ctx, prompt)
		if err != nil {
			log.Warn("plan generation failed, serving fallback", "plan_type", planType, "error", err)
		} else {
			text = generated
			usedFallback = false
		}
	}

	if err := s.bus.Publish(ctx, event.NewPlanGeneratedEvent(userID, planType, usedFallback)); err != nil {
		log.Warn("failed to publish plan generated event", "error", err)
	}

	return text, nil
}

func (s *service) GenerateWorkoutPlan(ctx context.Context, req WorkoutPlanRequest) (string, error) {
	prompt := fmt.Sprintf(`Create a personalized workout plan with the following parameters:
- Fitness Level: %s
- Goal: %s
- Available Equipment: %s
- Workout Duration: %d minutes
- Frequency: %d days per week
- Preferences: %s
- Restrictions/Injuries: %s

Format the response as a detailed workout plan with:
1. A brief introduction explaining the plan's focus
2. Weekly schedule breakdown
3. Detailed exercises with sets, reps, and rest periods
4. Progressive overload suggestions
5. Warm-up and cool-down recommendations`,
		req.FitnessLevel, req.Goal, req.Equipment, req.Duration, req.Frequency, req.Preferences, req.Restrictions)

	return s.generate(ctx, req.UserID, PlanTypeWorkout, prompt, fallbackWorkoutPlan(req))
}

func (s *service) GenerateDietPlan(ctx context.Context, req DietPlanRequest) (string, error) {
	prompt := fmt.Sprintf(`Create a personalized diet plan with the following parameters:
- Daily Calorie Goal: %d calories
- Diet Type: %s
- Dietary Restrictions: %s
- Fitness Goal: %s
- Meals Per Day: %d

Format the response as a detailed meal plan with:
1. A brief introduction explaining the nutritional approach
2. Weekly meal plan with specific foods for each meal
3. Macronutrient breakdown (protein, carbs, fats)
4. Hydration recommendations
5. Supplement suggestions if appropriate
6. Timing of meals relative to workouts`,
		req.CalorieGoal, req.DietType, req.Restrictions, req.Goal, req.MealsPerDay)

	return s.generate(ctx, req.UserID, PlanTypeDiet, prompt, fallbackDietPlan(req))
}

func (s *service) AnalyzeWorkoutForm(ctx context.Context, req FormAnalysisRequest) (string, error) {
	prompt := fmt.Sprintf(`Analyze the following workout form for %s:
%q

Provide detailed feedback on:
1. What's being done correctly
2. Areas for improvement
3. Common mistakes to avoid
4. Safety considerations
5. Specific cues to improve form`,
		req.Exercise, req.Description)

	return s.generate(ctx, req.UserID, PlanTypeForm, prompt, fallbackFormAnalysis(req))
}

func (s *service) GenerateFitnessInsights(ctx context.Context, req InsightsRequest) (string, error) {
	prompt := fmt.Sprintf(`Based on the following user data, provide personalized fitness insights:

Workout History: %s
Diet History: %s
Progress Metrics: %s
Goal: %s

Provide insights on:
1. Progress assessment (what's working, what's not)
2. Potential plateaus and how to overcome them
3. Optimization suggestions for both workout and nutrition
4. Recovery recommendations
5. Next milestone targets`,
		req.WorkoutHistory, req.DietHistory, req.ProgressMetrics, req.Goal)

	return s.generate(ctx, req.UserID, PlanTypeInsights, prompt, fallbackInsights(req))
}

func (s *service) AnswerFitnessQuestion(ctx context.Context, userID int, question string) (string, error) {
	prompt := fmt.Sprintf(`Answer the following fitness question as an expert personal trainer and nutritionist:
%q

Provide an informative, accurate, and helpful response based on current scientific understanding.
Include practical advice when appropriate.`, question)

	return s.generate(ctx, userID, PlanTypeQuestion, prompt, fallbackAnswer(question))
}
