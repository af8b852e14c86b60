package planner

import "fmt"

// Canned plans served when no AI backend is configured or the backend
// fails. They follow the same document shape as real generations so
// clients render both identically.

func fallbackWorkoutPlan(req WorkoutPlanRequest) string {
	main := req.Duration - 15
	if main < 10 {
		main = 10
	}
	return fmt.Sprintf(`# Workout Plan

## %s Workout Plan
**Fitness Level:** %s
**Duration:** %d minutes per session
**Frequency:** %d days per week

### Weekly Schedule
- **Day 1-3:** Upper body focus with compound movements
- **Day 4-5:** Lower body and core strength
- **Day 6-7:** Active recovery or rest

### Sample Exercises
1. **Warm-up** (5-10 min): Dynamic stretching, light cardio
2. **Main Workout** (%d min):
   - Push-ups: 3 sets x 10-15 reps
   - Squats: 3 sets x 12-15 reps
   - Planks: 3 sets x 30-60 sec
3. **Cool-down** (5 min): Static stretching`,
		req.Goal, req.FitnessLevel, req.Duration, req.Frequency, main)
}

func fallbackDietPlan(req DietPlanRequest) string {
	perMeal := 0
	if req.MealsPerDay > 0 {
		perMeal = req.CalorieGoal / req.MealsPerDay
	}
	return fmt.Sprintf(`# Diet Plan

## %s Diet Plan
**Daily Calories:** %d kcal
**Meals Per Day:** %d
**Goal:** %s

### Sample Daily Meal Plan

**Breakfast** (7:00 AM)
- Oatmeal with berries and nuts
- Greek yogurt
*~%d calories*

**Lunch** (12:00 PM)
- Grilled chicken breast
- Brown rice
- Mixed vegetables
*~%d calories*

**Dinner** (7:00 PM)
- Salmon fillet
- Sweet potato
- Salad
*~%d calories*

### Macronutrient Split
- **Protein:** 30%% (~%dg)
- **Carbs:** 40%% (~%dg)
- **Fats:** 30%% (~%dg)`,
		req.DietType, req.CalorieGoal, req.MealsPerDay, req.Goal,
		perMeal, perMeal, perMeal,
		req.CalorieGoal*30/100/4, req.CalorieGoal*40/100/4, req.CalorieGoal*30/100/9)
}

func fallbackFormAnalysis(req FormAnalysisRequest) string {
	return fmt.Sprintf(`# Form Analysis for %s

**Your Description:** %q

## General Tips for %s:
- Focus on controlled movements
- Maintain proper breathing
- Start with lighter weights to master form
- Consider filming yourself for self-assessment`,
		req.Exercise, req.Description, req.Exercise)
}

func fallbackInsights(req InsightsRequest) string {
	return fmt.Sprintf(`# Fitness Insights

## Your Goal: %s

### Key Recommendations
1. **Workout:** Continue progressive overload
2. **Nutrition:** Stay within your calorie targets
3. **Recovery:** Ensure 7-8 hours of sleep
4. **Hydration:** Drink at least 2-3 liters of water daily

### Next Milestones
- Track weekly progress photos
- Measure body composition monthly
- Adjust macros based on results`, req.Goal)
}

func fallbackAnswer(question string) string {
	return fmt.Sprintf(`# Fitness Coach

**Your Question:** %q

### General Fitness Tips:
- **Consistency is key** - Regular exercise is more important than intensity
- **Progressive overload** - Gradually increase difficulty over time
- **Recovery matters** - Get adequate sleep and rest days
- **Nutrition is 70%%** - You can't out-train a bad diet
- **Stay hydrated** - Drink water throughout the day`, question)
}
