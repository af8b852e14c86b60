package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/handler"
)

func (e *testEnv) createWorkout(t *testing.T, userID int, name string) domain.Workout {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/workouts", handler.CreateWorkoutRequest{
		UserID: userID,
		Name:   name,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Workout
	decode(t, rec, &created)
	return created
}

func (e *testEnv) createExercise(t *testing.T, name string) domain.Exercise {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/exercises", handler.CreateExerciseRequest{
		Name:        name,
		Type:        "strength",
		MuscleGroup: "chest",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Exercise
	decode(t, rec, &created)
	return created
}

func TestWorkoutHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")

	created := env.createWorkout(t, 1, "Push Day")

	// List scoped by user
	rec := env.do(t, http.MethodGet, "/api/workouts?userId=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var workouts []domain.Workout
	decode(t, rec, &workouts)
	require.Len(t, workouts, 1)

	// Missing userId is a 400
	rec = env.do(t, http.MethodGet, "/api/workouts", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Partial update leaves untouched fields alone
	newName := "Pull Day"
	rec = env.do(t, http.MethodPut, fmt.Sprintf("/api/workouts/%d", created.ID), domain.WorkoutPatch{Name: &newName})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.Workout
	decode(t, rec, &updated)
	assert.Equal(t, "Pull Day", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)

	// Delete then 404
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/workouts/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/workouts/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/workouts/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkoutHandler_Exercises(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")
	workout := env.createWorkout(t, 1, "Push Day")
	exercise := env.createExercise(t, "Bench Press")

	exercisesPath := fmt.Sprintf("/api/workouts/%d/exercises", workout.ID)

	// Link the exercise
	rec := env.do(t, http.MethodPost, exercisesPath, handler.AddWorkoutExerciseRequest{
		ExerciseID: exercise.ID,
		Sets:       3,
		Reps:       8,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var link domain.WorkoutExercise
	decode(t, rec, &link)
	assert.Equal(t, workout.ID, link.WorkoutID)
	assert.Equal(t, exercise.ID, link.ExerciseID)

	// Linking an unknown exercise fails
	rec = env.do(t, http.MethodPost, exercisesPath, handler.AddWorkoutExerciseRequest{ExerciseID: 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The pairing shows up in the listing
	rec = env.do(t, http.MethodGet, exercisesPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var links []domain.WorkoutExercise
	decode(t, rec, &links)
	require.Len(t, links, 1)

	// Remove it, then removing again is a 404
	removePath := fmt.Sprintf("/api/workouts/%d/exercises/%d", workout.ID, exercise.ID)
	rec = env.do(t, http.MethodDelete, removePath, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, removePath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExerciseHandler_ListFilters(t *testing.T) {
	env := newTestEnv(t)
	env.createExercise(t, "Bench Press")

	rec := env.do(t, http.MethodPost, "/api/exercises", handler.CreateExerciseRequest{
		Name:        "Treadmill Run",
		Type:        "cardio",
		MuscleGroup: "legs",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "No Filter", query: "", expected: 2},
		{name: "By Type", query: "?type=cardio", expected: 1},
		{name: "By Muscle Group", query: "?muscleGroup=chest", expected: 1},
		{name: "No Match", query: "?type=cardio&muscleGroup=chest", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/exercises"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var exercises []domain.Exercise
			decode(t, rec, &exercises)
			assert.Len(t, exercises, tt.expected)
		})
	}
}

func TestPlanHandler_FallbackMode(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/ai/workout-plan", handler.WorkoutPlanHTTPRequest{
		UserID:       1,
		FitnessLevel: "beginner",
		Goal:         "strength",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.WorkoutPlanResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.WorkoutPlan)

	rec = env.do(t, http.MethodPost, "/api/ai/fitness-question", handler.FitnessQuestionRequest{
		UserID:   1,
		Question: "How often should I deload?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var answer handler.AnswerResponse
	decode(t, rec, &answer)
	assert.NotEmpty(t, answer.Answer)
}
