package workout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/FitQuest_Go/internal/database/memory"
	"github.com/fitquest/FitQuest_Go/internal/domain"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(memory.NewStore())
}

func TestCreateAndGetWorkout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, domain.NewWorkout{
		UserID:     1,
		Name:       "Push Day",
		Type:       "strength",
		Difficulty: "intermediate",
		Duration:   45,
	})
	require.NoError(t, err)

	got, err := svc.GetWorkout(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetWorkout_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetWorkout(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestUpdateWorkout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "Push Day"})
	require.NoError(t, err)

	completed := true
	updated, err := svc.UpdateWorkout(ctx, created.ID, domain.WorkoutPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Push Day", updated.Name)

	_, err = svc.UpdateWorkout(ctx, 99, domain.WorkoutPatch{Completed: &completed})
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestDeleteWorkout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "Push Day"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkout(ctx, created.ID))

	err = svc.DeleteWorkout(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestAddExerciseToWorkout_ValidatesBothSides(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	workout, err := svc.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "Push Day"})
	require.NoError(t, err)

	exercise, err := svc.CreateExercise(ctx, domain.NewExercise{
		Name:        "Bench Press",
		Type:        "strength",
		MuscleGroup: "chest",
	})
	require.NoError(t, err)

	link, err := svc.AddExerciseToWorkout(ctx, domain.NewWorkoutExercise{
		WorkoutID:  workout.ID,
		ExerciseID: exercise.ID,
		Sets:       3,
		Reps:       8,
	})
	require.NoError(t, err)
	assert.Equal(t, workout.ID, link.WorkoutID)

	_, err = svc.AddExerciseToWorkout(ctx, domain.NewWorkoutExercise{WorkoutID: 99, ExerciseID: exercise.ID})
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	_, err = svc.AddExerciseToWorkout(ctx, domain.NewWorkoutExercise{WorkoutID: workout.ID, ExerciseID: 99})
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}

func TestRemoveExerciseFromWorkout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	workout, err := svc.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "Push Day"})
	require.NoError(t, err)
	exercise, err := svc.CreateExercise(ctx, domain.NewExercise{Name: "Bench Press", Type: "strength", MuscleGroup: "chest"})
	require.NoError(t, err)

	_, err = svc.AddExerciseToWorkout(ctx, domain.NewWorkoutExercise{WorkoutID: workout.ID, ExerciseID: exercise.ID})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveExerciseFromWorkout(ctx, workout.ID, exercise.ID))

	err = svc.RemoveExerciseFromWorkout(ctx, workout.ID, exercise.ID)
	assert.ErrorIs(t, err, domain.ErrWorkoutExerciseNotFound)
}

func TestGetWorkoutExercises_RequiresWorkout(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetWorkoutExercises(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}
