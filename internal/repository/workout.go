package repository

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// Workout defines the interface for workout persistence
type Workout interface {
	GetWorkout(ctx context.Context, id int) (*domain.Workout, error)
	GetUserWorkouts(ctx context.Context, userID int) ([]domain.Workout, error)
	CreateWorkout(ctx context.Context, input domain.NewWorkout) (domain.Workout, error)
	// UpdateWorkout shallow-merges the patch. ID and CreatedAt are never
	// changed. Returns (nil, nil) when the id is absent.
	UpdateWorkout(ctx context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id int) (bool, error)
}

// WorkoutExercise defines the interface for the workout/exercise junction
type WorkoutExercise interface {
	GetWorkoutExercises(ctx context.Context, workoutID int) ([]domain.WorkoutExercise, error)
	AddExerciseToWorkout(ctx context.Context, input domain.NewWorkoutExercise) (domain.WorkoutExercise, error)
	// RemoveExerciseFromWorkout removes the first pairing matching both
	// keys. Identical pairings are not deduplicated; each call removes at
	// most one.
	RemoveExerciseFromWorkout(ctx context.Context, workoutID, exerciseID int) (bool, error)
}

// Exercise defines the interface for exercise persistence
type Exercise interface {
	GetExercise(ctx context.Context, id int) (*domain.Exercise, error)
	ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, input domain.NewExercise) (domain.Exercise, error)
}
