// Package workout implements workout planning: workouts, the exercise
// catalog and the pairings between them.
package workout

import (
	"context"
	"fmt"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/repository"
)

// Service defines the workout operations
type Service interface {
	GetWorkout(ctx context.Context, id int) (domain.Workout, error)
	GetUserWorkouts(ctx context.Context, userID int) ([]domain.Workout, error)
	CreateWorkout(ctx context.Context, input domain.NewWorkout) (domain.Workout, error)
	UpdateWorkout(ctx context.Context, id int, patch domain.WorkoutPatch) (domain.Workout, error)
	DeleteWorkout(ctx context.Context, id int) error

	GetExercise(ctx context.Context, id int) (domain.Exercise, error)
	ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, input domain.NewExercise) (domain.Exercise, error)

	GetWorkoutExercises(ctx context.Context, workoutID int) ([]domain.WorkoutExercise, error)
	AddExerciseToWorkout(ctx context.Context, input domain.NewWorkoutExercise) (domain.WorkoutExercise, error)
	RemoveExerciseFromWorkout(ctx context.Context, workoutID, exerciseID int) error
}

// Repository is the persistence surface the service needs
type Repository interface {
	repository.Workout
	repository.WorkoutExercise
	repository.Exercise
}

type service struct {
	repo Repository
}

// NewService creates a new workout service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetWorkout(ctx context.Context, id int) (domain.Workout, error) {
	found, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("failed to get workout: %w", err)
	}
	if found == nil {
		return domain.Workout{}, domain.ErrWorkoutNotFound
	}
	return *found, nil
}

func (s *service) GetUserWorkouts(ctx context.Context, userID int) ([]domain.Workout, error) {
	return s.repo.GetUserWorkouts(ctx, userID)
}

func (s *service) CreateWorkout(ctx context.Context, input domain.NewWorkout) (domain.Workout, error) {
	created, err := s.repo.CreateWorkout(ctx, input)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("failed to create workout: %w", err)
	}

	logger.FromContext(ctx).Info("workout created", "workout_id", created.ID, "user_id", created.UserID)
	return created, nil
}

func (s *service) UpdateWorkout(ctx context.Context, id int, patch domain.WorkoutPatch) (domain.Workout, error) {
	updated, err := s.repo.UpdateWorkout(ctx, id, patch)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("failed to update workout: %w", err)
	}
	if updated == nil {
		return domain.Workout{}, domain.ErrWorkoutNotFound
	}
	return *updated, nil
}

func (s *service) DeleteWorkout(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteWorkout(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if !deleted {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

func (s *service) GetExercise(ctx context.Context, id int) (domain.Exercise, error) {
	found, err := s.repo.GetExercise(ctx, id)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("failed to get exercise: %w", err)
	}
	if found == nil {
		return domain.Exercise{}, domain.ErrExerciseNotFound
	}
	return *found, nil
}

func (s *service) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	return s.repo.ListExercises(ctx, filter)
}

func (s *service) CreateExercise(ctx context.Context, input domain.NewExercise) (domain.Exercise, error) {
	created, err := s.repo.CreateExercise(ctx, input)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("failed to create exercise: %w", err)
	}
	return created, nil
}

func (s *service) GetWorkoutExercises(ctx context.Context, workoutID int) ([]domain.WorkoutExercise, error) {
	workout, err := s.repo.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	if workout == nil {
		return nil, domain.ErrWorkoutNotFound
	}
	return s.repo.GetWorkoutExercises(ctx, workoutID)
}

// AddExerciseToWorkout links an exercise into a workout. Both sides must
// exist; the same pairing may be added more than once.
func (s *service) AddExerciseToWorkout(ctx context.Context, input domain.NewWorkoutExercise) (domain.WorkoutExercise, error) {
	workout, err := s.repo.GetWorkout(ctx, input.WorkoutID)
	if err != nil {
		return domain.WorkoutExercise{}, fmt.Errorf("failed to get workout: %w", err)
	}
	if workout == nil {
		return domain.WorkoutExercise{}, domain.ErrWorkoutNotFound
	}

	exercise, err := s.repo.GetExercise(ctx, input.ExerciseID)
	if err != nil {
		return domain.WorkoutExercise{}, fmt.Errorf("failed to get exercise: %w", err)
	}
	if exercise == nil {
		return domain.WorkoutExercise{}, domain.ErrExerciseNotFound
	}

	return s.repo.AddExerciseToWorkout(ctx, input)
}

func (s *service) RemoveExerciseFromWorkout(ctx context.Context, workoutID, exerciseID int) error {
	removed, err := s.repo.RemoveExerciseFromWorkout(ctx, workoutID, exerciseID)
	if err != nil {
		return fmt.Errorf("failed to remove exercise from workout: %w", err)
	}
	if !removed {
		return domain.ErrWorkoutExerciseNotFound
	}
	return nil
}
