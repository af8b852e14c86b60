package memory

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// GetExercise returns the exercise by id, or (nil, nil) when absent
func (s *Store) GetExercise(ctx context.Context, id int) (*domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercise, ok := s.exercises[id]
	if !ok {
		return nil, nil
	}
	return &exercise, nil
}

// ListExercises returns exercises matching the filter in insertion order
func (s *Store) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercises := []domain.Exercise{}
	for _, id := range s.exerciseOrder {
		if e := s.exercises[id]; filter.Matches(e) {
			exercises = append(exercises, e)
		}
	}
	return exercises, nil
}

// CreateExercise assigns identity, stamps CreatedAt and stores the exercise
func (s *Store) CreateExercise(ctx context.Context, input domain.NewExercise) (domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createExerciseLocked(input), nil
}

func (s *Store) createExerciseLocked(input domain.NewExercise) domain.Exercise {
	id := s.nextExerciseID
	s.nextExerciseID++

	exercise := domain.Exercise{
		ID:           id,
		Name:         input.Name,
		Type:         input.Type,
		MuscleGroup:  input.MuscleGroup,
		Difficulty:   input.Difficulty,
		Equipment:    input.Equipment,
		Description:  input.Description,
		Instructions: input.Instructions,
		VideoURL:     input.VideoURL,
		CreatedAt:    s.now(),
	}
	s.exercises[id] = exercise
	s.exerciseOrder = append(s.exerciseOrder, id)

	return exercise
}
