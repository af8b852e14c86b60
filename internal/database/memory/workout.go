package memory

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// GetWorkout returns the workout by id, or (nil, nil) when absent
func (s *Store) GetWorkout(ctx context.Context, id int) (*domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workout, ok := s.workouts[id]
	if !ok {
		return nil, nil
	}
	return &workout, nil
}

// GetUserWorkouts returns the user's workouts in insertion order
func (s *Store) GetUserWorkouts(ctx context.Context, userID int) ([]domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workouts := []domain.Workout{}
	for _, id := range s.workoutOrder {
		if w := s.workouts[id]; w.UserID == userID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

// CreateWorkout assigns identity, stamps CreatedAt and stores the workout
func (s *Store) CreateWorkout(ctx context.Context, input domain.NewWorkout) (domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextWorkoutID
	s.nextWorkoutID++

	workout := domain.Workout{
		ID:           id,
		UserID:       input.UserID,
		Name:         input.Name,
		Type:         input.Type,
		Difficulty:   input.Difficulty,
		Duration:     input.Duration,
		Calories:     input.Calories,
		Description:  input.Description,
		Completed:    input.Completed,
		ScheduledFor: input.ScheduledFor,
		CreatedAt:    s.now(),
	}
	s.workouts[id] = workout
	s.workoutOrder = append(s.workoutOrder, id)

	return workout, nil
}

// UpdateWorkout shallow-merges the patch into the stored workout.
// Returns (nil, nil) when the id is absent.
func (s *Store) UpdateWorkout(ctx context.Context, id int, patch domain.WorkoutPatch) (*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workout, ok := s.workouts[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&workout)
	s.workouts[id] = workout

	return &workout, nil
}

// DeleteWorkout removes the workout. The id is never reused.
func (s *Store) DeleteWorkout(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workouts[id]; !ok {
		return false, nil
	}
	delete(s.workouts, id)
	s.workoutOrder = removeID(s.workoutOrder, id)

	return true, nil
}

// GetWorkoutExercises returns the junction rows for a workout in
// insertion order
func (s *Store) GetWorkoutExercises(ctx context.Context, workoutID int) ([]domain.WorkoutExercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := []domain.WorkoutExercise{}
	for _, id := range s.workoutExerciseOrder {
		if we := s.workoutExercises[id]; we.WorkoutID == workoutID {
			links = append(links, we)
		}
	}
	return links, nil
}

// AddExerciseToWorkout stores a new junction row. Identical pairings are
// not deduplicated.
func (s *Store) AddExerciseToWorkout(ctx context.Context, input domain.NewWorkoutExercise) (domain.WorkoutExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextWorkoutExerciseID
	s.nextWorkoutExerciseID++

	link := domain.WorkoutExercise{
		ID:         id,
		WorkoutID:  input.WorkoutID,
		ExerciseID: input.ExerciseID,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		Duration:   input.Duration,
		RestTime:   input.RestTime,
		Order:      input.Order,
		CreatedAt:  s.now(),
	}
	s.workoutExercises[id] = link
	s.workoutExerciseOrder = append(s.workoutExerciseOrder, id)

	return link, nil
}

// RemoveExerciseFromWorkout removes the first pairing matching both keys
func (s *Store) RemoveExerciseFromWorkout(ctx context.Context, workoutID, exerciseID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.workoutExerciseOrder {
		we := s.workoutExercises[id]
		if we.WorkoutID == workoutID && we.ExerciseID == exerciseID {
			delete(s.workoutExercises, id)
			s.workoutExerciseOrder = removeID(s.workoutExerciseOrder, id)
			return true, nil
		}
	}
	return false, nil
}

// removeID drops the first occurrence of id from the order slice
func removeID(order []int, id int) []int {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
