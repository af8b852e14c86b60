package domain

import "time"

// Exercise represents a reusable exercise definition
type Exercise struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`        // strength, cardio, etc.
	MuscleGroup  string    `json:"muscleGroup"` // chest, back, legs, etc.
	Difficulty   string    `json:"difficulty"`
	Equipment    string    `json:"equipment,omitempty"`
	Description  string    `json:"description,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewExercise carries the caller-supplied fields for exercise creation
type NewExercise struct {
	Name         string
	Type         string
	MuscleGroup  string
	Difficulty   string
	Equipment    string
	Description  string
	Instructions string
	VideoURL     string
}

// ExerciseFilter selects exercises by equality on the set fields.
// Zero values mean "no filter".
type ExerciseFilter struct {
	Type        string
	MuscleGroup string
}

// Matches reports whether the exercise satisfies the filter
func (f ExerciseFilter) Matches(e Exercise) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.MuscleGroup != "" && e.MuscleGroup != f.MuscleGroup {
		return false
	}
	return true
}

// WorkoutExercise links an exercise into a workout with prescription details
type WorkoutExercise struct {
	ID         int       `json:"id"`
	WorkoutID  int       `json:"workoutId"`
	ExerciseID int       `json:"exerciseId"`
	Sets       int       `json:"sets,omitempty"`
	Reps       int       `json:"reps,omitempty"`
	Weight     int       `json:"weight,omitempty"`   // in kg
	Duration   int       `json:"duration,omitempty"` // in seconds
	RestTime   int       `json:"restTime,omitempty"` // in seconds
	Order      int       `json:"order"`              // position within the workout
	CreatedAt  time.Time `json:"createdAt"`
}

// NewWorkoutExercise carries the caller-supplied fields for linking an
// exercise into a workout
type NewWorkoutExercise struct {
	WorkoutID  int
	ExerciseID int
	Sets       int
	Reps       int
	Weight     int
	Duration   int
	RestTime   int
	Order      int
}
