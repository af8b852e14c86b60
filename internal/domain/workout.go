package domain

import "time"

// Workout represents a planned or completed workout session
type Workout struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`       // strength, cardio, flexibility, etc.
	Difficulty   string     `json:"difficulty"` // beginner, intermediate, advanced
	Duration     int        `json:"duration"`   // in minutes
	Calories     int        `json:"calories,omitempty"`
	Description  string     `json:"description,omitempty"`
	Completed    bool       `json:"completed"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewWorkout carries the caller-supplied fields for workout creation
type NewWorkout struct {
	UserID       int
	Name         string
	Type         string
	Difficulty   string
	Duration     int
	Calories     int
	Description  string
	Completed    bool
	ScheduledFor *time.Time
}

// WorkoutPatch is a shallow-merge update. Nil fields are left untouched.
// ID and CreatedAt are not patchable by construction.
type WorkoutPatch struct {
	Name         *string    `json:"name,omitempty"`
	Type         *string    `json:"type,omitempty"`
	Difficulty   *string    `json:"difficulty,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Calories     *int       `json:"calories,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Completed    *bool      `json:"completed,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

// Apply merges the patch into the workout
func (p WorkoutPatch) Apply(w *Workout) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Difficulty != nil {
		w.Difficulty = *p.Difficulty
	}
	if p.Duration != nil {
		w.Duration = *p.Duration
	}
	if p.Calories != nil {
		w.Calories = *p.Calories
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Completed != nil {
		w.Completed = *p.Completed
	}
	if p.ScheduledFor != nil {
		w.ScheduledFor = p.ScheduledFor
	}
}
