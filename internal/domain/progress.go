package domain

import "time"

// ProgressRecord is a point-in-time snapshot of a user's measurements
type ProgressRecord struct {
	ID                int       `json:"id"`
	UserID            int       `json:"userId"`
	Weight            int       `json:"weight,omitempty"`   // in kg
	Strength          int       `json:"strength,omitempty"` // arbitrary strength score
	WorkoutsCompleted int       `json:"workoutsCompleted,omitempty"`
	RecordDate        time.Time `json:"recordDate"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewProgressRecord carries the caller-supplied fields for record creation
type NewProgressRecord struct {
	UserID            int
	Weight            int
	Strength          int
	WorkoutsCompleted int
	RecordDate        time.Time
}
