package domain

import "time"

// Default profile values applied at registration when the caller omits them
const (
	DefaultFitnessLevel = "beginner"
	DefaultGoal         = "general_fitness"
)

// User represents a registered user
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"password,omitempty"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	FitnessLevel string    `json:"fitnessLevel"`
	Height       int       `json:"height,omitempty"` // in cm
	Weight       int       `json:"weight,omitempty"` // in kg
	Goal         string    `json:"goal"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser carries the caller-supplied fields for user creation.
// The store assigns ID and CreatedAt.
type NewUser struct {
	Username     string
	Password     string
	FirstName    string
	LastName     string
	Email        string
	FitnessLevel string
	Height       int
	Weight       int
	Goal         string
}

// Sanitized returns a copy of the user with the password cleared.
// Every API response goes through this before serialization.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
