package domain

import "time"

// Challenge represents a time-bounded community goal
type Challenge struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Difficulty       string    `json:"difficulty"` // beginner, intermediate, advanced
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Goal             string    `json:"goal"`
	Reward           string    `json:"reward,omitempty"`
	ParticipantCount int       `json:"participantCount"` // derived, never negative
	IsFeatured       bool      `json:"isFeatured"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewChallenge carries the caller-supplied fields for challenge creation.
// ParticipantCount always starts at zero.
type NewChallenge struct {
	Name        string
	Description string
	Difficulty  string
	StartDate   time.Time
	EndDate     time.Time
	Goal        string
	Reward      string
	IsFeatured  bool
}

// ChallengeParticipant records one user's membership in a challenge
type ChallengeParticipant struct {
	ID          int        `json:"id"`
	ChallengeID int        `json:"challengeId"`
	UserID      int        `json:"userId"`
	JoinedAt    time.Time  `json:"joinedAt"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
