package repository

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// Challenge defines the interface for challenge persistence.
//
// Invariant maintained by every implementation: a challenge's
// ParticipantCount equals the number of stored participants for that
// challenge, and never drops below zero. All mutations of the counter
// happen inside JoinChallenge/LeaveChallenge, atomically with the
// participant row.
type Challenge interface {
	GetChallenges(ctx context.Context) ([]domain.Challenge, error)
	GetChallenge(ctx context.Context, id int) (*domain.Challenge, error)
	CreateChallenge(ctx context.Context, input domain.NewChallenge) (domain.Challenge, error)

	// JoinChallenge creates a participant (JoinedAt = now, not completed)
	// and increments the challenge's ParticipantCount by exactly one.
	// Returns domain.ErrChallengeNotFound when the challenge is absent and
	// domain.ErrAlreadyJoined when the user already participates.
	JoinChallenge(ctx context.Context, challengeID, userID int) (domain.ChallengeParticipant, error)

	// LeaveChallenge removes the first participant matching both keys and
	// decrements ParticipantCount by one, clamped at zero. Returns false
	// when no participation exists.
	LeaveChallenge(ctx context.Context, challengeID, userID int) (bool, error)

	GetChallengeParticipants(ctx context.Context, challengeID int) ([]domain.ChallengeParticipant, error)
	GetUserChallenges(ctx context.Context, userID int) ([]domain.Challenge, error)
}
