package repository

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// User defines the interface for user persistence.
//
// Absence is a sentinel, not an error: lookups return (nil, nil) when no
// entity matches. Constraint violations (duplicate username) are returned
// as domain errors.
type User interface {
	// CreateUser assigns identity, stamps CreatedAt and stores the user.
	// The uniqueness check on username is atomic with the insert; a
	// duplicate returns domain.ErrUsernameTaken.
	CreateUser(ctx context.Context, input domain.NewUser) (domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
