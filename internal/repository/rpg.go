package repository

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// Character defines the interface for character persistence.
// Characters are created once and mutated only through GrantXP; there is
// no delete operation.
type Character interface {
	// CreateCharacter stores a fresh character at level 1 with zero XP and
	// a zeroed stat block.
	CreateCharacter(ctx context.Context, input domain.NewCharacter) (domain.Character, error)
	GetCharacter(ctx context.Context, id int) (*domain.Character, error)
	GetUserCharacters(ctx context.Context, userID int) ([]domain.Character, error)

	// GrantXP applies the XP delta and the derived level in one atomic
	// step against the stored copy. Negative amounts contribute nothing.
	// Returns (nil, nil) when the character is absent.
	GrantXP(ctx context.Context, id, amount int) (*domain.Character, error)
}

// Quest defines the interface for the quest catalog
type Quest interface {
	// ListQuests returns all quests in insertion order.
	ListQuests(ctx context.Context) ([]domain.Quest, error)
	CreateQuest(ctx context.Context, input domain.NewQuest) (domain.Quest, error)
}
