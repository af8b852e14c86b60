// Package rpg implements the character progression system: class-bound
// characters, XP grants with derived levels, and the tiered quest catalog.
package rpg

import (
	"context"
	"fmt"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/metrics"
	"github.com/fitquest/FitQuest_Go/internal/repository"
)

// Service defines the RPG operations
type Service interface {
	// CreateCharacter validates the class and creates a level 1 character
	// with zero XP. The owner id is recorded as given, not resolved against
	// the user table. Returns domain.ErrInvalidClass on an unknown class.
	CreateCharacter(ctx context.Context, input domain.NewCharacter) (domain.Character, error)
	GetCharacter(ctx context.Context, id int) (domain.Character, error)
	GetUserCharacters(ctx context.Context, userID int) ([]domain.Character, error)

	// GrantXP adds XP to a character and rederives its level. The amount
	// must be positive; level only ever moves up.
	GrantXP(ctx context.Context, characterID, amount int) (domain.Character, error)

	// Classes returns the fixed set of playable classes.
	Classes(ctx context.Context) []string

	ListQuests(ctx context.Context) ([]domain.Quest, error)
	// CreateQuest validates the tier and adds a quest to the catalog.
	CreateQuest(ctx context.Context, input domain.NewQuest) (domain.Quest, error)
}

// Repository is the persistence surface the service needs
type Repository interface {
	repository.Character
	repository.Quest
}

type service struct {
	repo Repository
	bus  event.Bus
}

// NewService creates a new RPG service
func NewService(repo Repository, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

func (s *service) CreateCharacter(ctx context.Context, input domain.NewCharacter) (domain.Character, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidCharacterClass(input.ClassName) {
		return domain.Character{}, fmt.Errorf("%w: %q", domain.ErrInvalidClass, input.ClassName)
	}

	created, err := s.repo.CreateCharacter(ctx, input)
	if err != nil {
		return domain.Character{}, fmt.Errorf("failed to create character: %w", err)
	}

	metrics.CharactersCreated.WithLabelValues(created.ClassName).Inc()
	log.Info("character created",
		"character_id", created.ID,
		"user_id", created.UserID,
		"class", created.ClassName)

	return created, nil
}

func (s *service) GetCharacter(ctx context.Context, id int) (domain.Character, error) {
	found, err := s.repo.GetCharacter(ctx, id)
	if err != nil {
		return domain.Character{}, fmt.Errorf("failed to get character: %w", err)
	}
	if found == nil {
		return domain.Character{}, domain.ErrCharacterNotFound
	}
	return *found, nil
}

func (s *service) GetUserCharacters(ctx context.Context, userID int) ([]domain.Character, error) {
	return s.repo.GetUserCharacters(ctx, userID)
}

func (s *service) GrantXP(ctx context.Context, characterID, amount int) (domain.Character, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return domain.Character{}, fmt.Errorf("%w: xp amount must be positive", domain.ErrInvalidInput)
	}

	before, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return domain.Character{}, fmt.Errorf("failed to get character: %w", err)
	}
	if before == nil {
		return domain.Character{}, domain.ErrCharacterNotFound
	}

	after, err := s.repo.GrantXP(ctx, characterID, amount)
	if err != nil {
		return domain.Character{}, fmt.Errorf("failed to grant xp: %w", err)
	}
	if after == nil {
		return domain.Character{}, domain.ErrCharacterNotFound
	}

	if err := s.bus.Publish(ctx, event.NewCharacterXPGainEvent(after.ID, after.UserID, amount, after.XP)); err != nil {
		log.Warn("failed to publish xp gain event", "error", err)
	}

	if after.Level > before.Level {
		log.Info("character leveled up",
			"character_id", after.ID,
			"old_level", before.Level,
			"new_level", after.Level)
		if err := s.bus.Publish(ctx, event.NewCharacterLevelUpEvent(after.ID, after.UserID, after.ClassName, before.Level, after.Level)); err != nil {
			log.Warn("failed to publish level up event", "error", err)
		}
	}

	return *after, nil
}

func (s *service) Classes(ctx context.Context) []string {
	classes := make([]string, len(domain.CharacterClasses))
	copy(classes, domain.CharacterClasses)
	return classes
}

func (s *service) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	return s.repo.ListQuests(ctx)
}

func (s *service) CreateQuest(ctx context.Context, input domain.NewQuest) (domain.Quest, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidQuestTier(input.Tier) {
		return domain.Quest{}, fmt.Errorf("%w: %q", domain.ErrInvalidTier, input.Tier)
	}

	created, err := s.repo.CreateQuest(ctx, input)
	if err != nil {
		return domain.Quest{}, fmt.Errorf("failed to create quest: %w", err)
	}

	if err := s.bus.Publish(ctx, event.NewQuestCreatedEvent(created.ID, created.Tier)); err != nil {
		log.Warn("failed to publish quest created event", "error", err)
	}

	log.Info("quest created", "quest_id", created.ID, "tier", created.Tier)
	return created, nil
}
