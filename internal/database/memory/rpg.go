package memory

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/leveling"
)

// CreateCharacter stores a new character at level 1, zero XP and a zeroed
// stat block. Class validation happens at the service boundary.
func (s *Store) CreateCharacter(ctx context.Context, input domain.NewCharacter) (domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCharacterID
	s.nextCharacterID++

	character := domain.Character{
		ID:        id,
		UserID:    input.UserID,
		Name:      input.Name,
		ClassName: input.ClassName,
		Level:     1,
		XP:        0,
		Stats:     domain.Stats{},
		CreatedAt: s.now(),
	}
	s.characters[id] = character
	s.characterOrder = append(s.characterOrder, id)

	return character, nil
}

// GetCharacter returns the character by id, or (nil, nil) when absent
func (s *Store) GetCharacter(ctx context.Context, id int) (*domain.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	character, ok := s.characters[id]
	if !ok {
		return nil, nil
	}
	return &character, nil
}

// GetUserCharacters returns the user's characters in creation order
func (s *Store) GetUserCharacters(ctx context.Context, userID int) ([]domain.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	characters := []domain.Character{}
	for _, id := range s.characterOrder {
		if c := s.characters[id]; c.UserID == userID {
			characters = append(characters, c)
		}
	}
	return characters, nil
}

// GrantXP applies an XP gain and rederives the level as one store
// operation under the write lock, so concurrent grants to the same
// character never lose an increment. Negative amounts are treated as zero.
// Returns (nil, nil) when the character is absent.
func (s *Store) GrantXP(ctx context.Context, characterID, amount int) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	character, ok := s.characters[characterID]
	if !ok {
		return nil, nil
	}

	character = leveling.ApplyXP(character, amount)
	s.characters[characterID] = character

	return &character, nil
}

// ListQuests returns all quests in insertion order
func (s *Store) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quests := []domain.Quest{}
	for _, id := range s.questOrder {
		quests = append(quests, s.quests[id])
	}
	return quests, nil
}

// CreateQuest stores a new quest. Tier validation happens at the service
// boundary.
func (s *Store) CreateQuest(ctx context.Context, input domain.NewQuest) (domain.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createQuestLocked(input), nil
}

func (s *Store) createQuestLocked(input domain.NewQuest) domain.Quest {
	id := s.nextQuestID
	s.nextQuestID++

	quest := domain.Quest{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Tier:        input.Tier,
		CreatedAt:   s.now(),
	}
	s.quests[id] = quest
	s.questOrder = append(s.questOrder, id)

	return quest
}
