package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event types emitted by the services
const (
	CharacterLevelUp Type = "character.level_up"
	CharacterXPGain  Type = "character.xp_gain"
	ChallengeJoined  Type = "challenge.joined"
	ChallengeLeft    Type = "challenge.left"
	QuestCreated     Type = "quest.created"
	UserRegistered   Type = "user.registered"
	PlanGenerated    Type = "plan.generated"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// CharacterXPGainPayloadV1 is the typed payload for XP gain events
type CharacterXPGainPayloadV1 struct {
	CharacterID int   `json:"character_id"`
	UserID      int   `json:"user_id"`
	Amount      int   `json:"amount"`
	TotalXP     int   `json:"total_xp"`
	Timestamp   int64 `json:"timestamp"`
}

// CharacterLevelUpPayloadV1 is the typed payload for level up events
type CharacterLevelUpPayloadV1 struct {
	CharacterID int    `json:"character_id"`
	UserID      int    `json:"user_id"`
	ClassName   string `json:"class_name"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	Timestamp   int64  `json:"timestamp"`
}

// ChallengeMembershipPayloadV1 is the typed payload for join and leave events
type ChallengeMembershipPayloadV1 struct {
	ChallengeID      int   `json:"challenge_id"`
	UserID           int   `json:"user_id"`
	ParticipantCount int   `json:"participant_count"`
	Timestamp        int64 `json:"timestamp"`
}

// QuestCreatedPayloadV1 is the typed payload for quest creation events
type QuestCreatedPayloadV1 struct {
	QuestID   int    `json:"quest_id"`
	Tier      string `json:"tier"`
	Timestamp int64  `json:"timestamp"`
}

// UserRegisteredPayloadV1 is the typed payload for registration events
type UserRegisteredPayloadV1 struct {
	UserID    int   `json:"user_id"`
	Timestamp int64 `json:"timestamp"`
}

// PlanGeneratedPayloadV1 is the typed payload for AI plan events
type PlanGeneratedPayloadV1 struct {
	UserID    int    `json:"user_id"`
	PlanType  string `json:"plan_type"` // "workout" or "meal"
	Fallback  bool   `json:"fallback"`  // true when the canned plan was served
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCharacterXPGainEvent creates a new XP gain event
func NewCharacterXPGainEvent(characterID, userID, amount, totalXP int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterXPGain,
		Payload: CharacterXPGainPayloadV1{
			CharacterID: characterID,
			UserID:      userID,
			Amount:      amount,
			TotalXP:     totalXP,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewCharacterLevelUpEvent creates a new level up event
func NewCharacterLevelUpEvent(characterID, userID int, className string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterLevelUp,
		Payload: CharacterLevelUpPayloadV1{
			CharacterID: characterID,
			UserID:      userID,
			ClassName:   className,
			OldLevel:    oldLevel,
			NewLevel:    newLevel,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewChallengeJoinedEvent creates a new challenge joined event
func NewChallengeJoinedEvent(challengeID, userID, participantCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChallengeJoined,
		Payload: ChallengeMembershipPayloadV1{
			ChallengeID:      challengeID,
			UserID:           userID,
			ParticipantCount: participantCount,
			Timestamp:        time.Now().Unix(),
		},
	}
}

// NewChallengeLeftEvent creates a new challenge left event
func NewChallengeLeftEvent(challengeID, userID, participantCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChallengeLeft,
		Payload: ChallengeMembershipPayloadV1{
			ChallengeID:      challengeID,
			UserID:           userID,
			ParticipantCount: participantCount,
			Timestamp:        time.Now().Unix(),
		},
	}
}

// NewQuestCreatedEvent creates a new quest created event
func NewQuestCreatedEvent(questID int, tier string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCreated,
		Payload: QuestCreatedPayloadV1{
			QuestID:   questID,
			Tier:      tier,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewUserRegisteredEvent creates a new user registered event
func NewUserRegisteredEvent(userID int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: UserRegisteredPayloadV1{
			UserID:    userID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlanGeneratedEvent creates a new plan generated event
func NewPlanGeneratedEvent(userID int, planType string, fallback bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlanGenerated,
		Payload: PlanGeneratedPayloadV1{
			UserID:    userID,
			PlanType:  planType,
			Fallback:  fallback,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously in subscription order; one failing handler does not stop
// the rest.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
