package metrics

import (
	"context"
	"strconv"

	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CharacterXPGain,
		event.CharacterLevelUp,
		event.ChallengeJoined,
		event.ChallengeLeft,
		event.QuestCreated,
		event.UserRegistered,
		event.PlanGenerated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.CharacterXPGainPayloadV1:
		XPGranted.Add(float64(payload.Amount))

	case event.CharacterLevelUpPayloadV1:
		LevelUps.WithLabelValues(payload.ClassName).Inc()

	case event.ChallengeMembershipPayloadV1:
		switch evt.Type {
		case event.ChallengeJoined:
			ChallengeJoins.Inc()
		case event.ChallengeLeft:
			ChallengeLeaves.Inc()
		}

	case event.QuestCreatedPayloadV1:
		QuestsCreated.WithLabelValues(payload.Tier).Inc()

	case event.UserRegisteredPayloadV1:
		UsersRegistered.Inc()

	case event.PlanGeneratedPayloadV1:
		PlansGenerated.WithLabelValues(payload.PlanType, strconv.FormatBool(payload.Fallback)).Inc()

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
