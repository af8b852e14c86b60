package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(CharacterLevelUp, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	ev := NewCharacterLevelUpEvent(1, 2, "Berserker", 1, 2)
	err := bus.Publish(context.Background(), ev)
	require.NoError(t, err)

	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(CharacterLevelUpPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 1, payload.CharacterID)
	assert.Equal(t, 2, payload.NewLevel)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewUserRegisteredEvent(1))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()

	var secondCalled bool
	bus.Subscribe(ChallengeJoined, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(ChallengeJoined, func(ctx context.Context, e Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewChallengeJoinedEvent(1, 1, 1))
	assert.Error(t, err)
	assert.True(t, secondCalled)
}

func TestMemoryBus_SubscribersAreTypeScoped(t *testing.T) {
	bus := NewMemoryBus()

	var calls int
	bus.Subscribe(ChallengeJoined, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewChallengeLeftEvent(1, 1, 0)))
	assert.Zero(t, calls)
}
