package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/handler"
)

func (e *testEnv) createChallenge(t *testing.T, name string) domain.Challenge {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/challenges", handler.CreateChallengeRequest{
		Name:      name,
		Goal:      "Do the thing",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Challenge
	decode(t, rec, &created)
	return created
}

func TestChallengeHandler_JoinAndLeave(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")
	ch := env.createChallenge(t, "Summer Shred")

	joinPath := fmt.Sprintf("/api/challenges/%d/join", ch.ID)

	// Join succeeds and the count reflects the membership
	rec := env.do(t, http.MethodPost, joinPath, handler.JoinChallengeRequest{UserID: 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var participant domain.ChallengeParticipant
	decode(t, rec, &participant)
	assert.Equal(t, ch.ID, participant.ChallengeID)
	assert.Equal(t, 1, participant.UserID)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var after domain.Challenge
	decode(t, rec, &after)
	assert.Equal(t, 1, after.ParticipantCount)

	// Joining again is a conflict and the count stays put
	rec = env.do(t, http.MethodPost, joinPath, handler.JoinChallengeRequest{UserID: 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil)
	decode(t, rec, &after)
	assert.Equal(t, 1, after.ParticipantCount)

	// Leave drops the membership and the count
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/challenges/%d/leave?userId=1", ch.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/challenges/%d", ch.ID), nil)
	decode(t, rec, &after)
	assert.Equal(t, 0, after.ParticipantCount)

	// Leaving again is a 404
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/challenges/%d/leave?userId=1", ch.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChallengeHandler_Join_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")
	ch := env.createChallenge(t, "Summer Shred")

	tests := []struct {
		name           string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "Unknown Challenge",
			path:           "/api/challenges/999/join",
			body:           handler.JoinChallengeRequest{UserID: 1},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Unknown User",
			path:           fmt.Sprintf("/api/challenges/%d/join", ch.ID),
			body:           handler.JoinChallengeRequest{UserID: 999},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing User",
			path:           fmt.Sprintf("/api/challenges/%d/join", ch.ID),
			body:           map[string]int{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestChallengeHandler_Participants(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")
	env.registerUser(t, "bob")
	ch := env.createChallenge(t, "Summer Shred")

	for userID := 1; userID <= 2; userID++ {
		rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/challenges/%d/join", ch.ID), handler.JoinChallengeRequest{UserID: userID})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/challenges/%d/participants", ch.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var participants []domain.ChallengeParticipant
	decode(t, rec, &participants)
	require.Len(t, participants, 2)
	assert.Equal(t, 1, participants[0].UserID)
	assert.Equal(t, 2, participants[1].UserID)

	rec = env.do(t, http.MethodGet, "/api/challenges/999/participants", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChallengeHandler_UserChallenges(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice")
	first := env.createChallenge(t, "Summer Shred")
	second := env.createChallenge(t, "1000 lb Club")

	for _, ch := range []domain.Challenge{first, second} {
		rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/challenges/%d/join", ch.ID), handler.JoinChallengeRequest{UserID: 1})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/users/1/challenges", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var joined []domain.Challenge
	decode(t, rec, &joined)
	require.Len(t, joined, 2)
	assert.Equal(t, first.ID, joined[0].ID)
	assert.Equal(t, second.ID, joined[1].ID)
}
