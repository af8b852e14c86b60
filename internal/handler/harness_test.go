package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/FitQuest_Go/internal/challenge"
	"github.com/fitquest/FitQuest_Go/internal/database/memory"
	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/handler"
	"github.com/fitquest/FitQuest_Go/internal/meal"
	"github.com/fitquest/FitQuest_Go/internal/planner"
	"github.com/fitquest/FitQuest_Go/internal/progress"
	"github.com/fitquest/FitQuest_Go/internal/rpg"
	"github.com/fitquest/FitQuest_Go/internal/server"
	"github.com/fitquest/FitQuest_Go/internal/user"
	"github.com/fitquest/FitQuest_Go/internal/workout"
)

// testEnv runs the handlers against the real in-memory store so tests
// exercise the same wiring as production.
type testEnv struct {
	router chi.Router
	store  *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	handler.InitValidator()

	store := memory.NewStore()
	bus := event.NewMemoryBus()

	services := server.Services{
		User:      user.NewService(store, bus),
		Workout:   workout.NewService(store),
		Meal:      meal.NewService(store),
		Progress:  progress.NewService(store),
		Challenge: challenge.NewService(store, store, bus),
		RPG:       rpg.NewService(store, bus),
		Planner:   planner.NewService(nil, bus),
	}

	return &testEnv{
		router: server.NewRouter(nil, store, services),
		store:  store,
	}
}

// do sends a request through the router and returns the recorder
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into out
func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerUser creates a user through the API and returns it
func (e *testEnv) registerUser(t *testing.T, username string) domain.User {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", handler.RegisterRequest{
		Username: username,
		Password: "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.User
	decode(t, rec, &created)
	return created
}
