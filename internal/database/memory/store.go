// Package memory provides the in-memory implementation of the repository
// interfaces. The Store is the single source of truth for every entity:
// it assigns identity, stamps creation times and maintains the challenge
// participant-count invariant.
//
// Concurrency: one RWMutex guards all maps and counters. Mutations take
// the write lock, so per-entity updates are serialized and id counters can
// never hand out the same id twice. Reads take the read lock and return
// copies; callers can mutate what they get back without touching stored
// state.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// Store holds every entity collection and its id counter. Counters start
// at 1 and are never reused, even after deletion.
type Store struct {
	mu sync.RWMutex

	users            map[int]domain.User
	workouts         map[int]domain.Workout
	exercises        map[int]domain.Exercise
	workoutExercises map[int]domain.WorkoutExercise
	meals            map[int]domain.Meal
	progressRecords  map[int]domain.ProgressRecord
	challenges       map[int]domain.Challenge
	participants     map[int]domain.ChallengeParticipant
	characters       map[int]domain.Character
	quests           map[int]domain.Quest

	// Insertion order per collection, so listings are deterministic.
	// Maps alone do not preserve ordering.
	userOrder            []int
	workoutOrder         []int
	exerciseOrder        []int
	workoutExerciseOrder []int
	mealOrder            []int
	progressOrder        []int
	challengeOrder       []int
	participantOrder     []int
	characterOrder       []int
	questOrder           []int

	nextUserID            int
	nextWorkoutID         int
	nextExerciseID        int
	nextWorkoutExerciseID int
	nextMealID            int
	nextProgressID        int
	nextChallengeID       int
	nextParticipantID     int
	nextCharacterID       int
	nextQuestID           int

	now func() time.Time
}

// NewStore creates an empty store. Use Seed to load starter data.
func NewStore() *Store {
	return &Store{
		users:            make(map[int]domain.User),
		workouts:         make(map[int]domain.Workout),
		exercises:        make(map[int]domain.Exercise),
		workoutExercises: make(map[int]domain.WorkoutExercise),
		meals:            make(map[int]domain.Meal),
		progressRecords:  make(map[int]domain.ProgressRecord),
		challenges:       make(map[int]domain.Challenge),
		participants:     make(map[int]domain.ChallengeParticipant),
		characters:       make(map[int]domain.Character),
		quests:           make(map[int]domain.Quest),

		nextUserID:            1,
		nextWorkoutID:         1,
		nextExerciseID:        1,
		nextWorkoutExerciseID: 1,
		nextMealID:            1,
		nextProgressID:        1,
		nextChallengeID:       1,
		nextParticipantID:     1,
		nextCharacterID:       1,
		nextQuestID:           1,

		now: time.Now,
	}
}

// CheckHealth reports readiness. The memory store is always ready once
// constructed; this exists so the readiness endpoint has a uniform
// interface across store implementations.
func (s *Store) CheckHealth(ctx context.Context) error {
	return nil
}
