package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestCreateUser_AssignsIdentityAndDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, domain.NewUser{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, domain.DefaultFitnessLevel, user.FitnessLevel)
	assert.Equal(t, domain.DefaultGoal, user.Goal)
	assert.False(t, user.CreatedAt.IsZero())

	second, err := s.CreateUser(ctx, domain.NewUser{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateUser_RejectsDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.NewUser{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, domain.NewUser{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestGetUser_AbsentReturnsNilNil(t *testing.T) {
	s := newTestStore(t)

	user, err := s.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestWorkoutIDs_NeverReusedAfterDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "Push Day"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	deleted, err := s.DeleteWorkout(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	second, err := s.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "Pull Day"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestUpdateWorkout_ShallowMergeKeepsIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateWorkout(ctx, domain.NewWorkout{
		UserID:     1,
		Name:       "Push Day",
		Type:       "strength",
		Difficulty: "intermediate",
		Duration:   45,
	})
	require.NoError(t, err)

	name := "Heavy Push Day"
	completed := true
	updated, err := s.UpdateWorkout(ctx, created.ID, domain.WorkoutPatch{
		Name:      &name,
		Completed: &completed,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Heavy Push Day", updated.Name)
	assert.True(t, updated.Completed)
	assert.Equal(t, "strength", updated.Type)
	assert.Equal(t, 45, updated.Duration)
}

func TestUpdateWorkout_AbsentReturnsNilNil(t *testing.T) {
	s := newTestStore(t)

	name := "ghost"
	updated, err := s.UpdateWorkout(context.Background(), 99, domain.WorkoutPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestGetUserWorkouts_FiltersByOwnerInInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "A"})
	require.NoError(t, err)
	_, err = s.CreateWorkout(ctx, domain.NewWorkout{UserID: 2, Name: "B"})
	require.NoError(t, err)
	_, err = s.CreateWorkout(ctx, domain.NewWorkout{UserID: 1, Name: "C"})
	require.NoError(t, err)

	workouts, err := s.GetUserWorkouts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, "A", workouts[0].Name)
	assert.Equal(t, "C", workouts[1].Name)
}

func TestRemoveExerciseFromWorkout_FirstMatchOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link := domain.NewWorkoutExercise{WorkoutID: 1, ExerciseID: 5, Sets: 3}
	first, err := s.AddExerciseToWorkout(ctx, link)
	require.NoError(t, err)
	link.Sets = 5
	_, err = s.AddExerciseToWorkout(ctx, link)
	require.NoError(t, err)

	removed, err := s.RemoveExerciseFromWorkout(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, removed)

	links, err := s.GetWorkoutExercises(ctx, 1)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.NotEqual(t, first.ID, links[0].ID)
	assert.Equal(t, 5, links[0].Sets)

	removed, err = s.RemoveExerciseFromWorkout(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveExerciseFromWorkout(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListExercises_Filtering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.Seed()

	tests := []struct {
		name   string
		filter domain.ExerciseFilter
		want   int
	}{
		{name: "no filter returns all", filter: domain.ExerciseFilter{}, want: 6},
		{name: "by muscle group", filter: domain.ExerciseFilter{MuscleGroup: "chest"}, want: 3},
		{name: "by type", filter: domain.ExerciseFilter{Type: "strength"}, want: 6},
		{name: "no match", filter: domain.ExerciseFilter{Type: "cardio"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exercises, err := s.ListExercises(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, exercises, tt.want)
		})
	}
}

func TestGetUserProgressRecords_SortedByRecordDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
	}
	for _, d := range []int{20, 5, 12} {
		_, err := s.CreateProgressRecord(ctx, domain.NewProgressRecord{
			UserID:     1,
			Weight:     80,
			RecordDate: day(d),
		})
		require.NoError(t, err)
	}

	records, err := s.GetUserProgressRecords(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, day(5), records[0].RecordDate)
	assert.Equal(t, day(12), records[1].RecordDate)
	assert.Equal(t, day(20), records[2].RecordDate)
}

func TestJoinChallenge_CountTracksParticipants(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	challenge, err := s.CreateChallenge(ctx, domain.NewChallenge{Name: "30 Day Plank"})
	require.NoError(t, err)
	assert.Equal(t, 0, challenge.ParticipantCount)

	_, err = s.JoinChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)
	_, err = s.JoinChallenge(ctx, challenge.ID, 2)
	require.NoError(t, err)

	got, err := s.GetChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ParticipantCount)

	participants, err := s.GetChallengeParticipants(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Len(t, participants, got.ParticipantCount)
}

func TestJoinChallenge_DuplicateRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	challenge, err := s.CreateChallenge(ctx, domain.NewChallenge{Name: "30 Day Plank"})
	require.NoError(t, err)

	_, err = s.JoinChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)

	_, err = s.JoinChallenge(ctx, challenge.ID, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)

	got, err := s.GetChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ParticipantCount)
}

func TestJoinChallenge_AbsentChallenge(t *testing.T) {
	s := newTestStore(t)

	_, err := s.JoinChallenge(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestLeaveChallenge_DecrementsAndClampsAtZero(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	challenge, err := s.CreateChallenge(ctx, domain.NewChallenge{Name: "30 Day Plank"})
	require.NoError(t, err)
	_, err = s.JoinChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)

	left, err := s.LeaveChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)
	assert.True(t, left)

	got, err := s.GetChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ParticipantCount)

	// Leaving again is a no-op and the count stays at zero.
	left, err = s.LeaveChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)
	assert.False(t, left)

	got, err = s.GetChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ParticipantCount)
}

func TestLeaveChallenge_AllowsRejoin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	challenge, err := s.CreateChallenge(ctx, domain.NewChallenge{Name: "30 Day Plank"})
	require.NoError(t, err)

	first, err := s.JoinChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)

	_, err = s.LeaveChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)

	second, err := s.JoinChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	got, err := s.GetChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ParticipantCount)
}

func TestCreateCharacter_StartsAtLevelOne(t *testing.T) {
	s := newTestStore(t)

	character, err := s.CreateCharacter(context.Background(), domain.NewCharacter{
		UserID:    1,
		Name:      "Grog",
		ClassName: "Berserker",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, character.Level)
	assert.Equal(t, 0, character.XP)
	assert.Equal(t, domain.Stats{}, character.Stats)
}

func TestGrantXP_AccumulatesAndLevels(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	character, err := s.CreateCharacter(ctx, domain.NewCharacter{UserID: 1, Name: "Grog", ClassName: "Berserker"})
	require.NoError(t, err)

	after, err := s.GrantXP(ctx, character.ID, 500)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, 500, after.XP)
	assert.Equal(t, 1, after.Level)

	after, err = s.GrantXP(ctx, character.ID, 600)
	require.NoError(t, err)
	assert.Equal(t, 1100, after.XP)
	assert.Equal(t, 2, after.Level)

	// Negative grants never shrink XP.
	after, err = s.GrantXP(ctx, character.ID, -50)
	require.NoError(t, err)
	assert.Equal(t, 1100, after.XP)
	assert.Equal(t, 2, after.Level)
}

func TestGrantXP_AbsentCharacter(t *testing.T) {
	s := newTestStore(t)

	after, err := s.GrantXP(context.Background(), 99, 100)
	require.NoError(t, err)
	assert.Nil(t, after)
}

func TestSeed_LoadsStarterCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.Seed()

	exercises, err := s.ListExercises(ctx, domain.ExerciseFilter{})
	require.NoError(t, err)
	assert.Len(t, exercises, 6)

	challenges, err := s.GetChallenges(ctx)
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	for _, c := range challenges {
		assert.Equal(t, 0, c.ParticipantCount)
	}
	assert.Equal(t, "Summer Shred Challenge", challenges[0].Name)
	assert.True(t, challenges[0].IsFeatured)

	quests, err := s.ListQuests(ctx)
	require.NoError(t, err)
	require.Len(t, quests, 3)
	assert.Equal(t, "F", quests[0].Tier)
	assert.Equal(t, "E", quests[1].Tier)
	assert.Equal(t, "D", quests[2].Tier)
}

func TestStore_ConcurrentGrantsLoseNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	character, err := s.CreateCharacter(ctx, domain.NewCharacter{UserID: 1, Name: "Grog", ClassName: "Berserker"})
	require.NoError(t, err)

	const workers = 8
	const grants = 25
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < grants; j++ {
				_, _ = s.GrantXP(ctx, character.ID, 10)
			}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	after, err := s.GetCharacter(ctx, character.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, workers*grants*10, after.XP)
	assert.Equal(t, 3, after.Level)
}

func TestStore_ReadsReturnDetachedCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	character, err := s.CreateCharacter(ctx, domain.NewCharacter{UserID: 1, Name: "Grog", ClassName: "Berserker"})
	require.NoError(t, err)
	_, err = s.CreateChallenge(ctx, domain.NewChallenge{Name: "30-Day Plank"})
	require.NoError(t, err)

	// Scribbling on a returned entity must not reach the stored row.
	got, err := s.GetCharacter(ctx, character.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	got.XP = 9999
	got.ClassName = "mutated"

	challenges, err := s.GetChallenges(ctx)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	challenges[0].Name = "mutated"
	challenges[0].ParticipantCount = 7

	reread, err := s.GetCharacter(ctx, character.ID)
	require.NoError(t, err)
	require.NotNil(t, reread)
	assert.Equal(t, 0, reread.XP)
	assert.Equal(t, "Berserker", reread.ClassName)

	challenges, err = s.GetChallenges(ctx)
	require.NoError(t, err)
	assert.Equal(t, "30-Day Plank", challenges[0].Name)
	assert.Equal(t, 0, challenges[0].ParticipantCount)
}
