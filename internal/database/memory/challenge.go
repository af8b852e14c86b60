package memory

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// GetChallenge returns the challenge by id, or (nil, nil) when absent
func (s *Store) GetChallenge(ctx context.Context, id int) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, ok := s.challenges[id]
	if !ok {
		return nil, nil
	}
	return &challenge, nil
}

// GetChallenges returns all challenges in insertion order
func (s *Store) GetChallenges(ctx context.Context) ([]domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenges := []domain.Challenge{}
	for _, id := range s.challengeOrder {
		challenges = append(challenges, s.challenges[id])
	}
	return challenges, nil
}

// CreateChallenge stores a new challenge with a participant count of zero
func (s *Store) CreateChallenge(ctx context.Context, input domain.NewChallenge) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createChallengeLocked(input), nil
}

func (s *Store) createChallengeLocked(input domain.NewChallenge) domain.Challenge {
	id := s.nextChallengeID
	s.nextChallengeID++

	challenge := domain.Challenge{
		ID:               id,
		Name:             input.Name,
		Description:      input.Description,
		Difficulty:       input.Difficulty,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Goal:             input.Goal,
		Reward:           input.Reward,
		ParticipantCount: 0,
		IsFeatured:       input.IsFeatured,
		CreatedAt:        s.now(),
	}
	s.challenges[id] = challenge
	s.challengeOrder = append(s.challengeOrder, id)

	return challenge
}

// GetChallengeParticipants returns the participant rows for a challenge in
// join order
func (s *Store) GetChallengeParticipants(ctx context.Context, challengeID int) ([]domain.ChallengeParticipant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []domain.ChallengeParticipant{}
	for _, id := range s.participantOrder {
		if p := s.participants[id]; p.ChallengeID == challengeID {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

// GetUserChallenges returns the challenges a user participates in, in the
// order they were joined
func (s *Store) GetUserChallenges(ctx context.Context, userID int) ([]domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenges := []domain.Challenge{}
	for _, id := range s.participantOrder {
		p := s.participants[id]
		if p.UserID != userID {
			continue
		}
		if c, ok := s.challenges[p.ChallengeID]; ok {
			challenges = append(challenges, c)
		}
	}
	return challenges, nil
}

// JoinChallenge adds a participant row and increments the challenge's
// participant count in the same critical section, so the count always
// equals the number of live rows. A user already in the challenge gets
// ErrAlreadyJoined.
func (s *Store) JoinChallenge(ctx context.Context, challengeID, userID int) (domain.ChallengeParticipant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challenges[challengeID]
	if !ok {
		return domain.ChallengeParticipant{}, domain.ErrChallengeNotFound
	}

	for _, id := range s.participantOrder {
		p := s.participants[id]
		if p.ChallengeID == challengeID && p.UserID == userID {
			return domain.ChallengeParticipant{}, domain.ErrAlreadyJoined
		}
	}

	id := s.nextParticipantID
	s.nextParticipantID++

	participant := domain.ChallengeParticipant{
		ID:          id,
		ChallengeID: challengeID,
		UserID:      userID,
		JoinedAt:    s.now(),
	}
	s.participants[id] = participant
	s.participantOrder = append(s.participantOrder, id)

	challenge.ParticipantCount++
	s.challenges[challengeID] = challenge

	return participant, nil
}

// LeaveChallenge removes the first participant row matching both keys and
// decrements the challenge's participant count, never below zero. Returns
// false when the user was not a participant.
func (s *Store) LeaveChallenge(ctx context.Context, challengeID, userID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.participantOrder {
		p := s.participants[id]
		if p.ChallengeID == challengeID && p.UserID == userID {
			delete(s.participants, id)
			s.participantOrder = removeID(s.participantOrder, id)

			if challenge, ok := s.challenges[challengeID]; ok && challenge.ParticipantCount > 0 {
				challenge.ParticipantCount--
				s.challenges[challengeID] = challenge
			}
			return true, nil
		}
	}
	return false, nil
}
