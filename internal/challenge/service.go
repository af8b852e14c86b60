// Package challenge implements community challenges and membership.
//
// The store keeps the participant count consistent with the participant
// rows; on top of that the service serializes join/leave per
// (challenge, user) pair so a user hammering both buttons cannot
// interleave its own membership changes, and publishes membership events.
package challenge

import (
	"context"
	"fmt"

	"github.com/fitquest/FitQuest_Go/internal/concurrency"
	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/repository"
)

// Service defines the challenge operations
type Service interface {
	GetChallenges(ctx context.Context) ([]domain.Challenge, error)
	GetChallenge(ctx context.Context, id int) (domain.Challenge, error)
	CreateChallenge(ctx context.Context, input domain.NewChallenge) (domain.Challenge, error)
	JoinChallenge(ctx context.Context, challengeID, userID int) (domain.ChallengeParticipant, error)
	LeaveChallenge(ctx context.Context, challengeID, userID int) error
	GetChallengeParticipants(ctx context.Context, challengeID int) ([]domain.ChallengeParticipant, error)
	GetUserChallenges(ctx context.Context, userID int) ([]domain.Challenge, error)
}

type service struct {
	repo     repository.Challenge
	userRepo repository.User
	bus      event.Bus
	locks    *concurrency.LockManager
}

// NewService creates a new challenge service
func NewService(repo repository.Challenge, userRepo repository.User, bus event.Bus) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		bus:      bus,
		locks:    concurrency.NewLockManager(),
	}
}

func (s *service) GetChallenges(ctx context.Context) ([]domain.Challenge, error) {
	return s.repo.GetChallenges(ctx)
}

func (s *service) GetChallenge(ctx context.Context, id int) (domain.Challenge, error) {
	found, err := s.repo.GetChallenge(ctx, id)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("failed to get challenge: %w", err)
	}
	if found == nil {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	return *found, nil
}

func (s *service) CreateChallenge(ctx context.Context, input domain.NewChallenge) (domain.Challenge, error) {
	created, err := s.repo.CreateChallenge(ctx, input)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("failed to create challenge: %w", err)
	}

	logger.FromContext(ctx).Info("challenge created", "challenge_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *service) JoinChallenge(ctx context.Context, challengeID, userID int) (domain.ChallengeParticipant, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return domain.ChallengeParticipant{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ChallengeParticipant{}, domain.ErrUserNotFound
	}

	lock := s.locks.GetLock(concurrency.MembershipKey(challengeID, userID))
	lock.Lock()
	defer lock.Unlock()

	participant, err := s.repo.JoinChallenge(ctx, challengeID, userID)
	if err != nil {
		return domain.ChallengeParticipant{}, err
	}

	challenge, err := s.repo.GetChallenge(ctx, challengeID)
	if err == nil && challenge != nil {
		if err := s.bus.Publish(ctx, event.NewChallengeJoinedEvent(challengeID, userID, challenge.ParticipantCount)); err != nil {
			log.Warn("failed to publish challenge joined event", "error", err)
		}
	}

	log.Info("user joined challenge", "challenge_id", challengeID, "user_id", userID)
	return participant, nil
}

func (s *service) LeaveChallenge(ctx context.Context, challengeID, userID int) error {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(concurrency.MembershipKey(challengeID, userID))
	lock.Lock()
	defer lock.Unlock()

	left, err := s.repo.LeaveChallenge(ctx, challengeID, userID)
	if err != nil {
		return fmt.Errorf("failed to leave challenge: %w", err)
	}
	if !left {
		return domain.ErrParticipationNotFound
	}

	challenge, err := s.repo.GetChallenge(ctx, challengeID)
	if err == nil && challenge != nil {
		if err := s.bus.Publish(ctx, event.NewChallengeLeftEvent(challengeID, userID, challenge.ParticipantCount)); err != nil {
			log.Warn("failed to publish challenge left event", "error", err)
		}
	}

	log.Info("user left challenge", "challenge_id", challengeID, "user_id", userID)
	return nil
}

func (s *service) GetChallengeParticipants(ctx context.Context, challengeID int) ([]domain.ChallengeParticipant, error) {
	challenge, err := s.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if challenge == nil {
		return nil, domain.ErrChallengeNotFound
	}
	return s.repo.GetChallengeParticipants(ctx, challengeID)
}

func (s *service) GetUserChallenges(ctx context.Context, userID int) ([]domain.Challenge, error) {
	return s.repo.GetUserChallenges(ctx, userID)
}
