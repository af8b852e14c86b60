// Package user implements registration, login and profile lookup.
package user

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/repository"
)

const (
	cacheSize = 1024
	cacheTTL  = 5 * time.Minute
)

// Service defines the user operations
type Service interface {
	// Register creates a new account. The returned user is sanitized.
	Register(ctx context.Context, input domain.NewUser) (domain.User, error)
	// Login checks the credentials and returns the sanitized user, or
	// domain.ErrBadCredentials without revealing which part was wrong.
	Login(ctx context.Context, username, password string) (domain.User, error)
	// GetUser returns the sanitized user, or domain.ErrUserNotFound.
	GetUser(ctx context.Context, id int) (domain.User, error)
}

type service struct {
	repo  repository.User
	bus   event.Bus
	cache *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, bus event.Bus) Service {
	return &service{
		repo:  repo,
		bus:   bus,
		cache: newUserCache(cacheSize, cacheTTL),
	}
}

func (s *service) Register(ctx context.Context, input domain.NewUser) (domain.User, error) {
	log := logger.FromContext(ctx)

	created, err := s.repo.CreateUser(ctx, input)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.bus.Publish(ctx, event.NewUserRegisteredEvent(created.ID)); err != nil {
		log.Warn("failed to publish user registered event", "error", err)
	}

	log.Info("user registered", "user_id", created.ID)
	return created.Sanitized(), nil
}

func (s *service) Login(ctx context.Context, username, password string) (domain.User, error) {
	log := logger.FromContext(ctx)

	found, ok := s.cache.Get(username)
	if !ok {
		var err error
		found, err = s.repo.GetUserByUsername(ctx, username)
		if err != nil {
			return domain.User{}, fmt.Errorf("failed to look up user: %w", err)
		}
		if found != nil {
			s.cache.Set(username, found)
		}
	}

	// Same error for unknown user and wrong password, so login probes
	// cannot enumerate usernames.
	if found == nil {
		return domain.User{}, domain.ErrBadCredentials
	}
	if subtle.ConstantTimeCompare([]byte(found.Password), []byte(password)) != 1 {
		return domain.User{}, domain.ErrBadCredentials
	}

	log.Info("user logged in", "user_id", found.ID)
	return found.Sanitized(), nil
}

func (s *service) GetUser(ctx context.Context, id int) (domain.User, error) {
	found, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if found == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return found.Sanitized(), nil
}
