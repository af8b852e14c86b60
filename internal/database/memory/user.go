package memory

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// CreateUser stores a new user. The username uniqueness check runs under
// the same write lock as the insert, so two concurrent registrations with
// the same username cannot both pass.
func (s *Store) CreateUser(ctx context.Context, input domain.NewUser) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == input.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}

	fitnessLevel := input.FitnessLevel
	if fitnessLevel == "" {
		fitnessLevel = domain.DefaultFitnessLevel
	}
	goal := input.Goal
	if goal == "" {
		goal = domain.DefaultGoal
	}

	id := s.nextUserID
	s.nextUserID++

	user := domain.User{
		ID:           id,
		Username:     input.Username,
		Password:     input.Password,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		FitnessLevel: fitnessLevel,
		Height:       input.Height,
		Weight:       input.Weight,
		Goal:         goal,
		CreatedAt:    s.now(),
	}
	s.users[id] = user
	s.userOrder = append(s.userOrder, id)

	return user, nil
}

// GetUser returns the user by id, or (nil, nil) when absent
func (s *Store) GetUser(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetUserByUsername returns the first user with the given username, or
// (nil, nil) when absent
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			user := s.users[id]
			return &user, nil
		}
	}
	return nil, nil
}
