// Package meal implements meal planning and nutrition logging.
package meal

import (
	"context"
	"fmt"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/repository"
)

// Service defines the meal operations
type Service interface {
	GetMeal(ctx context.Context, id int) (domain.Meal, error)
	GetUserMeals(ctx context.Context, userID int) ([]domain.Meal, error)
	CreateMeal(ctx context.Context, input domain.NewMeal) (domain.Meal, error)
	UpdateMeal(ctx context.Context, id int, patch domain.MealPatch) (domain.Meal, error)
	DeleteMeal(ctx context.Context, id int) error
}

type service struct {
	repo repository.Meal
}

// NewService creates a new meal service
func NewService(repo repository.Meal) Service {
	return &service{repo: repo}
}

func (s *service) GetMeal(ctx context.Context, id int) (domain.Meal, error) {
	found, err := s.repo.GetMeal(ctx, id)
	if err != nil {
		return domain.Meal{}, fmt.Errorf("failed to get meal: %w", err)
	}
	if found == nil {
		return domain.Meal{}, domain.ErrMealNotFound
	}
	return *found, nil
}

func (s *service) GetUserMeals(ctx context.Context, userID int) ([]domain.Meal, error) {
	return s.repo.GetUserMeals(ctx, userID)
}

func (s *service) CreateMeal(ctx context.Context, input domain.NewMeal) (domain.Meal, error) {
	created, err := s.repo.CreateMeal(ctx, input)
	if err != nil {
		return domain.Meal{}, fmt.Errorf("failed to create meal: %w", err)
	}

	logger.FromContext(ctx).Info("meal created", "meal_id", created.ID, "user_id", created.UserID)
	return created, nil
}

func (s *service) UpdateMeal(ctx context.Context, id int, patch domain.MealPatch) (domain.Meal, error) {
	updated, err := s.repo.UpdateMeal(ctx, id, patch)
	if err != nil {
		return domain.Meal{}, fmt.Errorf("failed to update meal: %w", err)
	}
	if updated == nil {
		return domain.Meal{}, domain.ErrMealNotFound
	}
	return *updated, nil
}

func (s *service) DeleteMeal(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteMeal(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if !deleted {
		return domain.ErrMealNotFound
	}
	return nil
}
