package repository

import (
	"context"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// Meal defines the interface for meal persistence
type Meal interface {
	GetMeal(ctx context.Context, id int) (*domain.Meal, error)
	GetUserMeals(ctx context.Context, userID int) ([]domain.Meal, error)
	CreateMeal(ctx context.Context, input domain.NewMeal) (domain.Meal, error)
	UpdateMeal(ctx context.Context, id int, patch domain.MealPatch) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, id int) (bool, error)
}

// Progress defines the interface for progress record persistence
type Progress interface {
	// GetUserProgressRecords returns the user's records sorted ascending
	// by RecordDate.
	GetUserProgressRecords(ctx context.Context, userID int) ([]domain.ProgressRecord, error)
	CreateProgressRecord(ctx context.Context, input domain.NewProgressRecord) (domain.ProgressRecord, error)
}
