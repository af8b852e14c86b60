// Package progress implements body-measurement tracking over time.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/repository"
)

// Service defines the progress tracking operations
type Service interface {
	// GetUserProgress returns the user's records sorted ascending by
	// RecordDate, oldest first.
	GetUserProgress(ctx context.Context, userID int) ([]domain.ProgressRecord, error)
	CreateProgressRecord(ctx context.Context, input domain.NewProgressRecord) (domain.ProgressRecord, error)
}

type service struct {
	repo repository.Progress
}

// NewService creates a new progress service
func NewService(repo repository.Progress) Service {
	return &service{repo: repo}
}

func (s *service) GetUserProgress(ctx context.Context, userID int) ([]domain.ProgressRecord, error) {
	return s.repo.GetUserProgressRecords(ctx, userID)
}

func (s *service) CreateProgressRecord(ctx context.Context, input domain.NewProgressRecord) (domain.ProgressRecord, error) {
	// A record without a date is a snapshot of today.
	if input.RecordDate.IsZero() {
		input.RecordDate = time.Now()
	}

	created, err := s.repo.CreateProgressRecord(ctx, input)
	if err != nil {
		return domain.ProgressRecord{}, fmt.Errorf("failed to create progress record: %w", err)
	}
	return created, nil
}
