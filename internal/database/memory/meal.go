package memory

import (
	"context"
	"sort"

	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// GetMeal returns the meal by id, or (nil, nil) when absent
func (s *Store) GetMeal(ctx context.Context, id int) (*domain.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meal, ok := s.meals[id]
	if !ok {
		return nil, nil
	}
	return &meal, nil
}

// GetUserMeals returns the user's meals in insertion order
func (s *Store) GetUserMeals(ctx context.Context, userID int) ([]domain.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meals := []domain.Meal{}
	for _, id := range s.mealOrder {
		if m := s.meals[id]; m.UserID == userID {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

// CreateMeal assigns identity, stamps CreatedAt and stores the meal
func (s *Store) CreateMeal(ctx context.Context, input domain.NewMeal) (domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextMealID
	s.nextMealID++

	meal := domain.Meal{
		ID:           id,
		UserID:       input.UserID,
		Name:         input.Name,
		Type:         input.Type,
		Calories:     input.Calories,
		Protein:      input.Protein,
		Carbs:        input.Carbs,
		Fat:          input.Fat,
		Description:  input.Description,
		ScheduledFor: input.ScheduledFor,
		CreatedAt:    s.now(),
	}
	s.meals[id] = meal
	s.mealOrder = append(s.mealOrder, id)

	return meal, nil
}

// UpdateMeal shallow-merges the patch into the stored meal.
// Returns (nil, nil) when the id is absent.
func (s *Store) UpdateMeal(ctx context.Context, id int, patch domain.MealPatch) (*domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meal, ok := s.meals[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&meal)
	s.meals[id] = meal

	return &meal, nil
}

// DeleteMeal removes the meal. The id is never reused.
func (s *Store) DeleteMeal(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.meals[id]; !ok {
		return false, nil
	}
	delete(s.meals, id)
	s.mealOrder = removeID(s.mealOrder, id)

	return true, nil
}

// GetUserProgressRecords returns the user's records sorted ascending by
// RecordDate. Ties keep insertion order.
func (s *Store) GetUserProgressRecords(ctx context.Context, userID int) ([]domain.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []domain.ProgressRecord{}
	for _, id := range s.progressOrder {
		if r := s.progressRecords[id]; r.UserID == userID {
			records = append(records, r)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordDate.Before(records[j].RecordDate)
	})
	return records, nil
}

// CreateProgressRecord assigns identity, stamps CreatedAt and stores the
// record
func (s *Store) CreateProgressRecord(ctx context.Context, input domain.NewProgressRecord) (domain.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProgressID
	s.nextProgressID++

	record := domain.ProgressRecord{
		ID:                id,
		UserID:            input.UserID,
		Weight:            input.Weight,
		Strength:          input.Strength,
		WorkoutsCompleted: input.WorkoutsCompleted,
		RecordDate:        input.RecordDate,
		CreatedAt:         s.now(),
	}
	s.progressRecords[id] = record
	s.progressOrder = append(s.progressOrder, id)

	return record, nil
}
