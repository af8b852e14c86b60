package meal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/FitQuest_Go/internal/database/memory"
	"github.com/fitquest/FitQuest_Go/internal/domain"
)

func TestMealLifecycle(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	created, err := svc.CreateMeal(ctx, domain.NewMeal{
		UserID:   1,
		Name:     "Oatmeal",
		Type:     "breakfast",
		Calories: 350,
		Protein:  12,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := svc.GetMeal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	calories := 400
	updated, err := svc.UpdateMeal(ctx, created.ID, domain.MealPatch{Calories: &calories})
	require.NoError(t, err)
	assert.Equal(t, 400, updated.Calories)
	assert.Equal(t, "Oatmeal", updated.Name)

	require.NoError(t, svc.DeleteMeal(ctx, created.ID))

	_, err = svc.GetMeal(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}

func TestMeal_NotFoundPaths(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.GetMeal(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)

	name := "x"
	_, err = svc.UpdateMeal(ctx, 99, domain.MealPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrMealNotFound)

	err = svc.DeleteMeal(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}

func TestGetUserMeals_ScopedToUser(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.CreateMeal(ctx, domain.NewMeal{UserID: 1, Name: "Oatmeal", Type: "breakfast"})
	require.NoError(t, err)
	_, err = svc.CreateMeal(ctx, domain.NewMeal{UserID: 2, Name: "Salad", Type: "lunch"})
	require.NoError(t, err)

	meals, err := svc.GetUserMeals(ctx, 1)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Oatmeal", meals[0].Name)
}
