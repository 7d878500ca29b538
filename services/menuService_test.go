package services

import (
	"context"
	"testing"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/ShriyanshSinghPatel/AngularForm/repository"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func menuInput(name string, price float64, category models.MenuCategory) models.MenuItemCreate {
	return models.MenuItemCreate{
		Name:        strPtr(name),
		Description: strPtr(name + " description"),
		Price:       floatPtr(price),
		Category:    category,
	}
}

func newMenuService(t *testing.T) (*MenuService, *repository.MemoryMenuRepository) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store := repository.NewMemoryMenuRepository()
	return NewMenuService(store, logger), store
}

func TestMenuServiceCreateThenList(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, menuInput("Samosa", 40, models.CategorySnacks))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, models.DefaultPreparationTime, created.PreparationTime)
	assert.Equal(t, []string{}, created.Ingredients)

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestMenuServiceCreateAssignsUniqueIDs(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		item, err := svc.Create(ctx, menuInput("Chai", 30, models.CategoryBeverages))
		require.NoError(t, err)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestMenuServiceCreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		in        models.MenuItemCreate
		wantField string
	}{
		{"missing name", models.MenuItemCreate{Description: strPtr("d"), Price: floatPtr(10), Category: models.CategoryRice}, "name"},
		{"negative price", menuInput("Lassi", -1, models.CategoryBeverages), "price"},
		{"unknown category", menuInput("Soup", 60, "soups"), "category"},
		{"zero preparation time", func() models.MenuItemCreate {
			in := menuInput("Naan", 35, models.CategoryBreads)
			in.PreparationTime = intPtr(0)
			return in
		}(), "preparation_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newMenuService(t)
			_, err := svc.Create(context.Background(), tt.in)

			var ve helper.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)

			items, err := store.List(context.Background(), "", 0)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestMenuServiceListByCategory(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, menuInput("Gulab Jamun", 60, models.CategoryDesserts))
	require.NoError(t, err)
	_, err = svc.Create(ctx, menuInput("Jeera Rice", 120, models.CategoryRice))
	require.NoError(t, err)
	_, err = svc.Create(ctx, menuInput("Rasmalai", 80, models.CategoryDesserts))
	require.NoError(t, err)

	desserts, err := svc.ListByCategory(ctx, "desserts")
	require.NoError(t, err)
	require.Len(t, desserts, 2)
	for _, item := range desserts {
		assert.Equal(t, models.CategoryDesserts, item.Category)
	}

	beverages, err := svc.ListByCategory(ctx, "beverages")
	require.NoError(t, err)
	assert.NotNil(t, beverages)
	assert.Empty(t, beverages)

	_, err = svc.ListByCategory(ctx, "soups")
	assert.True(t, helper.IsValidation(err))
}

func TestMenuServiceUpdate(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, menuInput("Dal Makhani", 220, models.CategoryMainCourse))
	require.NoError(t, err)

	in := menuInput("Dal Makhani", 240, models.CategoryMainCourse)
	in.IsAvailable = boolPtr(false)
	in.Ingredients = []string{"urad dal", "butter"}

	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 240.0, updated.Price)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, []string{"urad dal", "butter"}, updated.Ingredients)

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, updated, items[0])
}

func TestMenuServiceUpdateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, menuInput("Veg Biryani", 200, models.CategoryRice))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "does-not-exist", menuInput("Ghost", 1, models.CategoryRice))
	assert.True(t, helper.IsNotFound(err))

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.MenuItem{created}, items)
}

func TestMenuServiceDelete(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, menuInput("Kulfi", 70, models.CategoryDesserts))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, helper.IsNotFound(err))

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
