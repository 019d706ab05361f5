package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/infrastructure/persistence/models"
)

func TestCategoryRepository_SaveAndFindByName(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))
	ctx := context.Background()

	entity, err := category.NewCategory("Hardware", "Broken machines", "#FF0000")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, entity))
	assert.NotZero(t, entity.ID())

	found, err := repo.FindByName(ctx, "Hardware")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.ID(), found.ID())

	missing, err := repo.FindByName(ctx, "Nonexistent")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryRepository_NullColumnsGetDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	// Simulate a legacy row with null description and color.
	require.NoError(t, db.Create(&models.CategoryModel{Name: "Legacy"}).Error)

	found, err := repo.FindByName(ctx, "Legacy")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, category.DefaultDescription, found.Description())
	assert.Equal(t, category.DefaultColor, found.Color())
}

func TestCategoryRepository_List(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Printers", "Access", "Network"} {
		entity, err := category.NewCategory(name, category.DefaultDescription, category.DefaultColor)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, entity))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
}
