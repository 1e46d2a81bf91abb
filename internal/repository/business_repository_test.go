package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

func newBusiness(userID uint, name, category string) *model.Business {
	return &model.Business{
		UserID:       userID,
		Name:         name,
		Description:  "A business",
		Category:     category,
		Location:     "Austin, TX",
		ContactEmail: "contact@example.com",
	}
}

func TestMemoryBusinessRepository_ListFiltersByCategory(t *testing.T) {
	repo := NewMemoryBusinessRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newBusiness(1, "Foo Photos", "Photography")))
	assert.NoError(t, repo.Create(ctx, newBusiness(2, "Bar Bites", "Catering")))
	assert.NoError(t, repo.Create(ctx, newBusiness(3, "Baz Snaps", "photography")))

	tests := []struct {
		name     string
		category string
		wantIDs  []uint
	}{
		{name: "no filter returns all", category: "", wantIDs: []uint{1, 2, 3}},
		{name: "filter is case-insensitive", category: "PHOTOGRAPHY", wantIDs: []uint{1, 3}},
		{name: "exact match not substring", category: "Photo", wantIDs: []uint{}},
		{name: "unknown category", category: "Venue", wantIDs: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			businesses, err := repo.List(ctx, tt.category)
			assert.NoError(t, err)
			ids := make([]uint, 0, len(businesses))
			for _, b := range businesses {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMemoryBusinessRepository_FindByUserID(t *testing.T) {
	repo := NewMemoryBusinessRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newBusiness(7, "First", "Photography")))
	assert.NoError(t, repo.Create(ctx, newBusiness(8, "Other", "Catering")))
	assert.NoError(t, repo.Create(ctx, newBusiness(7, "Second", "Venue")))

	businesses, err := repo.FindByUserID(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, businesses, 2)
	assert.Equal(t, "First", businesses[0].Name)
	assert.Equal(t, "Second", businesses[1].Name)

	empty, err := repo.FindByUserID(ctx, 99)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryBusinessRepository_FindByID(t *testing.T) {
	repo := NewMemoryBusinessRepository()
	ctx := context.Background()

	created := newBusiness(1, "Foo Photos", "Photography")
	assert.NoError(t, repo.Create(ctx, created))
	assert.Equal(t, uint(1), created.ID)

	found, err := repo.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Foo Photos", found.Name)

	_, err = repo.FindByID(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
