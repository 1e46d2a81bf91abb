package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

func newWaitlistEntry(email string) *model.WaitlistEntry {
	return &model.WaitlistEntry{
		FullName:        "Interested Person",
		Email:           email,
		UserType:        model.UserTypeCustomer,
		ReceivesUpdates: true,
	}
}

func TestMemoryWaitlistRepository_Add(t *testing.T) {
	repo := NewMemoryWaitlistRepository()
	ctx := context.Background()

	entry := newWaitlistEntry("early@bird.com")
	assert.NoError(t, repo.Add(ctx, entry))
	assert.Equal(t, uint(1), entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestMemoryWaitlistRepository_DuplicateEmailRejected(t *testing.T) {
	repo := NewMemoryWaitlistRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Add(ctx, newWaitlistEntry("early@bird.com")))

	err := repo.Add(ctx, newWaitlistEntry("EARLY@BIRD.COM"))
	assert.ErrorIs(t, err, apperrors.ErrWaitlistDuplicate)

	// The rejected entry must not be stored.
	entries, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	// Nor may the failed insert advance the counter.
	next := newWaitlistEntry("second@bird.com")
	assert.NoError(t, repo.Add(ctx, next))
	assert.Equal(t, uint(2), next.ID)
}

func TestMemoryWaitlistRepository_ListOrderedByID(t *testing.T) {
	repo := NewMemoryWaitlistRepository()
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		assert.NoError(t, repo.Add(ctx, newWaitlistEntry(email)))
	}

	entries, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, uint(i+1), entry.ID)
	}
}
