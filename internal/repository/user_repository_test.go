package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

func newUser(email, username string) *model.User {
	return &model.User{
		Email:    email,
		Username: username,
		Password: "secret",
		FullName: "Test User",
		UserType: model.UserTypeCustomer,
	}
}

func TestMemoryUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first := newUser("a@x.com", "alice")
	assert.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, uint(1), first.ID)

	second := newUser("b@x.com", "bob")
	assert.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, uint(2), second.ID)
}

func TestMemoryUserRepository_EmailLookupIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created := newUser("Alice@Example.com", "alice")
	assert.NoError(t, repo.Create(ctx, created))

	for _, email := range []string{"alice@example.com", "ALICE@EXAMPLE.COM", "Alice@Example.com"} {
		found, err := repo.FindByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	}
}

func TestMemoryUserRepository_CreateConflicts(t *testing.T) {
	tests := []struct {
		name          string
		second        *model.User
		expectedError error
	}{
		{
			name:          "duplicate email different case",
			second:        newUser("A@X.COM", "alice2"),
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name:          "duplicate username different case",
			second:        newUser("other@x.com", "ALICE"),
			expectedError: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryUserRepository()
			ctx := context.Background()

			assert.NoError(t, repo.Create(ctx, newUser("a@x.com", "alice")))

			err := repo.Create(ctx, tt.second)
			assert.ErrorIs(t, err, tt.expectedError)

			// A failed insert must not advance the counter.
			third := newUser("c@x.com", "carol")
			assert.NoError(t, repo.Create(ctx, third))
			assert.Equal(t, uint(2), third.ID)
		})
	}
}

func TestMemoryUserRepository_FindMissing(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryUserRepository_FindByUsernameIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created := newUser("a@x.com", "Alice")
	assert.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByUsername(ctx, "aLiCe")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Alice", found.Username)
}
