package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

func newBooking(customerID, businessID uint) *model.Booking {
	return &model.Booking{
		CustomerID: customerID,
		BusinessID: businessID,
		EventDate:  time.Date(2026, 10, 3, 14, 0, 0, 0, time.UTC),
	}
}

func TestMemoryBookingRepository_CreateDefaultsStatusToPending(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := newBooking(1, 1)
	assert.NoError(t, repo.Create(ctx, booking))
	assert.Equal(t, uint(1), booking.ID)
	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestMemoryBookingRepository_CreateKeepsExplicitStatus(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := newBooking(1, 1)
	booking.Status = model.BookingStatusConfirmed
	assert.NoError(t, repo.Create(ctx, booking))
	assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
}

func TestMemoryBookingRepository_UpdateStatus(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := newBooking(1, 1)
	assert.NoError(t, repo.Create(ctx, booking))

	updated, err := repo.UpdateStatus(ctx, booking.ID, model.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, booking.CustomerID, updated.CustomerID)

	stored, err := repo.FindByID(ctx, booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, stored.Status)
}

func TestMemoryBookingRepository_UpdateStatusMissingLeavesStateUntouched(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	existing := newBooking(1, 1)
	assert.NoError(t, repo.Create(ctx, existing))

	_, err := repo.UpdateStatus(ctx, 99, model.BookingStatusCancelled)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The existing booking and the ID counter are unaffected.
	stored, err := repo.FindByID(ctx, existing.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, stored.Status)

	next := newBooking(2, 2)
	assert.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, uint(2), next.ID)
}

func TestMemoryBookingRepository_Filters(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, newBooking(1, 10)))
	assert.NoError(t, repo.Create(ctx, newBooking(2, 10)))
	assert.NoError(t, repo.Create(ctx, newBooking(1, 20)))

	byCustomer, err := repo.FindByCustomerID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	byBusiness, err := repo.FindByBusinessID(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, byBusiness, 2)

	none, err := repo.FindByBusinessID(ctx, 30)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
