package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

// Walks the core marketplace flow end to end against fresh in-memory
// repositories: register, conflict, profile, booking, confirmation.
func TestMarketplaceFlow(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUserRepository()
	businesses := NewMemoryBusinessRepository()
	bookings := NewMemoryBookingRepository()

	alice := &model.User{
		Email:    "a@x.com",
		Username: "alice",
		Password: "secret",
		FullName: "Alice",
		UserType: model.UserTypeProvider,
	}
	assert.NoError(t, users.Create(ctx, alice))
	assert.Equal(t, uint(1), alice.ID)

	impostor := &model.User{
		Email:    "A@X.com",
		Username: "alice2",
		Password: "secret",
		FullName: "Not Alice",
		UserType: model.UserTypeCustomer,
	}
	assert.ErrorIs(t, users.Create(ctx, impostor), apperrors.ErrEmailTaken)

	business := &model.Business{
		UserID:       alice.ID,
		Name:         "Foo Photos",
		Description:  "Event photography",
		Category:     "Photography",
		Location:     "Austin, TX",
		ContactEmail: "foo@photos.com",
	}
	assert.NoError(t, businesses.Create(ctx, business))
	assert.Equal(t, uint(1), business.ID)

	booking := &model.Booking{
		CustomerID: alice.ID,
		BusinessID: business.ID,
		EventDate:  time.Date(2026, 11, 7, 16, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, bookings.Create(ctx, booking))
	assert.Equal(t, model.BookingStatusPending, booking.Status)

	confirmed, err := bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, confirmed.Status)

	businessBookings, err := bookings.FindByBusinessID(ctx, business.ID)
	assert.NoError(t, err)
	assert.Len(t, businessBookings, 1)
	assert.Equal(t, model.BookingStatusConfirmed, businessBookings[0].Status)
}
