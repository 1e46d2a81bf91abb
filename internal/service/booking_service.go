package service

import (
	"context"

	"festivo/internal/model"
	"festivo/internal/repository"
)

// BookingService handles booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetBooking(ctx context.Context, id uint) (*model.Booking, error)
	UserBookings(ctx context.Context, userID uint) ([]model.Booking, error)
	BusinessBookings(ctx context.Context, businessID uint) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService builds a BookingService.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// CreateBooking stores a new booking. The repository defaults the status to
// pending and stamps the creation time.
func (s *bookingService) CreateBooking(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*model.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *bookingService) UserBookings(ctx context.Context, userID uint) ([]model.Booking, error) {
	return s.repo.FindByCustomerID(ctx, userID)
}

func (s *bookingService) BusinessBookings(ctx context.Context, businessID uint) ([]model.Booking, error) {
	return s.repo.FindByBusinessID(ctx, businessID)
}

// UpdateBookingStatus replaces the status of an existing booking. The status
// value is validated at the handler boundary before this is called.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}
