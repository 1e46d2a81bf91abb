package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

// BookingRepository defines booking persistence operations. Bookings are
// never deleted; UpdateStatus is the only mutation after creation.
//
// Customer and business IDs are stored as supplied without an existence
// check.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uint) (*model.Booking, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]model.Booking, error)
	FindByBusinessID(ctx context.Context, businessID uint) ([]model.Booking, error)
	// UpdateStatus replaces only the status field. The status value itself is
	// validated by the caller, not here.
	UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	booking.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&booking).Update("status", status).Error; err != nil {
		return nil, err
	}
	booking.Status = status
	return &booking, nil
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uint]model.Booking
	nextID   uint
}

// NewMemoryBookingRepository builds an in-memory repository.
func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		bookings: make(map[uint]model.Booking),
		nextID:   1,
	}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	booking.CreatedAt = time.Now()
	booking.ID = r.nextID
	r.nextID++
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &booking, nil
}

func (r *memoryBookingRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Booking, 0)
	for _, booking := range r.bookings {
		if booking.CustomerID == customerID {
			result = append(result, booking)
		}
	}
	sortBookingsByID(result)
	return result, nil
}

func (r *memoryBookingRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Booking, 0)
	for _, booking := range r.bookings {
		if booking.BusinessID == businessID {
			result = append(result, booking)
		}
	}
	sortBookingsByID(result)
	return result, nil
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	booking.Status = status
	r.bookings[id] = booking
	return &booking, nil
}

func sortBookingsByID(bookings []model.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID < bookings[j].ID
	})
}
