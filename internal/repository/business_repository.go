package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

// BusinessRepository defines business profile persistence operations.
// There is no uniqueness constraint on business names.
type BusinessRepository interface {
	Create(ctx context.Context, business *model.Business) error
	FindByID(ctx context.Context, id uint) (*model.Business, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Business, error)
	// List returns all businesses, or only those whose category equals the
	// filter case-insensitively (exact match, not substring) when non-empty.
	List(ctx context.Context, category string) ([]model.Business, error)
}

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository builds a GORM-backed repository.
func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(ctx context.Context, business *model.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}

func (r *businessRepository) FindByID(ctx context.Context, id uint) (*model.Business, error) {
	var business model.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Business, error) {
	var businesses []model.Business
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("id ASC").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *businessRepository) List(ctx context.Context, category string) ([]model.Business, error) {
	var businesses []model.Business
	query := r.db.WithContext(ctx).Order("id ASC")
	if category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", category)
	}
	if err := query.Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

type memoryBusinessRepository struct {
	mu         sync.RWMutex
	businesses map[uint]model.Business
	nextID     uint
}

// NewMemoryBusinessRepository builds an in-memory repository.
func NewMemoryBusinessRepository() BusinessRepository {
	return &memoryBusinessRepository{
		businesses: make(map[uint]model.Business),
		nextID:     1,
	}
}

func (r *memoryBusinessRepository) Create(ctx context.Context, business *model.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	business.ID = r.nextID
	r.nextID++
	r.businesses[business.ID] = *business
	return nil
}

func (r *memoryBusinessRepository) FindByID(ctx context.Context, id uint) (*model.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	business, ok := r.businesses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &business, nil
}

func (r *memoryBusinessRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Business, 0)
	for _, business := range r.businesses {
		if business.UserID == userID {
			result = append(result, business)
		}
	}
	sortBusinessesByID(result)
	return result, nil
}

func (r *memoryBusinessRepository) List(ctx context.Context, category string) ([]model.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Business, 0, len(r.businesses))
	for _, business := range r.businesses {
		if category != "" && !strings.EqualFold(business.Category, category) {
			continue
		}
		result = append(result, business)
	}
	sortBusinessesByID(result)
	return result, nil
}

// Map iteration order is random; sort so list responses are deterministic.
func sortBusinessesByID(businesses []model.Business) {
	sort.Slice(businesses, func(i, j int) bool {
		return businesses[i].ID < businesses[j].ID
	})
}
