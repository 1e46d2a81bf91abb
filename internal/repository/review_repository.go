package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"festivo/internal/model"
)

// ReviewRepository defines review persistence operations. Reviews are
// immutable after creation.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByBusinessID(ctx context.Context, businessID uint) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	review.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[uint]model.Review
	nextID  uint
}

// NewMemoryReviewRepository builds an in-memory repository.
func NewMemoryReviewRepository() ReviewRepository {
	return &memoryReviewRepository{
		reviews: make(map[uint]model.Review),
		nextID:  1,
	}
}

func (r *memoryReviewRepository) Create(ctx context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.CreatedAt = time.Now()
	review.ID = r.nextID
	r.nextID++
	r.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviewRepository) FindByBusinessID(ctx context.Context, businessID uint) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Review, 0)
	for _, review := range r.reviews {
		if review.BusinessID == businessID {
			result = append(result, review)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
