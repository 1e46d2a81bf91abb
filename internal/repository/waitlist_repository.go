package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

// WaitlistRepository defines waitlist persistence operations. Entries are
// immutable; adding a duplicate email (case-insensitive) is rejected.
type WaitlistRepository interface {
	Add(ctx context.Context, entry *model.WaitlistEntry) error
	List(ctx context.Context) ([]model.WaitlistEntry, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository builds a GORM-backed repository.
func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Add(ctx context.Context, entry *model.WaitlistEntry) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.WaitlistEntry{}).
		Where("LOWER(email) = LOWER(?)", entry.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrWaitlistDuplicate
	}
	entry.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *waitlistRepository) List(ctx context.Context) ([]model.WaitlistEntry, error) {
	var entries []model.WaitlistEntry
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type memoryWaitlistRepository struct {
	mu      sync.RWMutex
	entries map[uint]model.WaitlistEntry
	nextID  uint
}

// NewMemoryWaitlistRepository builds an in-memory repository.
func NewMemoryWaitlistRepository() WaitlistRepository {
	return &memoryWaitlistRepository{
		entries: make(map[uint]model.WaitlistEntry),
		nextID:  1,
	}
}

func (r *memoryWaitlistRepository) Add(ctx context.Context, entry *model.WaitlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if strings.EqualFold(existing.Email, entry.Email) {
			return apperrors.ErrWaitlistDuplicate
		}
	}

	entry.CreatedAt = time.Now()
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = *entry
	return nil
}

func (r *memoryWaitlistRepository) List(ctx context.Context) ([]model.WaitlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.WaitlistEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
