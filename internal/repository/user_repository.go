package repository

import (
	"context"
	"strings"
	"sync"

	"gorm.io/gorm"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

// UserRepository defines user persistence operations. Create enforces
// case-insensitive uniqueness of email and username; users are immutable
// after creation and never deleted.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(email) = LOWER(?)", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrEmailTaken
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(username) = LOWER(?)", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrUsernameTaken
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]model.User
	nextID uint
}

// NewMemoryUserRepository builds an in-memory repository. State is volatile
// and lost on process exit.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:  make(map[uint]model.User),
		nextID: 1,
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrEmailTaken
		}
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return apperrors.ErrUsernameTaken
		}
	}

	// The counter advances only on successful insert.
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
