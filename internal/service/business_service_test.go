package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "festivo/internal/errors"
	"festivo/internal/model"
)

// MockBusinessRepository is a mock implementation of BusinessRepository.
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *model.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uint) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func (m *MockBusinessRepository) List(ctx context.Context, category string) ([]model.Business, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func TestBusinessService_GetBusiness(t *testing.T) {
	stored := &model.Business{ID: 3, Name: "Foo Photos", Category: "Photography"}

	mockRepo := new(MockBusinessRepository)
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	mockRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, apperrors.ErrNotFound)

	// A nil cache client degrades to pass-through.
	service := NewBusinessService(mockRepo, nil)

	business, err := service.GetBusiness(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "Foo Photos", business.Name)

	_, err = service.GetBusiness(context.Background(), 4)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBusinessService_ListBusinessesPassesCategory(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	mockRepo.On("List", mock.Anything, "Catering").Return([]model.Business{{ID: 1, Category: "Catering"}}, nil)

	service := NewBusinessService(mockRepo, nil)
	businesses, err := service.ListBusinesses(context.Background(), "Catering")
	assert.NoError(t, err)
	assert.Len(t, businesses, 1)
	mockRepo.AssertExpectations(t)
}
