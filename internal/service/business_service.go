package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"festivo/internal/cache"
	"festivo/internal/model"
	"festivo/internal/repository"
)

const businessCacheTTL = 5 * time.Minute

// BusinessService handles provider profile operations.
type BusinessService interface {
	CreateBusiness(ctx context.Context, business *model.Business) (*model.Business, error)
	GetBusiness(ctx context.Context, id uint) (*model.Business, error)
	ListBusinesses(ctx context.Context, category string) ([]model.Business, error)
	ListUserBusinesses(ctx context.Context, userID uint) ([]model.Business, error)
}

type businessService struct {
	repo  repository.BusinessRepository
	cache *cache.Client
}

// NewBusinessService builds a BusinessService with repository and cache.
func NewBusinessService(repo repository.BusinessRepository, cache *cache.Client) BusinessService {
	return &businessService{repo: repo, cache: cache}
}

func (s *businessService) cacheKey(id uint) string {
	return fmt.Sprintf("business:%d", id)
}

func (s *businessService) CreateBusiness(ctx context.Context, business *model.Business) (*model.Business, error) {
	if err := s.repo.Create(ctx, business); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(business.ID))
	return business, nil
}

// GetBusiness retrieves a business by ID with read-through caching.
func (s *businessService) GetBusiness(ctx context.Context, id uint) (*model.Business, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Business
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(business); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, businessCacheTTL)
	}
	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, category string) ([]model.Business, error) {
	return s.repo.List(ctx, category)
}

func (s *businessService) ListUserBusinesses(ctx context.Context, userID uint) ([]model.Business, error) {
	return s.repo.FindByUserID(ctx, userID)
}
