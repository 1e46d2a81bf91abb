package service

import (
	"context"

	"festivo/internal/model"
	"festivo/internal/repository"
)

// ReviewService handles reviews of businesses.
type ReviewService interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	BusinessReviews(ctx context.Context, businessID uint) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService builds a ReviewService.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) BusinessReviews(ctx context.Context, businessID uint) ([]model.Review, error) {
	return s.repo.FindByBusinessID(ctx, businessID)
}
