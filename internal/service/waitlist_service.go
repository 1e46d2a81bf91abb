package service

import (
	"context"

	"festivo/internal/model"
	"festivo/internal/repository"
)

// WaitlistService handles pre-launch waitlist signups.
type WaitlistService interface {
	Join(ctx context.Context, entry *model.WaitlistEntry) (*model.WaitlistEntry, error)
}

type waitlistService struct {
	repo repository.WaitlistRepository
}

// NewWaitlistService builds a WaitlistService.
func NewWaitlistService(repo repository.WaitlistRepository) WaitlistService {
	return &waitlistService{repo: repo}
}

// Join adds an entry to the waitlist. Duplicate emails are rejected by the
// repository with ErrWaitlistDuplicate.
func (s *waitlistService) Join(ctx context.Context, entry *model.WaitlistEntry) (*model.WaitlistEntry, error) {
	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
