package service

import (
	"context"

	"festivo/internal/model"
	"festivo/internal/repository"
)

// MessageService handles direct messages between users.
type MessageService interface {
	SendMessage(ctx context.Context, message *model.Message) (*model.Message, error)
	GetConversation(ctx context.Context, userID, otherUserID uint) ([]model.Message, error)
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService builds a MessageService.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

// SendMessage stores a new message. The repository forces is_read to false
// and stamps the send time.
func (s *messageService) SendMessage(ctx context.Context, message *model.Message) (*model.Message, error) {
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetConversation is symmetric in its arguments: swapping the two user IDs
// returns the same messages.
func (s *messageService) GetConversation(ctx context.Context, userID, otherUserID uint) ([]model.Message, error) {
	return s.repo.Conversation(ctx, userID, otherUserID)
}
