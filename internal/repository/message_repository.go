package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"festivo/internal/model"
)

// MessageRepository defines message persistence operations. Messages are
// immutable after creation; nothing marks them read yet.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	// Conversation returns every message exchanged between the two users in
	// either direction, sorted ascending by sent time. The relative order of
	// messages with equal timestamps is unspecified.
	Conversation(ctx context.Context, userID, otherUserID uint) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	message.IsRead = false
	message.SentAt = time.Now()
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Conversation(ctx context.Context, userID, otherUserID uint) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("sent_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages map[uint]model.Message
	nextID   uint
}

// NewMemoryMessageRepository builds an in-memory repository.
func NewMemoryMessageRepository() MessageRepository {
	return &memoryMessageRepository{
		messages: make(map[uint]model.Message),
		nextID:   1,
	}
}

func (r *memoryMessageRepository) Create(ctx context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Incoming is_read values are ignored; messages always start unread.
	message.IsRead = false
	message.SentAt = time.Now()
	message.ID = r.nextID
	r.nextID++
	r.messages[message.ID] = *message
	return nil
}

func (r *memoryMessageRepository) Conversation(ctx context.Context, userID, otherUserID uint) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Message, 0)
	for _, message := range r.messages {
		if (message.SenderID == userID && message.ReceiverID == otherUserID) ||
			(message.SenderID == otherUserID && message.ReceiverID == userID) {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SentAt.Equal(result[j].SentAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].SentAt.Before(result[j].SentAt)
	})
	return result, nil
}
