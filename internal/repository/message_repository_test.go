package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"festivo/internal/model"
)

func sendMessage(t *testing.T, repo MessageRepository, sender, receiver uint, content string) *model.Message {
	t.Helper()
	message := &model.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	}
	assert.NoError(t, repo.Create(context.Background(), message))
	return message
}

func TestMemoryMessageRepository_CreateForcesUnread(t *testing.T) {
	repo := NewMemoryMessageRepository()

	message := &model.Message{
		SenderID:   1,
		ReceiverID: 2,
		Content:    "hello",
		IsRead:     true, // must be ignored
	}
	assert.NoError(t, repo.Create(context.Background(), message))
	assert.Equal(t, uint(1), message.ID)
	assert.False(t, message.IsRead)
	assert.False(t, message.SentAt.IsZero())
}

func TestMemoryMessageRepository_ConversationIsSymmetric(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()

	sendMessage(t, repo, 1, 2, "hi")
	sendMessage(t, repo, 2, 1, "hello back")
	sendMessage(t, repo, 1, 2, "are you free on the 3rd?")
	sendMessage(t, repo, 1, 3, "unrelated")

	forward, err := repo.Conversation(ctx, 1, 2)
	assert.NoError(t, err)
	reverse, err := repo.Conversation(ctx, 2, 1)
	assert.NoError(t, err)

	assert.Len(t, forward, 3)
	assert.Len(t, reverse, 3)

	forwardIDs := messageIDs(forward)
	reverseIDs := messageIDs(reverse)
	assert.ElementsMatch(t, forwardIDs, reverseIDs)
}

func TestMemoryMessageRepository_ConversationSortedBySentAt(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()

	sendMessage(t, repo, 1, 2, "first")
	sendMessage(t, repo, 2, 1, "second")
	sendMessage(t, repo, 1, 2, "third")

	conversation, err := repo.Conversation(ctx, 1, 2)
	assert.NoError(t, err)

	for i := 1; i < len(conversation); i++ {
		assert.False(t, conversation[i].SentAt.Before(conversation[i-1].SentAt),
			"messages must be ordered ascending by sent time")
	}
}

func TestMemoryMessageRepository_ConversationEmpty(t *testing.T) {
	repo := NewMemoryMessageRepository()

	conversation, err := repo.Conversation(context.Background(), 5, 6)
	assert.NoError(t, err)
	assert.Empty(t, conversation)
}

func messageIDs(messages []model.Message) []uint {
	ids := make([]uint, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	return ids
}
