package repository

import (
	"context"
	"testing"
	"time"

	"linkup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_GetOrCreateConversationNormalizesPair(t *testing.T) {
	repo := NewChatRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t)
	bob := createTestUser(t)

	first, err := repo.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// Same conversation regardless of who initiates
	second, err := repo.GetOrCreateConversation(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Less(t, second.User1ID, second.User2ID)
}

func TestChatRepository_MessagesAndReadTransitions(t *testing.T) {
	repo := NewChatRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t)
	bob := createTestUser(t)

	conversation, err := repo.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateMessage(ctx, &models.Message{
			ConversationID: conversation.ID,
			SenderID:       alice.ID,
			ReceiverID:     bob.ID,
			Content:        "hey",
		}))
	}
	require.NoError(t, repo.CreateMessage(ctx, &models.Message{
		ConversationID: conversation.ID,
		SenderID:       bob.ID,
		ReceiverID:     alice.ID,
		Content:        "hi back",
	}))

	// Unread counts are per receiver
	bobUnread, err := repo.CountUnreadInConversation(ctx, conversation.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bobUnread)

	aliceUnread, err := repo.CountUnreadInConversation(ctx, conversation.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), aliceUnread)

	// Bob reads the conversation; only messages addressed to him flip
	flipped, err := repo.MarkMessagesRead(ctx, conversation.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), flipped)

	bobUnread, err = repo.CountUnreadInConversation(ctx, conversation.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bobUnread)

	aliceUnread, err = repo.CountUnreadInConversation(ctx, conversation.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), aliceUnread)

	messages, err := repo.GetMessages(ctx, conversation.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	for _, msg := range messages {
		if msg.ReceiverID == bob.ID {
			assert.True(t, msg.Read)
			assert.NotNil(t, msg.ReadAt)
		}
	}

	// Marking again is a no-op
	flipped, err = repo.MarkMessagesRead(ctx, conversation.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), flipped)
}

func TestChatRepository_LastMessage(t *testing.T) {
	repo := NewChatRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t)
	bob := createTestUser(t)

	conversation, err := repo.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	// Empty conversation has no last message
	last, err := repo.GetLastMessage(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, last)

	older := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       alice.ID,
		ReceiverID:     bob.ID,
		Content:        "older",
	}
	older.CreatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.CreateMessage(ctx, older))

	newer := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       bob.ID,
		ReceiverID:     alice.ID,
		Content:        "newer",
	}
	require.NoError(t, repo.CreateMessage(ctx, newer))

	last, err = repo.GetLastMessage(ctx, conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "newer", last.Content)
}

func TestChatRepository_ConversationsOrderedByRecency(t *testing.T) {
	repo := NewChatRepository(testDB)
	ctx := context.Background()

	me := createTestUser(t)
	first := createTestUser(t)
	second := createTestUser(t)

	older, err := repo.GetOrCreateConversation(ctx, me.ID, first.ID)
	require.NoError(t, err)
	newer, err := repo.GetOrCreateConversation(ctx, me.ID, second.ID)
	require.NoError(t, err)

	// Activity in the older conversation bumps it to the top
	require.NoError(t, testDB.Model(&models.Conversation{}).
		Where("id = ?", newer.ID).
		Update("updated_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, repo.TouchConversation(ctx, older.ID))

	conversations, err := repo.GetConversationsForUser(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, older.ID, conversations[0].ID)
	assert.Equal(t, newer.ID, conversations[1].ID)
}

func TestChatRepository_CountUnreadTotalSpansConversations(t *testing.T) {
	repo := NewChatRepository(testDB)
	ctx := context.Background()

	me := createTestUser(t)
	first := createTestUser(t)
	second := createTestUser(t)

	c1, err := repo.GetOrCreateConversation(ctx, me.ID, first.ID)
	require.NoError(t, err)
	c2, err := repo.GetOrCreateConversation(ctx, me.ID, second.ID)
	require.NoError(t, err)

	require.NoError(t, repo.CreateMessage(ctx, &models.Message{
		ConversationID: c1.ID, SenderID: first.ID, ReceiverID: me.ID, Content: "a",
	}))
	require.NoError(t, repo.CreateMessage(ctx, &models.Message{
		ConversationID: c2.ID, SenderID: second.ID, ReceiverID: me.ID, Content: "b",
	}))

	total, err := repo.CountUnreadTotal(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
