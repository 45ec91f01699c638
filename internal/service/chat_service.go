package service

import (
	"context"
	"unicode/utf8"

	"linkup/internal/cache"
	"linkup/internal/middleware"
	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/validation"
)

const (
	messagePageSize   = 50
	maxMessageLength  = 2000
	userSearchPageLen = 5
)

// ChatService provides direct messaging business logic.
type ChatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

// NewChatService returns a new ChatService.
func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo, userRepo: userRepo}
}

// SendMessageInput is the payload for sending a direct message.
type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Content    string
}

// SendMessage creates the pair's conversation lazily, appends the
// message and bumps the conversation's recency.
func (s *ChatService) SendMessage(ctx context.Context, input SendMessageInput) (*models.Message, error) {
	if input.SenderID == input.ReceiverID {
		return nil, models.NewValidationError("Cannot send a message to yourself")
	}

	content := validation.SanitizePlain(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	// Length caps are character counts, not byte counts
	if utf8.RuneCountInString(content) > maxMessageLength {
		return nil, models.NewValidationError("Message content is too long")
	}

	if _, err := s.userRepo.GetByID(ctx, input.ReceiverID); err != nil {
		return nil, err
	}

	conversation, err := s.chatRepo.GetOrCreateConversation(ctx, input.SenderID, input.ReceiverID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       input.SenderID,
		ReceiverID:     input.ReceiverID,
		Content:        content,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	if err := s.chatRepo.TouchConversation(ctx, conversation.ID); err != nil {
		return nil, err
	}

	middleware.MessagesSent.Inc()
	cache.InvalidateUnreadMessages(ctx, input.ReceiverID)

	return message, nil
}

// ListConversations returns the user's conversations newest-activity
// first, each with the counterpart, last message and unread count.
func (s *ChatService) ListConversations(ctx context.Context, userID uint) ([]models.ConversationSummary, error) {
	conversations, err := s.chatRepo.GetConversationsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		other := conversation.User1
		if conversation.User1ID == userID {
			other = conversation.User2
		}

		lastMessage, err := s.chatRepo.GetLastMessage(ctx, conversation.ID)
		if err != nil {
			return nil, err
		}
		unread, err := s.chatRepo.CountUnreadInConversation(ctx, conversation.ID, userID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, models.ConversationSummary{
			ID:          conversation.ID,
			OtherUser:   other.Summary(),
			LastMessage: lastMessage,
			UnreadCount: unread,
			UpdatedAt:   conversation.UpdatedAt,
		})
	}

	return summaries, nil
}

// GetMessages returns a conversation's messages oldest first and marks
// every message addressed to the reader as read. Participant-gated.
func (s *ChatService) GetMessages(ctx context.Context, userID, conversationID uint, limit, offset int) ([]models.Message, error) {
	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.User1ID != userID && conversation.User2ID != userID {
		return nil, models.NewForbiddenError("You are not a participant in this conversation")
	}

	if limit <= 0 || limit > messagePageSize {
		limit = messagePageSize
	}

	messages, err := s.chatRepo.GetMessages(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, err
	}

	flipped, err := s.chatRepo.MarkMessagesRead(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if flipped > 0 {
		cache.InvalidateUnreadMessages(ctx, userID)
	}

	// Reflect the read transition in the returned page
	for i := range messages {
		if messages[i].ReceiverID == userID {
			messages[i].Read = true
		}
	}

	return messages, nil
}

// MarkRead marks every unread message addressed to the user in the
// conversation as read. Participant-gated.
func (s *ChatService) MarkRead(ctx context.Context, userID, conversationID uint) (int64, error) {
	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return 0, err
	}
	if conversation.User1ID != userID && conversation.User2ID != userID {
		return 0, models.NewForbiddenError("You are not a participant in this conversation")
	}

	flipped, err := s.chatRepo.MarkMessagesRead(ctx, conversationID, userID)
	if err != nil {
		return 0, err
	}
	if flipped > 0 {
		cache.InvalidateUnreadMessages(ctx, userID)
	}
	return flipped, nil
}

// UnreadCount returns the user's total unread messages across all
// conversations, served from cache when fresh.
func (s *ChatService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	key := cache.UnreadMessagesKey(userID)
	if count, ok := cache.GetCachedCount(ctx, key); ok {
		return count, nil
	}

	count, err := s.chatRepo.CountUnreadTotal(ctx, userID)
	if err != nil {
		return 0, err
	}
	cache.SetCachedCount(ctx, key, count)
	return count, nil
}

// SearchUsers finds users to start a conversation with.
func (s *ChatService) SearchUsers(ctx context.Context, userID uint, query string) ([]models.UserSummary, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}

	users, err := s.userRepo.Search(ctx, query, userID, userSearchPageLen)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
