package repository

import (
	"context"
	"errors"
	"time"

	"linkup/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for conversation and message data operations
type ChatRepository interface {
	GetOrCreateConversation(ctx context.Context, userID1, userID2 uint) (*models.Conversation, error)
	GetConversationByID(ctx context.Context, id uint) (*models.Conversation, error)
	GetConversationsForUser(ctx context.Context, userID uint) ([]models.Conversation, error)
	TouchConversation(ctx context.Context, id uint) error

	CreateMessage(ctx context.Context, message *models.Message) error
	GetMessages(ctx context.Context, conversationID uint, limit, offset int) ([]models.Message, error)
	GetLastMessage(ctx context.Context, conversationID uint) (*models.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID uint) (int64, error)
	CountUnreadInConversation(ctx context.Context, conversationID, userID uint) (int64, error)
	CountUnreadTotal(ctx context.Context, userID uint) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// GetOrCreateConversation finds the thread for an unordered pair,
// creating it lazily. The pair is normalized (lower ID first) so the
// unique index holds regardless of who messages first.
func (r *chatRepository) GetOrCreateConversation(ctx context.Context, userID1, userID2 uint) (*models.Conversation, error) {
	if userID1 > userID2 {
		userID1, userID2 = userID2, userID1
	}

	var conversation models.Conversation
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", userID1, userID2).
		First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	conversation = models.Conversation{User1ID: userID1, User2ID: userID2}
	if err := r.db.WithContext(ctx).Create(&conversation).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &conversation, nil
}

func (r *chatRepository) GetConversationByID(ctx context.Context, id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.WithContext(ctx).
		Preload("User1").
		Preload("User2").
		First(&conversation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conversation, nil
}

func (r *chatRepository) GetConversationsForUser(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.WithContext(ctx).
		Preload("User1").
		Preload("User2").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conversations, nil
}

func (r *chatRepository) TouchConversation(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) GetMessages(ctx context.Context, conversationID uint, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// GetLastMessage returns (nil, nil) for an empty conversation.
func (r *chatRepository) GetLastMessage(ctx context.Context, conversationID uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

// MarkMessagesRead flips every unread message addressed to the reader in
// the conversation and stamps the read time.
func (r *chatRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID uint) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = ?", conversationID, readerID, false).
		Updates(map[string]interface{}{"read": true, "read_at": &now})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *chatRepository) CountUnreadInConversation(ctx context.Context, conversationID, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = ?", conversationID, userID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *chatRepository) CountUnreadTotal(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
