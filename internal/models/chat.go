// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is the single thread between an unordered pair of users,
// created lazily on the first message between them. UpdatedAt is
// refreshed on every new message so conversation lists sort by recency.
type Conversation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	User1ID   uint           `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user1_id"`
	User2ID   uint           `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user2_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User1    User      `gorm:"foreignKey:User1ID" json:"-"`
	User2    User      `gorm:"foreignKey:User2ID" json:"-"`
	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

// ConversationSummary is the list representation of a conversation from
// one participant's point of view.
type ConversationSummary struct {
	ID          uint        `json:"id"`
	OtherUser   UserSummary `json:"other_user"`
	LastMessage *Message    `json:"last_message,omitempty"`
	UnreadCount int64       `json:"unread_count"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Message is a direct message inside a conversation. Read flips to true
// when the receiver opens or polls the conversation.
type Message struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ConversationID uint       `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint       `gorm:"not null;index" json:"sender_id"`
	ReceiverID     uint       `gorm:"not null;index" json:"receiver_id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	Read           bool       `gorm:"default:false;index" json:"read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
