package models

import (
	"database/sql/driver"
	"time"
)

// NotificationType classifies the action that produced a notification.
type NotificationType string

const (
	// NotificationTypeFriendRequest is fanned out to the receiver of a
	// new connection request.
	NotificationTypeFriendRequest NotificationType = "FRIEND_REQUEST"
	// NotificationTypeFriendRequestResponse is fanned out to the
	// original sender when their request is accepted.
	NotificationTypeFriendRequestResponse NotificationType = "FRIEND_REQUEST_RESPONSE"
	// NotificationTypePostLike is fanned out to a post owner on like.
	NotificationTypePostLike NotificationType = "POST_LIKE"
	// NotificationTypePostComment is fanned out to a post owner on comment.
	NotificationTypePostComment NotificationType = "POST_COMMENT"
)

// NotificationMetadata carries free-form references to the records that
// produced the notification. Status is updated when the originating
// action resolves (e.g. a friend request is accepted).
type NotificationMetadata struct {
	FriendshipID uint             `json:"friendship_id,omitempty"`
	SenderID     uint             `json:"sender_id,omitempty"`
	PostID       uint             `json:"post_id,omitempty"`
	CommentID    uint             `json:"comment_id,omitempty"`
	Status       FriendshipStatus `json:"status,omitempty"`
}

// Value implements driver.Valuer.
func (m NotificationMetadata) Value() (driver.Value, error) {
	return jsonValue(m)
}

// Scan implements sql.Scanner.
func (m *NotificationMetadata) Scan(src any) error {
	return scanJSON(src, m)
}

// Notification is a per-user record created as a side effect of social
// graph and content actions. Writes are best-effort: a failed insert is
// logged and never fails the triggering request.
type Notification struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	UserID    uint                 `gorm:"not null;index" json:"user_id"`
	Type      NotificationType     `gorm:"type:varchar(40);not null" json:"type"`
	Content   string               `gorm:"not null" json:"content"`
	Read      bool                 `gorm:"default:false;index" json:"read"`
	Metadata  NotificationMetadata `gorm:"type:json" json:"metadata"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
