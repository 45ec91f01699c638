// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// FriendshipStatus represents the lifecycle state of a connection edge.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a request awaiting a response.
	FriendshipStatusPending FriendshipStatus = "PENDING"
	// FriendshipStatusAccepted indicates an established connection.
	FriendshipStatusAccepted FriendshipStatus = "ACCEPTED"
	// FriendshipStatusRejected indicates a declined request. A rejected
	// edge is deleted and replaced when the sender requests again.
	FriendshipStatusRejected FriendshipStatus = "REJECTED"
	// FriendshipStatusNone is reported when no edge exists between a pair.
	FriendshipStatusNone FriendshipStatus = "none"
)

// IsActive reports whether the edge blocks a new request between the
// pair. At most one active edge may exist per unordered pair.
func (s FriendshipStatus) IsActive() bool {
	return s == FriendshipStatusPending || s == FriendshipStatusAccepted
}

// Friendship is a directed connection edge between two users. Direction
// is required to distinguish sent from received pending requests.
type Friendship struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	SenderID   uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"sender_id"`
	ReceiverID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"receiver_id"`
	Status     FriendshipStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// FriendshipState is the derived relation between the requesting user
// and another profile.
type FriendshipState struct {
	Status   FriendshipStatus `json:"status"`
	IsSender bool             `json:"is_sender"`
	// RequestID is set while a request is pending so the client can
	// accept, reject or cancel it.
	RequestID uint `json:"request_id,omitempty"`
}
