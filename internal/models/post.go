package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a publication owned exclusively by its creator.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	ImageURL string `json:"image_url,omitempty"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"-" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"-" json:"comments_count"`
	// IsLikedByCurrentUser indicates whether the requesting user liked this post (computed)
	IsLikedByCurrentUser bool `gorm:"-" json:"is_liked_by_current_user"`
	// CanEdit indicates whether the requesting user owns this post (computed)
	CanEdit   bool           `gorm:"-" json:"can_edit"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
