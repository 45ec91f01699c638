// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a member of the LinkUp network.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Bio         string         `json:"bio"`
	Skills      StringList     `gorm:"type:json" json:"skills"`
	Image       string         `json:"image"`
	Experiences ProfileEntries `gorm:"type:json" json:"experiences"`
	Educations  ProfileEntries `gorm:"type:json" json:"educations"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// IsFriend indicates whether the requesting user has an accepted
	// connection with this profile (computed, omitted on own profile).
	IsFriend *bool `gorm:"-" json:"is_friend,omitempty"`
}

// UserSummary is the reduced user shape embedded in posts, comments,
// messages and suggestions.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Summary returns the reduced representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Image: u.Image}
}

// UserStats holds per-user aggregate counts shown on profiles.
type UserStats struct {
	PostCount        int64 `json:"post_count"`
	ConnectionsCount int64 `json:"connections_count"`
}
