package models

import (
	"time"
)

// Post backs both the "discussion" and "suggestion" pages; they share one table.
type Post struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UniversityID uint       `gorm:"not null;index" json:"university_id"`
	University   University `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"university"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title        string     `gorm:"size:200;not null;index" json:"title"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Filled at query time, not database columns
	Upvotes      int `gorm:"-" json:"upvotes"`
	Downvotes    int `gorm:"-" json:"downvotes"`
	NetVotes     int `gorm:"-" json:"net_votes"`
	CommentCount int `gorm:"-" json:"comment_count"`
}
