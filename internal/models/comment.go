package models

import (
	"time"
)

// Comment is a flat comment on a suggestion/discussion post. Vote counts are
// always recomputed from the comment_votes table; there is no counter column.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled at query time
	Upvotes   int `gorm:"-" json:"upvotes"`
	Downvotes int `gorm:"-" json:"downvotes"`
	NetVotes  int `gorm:"-" json:"net_votes"`
}
