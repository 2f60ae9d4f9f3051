package models

import (
	"time"
)

// PostVote records one user's vote on a suggestion/discussion post. The
// composite unique index makes a duplicate insert fail at the database even
// if two requests pass the application-side existence check at once.
type PostVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_vote_user" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_post_vote_user" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	IsUpvote  bool      `gorm:"not null" json:"is_upvote"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentVote records one user's vote on a suggestion comment.
type CommentVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_vote_user" json:"user_id"`
	CommentID uint      `gorm:"not null;index;uniqueIndex:idx_comment_vote_user" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comment"`
	IsUpvote  bool      `gorm:"not null" json:"is_upvote"`
	CreatedAt time.Time `json:"created_at"`
}
