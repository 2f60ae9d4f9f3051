package models

import (
	"time"
)

// UniComment is the university-page comment thread, independent of the
// discussion posts. Replies nest exactly one level: a UniReply always hangs
// off a UniComment and can never have replies of its own.
type UniComment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UniversityID uint       `gorm:"not null;index" json:"university_id"`
	University   University `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"university"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Filled at query time
	Replies   []UniReply `gorm:"-" json:"replies"`
	Upvotes   int        `gorm:"-" json:"upvotes"`
	Downvotes int        `gorm:"-" json:"downvotes"`
	NetVotes  int        `gorm:"-" json:"net_votes"`
}

type UniReply struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CommentID uint       `gorm:"not null;index" json:"comment_id"`
	Comment   UniComment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comment"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	User      User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UniVote is a vote on a university-page comment, unique per (comment, user).
type UniVote struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CommentID uint       `gorm:"not null;index;uniqueIndex:idx_uni_vote_user" json:"comment_id"`
	Comment   UniComment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comment"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_uni_vote_user" json:"user_id"`
	IsUpvote  bool       `gorm:"not null" json:"is_upvote"`
	CreatedAt time.Time  `json:"created_at"`
}
