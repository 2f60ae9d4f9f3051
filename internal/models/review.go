package models

import (
	"time"
)

type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UniversityID uint       `gorm:"not null;index" json:"university_id"`
	University   University `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"university"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Rating       int        `gorm:"not null" json:"rating"` // 1-5, checked at the form boundary
	Content      string     `gorm:"type:text;not null" json:"content"`
	Votes        int        `gorm:"default:0" json:"votes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
