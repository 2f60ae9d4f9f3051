package models

import (
	"time"
)

type University struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:100;not null;index" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Country      string    `gorm:"size:100;not null" json:"country"`
	Region       string    `gorm:"size:100;not null" json:"region"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	MapsURL      string    `gorm:"type:text" json:"maps_url"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	WebsiteURL   string    `gorm:"size:255;not null" json:"website_url"`
	LinkedinURL  string    `gorm:"size:255" json:"linkedin_url"`
	CreatedAt    time.Time `json:"created_at"`

	// Derived at query time from reviews; not a database column
	Rating float64 `gorm:"-" json:"rating"`
}
