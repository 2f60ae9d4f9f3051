package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthID    string    `gorm:"uniqueIndex;not null" json:"auth_id"` // subject ID from the identity provider
	Name      string    `gorm:"not null" json:"name"`                // display name, editable in settings
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Picture   string    `json:"picture"` // avatar URL supplied by the identity provider
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt: the application never deletes accounts
}
