package auth

import (
	"time"

	"casahub/internal/pkg/access"
)

// User is an account in the dashboard. Role drives every authorization
// decision downstream.
type User struct {
	ID           string      `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Name         string      `gorm:"not null" json:"name"`
	Role         access.Role `gorm:"not null;default:GUEST" json:"role"`
	AvatarURL    *string     `json:"avatarUrl,omitempty"`
	IsActive     bool        `gorm:"default:true" json:"isActive"`
	LastLogin    *time.Time  `json:"lastLogin,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Public strips credential fields for embedding in other responses.
type Public struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func (u *User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}
