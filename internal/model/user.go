package model

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Provider     string    `gorm:"not null;size:20;default:'local'" json:"provider"`
	ProviderID   string    `gorm:"size:255" json:"-"`
	Email        string    `gorm:"not null;size:255" json:"email"`
	Name         string    `gorm:"size:255" json:"name"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	AvatarURL    string    `json:"avatarUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Provider constants
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)
