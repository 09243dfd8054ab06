package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an authenticated actor in the system.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"column:email;size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:255;not null"`
	Role         string    `json:"role" gorm:"column:role;size:16;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;not null"`
}

func (User) TableName() string { return "users" }
