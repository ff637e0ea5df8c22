package domain

import (
	"time"

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"
)

// User Model
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`  // Opaque UUID primary key
	Name         string    `gorm:"not null" json:"name"`          // Display name
	Email        string    `gorm:"unique;not null" json:"email"`  // Unique email, stored lower-case
	PasswordHash string    `gorm:"not null" json:"-"`             // Hashed password, never serialized
	Role         Role      `gorm:"not null" json:"role"`          // Role: ADMIN or MANAGER
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"` // Timestamp of creation
}

// BeforeCreate assigns an opaque UUID before insert
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
