package domain

import (
	"time"

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"
)

// Driver Model
type Driver struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`     // Opaque UUID primary key
	Name      string    `gorm:"not null" json:"name"`             // Driver name
	Phone     string    `gorm:"not null" json:"phone"`            // Contact phone
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"` // Timestamp of creation
}

// BeforeCreate assigns an opaque UUID before insert
func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
