package domain

import (
	"time"

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"
)

// Car Model
type Car struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`        // Opaque UUID primary key
	DriverID  string    `gorm:"size:36;not null;index" json:"driver_id"` // Foreign key to Driver
	CarName   string    `gorm:"not null" json:"car_name"`            // Car model name
	CarNumber string    `gorm:"not null" json:"car_number"`          // Plate number
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`    // Timestamp of creation
	Driver    Driver    `gorm:"foreignKey:DriverID" json:"-"`        // Owning driver association
}

// BeforeCreate assigns an opaque UUID before insert
func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DriverInfo is the driver slice embedded in enriched car/parking reads
type DriverInfo struct {
	Name  string `json:"name"`  // Driver name
	Phone string `json:"phone"` // Contact phone
}

// CarDetail is the read-time enriched view of a car with its driver.
// It is composed at query time, never stored.
type CarDetail struct {
	Car
	Driver DriverInfo `json:"driver"` // Embedded parent driver fields
}
