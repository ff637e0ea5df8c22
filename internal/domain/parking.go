package domain

import (
	"time"

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"
)

// Parking Model
type Parking struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`         // Opaque UUID primary key
	CarID           string    `gorm:"size:36;not null;index" json:"car_id"` // Foreign key to Car
	Location        string    `gorm:"not null" json:"location"`             // Parking location
	City            string    `gorm:"not null" json:"city"`                 // City
	ParkingDate     string    `gorm:"not null" json:"parking_date"`         // Session date, stored as given
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`     // Session length in minutes
	Fee             float64   `gorm:"not null" json:"fee"`                  // Session fee
	IsPaid          bool      `gorm:"not null;default:false" json:"is_paid"` // Payment state, starts false
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`     // Timestamp of creation
	Car             Car       `gorm:"foreignKey:CarID" json:"-"`            // Parked car association
}

// BeforeCreate assigns an opaque UUID before insert
func (p *Parking) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CarInfo is the car slice embedded in enriched parking reads
type CarInfo struct {
	CarName   string     `json:"car_name"`   // Car model name
	CarNumber string     `json:"car_number"` // Plate number
	Driver    DriverInfo `json:"driver"`     // Grandparent driver fields
}

// ParkingDetail is the read-time enriched view of a parking session with
// its car and the car's driver. Composed at query time, never stored.
type ParkingDetail struct {
	Parking
	Car CarInfo `json:"car"` // Embedded parent car fields
}

// Insights is the admin analytics aggregate
type Insights struct {
	TotalCollection float64 `json:"totalCollection"` // Sum of fees over paid parkings
	TotalCars       int64   `json:"totalCars"`       // Count of all cars
	ActiveParkings  int64   `json:"activeParkings"`  // Count of unpaid parkings
	TotalParkings   int64   `json:"totalParkings"`   // Count of all parkings
}
