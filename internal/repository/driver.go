package repository

import (
	"errors"

	"parking_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// DriverRepository persists drivers
type DriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository returns a DriverRepository bound to db
func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// Create inserts a new driver after checking required fields
func (r *DriverRepository) Create(d *domain.Driver) error {
	if d.Name == "" || d.Phone == "" {
		return ErrValidation
	}
	return r.db.Create(d).Error
}

// List returns all drivers, latest first
func (r *DriverRepository) List() ([]domain.Driver, error) {
	var drivers []domain.Driver
	err := r.db.Order("created_at desc").Find(&drivers).Error
	return drivers, err
}

// GetByID returns one driver or ErrNotFound
func (r *DriverRepository) GetByID(id string) (domain.Driver, error) {
	var driver domain.Driver
	err := r.db.First(&driver, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Driver{}, ErrNotFound
	}
	return driver, err
}
