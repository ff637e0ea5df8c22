package repository

import (
	"errors"

	"parking_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CarRepository persists cars and enforces the Car -> Driver reference
type CarRepository struct {
	db *gorm.DB
}

// NewCarRepository returns a CarRepository bound to db
func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create inserts a new car. The owning driver must already exist; a missing
// driver yields ErrDriverNotFound and no row is written.
func (r *CarRepository) Create(c *domain.Car) error {
	if c.DriverID == "" || c.CarName == "" || c.CarNumber == "" {
		return ErrValidation
	}
	var driver domain.Driver
	err := r.db.Select("id").First(&driver, "id = ?", c.DriverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDriverNotFound
	}
	if err != nil {
		return err
	}
	return r.db.Create(c).Error
}

// List returns all cars enriched with their driver's name and phone,
// latest first
func (r *CarRepository) List() ([]domain.CarDetail, error) {
	var cars []domain.Car
	err := r.db.Preload("Driver").Order("created_at desc").Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return enrichCars(cars), nil
}

// ListByDriver returns the flat cars owned by one driver, latest first
func (r *CarRepository) ListByDriver(driverID string) ([]domain.Car, error) {
	var cars []domain.Car
	err := r.db.Where("driver_id = ?", driverID).Order("created_at desc").Find(&cars).Error
	return cars, err
}

// GetByID returns one enriched car or ErrNotFound
func (r *CarRepository) GetByID(id string) (domain.CarDetail, error) {
	var car domain.Car
	err := r.db.Preload("Driver").First(&car, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CarDetail{}, ErrNotFound
	}
	if err != nil {
		return domain.CarDetail{}, err
	}
	return enrichCar(car), nil
}

// enrichCar composes the display view of a car with preloaded driver fields
func enrichCar(car domain.Car) domain.CarDetail {
	return domain.CarDetail{
		Car: car,
		Driver: domain.DriverInfo{
			Name:  car.Driver.Name,
			Phone: car.Driver.Phone,
		},
	}
}

// enrichCars maps a preloaded car slice to its display views
func enrichCars(cars []domain.Car) []domain.CarDetail {
	details := make([]domain.CarDetail, len(cars))
	for i, car := range cars {
		details[i] = enrichCar(car)
	}
	return details
}
