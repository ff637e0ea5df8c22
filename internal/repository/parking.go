package repository

import (
	"errors"

	"parking_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ParkingRepository persists parking sessions, enforces the Parking -> Car
// reference and owns the payment state transition
type ParkingRepository struct {
	db *gorm.DB
}

// NewParkingRepository returns a ParkingRepository bound to db
func NewParkingRepository(db *gorm.DB) *ParkingRepository {
	return &ParkingRepository{db: db}
}

// Create inserts a new parking session with is_paid forced to false. The
// car must already exist; a missing car yields ErrCarNotFound and no row
// is written. All fields are required; duration must be positive and the
// fee non-negative.
func (r *ParkingRepository) Create(p *domain.Parking) error {
	if p.CarID == "" || p.Location == "" || p.City == "" || p.ParkingDate == "" ||
		p.DurationMinutes <= 0 || p.Fee < 0 {
		return ErrValidation
	}
	var car domain.Car
	err := r.db.Select("id").First(&car, "id = ?", p.CarID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCarNotFound
	}
	if err != nil {
		return err
	}
	p.IsPaid = false // Sessions always start unpaid
	return r.db.Create(p).Error
}

// List returns all parking sessions enriched with car and driver fields,
// latest first
func (r *ParkingRepository) List() ([]domain.ParkingDetail, error) {
	var parkings []domain.Parking
	err := r.db.Preload("Car.Driver").Order("created_at desc").Find(&parkings).Error
	if err != nil {
		return nil, err
	}
	return enrichParkings(parkings), nil
}

// ListByCar returns the flat parking sessions of one car, latest first
func (r *ParkingRepository) ListByCar(carID string) ([]domain.Parking, error) {
	var parkings []domain.Parking
	err := r.db.Where("car_id = ?", carID).Order("created_at desc").Find(&parkings).Error
	return parkings, err
}

// GetByID returns one enriched parking session or ErrNotFound
func (r *ParkingRepository) GetByID(id string) (domain.ParkingDetail, error) {
	var parking domain.Parking
	err := r.db.Preload("Car.Driver").First(&parking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ParkingDetail{}, ErrNotFound
	}
	if err != nil {
		return domain.ParkingDetail{}, err
	}
	return enrichParking(parking), nil
}

// MarkPaid sets is_paid to true and returns the updated session. The id is
// resolved first so a missing session reports ErrNotFound; the update is
// then issued regardless of the prior state, so re-paying an already-paid
// session succeeds and leaves it paid. RowsAffected is not consulted: a
// no-change update reports zero rows on MySQL, which would misread an
// already-paid session as missing.
func (r *ParkingRepository) MarkPaid(id string) (domain.Parking, error) {
	var parking domain.Parking
	err := r.db.First(&parking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Parking{}, ErrNotFound
	}
	if err != nil {
		return domain.Parking{}, err
	}
	if err := r.db.Model(&parking).Update("is_paid", true).Error; err != nil {
		return domain.Parking{}, err
	}
	parking.IsPaid = true
	return parking, nil
}

// Delete hard-deletes one parking session. Parking has no children, so no
// cascade check is needed; deleting an absent id is not an error.
func (r *ParkingRepository) Delete(id string) error {
	return r.db.Delete(&domain.Parking{}, "id = ?", id).Error
}

// enrichParking composes the display view of a session with preloaded car
// and driver fields
func enrichParking(parking domain.Parking) domain.ParkingDetail {
	return domain.ParkingDetail{
		Parking: parking,
		Car: domain.CarInfo{
			CarName:   parking.Car.CarName,
			CarNumber: parking.Car.CarNumber,
			Driver: domain.DriverInfo{
				Name:  parking.Car.Driver.Name,
				Phone: parking.Car.Driver.Phone,
			},
		},
	}
}

// enrichParkings maps a preloaded session slice to its display views
func enrichParkings(parkings []domain.Parking) []domain.ParkingDetail {
	details := make([]domain.ParkingDetail, len(parkings))
	for i, parking := range parkings {
		details[i] = enrichParking(parking)
	}
	return details
}
