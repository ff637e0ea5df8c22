package repository

import (
	"parking_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// InsightsRepository computes the read-only admin analytics aggregate
type InsightsRepository struct {
	db *gorm.DB
}

// NewInsightsRepository returns an InsightsRepository bound to db
func NewInsightsRepository(db *gorm.DB) *InsightsRepository {
	return &InsightsRepository{db: db}
}

// Compute runs the four aggregate reads. Each read is an independent
// point-in-time query; any failure aborts the whole aggregate rather than
// returning partial data.
func (r *InsightsRepository) Compute() (domain.Insights, error) {
	var insights domain.Insights
	// Sum of fees over paid sessions, zero when there are none
	err := r.db.Model(&domain.Parking{}).
		Where("is_paid = ?", true).
		Select("COALESCE(SUM(fee), 0)").
		Scan(&insights.TotalCollection).Error
	if err != nil {
		return domain.Insights{}, err
	}
	if err := r.db.Model(&domain.Car{}).Count(&insights.TotalCars).Error; err != nil {
		return domain.Insights{}, err
	}
	if err := r.db.Model(&domain.Parking{}).
		Where("is_paid = ?", false).
		Count(&insights.ActiveParkings).Error; err != nil {
		return domain.Insights{}, err
	}
	if err := r.db.Model(&domain.Parking{}).Count(&insights.TotalParkings).Error; err != nil {
		return domain.Insights{}, err
	}
	return insights, nil
}
