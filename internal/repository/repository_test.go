package repository

import (
	"testing"

	"parking_system/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database migrated with the
// full schema. The named shared-cache DSN keeps every pooled connection
// on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Driver{}, &domain.Car{}, &domain.Parking{}))
	return db
}

// seedDriver inserts a driver and returns it
func seedDriver(t *testing.T, db *gorm.DB, name, phone string) domain.Driver {
	t.Helper()
	driver := domain.Driver{Name: name, Phone: phone}
	require.NoError(t, NewDriverRepository(db).Create(&driver))
	return driver
}

// seedCar inserts a car for a driver and returns it
func seedCar(t *testing.T, db *gorm.DB, driverID, name, number string) domain.Car {
	t.Helper()
	car := domain.Car{DriverID: driverID, CarName: name, CarNumber: number}
	require.NoError(t, NewCarRepository(db).Create(&car))
	return car
}

// seedParking inserts a parking session for a car and returns it
func seedParking(t *testing.T, db *gorm.DB, carID string, fee float64) domain.Parking {
	t.Helper()
	parking := domain.Parking{
		CarID:           carID,
		Location:        "Lot A",
		City:            "Metropolis",
		ParkingDate:     "2024-01-01",
		DurationMinutes: 60,
		Fee:             fee,
	}
	require.NoError(t, NewParkingRepository(db).Create(&parking))
	return parking
}
