package repository

import (
	"testing"
	"time"

	"parking_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParkingCreateRequiresExistingCar(t *testing.T) {
	db := newTestDB(t)
	repo := NewParkingRepository(db)

	parking := domain.Parking{
		CarID:           "missing",
		Location:        "Lot A",
		City:            "Metropolis",
		ParkingDate:     "2024-01-01",
		DurationMinutes: 60,
		Fee:             20,
	}
	err := repo.Create(&parking)
	assert.ErrorIs(t, err, ErrCarNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Parking{}).Count(&count).Error)
	assert.Zero(t, count, "no row should be written when the car is missing")
}

func TestParkingCreateInitializesUnpaid(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db, "Jane", "555-1")
	car := seedCar(t, db, driver.ID, "Civic", "AB123")
	repo := NewParkingRepository(db)

	parking := domain.Parking{
		CarID:           car.ID,
		Location:        "Lot A",
		City:            "Metropolis",
		ParkingDate:     "2024-01-01",
		DurationMinutes: 60,
		Fee:             20,
		IsPaid:          true, // must be ignored
	}
	require.NoError(t, repo.Create(&parking))
	assert.False(t, parking.IsPaid, "sessions always start unpaid")

	got, err := repo.GetByID(parking.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPaid)
	assert.Equal(t, 60, got.DurationMinutes, "duration is stored as given")
	assert.Equal(t, 20.0, got.Fee, "fee is stored as given")
}

func TestParkingCreateValidation(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db, "Jane", "555-1")
	car := seedCar(t, db, driver.ID, "Civic", "AB123")
	repo := NewParkingRepository(db)

	base := domain.Parking{
		CarID:           car.ID,
		Location:        "Lot A",
		City:            "Metropolis",
		ParkingDate:     "2024-01-01",
		DurationMinutes: 60,
		Fee:             20,
	}

	zeroDuration := base
	zeroDuration.DurationMinutes = 0
	assert.ErrorIs(t, repo.Create(&zeroDuration), ErrValidation)

	negativeFee := base
	negativeFee.Fee = -1
	assert.ErrorIs(t, repo.Create(&negativeFee), ErrValidation)

	noCity := base
	noCity.City = ""
	assert.ErrorIs(t, repo.Create(&noCity), ErrValidation)

	var count int64
	require.NoError(t, db.Model(&domain.Parking{}).Count(&count).Error)
	assert.Zero(t, count, "partial records are never persisted")
}

func TestParkingMarkPaidIdempotent(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db, "Jane", "555-1")
	car := seedCar(t, db, driver.ID, "Civic", "AB123")
	parking := seedParking(t, db, car.ID, 20)
	repo := NewParkingRepository(db)

	first, err := repo.MarkPaid(parking.ID)
	require.NoError(t, err)
	assert.True(t, first.IsPaid)

	// Re-paying an already-paid session still succeeds
	second, err := repo.MarkPaid(parking.ID)
	require.NoError(t, err)
	assert.True(t, second.IsPaid)

	got, err := repo.GetByID(parking.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
}

func TestParkingMarkPaidMissing(t *testing.T) {
	db := newTestDB(t)
	_, err := NewParkingRepository(db).MarkPaid("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParkingDelete(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db, "Jane", "555-1")
	car := seedCar(t, db, driver.ID, "Civic", "AB123")
	parking := seedParking(t, db, car.ID, 20)
	repo := NewParkingRepository(db)

	require.NoError(t, repo.Delete(parking.ID))
	_, err := repo.GetByID(parking.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent id is not an error
	assert.NoError(t, repo.Delete(parking.ID))
}

func TestParkingListEnriched(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db, "Jane", "555-1")
	car := seedCar(t, db, driver.ID, "Civic", "AB123")
	seedParking(t, db, car.ID, 20)

	list, err := NewParkingRepository(db).List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Civic", list[0].Car.CarName, "enriched read embeds the car")
	assert.Equal(t, "AB123", list[0].Car.CarNumber)
	assert.Equal(t, "Jane", list[0].Car.Driver.Name, "enriched read embeds the grandparent driver")
	assert.Equal(t, "555-1", list[0].Car.Driver.Phone)
}

func TestParkingListByCarLatestFirst(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db, "Jane", "555-1")
	car := seedCar(t, db, driver.ID, "Civic", "AB123")
	other := seedCar(t, db, driver.ID, "Model 3", "CD456")
	repo := NewParkingRepository(db)

	older := domain.Parking{
		CarID: car.ID, Location: "Lot A", City: "Metropolis",
		ParkingDate: "2024-01-01", DurationMinutes: 30, Fee: 10,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(&older))
	newer := domain.Parking{
		CarID: car.ID, Location: "Lot B", City: "Metropolis",
		ParkingDate: "2024-01-02", DurationMinutes: 60, Fee: 20,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(&newer))
	seedParking(t, db, other.ID, 5)

	list, err := repo.ListByCar(car.ID)
	require.NoError(t, err)
	require.Len(t, list, 2, "only the car's own sessions are listed")
	assert.Equal(t, "Lot B", list[0].Location, "latest first")
	assert.Equal(t, "Lot A", list[1].Location)
}
