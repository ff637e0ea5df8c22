package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"parking_system/internal/domain"     // Importing domain models
	"parking_system/internal/repository" // Entity repositories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for adding a car
type AddCarRequest struct {
	DriverID  string `json:"driver_id" binding:"required"`  // Owning driver must be provided
	CarName   string `json:"car_name" binding:"required"`   // Car name must be provided
	CarNumber string `json:"car_number" binding:"required"` // Plate number must be provided
}

// AddCarHandler creates a new car for an existing driver
func AddCarHandler(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCarRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Driver ID, car name, and car number are required"})
			return
		}
		// Build the new car
		car := domain.Car{
			DriverID:  req.DriverID,  // Owning driver
			CarName:   req.CarName,   // Car name
			CarNumber: req.CarNumber, // Plate number
		}
		// Attempt to create the car; the driver reference is checked first
		if err := cars.Create(&car); err != nil {
			// Missing parent driver is reported as not found
			if errors.Is(err, repository.ErrDriverNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
				return
			}
			// Repository-level validation failure
			if errors.Is(err, repository.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Driver ID, car name, and car number are required"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"driver_id": req.DriverID, // Owning driver
				"error":     err.Error(),  // Error message
			}).Error("Failed to add car") // Log failure
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"car_id":    car.ID,       // Car ID
			"driver_id": car.DriverID, // Owning driver
		}).Info("Car added") // Log car creation
		// Return the created car
		c.JSON(http.StatusCreated, gin.H{
			"message": "Car added successfully", // Result message
			"car":     car,                      // Created car
		})
	}
}

// ListCarsByDriverHandler returns the cars of one driver, latest first
func ListCarsByDriverHandler(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverID := c.Query("driver_id") // Driver ID from query string
		// Check if the driver ID was provided
		if driverID == "" {
			// If not, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Driver ID is required"})
			return
		}
		list, err := cars.ListByDriver(driverID) // Fetch the driver's cars
		if err != nil {
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cars": list}) // Return the cars
	}
}

// ListCarsHandler returns all cars enriched with driver info, latest first
func ListCarsHandler(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cars.List() // Fetch all cars with driver fields
		if err != nil {
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cars": list}) // Return the enriched cars
	}
}

// GetCarHandler returns one enriched car by ID
func GetCarHandler(cars *repository.CarRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		car, err := cars.GetByID(c.Param("id")) // Fetch the car with driver fields
		if err != nil {
			// Missing car is not found
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
				return
			}
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"car": car}) // Return the car
	}
}
