package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"parking_system/internal/domain"     // Importing domain models
	"parking_system/internal/repository" // Entity repositories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for adding a driver
type AddDriverRequest struct {
	Name  string `json:"name" binding:"required"`  // Driver name must be provided
	Phone string `json:"phone" binding:"required"` // Phone must be provided
}

// AddDriverHandler creates a new driver
func AddDriverHandler(drivers *repository.DriverRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddDriverRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone are required"})
			return
		}
		driver := domain.Driver{Name: req.Name, Phone: req.Phone} // Build the new driver
		// Attempt to create the driver in the database
		if err := drivers.Create(&driver); err != nil {
			// Repository-level validation failure
			if errors.Is(err, repository.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone are required"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"name":  req.Name,    // Driver name
				"error": err.Error(), // Error message
			}).Error("Failed to add driver") // Log failure
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"driver_id": driver.ID,   // Driver ID
			"name":      driver.Name, // Driver name
		}).Info("Driver added") // Log driver creation
		// Return the created driver
		c.JSON(http.StatusCreated, gin.H{
			"message": "Driver added successfully", // Result message
			"driver":  driver,                      // Created driver
		})
	}
}

// ListDriversHandler returns all drivers, latest first
func ListDriversHandler(drivers *repository.DriverRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := drivers.List() // Fetch all drivers
		if err != nil {
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"drivers": list}) // Return the drivers
	}
}

// GetDriverHandler returns one driver by ID
func GetDriverHandler(drivers *repository.DriverRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		driver, err := drivers.GetByID(c.Param("id")) // Fetch the driver
		if err != nil {
			// Missing driver is not found
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
				return
			}
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"driver": driver}) // Return the driver
	}
}
