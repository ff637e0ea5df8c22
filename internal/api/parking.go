package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"parking_system/internal/domain"     // Importing domain models
	"parking_system/internal/repository" // Entity repositories
	"parking_system/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Request struct for creating a parking session. Duration and fee are
// pointers so that binding distinguishes absent from zero: a zero fee is
// valid, an absent one is not.
type CreateParkingRequest struct {
	CarID           string   `json:"car_id" binding:"required"`               // Parked car must be provided
	Location        string   `json:"location" binding:"required"`             // Location must be provided
	City            string   `json:"city" binding:"required"`                 // City must be provided
	ParkingDate     string   `json:"parking_date" binding:"required"`         // Session date must be provided
	DurationMinutes *int     `json:"duration_minutes" binding:"required,gt=0"` // Duration must be a positive integer
	Fee             *float64 `json:"fee" binding:"required,gte=0"`            // Fee must be non-negative
}

// CreateParkingHandler creates a new parking session for an existing car
func CreateParkingHandler(parkings *repository.ParkingRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateParkingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required: car_id, location, city, parking_date, duration_minutes, fee"})
			return
		}
		// Build the new session; is_paid always starts false
		parking := domain.Parking{
			CarID:           req.CarID,            // Parked car
			Location:        req.Location,         // Location
			City:            req.City,             // City
			ParkingDate:     req.ParkingDate,      // Session date
			DurationMinutes: *req.DurationMinutes, // Session length
			Fee:             *req.Fee,             // Session fee
		}
		// Attempt to create the session; the car reference is checked first
		if err := parkings.Create(&parking); err != nil {
			// Missing parent car is reported as not found
			if errors.Is(err, repository.ErrCarNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
				return
			}
			// Repository-level validation failure
			if errors.Is(err, repository.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required: car_id, location, city, parking_date, duration_minutes, fee"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"car_id": req.CarID,   // Parked car
				"error":  err.Error(), // Error message
			}).Error("Failed to create parking") // Log failure
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"parking_id": parking.ID,    // Session ID
			"car_id":     parking.CarID, // Parked car
			"fee":        parking.Fee,   // Session fee
		}).Info("Parking created") // Log session creation
		// Invalidate the cached insights aggregate
		_ = utils.DeleteCache(context.Background(), rdb, insightsCacheKey)
		// Return the created session
		c.JSON(http.StatusCreated, gin.H{
			"message": "Parking entry created successfully", // Result message
			"parking": parking,                              // Created session
		})
	}
}

// ListParkingsHandler returns all sessions enriched with car and driver
// fields, latest first
func ListParkingsHandler(parkings *repository.ParkingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := parkings.List() // Fetch all sessions with car and driver fields
		if err != nil {
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"parkings": list}) // Return the enriched sessions
	}
}

// ListParkingsByCarHandler returns the sessions of one car, latest first
func ListParkingsByCarHandler(parkings *repository.ParkingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := parkings.ListByCar(c.Param("car_id")) // Fetch the car's sessions
		if err != nil {
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"parkings": list}) // Return the sessions
	}
}

// GetParkingHandler returns one enriched session by ID
func GetParkingHandler(parkings *repository.ParkingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		parking, err := parkings.GetByID(c.Param("id")) // Fetch the session
		if err != nil {
			// Missing session is not found
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Parking not found"})
				return
			}
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"parking": parking}) // Return the session
	}
}

// PayParkingHandler marks a session as paid. Re-paying an already-paid
// session succeeds and leaves it paid.
func PayParkingHandler(parkings *repository.ParkingRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		parking, err := parkings.MarkPaid(c.Param("id")) // Flip the payment state
		if err != nil {
			// Missing session is not found
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Parking not found"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"parking_id": c.Param("id"), // Session ID
				"error":      err.Error(),   // Error message
			}).Error("Failed to mark parking as paid") // Log failure
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Log the payment transition
		logrus.WithFields(logrus.Fields{
			"parking_id": parking.ID,  // Session ID
			"fee":        parking.Fee, // Session fee
		}).Info("Parking marked as paid") // Log payment
		// Invalidate the cached insights aggregate
		_ = utils.DeleteCache(context.Background(), rdb, insightsCacheKey)
		// Return the updated session
		c.JSON(http.StatusOK, gin.H{
			"message": "Parking marked as paid", // Result message
			"parking": parking,                  // Updated session
		})
	}
}

// DeleteParkingHandler hard-deletes one session
func DeleteParkingHandler(parkings *repository.ParkingRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Attempt to delete the session
		if err := parkings.Delete(c.Param("id")); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"parking_id": c.Param("id"), // Session ID
				"error":      err.Error(),   // Error message
			}).Error("Failed to delete parking") // Log failure
			// Store failures pass the original message through
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Invalidate the cached insights aggregate
		_ = utils.DeleteCache(context.Background(), rdb, insightsCacheKey)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Parking deleted successfully"})
	}
}
