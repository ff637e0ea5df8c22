package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"parking_system/internal/domain"     // Importing domain models
	"parking_system/internal/repository" // Entity repositories
	"parking_system/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// insightsCacheKey is the Redis key for the cached analytics aggregate.
// Parking mutations invalidate it.
const insightsCacheKey = "admin:insights"

// InsightsHandler returns the admin analytics aggregate, served from the
// Redis cache when fresh
func InsightsHandler(insights *repository.InsightsRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached domain.Insights  // Aggregate struct to hold cached data
		// Try to get the aggregate from cache
		found, err := utils.GetCache(ctx, rdb, insightsCacheKey, &cached)
		if err == nil && found {
			// Return the cached aggregate
			c.JSON(http.StatusOK, gin.H{
				"totalCollection": cached.TotalCollection, // Sum of paid fees
				"totalCars":       cached.TotalCars,       // Count of all cars
				"activeParkings":  cached.ActiveParkings,  // Count of unpaid sessions
				"totalParkings":   cached.TotalParkings,   // Count of all sessions
				"cached":          true,                   // Indicate response is from cache
			})
			return
		}
		// If not in cache, compute the aggregate from the store
		result, err := insights.Compute()
		if err != nil {
			// A failure on any read aborts the whole aggregate
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Cache the aggregate for future requests
		_ = utils.SetCache(ctx, rdb, insightsCacheKey, result, 60*time.Second)
		// Return the computed aggregate
		c.JSON(http.StatusOK, gin.H{
			"totalCollection": result.TotalCollection, // Sum of paid fees
			"totalCars":       result.TotalCars,       // Count of all cars
			"activeParkings":  result.ActiveParkings,  // Count of unpaid sessions
			"totalParkings":   result.TotalParkings,   // Count of all sessions
			"cached":          false,                  // Indicate response is not from cache
		})
	}
}
