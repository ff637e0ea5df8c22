package api

import (
	"net/http" // HTTP status codes

	"parking_system/internal/domain"     // Importing domain models
	"parking_system/internal/middleware" // Auth and role middleware
	"parking_system/internal/repository" // Entity repositories

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// SetupRouter wires the full route table onto a gin engine. Mutation
// routes require the MANAGER role, admin insights requires ADMIN, reads
// are open to any authenticated role.
func SetupRouter(r *gin.Engine, db *gorm.DB, rdb *redis.Client, jwtSecret string) {
	// Repositories over the shared store
	users := repository.NewUserRepository(db)       // Signup credentials
	drivers := repository.NewDriverRepository(db)   // Drivers
	cars := repository.NewCarRepository(db)         // Cars
	parkings := repository.NewParkingRepository(db) // Parking sessions
	insights := repository.NewInsightsRepository(db) // Analytics aggregate

	// Middleware
	authRequired := middleware.JWTAuthMiddleware(jwtSecret)          // Authentication gate
	managerOnly := middleware.RequireRoles(domain.RoleManager)       // Operational mutations
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)           // Analytics reads

	// Liveness probes (public)
	r.GET("/", HealthHandler())       // Root probe
	r.GET("/health", HealthHandler()) // Health probe

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/signup", SignupHandler(users, jwtSecret)) // Signup endpoint
	auth.POST("/login", LoginHandler(users, jwtSecret))   // Login endpoint
	auth.POST("/logout", LogoutHandler())                 // Logout endpoint
	auth.GET("/me", authRequired, MeHandler())            // Current user endpoint

	// Driver routes (protected by JWT)
	driverGroup := r.Group("/drivers")
	driverGroup.Use(authRequired)
	driverGroup.GET("", ListDriversHandler(drivers))              // List drivers endpoint
	driverGroup.POST("", managerOnly, AddDriverHandler(drivers))  // Add driver endpoint
	driverGroup.GET("/:id", GetDriverHandler(drivers))            // Get driver endpoint

	// Car routes (protected by JWT)
	carGroup := r.Group("/cars")
	carGroup.Use(authRequired)
	carGroup.GET("", ListCarsByDriverHandler(cars))        // Cars by driver endpoint
	carGroup.GET("/all", ListCarsHandler(cars))            // All cars endpoint
	carGroup.POST("", managerOnly, AddCarHandler(cars))    // Add car endpoint
	carGroup.GET("/:id", GetCarHandler(cars))              // Get car endpoint

	// Parking routes (protected by JWT)
	parkingGroup := r.Group("/parkings")
	parkingGroup.Use(authRequired)
	parkingGroup.GET("", ListParkingsHandler(parkings))                           // List sessions endpoint
	parkingGroup.POST("", managerOnly, CreateParkingHandler(parkings, rdb))       // Create session endpoint
	parkingGroup.GET("/car/:car_id", ListParkingsByCarHandler(parkings))          // Sessions by car endpoint
	parkingGroup.GET("/:id", GetParkingHandler(parkings))                         // Get session endpoint
	parkingGroup.PATCH("/:id/pay", managerOnly, PayParkingHandler(parkings, rdb)) // Pay session endpoint
	parkingGroup.DELETE("/:id", managerOnly, DeleteParkingHandler(parkings, rdb)) // Delete session endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(authRequired, adminOnly)
	adminGroup.GET("/insights", InsightsHandler(insights, rdb)) // Insights endpoint

	// Unknown routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"}) // 404 fallback
	})
}

// HealthHandler reports server liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"}) // Liveness response
	}
}
