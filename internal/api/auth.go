package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"parking_system/internal/domain"     // Importing domain models
	"parking_system/internal/middleware" // Claims extraction
	"parking_system/internal/repository" // Entity repositories
	"parking_system/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Request struct for signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Role     string `json:"role" binding:"required"`     // Role must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserResponse is the user identity returned by auth endpoints
type UserResponse struct {
	ID    string      `json:"id"`    // User ID
	Name  string      `json:"name"`  // Display name
	Email string      `json:"email"` // Email
	Role  domain.Role `json:"role"`  // Role
}

// SignupHandler registers a new user under the fixed per-role password policy
func SignupHandler(users *repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, email, role, password"})
			return
		}
		role := domain.Role(strings.ToUpper(req.Role)) // Normalize role to upper case
		// Validate role against the closed set
		if !role.Valid() {
			// If role is unknown, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be ADMIN or MANAGER"})
			return
		}
		// Validate the password against the role's fixed policy value
		if required, ok := domain.RolePassword(role); !ok || req.Password != required {
			// If the password does not match the role, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password for " + string(role) + " role"})
			return
		}
		// Hash the password before persisting; raw passwords are never stored
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Create user with lower-cased email to ensure case-insensitive uniqueness
		user := domain.User{
			Name:         req.Name,                      // Display name
			Email:        strings.ToLower(req.Email),    // Normalized email
			PasswordHash: string(hash),                  // Hashed password
			Role:         role,                          // Validated role
		}
		// Attempt to create the user in the database
		if err := users.Create(&user); err != nil {
			// Duplicate email is a conflict
			if errors.Is(err, repository.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "User already exists with this email"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": user.Email,  // Normalized email
				"error": err.Error(), // Error message
			}).Error("Signup failed") // Log signup failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Issue a token for the new user
		token, err := utils.GenerateJWT(user, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token and the created user
		c.JSON(http.StatusCreated, gin.H{
			"success": true,                          // Signup succeeded
			"message": "User registered successfully", // Result message
			"token":   token,                         // JWT token
			"user": UserResponse{
				ID:    user.ID,    // User ID
				Name:  user.Name,  // Display name
				Email: user.Email, // Email
				Role:  user.Role,  // Role
			},
		})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(users *repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		// Fetch user by normalized email
		user, err := users.GetByEmail(req.Email)
		if err != nil {
			// Missing user and bad password are indistinguishable to the caller
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, gin.H{
			"success": true,               // Login succeeded
			"message": "Login successful", // Result message
			"token":   token,              // JWT token
			"user": UserResponse{
				ID:    user.ID,    // User ID
				Name:  user.Name,  // Display name
				Email: user.Email, // Email
				Role:  user.Role,  // Role
			},
		})
	}
}

// LogoutHandler confirms logout. Tokens are stateless and discarded
// client-side; no server state changes.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,                      // Logout always succeeds
			"message": "Logged out successfully", // Result message
		})
	}
}

// MeHandler returns the verified claims of the current user
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFromContext(c) // Get verified claims from context
		// Check if claims exist in context
		if !ok {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		// Return the decoded identity payload
		c.JSON(http.StatusOK, gin.H{
			"success": true,   // Lookup succeeded
			"user":    claims, // Decoded identity payload
		})
	}
}
