package repository

import (
	"errors"
	"strings"

	"parking_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserRepository persists signup credentials
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a UserRepository bound to db
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The email is normalized to lower case and
// checked for uniqueness before the insert; a duplicate yields ErrConflict
// and no row is written.
func (r *UserRepository) Create(u *domain.User) error {
	if u.Name == "" || u.Email == "" || u.PasswordHash == "" {
		return ErrValidation
	}
	u.Email = strings.ToLower(u.Email)
	var existing domain.User
	err := r.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(u).Error
}

// GetByEmail looks up a user by normalized email
func (r *UserRepository) GetByEmail(email string) (domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}
