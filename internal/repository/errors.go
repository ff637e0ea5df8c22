package repository

import "errors"

// Sentinel errors returned by the repositories. Handlers map these onto
// HTTP statuses; anything else is a store failure and surfaces as 500.
var (
	ErrValidation     = errors.New("missing required fields")
	ErrNotFound       = errors.New("record not found")
	ErrConflict       = errors.New("record already exists")
	ErrDriverNotFound = errors.New("driver not found")
	ErrCarNotFound    = errors.New("car not found")
)
