package services

import "errors"

// Sentinel errors mapped to HTTP status codes by the controllers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingRole        = errors.New("missing role")
	ErrNoFile             = errors.New("no file provided")
)
