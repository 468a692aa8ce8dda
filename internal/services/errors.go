package services

import "errors"

// Define common service errors
var (
	ErrNotFound    = errors.New("resource not found")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failure")
)
