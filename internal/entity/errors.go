package entity

import "errors"

var (
	// Configuration errors
	ErrNotConfigured = errors.New("storage is not configured: set endpoint, access key and bucket")

	// Slot errors
	ErrDigitOutOfRange = errors.New("digit must be between 0 and 9")
	ErrEmptyStroke     = errors.New("stroke must contain at least one point")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
