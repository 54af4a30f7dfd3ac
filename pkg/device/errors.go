package device

import "errors"

var (
	// ErrNotFound indicates a device was not found
	ErrNotFound = errors.New("device not found")

	// ErrInvalidCategory indicates an unknown device category
	ErrInvalidCategory = errors.New("invalid device category")
)
