package prescription

import "errors"

var (
	// ErrNotFound also covers prescriptions owned by another user on the
	// customer-facing read path.
	ErrNotFound = errors.New("prescription not found")

	ErrInvalidStatus = errors.New("invalid prescription status")
	ErrEmptyFile     = errors.New("prescription file is empty")
)
