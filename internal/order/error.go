package order

import "errors"

var (
	// ErrNotFound also covers orders owned by another user; cross-user
	// fetches are indistinguishable from absence.
	ErrNotFound = errors.New("order not found")

	ErrInvalidStatus = errors.New("invalid order status")
)
