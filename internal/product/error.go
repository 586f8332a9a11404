package product

import "errors"

var (
	ErrNotFound = errors.New("product not found")

	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidStock = errors.New("stock must not be negative")
	ErrNameRequired = errors.New("product name is required")
)
