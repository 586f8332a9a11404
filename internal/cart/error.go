package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
)
