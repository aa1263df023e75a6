package domain

import "go-shop/pkg/errors"

// Domain-specific errors
var (
	ErrInvalidCount     = errors.NewValidation("count must be greater than 0", nil)
	ErrNoLines          = errors.NewValidation("an order needs at least one line", nil)
	ErrAlreadyCancelled = errors.NewIllegalState("order is already cancelled")
	ErrAlreadyDelivered = errors.NewIllegalState("a completed delivery cannot be cancelled")
)

// NewOrderNotFound creates a not found error with the order ID
func NewOrderNotFound(id uint) error {
	return errors.NewNotFound("order", id)
}
