package domain

import "go-shop/pkg/errors"

// Domain-specific errors
var (
	ErrNameRequired  = errors.NewValidation("name is required", nil)
	ErrNegativePrice = errors.NewValidation("price must not be negative", nil)
	ErrNegativeStock = errors.NewValidation("stock quantity must not be negative", nil)
	ErrUnknownKind   = errors.NewValidation("kind must be one of book, album, movie", nil)
)

// NewItemNotFound creates a not found error with the item ID
func NewItemNotFound(id uint) error {
	return errors.NewNotFound("item", id)
}

// NewNotEnoughStock creates an out of stock error
func NewNotEnoughStock(itemID uint, have, want int) error {
	return errors.NewOutOfStock("not enough stock", map[string]interface{}{
		"item_id":   itemID,
		"available": have,
		"requested": want,
	})
}
