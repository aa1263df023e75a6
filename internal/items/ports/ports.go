package ports

import (
	"context"

	"go-shop/internal/items/domain"
)

// ItemRepository defines the interface for item persistence
type ItemRepository interface {
	// Create creates a new catalog entry
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by ID
	GetByID(ctx context.Context, id uint) (*domain.Item, error)

	// Update writes back a modified item
	Update(ctx context.Context, item *domain.Item) error

	// List retrieves all items
	List(ctx context.Context) ([]*domain.Item, error)
}
