package ports

import (
	"context"
	"time"

	"go-shop/internal/orders/domain"
)

// SearchCriteria filters order lookups. Zero values match everything.
type SearchCriteria struct {
	// MemberName filters by member name substring
	MemberName string
	// Status filters by order status
	Status domain.OrderStatus
}

// OrderRepository defines the interface for order aggregate persistence
type OrderRepository interface {
	// Create persists the order with its lines and delivery as one unit
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves the full aggregate by ID
	GetByID(ctx context.Context, id uint) (*domain.Order, error)

	// UpdateStatus writes back a status transition. Lines and delivery
	// are immutable after creation.
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error

	// Search retrieves aggregates matching the criteria, newest first
	Search(ctx context.Context, criteria SearchCriteria) ([]*domain.Order, error)
}

// LineProjection is one order line in the transfer shape
type LineProjection struct {
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// OrderProjection is the flat transfer record every read strategy
// produces. All strategies are observably equivalent for the same
// order set; they differ only in the queries issued underneath.
type OrderProjection struct {
	OrderID    uint             `json:"order_id"`
	MemberName string           `json:"member_name"`
	OrderedAt  time.Time        `json:"ordered_at"`
	Status     string           `json:"status"`
	Address    domain.Address   `json:"address"`
	Lines      []LineProjection `json:"lines"`
}

// OrderReader exposes the optimized read strategies. Implementations
// must be read-only and side-effect-free.
type OrderReader interface {
	// ListPaged fetches the order roots with their to-one relations
	// (member, delivery) in one joined query, then resolves all lines
	// with exactly one follow-up query. offset/limit of 0 or less mean
	// unrestricted.
	ListPaged(ctx context.Context, criteria SearchCriteria, offset, limit int) ([]OrderProjection, error)

	// ListFlat builds the projections straight from source columns
	// without materializing entities.
	ListFlat(ctx context.Context, criteria SearchCriteria) ([]OrderProjection, error)
}

// TxRunner runs a unit of work inside one atomic transaction scope
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error

	// PublishOrderCancelled publishes an order cancelled event
	PublishOrderCancelled(ctx context.Context, order *domain.Order) error
}
