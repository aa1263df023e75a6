package events

import "time"

// Exchange names
const (
	ExchangeShop = "shop.events"
)

// Routing keys
const (
	RoutingKeyMemberRegistered = "member.registered"
	RoutingKeyOrderPlaced      = "order.placed"
	RoutingKeyOrderCancelled   = "order.cancelled"
)

// MemberRegisteredEvent is published when a member registers
type MemberRegisteredEvent struct {
	Version   string                  `json:"version"`
	EventType string                  `json:"event_type"`
	Timestamp time.Time               `json:"timestamp"`
	TraceID   string                  `json:"trace_id"`
	Payload   MemberRegisteredPayload `json:"payload"`
}

// MemberRegisteredPayload contains member data
type MemberRegisteredPayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMemberRegisteredEvent creates a new MemberRegisteredEvent
func NewMemberRegisteredEvent(id uint, name string, createdAt time.Time, traceID string) *MemberRegisteredEvent {
	return &MemberRegisteredEvent{
		Version:   "1.0",
		EventType: RoutingKeyMemberRegistered,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: MemberRegisteredPayload{
			ID:        id,
			Name:      name,
			CreatedAt: createdAt,
		},
	}
}

// OrderLinePayload is one order line inside an order event
type OrderLinePayload struct {
	ItemID     uint   `json:"item_id"`
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// OrderPlacedEvent is published when an order is placed
type OrderPlacedEvent struct {
	Version   string             `json:"version"`
	EventType string             `json:"event_type"`
	Timestamp time.Time          `json:"timestamp"`
	TraceID   string             `json:"trace_id"`
	Payload   OrderPlacedPayload `json:"payload"`
}

// OrderPlacedPayload contains order data
type OrderPlacedPayload struct {
	ID         uint               `json:"id"`
	MemberID   uint               `json:"member_id"`
	TotalPrice int64              `json:"total_price"`
	Status     string             `json:"status"`
	Lines      []OrderLinePayload `json:"lines"`
	OrderedAt  time.Time          `json:"ordered_at"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(id, memberID uint, totalPrice int64, status string, lines []OrderLinePayload, orderedAt time.Time, traceID string) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		Version:   "1.0",
		EventType: RoutingKeyOrderPlaced,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: OrderPlacedPayload{
			ID:         id,
			MemberID:   memberID,
			TotalPrice: totalPrice,
			Status:     status,
			Lines:      lines,
			OrderedAt:  orderedAt,
		},
	}
}

// OrderCancelledEvent is published when an order is cancelled
type OrderCancelledEvent struct {
	Version   string                `json:"version"`
	EventType string                `json:"event_type"`
	Timestamp time.Time             `json:"timestamp"`
	TraceID   string                `json:"trace_id"`
	Payload   OrderCancelledPayload `json:"payload"`
}

// OrderCancelledPayload contains the cancelled order data
type OrderCancelledPayload struct {
	ID       uint      `json:"id"`
	MemberID uint      `json:"member_id"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

// NewOrderCancelledEvent creates a new OrderCancelledEvent
func NewOrderCancelledEvent(id, memberID uint, status string, traceID string) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		Version:   "1.0",
		EventType: RoutingKeyOrderCancelled,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: OrderCancelledPayload{
			ID:       id,
			MemberID: memberID,
			Status:   status,
			At:       time.Now(),
		},
	}
}
