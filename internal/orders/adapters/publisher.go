package adapters

import (
	"context"

	"go-shop/internal/orders/domain"
	"go-shop/pkg/events"
	"go-shop/pkg/logger"
	"go-shop/pkg/rabbitmq"
)

// RabbitMQPublisher implements EventPublisher using RabbitMQ
type RabbitMQPublisher struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewRabbitMQPublisher creates a new RabbitMQ event publisher
func NewRabbitMQPublisher(publisher *rabbitmq.Publisher, log *logger.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		publisher: publisher,
		log:       log,
	}
}

// PublishOrderPlaced publishes an order placed event
func (p *RabbitMQPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	traceID := logger.GetTraceID(ctx)

	lines := make([]events.OrderLinePayload, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = events.OrderLinePayload{
			ItemID:     line.ItemID,
			ItemName:   line.ItemName,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}

	event := events.NewOrderPlacedEvent(
		order.ID,
		order.MemberID,
		order.TotalPrice(),
		string(order.Status),
		lines,
		order.OrderedAt,
		traceID,
	)

	return p.publisher.Publish(ctx, events.RoutingKeyOrderPlaced, event)
}

// PublishOrderCancelled publishes an order cancelled event
func (p *RabbitMQPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewOrderCancelledEvent(
		order.ID,
		order.MemberID,
		string(order.Status),
		traceID,
	)

	return p.publisher.Publish(ctx, events.RoutingKeyOrderCancelled, event)
}
