package adapters

import (
	"context"

	"go-shop/internal/members/domain"
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

// PublishMemberRegistered publishes a member registered event
func (p *RabbitMQPublisher) PublishMemberRegistered(ctx context.Context, member *domain.Member) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewMemberRegisteredEvent(
		member.ID,
		member.Name,
		member.CreatedAt,
		traceID,
	)

	return p.publisher.Publish(ctx, events.RoutingKeyMemberRegistered, event)
}
