package ports

import (
	"context"

	"go-shop/internal/members/domain"
)

// MemberRepository defines the interface for member persistence
type MemberRepository interface {
	// Create creates a new member
	Create(ctx context.Context, member *domain.Member) error

	// GetByID retrieves a member by ID
	GetByID(ctx context.Context, id uint) (*domain.Member, error)

	// FindByName retrieves all members with the exact name
	FindByName(ctx context.Context, name string) ([]*domain.Member, error)

	// Update writes back a modified member
	Update(ctx context.Context, member *domain.Member) error

	// List retrieves all members
	List(ctx context.Context) ([]*domain.Member, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// PublishMemberRegistered publishes a member registered event
	PublishMemberRegistered(ctx context.Context, member *domain.Member) error
}
