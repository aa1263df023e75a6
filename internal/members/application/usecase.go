package application

import (
	"context"

	"go-shop/internal/members/domain"
	"go-shop/internal/members/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/logger"

	"go.uber.org/zap"
)

// MemberUseCase handles member business logic
type MemberUseCase struct {
	repo      ports.MemberRepository
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewMemberUseCase creates a new member use case
func NewMemberUseCase(repo ports.MemberRepository, publisher ports.EventPublisher, log *logger.Logger) *MemberUseCase {
	return &MemberUseCase{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// RegisterMemberInput represents the input for registering a member
type RegisterMemberInput struct {
	Name    string
	Address domain.Address
}

// RegisterMemberOutput represents the output of registering a member
type RegisterMemberOutput struct {
	Member *domain.Member
}

// RegisterMember registers a new member. The name check runs first so the
// caller gets a typed duplicate error; the unique index on members.name
// closes the race between concurrent registrations.
func (uc *MemberUseCase) RegisterMember(ctx context.Context, input RegisterMemberInput) (*RegisterMemberOutput, error) {
	member, err := domain.NewMember(input.Name, input.Address)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByName(ctx, member.Name)
	if err != nil {
		return nil, errors.NewInternal("failed to check name existence", err)
	}
	if len(existing) > 0 {
		return nil, domain.NewDuplicateName(member.Name)
	}

	if err := uc.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	// Publish event (async, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishMemberRegistered(ctx, member); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish member registered event",
				zap.Error(err),
				zap.Uint("member_id", member.ID),
			)
		}
	}

	uc.log.WithContext(ctx).Info("member registered",
		zap.Uint("member_id", member.ID),
		zap.String("name", member.Name),
	)

	return &RegisterMemberOutput{Member: member}, nil
}

// UpdateMemberInput represents the input for renaming a member
type UpdateMemberInput struct {
	ID   uint
	Name string
}

// UpdateMemberOutput represents the output of renaming a member
type UpdateMemberOutput struct {
	Member *domain.Member
}

// UpdateMember renames a member. There is no dirty checking: the mutated
// entity is written back explicitly.
func (uc *MemberUseCase) UpdateMember(ctx context.Context, input UpdateMemberInput) (*UpdateMemberOutput, error) {
	member, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := member.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Info("member renamed",
		zap.Uint("member_id", member.ID),
		zap.String("name", member.Name),
	)

	return &UpdateMemberOutput{Member: member}, nil
}

// GetMemberInput represents the input for getting a member
type GetMemberInput struct {
	ID uint
}

// GetMemberOutput represents the output of getting a member
type GetMemberOutput struct {
	Member *domain.Member
}

// GetMember retrieves a member by ID
func (uc *MemberUseCase) GetMember(ctx context.Context, input GetMemberInput) (*GetMemberOutput, error) {
	member, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetMemberOutput{Member: member}, nil
}

// ListMembersOutput represents the output of listing members
type ListMembersOutput struct {
	Members []*domain.Member
}

// ListMembers retrieves all members
func (uc *MemberUseCase) ListMembers(ctx context.Context) (*ListMembersOutput, error) {
	members, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{Members: members}, nil
}
