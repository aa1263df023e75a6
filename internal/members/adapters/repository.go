package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go-shop/internal/members/domain"
	"go-shop/pkg/db"
	apperrors "go-shop/pkg/errors"
)

// MemberModel is the GORM model for members (persistence layer)
type MemberModel struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null;uniqueIndex"`
	AddressStreet string    `gorm:"size:255"`
	AddressCity   string    `gorm:"size:100"`
	AddressZip    string    `gorm:"size:20"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}

// PostgresMemberRepository implements MemberRepository using PostgreSQL
type PostgresMemberRepository struct {
	db *gorm.DB
}

// NewPostgresMemberRepository creates a new PostgreSQL member repository
func NewPostgresMemberRepository(db *gorm.DB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

// Migrate runs auto-migration for the member model
func (r *PostgresMemberRepository) Migrate() error {
	return r.db.AutoMigrate(&MemberModel{})
}

// Create creates a new member
func (r *PostgresMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	model := toModel(member)

	result := db.FromContext(ctx, r.db).Create(model)
	if result.Error != nil {
		// The unique index backs up the service-level name check
		if strings.Contains(result.Error.Error(), "duplicate key") {
			return domain.NewDuplicateName(member.Name)
		}
		return apperrors.NewInternal("failed to create member", result.Error)
	}

	// Update domain entity with generated ID
	member.ID = model.ID
	member.CreatedAt = model.CreatedAt
	member.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID retrieves a member by ID
func (r *PostgresMemberRepository) GetByID(ctx context.Context, id uint) (*domain.Member, error) {
	var model MemberModel

	result := db.FromContext(ctx, r.db).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewMemberNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get member", result.Error)
	}

	return toDomain(&model), nil
}

// FindByName retrieves all members with the exact name
func (r *PostgresMemberRepository) FindByName(ctx context.Context, name string) ([]*domain.Member, error) {
	var models []MemberModel

	result := db.FromContext(ctx, r.db).Where("name = ?", name).Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to find members by name", result.Error)
	}

	members := make([]*domain.Member, len(models))
	for i, model := range models {
		members[i] = toDomain(&model)
	}

	return members, nil
}

// Update writes back a modified member
func (r *PostgresMemberRepository) Update(ctx context.Context, member *domain.Member) error {
	model := toModel(member)

	result := db.FromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to update member", result.Error)
	}

	member.UpdatedAt = model.UpdatedAt
	return nil
}

// List retrieves all members
func (r *PostgresMemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	var models []MemberModel

	result := db.FromContext(ctx, r.db).Order("id").Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to list members", result.Error)
	}

	members := make([]*domain.Member, len(models))
	for i, model := range models {
		members[i] = toDomain(&model)
	}

	return members, nil
}

// toModel converts a domain entity to a GORM model
func toModel(member *domain.Member) *MemberModel {
	return &MemberModel{
		ID:            member.ID,
		Name:          member.Name,
		AddressStreet: member.Address.Street,
		AddressCity:   member.Address.City,
		AddressZip:    member.Address.Zipcode,
		CreatedAt:     member.CreatedAt,
		UpdatedAt:     member.UpdatedAt,
	}
}

// toDomain converts a GORM model to a domain entity
func toDomain(model *MemberModel) *domain.Member {
	return &domain.Member{
		ID:   model.ID,
		Name: model.Name,
		Address: domain.Address{
			Street:  model.AddressStreet,
			City:    model.AddressCity,
			Zipcode: model.AddressZip,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
