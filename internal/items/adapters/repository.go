package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-shop/internal/items/domain"
	"go-shop/pkg/db"
	apperrors "go-shop/pkg/errors"
)

// ItemModel is the GORM model for items. Single table with a kind
// discriminator; variant columns are only populated for the active kind.
type ItemModel struct {
	ID            uint      `gorm:"primaryKey"`
	Kind          string    `gorm:"size:10;not null;index"`
	Name          string    `gorm:"size:255;not null"`
	Price         int64     `gorm:"not null"`
	StockQuantity int       `gorm:"not null;default:0"`
	Author        string    `gorm:"size:100"`
	ISBN          string    `gorm:"size:20"`
	Artist        string    `gorm:"size:100"`
	Studio        string    `gorm:"size:100"`
	Director      string    `gorm:"size:100"`
	Actor         string    `gorm:"size:100"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// PostgresItemRepository implements ItemRepository using PostgreSQL
type PostgresItemRepository struct {
	db *gorm.DB
}

// NewPostgresItemRepository creates a new PostgreSQL item repository
func NewPostgresItemRepository(db *gorm.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

// Migrate runs auto-migration for the item model
func (r *PostgresItemRepository) Migrate() error {
	return r.db.AutoMigrate(&ItemModel{})
}

// Create creates a new catalog entry
func (r *PostgresItemRepository) Create(ctx context.Context, item *domain.Item) error {
	model := toModel(item)

	result := db.FromContext(ctx, r.db).Create(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to create item", result.Error)
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID retrieves an item by ID
func (r *PostgresItemRepository) GetByID(ctx context.Context, id uint) (*domain.Item, error) {
	var model ItemModel

	result := db.FromContext(ctx, r.db).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewItemNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get item", result.Error)
	}

	return toDomain(&model), nil
}

// Update writes back a modified item
func (r *PostgresItemRepository) Update(ctx context.Context, item *domain.Item) error {
	model := toModel(item)

	result := db.FromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to update item", result.Error)
	}

	item.UpdatedAt = model.UpdatedAt
	return nil
}

// List retrieves all items
func (r *PostgresItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	var models []ItemModel

	result := db.FromContext(ctx, r.db).Order("id").Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to list items", result.Error)
	}

	items := make([]*domain.Item, len(models))
	for i, model := range models {
		items[i] = toDomain(&model)
	}

	return items, nil
}

// toModel converts a domain entity to a GORM model
func toModel(item *domain.Item) *ItemModel {
	model := &ItemModel{
		ID:            item.ID,
		Kind:          string(item.Kind),
		Name:          item.Name,
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}

	switch {
	case item.Book != nil:
		model.Author = item.Book.Author
		model.ISBN = item.Book.ISBN
	case item.Album != nil:
		model.Artist = item.Album.Artist
		model.Studio = item.Album.Studio
	case item.Movie != nil:
		model.Director = item.Movie.Director
		model.Actor = item.Movie.Actor
	}

	return model
}

// toDomain converts a GORM model to a domain entity
func toDomain(model *ItemModel) *domain.Item {
	item := &domain.Item{
		ID:            model.ID,
		Kind:          domain.Kind(model.Kind),
		Name:          model.Name,
		Price:         model.Price,
		StockQuantity: model.StockQuantity,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}

	switch item.Kind {
	case domain.KindBook:
		item.Book = &domain.BookDetails{Author: model.Author, ISBN: model.ISBN}
	case domain.KindAlbum:
		item.Album = &domain.AlbumDetails{Artist: model.Artist, Studio: model.Studio}
	case domain.KindMovie:
		item.Movie = &domain.MovieDetails{Director: model.Director, Actor: model.Actor}
	}

	return item
}
