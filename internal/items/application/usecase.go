package application

import (
	"context"

	"go-shop/internal/items/domain"
	"go-shop/internal/items/ports"
	"go-shop/pkg/logger"

	"go.uber.org/zap"
)

// ItemUseCase handles catalog business logic
type ItemUseCase struct {
	repo ports.ItemRepository
	log  *logger.Logger
}

// NewItemUseCase creates a new item use case
func NewItemUseCase(repo ports.ItemRepository, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{
		repo: repo,
		log:  log,
	}
}

// RegisterItemInput represents the input for registering an item
type RegisterItemInput struct {
	Kind  domain.Kind
	Name  string
	Price int64
	Stock int
	Book  *domain.BookDetails
	Album *domain.AlbumDetails
	Movie *domain.MovieDetails
}

// RegisterItemOutput represents the output of registering an item
type RegisterItemOutput struct {
	Item *domain.Item
}

// RegisterItem adds a new entry to the catalog
func (uc *ItemUseCase) RegisterItem(ctx context.Context, input RegisterItemInput) (*RegisterItemOutput, error) {
	item, err := domain.NewItem(input.Kind, input.Name, input.Price, input.Stock)
	if err != nil {
		return nil, err
	}

	switch item.Kind {
	case domain.KindBook:
		item.Book = input.Book
	case domain.KindAlbum:
		item.Album = input.Album
	case domain.KindMovie:
		item.Movie = input.Movie
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Info("item registered",
		zap.Uint("item_id", item.ID),
		zap.String("kind", string(item.Kind)),
		zap.String("name", item.Name),
	)

	return &RegisterItemOutput{Item: item}, nil
}

// UpdateItemInput represents the input for updating an item
type UpdateItemInput struct {
	ID    uint
	Name  string
	Price int64
	Stock int
}

// UpdateItemOutput represents the output of updating an item
type UpdateItemOutput struct {
	Item *domain.Item
}

// UpdateItem overwrites the mutable fields of a catalog entry
func (uc *ItemUseCase) UpdateItem(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := item.Overwrite(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Info("item updated",
		zap.Uint("item_id", item.ID),
		zap.Int64("price", item.Price),
		zap.Int("stock", item.StockQuantity),
	)

	return &UpdateItemOutput{Item: item}, nil
}

// GetItemInput represents the input for getting an item
type GetItemInput struct {
	ID uint
}

// GetItemOutput represents the output of getting an item
type GetItemOutput struct {
	Item *domain.Item
}

// GetItem retrieves an item by ID
func (uc *ItemUseCase) GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
	item, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetItemOutput{Item: item}, nil
}

// ListItemsOutput represents the output of listing items
type ListItemsOutput struct {
	Items []*domain.Item
}

// ListItems retrieves the whole catalog
func (uc *ItemUseCase) ListItems(ctx context.Context) (*ListItemsOutput, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListItemsOutput{Items: items}, nil
}
