package domain

import (
	"time"
)

// Kind discriminates the item variants
type Kind string

const (
	KindBook  Kind = "book"
	KindAlbum Kind = "album"
	KindMovie Kind = "movie"
)

// BookDetails is the payload for book items
type BookDetails struct {
	Author string
	ISBN   string
}

// AlbumDetails is the payload for album items
type AlbumDetails struct {
	Artist string
	Studio string
}

// MovieDetails is the payload for movie items
type MovieDetails struct {
	Director string
	Actor    string
}

// Item represents a purchasable catalog entry. Exactly one of the
// variant payloads is set, matching Kind.
type Item struct {
	ID            uint
	Kind          Kind
	Name          string
	Price         int64
	StockQuantity int
	Book          *BookDetails
	Album         *AlbumDetails
	Movie         *MovieDetails
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate validates the item entity
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrNameRequired
	}
	if i.Price < 0 {
		return ErrNegativePrice
	}
	if i.StockQuantity < 0 {
		return ErrNegativeStock
	}
	switch i.Kind {
	case KindBook, KindAlbum, KindMovie:
	default:
		return ErrUnknownKind
	}
	return nil
}

// NewItem creates a new item with validation
func NewItem(kind Kind, name string, price int64, stock int) (*Item, error) {
	item := &Item{
		Kind:          kind,
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// AddStock increases the stock quantity. No upper bound is enforced.
func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
	i.UpdatedAt = time.Now()
}

// RemoveStock decreases the stock quantity. Stock never goes negative:
// a removal that would cross zero fails and leaves the quantity unchanged.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return NewNotEnoughStock(i.ID, i.StockQuantity, quantity)
	}
	i.StockQuantity = rest
	i.UpdatedAt = time.Now()
	return nil
}

// Overwrite replaces the mutable fields in full. This is a complete
// overwrite, not a partial patch.
func (i *Item) Overwrite(name string, price int64, stock int) error {
	if name == "" {
		return ErrNameRequired
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	i.Name = name
	i.Price = price
	i.StockQuantity = stock
	i.UpdatedAt = time.Now()
	return nil
}
