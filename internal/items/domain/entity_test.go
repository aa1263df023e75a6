package domain

import (
	"testing"

	"go-shop/pkg/errors"
)

func TestRemoveStock_NeverGoesNegative(t *testing.T) {
	// Arrange
	item, err := NewItem(KindBook, "The Go Programming Language", 15000, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Act
	if err := item.RemoveStock(4); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := item.RemoveStock(6); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err = item.RemoveStock(1)

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeOutOfStock) {
		t.Errorf("expected out of stock error, got %v", err)
	}
	if item.StockQuantity != 0 {
		t.Errorf("expected stock 0 after failed removal, got %d", item.StockQuantity)
	}
}

func TestRemoveStock_FailureLeavesStockUnchanged(t *testing.T) {
	// Arrange
	item, _ := NewItem(KindBook, "The Go Programming Language", 15000, 10)

	// Act
	err := item.RemoveStock(11)

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if item.StockQuantity != 10 {
		t.Errorf("expected stock unchanged at 10, got %d", item.StockQuantity)
	}
}

func TestAddStock_NoUpperBound(t *testing.T) {
	// Arrange
	item, _ := NewItem(KindAlbum, "Abbey Road", 22000, 1)

	// Act
	item.AddStock(1000000)

	// Assert
	if item.StockQuantity != 1000001 {
		t.Errorf("expected stock 1000001, got %d", item.StockQuantity)
	}
}

func TestNewItem_Validation(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		item  string
		price int64
		stock int
	}{
		{"empty name", KindBook, "", 1000, 1},
		{"negative price", KindBook, "book", -1, 1},
		{"negative stock", KindBook, "book", 1000, -1},
		{"unknown kind", Kind("vinyl"), "record", 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.kind, tt.item, tt.price, tt.stock)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errors.CodeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOverwrite_ReplacesAllMutableFields(t *testing.T) {
	// Arrange
	item, _ := NewItem(KindMovie, "Oldboy", 12000, 5)

	// Act
	err := item.Overwrite("Oldboy (Remastered)", 14000, 8)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Name != "Oldboy (Remastered)" {
		t.Errorf("unexpected name %s", item.Name)
	}
	if item.Price != 14000 {
		t.Errorf("unexpected price %d", item.Price)
	}
	if item.StockQuantity != 8 {
		t.Errorf("unexpected stock %d", item.StockQuantity)
	}
}
