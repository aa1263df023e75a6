package application

import (
	"context"
	"reflect"
	"testing"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
)

// seedOrders places three orders across two members and cancels the
// last one, returning the fixture ready for listing assertions
func seedOrders(t *testing.T) *fixture {
	t.Helper()
	f := newFixture()

	jay := f.seedMember(t, "jay")
	kay := f.seedMember(t, "kay")
	book := f.seedBook(t, "The Go Programming Language", 15000, 100)
	second := f.seedBook(t, "Learning Go", 22000, 100)

	ctx := context.Background()
	if _, err := f.useCase.PlaceOrder(ctx, PlaceOrderInput{MemberID: jay.ID, ItemID: book.ID, Count: 2}); err != nil {
		t.Fatalf("failed to place order: %v", err)
	}
	if _, err := f.useCase.PlaceOrder(ctx, PlaceOrderInput{MemberID: kay.ID, ItemID: second.ID, Count: 1}); err != nil {
		t.Fatalf("failed to place order: %v", err)
	}
	placed, err := f.useCase.PlaceOrder(ctx, PlaceOrderInput{MemberID: jay.ID, ItemID: book.ID, Count: 4})
	if err != nil {
		t.Fatalf("failed to place order: %v", err)
	}
	if _, err := f.useCase.CancelOrder(ctx, CancelOrderInput{ID: placed.Order.ID}); err != nil {
		t.Fatalf("failed to cancel order: %v", err)
	}

	return f
}

func TestListOrders_StrategiesServeTheSameContent(t *testing.T) {
	// Arrange
	f := seedOrders(t)
	input := ListOrdersInput{}

	// Act
	full, err := f.useCase.ListOrdersFullGraph(context.Background(), input)
	if err != nil {
		t.Fatalf("full graph listing failed: %v", err)
	}
	paged, err := f.useCase.ListOrdersPaged(context.Background(), input)
	if err != nil {
		t.Fatalf("paged listing failed: %v", err)
	}
	flat, err := f.useCase.ListOrdersFlat(context.Background(), input)
	if err != nil {
		t.Fatalf("flat listing failed: %v", err)
	}

	// Assert: identical records from all three strategies
	if len(full.Orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(full.Orders))
	}
	if !reflect.DeepEqual(full.Orders, paged.Orders) {
		t.Errorf("paged listing diverged from full graph:\n%v\nvs\n%v", paged.Orders, full.Orders)
	}
	if !reflect.DeepEqual(full.Orders, flat.Orders) {
		t.Errorf("flat listing diverged from full graph:\n%v\nvs\n%v", flat.Orders, full.Orders)
	}
}

func TestListOrders_NewestFirst(t *testing.T) {
	// Arrange
	f := seedOrders(t)

	// Act
	output, err := f.useCase.ListOrdersFullGraph(context.Background(), ListOrdersInput{})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 1; i < len(output.Orders); i++ {
		prev, cur := output.Orders[i-1], output.Orders[i]
		if cur.OrderedAt.After(prev.OrderedAt) {
			t.Errorf("expected newest first, got %v before %v", prev.OrderedAt, cur.OrderedAt)
		}
	}
}

func TestListOrders_FilterByMemberName(t *testing.T) {
	// Arrange
	f := seedOrders(t)
	input := ListOrdersInput{Criteria: ports.SearchCriteria{MemberName: "jay"}}

	// Act
	output, err := f.useCase.ListOrdersFullGraph(context.Background(), input)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Orders) != 2 {
		t.Fatalf("expected 2 orders for jay, got %d", len(output.Orders))
	}
	for _, order := range output.Orders {
		if order.MemberName != "jay" {
			t.Errorf("expected member jay, got %s", order.MemberName)
		}
	}
}

func TestListOrders_FilterByStatus(t *testing.T) {
	// Arrange
	f := seedOrders(t)
	input := ListOrdersInput{Criteria: ports.SearchCriteria{Status: domain.OrderStatusCancelled}}

	// Act
	output, err := f.useCase.ListOrdersFlat(context.Background(), input)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Orders) != 1 {
		t.Fatalf("expected 1 cancelled order, got %d", len(output.Orders))
	}
	if output.Orders[0].Status != string(domain.OrderStatusCancelled) {
		t.Errorf("expected cancelled status, got %s", output.Orders[0].Status)
	}
}

func TestListOrdersPaged_Window(t *testing.T) {
	// Arrange
	f := seedOrders(t)

	// Act
	output, err := f.useCase.ListOrdersPaged(context.Background(), ListOrdersInput{Offset: 1, Limit: 1})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Orders) != 1 {
		t.Fatalf("expected a single windowed order, got %d", len(output.Orders))
	}

	// The window holds the middle record of the newest-first listing
	all, err := f.useCase.ListOrdersPaged(context.Background(), ListOrdersInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Orders[0].OrderID != all.Orders[1].OrderID {
		t.Errorf("expected order %d in the window, got %d", all.Orders[1].OrderID, output.Orders[0].OrderID)
	}
}

func TestListOrders_EmptyResult(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	output, err := f.useCase.ListOrdersFullGraph(context.Background(), ListOrdersInput{})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(output.Orders) != 0 {
		t.Errorf("expected no orders, got %d", len(output.Orders))
	}
}
