package domain

import (
	"testing"

	"go-shop/pkg/errors"
)

func TestTotalPrice_SumsSnapshotPrices(t *testing.T) {
	// Arrange
	line1, _ := NewOrderLine(1, "The Go Programming Language", 15000, 3)
	line2, _ := NewOrderLine(2, "Abbey Road", 22000, 2)

	order, err := NewOrder(1, Address{City: "Bucheon"}, line1, line2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert: the total derives from the snapshotted prices
	want := int64(15000*3 + 22000*2)
	if got := order.TotalPrice(); got != want {
		t.Errorf("expected total %d, got %d", want, got)
	}
}

func TestNewOrder_StartsOrderedWithReadyDelivery(t *testing.T) {
	// Arrange
	line, _ := NewOrderLine(1, "The Go Programming Language", 15000, 3)

	// Act
	order, err := NewOrder(7, Address{Street: "123 Main St", City: "Bucheon", Zipcode: "422-510"}, line)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Status != OrderStatusOrdered {
		t.Errorf("expected status ordered, got %s", order.Status)
	}
	if order.Delivery.Status != DeliveryStatusReady {
		t.Errorf("expected delivery ready, got %s", order.Delivery.Status)
	}
	if order.Delivery.Address.City != "Bucheon" {
		t.Errorf("expected delivery to the member address, got %s", order.Delivery.Address.City)
	}
	if order.OrderedAt.IsZero() {
		t.Error("expected ordered timestamp to be set")
	}
}

func TestNewOrder_RequiresLines(t *testing.T) {
	_, err := NewOrder(1, Address{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestNewOrderLine_RejectsNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		if _, err := NewOrderLine(1, "book", 1000, count); err == nil {
			t.Errorf("expected error for count %d, got nil", count)
		}
	}
}

func TestCancel_TransitionsExactlyOnce(t *testing.T) {
	// Arrange
	line, _ := NewOrderLine(1, "book", 1000, 1)
	order, _ := NewOrder(1, Address{}, line)

	// Act
	if err := order.Cancel(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert
	if order.Status != OrderStatusCancelled {
		t.Errorf("expected status cancelled, got %s", order.Status)
	}

	// A second cancel attempt fails and the status stays cancelled
	err := order.Cancel()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeIllegalState) {
		t.Errorf("expected illegal state error, got %v", err)
	}
	if order.Status != OrderStatusCancelled {
		t.Errorf("expected status cancelled, got %s", order.Status)
	}
}

func TestCancel_RejectedAfterDeliveryCompleted(t *testing.T) {
	// Arrange
	line, _ := NewOrderLine(1, "book", 1000, 1)
	order, _ := NewOrder(1, Address{}, line)
	order.Delivery.Status = DeliveryStatusCompleted

	// Act
	err := order.Cancel()

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeIllegalState) {
		t.Errorf("expected illegal state error, got %v", err)
	}
	if order.Status != OrderStatusOrdered {
		t.Errorf("expected status unchanged, got %s", order.Status)
	}
}
