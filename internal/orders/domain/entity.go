package domain

import (
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// DeliveryStatus represents the status of a delivery
type DeliveryStatus string

const (
	DeliveryStatusReady     DeliveryStatus = "ready"
	DeliveryStatusCompleted DeliveryStatus = "completed"
)

// Address is the delivery address value object
type Address struct {
	Street  string
	City    string
	Zipcode string
}

// Delivery is the shipment record owned by an order
type Delivery struct {
	ID      uint
	Address Address
	Status  DeliveryStatus
}

// OrderLine is one line of an order. OrderPrice is the unit price charged
// at order time, decoupled from the item's current catalog price. Lines
// are immutable once the order is created.
type OrderLine struct {
	ID         uint
	ItemID     uint
	ItemName   string
	OrderPrice int64
	Count      int
}

// Subtotal returns order price times count for this line
func (l OrderLine) Subtotal() int64 {
	return l.OrderPrice * int64(l.Count)
}

// NewOrderLine snapshots an item's unit price into a new line
func NewOrderLine(itemID uint, itemName string, unitPrice int64, count int) (OrderLine, error) {
	if count <= 0 {
		return OrderLine{}, ErrInvalidCount
	}
	return OrderLine{
		ItemID:     itemID,
		ItemName:   itemName,
		OrderPrice: unitPrice,
		Count:      count,
	}, nil
}

// Order is the order aggregate root. It owns its lines and delivery;
// the member is referenced by id only.
type Order struct {
	ID        uint
	MemberID  uint
	Lines     []OrderLine
	Delivery  Delivery
	Status    OrderStatus
	OrderedAt time.Time
}

// NewOrder creates a new order in status ordered, delivering to the
// given address
func NewOrder(memberID uint, address Address, lines ...OrderLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	return &Order{
		MemberID: memberID,
		Lines:    lines,
		Delivery: Delivery{
			Address: address,
			Status:  DeliveryStatusReady,
		},
		Status:    OrderStatusOrdered,
		OrderedAt: time.Now(),
	}, nil
}

// TotalPrice is derived, never stored: the sum over lines of
// order price times count
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, line := range o.Lines {
		total += line.Subtotal()
	}
	return total
}

// Cancel transitions the order to cancelled. The transition happens at
// most once and is not allowed after the delivery completed.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusCancelled {
		return ErrAlreadyCancelled
	}
	if o.Delivery.Status == DeliveryStatusCompleted {
		return ErrAlreadyDelivered
	}
	o.Status = OrderStatusCancelled
	return nil
}
