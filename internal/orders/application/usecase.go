package application

import (
	"context"

	itemports "go-shop/internal/items/ports"
	memberports "go-shop/internal/members/ports"
	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/logger"

	"go.uber.org/zap"
)

// OrderUseCase handles order business logic
type OrderUseCase struct {
	orders    ports.OrderRepository
	reader    ports.OrderReader
	members   memberports.MemberRepository
	items     itemports.ItemRepository
	tx        ports.TxRunner
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewOrderUseCase creates a new order use case
func NewOrderUseCase(
	orders ports.OrderRepository,
	reader ports.OrderReader,
	members memberports.MemberRepository,
	items itemports.ItemRepository,
	tx ports.TxRunner,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		reader:    reader,
		members:   members,
		items:     items,
		tx:        tx,
		publisher: publisher,
		log:       log,
	}
}

// PlaceOrderInput represents the input for placing an order
type PlaceOrderInput struct {
	MemberID uint
	ItemID   uint
	Count    int
}

// PlaceOrderOutput represents the output of placing an order
type PlaceOrderOutput struct {
	Order *domain.Order
}

// PlaceOrder places an order for one item. The stock decrement, the
// order, its lines and the delivery commit or roll back as one unit:
// an insufficient stock failure leaves no partial state behind.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error) {
	var order *domain.Order

	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		member, err := uc.members.GetByID(ctx, input.MemberID)
		if err != nil {
			return err
		}

		item, err := uc.items.GetByID(ctx, input.ItemID)
		if err != nil {
			return err
		}

		line, err := domain.NewOrderLine(item.ID, item.Name, item.Price, input.Count)
		if err != nil {
			return err
		}

		if err := item.RemoveStock(input.Count); err != nil {
			return err
		}
		if err := uc.items.Update(ctx, item); err != nil {
			return err
		}

		order, err = domain.NewOrder(member.ID, domain.Address{
			Street:  member.Address.Street,
			City:    member.Address.City,
			Zipcode: member.Address.Zipcode,
		}, line)
		if err != nil {
			return err
		}

		return uc.orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	// Publish event (async, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderPlaced(ctx, order); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish order placed event",
				zap.Error(err),
				zap.Uint("order_id", order.ID),
			)
		}
	}

	uc.log.WithContext(ctx).Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("member_id", order.MemberID),
		zap.Int64("total_price", order.TotalPrice()),
	)

	return &PlaceOrderOutput{Order: order}, nil
}

// CancelOrderInput represents the input for cancelling an order
type CancelOrderInput struct {
	ID uint
}

// CancelOrderOutput represents the output of cancelling an order
type CancelOrderOutput struct {
	Order *domain.Order
}

// CancelOrder cancels an order and restores each line's quantity to its
// item's stock, atomically with the status transition.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, input CancelOrderInput) (*CancelOrderOutput, error) {
	var order *domain.Order

	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = uc.orders.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}

		if err := order.Cancel(); err != nil {
			return err
		}

		for _, line := range order.Lines {
			item, err := uc.items.GetByID(ctx, line.ItemID)
			if err != nil {
				return err
			}
			item.AddStock(line.Count)
			if err := uc.items.Update(ctx, item); err != nil {
				return err
			}
		}

		return uc.orders.UpdateStatus(ctx, order.ID, order.Status)
	})
	if err != nil {
		return nil, err
	}

	// Publish event (async, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderCancelled(ctx, order); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish order cancelled event",
				zap.Error(err),
				zap.Uint("order_id", order.ID),
			)
		}
	}

	uc.log.WithContext(ctx).Info("order cancelled",
		zap.Uint("order_id", order.ID),
		zap.Uint("member_id", order.MemberID),
	)

	return &CancelOrderOutput{Order: order}, nil
}

// GetOrderInput represents the input for getting an order
type GetOrderInput struct {
	ID uint
}

// GetOrderOutput represents the output of getting an order
type GetOrderOutput struct {
	Order *domain.Order
}

// GetOrder retrieves an order by ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	order, err := uc.orders.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOrderOutput{Order: order}, nil
}
