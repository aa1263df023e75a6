package application

import (
	"context"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
)

// ListOrdersInput carries the filter and window for order listings
type ListOrdersInput struct {
	Criteria ports.SearchCriteria
	Offset   int
	Limit    int
}

// ListOrdersOutput represents the output of an order listing
type ListOrdersOutput struct {
	Orders []ports.OrderProjection
}

// ListOrdersFullGraph materializes the full aggregates and walks every
// relation to build the transfer records. The member of each order is
// resolved with its own lookup, so the query count grows with the
// result size; the other strategies exist to avoid exactly that.
func (uc *OrderUseCase) ListOrdersFullGraph(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	orders, err := uc.orders.Search(ctx, input.Criteria)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.OrderProjection, len(orders))
	for i, order := range orders {
		member, err := uc.members.GetByID(ctx, order.MemberID)
		if err != nil {
			return nil, err
		}
		projections[i] = toProjection(order, member.Name)
	}

	return &ListOrdersOutput{Orders: projections}, nil
}

// ListOrdersPaged serves the same content from a bounded number of
// queries: one join for the order roots and their to-one relations,
// one follow-up for the lines. Supports offset/limit windowing.
func (uc *OrderUseCase) ListOrdersPaged(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	projections, err := uc.reader.ListPaged(ctx, input.Criteria, input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListOrdersOutput{Orders: projections}, nil
}

// ListOrdersFlat asks the data layer for the transfer shape directly,
// bypassing entity materialization entirely.
func (uc *OrderUseCase) ListOrdersFlat(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	projections, err := uc.reader.ListFlat(ctx, input.Criteria)
	if err != nil {
		return nil, err
	}

	return &ListOrdersOutput{Orders: projections}, nil
}

// toProjection flattens a fully resolved aggregate into the transfer
// record shared by all read strategies
func toProjection(order *domain.Order, memberName string) ports.OrderProjection {
	lines := make([]ports.LineProjection, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = ports.LineProjection{
			ItemName:   line.ItemName,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}

	return ports.OrderProjection{
		OrderID:    order.ID,
		MemberName: memberName,
		OrderedAt:  order.OrderedAt,
		Status:     string(order.Status),
		Address:    order.Delivery.Address,
		Lines:      lines,
	}
}
