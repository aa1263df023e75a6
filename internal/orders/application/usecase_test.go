package application

import (
	"context"
	"sort"
	"strings"
	"testing"

	itemdomain "go-shop/internal/items/domain"
	memberdomain "go-shop/internal/members/domain"
	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/logger"
)

// MockMemberRepository is a mock implementation of the member repository
type MockMemberRepository struct {
	members map[uint]*memberdomain.Member
	nextID  uint
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{
		members: make(map[uint]*memberdomain.Member),
		nextID:  1,
	}
}

func (m *MockMemberRepository) Create(ctx context.Context, member *memberdomain.Member) error {
	member.ID = m.nextID
	m.nextID++
	m.members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id uint) (*memberdomain.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, memberdomain.NewMemberNotFound(id)
	}
	return member, nil
}

func (m *MockMemberRepository) FindByName(ctx context.Context, name string) ([]*memberdomain.Member, error) {
	var result []*memberdomain.Member
	for _, member := range m.members {
		if member.Name == name {
			result = append(result, member)
		}
	}
	return result, nil
}

func (m *MockMemberRepository) Update(ctx context.Context, member *memberdomain.Member) error {
	m.members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) List(ctx context.Context) ([]*memberdomain.Member, error) {
	var result []*memberdomain.Member
	for _, member := range m.members {
		result = append(result, member)
	}
	return result, nil
}

// MockItemRepository is a mock implementation of the item repository
type MockItemRepository struct {
	items  map[uint]*itemdomain.Item
	nextID uint
}

func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items:  make(map[uint]*itemdomain.Item),
		nextID: 1,
	}
}

func (m *MockItemRepository) Create(ctx context.Context, item *itemdomain.Item) error {
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = item
	return nil
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uint) (*itemdomain.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, itemdomain.NewItemNotFound(id)
	}
	// Copy so uncommitted mutations don't leak into the store
	copied := *item
	return &copied, nil
}

func (m *MockItemRepository) Update(ctx context.Context, item *itemdomain.Item) error {
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *MockItemRepository) List(ctx context.Context) ([]*itemdomain.Item, error) {
	var result []*itemdomain.Item
	for _, item := range m.items {
		result = append(result, item)
	}
	return result, nil
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	orders  map[uint]*domain.Order
	members *MockMemberRepository
	nextID  uint
}

func NewMockOrderRepository(members *MockMemberRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:  make(map[uint]*domain.Order),
		members: members,
		nextID:  1,
	}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.ID = m.nextID
	m.nextID++
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.NewOrderNotFound(id)
	}
	copied := *order
	return &copied, nil
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	order, ok := m.orders[id]
	if !ok {
		return domain.NewOrderNotFound(id)
	}
	order.Status = status
	return nil
}

func (m *MockOrderRepository) Search(ctx context.Context, criteria ports.SearchCriteria) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, order := range m.orders {
		if criteria.Status != "" && order.Status != criteria.Status {
			continue
		}
		if criteria.MemberName != "" {
			member, ok := m.members.members[order.MemberID]
			if !ok || !strings.Contains(member.Name, criteria.MemberName) {
				continue
			}
		}
		copied := *order
		result = append(result, &copied)
	}
	sortNewestFirst(result)
	return result, nil
}

func sortNewestFirst(orders []*domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OrderedAt.Equal(orders[j].OrderedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].OrderedAt.After(orders[j].OrderedAt)
	})
}

// MockOrderReader serves the optimized strategies from the same data
// the repository holds
type MockOrderReader struct {
	repo *MockOrderRepository
}

func NewMockOrderReader(repo *MockOrderRepository) *MockOrderReader {
	return &MockOrderReader{repo: repo}
}

func (m *MockOrderReader) list(ctx context.Context, criteria ports.SearchCriteria) ([]ports.OrderProjection, error) {
	orders, err := m.repo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.OrderProjection, len(orders))
	for i, order := range orders {
		member := m.repo.members.members[order.MemberID]
		lines := make([]ports.LineProjection, len(order.Lines))
		for j, line := range order.Lines {
			lines[j] = ports.LineProjection{
				ItemName:   line.ItemName,
				OrderPrice: line.OrderPrice,
				Count:      line.Count,
			}
		}
		projections[i] = ports.OrderProjection{
			OrderID:    order.ID,
			MemberName: member.Name,
			OrderedAt:  order.OrderedAt,
			Status:     string(order.Status),
			Address:    order.Delivery.Address,
			Lines:      lines,
		}
	}
	return projections, nil
}

func (m *MockOrderReader) ListPaged(ctx context.Context, criteria ports.SearchCriteria, offset, limit int) ([]ports.OrderProjection, error) {
	projections, err := m.list(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if offset > 0 {
		if offset > len(projections) {
			offset = len(projections)
		}
		projections = projections[offset:]
	}
	if limit > 0 && limit < len(projections) {
		projections = projections[:limit]
	}
	return projections, nil
}

func (m *MockOrderReader) ListFlat(ctx context.Context, criteria ports.SearchCriteria) ([]ports.OrderProjection, error) {
	return m.list(ctx, criteria)
}

// MockTxRunner runs the unit of work without a real transaction
type MockTxRunner struct{}

func (MockTxRunner) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	placed    []*domain.Order
	cancelled []*domain.Order
}

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	m.placed = append(m.placed, order)
	return nil
}

func (m *MockEventPublisher) PublishOrderCancelled(ctx context.Context, order *domain.Order) error {
	m.cancelled = append(m.cancelled, order)
	return nil
}

type fixture struct {
	useCase   *OrderUseCase
	members   *MockMemberRepository
	items     *MockItemRepository
	orders    *MockOrderRepository
	publisher *MockEventPublisher
}

func newFixture() *fixture {
	members := NewMockMemberRepository()
	items := NewMockItemRepository()
	orders := NewMockOrderRepository(members)
	reader := NewMockOrderReader(orders)
	publisher := &MockEventPublisher{}
	log := logger.New("test", "debug")

	return &fixture{
		useCase:   NewOrderUseCase(orders, reader, members, items, MockTxRunner{}, publisher, log),
		members:   members,
		items:     items,
		orders:    orders,
		publisher: publisher,
	}
}

func (f *fixture) seedMember(t *testing.T, name string) *memberdomain.Member {
	t.Helper()
	member, err := memberdomain.NewMember(name, memberdomain.Address{
		Street:  "123 Main St",
		City:    "Bucheon",
		Zipcode: "422-510",
	})
	if err != nil {
		t.Fatalf("failed to build member: %v", err)
	}
	if err := f.members.Create(context.Background(), member); err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}

func (f *fixture) seedBook(t *testing.T, name string, price int64, stock int) *itemdomain.Item {
	t.Helper()
	item, err := itemdomain.NewItem(itemdomain.KindBook, name, price, stock)
	if err != nil {
		t.Fatalf("failed to build item: %v", err)
	}
	if err := f.items.Create(context.Background(), item); err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item
}

func TestPlaceOrder_Success(t *testing.T) {
	// Arrange
	f := newFixture()
	member := f.seedMember(t, "jay")
	book := f.seedBook(t, "The Go Programming Language", 15000, 10)

	// Act
	output, err := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: member.ID,
		ItemID:   book.ID,
		Count:    3,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	order := output.Order
	if order.Status != domain.OrderStatusOrdered {
		t.Errorf("expected status ordered, got %s", order.Status)
	}
	if len(order.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(order.Lines))
	}
	if order.TotalPrice() != 45000 {
		t.Errorf("expected total 45000, got %d", order.TotalPrice())
	}
	if order.Delivery.Status != domain.DeliveryStatusReady {
		t.Errorf("expected delivery ready, got %s", order.Delivery.Status)
	}
	if order.Delivery.Address.City != "Bucheon" {
		t.Errorf("expected delivery to member address, got %s", order.Delivery.Address.City)
	}

	stored, _ := f.items.GetByID(context.Background(), book.ID)
	if stored.StockQuantity != 7 {
		t.Errorf("expected stock 7 after ordering 3, got %d", stored.StockQuantity)
	}

	if len(f.publisher.placed) != 1 {
		t.Errorf("expected 1 event published, got %d", len(f.publisher.placed))
	}
}

func TestPlaceOrder_SnapshotsPriceAtOrderTime(t *testing.T) {
	// Arrange
	f := newFixture()
	member := f.seedMember(t, "jay")
	book := f.seedBook(t, "The Go Programming Language", 15000, 10)

	output, err := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: member.ID,
		ItemID:   book.ID,
		Count:    2,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Act: the catalog price changes after the order
	stored, _ := f.items.GetByID(context.Background(), book.ID)
	if err := stored.Overwrite(stored.Name, 99000, stored.StockQuantity); err != nil {
		t.Fatalf("failed to reprice item: %v", err)
	}
	if err := f.items.Update(context.Background(), stored); err != nil {
		t.Fatalf("failed to update item: %v", err)
	}

	// Assert: the order still totals at the snapshotted price
	reloaded, err := f.useCase.GetOrder(context.Background(), GetOrderInput{ID: output.Order.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reloaded.Order.TotalPrice() != 30000 {
		t.Errorf("expected total 30000 from snapshot price, got %d", reloaded.Order.TotalPrice())
	}
}

func TestPlaceOrder_NotEnoughStock(t *testing.T) {
	// Arrange
	f := newFixture()
	member := f.seedMember(t, "jay")
	book := f.seedBook(t, "The Go Programming Language", 15000, 10)

	// Act
	_, err := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: member.ID,
		ItemID:   book.ID,
		Count:    11,
	})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeOutOfStock) {
		t.Errorf("expected out of stock error, got %v", err)
	}

	// Nothing was persisted: no order, no stock mutation
	if len(f.orders.orders) != 0 {
		t.Errorf("expected no persisted orders, got %d", len(f.orders.orders))
	}
	stored, _ := f.items.GetByID(context.Background(), book.ID)
	if stored.StockQuantity != 10 {
		t.Errorf("expected stock unchanged at 10, got %d", stored.StockQuantity)
	}
	if len(f.publisher.placed) != 0 {
		t.Errorf("expected no events published, got %d", len(f.publisher.placed))
	}
}

func TestPlaceOrder_MemberNotFound(t *testing.T) {
	// Arrange
	f := newFixture()
	book := f.seedBook(t, "The Go Programming Language", 15000, 10)

	// Act
	_, err := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: 999,
		ItemID:   book.ID,
		Count:    1,
	})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestPlaceOrder_ItemNotFound(t *testing.T) {
	// Arrange
	f := newFixture()
	member := f.seedMember(t, "jay")

	// Act
	_, err := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: member.ID,
		ItemID:   999,
		Count:    1,
	})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCancelOrder_RestoresStock(t *testing.T) {
	// Arrange
	f := newFixture()
	member := f.seedMember(t, "jay")
	book := f.seedBook(t, "The Go Programming Language", 15000, 10)

	placed, err := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: member.ID,
		ItemID:   book.ID,
		Count:    5,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Act
	output, err := f.useCase.CancelOrder(context.Background(), CancelOrderInput{ID: placed.Order.ID})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Order.Status != domain.OrderStatusCancelled {
		t.Errorf("expected status cancelled, got %s", output.Order.Status)
	}

	stored, _ := f.items.GetByID(context.Background(), book.ID)
	if stored.StockQuantity != 10 {
		t.Errorf("expected stock restored to 10, got %d", stored.StockQuantity)
	}

	if len(f.publisher.cancelled) != 1 {
		t.Errorf("expected 1 event published, got %d", len(f.publisher.cancelled))
	}
}

func TestCancelOrder_SecondCancelFails(t *testing.T) {
	// Arrange
	f := newFixture()
	member := f.seedMember(t, "jay")
	book := f.seedBook(t, "The Go Programming Language", 15000, 10)

	placed, _ := f.useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		MemberID: member.ID,
		ItemID:   book.ID,
		Count:    5,
	})
	if _, err := f.useCase.CancelOrder(context.Background(), CancelOrderInput{ID: placed.Order.ID}); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	// Act
	_, err := f.useCase.CancelOrder(context.Background(), CancelOrderInput{ID: placed.Order.ID})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeIllegalState) {
		t.Errorf("expected illegal state error, got %v", err)
	}

	// The second attempt left the stock untouched
	stored, _ := f.items.GetByID(context.Background(), book.ID)
	if stored.StockQuantity != 10 {
		t.Errorf("expected stock still 10, got %d", stored.StockQuantity)
	}
}

func TestCancelOrder_NotFound(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	_, err := f.useCase.CancelOrder(context.Background(), CancelOrderInput{ID: 999})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}
