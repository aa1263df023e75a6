package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/db"
	apperrors "go-shop/pkg/errors"
)

// OrderModel is the GORM model for orders (persistence layer)
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	MemberID  uint             `gorm:"index;not null"`
	Member    MemberRef        `gorm:"foreignKey:MemberID"`
	Status    string           `gorm:"size:20;not null;index"`
	OrderedAt time.Time        `gorm:"index;not null"`
	Lines     []OrderLineModel `gorm:"foreignKey:OrderID"`
	Delivery  DeliveryModel    `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM model for order lines. OrderPrice is the
// snapshotted unit price; the item name is resolved through the item
// reference at read time.
type OrderLineModel struct {
	ID         uint    `gorm:"primaryKey"`
	OrderID    uint    `gorm:"index;not null"`
	ItemID     uint    `gorm:"index;not null"`
	Item       ItemRef `gorm:"foreignKey:ItemID"`
	OrderPrice int64   `gorm:"not null"`
	Count      int     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// DeliveryModel is the GORM model for deliveries
type DeliveryModel struct {
	ID            uint   `gorm:"primaryKey"`
	OrderID       uint   `gorm:"uniqueIndex;not null"`
	Status        string `gorm:"size:20;not null"`
	AddressStreet string `gorm:"size:255"`
	AddressCity   string `gorm:"size:100"`
	AddressZip    string `gorm:"size:20"`
}

// TableName returns the table name for GORM
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// MemberRef is a read-only reference to the members table, just enough
// for joins and name projection
type MemberRef struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

// TableName returns the table name for GORM
func (MemberRef) TableName() string {
	return "members"
}

// ItemRef is a read-only reference to the items table
type ItemRef struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

// TableName returns the table name for GORM
func (ItemRef) TableName() string {
	return "items"
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Migrate runs auto-migration for the order models. The member and item
// repositories must migrate first so their tables carry the full column
// sets, not just the reference columns.
func (r *PostgresOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&OrderModel{}, &OrderLineModel{}, &DeliveryModel{})
}

// Create persists the order with its lines and delivery as one unit
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	model := toModel(order)

	result := db.FromContext(ctx, r.db).Omit("Member", "Lines.Item").Create(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to create order", result.Error)
	}

	// Update domain entity with generated IDs
	order.ID = model.ID
	order.Delivery.ID = model.Delivery.ID
	for i := range model.Lines {
		order.Lines[i].ID = model.Lines[i].ID
	}

	return nil
}

// GetByID retrieves the full aggregate by ID with every relation
// resolved eagerly
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var model OrderModel

	result := db.FromContext(ctx, r.db).
		Preload("Lines.Item").
		Preload("Delivery").
		First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewOrderNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get order", result.Error)
	}

	return toDomain(&model), nil
}

// UpdateStatus writes back a status transition
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	result := db.FromContext(ctx, r.db).
		Model(&OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return apperrors.NewInternal("failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewOrderNotFound(id)
	}
	return nil
}

// Search retrieves aggregates matching the criteria, newest first
func (r *PostgresOrderRepository) Search(ctx context.Context, criteria ports.SearchCriteria) ([]*domain.Order, error) {
	query := db.FromContext(ctx, r.db).
		Model(&OrderModel{}).
		Preload("Lines.Item").
		Preload("Delivery").
		Order("orders.ordered_at DESC")

	if criteria.MemberName != "" {
		query = query.
			Joins("JOIN members ON members.id = orders.member_id").
			Where("members.name LIKE ?", "%"+criteria.MemberName+"%")
	}
	if criteria.Status != "" {
		query = query.Where("orders.status = ?", string(criteria.Status))
	}

	var models []OrderModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.NewInternal("failed to search orders", err)
	}

	orders := make([]*domain.Order, len(models))
	for i := range models {
		orders[i] = toDomain(&models[i])
	}

	return orders, nil
}

// toModel converts a domain aggregate to GORM models
func toModel(order *domain.Order) *OrderModel {
	lines := make([]OrderLineModel, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineModel{
			ID:         line.ID,
			ItemID:     line.ItemID,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}

	return &OrderModel{
		ID:        order.ID,
		MemberID:  order.MemberID,
		Status:    string(order.Status),
		OrderedAt: order.OrderedAt,
		Lines:     lines,
		Delivery: DeliveryModel{
			ID:            order.Delivery.ID,
			Status:        string(order.Delivery.Status),
			AddressStreet: order.Delivery.Address.Street,
			AddressCity:   order.Delivery.Address.City,
			AddressZip:    order.Delivery.Address.Zipcode,
		},
	}
}

// toDomain converts GORM models to the domain aggregate
func toDomain(model *OrderModel) *domain.Order {
	lines := make([]domain.OrderLine, len(model.Lines))
	for i, line := range model.Lines {
		lines[i] = domain.OrderLine{
			ID:         line.ID,
			ItemID:     line.ItemID,
			ItemName:   line.Item.Name,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}

	return &domain.Order{
		ID:       model.ID,
		MemberID: model.MemberID,
		Lines:    lines,
		Delivery: domain.Delivery{
			ID:     model.Delivery.ID,
			Status: domain.DeliveryStatus(model.Delivery.Status),
			Address: domain.Address{
				Street:  model.Delivery.AddressStreet,
				City:    model.Delivery.AddressCity,
				Zipcode: model.Delivery.AddressZip,
			},
		},
		Status:    domain.OrderStatus(model.Status),
		OrderedAt: model.OrderedAt,
	}
}
