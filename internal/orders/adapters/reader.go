package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/db"
	apperrors "go-shop/pkg/errors"
)

// PostgresOrderReader implements the optimized read strategies. It is
// read-only; nothing here touches the write side.
type PostgresOrderReader struct {
	db *gorm.DB
}

// NewPostgresOrderReader creates a new PostgreSQL order reader
func NewPostgresOrderReader(db *gorm.DB) *PostgresOrderReader {
	return &PostgresOrderReader{db: db}
}

// ListPaged fetches the order roots joined with member and delivery in
// one query, then resolves every line with exactly one IN query. Only
// the to-one relations are joined: joining the line collection as well
// would multiply rows and break offset/limit windowing.
func (r *PostgresOrderReader) ListPaged(ctx context.Context, criteria ports.SearchCriteria, offset, limit int) ([]ports.OrderProjection, error) {
	query := db.FromContext(ctx, r.db).
		Model(&OrderModel{}).
		Joins("Member").
		Joins("Delivery").
		Order("orders.ordered_at DESC")

	if criteria.MemberName != "" {
		query = query.Where(`"Member"."name" LIKE ?`, "%"+criteria.MemberName+"%")
	}
	if criteria.Status != "" {
		query = query.Where("orders.status = ?", string(criteria.Status))
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var roots []OrderModel
	if err := query.Find(&roots).Error; err != nil {
		return nil, apperrors.NewInternal("failed to list orders", err)
	}

	projections := make([]ports.OrderProjection, len(roots))
	ids := make([]uint, len(roots))
	index := make(map[uint]int, len(roots))
	for i, root := range roots {
		ids[i] = root.ID
		index[root.ID] = i
		projections[i] = ports.OrderProjection{
			OrderID:    root.ID,
			MemberName: root.Member.Name,
			OrderedAt:  root.OrderedAt,
			Status:     root.Status,
			Address: domain.Address{
				Street:  root.Delivery.AddressStreet,
				City:    root.Delivery.AddressCity,
				Zipcode: root.Delivery.AddressZip,
			},
			Lines: []ports.LineProjection{},
		}
	}

	if len(ids) == 0 {
		return projections, nil
	}

	var lines []OrderLineModel
	err := db.FromContext(ctx, r.db).
		Model(&OrderLineModel{}).
		Joins("Item").
		Where("order_lines.order_id IN ?", ids).
		Order("order_lines.id").
		Find(&lines).Error
	if err != nil {
		return nil, apperrors.NewInternal("failed to list order lines", err)
	}

	for _, line := range lines {
		i, ok := index[line.OrderID]
		if !ok {
			continue
		}
		projections[i].Lines = append(projections[i].Lines, ports.LineProjection{
			ItemName:   line.Item.Name,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		})
	}

	return projections, nil
}

// headerRow is the direct-query shape for the order root
type headerRow struct {
	OrderID    uint
	MemberName string
	OrderedAt  time.Time
	Status     string
	Street     string
	City       string
	Zipcode    string
}

// lineRow is the direct-query shape for one order line
type lineRow struct {
	OrderID    uint
	ItemName   string
	OrderPrice int64
	Count      int
}

// ListFlat scans the transfer shape straight from source columns, never
// building entity structs. One header query, one line query.
func (r *PostgresOrderReader) ListFlat(ctx context.Context, criteria ports.SearchCriteria) ([]ports.OrderProjection, error) {
	conn := db.FromContext(ctx, r.db)

	headerSQL := `
		SELECT o.id AS order_id, m.name AS member_name, o.ordered_at, o.status,
		       d.address_street AS street, d.address_city AS city, d.address_zip AS zipcode
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id`

	var args []interface{}
	where := ""
	if criteria.MemberName != "" {
		where = " WHERE m.name LIKE ?"
		args = append(args, "%"+criteria.MemberName+"%")
	}
	if criteria.Status != "" {
		if where == "" {
			where = " WHERE o.status = ?"
		} else {
			where += " AND o.status = ?"
		}
		args = append(args, string(criteria.Status))
	}

	var headers []headerRow
	if err := conn.Raw(headerSQL+where+" ORDER BY o.ordered_at DESC", args...).Scan(&headers).Error; err != nil {
		return nil, apperrors.NewInternal("failed to query order headers", err)
	}

	projections := make([]ports.OrderProjection, len(headers))
	ids := make([]uint, len(headers))
	index := make(map[uint]int, len(headers))
	for i, h := range headers {
		ids[i] = h.OrderID
		index[h.OrderID] = i
		projections[i] = ports.OrderProjection{
			OrderID:    h.OrderID,
			MemberName: h.MemberName,
			OrderedAt:  h.OrderedAt,
			Status:     h.Status,
			Address: domain.Address{
				Street:  h.Street,
				City:    h.City,
				Zipcode: h.Zipcode,
			},
			Lines: []ports.LineProjection{},
		}
	}

	if len(ids) == 0 {
		return projections, nil
	}

	lineSQL := `
		SELECT l.order_id, i.name AS item_name, l.order_price, l.count
		FROM order_lines l
		JOIN items i ON i.id = l.item_id
		WHERE l.order_id IN ?
		ORDER BY l.id`

	var lines []lineRow
	if err := conn.Raw(lineSQL, ids).Scan(&lines).Error; err != nil {
		return nil, apperrors.NewInternal("failed to query order lines", err)
	}

	for _, line := range lines {
		i, ok := index[line.OrderID]
		if !ok {
			continue
		}
		projections[i].Lines = append(projections[i].Lines, ports.LineProjection{
			ItemName:   line.ItemName,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		})
	}

	return projections, nil
}
