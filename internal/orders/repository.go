package orders

import (
	"context"
	"strings"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"github.com/svsdigitals/printshop-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Sort enumerates the admin listing orderings.
type Sort string

const (
	SortDateDesc  Sort = "date-desc"
	SortDateAsc   Sort = "date-asc"
	SortTotalDesc Sort = "total-desc"
	SortTotalAsc  Sort = "total-asc"
)

// ListQuery carries the admin order listing filters.
type ListQuery struct {
	Search        string
	Status        enums.OrderStatus
	MinTotalPaise *int64
	MaxTotalPaise *int64
	DateFrom      string
	DateTo        string
	Sort          Sort
	Pagination    pagination.Params
}

// ListResult is one page of orders plus pagination metadata.
type ListResult struct {
	Items []models.Order  `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// Stats aggregates the dashboard counters over the orders table.
type Stats struct {
	RevenuePaise int64 `json:"revenue_paise"`
	OrderCount   int64 `json:"order_count"`
	PendingCount int64 `json:"pending_count"`
}

// Repository wires order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new order row.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID loads one order.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the order status. Returns gorm.ErrRecordNotFound
// when no row matched.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an order row.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of orders matching the query.
func (r *Repository) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	params := pagination.Normalize(query.Pagination)

	qb := r.db.WithContext(ctx).Model(&models.Order{})
	if q := strings.TrimSpace(query.Search); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		qb = qb.Where(
			"LOWER(id) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(status) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if query.Status != "" {
		qb = qb.Where("status = ?", query.Status)
	}
	if query.MinTotalPaise != nil {
		qb = qb.Where("total_paise >= ?", *query.MinTotalPaise)
	}
	if query.MaxTotalPaise != nil {
		qb = qb.Where("total_paise <= ?", *query.MaxTotalPaise)
	}
	if query.DateFrom != "" {
		qb = qb.Where("date >= ?", query.DateFrom)
	}
	if query.DateTo != "" {
		qb = qb.Where("date <= ?", query.DateTo)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, err
	}

	switch query.Sort {
	case SortDateAsc:
		qb = qb.Order("date ASC, created_at ASC")
	case SortTotalDesc:
		qb = qb.Order("total_paise DESC, created_at DESC")
	case SortTotalAsc:
		qb = qb.Order("total_paise ASC, created_at DESC")
	default:
		qb = qb.Order("date DESC, created_at DESC")
	}

	var rows []models.Order
	err := qb.
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items: rows,
		Meta:  pagination.MetaFor(params, total),
	}, nil
}

// ListByCustomer returns a customer's orders, newest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

// AggregateStats computes the dashboard counters in one pass.
func (r *Repository) AggregateStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	row := struct {
		Revenue int64
		Total   int64
		Pending int64
	}{}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select(
			"COALESCE(SUM(total_paise), 0) AS revenue, COUNT(*) AS total, COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending",
			enums.OrderStatusPending,
		).
		Scan(&row).
		Error
	if err != nil {
		return nil, err
	}
	stats.RevenuePaise = row.Revenue
	stats.OrderCount = row.Total
	stats.PendingCount = row.Pending
	return &stats, nil
}
