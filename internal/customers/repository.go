package customers

import (
	"context"
	"strings"
	"time"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"github.com/svsdigitals/printshop-backend/pkg/pagination"
	"gorm.io/gorm"
)

const (
	// HighSpenderThresholdPaise is exclusive: spend must exceed ₹2,000.
	HighSpenderThresholdPaise int64 = 200000
	// FrequentBuyerMinOrders is exclusive: more than 5 orders qualifies.
	FrequentBuyerMinOrders = 5
	// InactiveWindowDays is how far back an order keeps a customer active.
	InactiveWindowDays = 90
)

// Sort enumerates the admin listing orderings.
type Sort string

const (
	SortNameAsc     Sort = "name-asc"
	SortSpentDesc   Sort = "spent-desc"
	SortOrdersDesc  Sort = "orders-desc"
	SortNewestFirst Sort = "newest"
)

// ListQuery carries the admin customer listing filters.
type ListQuery struct {
	Search     string
	Segment    enums.CustomerSegment
	Sort       Sort
	Pagination pagination.Params
}

// ListResult is one page of customers plus pagination metadata.
type ListResult struct {
	Items []models.Customer `json:"items"`
	Meta  pagination.Meta   `json:"meta"`
}

// Repository wires customer persistence.
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

// FindByID loads one customer.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts a new customer row.
func (r *Repository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Save writes the full customer row.
func (r *Repository) Save(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Accumulate refreshes the profile fields and bumps the lifetime
// counters in one statement.
func (r *Repository) Accumulate(ctx context.Context, profile *models.Customer, addSpentPaise int64, addOrders int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":              profile.Name,
			"email":             profile.Email,
			"phone":             profile.Phone,
			"street":            profile.Street,
			"city":              profile.City,
			"state":             profile.State,
			"zip":               profile.Zip,
			"total_spent_paise": gorm.Expr("total_spent_paise + ?", addSpentPaise),
			"total_orders":      gorm.Expr("total_orders + ?", addOrders),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a customer row.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total customer count for the dashboard.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Count(&count).
		Error
	return count, err
}

// List returns one page of customers matching the query. Segment
// recency is resolved against the orders table, so customers who never
// ordered count as inactive.
func (r *Repository) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	params := pagination.Normalize(query.Pagination)

	qb := r.db.WithContext(ctx).Model(&models.Customer{})
	if q := strings.TrimSpace(query.Search); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		qb = qb.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	switch query.Segment {
	case enums.CustomerSegmentHighSpenders:
		qb = qb.Where("total_spent_paise > ?", HighSpenderThresholdPaise)
	case enums.CustomerSegmentFrequentBuyers:
		qb = qb.Where("total_orders > ?", FrequentBuyerMinOrders)
	case enums.CustomerSegmentInactive:
		cutoff := time.Now().UTC().AddDate(0, 0, -InactiveWindowDays)
		qb = qb.Where(
			"NOT EXISTS (SELECT 1 FROM orders o WHERE o.customer_id = customers.id AND o.created_at > ?)",
			cutoff,
		)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, err
	}

	switch query.Sort {
	case SortSpentDesc:
		qb = qb.Order("total_spent_paise DESC, LOWER(name) ASC")
	case SortOrdersDesc:
		qb = qb.Order("total_orders DESC, LOWER(name) ASC")
	case SortNewestFirst:
		qb = qb.Order("created_at DESC")
	default:
		qb = qb.Order("LOWER(name) ASC")
	}

	var rows []models.Customer
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
