package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"github.com/svsdigitals/printshop-backend/pkg/pagination"
	"gorm.io/gorm"
)

// ListQuery carries the public listing filters.
type ListQuery struct {
	Search          string
	Category        string
	Sort            enums.ProductSort
	Pagination      pagination.Params
	IncludeInactive bool
}

// ListResult is one page of catalog rows plus pagination metadata.
type ListResult struct {
	Items []models.Product `json:"items"`
	Meta  pagination.Meta  `json:"meta"`
}

// Repository wires together catalog persistence for products and categories.
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

// FindByID loads the product row regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDOrSlug resolves a product by its id first, then by slug.
func (r *Repository) FindByIDOrSlug(ctx context.Context, key string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ? OR slug = ?", key, key).
		First(&product).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SlugExists reports whether any product row already claims the slug.
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", slug).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateProduct inserts a new product row.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct updates an existing product row.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeactivateProduct soft-deletes the product by clearing its active flag.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *Repository) DeactivateProduct(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RefreshSeedProduct rewrites the catalog fields of a seed row without
// advancing updated_at. Keeping updated_at pinned to created_at is what
// lets the next reconciliation run still classify the row as untouched.
func (r *Repository) RefreshSeedProduct(ctx context.Context, existing *models.Product, seed *models.Product) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", existing.ID).
		UpdateColumns(map[string]any{
			"slug":                  seed.Slug,
			"name":                  seed.Name,
			"description":           seed.Description,
			"price_paise":           seed.PricePaise,
			"original_price_paise":  seed.OriginalPricePaise,
			"category":              seed.Category,
			"image":                 seed.Image,
			"images":                seed.Images,
			"features":              seed.Features,
			"customizable":          seed.Customizable,
			"best_seller":           seed.BestSeller,
			"custom_quote":          seed.CustomQuote,
			"delivery_time":         seed.DeliveryTime,
			"unit":                  seed.Unit,
			"min_quantity":          seed.MinQuantity,
			"quantity_options":      seed.QuantityOptions,
			"customization_options": seed.CustomizationOptions,
			"updated_at":            existing.CreatedAt,
		}).
		Error
}

// List returns one page of products matching the query.
func (r *Repository) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	params := pagination.Normalize(query.Pagination)

	qb := r.db.WithContext(ctx).Model(&models.Product{})
	if !query.IncludeInactive {
		qb = qb.Where("is_active = ?", true)
	}
	if q := strings.TrimSpace(query.Search); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		qb = qb.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if cat := strings.TrimSpace(query.Category); cat != "" && !strings.EqualFold(cat, "All") {
		qb = qb.Where("category = ?", cat)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, err
	}

	// Quoted products carry no meaningful price, so the price sorts
	// push them to the expensive end.
	switch query.Sort {
	case enums.ProductSortPriceLow:
		qb = qb.Order("CASE WHEN custom_quote THEN 1 ELSE 0 END ASC, price_paise ASC, LOWER(name) ASC")
	case enums.ProductSortPriceHigh:
		qb = qb.Order("CASE WHEN custom_quote THEN 0 ELSE 1 END ASC, price_paise DESC, LOWER(name) ASC")
	case enums.ProductSortPopular:
		qb = qb.Order("best_seller DESC, LOWER(name) ASC")
	default:
		qb = qb.Order("LOWER(name) ASC")
	}

	var rows []models.Product
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

// ListCategories returns all category rows ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Order("LOWER(name) ASC").
		Find(&rows).
		Error
	return rows, err
}

// CategoryNameExists reports whether a category row already uses the name.
func (r *Repository) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateCategory inserts a category row.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// RenameCategory updates the category name. Product rows keep their
// denormalized category string, matching the reference admin behavior.
func (r *Repository) RenameCategory(ctx context.Context, id uuid.UUID, name string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"name":       name,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCategory removes the category row without touching products.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
