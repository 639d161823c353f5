package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/types"
	"gorm.io/gorm"
)

type repository interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByIDOrSlug(ctx context.Context, key string) (*models.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeactivateProduct(ctx context.Context, id string) error
	List(ctx context.Context, query ListQuery) (*ListResult, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CategoryNameExists(ctx context.Context, name string) (bool, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	RenameCategory(ctx context.Context, id uuid.UUID, name string) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// ProductInput carries the writable product fields for admin create
// and update calls.
type ProductInput struct {
	Name                 string
	Description          string
	PricePaise           int64
	OriginalPricePaise   *int64
	Category             string
	Image                string
	Images               []string
	Features             []string
	Customizable         bool
	BestSeller           bool
	CustomQuote          bool
	DeliveryTime         string
	Unit                 string
	MinQuantity          int
	QuantityOptions      []types.QuantityOption
	CustomizationOptions []types.CustomizationOption
	WhatsappNumber       *string
	DesignLink           *string
}

// Service exposes catalog reads for shoppers and CRUD for admins.
type Service interface {
	ListProducts(ctx context.Context, query ListQuery) (*ListResult, error)
	GetProduct(ctx context.Context, idOrSlug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repo repository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListProducts(ctx context.Context, query ListQuery) (*ListResult, error) {
	result, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return result, nil
}

// GetProduct resolves a shopper-facing detail lookup. Soft-deleted
// rows read as absent here.
func (s *service) GetProduct(ctx context.Context, idOrSlug string) (*models.Product, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id or slug is required")
	}
	product, err := s.repo.FindByIDOrSlug(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

// GetByID loads a product row regardless of its active flag. Callers
// that care about availability check IsActive themselves.
func (s *service) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	slug, err := s.uniqueSlug(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}
	product := &models.Product{
		ID:       uuid.NewString(),
		Slug:     slug,
		IsActive: true,
		Source:   enums.ProductSourceAdmin,
	}
	applyProductInput(product, input)
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get product")
	}
	// The slug only moves when the name does, so bookmarked product
	// URLs survive price and copy edits.
	if product.Name != input.Name {
		slug, err := s.uniqueSlug(ctx, input.Name, product.Slug)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}
	applyProductInput(product, input)
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeactivateProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return rows, nil
}

func (s *service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	exists, err := s.repo.CategoryNameExists(ctx, name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check category name")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "category already exists")
	}
	category := &models.Category{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return category, nil
}

func (s *service) RenameCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	if err := s.repo.RenameCategory(ctx, id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rename category")
	}
	return &models.Category{ID: id, Name: name}, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	return nil
}

// uniqueSlug derives a slug from the name and suffixes -2, -3, ... until
// no other row claims it. keep is the caller's current slug, which always
// counts as available.
func (s *service) uniqueSlug(ctx context.Context, name string, keep string) (string, error) {
	base := Slugify(name)
	if base == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "product name must contain letters or digits")
	}
	candidate := base
	for i := 2; ; i++ {
		if candidate == keep {
			return candidate, nil
		}
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product category is required")
	}
	if input.PricePaise < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
	}
	if !input.CustomQuote && input.PricePaise == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "priced products need a price above zero")
	}
	return nil
}

func applyProductInput(product *models.Product, input ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.PricePaise = input.PricePaise
	product.OriginalPricePaise = input.OriginalPricePaise
	product.Category = strings.TrimSpace(input.Category)
	product.Image = input.Image
	product.Images = input.Images
	product.Features = input.Features
	product.Customizable = input.Customizable
	product.BestSeller = input.BestSeller
	product.CustomQuote = input.CustomQuote
	product.DeliveryTime = input.DeliveryTime
	product.Unit = input.Unit
	product.MinQuantity = input.MinQuantity
	if product.MinQuantity < 1 {
		product.MinQuantity = 1
	}
	product.QuantityOptions = input.QuantityOptions
	product.CustomizationOptions = input.CustomizationOptions
	product.WhatsappNumber = input.WhatsappNumber
	product.DesignLink = input.DesignLink
}
