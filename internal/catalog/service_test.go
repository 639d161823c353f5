package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubRepo struct {
	products       map[string]*models.Product
	takenSlugs     map[string]bool
	slugChecks     int
	categories     map[uuid.UUID]*models.Category
	deactivatedIDs []string
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		products:   make(map[string]*models.Product),
		takenSlugs: make(map[string]bool),
		categories: make(map[uuid.UUID]*models.Category),
	}
}

func (s *stubRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByIDOrSlug(_ context.Context, key string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == key || p.Slug == key {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	s.slugChecks++
	return s.takenSlugs[slug], nil
}

func (s *stubRepo) CreateProduct(_ context.Context, product *models.Product) error {
	s.products[product.ID] = product
	s.takenSlugs[product.Slug] = true
	return nil
}

func (s *stubRepo) UpdateProduct(_ context.Context, product *models.Product) error {
	s.products[product.ID] = product
	s.takenSlugs[product.Slug] = true
	return nil
}

func (s *stubRepo) DeactivateProduct(_ context.Context, id string) error {
	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return gorm.ErrRecordNotFound
	}
	p.IsActive = false
	s.deactivatedIDs = append(s.deactivatedIDs, id)
	return nil
}

func (s *stubRepo) List(_ context.Context, _ ListQuery) (*ListResult, error) {
	return &ListResult{}, nil
}

func (s *stubRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	rows := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		rows = append(rows, *c)
	}
	return rows, nil
}

func (s *stubRepo) CategoryNameExists(_ context.Context, name string) (bool, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) CreateCategory(_ context.Context, category *models.Category) error {
	s.categories[category.ID] = category
	return nil
}

func (s *stubRepo) RenameCategory(_ context.Context, id uuid.UUID, name string) error {
	c, ok := s.categories[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Name = name
	return nil
}

func (s *stubRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := s.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.categories, id)
	return nil
}

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validInput() ProductInput {
	return ProductInput{
		Name:       "Business Cards",
		Category:   "Business Essentials",
		PricePaise: 35000,
	}
}

func assertCode(t *testing.T, err error, want pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != want {
		t.Fatalf("error = %v, want code %s", err, want)
	}
}

func TestCreateProductGeneratesSlug(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	svc := newTestService(t, repo)

	product, err := svc.CreateProduct(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Slug != "business-cards" {
		t.Fatalf("slug = %q", product.Slug)
	}
	if product.ID == "" || product.Source != enums.ProductSourceAdmin || !product.IsActive {
		t.Fatalf("defaults = %+v", product)
	}
}

func TestCreateProductSuffixesTakenSlugs(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	repo.takenSlugs["business-cards"] = true
	repo.takenSlugs["business-cards-2"] = true
	svc := newTestService(t, repo)

	product, err := svc.CreateProduct(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Slug != "business-cards-3" {
		t.Fatalf("slug = %q, want business-cards-3", product.Slug)
	}
}

func TestCreateProductValidation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newStubRepo())
	ctx := context.Background()

	blank := validInput()
	blank.Name = "   "
	_, err := svc.CreateProduct(ctx, blank)
	assertCode(t, err, pkgerrors.CodeValidation)

	free := validInput()
	free.PricePaise = 0
	_, err = svc.CreateProduct(ctx, free)
	assertCode(t, err, pkgerrors.CodeValidation)

	quoted := validInput()
	quoted.PricePaise = 0
	quoted.CustomQuote = true
	if _, err := svc.CreateProduct(ctx, quoted); err != nil {
		t.Fatalf("custom quote with zero price should pass, got %v", err)
	}
}

func TestUpdateProductKeepsSlugWhenNameUnchanged(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	repo.products["p-1"] = &models.Product{
		ID: "p-1", Slug: "business-cards", Name: "Business Cards",
		Category: "Business Essentials", PricePaise: 35000, IsActive: true,
	}
	svc := newTestService(t, repo)

	input := validInput()
	input.PricePaise = 40000
	updated, err := svc.UpdateProduct(context.Background(), "p-1", input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "business-cards" {
		t.Fatalf("slug moved to %q on a price-only edit", updated.Slug)
	}
	if repo.slugChecks != 0 {
		t.Fatalf("slug uniqueness queried %d times for an unchanged name", repo.slugChecks)
	}
	if updated.PricePaise != 40000 {
		t.Fatalf("price = %d", updated.PricePaise)
	}
}

func TestUpdateProductReslugsWhenNameChanges(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	repo.products["p-1"] = &models.Product{
		ID: "p-1", Slug: "business-cards", Name: "Business Cards",
		Category: "Business Essentials", PricePaise: 35000, IsActive: true,
	}
	repo.takenSlugs["premium-cards"] = true
	svc := newTestService(t, repo)

	input := validInput()
	input.Name = "Premium Cards"
	updated, err := svc.UpdateProduct(context.Background(), "p-1", input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "premium-cards-2" {
		t.Fatalf("slug = %q, want premium-cards-2", updated.Slug)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newStubRepo())
	_, err := svc.UpdateProduct(context.Background(), "missing", validInput())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteProductMapsNotFound(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	repo.products["p-1"] = &models.Product{ID: "p-1", Slug: "letterheads", IsActive: true}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if err := svc.DeleteProduct(ctx, "p-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	assertCode(t, svc.DeleteProduct(ctx, "p-1"), pkgerrors.CodeNotFound)
}

func TestGetProductHidesInactiveRows(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	repo.products["p-1"] = &models.Product{ID: "p-1", Slug: "letterheads", Name: "Letterheads", IsActive: false}
	svc := newTestService(t, repo)

	_, err := svc.GetProduct(context.Background(), "letterheads")
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestCategoryServiceRules(t *testing.T) {
	t.Parallel()
	repo := newStubRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "  Special Events  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Special Events" {
		t.Fatalf("name = %q", created.Name)
	}

	_, err = svc.CreateCategory(ctx, "Special Events")
	assertCode(t, err, pkgerrors.CodeConflict)

	_, err = svc.CreateCategory(ctx, "   ")
	assertCode(t, err, pkgerrors.CodeValidation)

	renamed, err := svc.RenameCategory(ctx, created.ID, "Events")
	if err != nil || renamed.Name != "Events" {
		t.Fatalf("rename: %+v %v", renamed, err)
	}
	_, err = svc.RenameCategory(ctx, uuid.New(), "Ghost")
	assertCode(t, err, pkgerrors.CodeNotFound)

	if err := svc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	assertCode(t, svc.DeleteCategory(ctx, created.ID), pkgerrors.CodeNotFound)
}

func TestServiceRequiresRepository(t *testing.T) {
	t.Parallel()
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected constructor error")
	}
}
