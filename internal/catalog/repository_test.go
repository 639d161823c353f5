package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"github.com/svsdigitals/printshop-backend/pkg/pagination"
	"gorm.io/gorm"
)

func seedListingFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustCreateTestProduct(t, db, models.Product{
		ID: "p-mugs", Name: "Photo Mugs", Description: "Personalized ceramic mugs",
		Category: "Promotional Items", PricePaise: 29900,
	})
	mustCreateTestProduct(t, db, models.Product{
		ID: "p-cards", Name: "Business Cards", Description: "Premium cardstock",
		Category: "Business Essentials", PricePaise: 35000, BestSeller: true,
	})
	mustCreateTestProduct(t, db, models.Product{
		ID: "p-pens", Name: "Branded Pens", Description: "Corporate gifting pens",
		Category: "Promotional Items", PricePaise: 1500,
	})
	mustCreateTestProduct(t, db, models.Product{
		ID: "p-diaries", Name: "School Diaries", Description: "Price on request",
		Category: "Academic Solutions", CustomQuote: true,
	})
}

func listedIDs(result *ListResult) []string {
	ids := make([]string, 0, len(result.Items))
	for _, row := range result.Items {
		ids = append(ids, row.ID)
	}
	return ids
}

func TestListSortsPricesWithQuotedProductsAtTheExpensiveEnd(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)
	ctx := context.Background()

	lowToHigh, err := repo.List(ctx, ListQuery{Sort: enums.ProductSortPriceLow})
	if err != nil {
		t.Fatalf("list price-low: %v", err)
	}
	wantLow := []string{"p-pens", "p-mugs", "p-cards", "p-diaries"}
	if got := listedIDs(lowToHigh); len(got) != len(wantLow) {
		t.Fatalf("price-low returned %v", got)
	} else {
		for i, id := range wantLow {
			if got[i] != id {
				t.Fatalf("price-low order = %v, want %v", got, wantLow)
			}
		}
	}

	highToLow, err := repo.List(ctx, ListQuery{Sort: enums.ProductSortPriceHigh})
	if err != nil {
		t.Fatalf("list price-high: %v", err)
	}
	got := listedIDs(highToLow)
	if got[0] != "p-diaries" {
		t.Fatalf("price-high should lead with the quoted product, got %v", got)
	}
	if got[1] != "p-cards" || got[3] != "p-pens" {
		t.Fatalf("price-high order = %v", got)
	}
}

func TestListPopularPutsBestSellersFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)

	result, err := repo.List(context.Background(), ListQuery{Sort: enums.ProductSortPopular})
	if err != nil {
		t.Fatalf("list popular: %v", err)
	}
	if got := listedIDs(result); got[0] != "p-cards" {
		t.Fatalf("popular should lead with the best seller, got %v", got)
	}
}

func TestListDefaultsToNameOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)

	result, err := repo.List(context.Background(), ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"p-pens", "p-cards", "p-mugs", "p-diaries"}
	got := listedIDs(result)
	for i, id := range want {
		if got[i] != id {
			t.Fatalf("name order = %v, want %v", got, want)
		}
	}
}

func TestListSearchMatchesNameDescriptionAndCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)
	ctx := context.Background()

	cases := []struct {
		name   string
		search string
		want   string
	}{
		{name: "name case-insensitive", search: "MUGS", want: "p-mugs"},
		{name: "description", search: "cardstock", want: "p-cards"},
		{name: "category", search: "academic", want: "p-diaries"},
	}
	for _, tc := range cases {
		result, err := repo.List(ctx, ListQuery{Search: tc.search})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(result.Items) != 1 || result.Items[0].ID != tc.want {
			t.Fatalf("%s: got %v, want [%s]", tc.name, listedIDs(result), tc.want)
		}
	}
}

func TestListCategoryFilterTreatsAllAsNoFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)
	ctx := context.Background()

	promo, err := repo.List(ctx, ListQuery{Category: "Promotional Items"})
	if err != nil {
		t.Fatalf("list promo: %v", err)
	}
	if promo.Meta.TotalItems != 2 {
		t.Fatalf("promo total = %d, want 2", promo.Meta.TotalItems)
	}

	all, err := repo.List(ctx, ListQuery{Category: "All"})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Meta.TotalItems != 4 {
		t.Fatalf("All total = %d, want 4", all.Meta.TotalItems)
	}
}

func TestListPaginationMeta(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)

	result, err := repo.List(context.Background(), ListQuery{
		Pagination: pagination.Params{Page: 2, Limit: 3},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("page 2 rows = %d, want 1", len(result.Items))
	}
	if result.Meta.Page != 2 || result.Meta.Limit != 3 {
		t.Fatalf("meta = %+v", result.Meta)
	}
	if result.Meta.TotalItems != 4 || result.Meta.TotalPages != 2 {
		t.Fatalf("meta totals = %+v", result.Meta)
	}
}

func TestListHidesDeactivatedProductsUnlessAsked(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedListingFixture(t, db)
	ctx := context.Background()

	if err := repo.DeactivateProduct(ctx, "p-pens"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	public, err := repo.List(ctx, ListQuery{})
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if public.Meta.TotalItems != 3 {
		t.Fatalf("public total = %d, want 3", public.Meta.TotalItems)
	}

	admin, err := repo.List(ctx, ListQuery{IncludeInactive: true})
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if admin.Meta.TotalItems != 4 {
		t.Fatalf("admin total = %d, want 4", admin.Meta.TotalItems)
	}
}

func TestDeactivateProductTwiceReportsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	mustCreateTestProduct(t, db, models.Product{ID: "p-1", Name: "Letterheads", PricePaise: 60000})
	ctx := context.Background()

	if err := repo.DeactivateProduct(ctx, "p-1"); err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	if err := repo.DeactivateProduct(ctx, "p-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second deactivate err = %v, want record not found", err)
	}
	if err := repo.DeactivateProduct(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing deactivate err = %v, want record not found", err)
	}
}

func TestFindByIDOrSlugResolvesBoth(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	created := mustCreateTestProduct(t, db, models.Product{ID: "p-1", Name: "Photo Prints", PricePaise: 1500})
	ctx := context.Background()

	byID, err := repo.FindByIDOrSlug(ctx, "p-1")
	if err != nil || byID.ID != created.ID {
		t.Fatalf("by id: %v %v", byID, err)
	}
	bySlug, err := repo.FindByIDOrSlug(ctx, "photo-prints")
	if err != nil || bySlug.ID != created.ID {
		t.Fatalf("by slug: %v %v", bySlug, err)
	}
	if _, err := repo.FindByIDOrSlug(ctx, "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestSlugExists(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	mustCreateTestProduct(t, db, models.Product{ID: "p-1", Name: "Certificates", PricePaise: 4000})
	ctx := context.Background()

	exists, err := repo.SlugExists(ctx, "certificates")
	if err != nil || !exists {
		t.Fatalf("existing slug: %v %v", exists, err)
	}
	exists, err = repo.SlugExists(ctx, "certificates-2")
	if err != nil || exists {
		t.Fatalf("free slug: %v %v", exists, err)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.CreateCategory(ctx, &models.Category{ID: id, Name: "Special Events"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	exists, err := repo.CategoryNameExists(ctx, "special events")
	if err != nil || !exists {
		t.Fatalf("name exists: %v %v", exists, err)
	}

	if err := repo.RenameCategory(ctx, id, "Events"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	rows, err := repo.ListCategories(ctx)
	if err != nil || len(rows) != 1 || rows[0].Name != "Events" {
		t.Fatalf("list after rename: %+v %v", rows, err)
	}

	if err := repo.DeleteCategory(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteCategory(ctx, id); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
	if err := repo.RenameCategory(ctx, uuid.New(), "Ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("rename missing err = %v", err)
	}
}

func TestDeleteCategoryLeavesProductsAlone(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.CreateCategory(ctx, &models.Category{ID: id, Name: "Promotional Items"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	mustCreateTestProduct(t, db, models.Product{
		ID: "p-1", Name: "Photo Mugs", Category: "Promotional Items", PricePaise: 29900,
	})

	if err := repo.DeleteCategory(ctx, id); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	product, err := repo.FindByID(ctx, "p-1")
	if err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if product.Category != "Promotional Items" {
		t.Fatalf("product category = %q, want unchanged", product.Category)
	}
}
