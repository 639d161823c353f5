package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	catalogpkg "github.com/svsdigitals/printshop-backend/internal/catalog"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Product{}, &models.Category{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func newTestReconciler(t *testing.T, db *gorm.DB) (*Reconciler, *catalogpkg.Repository) {
	t.Helper()
	repo := catalogpkg.NewRepository(db)
	rec, err := NewReconciler(repo, nil)
	if err != nil {
		t.Fatalf("new reconciler: %v", err)
	}
	return rec, repo
}

func TestRunSeedsEmptyStore(t *testing.T) {
	db := openTestDB(t)
	rec, repo := newTestReconciler(t, db)
	ctx := context.Background()

	result, err := rec.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := len(Products()); result.Inserted != want || result.Refreshed != 0 || result.Skipped != 0 {
		t.Fatalf("result = %+v, want %d inserts", result, want)
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != len(CategoryNames) {
		t.Fatalf("categories = %d, want %d", len(categories), len(CategoryNames))
	}

	cards, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("load business cards: %v", err)
	}
	if cards.Slug != "business-cards" || cards.PricePaise != 35000 || cards.Source != enums.ProductSourceSeed {
		t.Fatalf("seed row = %+v", cards)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	rec, _ := newTestReconciler(t, db)
	ctx := context.Background()

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := rec.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Inserted != 0 || second.Skipped != 0 {
		t.Fatalf("second run = %+v, want refresh-only", second)
	}
	if second.Refreshed != len(Products()) {
		t.Fatalf("refreshed = %d, want %d", second.Refreshed, len(Products()))
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(Products())) {
		t.Fatalf("rows = %d after two runs", count)
	}
}

func TestRunRefreshKeepsRowsClassifiedAsUntouched(t *testing.T) {
	db := openTestDB(t)
	rec, repo := newTestReconciler(t, db)
	ctx := context.Background()

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}

	row, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.UpdatedAt.After(row.CreatedAt) {
		t.Fatalf("refresh advanced updated_at (%s > %s)", row.UpdatedAt, row.CreatedAt)
	}
}

func TestRunRepairsDriftOnUntouchedSeedRows(t *testing.T) {
	db := openTestDB(t)
	rec, repo := newTestReconciler(t, db)
	ctx := context.Background()

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// Drift written without touching updated_at, as a bad migration or
	// manual SQL would.
	err := db.Model(&models.Product{}).
		Where("id = ?", "1").
		UpdateColumn("price_paise", 1).
		Error
	if err != nil {
		t.Fatalf("drift: %v", err)
	}

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	row, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.PricePaise != 35000 {
		t.Fatalf("price = %d, want repaired 35000", row.PricePaise)
	}
}

func TestRunNeverOverwritesEditedSeedRows(t *testing.T) {
	db := openTestDB(t)
	rec, repo := newTestReconciler(t, db)
	ctx := context.Background()

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// An admin edit moves updated_at past created_at.
	err := db.Model(&models.Product{}).
		Where("id = ?", "1").
		UpdateColumns(map[string]any{
			"price_paise": 99900,
			"updated_at":  time.Now().UTC().Add(time.Minute),
		}).
		Error
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	result, err := rec.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if result.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", result.Skipped)
	}
	row, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.PricePaise != 99900 {
		t.Fatalf("price = %d, edited row was overwritten", row.PricePaise)
	}
}

func TestRunNeverResurrectsDeletedSeedRows(t *testing.T) {
	db := openTestDB(t)
	rec, repo := newTestReconciler(t, db)
	ctx := context.Background()

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := repo.DeactivateProduct(ctx, "1"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := rec.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	row, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.IsActive {
		t.Fatal("soft-deleted seed row came back")
	}
}

func TestRunNeverTouchesAdminOwnedIDs(t *testing.T) {
	db := openTestDB(t)
	rec, repo := newTestReconciler(t, db)
	ctx := context.Background()

	admin := &models.Product{
		ID:          "1",
		Slug:        "house-special",
		Name:        "House Special",
		PricePaise:  12345,
		Category:    "Business Essentials",
		MinQuantity: 1,
		IsActive:    true,
		Source:      enums.ProductSourceAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin row: %v", err)
	}

	result, err := rec.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", result.Skipped)
	}
	row, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.Name != "House Special" || row.PricePaise != 12345 {
		t.Fatalf("admin row was overwritten: %+v", row)
	}
}

func TestProductsReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	first := Products()
	first[0].Name = "mutated"
	second := Products()
	if second[0].Name == "mutated" {
		t.Fatal("seed data leaked between calls")
	}
	for _, row := range second {
		if row.Source != enums.ProductSourceSeed || !row.IsActive || !row.Customizable {
			t.Fatalf("row %s defaults = %+v", row.ID, row)
		}
		if row.CustomQuote && row.PricePaise != 0 {
			t.Fatalf("quoted row %s carries a price", row.ID)
		}
		if !row.CustomQuote && row.PricePaise <= 0 {
			t.Fatalf("priced row %s has no price", row.ID)
		}
	}
}
