package catalog

import (
	"fmt"
	"testing"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
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

func mustCreateTestProduct(t *testing.T, db *gorm.DB, product models.Product) *models.Product {
	t.Helper()
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	if product.Category == "" {
		product.Category = "Business Essentials"
	}
	if product.MinQuantity == 0 {
		product.MinQuantity = 1
	}
	if product.Source == "" {
		product.Source = enums.ProductSourceAdmin
	}
	product.IsActive = true
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product %s: %v", product.ID, err)
	}
	return &product
}
