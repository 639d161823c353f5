package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestSettingsService(t *testing.T) Service {
	t.Helper()

	dsn := fmt.Sprintf("file:settings_%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Settings{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	svc, err := NewService(ServiceParams{Repo: NewRepository(conn)})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestGetSeedsDefaultsOnFirstRead(t *testing.T) {
	svc := newTestSettingsService(t)
	ctx := context.Background()

	row, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.ID != models.SettingsRowID {
		t.Fatalf("id = %d", row.ID)
	}
	if row.Currency != "INR" || row.TaxRateBasisPoints != 1800 {
		t.Fatalf("defaults = %+v", row)
	}
	if !row.PaymentGateways.Cash || !row.PaymentGateways.UPI {
		t.Fatalf("gateways = %+v", row.PaymentGateways)
	}

	again, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.SiteName != row.SiteName {
		t.Fatalf("second read diverged: %q vs %q", again.SiteName, row.SiteName)
	}
}

func TestUpdateWritesSingletonRow(t *testing.T) {
	svc := newTestSettingsService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, UpdateInput{
		SiteName:           "PrintShop Hyderabad",
		SupportEmail:       "care@printshop.in",
		Currency:           "INR",
		PaymentGateways:    types.PaymentGateways{Cash: true, Card: true},
		TaxRateBasisPoints: 1200,
		Contact:            types.ContactInfo{Phone: "+91 90000 00000"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SiteName != "PrintShop Hyderabad" || updated.TaxRateBasisPoints != 1200 {
		t.Fatalf("updated = %+v", updated)
	}

	rate, err := svc.TaxRateBasisPoints(ctx)
	if err != nil {
		t.Fatalf("tax rate: %v", err)
	}
	if rate != 1200 {
		t.Fatalf("rate = %d, want the updated 1200", rate)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestSettingsService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, UpdateInput{SiteName: "  "})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("blank site name err = %v", err)
	}

	_, err = svc.Update(ctx, UpdateInput{SiteName: "Shop", TaxRateBasisPoints: -1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("negative rate err = %v", err)
	}
}

func TestTaxRateFeedsDefaultBeforeAnyUpdate(t *testing.T) {
	svc := newTestSettingsService(t)

	rate, err := svc.TaxRateBasisPoints(context.Background())
	if err != nil {
		t.Fatalf("tax rate: %v", err)
	}
	if rate != 1800 {
		t.Fatalf("rate = %d, want default 1800", rate)
	}
}
