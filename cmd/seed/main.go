package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/svsdigitals/printshop-backend/internal/admins"
	"github.com/svsdigitals/printshop-backend/internal/catalog"
	"github.com/svsdigitals/printshop-backend/internal/catalog/seed"
	"github.com/svsdigitals/printshop-backend/internal/settings"
	"github.com/svsdigitals/printshop-backend/pkg/config"
	"github.com/svsdigitals/printshop-backend/pkg/db"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"github.com/svsdigitals/printshop-backend/pkg/security"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	adminEmail := flag.String("admin-email", "", "bootstrap admin email (created when no admins exist)")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env})

	settingsService, err := settings.NewService(settings.ServiceParams{
		Repo: settings.NewRepository(dbClient.DB()),
	})
	requireResource(ctx, logg, "settings service", err)
	_, err = settingsService.EnsureDefaults(ctx)
	requireResource(ctx, logg, "default settings", err)

	reconciler, err := seed.NewReconciler(catalog.NewRepository(dbClient.DB()), logg)
	requireResource(ctx, logg, "seed reconciler", err)

	result, err := reconciler.Run(ctx)
	requireResource(ctx, logg, "catalog reconcile", err)
	logg.Info(logg.WithFields(ctx, map[string]any{
		"inserted":  result.Inserted,
		"refreshed": result.Refreshed,
		"skipped":   result.Skipped,
	}), "catalog seed reconciled")

	if err := bootstrapAdmin(ctx, logg, cfg, dbClient, *adminEmail); err != nil {
		logg.Error(ctx, "failed to bootstrap admin", err)
		os.Exit(1)
	}
}

// bootstrapAdmin creates the first back-office account when the
// admins table is empty. The generated password prints once to stdout
// and is never logged.
func bootstrapAdmin(ctx context.Context, logg *logger.Logger, cfg *config.Config, dbClient *db.Client, email string) error {
	repo := admins.NewRepository(dbClient.DB())

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		logg.Info(ctx, "admins already provisioned, skipping bootstrap")
		return nil
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		email = "admin@svsdigitals.in"
	}

	tempPassword, err := security.GenerateTempPassword(16)
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	hash, err := security.HashPassword(tempPassword, cfg.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
	}
	if err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logg.Info(logg.WithFields(ctx, map[string]any{"email": email}), "bootstrap admin created")
	fmt.Println("bootstrap admin email:", email)
	fmt.Println("bootstrap admin password:", tempPassword)
	fmt.Println("change this password after the first login")
	return nil
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
