package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"gorm.io/gorm"
)

type repository interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	RefreshSeedProduct(ctx context.Context, existing *models.Product, seed *models.Product) error
	CategoryNameExists(ctx context.Context, name string) (bool, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

// Result summarizes one reconciliation run.
type Result struct {
	Inserted  int
	Refreshed int
	Skipped   int
}

// Reconciler merges the built-in catalog into the store. It inserts
// rows that are absent and refreshes rows the shop never touched. A
// row is off limits once an admin owns it: source changed, fields
// edited after creation, or soft-deleted.
type Reconciler struct {
	repo repository
	logg *logger.Logger
}

// NewReconciler builds a reconciler over the provided repository.
func NewReconciler(repo repository, logg *logger.Logger) (*Reconciler, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &Reconciler{repo: repo, logg: logg}, nil
}

// Run reconciles seed categories and products against the store.
func (r *Reconciler) Run(ctx context.Context) (Result, error) {
	var result Result

	for _, name := range CategoryNames {
		exists, err := r.repo.CategoryNameExists(ctx, name)
		if err != nil {
			return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check seed category")
		}
		if exists {
			continue
		}
		category := &models.Category{ID: uuid.New(), Name: name}
		if err := r.repo.CreateCategory(ctx, category); err != nil {
			return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert seed category")
		}
	}

	for _, row := range Products() {
		seedRow := row
		existing, err := r.repo.FindByID(ctx, seedRow.ID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.repo.CreateProduct(ctx, &seedRow); err != nil {
				return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
					fmt.Sprintf("insert seed product %s", seedRow.ID))
			}
			result.Inserted++
		case err != nil:
			return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
				fmt.Sprintf("load seed product %s", seedRow.ID))
		case existing.Source != enums.ProductSourceSeed,
			!existing.IsActive,
			existing.UpdatedAt.After(existing.CreatedAt):
			result.Skipped++
		default:
			if err := r.repo.RefreshSeedProduct(ctx, existing, &seedRow); err != nil {
				return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err,
					fmt.Sprintf("refresh seed product %s", seedRow.ID))
			}
			result.Refreshed++
		}
	}

	if r.logg != nil {
		r.logg.Info(r.logg.WithFields(ctx, map[string]any{
			"inserted":  result.Inserted,
			"refreshed": result.Refreshed,
			"skipped":   result.Skipped,
		}), "seed catalog reconciled")
	}
	return result, nil
}
