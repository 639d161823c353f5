package settings

import (
	"context"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository wires the settings singleton persistence.
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

// Get loads the singleton row.
func (r *Repository) Get(ctx context.Context) (*models.Settings, error) {
	var row models.Settings
	if err := r.db.WithContext(ctx).First(&row, "id = ?", models.SettingsRowID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Save writes the singleton row.
func (r *Repository) Save(ctx context.Context, row *models.Settings) error {
	row.ID = models.SettingsRowID
	return r.db.WithContext(ctx).Save(row).Error
}

// Create inserts the singleton row.
func (r *Repository) Create(ctx context.Context, row *models.Settings) error {
	row.ID = models.SettingsRowID
	return r.db.WithContext(ctx).Create(row).Error
}
