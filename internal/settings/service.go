package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/types"
	"gorm.io/gorm"
)

type repository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, row *models.Settings) error
	Create(ctx context.Context, row *models.Settings) error
}

// UpdateInput carries the admin-editable settings fields.
type UpdateInput struct {
	SiteName                   string
	SupportEmail               string
	Currency                   string
	PaymentGateways            types.PaymentGateways
	DefaultShippingRatePaise   int64
	FreeShippingThresholdPaise int64
	Contact                    types.ContactInfo
	TaxRateBasisPoints         int64
}

// Service exposes the settings singleton plus the tax rate feed used
// by cart and checkout summaries.
type Service interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, input UpdateInput) (*models.Settings, error)
	TaxRateBasisPoints(ctx context.Context) (int64, error)
	EnsureDefaults(ctx context.Context) (*models.Settings, error)
}

type service struct {
	repo repository
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repo repository
}

// NewService builds a settings service backed by the provided repository.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: params.Repo}, nil
}

// Defaults returns the out-of-the-box shop configuration.
func Defaults() *models.Settings {
	return &models.Settings{
		ID:           models.SettingsRowID,
		SiteName:     "SVS Digitals",
		SupportEmail: "support@svsdigitals.in",
		Currency:     "INR",
		PaymentGateways: types.PaymentGateways{
			Cash: true,
			UPI:  true,
			Card: false,
		},
		Contact: types.ContactInfo{
			Phone:         "+91 98765 43210",
			Email:         "hello@svsdigitals.in",
			Address:       "Shop 12, Main Bazaar Road, Hyderabad",
			BusinessHours: "Mon-Sat 9:30 AM - 8:30 PM",
			WhatsApp:      "+91 98765 43210",
		},
		TaxRateBasisPoints: 1800,
	}
}

// Get returns the singleton, seeding defaults on first read.
func (s *service) Get(ctx context.Context) (*models.Settings, error) {
	row, err := s.repo.Get(ctx)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get settings")
	}
	return s.EnsureDefaults(ctx)
}

// EnsureDefaults inserts the default row when the table is empty.
func (s *service) EnsureDefaults(ctx context.Context) (*models.Settings, error) {
	row, err := s.repo.Get(ctx)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get settings")
	}
	defaults := Defaults()
	if err := s.repo.Create(ctx, defaults); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed settings")
	}
	return defaults, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.Settings, error) {
	if strings.TrimSpace(input.SiteName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "site name is required")
	}
	if input.TaxRateBasisPoints < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tax rate cannot be negative")
	}
	if input.DefaultShippingRatePaise < 0 || input.FreeShippingThresholdPaise < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping amounts cannot be negative")
	}
	row, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	row.SiteName = strings.TrimSpace(input.SiteName)
	row.SupportEmail = strings.TrimSpace(input.SupportEmail)
	if currency := strings.TrimSpace(input.Currency); currency != "" {
		row.Currency = currency
	}
	row.PaymentGateways = input.PaymentGateways
	row.DefaultShippingRatePaise = input.DefaultShippingRatePaise
	row.FreeShippingThresholdPaise = input.FreeShippingThresholdPaise
	row.Contact = input.Contact
	row.TaxRateBasisPoints = input.TaxRateBasisPoints
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update settings")
	}
	return row, nil
}

// TaxRateBasisPoints feeds cart and checkout summaries.
func (s *service) TaxRateBasisPoints(ctx context.Context) (int64, error) {
	row, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return row.TaxRateBasisPoints, nil
}
