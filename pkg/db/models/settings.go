package models

import (
	"time"

	"github.com/svsdigitals/printshop-backend/pkg/types"
)

// SettingsRowID pins the settings table to a single row.
const SettingsRowID = 1

// Settings is the store-wide configuration singleton.
type Settings struct {
	ID                         int                   `gorm:"column:id;primaryKey" json:"-"`
	SiteName                   string                `gorm:"column:site_name;not null" json:"site_name"`
	SupportEmail               string                `gorm:"column:support_email" json:"support_email"`
	Currency                   string                `gorm:"column:currency;not null;default:'INR'" json:"currency"`
	PaymentGateways            types.PaymentGateways `gorm:"column:payment_gateways;type:jsonb;serializer:json" json:"payment_gateways"`
	DefaultShippingRatePaise   int64                 `gorm:"column:default_shipping_rate_paise;not null;default:0" json:"default_shipping_rate_paise"`
	FreeShippingThresholdPaise int64                 `gorm:"column:free_shipping_threshold_paise;not null;default:0" json:"free_shipping_threshold_paise"`
	Contact                    types.ContactInfo     `gorm:"column:contact;type:jsonb;serializer:json" json:"contact"`
	TaxRateBasisPoints         int64                 `gorm:"column:tax_rate_basis_points;not null;default:1800" json:"tax_rate_basis_points"`
	CreatedAt                  time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                  time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
