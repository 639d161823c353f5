package models

import (
	"time"

	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"github.com/svsdigitals/printshop-backend/pkg/types"
)

// Product represents one catalog listing. IDs are stable external
// strings: seed rows keep their original numeric ids, admin-created
// rows get uuids.
type Product struct {
	ID                   string                      `gorm:"column:id;primaryKey" json:"id"`
	Slug                 string                      `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name                 string                      `gorm:"column:name;not null" json:"name"`
	Description          string                      `gorm:"column:description" json:"description"`
	PricePaise           int64                       `gorm:"column:price_paise;not null;default:0" json:"price_paise"`
	OriginalPricePaise   *int64                      `gorm:"column:original_price_paise" json:"original_price_paise,omitempty"`
	Category             string                      `gorm:"column:category;not null" json:"category"`
	Image                string                      `gorm:"column:image" json:"image"`
	Images               []string                    `gorm:"column:images;type:jsonb;serializer:json" json:"images,omitempty"`
	Features             []string                    `gorm:"column:features;type:jsonb;serializer:json" json:"features,omitempty"`
	Customizable         bool                        `gorm:"column:customizable;not null;default:false" json:"customizable"`
	BestSeller           bool                        `gorm:"column:best_seller;not null;default:false" json:"best_seller"`
	CustomQuote          bool                        `gorm:"column:custom_quote;not null;default:false" json:"custom_quote"`
	DeliveryTime         string                      `gorm:"column:delivery_time" json:"delivery_time"`
	Unit                 string                      `gorm:"column:unit" json:"unit"`
	MinQuantity          int                         `gorm:"column:min_quantity;not null;default:1" json:"min_quantity"`
	QuantityOptions      []types.QuantityOption      `gorm:"column:quantity_options;type:jsonb;serializer:json" json:"quantity_options,omitempty"`
	CustomizationOptions []types.CustomizationOption `gorm:"column:customization_options;type:jsonb;serializer:json" json:"customization_options,omitempty"`
	WhatsappNumber       *string                     `gorm:"column:whatsapp_number" json:"whatsapp_number,omitempty"`
	DesignLink           *string                     `gorm:"column:design_link" json:"design_link,omitempty"`
	IsActive             bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Source               enums.ProductSource         `gorm:"column:source;not null;default:'admin'" json:"source"`
	CreatedAt            time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// EffectiveMinQuantity normalizes legacy rows where min_quantity was
// never set.
func (p *Product) EffectiveMinQuantity() int {
	if p.MinQuantity < 1 {
		return 1
	}
	return p.MinQuantity
}
