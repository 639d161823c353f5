package models

import (
	"time"

	"github.com/svsdigitals/printshop-backend/pkg/enums"
	"github.com/svsdigitals/printshop-backend/pkg/types"
)

// Order is one placed order. Totals are the tax-exclusive cart
// subtotal in paise; items are a frozen snapshot of the cart lines.
type Order struct {
	ID            string              `gorm:"column:id;primaryKey" json:"id"`
	CustomerID    string              `gorm:"column:customer_id;index;not null" json:"customer_id"`
	CustomerName  string              `gorm:"column:customer_name;not null" json:"customer_name"`
	Date          string              `gorm:"column:date;not null" json:"date"`
	TotalPaise    int64               `gorm:"column:total_paise;not null" json:"total_paise"`
	Status        enums.OrderStatus   `gorm:"column:status;not null;default:'Pending'" json:"status"`
	Items         []types.OrderItem   `gorm:"column:items;type:jsonb;serializer:json" json:"items"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null;default:'cash'" json:"payment_method"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
