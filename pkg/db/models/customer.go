package models

import "time"

// Customer accumulates lifetime spend/order counters across checkouts.
// IDs derive from the phone number so repeat shoppers collapse into
// one row.
type Customer struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	Email           string    `gorm:"column:email;index" json:"email"`
	Phone           string    `gorm:"column:phone;index" json:"phone"`
	Street          string    `gorm:"column:street" json:"street"`
	City            string    `gorm:"column:city" json:"city"`
	State           string    `gorm:"column:state" json:"state"`
	Zip             string    `gorm:"column:zip" json:"zip"`
	TotalSpentPaise int64     `gorm:"column:total_spent_paise;not null;default:0" json:"total_spent_paise"`
	TotalOrders     int       `gorm:"column:total_orders;not null;default:0" json:"total_orders"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
