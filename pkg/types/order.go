package types

// OrderItem is the denormalized line payload stored on an order.
// Catalog edits after checkout never change it.
type OrderItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PricePaise int64  `json:"price_paise"`
}
