package types

// QuantityOption is a priced quantity tier on a product detail page,
// e.g. 100 cards for ₹250, 500 for ₹1,000.
type QuantityOption struct {
	Qty        int   `json:"qty"`
	PricePaise int64 `json:"price_paise"`
}

// CustomizationOption describes one configurable aspect of a product
// (paper stock, finishing, size...).
type CustomizationOption struct {
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}
