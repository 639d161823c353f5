package cart

import (
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
)

// Customization captures the print options chosen for one line. The
// quantity field is a display override from the detail page; the
// authoritative quantity lives on the line itself.
type Customization struct {
	Size       string `json:"size,omitempty"`
	Paper      string `json:"paper,omitempty"`
	Finishing  string `json:"finishing,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	CustomText string `json:"custom_text,omitempty"`
	DesignFile string `json:"design_file,omitempty"`
}

// ProductSnapshot freezes the catalog fields a cart line depends on.
// Catalog edits after the add never touch existing lines.
type ProductSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PricePaise  int64  `json:"price_paise"`
	MinQuantity int    `json:"min_quantity"`
	Unit        string `json:"unit,omitempty"`
	Image       string `json:"image,omitempty"`
}

// LineItem is one product line in the cart.
type LineItem struct {
	Product       ProductSnapshot `json:"product"`
	Quantity      int             `json:"quantity"`
	Customization *Customization  `json:"customization,omitempty"`
}

// SubtotalPaise is the line's extended price.
func (l LineItem) SubtotalPaise() int64 {
	return l.Product.PricePaise * int64(l.Quantity)
}

// Cart holds an ordered set of lines, at most one per product id.
// The core is a plain value with no locking; the service serializes
// access per session.
type Cart struct {
	Items []LineItem `json:"items"`
}

// AddItem merges a listing-page add into the cart: an existing line
// for the product is incremented by the effective quantity, a new
// line is appended at the tail. Custom-quote products never become
// priced lines.
func (c *Cart) AddItem(product *models.Product, quantity int, customization *Customization) error {
	snapshot, eff, err := prepare(product, quantity)
	if err != nil {
		return err
	}

	if idx := c.indexOf(snapshot.ID); idx >= 0 {
		c.Items[idx].Quantity += eff
		if customization != nil {
			c.Items[idx].Customization = customization
		}
		return nil
	}

	c.Items = append(c.Items, LineItem{
		Product:       snapshot,
		Quantity:      eff,
		Customization: customization,
	})
	return nil
}

// SetItem handles the detail-page "add with explicit quantity": an
// existing line has its quantity and customization overwritten in
// place (keeping its position and original snapshot); otherwise the
// line is appended.
func (c *Cart) SetItem(product *models.Product, quantity int, customization *Customization) error {
	snapshot, eff, err := prepare(product, quantity)
	if err != nil {
		return err
	}

	if idx := c.indexOf(snapshot.ID); idx >= 0 {
		c.Items[idx].Quantity = eff
		c.Items[idx].Customization = customization
		return nil
	}

	c.Items = append(c.Items, LineItem{
		Product:       snapshot,
		Quantity:      eff,
		Customization: customization,
	})
	return nil
}

// RemoveItem deletes the line for the product id, preserving the
// order of the rest. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// UpdateQuantity sets the line's quantity exactly; zero or negative
// removes the line. Updating an absent line is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if idx := c.indexOf(productID); idx >= 0 {
		c.Items[idx].Quantity = quantity
	}
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalPaise recomputes the subtotal from the lines on every call.
func (c *Cart) TotalPaise() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.SubtotalPaise()
	}
	return total
}

// ItemCount recomputes the unit count from the lines on every call.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func prepare(product *models.Product, quantity int) (ProductSnapshot, int, error) {
	if product == nil {
		return ProductSnapshot{}, 0, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	if product.CustomQuote {
		return ProductSnapshot{}, 0, pkgerrors.New(pkgerrors.CodeValidation, "custom quote products cannot be added to the cart")
	}

	min := product.EffectiveMinQuantity()
	if quantity <= 0 {
		quantity = 1
	}
	if quantity < min {
		quantity = min
	}

	return ProductSnapshot{
		ID:          product.ID,
		Name:        product.Name,
		PricePaise:  product.PricePaise,
		MinQuantity: min,
		Unit:        product.Unit,
		Image:       product.Image,
	}, quantity, nil
}
