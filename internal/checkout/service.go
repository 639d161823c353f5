package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/svsdigitals/printshop-backend/internal/cart"
	"github.com/svsdigitals/printshop-backend/internal/customers"
	"github.com/svsdigitals/printshop-backend/internal/orders"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"github.com/svsdigitals/printshop-backend/pkg/money"
	"github.com/svsdigitals/printshop-backend/pkg/types"
	"gorm.io/gorm"
)

type cartSource interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Delete(ctx context.Context, sessionID string) error
}

type productLoader interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

type taxRateSource interface {
	TaxRateBasisPoints(ctx context.Context) (int64, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CustomerDetails is the shopper contact block captured at checkout.
type CustomerDetails struct {
	Name   string
	Email  string
	Phone  string
	Street string
	City   string
	State  string
	Zip    string
}

// BuyNowItem is the single-product fast path that bypasses the cart.
type BuyNowItem struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput carries everything needed to turn a cart (or a
// buy-now line) into an order.
type PlaceOrderInput struct {
	Customer      CustomerDetails
	PaymentMethod enums.PaymentMethod
	BuyNow        *BuyNowItem
}

// Quote is the priced order-summary view shown before placing.
type Quote struct {
	Items             []cart.LineItem `json:"items"`
	ItemCount         int             `json:"item_count"`
	Summary           money.Summary   `json:"summary"`
	SubtotalDisplay   string          `json:"subtotal_display"`
	TaxDisplay        string          `json:"tax_display"`
	GrandTotalDisplay string          `json:"grand_total_display"`
}

// Confirmation is returned once the order row is committed.
type Confirmation struct {
	Order        *models.Order `json:"order"`
	Summary      money.Summary `json:"summary"`
	TotalDisplay string        `json:"total_display"`
}

// Service exposes the checkout operations.
type Service interface {
	Quote(ctx context.Context, sessionID string) (*Quote, error)
	PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*Confirmation, error)
}

type service struct {
	carts     cartSource
	products  productLoader
	taxRates  taxRateSource
	tx        txRunner
	orders    *orders.Repository
	customers *customers.Repository
	logg      *logger.Logger

	now func() time.Time
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Carts     cartSource
	Products  productLoader
	TaxRates  taxRateSource
	Tx        txRunner
	Orders    *orders.Repository
	Customers *customers.Repository
	Logger    *logger.Logger
}

// NewService builds a checkout service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart source required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if params.TaxRates == nil {
		return nil, fmt.Errorf("tax rate source required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{
		carts:     params.Carts,
		products:  params.Products,
		taxRates:  params.TaxRates,
		tx:        params.Tx,
		orders:    params.Orders,
		customers: params.Customers,
		logg:      params.Logger,
		now:       time.Now,
	}, nil
}

func (s *service) Quote(ctx context.Context, sessionID string) (*Quote, error) {
	loaded, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	summary, err := s.summarize(ctx, loaded.TotalPaise())
	if err != nil {
		return nil, err
	}
	return &Quote{
		Items:             loaded.Items,
		ItemCount:         loaded.ItemCount(),
		Summary:           *summary,
		SubtotalDisplay:   money.FormatPrice(summary.SubtotalPaise),
		TaxDisplay:        money.FormatPrice(summary.TaxPaise),
		GrandTotalDisplay: money.FormatPrice(summary.GrandTotalPaise),
	}, nil
}

// PlaceOrder writes the customer upsert and the order row in one
// transaction. The cart snapshot is only dropped once that commit
// succeeds, so a failed order never empties the shopper's cart.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*Confirmation, error) {
	if err := validateDetails(input.Customer); err != nil {
		return nil, err
	}
	method := input.PaymentMethod
	if method == "" {
		method = enums.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	checkedOut, fromCart, err := s.collectLines(ctx, sessionID, input.BuyNow)
	if err != nil {
		return nil, err
	}

	subtotal := checkedOut.TotalPaise()
	summary, err := s.summarize(ctx, subtotal)
	if err != nil {
		return nil, err
	}

	now := s.now()
	customerID := customerIDFromPhone(input.Customer.Phone, now)
	order := &models.Order{
		ID:            fmt.Sprintf("ORD-%d", now.UnixMilli()),
		CustomerID:    customerID,
		CustomerName:  strings.TrimSpace(input.Customer.Name),
		Date:          now.Format("2006-01-02"),
		TotalPaise:    subtotal,
		Status:        enums.OrderStatusPending,
		Items:         orderItems(checkedOut),
		PaymentMethod: method,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.upsertCustomer(ctx, tx, customerID, input.Customer, subtotal); err != nil {
			return err
		}
		return s.orders.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "place order")
	}

	if fromCart {
		if err := s.carts.Delete(ctx, sessionID); err != nil && s.logg != nil {
			s.logg.Warn(
				s.logg.WithCartSession(s.logg.WithField(ctx, "order_id", order.ID), sessionID),
				"cart snapshot not cleared after order commit",
			)
		}
	}

	return &Confirmation{
		Order:        order,
		Summary:      *summary,
		TotalDisplay: money.FormatPrice(summary.GrandTotalPaise),
	}, nil
}

// collectLines resolves what is being bought: the session cart, or a
// single buy-now line that never touches the cart.
func (s *service) collectLines(ctx context.Context, sessionID string, buyNow *BuyNowItem) (*cart.Cart, bool, error) {
	if buyNow != nil {
		product, err := s.products.GetByID(ctx, buyNow.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !product.IsActive {
			return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "product is no longer available")
		}
		single := &cart.Cart{}
		if err := single.AddItem(product, buyNow.Quantity, nil); err != nil {
			return nil, false, err
		}
		return single, false, nil
	}

	loaded, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if len(loaded.Items) == 0 {
		return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	return loaded, true, nil
}

func (s *service) upsertCustomer(ctx context.Context, tx *gorm.DB, id string, details CustomerDetails, spentPaise int64) error {
	repo := s.customers.WithTx(tx)
	profile := &models.Customer{
		ID:     id,
		Name:   strings.TrimSpace(details.Name),
		Email:  strings.TrimSpace(details.Email),
		Phone:  strings.TrimSpace(details.Phone),
		Street: details.Street,
		City:   details.City,
		State:  details.State,
		Zip:    details.Zip,
	}
	err := repo.Accumulate(ctx, profile, spentPaise, 1)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	profile.TotalSpentPaise = spentPaise
	profile.TotalOrders = 1
	return repo.Create(ctx, profile)
}

func (s *service) summarize(ctx context.Context, subtotalPaise int64) (*money.Summary, error) {
	rate, err := s.taxRates.TaxRateBasisPoints(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tax rate")
	}
	summary := money.Summarize(subtotalPaise, rate)
	return &summary, nil
}

func orderItems(c *cart.Cart) []types.OrderItem {
	items := make([]types.OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, types.OrderItem{
			ID:         line.Product.ID,
			Name:       line.Product.Name,
			Quantity:   line.Quantity,
			PricePaise: line.Product.PricePaise,
		})
	}
	return items
}

func validateDetails(details CustomerDetails) error {
	if strings.TrimSpace(details.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(details.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer phone is required")
	}
	return nil
}

// customerIDFromPhone keys repeat shoppers by their phone digits, with
// a timestamp fallback when the phone carries no digits at all.
func customerIDFromPhone(phone string, now time.Time) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return fmt.Sprintf("CUST-%d", now.UnixMilli())
	}
	return "CUST-" + digits.String()
}
