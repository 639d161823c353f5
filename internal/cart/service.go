package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/money"
	"gorm.io/gorm"
)

type productLoader interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

type taxRateSource interface {
	TaxRateBasisPoints(ctx context.Context) (int64, error)
}

type cartStore interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// SummaryView is the priced breakdown shown on the order-summary
// screen, with display strings precomputed server-side.
type SummaryView struct {
	SubtotalPaise     int64  `json:"subtotal_paise"`
	TaxPaise          int64  `json:"tax_paise"`
	GrandTotalPaise   int64  `json:"grand_total_paise"`
	SubtotalDisplay   string `json:"subtotal_display"`
	TaxDisplay        string `json:"tax_display"`
	GrandTotalDisplay string `json:"grand_total_display"`
}

// View is the cart state returned to the shopper after every read or
// mutation.
type View struct {
	Items        []LineItem  `json:"items"`
	ItemCount    int         `json:"item_count"`
	TotalPaise   int64       `json:"total_paise"`
	TotalDisplay string      `json:"total_display"`
	Summary      SummaryView `json:"summary"`
}

// Service exposes the session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	Add(ctx context.Context, sessionID, productID string, quantity int, customization *Customization) (*View, error)
	Set(ctx context.Context, sessionID, productID string, quantity int, customization *Customization) (*View, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*View, error)
	Remove(ctx context.Context, sessionID, productID string) (*View, error)
	Clear(ctx context.Context, sessionID string) (*View, error)
}

type service struct {
	store    cartStore
	products productLoader
	taxRates taxRateSource

	// serializes load-modify-save per session
	locks sync.Map
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Store    cartStore
	Products productLoader
	TaxRates taxRateSource
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if params.TaxRates == nil {
		return nil, fmt.Errorf("tax rate source required")
	}
	return &service{
		store:    params.Store,
		products: params.Products,
		taxRates: params.TaxRates,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return s.buildView(ctx, cart)
}

func (s *service) Add(ctx context.Context, sessionID, productID string, quantity int, customization *Customization) (*View, error) {
	return s.mutate(ctx, sessionID, func(cart *Cart) error {
		product, err := s.loadProduct(ctx, productID)
		if err != nil {
			return err
		}
		return cart.AddItem(product, quantity, customization)
	})
}

func (s *service) Set(ctx context.Context, sessionID, productID string, quantity int, customization *Customization) (*View, error) {
	return s.mutate(ctx, sessionID, func(cart *Cart) error {
		product, err := s.loadProduct(ctx, productID)
		if err != nil {
			return err
		}
		return cart.SetItem(product, quantity, customization)
	})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*View, error) {
	return s.mutate(ctx, sessionID, func(cart *Cart) error {
		cart.UpdateQuantity(productID, quantity)
		return nil
	})
}

func (s *service) Remove(ctx context.Context, sessionID, productID string) (*View, error) {
	return s.mutate(ctx, sessionID, func(cart *Cart) error {
		cart.RemoveItem(productID)
		return nil
	})
}

func (s *service) Clear(ctx context.Context, sessionID string) (*View, error) {
	return s.mutate(ctx, sessionID, func(cart *Cart) error {
		cart.Clear()
		return nil
	})
}

func (s *service) mutate(ctx context.Context, sessionID string, fn func(cart *Cart) error) (*View, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}

	return s.buildView(ctx, cart)
}

func (s *service) loadProduct(ctx context.Context, productID string) (*models.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}
	return product, nil
}

func (s *service) buildView(ctx context.Context, cart *Cart) (*View, error) {
	rate, err := s.taxRates.TaxRateBasisPoints(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tax rate")
	}

	subtotal := cart.TotalPaise()
	summary := money.Summarize(subtotal, rate)

	items := cart.Items
	if items == nil {
		items = []LineItem{}
	}

	return &View{
		Items:        items,
		ItemCount:    cart.ItemCount(),
		TotalPaise:   subtotal,
		TotalDisplay: money.FormatPrice(subtotal),
		Summary: SummaryView{
			SubtotalPaise:     summary.SubtotalPaise,
			TaxPaise:          summary.TaxPaise,
			GrandTotalPaise:   summary.GrandTotalPaise,
			SubtotalDisplay:   money.FormatPrice(summary.SubtotalPaise),
			TaxDisplay:        money.FormatPrice(summary.TaxPaise),
			GrandTotalDisplay: money.FormatPrice(summary.GrandTotalPaise),
		},
	}, nil
}

func (s *service) sessionLock(sessionID string) *sync.Mutex {
	actual, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session id is required")
	}
	return nil
}
