package controllers

import (
	"net/http"
	"strings"

	"github.com/svsdigitals/printshop-backend/api/middleware"
	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/api/validators"
	"github.com/svsdigitals/printshop-backend/internal/checkout"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
)

type checkoutRequest struct {
	Customer      checkoutCustomerReq `json:"customer" validate:"required"`
	PaymentMethod string              `json:"payment_method"`
	BuyNow        *checkoutBuyNowReq  `json:"buy_now,omitempty"`
}

type checkoutCustomerReq struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"required"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type checkoutBuyNowReq struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=0"`
}

func (r checkoutRequest) toInput() (checkout.PlaceOrderInput, error) {
	input := checkout.PlaceOrderInput{
		Customer: checkout.CustomerDetails{
			Name:   strings.TrimSpace(r.Customer.Name),
			Email:  strings.TrimSpace(r.Customer.Email),
			Phone:  strings.TrimSpace(r.Customer.Phone),
			Street: strings.TrimSpace(r.Customer.Street),
			City:   strings.TrimSpace(r.Customer.City),
			State:  strings.TrimSpace(r.Customer.State),
			Zip:    strings.TrimSpace(r.Customer.Zip),
		},
	}

	if raw := strings.TrimSpace(r.PaymentMethod); raw != "" {
		method, err := enums.ParsePaymentMethod(raw)
		if err != nil {
			return checkout.PlaceOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
		}
		input.PaymentMethod = method
	}

	if r.BuyNow != nil {
		input.BuyNow = &checkout.BuyNowItem{
			ProductID: r.BuyNow.ProductID,
			Quantity:  r.BuyNow.Quantity,
		}
	}

	return input, nil
}

// Checkout places an order from the session cart, or from a single
// buy-now line when the request carries one.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.PlaceOrder(r.Context(), sessionID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}

// CartSummary quotes the session cart with tax, without touching it.
func CartSummary(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.CartSessionFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		quote, err := svc.Quote(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
