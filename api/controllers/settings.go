package controllers

import (
	"net/http"

	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/api/validators"
	"github.com/svsdigitals/printshop-backend/internal/settings"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"github.com/svsdigitals/printshop-backend/pkg/types"
)

func AdminSettingsGet(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		current, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, current)
	}
}

type settingsUpdateRequest struct {
	SiteName                   string                `json:"site_name" validate:"required"`
	SupportEmail               string                `json:"support_email" validate:"omitempty,email"`
	Currency                   string                `json:"currency"`
	PaymentGateways            types.PaymentGateways `json:"payment_gateways"`
	DefaultShippingRatePaise   int64                 `json:"default_shipping_rate_paise" validate:"gte=0"`
	FreeShippingThresholdPaise int64                 `json:"free_shipping_threshold_paise" validate:"gte=0"`
	Contact                    types.ContactInfo     `json:"contact"`
	TaxRateBasisPoints         int64                 `json:"tax_rate_basis_points" validate:"gte=0"`
}

func AdminSettingsUpdate(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var body settingsUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), settings.UpdateInput{
			SiteName:                   body.SiteName,
			SupportEmail:               body.SupportEmail,
			Currency:                   body.Currency,
			PaymentGateways:            body.PaymentGateways,
			DefaultShippingRatePaise:   body.DefaultShippingRatePaise,
			FreeShippingThresholdPaise: body.FreeShippingThresholdPaise,
			Contact:                    body.Contact,
			TaxRateBasisPoints:         body.TaxRateBasisPoints,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}
