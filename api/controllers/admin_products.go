package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/api/validators"
	"github.com/svsdigitals/printshop-backend/internal/catalog"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"github.com/svsdigitals/printshop-backend/pkg/types"
)

type productRequest struct {
	Name                 string                      `json:"name" validate:"required"`
	Description          string                      `json:"description"`
	PricePaise           int64                       `json:"price_paise" validate:"gte=0"`
	OriginalPricePaise   *int64                      `json:"original_price_paise,omitempty" validate:"omitempty,gte=0"`
	Category             string                      `json:"category" validate:"required"`
	Image                string                      `json:"image"`
	Images               []string                    `json:"images,omitempty"`
	Features             []string                    `json:"features,omitempty"`
	Customizable         bool                        `json:"customizable"`
	BestSeller           bool                        `json:"best_seller"`
	CustomQuote          bool                        `json:"custom_quote"`
	DeliveryTime         string                      `json:"delivery_time"`
	Unit                 string                      `json:"unit"`
	MinQuantity          int                         `json:"min_quantity" validate:"omitempty,gte=0"`
	QuantityOptions      []quantityOptionReq         `json:"quantity_options,omitempty"`
	CustomizationOptions []customizationOptionReq    `json:"customization_options,omitempty"`
	WhatsappNumber       *string                     `json:"whatsapp_number,omitempty"`
	DesignLink           *string                     `json:"design_link,omitempty"`
}

type quantityOptionReq struct {
	Qty        int   `json:"qty" validate:"required,min=1"`
	PricePaise int64 `json:"price_paise" validate:"gte=0"`
}

type customizationOptionReq struct {
	Label   string   `json:"label" validate:"required"`
	Type    string   `json:"type" validate:"required"`
	Options []string `json:"options,omitempty"`
}

func (r productRequest) toInput() catalog.ProductInput {
	quantityOptions := make([]types.QuantityOption, 0, len(r.QuantityOptions))
	for _, opt := range r.QuantityOptions {
		quantityOptions = append(quantityOptions, types.QuantityOption{Qty: opt.Qty, PricePaise: opt.PricePaise})
	}
	customizationOptions := make([]types.CustomizationOption, 0, len(r.CustomizationOptions))
	for _, opt := range r.CustomizationOptions {
		customizationOptions = append(customizationOptions, types.CustomizationOption{Label: opt.Label, Type: opt.Type, Options: opt.Options})
	}

	return catalog.ProductInput{
		Name:                 strings.TrimSpace(r.Name),
		Description:          strings.TrimSpace(r.Description),
		PricePaise:           r.PricePaise,
		OriginalPricePaise:   r.OriginalPricePaise,
		Category:             strings.TrimSpace(r.Category),
		Image:                strings.TrimSpace(r.Image),
		Images:               r.Images,
		Features:             r.Features,
		Customizable:         r.Customizable,
		BestSeller:           r.BestSeller,
		CustomQuote:          r.CustomQuote,
		DeliveryTime:         strings.TrimSpace(r.DeliveryTime),
		Unit:                 strings.TrimSpace(r.Unit),
		MinQuantity:          r.MinQuantity,
		QuantityOptions:      quantityOptions,
		CustomizationOptions: customizationOptions,
		WhatsappNumber:       r.WhatsappNumber,
		DesignLink:           r.DesignLink,
	}
}

// AdminProductList includes inactive rows so the back office can see
// retired products.
func AdminProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query, err := parseCatalogQuery(r, true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListProducts(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body productRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body productRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), chi.URLParam(r, "productId"), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct deactivates a product; the row survives so
// existing order snapshots keep resolving.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func AdminCreateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body categoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.CreateCategory(r.Context(), body.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

func AdminRenameCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "categoryId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		var body categoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.RenameCategory(r.Context(), id, body.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

func AdminDeleteCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "categoryId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		if err := svc.DeleteCategory(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
