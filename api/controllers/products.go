package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/api/validators"
	"github.com/svsdigitals/printshop-backend/internal/catalog"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
)

// ProductList serves the public storefront listing. Inactive rows
// never appear here.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query, err := parseCatalogQuery(r, false)
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

// ProductDetail resolves a product by id or slug.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		idOrSlug := chi.URLParam(r, "idOrSlug")
		product, err := svc.GetProduct(r.Context(), idOrSlug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func CategoryList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

func parseCatalogQuery(r *http.Request, includeInactive bool) (catalog.ListQuery, error) {
	params, err := validators.ParsePagination(r)
	if err != nil {
		return catalog.ListQuery{}, err
	}

	sort, err := enums.ParseProductSort(validators.QueryString(r, "sort"))
	if err != nil {
		return catalog.ListQuery{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort")
	}

	return catalog.ListQuery{
		Search:          validators.QueryString(r, "q"),
		Category:        validators.QueryString(r, "category"),
		Sort:            sort,
		Pagination:      params,
		IncludeInactive: includeInactive,
	}, nil
}
