package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/api/validators"
	"github.com/svsdigitals/printshop-backend/internal/customers"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
)

func AdminCustomerList(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		query, err := parseCustomerQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func AdminCustomerDetail(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		customer, err := svc.Get(r.Context(), chi.URLParam(r, "customerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, customer)
	}
}

type customerUpdateRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// AdminUpdateCustomer edits profile fields. Lifetime spend and order
// counters only move through checkout.
func AdminUpdateCustomer(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		var body customerUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := svc.Update(r.Context(), chi.URLParam(r, "customerId"), customers.UpdateInput{
			Name:   body.Name,
			Email:  body.Email,
			Phone:  body.Phone,
			Street: body.Street,
			City:   body.City,
			State:  body.State,
			Zip:    body.Zip,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, customer)
	}
}

func AdminDeleteCustomer(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "customerId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func parseCustomerQuery(r *http.Request) (customers.ListQuery, error) {
	params, err := validators.ParsePagination(r)
	if err != nil {
		return customers.ListQuery{}, err
	}

	query := customers.ListQuery{
		Search:     validators.QueryString(r, "q"),
		Pagination: params,
	}

	if raw := validators.QueryString(r, "segment"); raw != "" {
		segment, err := enums.ParseCustomerSegment(raw)
		if err != nil {
			return customers.ListQuery{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid segment")
		}
		query.Segment = segment
	}

	switch sort := validators.QueryString(r, "sort"); sort {
	case "", string(customers.SortNameAsc):
		query.Sort = customers.SortNameAsc
	case string(customers.SortSpentDesc), string(customers.SortOrdersDesc), string(customers.SortNewestFirst):
		query.Sort = customers.Sort(sort)
	default:
		return customers.ListQuery{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid sort").WithDetails(map[string]any{"sort": sort})
	}

	return query, nil
}
