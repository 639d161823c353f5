package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/api/validators"
	"github.com/svsdigitals/printshop-backend/internal/orders"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
)

func AdminOrderList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		query, err := parseOrderQuery(r)
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

func AdminOrderDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		order, err := svc.Get(r.Context(), chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateOrderStatus moves an order along its lifecycle. Terminal
// orders reject further transitions.
func AdminUpdateOrderStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var body orderStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		order, err := svc.SetStatus(r.Context(), chi.URLParam(r, "orderId"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

func AdminDeleteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "orderId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func parseOrderQuery(r *http.Request) (orders.ListQuery, error) {
	params, err := validators.ParsePagination(r)
	if err != nil {
		return orders.ListQuery{}, err
	}

	query := orders.ListQuery{
		Search:     validators.QueryString(r, "q"),
		DateFrom:   validators.QueryString(r, "dateFrom"),
		DateTo:     validators.QueryString(r, "dateTo"),
		Pagination: params,
	}

	if raw := validators.QueryString(r, "status"); raw != "" {
		status, err := enums.ParseOrderStatus(raw)
		if err != nil {
			return orders.ListQuery{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		query.Status = status
	}

	if query.MinTotalPaise, err = validators.ParseQueryPaise(r, "minTotal"); err != nil {
		return orders.ListQuery{}, err
	}
	if query.MaxTotalPaise, err = validators.ParseQueryPaise(r, "maxTotal"); err != nil {
		return orders.ListQuery{}, err
	}

	switch sort := validators.QueryString(r, "sort"); sort {
	case "", string(orders.SortDateDesc):
		query.Sort = orders.SortDateDesc
	case string(orders.SortDateAsc), string(orders.SortTotalDesc), string(orders.SortTotalAsc):
		query.Sort = orders.Sort(sort)
	default:
		return orders.ListQuery{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid sort").WithDetails(map[string]any{"sort": sort})
	}

	return query, nil
}
