package controllers

import (
	"net/http"

	"github.com/svsdigitals/printshop-backend/api/responses"
	"github.com/svsdigitals/printshop-backend/internal/customers"
	"github.com/svsdigitals/printshop-backend/internal/orders"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"github.com/svsdigitals/printshop-backend/pkg/money"
)

type dashboardResponse struct {
	RevenuePaise   int64  `json:"revenue_paise"`
	RevenueDisplay string `json:"revenue_display"`
	OrderCount     int64  `json:"order_count"`
	PendingOrders  int64  `json:"pending_orders"`
	CustomerCount  int64  `json:"customer_count"`
}

// AdminDashboard aggregates the back-office landing page counters.
func AdminDashboard(ordersSvc orders.Service, customersSvc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ordersSvc == nil || customersSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard services unavailable"))
			return
		}

		stats, err := ordersSvc.DashboardStats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerCount, err := customersSvc.Count(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dashboardResponse{
			RevenuePaise:   stats.RevenuePaise,
			RevenueDisplay: money.FormatPrice(stats.RevenuePaise),
			OrderCount:     stats.OrderCount,
			PendingOrders:  stats.PendingCount,
			CustomerCount:  customerCount,
		})
	}
}
