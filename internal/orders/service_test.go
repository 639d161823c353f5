package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"github.com/svsdigitals/printshop-backend/pkg/pagination"
	"github.com/svsdigitals/printshop-backend/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:orders_%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func mustCreateOrder(t *testing.T, repo *Repository, order models.Order) *models.Order {
	t.Helper()
	if order.Status == "" {
		order.Status = enums.OrderStatusPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = enums.PaymentMethodCash
	}
	if order.Items == nil {
		order.Items = []types.OrderItem{{ID: "1", Name: "Business Cards", Quantity: 1, PricePaise: order.TotalPaise}}
	}
	if err := repo.Create(context.Background(), &order); err != nil {
		t.Fatalf("create order %s: %v", order.ID, err)
	}
	return &order
}

func seedOrders(t *testing.T, repo *Repository) {
	t.Helper()
	mustCreateOrder(t, repo, models.Order{
		ID: "ORD-1", CustomerID: "CUST-1", CustomerName: "Priya Sharma",
		Date: "2026-08-01", TotalPaise: 35000,
	})
	mustCreateOrder(t, repo, models.Order{
		ID: "ORD-2", CustomerID: "CUST-2", CustomerName: "Arun Rao",
		Date: "2026-08-10", TotalPaise: 150000, Status: enums.OrderStatusShipped,
	})
	mustCreateOrder(t, repo, models.Order{
		ID: "ORD-3", CustomerID: "CUST-1", CustomerName: "Priya Sharma",
		Date: "2026-08-20", TotalPaise: 4000, Status: enums.OrderStatusCompleted,
	})
}

func newTestOrderService(t *testing.T, repo *Repository) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func orderIDs(result *ListResult) []string {
	ids := make([]string, 0, len(result.Items))
	for _, row := range result.Items {
		ids = append(ids, row.ID)
	}
	return ids
}

func assertCode(t *testing.T, err error, want pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != want {
		t.Fatalf("error = %v, want code %s", err, want)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	seedOrders(t, repo)
	svc := newTestOrderService(t, repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{name: "search by id", query: ListQuery{Search: "ord-2"}, want: []string{"ORD-2"}},
		{name: "search by customer", query: ListQuery{Search: "priya"}, want: []string{"ORD-3", "ORD-1"}},
		{name: "search by status", query: ListQuery{Search: "shipped"}, want: []string{"ORD-2"}},
		{name: "status filter", query: ListQuery{Status: enums.OrderStatusCompleted}, want: []string{"ORD-3"}},
		{name: "min total", query: ListQuery{MinTotalPaise: paisePtr(100000)}, want: []string{"ORD-2"}},
		{name: "max total", query: ListQuery{MaxTotalPaise: paisePtr(35000)}, want: []string{"ORD-3", "ORD-1"}},
		{name: "date range", query: ListQuery{DateFrom: "2026-08-05", DateTo: "2026-08-15"}, want: []string{"ORD-2"}},
	}
	for _, tc := range cases {
		result, err := svc.List(ctx, tc.query)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		got := orderIDs(result)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}

func paisePtr(v int64) *int64 {
	return &v
}

func TestListSortsAndPaginates(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	seedOrders(t, repo)
	svc := newTestOrderService(t, repo)
	ctx := context.Background()

	newest, err := svc.List(ctx, ListQuery{})
	if err != nil {
		t.Fatalf("default sort: %v", err)
	}
	if got := orderIDs(newest); got[0] != "ORD-3" || got[2] != "ORD-1" {
		t.Fatalf("date desc = %v", got)
	}

	byTotal, err := svc.List(ctx, ListQuery{Sort: SortTotalDesc})
	if err != nil {
		t.Fatalf("total sort: %v", err)
	}
	if got := orderIDs(byTotal); got[0] != "ORD-2" || got[2] != "ORD-3" {
		t.Fatalf("total desc = %v", got)
	}

	page, err := svc.List(ctx, ListQuery{Pagination: pagination.Params{Page: 2, Limit: 2}})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page.Items) != 1 || page.Meta.TotalItems != 3 || page.Meta.TotalPages != 2 {
		t.Fatalf("page = %d rows, meta %+v", len(page.Items), page.Meta)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	seedOrders(t, repo)
	svc := newTestOrderService(t, repo)
	ctx := context.Background()

	updated, err := svc.SetStatus(ctx, "ORD-1", enums.OrderStatusShipped)
	if err != nil {
		t.Fatalf("pending to shipped: %v", err)
	}
	if updated.Status != enums.OrderStatusShipped {
		t.Fatalf("status = %s", updated.Status)
	}

	if _, err := svc.SetStatus(ctx, "ORD-1", enums.OrderStatusCompleted); err != nil {
		t.Fatalf("shipped to completed: %v", err)
	}

	_, err = svc.SetStatus(ctx, "ORD-1", enums.OrderStatusPending)
	assertCode(t, err, pkgerrors.CodeStateConflict)

	_, err = svc.SetStatus(ctx, "ORD-3", enums.OrderStatusShipped)
	assertCode(t, err, pkgerrors.CodeStateConflict)

	_, err = svc.SetStatus(ctx, "ORD-2", enums.OrderStatus("Lost"))
	assertCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.SetStatus(ctx, "ORD-404", enums.OrderStatusShipped)
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteOrder(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	seedOrders(t, repo)
	svc := newTestOrderService(t, repo)
	ctx := context.Background()

	if err := svc.Delete(ctx, "ORD-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	assertCode(t, svc.Delete(ctx, "ORD-1"), pkgerrors.CodeNotFound)

	_, err := svc.Get(ctx, "ORD-1")
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestDashboardStats(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	seedOrders(t, repo)
	svc := newTestOrderService(t, repo)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.RevenuePaise != 189000 {
		t.Fatalf("revenue = %d, want 189000", stats.RevenuePaise)
	}
	if stats.OrderCount != 3 || stats.PendingCount != 1 {
		t.Fatalf("counts = %d/%d", stats.OrderCount, stats.PendingCount)
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	created := mustCreateOrder(t, repo, models.Order{
		ID: "ORD-9", CustomerID: "CUST-9", CustomerName: "Meera Iyer",
		Date: "2026-08-25", TotalPaise: 25000,
		Items: []types.OrderItem{
			{ID: "1", Name: "Business Cards", Quantity: 2, PricePaise: 10000},
			{ID: "3", Name: "Letterheads", Quantity: 1, PricePaise: 5000},
		},
	})

	reloaded, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Items) != 2 || reloaded.Items[0].Name != "Business Cards" || reloaded.Items[1].Quantity != 1 {
		t.Fatalf("items = %+v", reloaded.Items)
	}
}
