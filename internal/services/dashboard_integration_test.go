package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	dashrepo "github.com/vendora/vendora-backend/internal/data/repos/dashboard"
	orderrepo "github.com/vendora/vendora-backend/internal/data/repos/orders"
	"github.com/vendora/vendora-backend/internal/data/repos/testutil"
	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
)

func newDashboardFixture(t *testing.T) (DashboardService, *gorm.DB, context.Context) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	svc := NewDashboardService(
		log,
		catalogrepo.NewStoreRepo(tx, log),
		catalogrepo.NewProductRepo(tx, log),
		orderrepo.NewOrderRepo(tx, log),
		dashrepo.NewDashboardRepo(tx, log),
		nil,
		time.Minute,
	)
	return svc, tx, context.Background()
}

func TestTopProductsResolvesNames(t *testing.T) {
	svc, tx, ctx := newDashboardFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "dash-svc-top@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)
	hot := testutil.SeedProduct(t, ctx, tx, store.ID, 10, 50)
	cold := testutil.SeedProduct(t, ctx, tx, store.ID, 40, 50)

	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: hot.ID, Quantity: 6, Price: 10},
		types.OrderItem{ProductID: cold.ID, Quantity: 1, Price: 40})

	views, err := svc.TopProducts(ctx, vendor.ID, 1)
	if err != nil {
		t.Fatalf("top products: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	if views[0].ProductID != hot.ID || views[0].Name != hot.Name || views[0].TotalSold != 6 {
		t.Fatalf("unexpected top product: %+v", views[0])
	}
}

func TestRecentOrdersProjection(t *testing.T) {
	svc, tx, ctx := newDashboardFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "dash-svc-recent@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)
	for i := 0; i < 3; i++ {
		testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusPending,
			types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: float64(i + 1)})
	}

	orders, err := svc.RecentOrders(ctx, vendor.ID, 2)
	if err != nil {
		t.Fatalf("recent orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].CustomerName == "" || orders[0].Status == "" {
		t.Fatalf("projection incomplete: %+v", orders[0])
	}
}

func TestSalesChartBucketsCompletedOnly(t *testing.T) {
	svc, tx, ctx := newDashboardFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "dash-svc-chart@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)

	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 30})
	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: uuid.New(), Quantity: 2, Price: 10})
	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusPending,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 999})

	chart, err := svc.SalesChart(ctx, vendor.ID, PeriodDay)
	if err != nil {
		t.Fatalf("sales chart: %v", err)
	}
	if chart.Period != PeriodDay {
		t.Fatalf("period = %s", chart.Period)
	}
	if len(chart.Data) != 1 {
		t.Fatalf("got %d buckets, want 1", len(chart.Data))
	}
	if chart.Data[0].Sales != 50 || chart.Data[0].Orders != 2 {
		t.Fatalf("bucket = %+v, want sales 50 orders 2", chart.Data[0])
	}
}

func TestDashboardRequiresStore(t *testing.T) {
	svc, tx, ctx := newDashboardFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "dash-svc-nostore@example.com")

	_, err := svc.SalesChart(ctx, vendor.ID, PeriodMonth)
	wantCode(t, err, apierr.CodeNoStore)

	_, err = svc.TopProducts(ctx, vendor.ID, 5)
	wantCode(t, err, apierr.CodeNoStore)
}
