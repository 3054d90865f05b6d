package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vendora/vendora-backend/internal/data/repos/testutil"
	types "github.com/vendora/vendora-backend/internal/domain"
)

func TestCompletedOrdersSince(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewDashboardRepo(db, testutil.Logger(t))

	vendor := testutil.SeedVendor(t, ctx, tx, "dash-since@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)

	recent := testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 50})
	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusPending,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 10})
	old := testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 99})
	if err := tx.Model(&types.Order{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-40*24*time.Hour)).Error; err != nil {
		t.Fatalf("backdate order: %v", err)
	}

	orders, err := repo.CompletedOrdersSince(ctx, tx, store.ID, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("completed since: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != recent.ID {
		t.Fatalf("expected only the recent completed order, got %+v", orders)
	}
}

func TestCountByStatusIsAllTime(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewDashboardRepo(db, testutil.Logger(t))

	vendor := testutil.SeedVendor(t, ctx, tx, "dash-status@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)

	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusPending,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 5})
	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusPending,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 5})
	old := testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCancelled,
		types.OrderItem{ProductID: uuid.New(), Quantity: 1, Price: 5})
	if err := tx.Model(&types.Order{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-400*24*time.Hour)).Error; err != nil {
		t.Fatalf("backdate order: %v", err)
	}

	counts, err := repo.CountByStatus(ctx, tx, store.ID)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	byStatus := map[string]int64{}
	for _, c := range counts {
		byStatus[string(c.Status)] = c.Count
	}
	if byStatus["pending"] != 2 {
		t.Errorf("pending = %d, want 2", byStatus["pending"])
	}
	if byStatus["cancelled"] != 1 {
		t.Errorf("cancelled must count regardless of age, got %d", byStatus["cancelled"])
	}
}

func TestTopProducts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewDashboardRepo(db, testutil.Logger(t))

	vendor := testutil.SeedVendor(t, ctx, tx, "dash-top@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)
	hot := testutil.SeedProduct(t, ctx, tx, store.ID, 10, 100)
	slow := testutil.SeedProduct(t, ctx, tx, store.ID, 30, 100)

	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: hot.ID, Quantity: 5, Price: 10},
		types.OrderItem{ProductID: slow.ID, Quantity: 1, Price: 30})
	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusCompleted,
		types.OrderItem{ProductID: hot.ID, Quantity: 2, Price: 10})
	// Pending orders must not count toward sales.
	testutil.SeedOrder(t, ctx, tx, store.ID, types.OrderStatusPending,
		types.OrderItem{ProductID: slow.ID, Quantity: 50, Price: 30})

	rows, err := repo.TopProducts(ctx, tx, store.ID, 10)
	if err != nil {
		t.Fatalf("top products: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ProductID != hot.ID || rows[0].TotalSold != 7 || rows[0].TotalRevenue != 70 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[1].ProductID != slow.ID || rows[1].TotalSold != 1 {
		t.Fatalf("unexpected runner-up: %+v", rows[1])
	}

	rows, err = repo.TopProducts(ctx, tx, store.ID, 1)
	if err != nil {
		t.Fatalf("top products limit: %v", err)
	}
	if len(rows) != 1 || rows[0].ProductID != hot.ID {
		t.Fatalf("limit not applied: %+v", rows)
	}
}
