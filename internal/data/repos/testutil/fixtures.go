package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendora/vendora-backend/internal/domain"
)

func SeedVendor(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Vendor {
	tb.Helper()
	v := &types.Vendor{
		ID:       uuid.New(),
		Name:     "Vendor",
		Email:    email,
		Password: "pw",
		Status:   types.VendorStatusActive,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed vendor: %v", err)
	}
	return v
}

func SeedStore(tb testing.TB, ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) *types.Store {
	tb.Helper()
	s := &types.Store{
		ID:       uuid.New(),
		VendorID: vendorID,
		Name:     "store",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed store: %v", err)
	}
	return s
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, storeID uuid.UUID, price float64, stock int) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		Name:    "product",
		Price:   price,
		Stock:   stock,
		Status:  types.ProductStatusActive,
	}
	types.NormalizeStockStatus(p)
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, storeID uuid.UUID, status types.OrderStatus, items ...types.OrderItem) *types.Order {
	tb.Helper()
	orderID := uuid.New()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = orderID
	}
	o := &types.Order{
		ID:            orderID,
		StoreID:       storeID,
		CustomerName:  "Customer",
		CustomerEmail: "customer@example.com",
		TotalAmount:   types.OrderTotalAmount(items),
		Status:        status,
		Items:         items,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}

func SeedOrderNote(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID uuid.UUID, content string) *types.OrderNote {
	tb.Helper()
	n := &types.OrderNote{
		ID:      uuid.New(),
		OrderID: orderID,
		Content: content,
	}
	if err := tx.WithContext(ctx).Create(n).Error; err != nil {
		tb.Fatalf("seed order note: %v", err)
	}
	return n
}
