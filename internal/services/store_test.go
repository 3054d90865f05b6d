package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	"github.com/vendora/vendora-backend/internal/data/repos/testutil"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
)

func newStoreFixture(t *testing.T) (StoreService, *gorm.DB, context.Context) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	return NewStoreService(tx, log, catalogrepo.NewStoreRepo(tx, log)), tx, context.Background()
}

func TestStoreCreateAndMine(t *testing.T) {
	svc, tx, ctx := newStoreFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "store-svc@example.com")

	created, err := svc.Create(ctx, vendor.ID, StoreInput{
		Name:        "Handmade Goods",
		Description: "pottery and prints",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.VendorID != vendor.ID {
		t.Fatalf("store bound to wrong vendor: %s", created.VendorID)
	}

	mine, err := svc.Mine(ctx, vendor.ID)
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if mine.ID != created.ID {
		t.Fatalf("mine returned wrong store: %s", mine.ID)
	}
}

func TestStoreCreateIsOnePerVendor(t *testing.T) {
	svc, tx, ctx := newStoreFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "store-one@example.com")
	testutil.SeedStore(t, ctx, tx, vendor.ID)

	_, err := svc.Create(ctx, vendor.ID, StoreInput{Name: "Second Store"})
	wantCode(t, err, apierr.CodeConflict)
}

func TestStoreMineWithoutStore(t *testing.T) {
	svc, tx, ctx := newStoreFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "store-none@example.com")

	_, err := svc.Mine(ctx, vendor.ID)
	wantCode(t, err, apierr.CodeNotFound)
}

func TestStoreUpdateValidatesWholeDocument(t *testing.T) {
	svc, tx, ctx := newStoreFixture(t)
	vendor := testutil.SeedVendor(t, ctx, tx, "store-upd@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendor.ID)

	_, err := svc.Update(ctx, vendor.ID, store.ID, StoreInput{Name: "x"})
	wantCode(t, err, apierr.CodeValidation)

	updated, err := svc.Update(ctx, vendor.ID, store.ID, StoreInput{
		Name:        "Renamed Store",
		Description: "new description",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed Store" {
		t.Fatalf("name = %q", updated.Name)
	}
}

func TestStoreUpdateScopedToOwner(t *testing.T) {
	svc, tx, ctx := newStoreFixture(t)
	vendorA := testutil.SeedVendor(t, ctx, tx, "store-scope-a@example.com")
	vendorB := testutil.SeedVendor(t, ctx, tx, "store-scope-b@example.com")
	store := testutil.SeedStore(t, ctx, tx, vendorA.ID)

	_, err := svc.Update(ctx, vendorB.ID, store.ID, StoreInput{Name: "Hijacked"})
	wantCode(t, err, apierr.CodeNotFound)
}
