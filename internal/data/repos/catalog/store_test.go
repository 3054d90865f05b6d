package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/vendora/vendora-backend/internal/data/repos/testutil"
	types "github.com/vendora/vendora-backend/internal/domain"
)

func TestStoreRepoRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewStoreRepo(db, testutil.Logger(t))

	vendor := testutil.SeedVendor(t, ctx, tx, "store-rt@example.com")
	s := &types.Store{
		ID:       uuid.New(),
		VendorID: vendor.ID,
		Name:     "My Store",
		SocialLinks: datatypes.NewJSONType(types.SocialLinks{
			Website: "https://example.com",
		}),
	}
	if _, err := repo.Create(ctx, tx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByVendorID(ctx, tx, vendor.ID)
	if err != nil {
		t.Fatalf("get by vendor: %v", err)
	}
	if got == nil || got.ID != s.ID {
		t.Fatalf("unexpected store: %+v", got)
	}
	if got.SocialLinks.Data().Website != "https://example.com" {
		t.Fatalf("social links lost: %+v", got.SocialLinks.Data())
	}

	exists, err := repo.ExistsForVendor(ctx, tx, vendor.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected store to exist for vendor")
	}
}

func TestStoreRepoOwnershipScoping(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewStoreRepo(db, testutil.Logger(t))

	vendorA := testutil.SeedVendor(t, ctx, tx, "store-own-a@example.com")
	vendorB := testutil.SeedVendor(t, ctx, tx, "store-own-b@example.com")
	storeA := testutil.SeedStore(t, ctx, tx, vendorA.ID)

	got, err := repo.GetForVendor(ctx, tx, storeA.ID, vendorB.ID)
	if err != nil {
		t.Fatalf("get for vendor: %v", err)
	}
	if got != nil {
		t.Fatal("store must not be visible to another vendor")
	}

	got, err = repo.GetForVendor(ctx, tx, storeA.ID, vendorA.ID)
	if err != nil {
		t.Fatalf("get for vendor: %v", err)
	}
	if got == nil {
		t.Fatal("owner must see own store")
	}
}
