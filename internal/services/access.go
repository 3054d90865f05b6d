package services

import (
	"context"

	"github.com/google/uuid"

	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
)

// storeForVendor resolves the caller's single store. Every store-scoped
// operation goes through here before touching catalog or ledger state.
func storeForVendor(ctx context.Context, repo catalogrepo.StoreRepo, vendorID uuid.UUID) (*types.Store, error) {
	store, err := repo.GetByVendorID(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if store == nil {
		return nil, apierr.NoStore()
	}
	return store, nil
}

// Pagination is the list envelope shared by product and order listings.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func paginate(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
