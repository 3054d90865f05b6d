package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

// ProductFilter narrows List; zero values mean "no filter".
type ProductFilter struct {
	Category string
	Status   types.ProductStatus
}

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, p *types.Product) (*types.Product, error)
	GetForStore(ctx context.Context, tx *gorm.DB, id, storeID uuid.UUID) (*types.Product, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error)
	List(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, page, limit int, filter ProductFilter) ([]*types.Product, int64, error)
	Update(ctx context.Context, tx *gorm.DB, p *types.Product) error
	Delete(ctx context.Context, tx *gorm.DB, id, storeID uuid.UUID) (int64, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, qty int) error
	CountByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error)
	CountByStoreStatus(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, status types.ProductStatus) (int64, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, p *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (pr *productRepo) GetForStore(ctx context.Context, tx *gorm.DB, id, storeID uuid.UUID) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Product
	err := transaction.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Product
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, page, limit int, filter ProductFilter) ([]*types.Product, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("store_id = ?", storeID)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Product
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (pr *productRepo) Update(ctx context.Context, tx *gorm.DB, p *types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Save(p).Error
}

func (pr *productRepo) Delete(ctx context.Context, tx *gorm.DB, id, storeID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		Delete(&types.Product{})
	return result.RowsAffected, result.Error
}

// DecrementStock applies a raw decrement with no floor and no status
// normalization, matching the completion path's fire-and-forget semantics.
// A missing product id affects zero rows and is not an error.
func (pr *productRepo) DecrementStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, qty int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock - ?", qty)).Error
}

func (pr *productRepo) CountByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	err := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (pr *productRepo) CountByStoreStatus(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, status types.ProductStatus) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	err := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("store_id = ? AND status = ?", storeID, status).
		Count(&count).Error
	return count, err
}
