package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type StoreRepo interface {
	Create(ctx context.Context, tx *gorm.DB, s *types.Store) (*types.Store, error)
	GetByVendorID(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.Store, error)
	GetForVendor(ctx context.Context, tx *gorm.DB, id, vendorID uuid.UUID) (*types.Store, error)
	Update(ctx context.Context, tx *gorm.DB, s *types.Store) error
	ExistsForVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (bool, error)
}

type storeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
	repoLog := baseLog.With("repo", "StoreRepo")
	return &storeRepo{db: db, log: repoLog}
}

func (sr *storeRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Store) (*types.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (sr *storeRepo) GetByVendorID(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.Store
	err := transaction.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *storeRepo) GetForVendor(ctx context.Context, tx *gorm.DB, id, vendorID uuid.UUID) (*types.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.Store
	err := transaction.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", id, vendorID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *storeRepo) Update(ctx context.Context, tx *gorm.DB, s *types.Store) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Save(s).Error
}

func (sr *storeRepo) ExistsForVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Store{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
