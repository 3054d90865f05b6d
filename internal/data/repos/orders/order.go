package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, o *types.Order) (*types.Order, error)
	GetForStore(ctx context.Context, tx *gorm.DB, id, storeID uuid.UUID) (*types.Order, error)
	List(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, page, limit int, status types.OrderStatus) ([]*types.Order, int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.OrderStatus) error
	Recent(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, limit int) ([]*types.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

// Create persists the order and its items in one go via the association.
func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *types.Order) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if err := transaction.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (or *orderRepo) GetForStore(ctx context.Context, tx *gorm.DB, id, storeID uuid.UUID) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var result types.Order
	err := transaction.WithContext(ctx).
		Preload("Items").
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

func (or *orderRepo) List(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, page, limit int, status types.OrderStatus) ([]*types.Order, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("store_id = ?", storeID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Order
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (or *orderRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.OrderStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (or *orderRepo) Recent(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, limit int) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.Order
	if err := transaction.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
