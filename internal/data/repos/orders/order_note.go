package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type OrderNoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, n *types.OrderNote) (*types.OrderNote, error)
	ListByOrder(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) ([]*types.OrderNote, error)
}

type orderNoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderNoteRepo(db *gorm.DB, baseLog *logger.Logger) OrderNoteRepo {
	repoLog := baseLog.With("repo", "OrderNoteRepo")
	return &orderNoteRepo{db: db, log: repoLog}
}

func (nr *orderNoteRepo) Create(ctx context.Context, tx *gorm.DB, n *types.OrderNote) (*types.OrderNote, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if err := transaction.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (nr *orderNoteRepo) ListByOrder(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) ([]*types.OrderNote, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var results []*types.OrderNote
	if err := transaction.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
