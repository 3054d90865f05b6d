// Package dashboard holds the cross-entity read queries backing the vendor
// dashboard. They live apart from the entity repos because none of them own
// a table; they only aggregate the order ledger.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type StatusCount struct {
	Status types.OrderStatus `gorm:"column:status"`
	Count  int64             `gorm:"column:count"`
}

type TopProductRow struct {
	ProductID    uuid.UUID `gorm:"column:product_id"`
	TotalSold    int64     `gorm:"column:total_sold"`
	TotalRevenue float64   `gorm:"column:total_revenue"`
}

type DashboardRepo interface {
	CompletedOrdersSince(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, since time.Time) ([]*types.Order, error)
	CountByStatus(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) ([]StatusCount, error)
	TopProducts(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, limit int) ([]TopProductRow, error)
}

type dashboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDashboardRepo(db *gorm.DB, baseLog *logger.Logger) DashboardRepo {
	repoLog := baseLog.With("repo", "DashboardRepo")
	return &dashboardRepo{db: db, log: repoLog}
}

func (dr *dashboardRepo) CompletedOrdersSince(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, since time.Time) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var results []*types.Order
	if err := transaction.WithContext(ctx).
		Where("store_id = ? AND status = ? AND created_at >= ?", storeID, types.OrderStatusCompleted, since).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// CountByStatus is deliberately not date-scoped: the dashboard shows the
// all-time status mix next to period-scoped sales figures.
func (dr *dashboardRepo) CountByStatus(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) ([]StatusCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var results []StatusCount
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Select("status, COUNT(*) AS count").
		Where("store_id = ?", storeID).
		Group("status").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// TopProducts groups completed order lines by product over the store's whole
// history. Quantities sum into total_sold, quantity*price (snapshot price,
// not the catalog's) into total_revenue.
func (dr *dashboardRepo) TopProducts(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, limit int) ([]TopProductRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var results []TopProductRow
	if err := transaction.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id AS product_id, SUM(order_items.quantity) AS total_sold, SUM(order_items.quantity * order_items.price) AS total_revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.store_id = ? AND orders.status = ?", storeID, types.OrderStatusCompleted).
		Group("order_items.product_id").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
