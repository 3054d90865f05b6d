package db

import (
	types "github.com/vendora/vendora-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity
		&types.Vendor{},

		// Catalog
		&types.Store{},
		&types.Product{},

		// Order ledger
		&types.Order{},
		&types.OrderItem{},
		&types.OrderNote{},
	)
}
