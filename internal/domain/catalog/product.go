package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

func ValidProductStatus(s string) bool {
	switch ProductStatus(s) {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	}
	return false
}

type Product struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StoreID     uuid.UUID                   `gorm:"type:uuid;index;not null;column:store_id" json:"store_id"`
	Name        string                      `gorm:"not null;column:name" json:"name"`
	Description string                      `gorm:"column:description" json:"description"`
	Price       float64                     `gorm:"not null;column:price" json:"price"`
	Stock       int                         `gorm:"not null;default:0;column:stock" json:"stock"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	Category    string                      `gorm:"index;column:category" json:"category"`
	Status      ProductStatus               `gorm:"not null;default:'active';column:status" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// NormalizeStockStatus keeps stock and status coherent: zero stock always
// reads out_of_stock, and a product coming back in stock flips from
// out_of_stock to active. An explicit inactive status survives as long as
// stock is above zero. Called at the end of every create/update path.
func NormalizeStockStatus(p *Product) {
	if p.Stock == 0 {
		p.Status = ProductStatusOutOfStock
		return
	}
	if p.Status == ProductStatusOutOfStock {
		p.Status = ProductStatusActive
	}
}
