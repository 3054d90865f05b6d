// Package domain re-exports the entity subpackages under one import,
// conventionally aliased as `types` by repos and services.
package domain

import (
	"github.com/vendora/vendora-backend/internal/domain/catalog"
	"github.com/vendora/vendora-backend/internal/domain/orders"
	"github.com/vendora/vendora-backend/internal/domain/vendor"
)

type Vendor = vendor.Vendor

type (
	Store         = catalog.Store
	SocialLinks   = catalog.SocialLinks
	Product       = catalog.Product
	ProductStatus = catalog.ProductStatus
)

const (
	VendorStatusActive = vendor.StatusActive

	ProductStatusActive     = catalog.ProductStatusActive
	ProductStatusInactive   = catalog.ProductStatusInactive
	ProductStatusOutOfStock = catalog.ProductStatusOutOfStock
)

var (
	ValidProductStatus   = catalog.ValidProductStatus
	NormalizeStockStatus = catalog.NormalizeStockStatus
)

type (
	Order       = orders.Order
	OrderItem   = orders.OrderItem
	OrderNote   = orders.OrderNote
	OrderStatus = orders.OrderStatus
)

const (
	OrderStatusPending    = orders.OrderStatusPending
	OrderStatusProcessing = orders.OrderStatusProcessing
	OrderStatusCompleted  = orders.OrderStatusCompleted
	OrderStatusCancelled  = orders.OrderStatusCancelled
)

var (
	ValidOrderStatus = orders.ValidOrderStatus
	CanTransition    = orders.CanTransition
	OrderTotalAmount = orders.TotalAmount
)
