package orders

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// transitions holds the only legal forward edges; completed and cancelled
// are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StoreID       uuid.UUID   `gorm:"type:uuid;index;not null;column:store_id" json:"store_id"`
	CustomerName  string      `gorm:"not null;column:customer_name" json:"customer_name"`
	CustomerEmail string      `gorm:"not null;column:customer_email" json:"customer_email"`
	TotalAmount   float64     `gorm:"not null;column:total_amount" json:"total_amount"`
	Status        OrderStatus `gorm:"not null;default:'pending';index;column:status" json:"status"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// OrderItem records the price the customer saw at order time; it never
// tracks later catalog price changes.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null;column:order_id" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null;column:product_id" json:"product_id"`
	Quantity  int       `gorm:"not null;column:quantity" json:"quantity"`
	Price     float64   `gorm:"not null;column:price" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

// TotalAmount sums the snapshot line totals. Computed once at creation and
// stored on the order, never recomputed.
func TotalAmount(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
