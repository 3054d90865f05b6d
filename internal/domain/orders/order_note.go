package orders

import (
	"time"

	"github.com/google/uuid"
)

// OrderNote is append-only; there is no update or delete path.
type OrderNote struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;index;not null;column:order_id" json:"order_id"`
	Content string    `gorm:"not null;column:content" json:"content"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (OrderNote) TableName() string { return "order_notes" }
