package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Store is a vendor's single storefront. The unique index on vendor_id is
// what holds the one-store-per-vendor rule at the persistence layer.
type Store struct {
	ID          uuid.UUID                       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VendorID    uuid.UUID                       `gorm:"type:uuid;uniqueIndex;not null;column:vendor_id" json:"vendor_id"`
	Name        string                          `gorm:"not null;column:name" json:"name"`
	Description string                          `gorm:"column:description" json:"description"`
	Logo        string                          `gorm:"column:logo" json:"logo"`
	Banner      string                          `gorm:"column:banner" json:"banner"`
	SocialLinks datatypes.JSONType[SocialLinks] `gorm:"column:social_links" json:"social_links"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Store) TableName() string { return "stores" }
