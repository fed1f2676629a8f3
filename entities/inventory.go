package entities

import (
	"time"

	"gorm.io/gorm"
)

// Inventory links a user to an item they own. For a given user and item
// type at most one row has IsEquipped set; the inventory use case enforces
// this with a clear-then-set inside one transaction.
type Inventory struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	ItemID     uint   `gorm:"index;not null" json:"item_id"`
	IsEquipped bool   `gorm:"not null;default:false" json:"is_equipped"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`

	Item Item `gorm:"foreignKey:ItemID" json:"item"`
}

func (i *Inventory) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UTC().Format(time.RFC3339)
	i.CreatedAt = now
	i.UpdatedAt = now
	return nil
}
