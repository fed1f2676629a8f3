package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is an account in the carrot todo system. CarrotBalance is the
// reward ledger and never goes below zero. EquippedHatID and EquippedAccID
// mirror the inventory's is_equipped flags for fast profile lookups; they
// are only written by the inventory use case.
type User struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string `gorm:"not null" json:"-"`
	CarrotBalance int    `gorm:"not null;default:0" json:"carrot_balance"`
	EquippedHatID *uint  `json:"equipped_hat_id"`
	EquippedAccID *uint  `json:"equipped_acc_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`

	Todos     []Todo      `gorm:"foreignKey:OwnerID" json:"todos,omitempty"`
	Inventory []Inventory `gorm:"foreignKey:UserID" json:"inventory,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UTC().Format(time.RFC3339)
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}
