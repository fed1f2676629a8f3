package entities

import (
	"time"

	"gorm.io/gorm"
)

// Todo is a single task owned by exactly one user. Completed is the trigger
// for the carrot ledger; it is flipped through the reward use case, not
// written freely. AlarmTime is an optional "HH:MM" time of day.
type Todo struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"index;not null" json:"title"`
	Completed bool    `gorm:"not null;default:false" json:"completed"`
	AlarmTime *string `gorm:"type:varchar(5)" json:"alarm_time,omitempty"`
	OwnerID   uint    `gorm:"index;not null" json:"owner_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func (t *Todo) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UTC().Format(time.RFC3339)
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}
