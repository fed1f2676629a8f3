package entities

// Item types. The set is closed for now; new cosmetic slots get a new
// constant plus a denormalized pointer on User.
const (
	ItemTypeHat       = "hat"
	ItemTypeAccessory = "accessory"
)

// Item is an immutable shop catalog entry. Price is in carrots.
type Item struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"index;not null" json:"name"`
	Price    int    `gorm:"not null" json:"price"`
	ItemType string `gorm:"type:varchar(32);not null" json:"item_type"`
	ImageURL string `json:"image_url"`
}

// ValidItemType reports whether t is one of the known item types.
func ValidItemType(t string) bool {
	return t == ItemTypeHat || t == ItemTypeAccessory
}
