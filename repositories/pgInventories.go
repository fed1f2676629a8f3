package repositories

import (
	"errors"
	"time"

	"carrot-server/entities"

	"gorm.io/gorm"
)

type inventoryPgRepository struct {
	store *pgStore
}

func (r *inventoryPgRepository) Create(inv *entities.Inventory) error {
	return r.store.db.Create(inv).Error
}

func (r *inventoryPgRepository) GetByID(id uint) (*entities.Inventory, error) {
	var inv entities.Inventory
	err := r.store.reader().Preload("Item").Where("id = ?", id).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryPgRepository) GetByUserID(userID uint) ([]entities.Inventory, error) {
	var invs []entities.Inventory
	err := r.store.db.Preload("Item").Where("user_id = ?", userID).
		Order("created_at ASC").Find(&invs).Error
	return invs, err
}

func (r *inventoryPgRepository) GetByUserAndItem(userID, itemID uint) (*entities.Inventory, error) {
	var inv entities.Inventory
	err := r.store.reader().Where("user_id = ? AND item_id = ?", userID, itemID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryPgRepository) GetEquippedByType(userID uint, itemType string) (*entities.Inventory, error) {
	var inv entities.Inventory
	err := r.store.reader().Preload("Item").
		Joins("JOIN items ON items.id = inventories.item_id").
		Where("inventories.user_id = ? AND inventories.is_equipped = ? AND items.item_type = ?",
			userID, true, itemType).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryPgRepository) Update(inv *entities.Inventory) error {
	inv.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.store.db.Save(inv).Error
}
