package repositories

import (
	"errors"

	"carrot-server/entities"

	"gorm.io/gorm"
)

type itemPgRepository struct {
	store *pgStore
}

// Items are immutable catalog rows, so reads skip the transactional lock.

func (r *itemPgRepository) GetByID(id uint) (*entities.Item, error) {
	var item entities.Item
	err := r.store.db.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemPgRepository) GetAll() ([]entities.Item, error) {
	var items []entities.Item
	err := r.store.db.Order("price ASC").Find(&items).Error
	return items, err
}
