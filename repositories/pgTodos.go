package repositories

import (
	"errors"
	"time"

	"carrot-server/entities"

	"gorm.io/gorm"
)

type todoPgRepository struct {
	store *pgStore
}

func (r *todoPgRepository) Create(todo *entities.Todo) error {
	return r.store.db.Create(todo).Error
}

func (r *todoPgRepository) GetByID(id uint) (*entities.Todo, error) {
	var todo entities.Todo
	err := r.store.reader().Where("id = ?", id).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoPgRepository) GetByOwnerID(ownerID uint, offset, limit int) ([]entities.Todo, error) {
	if limit <= 0 {
		limit = 100
	}
	var todos []entities.Todo
	err := r.store.db.Where("owner_id = ?", ownerID).
		Order("created_at ASC").Offset(offset).Limit(limit).Find(&todos).Error
	return todos, err
}

func (r *todoPgRepository) GetDueAlarms(hhmm string) ([]entities.Todo, error) {
	var todos []entities.Todo
	err := r.store.db.Where("alarm_time = ? AND completed = ?", hhmm, false).Find(&todos).Error
	return todos, err
}

func (r *todoPgRepository) Update(todo *entities.Todo) error {
	todo.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.store.db.Save(todo).Error
}

func (r *todoPgRepository) Delete(id uint) error {
	return r.store.db.Where("id = ?", id).Delete(&entities.Todo{}).Error
}
