package usecases

import (
	"fmt"
	"time"

	"carrot-server/entities"
	"carrot-server/repositories"
)

type TodoUseCase struct {
	store repositories.Store
}

func NewTodoUseCase(store repositories.Store) *TodoUseCase {
	return &TodoUseCase{store: store}
}

// TodoUpdate carries a partial update; nil fields are left untouched.
// Completed set here is a plain field write with no ledger effect; earning
// or surrendering carrots goes through RewardUseCase.
type TodoUpdate struct {
	Title     *string
	Completed *bool
	AlarmTime *string
}

func (uc *TodoUseCase) Create(ownerID uint, title string, alarmTime *string) (*entities.Todo, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidState)
	}
	if err := validateAlarmTime(alarmTime); err != nil {
		return nil, err
	}
	todo := &entities.Todo{Title: title, OwnerID: ownerID, AlarmTime: alarmTime}
	if err := uc.store.Todos().Create(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (uc *TodoUseCase) List(ownerID uint, skip, limit int) ([]entities.Todo, error) {
	return uc.store.Todos().GetByOwnerID(ownerID, skip, limit)
}

func (uc *TodoUseCase) Get(todoID, userID uint) (*entities.Todo, error) {
	todo, err := uc.store.Todos().GetByID(todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, fmt.Errorf("%w: todo %d", ErrNotFound, todoID)
	}
	if todo.OwnerID != userID {
		return nil, fmt.Errorf("%w: todo %d belongs to another user", ErrForbidden, todoID)
	}
	return todo, nil
}

func (uc *TodoUseCase) Update(todoID, userID uint, upd TodoUpdate) (*entities.Todo, error) {
	if err := validateAlarmTime(upd.AlarmTime); err != nil {
		return nil, err
	}
	var updated *entities.Todo
	err := uc.store.Atomically(func(s repositories.Store) error {
		todo, err := s.Todos().GetByID(todoID)
		if err != nil {
			return err
		}
		if todo == nil {
			return fmt.Errorf("%w: todo %d", ErrNotFound, todoID)
		}
		if todo.OwnerID != userID {
			return fmt.Errorf("%w: todo %d belongs to another user", ErrForbidden, todoID)
		}

		if upd.Title != nil {
			todo.Title = *upd.Title
		}
		if upd.Completed != nil {
			todo.Completed = *upd.Completed
		}
		if upd.AlarmTime != nil {
			todo.AlarmTime = upd.AlarmTime
		}
		if err := s.Todos().Update(todo); err != nil {
			return err
		}
		updated = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *TodoUseCase) Delete(todoID, userID uint) error {
	return uc.store.Atomically(func(s repositories.Store) error {
		todo, err := s.Todos().GetByID(todoID)
		if err != nil {
			return err
		}
		if todo == nil {
			return fmt.Errorf("%w: todo %d", ErrNotFound, todoID)
		}
		if todo.OwnerID != userID {
			return fmt.Errorf("%w: todo %d belongs to another user", ErrForbidden, todoID)
		}
		return s.Todos().Delete(todoID)
	})
}

// validateAlarmTime accepts a nil alarm or an "HH:MM" time of day.
func validateAlarmTime(alarmTime *string) error {
	if alarmTime == nil {
		return nil
	}
	if _, err := time.Parse("15:04", *alarmTime); err != nil {
		return fmt.Errorf("%w: alarm_time must be HH:MM", ErrInvalidState)
	}
	return nil
}
