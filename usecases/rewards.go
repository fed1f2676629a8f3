package usecases

import (
	"fmt"

	"carrot-server/entities"
	"carrot-server/repositories"
)

// RewardUseCase owns the carrot ledger: a todo moving to completed earns
// one carrot, moving back surrenders one. Both sides run as a single
// transaction so the flag and the balance can never drift apart.
type RewardUseCase struct {
	store repositories.Store
}

func NewRewardUseCase(store repositories.Store) *RewardUseCase {
	return &RewardUseCase{store: store}
}

// Complete marks the todo done and credits one carrot to its owner.
// Fails without side effects when the todo is missing, belongs to someone
// else, or is already completed.
func (uc *RewardUseCase) Complete(todoID, userID uint) (*entities.User, error) {
	var updated *entities.User
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
		if todo.Completed {
			return fmt.Errorf("%w: todo is already completed", ErrInvalidState)
		}

		user, err := s.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}

		todo.Completed = true
		if err := s.Todos().Update(todo); err != nil {
			return err
		}
		user.CarrotBalance++
		if err := s.Users().Update(user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Uncomplete reverts a completed todo and debits one carrot, floored at
// zero. The floor is deliberate: carrots already spent in the shop are not
// clawed back into debt, the debit is absorbed instead.
func (uc *RewardUseCase) Uncomplete(todoID, userID uint) (*entities.User, error) {
	var updated *entities.User
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
		if !todo.Completed {
			return fmt.Errorf("%w: todo is not completed yet", ErrInvalidState)
		}

		user, err := s.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}

		todo.Completed = false
		if err := s.Todos().Update(todo); err != nil {
			return err
		}
		if user.CarrotBalance > 0 {
			user.CarrotBalance--
		}
		if err := s.Users().Update(user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
