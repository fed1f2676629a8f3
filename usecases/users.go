package usecases

import (
	"fmt"

	"carrot-server/auth"
	"carrot-server/entities"
	"carrot-server/repositories"
)

type UserUseCase struct {
	store repositories.Store
}

func NewUserUseCase(store repositories.Store) *UserUseCase {
	return &UserUseCase{store: store}
}

// Register creates an account with a bcrypt-hashed password. Email must be
// unused; password length bounds follow bcrypt's 72-byte input limit.
func (uc *UserUseCase) Register(email, password string) (*entities.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidState)
	}
	if len(password) < 8 || len(password) > 72 {
		return nil, fmt.Errorf("%w: password must be 8 to 72 characters", ErrInvalidState)
	}

	var created *entities.User
	err := uc.store.Atomically(func(s repositories.Store) error {
		existing, err := s.Users().GetByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: email is already registered", ErrConflict)
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user := &entities.User{Email: email, PasswordHash: hash}
		if err := s.Users().Create(user); err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Authenticate resolves an email/password pair to a user. A missing account
// and a wrong password fail the same way on purpose.
func (uc *UserUseCase) Authenticate(email, password string) (*entities.User, error) {
	user, err := uc.store.Users().GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// Profile returns the user with their inventory attached.
func (uc *UserUseCase) Profile(userID uint) (*entities.User, error) {
	user, err := uc.store.Users().GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	invs, err := uc.store.Inventories().GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	user.Inventory = invs
	return user, nil
}
