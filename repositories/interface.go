package repositories

import "carrot-server/entities"

// Single-row Get methods return (nil, nil) when no row matches, so callers
// can map absence to their own error kinds without knowing the storage
// engine's sentinel errors.

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
}

type TodoRepository interface {
	Create(todo *entities.Todo) error
	GetByID(id uint) (*entities.Todo, error)
	GetByOwnerID(ownerID uint, offset, limit int) ([]entities.Todo, error)
	GetDueAlarms(hhmm string) ([]entities.Todo, error)
	Update(todo *entities.Todo) error
	Delete(id uint) error
}

type ItemRepository interface {
	GetByID(id uint) (*entities.Item, error)
	GetAll() ([]entities.Item, error)
}

type InventoryRepository interface {
	Create(inv *entities.Inventory) error
	GetByID(id uint) (*entities.Inventory, error)
	GetByUserID(userID uint) ([]entities.Inventory, error)
	GetByUserAndItem(userID, itemID uint) (*entities.Inventory, error)
	GetEquippedByType(userID uint, itemType string) (*entities.Inventory, error)
	Update(inv *entities.Inventory) error
}

// Store bundles the per-entity repositories behind one transactional
// boundary. Atomically runs fn against a store bound to a single
// transaction; reads inside it take row locks, so a check-then-mutate
// sequence on a user or todo is serialized against concurrent requests
// touching the same rows. fn returning an error rolls everything back.
type Store interface {
	Users() UserRepository
	Todos() TodoRepository
	Items() ItemRepository
	Inventories() InventoryRepository
	Atomically(fn func(Store) error) error
}
