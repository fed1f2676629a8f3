package usecases

import (
	"fmt"

	"carrot-server/entities"
	"carrot-server/repositories"
)

// InventoryUseCase covers the shop side of the ledger: buying catalog items
// with carrots and equipping owned cosmetics. The inventory rows are the
// source of truth for what is equipped; the denormalized pointers on User
// are rewritten here, inside the same transaction, and nowhere else.
type InventoryUseCase struct {
	store repositories.Store
}

func NewInventoryUseCase(store repositories.Store) *InventoryUseCase {
	return &InventoryUseCase{store: store}
}

// ListItems returns the full shop catalog.
func (uc *InventoryUseCase) ListItems() ([]entities.Item, error) {
	return uc.store.Items().GetAll()
}

// ListOwned returns the user's inventory with item details attached.
func (uc *InventoryUseCase) ListOwned(userID uint) ([]entities.Inventory, error) {
	return uc.store.Inventories().GetByUserID(userID)
}

// Purchase buys an item for the user: one new unequipped inventory row,
// balance debited by the item price. Owning an item twice is a conflict,
// and the debit never runs when the balance is short.
func (uc *InventoryUseCase) Purchase(itemID, userID uint) (*entities.Inventory, error) {
	var created *entities.Inventory
	err := uc.store.Atomically(func(s repositories.Store) error {
		item, err := s.Items().GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
		}

		existing, err := s.Inventories().GetByUserAndItem(userID, itemID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: item %d is already owned", ErrConflict, itemID)
		}

		user, err := s.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		if user.CarrotBalance < item.Price {
			return fmt.Errorf("%w: item costs %d carrots, balance is %d",
				ErrInsufficientFunds, item.Price, user.CarrotBalance)
		}

		inv := &entities.Inventory{UserID: userID, ItemID: itemID}
		if err := s.Inventories().Create(inv); err != nil {
			return err
		}
		user.CarrotBalance -= item.Price
		if err := s.Users().Update(user); err != nil {
			return err
		}

		inv.Item = *item
		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Equip marks the given inventory row as equipped. Any other equipped row
// of the same item type is cleared first, so a user wears at most one hat
// and one accessory at a time. Equipping an already-equipped row is a no-op.
func (uc *InventoryUseCase) Equip(inventoryID, userID uint) (*entities.User, error) {
	var updated *entities.User
	err := uc.store.Atomically(func(s repositories.Store) error {
		inv, err := s.Inventories().GetByID(inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: inventory %d", ErrNotFound, inventoryID)
		}
		if inv.UserID != userID {
			return fmt.Errorf("%w: inventory %d belongs to another user", ErrForbidden, inventoryID)
		}

		user, err := s.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}

		current, err := s.Inventories().GetEquippedByType(userID, inv.Item.ItemType)
		if err != nil {
			return err
		}
		if current != nil && current.ID != inv.ID {
			current.IsEquipped = false
			if err := s.Inventories().Update(current); err != nil {
				return err
			}
		}
		if !inv.IsEquipped {
			inv.IsEquipped = true
			if err := s.Inventories().Update(inv); err != nil {
				return err
			}
		}

		itemID := inv.ItemID
		setEquippedPointer(user, inv.Item.ItemType, &itemID)
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

// Unequip clears the equipped flag on the given inventory row and the
// matching pointer on the user. Unequipping a row that is not equipped
// changes nothing.
func (uc *InventoryUseCase) Unequip(inventoryID, userID uint) (*entities.User, error) {
	var updated *entities.User
	err := uc.store.Atomically(func(s repositories.Store) error {
		inv, err := s.Inventories().GetByID(inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: inventory %d", ErrNotFound, inventoryID)
		}
		if inv.UserID != userID {
			return fmt.Errorf("%w: inventory %d belongs to another user", ErrForbidden, inventoryID)
		}

		user, err := s.Users().GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}

		if inv.IsEquipped {
			inv.IsEquipped = false
			if err := s.Inventories().Update(inv); err != nil {
				return err
			}
			setEquippedPointer(user, inv.Item.ItemType, nil)
			if err := s.Users().Update(user); err != nil {
				return err
			}
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func setEquippedPointer(user *entities.User, itemType string, itemID *uint) {
	switch itemType {
	case entities.ItemTypeHat:
		user.EquippedHatID = itemID
	case entities.ItemTypeAccessory:
		user.EquippedAccID = itemID
	}
}
