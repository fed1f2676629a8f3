package usecases

import (
	"testing"

	"carrot-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseDebitsBalance(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 10)
	item := store.addItem("Top Hat", 7, entities.ItemTypeHat)

	inv, err := NewInventoryUseCase(store).Purchase(item.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, inv.ItemID)
	assert.False(t, inv.IsEquipped)
	assert.Equal(t, item.Name, inv.Item.Name)

	after, _ := store.Users().GetByID(user.ID)
	assert.Equal(t, 3, after.CarrotBalance)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 3)
	item := store.addItem("Wizard Hat", 5, entities.ItemTypeHat)

	_, err := NewInventoryUseCase(store).Purchase(item.ID, user.ID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// no debit, no inventory row
	after, _ := store.Users().GetByID(user.ID)
	assert.Equal(t, 3, after.CarrotBalance)
	owned, _ := store.Inventories().GetByUserID(user.ID)
	assert.Empty(t, owned)
}

func TestPurchaseTwiceConflicts(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 20)
	item := store.addItem("Red Scarf", 5, entities.ItemTypeAccessory)

	uc := NewInventoryUseCase(store)
	_, err := uc.Purchase(item.ID, user.ID)
	require.NoError(t, err)

	_, err = uc.Purchase(item.ID, user.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// only the first purchase was charged
	after, _ := store.Users().GetByID(user.ID)
	assert.Equal(t, 15, after.CarrotBalance)
}

func TestPurchaseUnknownItem(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 20)

	_, err := NewInventoryUseCase(store).Purchase(42, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipSetsFlagAndPointer(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)
	hat := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	inv := store.addInventory(user.ID, hat.ID, false)

	updated, err := NewInventoryUseCase(store).Equip(inv.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.EquippedHatID)
	assert.Equal(t, hat.ID, *updated.EquippedHatID)
	assert.Nil(t, updated.EquippedAccID)

	row, _ := store.Inventories().GetByID(inv.ID)
	assert.True(t, row.IsEquipped)
}

func TestEquipSwapsWithinType(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)
	hatA := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	hatB := store.addItem("Top Hat", 10, entities.ItemTypeHat)
	invA := store.addInventory(user.ID, hatA.ID, true)
	invB := store.addInventory(user.ID, hatB.ID, false)

	updated, err := NewInventoryUseCase(store).Equip(invB.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.EquippedHatID)
	assert.Equal(t, hatB.ID, *updated.EquippedHatID)

	rowA, _ := store.Inventories().GetByID(invA.ID)
	rowB, _ := store.Inventories().GetByID(invB.ID)
	assert.False(t, rowA.IsEquipped)
	assert.True(t, rowB.IsEquipped)

	// exactly one equipped hat remains
	owned, _ := store.Inventories().GetByUserID(user.ID)
	equipped := 0
	for _, row := range owned {
		if row.IsEquipped {
			equipped++
		}
	}
	assert.Equal(t, 1, equipped)
}

func TestEquipIsIdempotent(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)
	hat := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	inv := store.addInventory(user.ID, hat.ID, false)

	uc := NewInventoryUseCase(store)
	first, err := uc.Equip(inv.ID, user.ID)
	require.NoError(t, err)
	second, err := uc.Equip(inv.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, *first.EquippedHatID, *second.EquippedHatID)
	owned, _ := store.Inventories().GetByUserID(user.ID)
	require.Len(t, owned, 1)
	assert.True(t, owned[0].IsEquipped)
}

func TestEquipTypesAreIndependent(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)
	hat := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	acc := store.addItem("Gold Bell", 15, entities.ItemTypeAccessory)
	hatInv := store.addInventory(user.ID, hat.ID, false)
	accInv := store.addInventory(user.ID, acc.ID, false)

	uc := NewInventoryUseCase(store)
	_, err := uc.Equip(hatInv.ID, user.ID)
	require.NoError(t, err)
	updated, err := uc.Equip(accInv.ID, user.ID)
	require.NoError(t, err)

	// equipping the accessory left the hat alone
	require.NotNil(t, updated.EquippedHatID)
	require.NotNil(t, updated.EquippedAccID)
	assert.Equal(t, hat.ID, *updated.EquippedHatID)
	assert.Equal(t, acc.ID, *updated.EquippedAccID)
}

func TestEquipForeignRow(t *testing.T) {
	store := newMemStore()
	owner := store.addUser("owner@example.com", 0)
	other := store.addUser("other@example.com", 0)
	hat := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	inv := store.addInventory(owner.ID, hat.ID, false)

	_, err := NewInventoryUseCase(store).Equip(inv.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEquipUnknownRow(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)

	_, err := NewInventoryUseCase(store).Equip(99, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnequipClearsFlagAndPointer(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)
	hat := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	inv := store.addInventory(user.ID, hat.ID, false)

	uc := NewInventoryUseCase(store)
	_, err := uc.Equip(inv.ID, user.ID)
	require.NoError(t, err)

	updated, err := uc.Unequip(inv.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.EquippedHatID)

	row, _ := store.Inventories().GetByID(inv.ID)
	assert.False(t, row.IsEquipped)
}

func TestUnequipWhenNotEquipped(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 0)
	hat := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	inv := store.addInventory(user.ID, hat.ID, false)

	updated, err := NewInventoryUseCase(store).Unequip(inv.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.EquippedHatID)
}

// Full shop scenario: buy and wear a new hat while already wearing one.
func TestPurchaseThenSwapEquippedHat(t *testing.T) {
	store := newMemStore()
	user := store.addUser("a@example.com", 12)
	hatX := store.addItem("Straw Hat", 5, entities.ItemTypeHat)
	hatY := store.addItem("Top Hat", 10, entities.ItemTypeHat)
	invX := store.addInventory(user.ID, hatX.ID, true)

	uc := NewInventoryUseCase(store)
	invY, err := uc.Purchase(hatY.ID, user.ID)
	require.NoError(t, err)

	updated, err := uc.Equip(invY.ID, user.ID)
	require.NoError(t, err)

	rowX, _ := store.Inventories().GetByID(invX.ID)
	rowY, _ := store.Inventories().GetByID(invY.ID)
	assert.False(t, rowX.IsEquipped)
	assert.True(t, rowY.IsEquipped)
	require.NotNil(t, updated.EquippedHatID)
	assert.Equal(t, hatY.ID, *updated.EquippedHatID)
	assert.Equal(t, 2, updated.CarrotBalance)
}
