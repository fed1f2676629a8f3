package httpHandler

import (
	"net/http"

	"carrot-server/usecases"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	inventory *usecases.InventoryUseCase
}

func NewShopHandler(inventory *usecases.InventoryUseCase) *ShopHandler {
	return &ShopHandler{inventory: inventory}
}

// ListItems handles GET /api/v1/items
func (h *ShopHandler) ListItems(c *gin.Context) {
	items, err := h.inventory.ListItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PurchaseItem handles POST /api/v1/items/:id/purchase
func (h *ShopHandler) PurchaseItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inv, err := h.inventory.Purchase(id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInventory handles GET /api/v1/inventory
func (h *ShopHandler) ListInventory(c *gin.Context) {
	invs, err := h.inventory.ListOwned(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invs)
}

// EquipItem handles POST /api/v1/inventory/:id/equip
func (h *ShopHandler) EquipItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.inventory.Equip(id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UnequipItem handles POST /api/v1/inventory/:id/unequip
func (h *ShopHandler) UnequipItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.inventory.Unequip(id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
