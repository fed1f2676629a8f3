package httpHandler

import (
	"net/http"

	"carrot-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *usecases.UserUseCase
}

func NewUserHandler(users *usecases.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Profile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
