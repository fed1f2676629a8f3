package handlers

import (
	"log"
	"net/http"

	"carrot-server/auth"
	"carrot-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHandler upgrades clients to a websocket the server pushes alarm
// notifications over. The stream is one-way; inbound frames are drained
// only to detect disconnects.
type NotifyHandler struct {
	mgr    *ws.Manager
	tokens *auth.TokenManager
}

func NewNotifyHandler(mgr *ws.Manager, tokens *auth.TokenManager) *NotifyHandler {
	return &NotifyHandler{mgr: mgr, tokens: tokens}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS upgrades to websocket for the authenticated user
// GET /ws?token=<jwt>
func (h *NotifyHandler) HandleUserWS(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	claims, err := h.tokens.Verify(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(userID, conn)
	log.Printf("user connected: %d", userID)

	defer func() {
		h.mgr.Unregister(userID)
		log.Printf("user disconnected: %d", userID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %d closed connection", userID)
			} else {
				log.Printf("read error from user %d: %v", userID, err)
			}
			return
		}
	}
}
