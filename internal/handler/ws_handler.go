package handler

import (
	"net/http"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is handled by the CORS middleware; the upgrade
	// itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler attaches authenticated clients to the inbox hub.
type WsHandler struct {
	hub *inbox.Hub
}

// NewWsHandler creates the websocket handler.
func NewWsHandler(hub *inbox.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// InboxStream upgrades the connection and subscribes the client to its
// tenant's new-message events.
func (h *WsHandler) InboxStream(c *gin.Context) {
	_, tenantID := currentUser(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("falha no upgrade do websocket", zap.Error(err))
		return
	}
	h.hub.Register(tenantID, conn)
}
