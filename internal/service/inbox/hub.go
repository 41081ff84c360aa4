package inbox

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const clientSendBuffer = 32

// Client is one websocket subscriber, bound to a tenant.
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	tenantID uint
}

// Hub tracks connected clients grouped by tenant and fans events out to the
// right group only. Events never cross tenant boundaries.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*Client]struct{})}
}

// Register attaches a websocket connection to a tenant's group and starts
// its write pump. The read pump only watches for close.
func (h *Hub) Register(tenantID uint, conn *websocket.Conn) *Client {
	client := &Client{
		conn:     conn,
		send:     make(chan []byte, clientSendBuffer),
		tenantID: tenantID,
	}

	h.mu.Lock()
	if h.clients[tenantID] == nil {
		h.clients[tenantID] = make(map[*Client]struct{})
	}
	h.clients[tenantID][client] = struct{}{}
	h.mu.Unlock()

	go client.writePump(h)
	go client.readPump(h)
	return client
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if group, ok := h.clients[client.tenantID]; ok {
		if _, ok := group[client]; ok {
			delete(group, client)
			close(client.send)
			if len(group) == 0 {
				delete(h.clients, client.tenantID)
			}
		}
	}
	h.mu.Unlock()
}

// Broadcast delivers an event to every client of its tenant. Slow clients
// get dropped instead of blocking the hub.
func (h *Hub) Broadcast(event Event) {
	raw, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("falha ao serializar evento do inbox", zap.Error(err))
		return
	}

	h.mu.RLock()
	group := h.clients[event.TenantID]
	stale := make([]*Client, 0)
	for client := range group {
		select {
		case client.send <- raw:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		zap.L().Warn("cliente do inbox lento, desconectando",
			zap.Uint("tenantId", client.tenantID))
		h.unregister(client)
		client.conn.Close()
	}
}

func (c *Client) writePump(h *Hub) {
	for raw := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			break
		}
	}
	c.conn.Close()
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
