package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// After any log mutation the server pushes a data.updated message to the
// owner's open sockets so other views can reload without polling.

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Write serializes all frames on the connection; gorilla/websocket allows
// only one concurrent writer, and broadcasts race the keepalive pings.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}

var _hub *RealtimeHub

// InitEventHub wires the package-level emitter; safe to leave uninitialized
// in tests, EmitDataUpdated becomes a no-op then.
func InitEventHub(h *RealtimeHub) { _hub = h }

// EmitDataUpdated tells the user's open clients that a collection changed.
// scope is "food", "water", "exercise", "weight" or "profile".
func EmitDataUpdated(userID uint, scope string) {
	if _hub == nil {
		return
	}
	_hub.Broadcast(userID, map[string]any{
		"kind":  "data.updated",
		"scope": scope,
		"at":    time.Now().UTC().Format(time.RFC3339),
	})
}
