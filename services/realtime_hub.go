package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	mu   sync.Mutex
	Conn *websocket.Conn
}

// Write serializes all frames to the connection; gorilla/websocket allows
// only one concurrent writer, and both the hub broadcast and the keep-alive
// ping write to the same conn.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans app notices out to every connected device. The app is
// single-user, so there is no per-user grouping; a user may still have more
// than one device connected.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
