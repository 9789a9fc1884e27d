package services

import (
	"encoding/json"
	"sync"

	"github.com/Bharathihub/AI-powered-diet-planner/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub streams fired reminders and consumption toggles to the
// websocket clients of a user. Evaluation stays fire-and-forget; a dead
// connection only loses its own messages.
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

// BroadcastReminder pushes one fired reminder to every open socket of the user.
func (h *RealtimeHub) BroadcastReminder(userID uint, reminder FiredReminder) {
	h.broadcast(userID, map[string]any{
		"kind":     "reminder.fired",
		"reminder": reminder,
	})
}

// BroadcastConsumption mirrors a consumption toggle to other open tabs.
func (h *RealtimeHub) BroadcastConsumption(userID uint, date string, slot models.MealSlot, consumed bool) {
	h.broadcast(userID, map[string]any{
		"kind":     "consumption.toggled",
		"date":     date,
		"slot":     slot,
		"consumed": consumed,
	})
}

func (h *RealtimeHub) broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
