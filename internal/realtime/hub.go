package realtime

import (
	"encoding/json"
	"sync"
)

// EventType identifies what happened to a task.
type EventType string

const (
	EventTaskAssigned  EventType = "task_assigned"
	EventTaskCompleted EventType = "task_completed"
)

// Event is the payload pushed to connected clients.
type Event struct {
	Type   EventType `json:"type"`
	TaskID int       `json:"task_id"`
}

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active user connections and pushes task events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[int]map[Client]struct{}
}

var (
	hubInstance *Hub
	once        sync.Once
)

// GetHub returns the singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{clients: make(map[int]map[Client]struct{})}
	})
	return hubInstance
}

// Register adds a client under a user id.
func (h *Hub) Register(userID int, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; !ok {
		h.clients[userID] = make(map[Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

// Unregister removes a client; when a user has no more clients the entry is
// dropped.
func (h *Hub) Unregister(userID int, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, userID)
		}
	}
}

// Broadcast sends an event to every connection the user currently holds.
// A user with no connections is not an error; notifications are best-effort.
func (h *Hub) Broadcast(userID int, evt Event) {
	message, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		// Write failures are cleaned up by the owning handler.
		_ = c.Send(message)
	}
}
