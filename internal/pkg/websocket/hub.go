package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// event pairs a room with its serialized payload
type event struct {
	roomID string
	data   []byte
}

// Hub maintains the set of active clients per chat room and pushes
// room events to them.
type Hub struct {
	// Registered clients organized by room ID
	clients map[string]map[*Client]bool

	// Channel for outbound room events
	events chan event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		events:     make(chan event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and event pushes
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case ev := <-h.events:
			h.pushEvent(ev)
		}
	}
}

// Broadcast serializes the event and queues it for every client
// subscribed to the room. Safe to call from any goroutine.
func (h *Hub) Broadcast(roomID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("roomID", roomID).
			Msg("Failed to marshal room event")
		return
	}
	h.events <- event{roomID: roomID, data: data}
}

// ClientCount returns the number of connected clients for a room
func (h *Hub) ClientCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[roomID])
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID := client.roomID
	if _, ok := h.clients[roomID]; !ok {
		h.clients[roomID] = make(map[*Client]bool)
	}
	h.clients[roomID][client] = true

	h.logger.Info().
		Str("roomID", roomID).
		Int64("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID := client.roomID
	if _, ok := h.clients[roomID]; ok {
		if _, ok := h.clients[roomID][client]; ok {
			delete(h.clients[roomID], client)
			close(client.send)

			if len(h.clients[roomID]) == 0 {
				delete(h.clients, roomID)
			}

			h.logger.Info().
				Str("roomID", roomID).
				Int64("userID", client.userID).
				Msg("Client unregistered")
		}
	}
}

// pushEvent delivers a serialized event to every client in its room.
// Clients whose send buffer is full are dropped.
func (h *Hub) pushEvent(ev event) {
	h.mu.RLock()
	clients, ok := h.clients[ev.roomID]
	if !ok {
		h.mu.RUnlock()
		return
	}
	var slow []*Client
	for client := range clients {
		select {
		case client.send <- ev.data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.unregisterClient(client)
	}

	h.logger.Debug().
		Str("roomID", ev.roomID).
		Int("clientCount", len(clients)).
		Msg("Event pushed to room")
}
