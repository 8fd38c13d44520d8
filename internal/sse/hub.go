package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one message pushed to SSE clients
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	PlayerID  string      `json:"player_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected SSE stream. A nil EventFilter accepts every event
// type; an empty PlayerID follows every player.
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool
	PlayerID     string

	dropped atomic.Int64
}

// Dropped returns how many events were skipped because the client lagged
func (c *Client) Dropped() int64 { return c.dropped.Load() }

func (c *Client) wants(event Event) bool {
	if c.EventFilter != nil && !c.EventFilter[event.Type] {
		return false
	}
	return c.PlayerID == "" || event.PlayerID == "" || c.PlayerID == event.PlayerID
}

// Hub fans broadcast events out to registered clients from a single loop
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	broadcast  chan Event
	register   chan *Client
	unregister chan string
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	now func() time.Time
}

// NewHub creates a hub; call Start before broadcasting
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start launches the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the delivery loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case <-h.shutdown:
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
		case id := <-h.unregister:
			h.remove(id)
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[id]; ok {
		close(client.EventChannel)
		delete(h.clients, id)
	}
}

// deliver never blocks: a client with a full channel misses the event
func (h *Hub) deliver(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.wants(event) {
			continue
		}
		select {
		case client.EventChannel <- event:
		default:
			client.dropped.Add(1)
		}
	}
}

// Register adds a client. Registration completes asynchronously on the
// delivery loop.
func (h *Hub) Register(eventTypes []string, playerID string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		PlayerID:     playerID,
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}
	h.register <- client
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	h.BroadcastTo("", eventType, payload)
}

// BroadcastTo sends an event to the clients following playerID
func (h *Hub) BroadcastTo(playerID, eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		PlayerID:  playerID,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}
	select {
	case h.broadcast <- event:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType, "player_id", playerID)
	}
}

// ClientCount returns the number of registered clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders event in text/event-stream framing
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeEvent, err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)
	return buf.Bytes(), nil
}
