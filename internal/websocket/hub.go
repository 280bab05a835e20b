// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package websocket

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderlust/internal/events"
	"github.com/tomtom215/wanderlust/internal/logging"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful path (SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline means the parent deadline passed.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types sent over the feedback stream.
const (
	MessageTypeFeedback = "feedback"
	MessageTypePing     = "ping"
	MessageTypePong     = "pong"
)

// broadcastBuffer bounds queued broadcasts. Messages beyond it are dropped.
const broadcastBuffer = 256

// Message is one frame on the stream.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks connected clients and fans messages out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a hub. Call RunWithContext before registering clients.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// RunWithContext processes registrations and broadcasts until ctx is
// cancelled, then closes every client and returns ctx.Err().
//
// Shutdown is checked first and client lifecycle events before broadcasts,
// so a client registered before a broadcast always receives it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()
	logging.Info().Uint64("client_id", client.id).Int("total_clients", total).Msg("feedback stream client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.close()
	}
	total := len(h.clients)
	h.mu.Unlock()
	logging.Info().Uint64("client_id", client.id).Int("total_clients", total).Msg("feedback stream client disconnected")
}

// shutdown closes all clients and logs why. ctx.Err() is not logged as an
// error since cancellation is the expected way to stop.
func (h *Hub) shutdown(ctx context.Context) {
	count := h.closeAllClients()
	logging.Info().
		Str("component", "feedback-stream").
		Str("reason", string(shutdownReason(ctx))).
		Int("clients_closed", count).
		Msg("feedback stream hub stopped")
}

func shutdownReason(ctx context.Context) ShutdownReason {
	if ctx.Err() == context.DeadlineExceeded {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// sortedClients returns clients ordered by id. Callers hold h.mu.
func (h *Hub) sortedClients() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

// broadcastToClients delivers message to every client in id order. Clients
// whose send buffer is full are disconnected.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var slow []*Client
	for _, client := range h.sortedClients() {
		select {
		case client.send <- message:
		default:
			slow = append(slow, client)
		}
	}

	for _, client := range slow {
		client.close()
		delete(h.clients, client)
		logging.Warn().Uint64("client_id", client.id).Msg("dropping slow feedback stream client")
	}
}

func (h *Hub) closeAllClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.sortedClients()
	for _, client := range clients {
		client.close()
		delete(h.clients, client)
	}
	return len(clients)
}

// Attach registers client with the running hub. It returns false when ctx
// ends or timeout passes first, which happens while the hub is stopped or
// waiting to be restarted; the caller still owns the connection then.
func (h *Hub) Attach(ctx context.Context, client *Client, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case h.Register <- client:
		return true
	case <-ctx.Done():
	case <-timer.C:
	}
	logging.Warn().Uint64("client_id", client.id).Msg("feedback stream hub not running, rejecting client")
	return false
}

// BroadcastJSON queues a message for all clients. It never blocks; when the
// queue is full the message is dropped and false is returned.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) bool {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
		return true
	default:
		logging.Warn().Str("message_type", messageType).Msg("broadcast channel full, dropping message")
		return false
	}
}

// HandleFeedback forwards a consumed feedback event to connected clients.
// Its signature matches events.HandlerFunc so the hub can sit directly
// behind the event consumer. A full queue is not an error: redelivering
// the event would not help a slow browser.
func (h *Hub) HandleFeedback(ctx context.Context, event *events.FeedbackRecorded) error {
	if h.BroadcastJSON(MessageTypeFeedback, event) {
		logging.Ctx(ctx).Debug().
			Str("event_id", event.EventID).
			Int("clients", h.GetClientCount()).
			Msg("broadcast feedback")
	}
	return nil
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarshalMessage encodes a message as JSON.
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
