// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package websocket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderlust/internal/events"
	"github.com/tomtom215/wanderlust/internal/recommend"
)

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

// testClient builds a client without a connection.
func testClient(hub *Hub, buffer int) *Client {
	return &Client{
		id:      clientIDCounter.Add(1),
		hub:     hub,
		send:    make(chan Message, buffer),
		removed: make(chan struct{}),
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.GetClientCount() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("GetClientCount() = %d, want %d", hub.GetClientCount(), want)
}

func receive(t *testing.T, c *Client) (Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}, false
	}
}

func TestNewHub(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	if hub.clients == nil || hub.broadcast == nil || hub.Register == nil || hub.Unregister == nil {
		t.Fatal("NewHub() left fields uninitialized")
	}
	if cap(hub.broadcast) != broadcastBuffer {
		t.Errorf("broadcast capacity = %d, want %d", cap(hub.broadcast), broadcastBuffer)
	}
	if hub.GetClientCount() != 0 {
		t.Errorf("GetClientCount() = %d, want 0", hub.GetClientCount())
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	a := testClient(hub, 4)
	b := testClient(hub, 4)

	hub.Register <- a
	hub.Register <- b
	waitForClients(t, hub, 2)

	hub.Unregister <- a
	waitForClients(t, hub, 1)

	if _, ok := <-a.send; ok {
		t.Error("unregistered client send channel still open")
	}

	// Unregistering twice must not close the channel again.
	hub.Unregister <- a
	waitForClients(t, hub, 1)
}

func TestHub_BroadcastJSON(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	clients := []*Client{testClient(hub, 4), testClient(hub, 4), testClient(hub, 4)}
	for _, c := range clients {
		hub.Register <- c
	}
	waitForClients(t, hub, len(clients))

	if !hub.BroadcastJSON(MessageTypeFeedback, map[string]string{"item_id": "Rome"}) {
		t.Fatal("BroadcastJSON() = false with an empty queue")
	}
	for i, c := range clients {
		msg, ok := receive(t, c)
		if !ok {
			t.Fatalf("client %d channel closed", i)
		}
		if msg.Type != MessageTypeFeedback {
			t.Errorf("client %d message type = %q, want %q", i, msg.Type, MessageTypeFeedback)
		}
	}
}

func TestHub_BroadcastJSON_QueueFull(t *testing.T) {
	t.Parallel()

	// Not running, so nothing drains the queue.
	hub := NewHub()
	for i := 0; i < broadcastBuffer; i++ {
		if !hub.BroadcastJSON(MessageTypeFeedback, i) {
			t.Fatalf("BroadcastJSON() = false at %d, want true", i)
		}
	}
	if hub.BroadcastJSON(MessageTypeFeedback, "overflow") {
		t.Error("BroadcastJSON() = true with a full queue")
	}
}

func TestHub_SlowClientDropped(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	slow := testClient(hub, 1)
	fast := testClient(hub, 8)
	hub.Register <- slow
	hub.Register <- fast
	waitForClients(t, hub, 2)

	hub.BroadcastJSON(MessageTypeFeedback, 1)
	hub.BroadcastJSON(MessageTypeFeedback, 2)
	waitForClients(t, hub, 1)

	if _, ok := receive(t, slow); !ok {
		t.Fatal("slow client lost its buffered message")
	}
	if _, ok := receive(t, slow); ok {
		t.Error("slow client channel still open after overflow")
	}
	for i := 0; i < 2; i++ {
		if _, ok := receive(t, fast); !ok {
			t.Fatalf("fast client message %d missing", i)
		}
	}
}

func TestHub_HandleFeedback(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	c := testClient(hub, 4)
	hub.Register <- c
	waitForClients(t, hub, 1)

	event := events.NewFeedbackRecorded(recommend.FeedbackEvent{UserID: "u1", ItemID: "Rome", Liked: true}, 1, time.Now())
	if err := hub.HandleFeedback(context.Background(), event); err != nil {
		t.Fatalf("HandleFeedback() error = %v", err)
	}

	msg, ok := receive(t, c)
	if !ok {
		t.Fatal("client channel closed")
	}
	got, isEvent := msg.Data.(*events.FeedbackRecorded)
	if !isEvent {
		t.Fatalf("message data = %T, want *events.FeedbackRecorded", msg.Data)
	}
	if got.EventID != event.EventID || got.ItemID != "Rome" {
		t.Errorf("HandleFeedback() sent %+v, want %+v", got, event)
	}
}

func TestHub_RunWithContext_ClosesClients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		newContext func() (context.Context, context.CancelFunc)
		cancel     bool
		wantErr    error
		wantReason ShutdownReason
	}{
		{
			name:       "canceled",
			newContext: func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			cancel:     true,
			wantErr:    context.Canceled,
			wantReason: ShutdownReasonContextCanceled,
		},
		{
			name: "deadline",
			newContext: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 50*time.Millisecond)
			},
			wantErr:    context.DeadlineExceeded,
			wantReason: ShutdownReasonContextDeadline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hub := NewHub()
			ctx, cancel := tt.newContext()
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- hub.RunWithContext(ctx) }()

			c := testClient(hub, 4)
			hub.Register <- c
			waitForClients(t, hub, 1)

			if tt.cancel {
				cancel()
			}

			select {
			case err := <-errCh:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RunWithContext() error = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("RunWithContext() did not return")
			}

			if _, ok := <-c.send; ok {
				t.Error("client channel open after shutdown")
			}
			if hub.GetClientCount() != 0 {
				t.Errorf("GetClientCount() = %d after shutdown, want 0", hub.GetClientCount())
			}
			if got := shutdownReason(ctx); got != tt.wantReason {
				t.Errorf("shutdownReason() = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestMarshalMessage(t *testing.T) {
	t.Parallel()

	data, err := MarshalMessage(Message{Type: MessageTypePong})
	if err != nil {
		t.Fatalf("MarshalMessage() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["type"] != MessageTypePong {
		t.Errorf("type = %v, want %q", decoded["type"], MessageTypePong)
	}
	if v, ok := decoded["data"]; !ok || v != nil {
		t.Errorf("data = %v, want null", v)
	}
}

func TestHub_Attach(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		running bool
		ctx     context.Context
		want    bool
	}{
		{"running hub", true, context.Background(), true},
		{"stopped hub times out", false, context.Background(), false},
		{"cancelled request", false, cancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hub := NewHub()
			if tt.running {
				hub = startHub(t)
			}

			start := time.Now()
			got := hub.Attach(tt.ctx, testClient(hub, 1), 50*time.Millisecond)
			if got != tt.want {
				t.Fatalf("Attach() = %v, want %v", got, tt.want)
			}
			if elapsed := time.Since(start); elapsed > time.Second {
				t.Errorf("Attach() took %v, want bounded by its timeout", elapsed)
			}
			if tt.running {
				waitForClients(t, hub, 1)
			}
		})
	}
}
