// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/wanderlust/internal/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Clients only send pings, so inbound frames stay small.
	maxMessageSize = 4 * 1024

	sendBuffer = 64
)

// clientIDCounter hands out monotonically increasing client ids.
var clientIDCounter atomic.Uint64

// Client connects one websocket to the hub.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn
	send chan Message

	// removed is closed by the hub together with send.
	removed chan struct{}

	// pongs is never closed; readPump must not touch send, which the hub
	// may close at any time.
	pongs chan struct{}
}

// NewClient creates a client with a unique id.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:      clientIDCounter.Add(1),
		hub:     hub,
		conn:    conn,
		send:    make(chan Message, sendBuffer),
		removed: make(chan struct{}),
		pongs:   make(chan struct{}, 1),
	}
}

// close ends the client's stream. Only the hub calls it, under its lock.
func (c *Client) close() {
	close(c.send)
	close(c.removed)
}

// ID returns the client's id.
func (c *Client) ID() uint64 {
	return c.id
}

// readPump answers application pings and detects disconnects.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.Unregister <- c:
		case <-c.removed:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close")
			}
			return
		}
		if msg.Type == MessageTypePing {
			select {
			case c.pongs <- struct{}{}:
			default:
			}
		}
	}
}

// writePump owns every write on the connection: queued messages, pong
// replies and keepalive pings. A closed send channel ends the stream with
// a going-away frame.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		var err error
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.write(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			err = c.writeMessage(message)
		case <-c.pongs:
			err = c.writeMessage(Message{Type: MessageTypePong})
		case <-ticker.C:
			err = c.write(websocket.PingMessage, nil)
		}
		if err != nil {
			logging.Debug().Err(err).Uint64("client_id", c.id).Msg("feedback stream write failed")
			return
		}
	}
}

// writeMessage encodes message as a text frame. Encoding failures skip the
// message and keep the connection.
func (c *Client) writeMessage(message Message) error {
	data, err := MarshalMessage(message)
	if err != nil {
		logging.Error().Err(err).Str("message_type", message.Type).Msg("failed to encode stream message")
		return nil
	}
	return c.write(websocket.TextMessage, data)
}

func (c *Client) write(messageType int, data []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}

// Start runs the read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
