// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package websocket streams recorded feedback to browsers.

The hub sits behind the feedback event consumer: every FeedbackRecorded
event the consumer decodes is passed to Hub.HandleFeedback and fanned out
to all connected clients. Each client runs two goroutines. readPump
answers application pings and notices disconnects. writePump forwards
queued messages and sends control pings.

	events.Consumer ──HandleFeedback──▶ Hub ──▶ Client 1..n

Frames are JSON:

	{"type":"feedback","data":{"event_id":"...","user_id":"u1","item_id":"Rome","liked":true,...}}
	{"type":"pong","data":null}

Delivery is best effort. A full broadcast queue drops the message and a
client whose send buffer is full is disconnected.

The hub is run under the supervisor tree via services.NewWebSocketHubService
and closes all clients when its context is cancelled.
*/
package websocket
