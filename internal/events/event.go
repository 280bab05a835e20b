// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

// SchemaVersion is the current FeedbackRecorded schema version.
const SchemaVersion = 1

// Validation errors for FeedbackRecorded.
var (
	ErrMissingEventID = errors.New("event_id is required")
	ErrMissingUserID  = errors.New("user_id is required")
	ErrMissingItemID  = errors.New("item_id is required")
)

// FeedbackRecorded is published after a feedback event has been applied to
// the store. LikedCount is the size of the user's liked set afterwards.
type FeedbackRecorded struct {
	SchemaVersion int       `json:"schema_version"`
	EventID       string    `json:"event_id"`
	UserID        string    `json:"user_id"`
	ItemID        string    `json:"item_id"`
	Liked         bool      `json:"liked"`
	LikedCount    int       `json:"liked_count"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// NewFeedbackRecorded builds an event with a fresh UUID.
func NewFeedbackRecorded(event recommend.FeedbackEvent, likedCount int, at time.Time) *FeedbackRecorded {
	return &FeedbackRecorded{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		UserID:        event.UserID,
		ItemID:        event.ItemID,
		Liked:         event.Liked,
		LikedCount:    likedCount,
		RecordedAt:    at.UTC(),
	}
}

// Validate checks required fields.
func (e *FeedbackRecorded) Validate() error {
	switch {
	case e.EventID == "":
		return ErrMissingEventID
	case e.UserID == "":
		return ErrMissingUserID
	case e.ItemID == "":
		return ErrMissingItemID
	}
	return nil
}

// Marshal validates and encodes the event as JSON.
func (e *FeedbackRecorded) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// UnmarshalFeedbackRecorded decodes and validates an event payload.
func UnmarshalFeedbackRecorded(data []byte) (*FeedbackRecorded, error) {
	var event FeedbackRecorded
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	return &event, nil
}
