package model

import (
	"time"
)

// EventType represents the type of session event.
type EventType string

const (
	// EventTypeNotice is a non-fatal, user-visible notice (toast).
	EventTypeNotice EventType = "notice"
	// EventTypeError is a resolution failure surfaced to the user.
	EventTypeError EventType = "error"
)

// ChatEvent is an ephemeral out-of-band signal for the client, separate
// from the conversation transcript.
type ChatEvent struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Type      EventType `json:"type"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
