// Package model defines data structures for the shopping assistant.
package model

import (
	"time"
)

// Author identifies who wrote a conversation message.
type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

// ChatMessage is one immutable entry in a conversation transcript.
// Messages are append-only; ordering is insertion order.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitTextRequest is the request to submit free text to a session.
type SubmitTextRequest struct {
	Text string `json:"text"`
}

// SelectTopicRequest is the request to select a category or mood.
type SelectTopicRequest struct {
	Topic string `json:"topic"`
}
