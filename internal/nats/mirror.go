package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/moodcart/shopping-assistant/internal/model"
)

const (
	// StreamName is the name of the chat mirror stream.
	StreamName = "CHAT"

	// SubjectPrefix is the prefix for all chat subjects.
	SubjectPrefix = "chat"
)

// Mirror publishes conversation messages and events to JetStream. It
// implements dialogue.Recorder; publishes are asynchronous so the dialogue
// engine never blocks on the broker.
type Mirror struct {
	client *Client
}

// NewMirror creates a mirror over an established client.
func NewMirror(client *Client) *Mirror {
	return &Mirror{client: client}
}

// EnsureStream ensures the chat stream exists.
func (m *Mirror) EnsureStream(ctx context.Context) error {
	js := m.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      7 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Description: "Mirror of shopping assistant conversations",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// MessageSubject returns the subject for a conversation message.
func MessageSubject(sessionID string, author model.Author) string {
	return fmt.Sprintf("%s.%s.msg.%s", SubjectPrefix, sessionID, author)
}

// EventSubject returns the subject for a session event.
func EventSubject(sessionID string, eventType model.EventType) string {
	return fmt.Sprintf("%s.%s.event.%s", SubjectPrefix, sessionID, eventType)
}

// RecordMessage mirrors an appended conversation message.
func (m *Mirror) RecordMessage(sessionID string, msg model.ChatMessage) {
	m.publish(MessageSubject(sessionID, msg.Author), msg)
}

// RecordEvent mirrors a session event.
func (m *Mirror) RecordEvent(event model.ChatEvent) {
	m.publish(EventSubject(event.SessionID, event.Type), event)
}

func (m *Mirror) publish(subject string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.client.logger.Error("failed to marshal mirror payload",
			zap.String("subject", subject),
			zap.Error(err),
		)
		return
	}

	if _, err := m.client.JetStream().PublishAsync(subject, data); err != nil {
		m.client.logger.Warn("failed to mirror to JetStream",
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}
