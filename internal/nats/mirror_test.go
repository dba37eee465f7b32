package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodcart/shopping-assistant/internal/model"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "chat.abc-123.msg.user", MessageSubject("abc-123", model.AuthorUser))
	assert.Equal(t, "chat.abc-123.msg.bot", MessageSubject("abc-123", model.AuthorBot))
	assert.Equal(t, "chat.abc-123.event.notice", EventSubject("abc-123", model.EventTypeNotice))
	assert.Equal(t, "chat.abc-123.event.error", EventSubject("abc-123", model.EventTypeError))
}
