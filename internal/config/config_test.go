package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "categories", cfg.TopicSet)
	assert.Equal(t, 500*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.CatalogLatency)
	assert.Equal(t, 800*time.Millisecond, cfg.ImageLatencyMin)
	assert.Equal(t, 2*time.Second, cfg.ImageLatencyMax)
	assert.Zero(t, cfg.ImageFailureRate)
	assert.Equal(t, 4, cfg.EnrichConcurrency)
	assert.Empty(t, cfg.NATSURL)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOPIC_SET", "moods")
	t.Setenv("TYPING_DELAY", "50ms")
	t.Setenv("IMAGE_FAILURE_RATE", "0.25")
	t.Setenv("ENRICH_CONCURRENCY", "8")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("AUTH_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "moods", cfg.TopicSet)
	assert.Equal(t, 50*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, 0.25, cfg.ImageFailureRate)
	assert.Equal(t, 8, cfg.EnrichConcurrency)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.True(t, cfg.AuthEnabled)
}

func TestLoadMalformedValues(t *testing.T) {
	t.Setenv("TYPING_DELAY", "soon")
	t.Setenv("ENRICH_CONCURRENCY", "many")
	t.Setenv("IMAGE_FAILURE_RATE", "often")
	t.Setenv("AUTH_ENABLED", "yep")

	cfg := Load()

	assert.Equal(t, 500*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, 4, cfg.EnrichConcurrency)
	assert.Zero(t, cfg.ImageFailureRate)
	assert.False(t, cfg.AuthEnabled)
}
