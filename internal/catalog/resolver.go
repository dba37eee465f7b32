package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/moodcart/shopping-assistant/pkg/clock"
	"github.com/moodcart/shopping-assistant/pkg/logger"
	"github.com/moodcart/shopping-assistant/pkg/metrics"

	"go.uber.org/zap"
)

// MatchKind reports which matching stage produced a result.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
	MatchWord      MatchKind = "word"
	MatchDefault   MatchKind = "default"
)

// Resolver maps a free-text query plus a topic tag to an ordered item
// list. It is total: every query resolves to a non-empty list.
type Resolver struct {
	taxonomy *Taxonomy
	clock    clock.Clock
	latency  time.Duration
	logger   *logger.Logger
}

// NewResolver creates a resolver. Latency models the upstream catalog call
// the lookup replaces and is applied through the injected clock.
func NewResolver(tax *Taxonomy, clk clock.Clock, latency time.Duration, log *logger.Logger) *Resolver {
	return &Resolver{
		taxonomy: tax,
		clock:    clk,
		latency:  latency,
		logger:   log,
	}
}

// Resolve returns the item list for a query under a topic tag. Unrecognized
// tags use the taxonomy fallback topic. The context only bounds the
// simulated latency; resolution itself cannot fail.
func (r *Resolver) Resolve(ctx context.Context, query, tag string) ([]string, MatchKind) {
	start := time.Now()
	_ = r.clock.Sleep(ctx, r.latency)

	topic := r.taxonomy.GetOrFallback(tag)
	items, kind := match(query, topic)

	metrics.RecordResolution(topic.Tag, string(kind), time.Since(start).Seconds())
	r.logger.Debug("catalog resolved",
		zap.String("topic", topic.Tag),
		zap.String("query", query),
		zap.String("match", string(kind)),
		zap.Int("items", len(items)),
	)

	return items, kind
}

// match is the pure lookup: exact key, then bidirectional substring in
// table definition order, then per-word containment for words longer than
// three characters, then the topic default list.
func match(query string, topic *Topic) ([]string, MatchKind) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return topic.Defaults, MatchDefault
	}

	for _, e := range topic.Keywords {
		if e.Key == q {
			return e.Items, MatchExact
		}
	}

	for _, e := range topic.Keywords {
		if strings.Contains(q, e.Key) || strings.Contains(e.Key, q) {
			return e.Items, MatchSubstring
		}
	}

	for _, e := range topic.Keywords {
		for _, word := range strings.Fields(e.Key) {
			if len(word) > 3 && strings.Contains(q, word) {
				return e.Items, MatchWord
			}
		}
	}

	return topic.Defaults, MatchDefault
}
