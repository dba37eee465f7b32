// Package dialogue implements the conversation state machine that drives
// the shopping assistant: it tracks the dialogue stage, appends scripted
// and user messages, runs catalog resolution, and applies image enrichment
// results as they settle.
package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moodcart/shopping-assistant/internal/catalog"
	"github.com/moodcart/shopping-assistant/internal/image"
	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/internal/product"
	"github.com/moodcart/shopping-assistant/pkg/clock"
	"github.com/moodcart/shopping-assistant/pkg/logger"
	"github.com/moodcart/shopping-assistant/pkg/metrics"
)

// Scripted bot copy.
const (
	msgLookingUp      = "I'll find recommendations for %s. Just a moment..."
	msgInitialResults = "Here are some %s recommendations..."
	msgFinalResults   = "Here are detailed recommendations for %s!"
	msgFallback       = "I'm not sure how to respond to that right now."
	msgTrouble        = "I'm having trouble finding product details right now. Please try again later."
	noticeImages      = "Some product images couldn't be loaded"
)

// ErrUnknownTopic is returned when a selected tag is not in the taxonomy.
var ErrUnknownTopic = errors.New("unknown topic")

// ErrNoTopic is returned by Resubmit before any topic was selected.
var ErrNoTopic = errors.New("no topic selected")

// Recorder receives appended messages and events for out-of-band delivery
// (e.g. a JetStream mirror). Implementations must not block.
type Recorder interface {
	RecordMessage(sessionID string, msg model.ChatMessage)
	RecordEvent(event model.ChatEvent)
}

// Update is pushed to subscribers on every state mutation. Exactly one of
// the fields is set.
type Update struct {
	Snapshot *model.Snapshot  `json:"snapshot,omitempty"`
	Notice   *model.ChatEvent `json:"notice,omitempty"`
}

// Deps bundles the engine's collaborators. Recorder may be nil.
type Deps struct {
	Taxonomy    *catalog.Taxonomy
	Resolver    *catalog.Resolver
	Pipeline    *image.Pipeline
	Clock       clock.Clock
	TypingDelay time.Duration
	Logger      *logger.Logger
	Recorder    Recorder
}

// Engine is the dialogue state machine for one session. All state is
// guarded by a single mutex; collaborators never mutate it directly.
type Engine struct {
	id   string
	deps Deps

	mu          sync.Mutex
	closed      bool
	messages    []model.ChatMessage
	stage       model.Stage
	topic       *catalog.Topic
	lastQuery   string
	isResolving bool
	products    []model.Product
	batchToken  string
	subs        map[chan Update]struct{}
}

// NewEngine creates an engine for a session, emits the scripted greeting,
// and enters the awaiting-category-or-mood stage.
func NewEngine(sessionID string, deps Deps) *Engine {
	e := &Engine{
		id:    sessionID,
		deps:  deps,
		stage: model.StageAwaitingTopic,
		subs:  make(map[chan Update]struct{}),
	}

	e.mu.Lock()
	e.appendLocked(model.AuthorBot, deps.Taxonomy.Greeting())
	e.mu.Unlock()

	return e
}

// SelectTopic records the chosen category or mood, echoes it as a user
// message, schedules the topic prompt after the typing delay, and moves to
// the awaiting-product-query stage.
func (e *Engine) SelectTopic(tag string) error {
	topic, ok := e.deps.Taxonomy.Get(tag)
	if !ok {
		return ErrUnknownTopic
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.topic = topic
	e.stage = model.StageAwaitingQuery
	e.appendLocked(model.AuthorUser, topic.Echo())
	e.broadcastSnapshotLocked()
	e.mu.Unlock()

	e.scheduleBot(topic.Prompt)
	return nil
}

// SubmitText handles free-text input. Blank text is a silent no-op. In the
// awaiting-product-query stage it begins product resolution; in any other
// stage it replies with the generic fallback.
func (e *Engine) SubmitText(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.appendLocked(model.AuthorUser, text)

	if e.stage != model.StageAwaitingQuery {
		e.broadcastSnapshotLocked()
		e.mu.Unlock()
		e.scheduleBot(msgFallback)
		return
	}

	topic := e.topic
	token := uuid.Must(uuid.NewV7()).String()
	e.batchToken = token
	e.lastQuery = text
	e.isResolving = true
	e.stage = model.StageIdle
	e.broadcastSnapshotLocked()
	e.mu.Unlock()

	e.scheduleBot(fmt.Sprintf(msgLookingUp, text))
	go e.resolveProducts(text, topic, token)
}

// Resubmit re-enters the awaiting-product-query stage and prompts for
// another query scoped to the current topic.
func (e *Engine) Resubmit() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	if e.topic == nil {
		e.mu.Unlock()
		return ErrNoTopic
	}
	topic := e.topic
	e.stage = model.StageAwaitingQuery
	e.broadcastSnapshotLocked()
	e.mu.Unlock()

	e.scheduleBot(topic.ResubmitPrompt)
	return nil
}

// Snapshot returns a read-only copy of the conversation state and the
// current product batch.
func (e *Engine) Snapshot() model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe registers for updates. The returned cancel func must be called
// when the subscriber is done. Slow subscribers drop intermediate updates
// rather than block the engine.
func (e *Engine) Subscribe() (<-chan Update, func()) {
	ch := make(chan Update, 16)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	e.subs[ch] = struct{}{}
	e.mu.Unlock()

	return ch, func() {
		e.mu.Lock()
		if _, ok := e.subs[ch]; ok {
			delete(e.subs, ch)
			close(ch)
		}
		e.mu.Unlock()
	}
}

// Close stops the engine: further intents are ignored and all subscriber
// channels are closed. In-flight background work discards its results.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.batchToken = ""
	for ch := range e.subs {
		close(ch)
	}
	e.subs = make(map[chan Update]struct{})
}

// resolveProducts runs the slow path: catalog resolution, placeholder
// batch publication, then image enrichment. The batch token drops results
// that belong to a superseded query. Nothing here escapes as an error; a
// panic from the resolution stage becomes a conversational trouble message.
func (e *Engine) resolveProducts(query string, topic *catalog.Topic, token string) {
	defer func() {
		if r := recover(); r != nil {
			e.deps.Logger.Error("product resolution failed",
				zap.String("session_id", e.id),
				zap.Any("panic", r),
			)
			e.mu.Lock()
			if e.closed || e.batchToken != token {
				e.mu.Unlock()
				return
			}
			e.isResolving = false
			e.appendLocked(model.AuthorBot, msgTrouble)
			e.broadcastSnapshotLocked()
			e.mu.Unlock()
			e.emitEvent(model.EventTypeError, "Failed to get product details")
		}
	}()

	ctx := context.Background()

	items, _ := e.deps.Resolver.Resolve(ctx, query, topic.Tag)
	batch := product.Synthesize(items, topic)

	e.mu.Lock()
	if e.closed || e.batchToken != token {
		e.mu.Unlock()
		metrics.StaleBatchesDropped.Inc()
		return
	}
	e.products = batch
	e.isResolving = false
	e.appendLocked(model.AuthorBot, fmt.Sprintf(msgInitialResults, query))
	e.broadcastSnapshotLocked()
	e.mu.Unlock()

	enriched, failed := e.deps.Pipeline.Enrich(ctx, batch, topic.Tag)

	e.mu.Lock()
	if e.closed || e.batchToken != token {
		e.mu.Unlock()
		metrics.StaleBatchesDropped.Inc()
		return
	}
	e.replaceByIdentityLocked(enriched)
	e.appendLocked(model.AuthorBot, fmt.Sprintf(msgFinalResults, query))
	e.broadcastSnapshotLocked()
	e.mu.Unlock()

	if failed > 0 {
		e.emitEvent(model.EventTypeNotice, noticeImages)
	}
}

// replaceByIdentityLocked merges enriched products into the current batch
// by product ID, so a batch reordered or superseded elsewhere is never
// clobbered positionally.
func (e *Engine) replaceByIdentityLocked(enriched []model.Product) {
	byID := make(map[string]model.Product, len(enriched))
	for _, p := range enriched {
		byID[p.ID] = p
	}
	for i, p := range e.products {
		if np, ok := byID[p.ID]; ok {
			e.products[i] = np
		}
	}
}

// scheduleBot appends a bot message after the typing delay.
func (e *Engine) scheduleBot(content string) {
	e.deps.Clock.AfterFunc(e.deps.TypingDelay, func() {
		e.mu.Lock()
		if e.closed {
			e.mu.Unlock()
			return
		}
		e.appendLocked(model.AuthorBot, content)
		e.broadcastSnapshotLocked()
		e.mu.Unlock()
	})
}

func (e *Engine) appendLocked(author model.Author, content string) {
	msg := model.ChatMessage{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Content:   content,
		Author:    author,
		CreatedAt: e.deps.Clock.Now(),
	}
	e.messages = append(e.messages, msg)
	metrics.MessagesTotal.WithLabelValues(string(author)).Inc()
	if e.deps.Recorder != nil {
		e.deps.Recorder.RecordMessage(e.id, msg)
	}
}

func (e *Engine) emitEvent(kind model.EventType, reason string) {
	event := model.ChatEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: e.id,
		Type:      kind,
		Reason:    reason,
		CreatedAt: e.deps.Clock.Now(),
	}
	if e.deps.Recorder != nil {
		e.deps.Recorder.RecordEvent(event)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.sendLocked(Update{Notice: &event})
}

func (e *Engine) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		SessionID:   e.id,
		Messages:    make([]model.ChatMessage, len(e.messages)),
		Stage:       e.stage,
		IsResolving: e.isResolving,
		LastQuery:   e.lastQuery,
		Products:    make([]model.Product, len(e.products)),
	}
	copy(snap.Messages, e.messages)
	copy(snap.Products, e.products)
	if e.topic != nil {
		snap.SelectedTopic = e.topic.Tag
	}
	return snap
}

func (e *Engine) broadcastSnapshotLocked() {
	snap := e.snapshotLocked()
	e.sendLocked(Update{Snapshot: &snap})
}

func (e *Engine) sendLocked(u Update) {
	for ch := range e.subs {
		select {
		case ch <- u:
		default:
		}
	}
}
