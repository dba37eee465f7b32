package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moodcart/shopping-assistant/internal/middleware"
	"github.com/moodcart/shopping-assistant/internal/session"
	"github.com/moodcart/shopping-assistant/pkg/logger"
	"github.com/moodcart/shopping-assistant/pkg/metrics"

	"go.uber.org/zap"
)

// heartbeatEvent keeps idle SSE connections alive through proxies.
type heartbeatEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// StreamHandler handles SSE streaming endpoints.
type StreamHandler struct {
	service *session.Service
	logger  *logger.Logger
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(svc *session.Service, log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		service: svc,
		logger:  log,
	}
}

// Stream handles GET /api/v1/sessions/:id/stream
//
// The client receives the current snapshot immediately, then a snapshot
// event on every state mutation and a notice event for each non-fatal
// signal (e.g. partial image failures).
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, engine, err := h.service.Get(ctx, sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	metrics.IncrementSSEConnections()
	defer metrics.DecrementSSEConnections()

	updates, cancel := engine.Subscribe()
	defer cancel()

	snap := engine.Snapshot()
	sendSSEEvent(w, flusher, "snapshot", snap)

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("SSE client disconnected", zap.String("session_id", sessionID))
			return

		case <-heartbeat.C:
			sendSSEEvent(w, flusher, "heartbeat", &heartbeatEvent{
				Timestamp: time.Now(),
			})

		case update, open := <-updates:
			if !open {
				sendSSEEvent(w, flusher, "closed", map[string]string{
					"session_id": sessionID,
				})
				return
			}
			switch {
			case update.Snapshot != nil:
				sendSSEEvent(w, flusher, "snapshot", update.Snapshot)
			case update.Notice != nil:
				sendSSEEvent(w, flusher, "notice", update.Notice)
			}
		}
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
	flusher.Flush()

	return nil
}
