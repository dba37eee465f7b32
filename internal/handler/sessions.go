// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moodcart/shopping-assistant/internal/middleware"
	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/internal/session"
	"github.com/moodcart/shopping-assistant/pkg/logger"
)

// CreateSessionResponse carries the new session plus its initial snapshot
// so the client can render the greeting without a second round trip.
type CreateSessionResponse struct {
	Session  model.Session  `json:"session"`
	Snapshot model.Snapshot `json:"snapshot"`
}

// SessionHandler handles session lifecycle endpoints.
type SessionHandler struct {
	service *session.Service
	logger  *logger.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(svc *session.Service, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		service: svc,
		logger:  log,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.service.Create(ctx)
	if err != nil {
		h.logger.Error("failed to create session")
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	_, engine, err := h.service.Get(ctx, sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, &CreateSessionResponse{
		Session:  *sess,
		Snapshot: engine.Snapshot(),
	})
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 20
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	resp, err := h.service.List(ctx, limit, offset)
	if err != nil {
		h.logger.Error("failed to list sessions")
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/sessions/:id — returns the current snapshot.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, engine.Snapshot())
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(ctx, sessionID); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
