package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodcart/shopping-assistant/internal/dialogue"
	"github.com/moodcart/shopping-assistant/internal/middleware"
	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/internal/session"
	"github.com/moodcart/shopping-assistant/pkg/logger"
)

// IntentHandler handles the three user intents accepted by the dialogue
// engine: free-text submission, topic selection, and resubmit.
type IntentHandler struct {
	service *session.Service
	logger  *logger.Logger
}

// NewIntentHandler creates a new intent handler.
func NewIntentHandler(svc *session.Service, log *logger.Logger) *IntentHandler {
	return &IntentHandler{
		service: svc,
		logger:  log,
	}
}

// SubmitText handles POST /api/v1/sessions/:id/messages
func (h *IntentHandler) SubmitText(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	var req model.SubmitTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	engine.SubmitText(req.Text)
	h.service.Touch(chi.URLParam(r, "id"))

	writeJSON(w, http.StatusAccepted, engine.Snapshot())
}

// SelectTopic handles POST /api/v1/sessions/:id/topic
func (h *IntentHandler) SelectTopic(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	var req model.SelectTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateTopic(req.Topic); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := engine.SelectTopic(req.Topic); err != nil {
		if errors.Is(err, dialogue.ErrUnknownTopic) {
			writeError(w, http.StatusBadRequest, "unknown topic")
			return
		}
		h.logger.Error("failed to select topic")
		writeError(w, http.StatusInternalServerError, "failed to select topic")
		return
	}
	h.service.Touch(chi.URLParam(r, "id"))

	writeJSON(w, http.StatusAccepted, engine.Snapshot())
}

// Resubmit handles POST /api/v1/sessions/:id/resubmit
func (h *IntentHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	if err := engine.Resubmit(); err != nil {
		if errors.Is(err, dialogue.ErrNoTopic) {
			writeError(w, http.StatusConflict, "no topic selected yet")
			return
		}
		h.logger.Error("failed to resubmit")
		writeError(w, http.StatusInternalServerError, "failed to resubmit")
		return
	}
	h.service.Touch(chi.URLParam(r, "id"))

	writeJSON(w, http.StatusAccepted, engine.Snapshot())
}

func (h *IntentHandler) engineFor(w http.ResponseWriter, r *http.Request) (*dialogue.Engine, bool) {
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	_, engine, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}

	return engine, true
}
