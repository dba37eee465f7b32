// Package session manages chat sessions and the dialogue engine owned by
// each one.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moodcart/shopping-assistant/internal/dialogue"
	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/pkg/logger"
	"github.com/moodcart/shopping-assistant/pkg/metrics"
)

// ErrNotFound is returned for unknown or deleted sessions.
var ErrNotFound = errors.New("session not found")

type entry struct {
	meta   model.Session
	engine *dialogue.Engine
}

// Service creates and tracks sessions. Storage is an in-memory map; each
// session owns exactly one dialogue engine.
type Service struct {
	deps   dialogue.Deps
	logger *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewService creates a session service. Engines are constructed with deps.
func NewService(deps dialogue.Deps, log *logger.Logger) *Service {
	return &Service{
		deps:     deps,
		logger:   log,
		sessions: make(map[string]*entry),
	}
}

// Create starts a new session. The engine emits its greeting immediately.
func (s *Service) Create(ctx context.Context) (*model.Session, error) {
	now := time.Now()
	sess := model.Session{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	engine := dialogue.NewEngine(sess.ID, s.deps)

	s.mu.Lock()
	s.sessions[sess.ID] = &entry{meta: sess, engine: engine}
	s.mu.Unlock()

	metrics.SessionsTotal.Inc()
	s.logger.Info("session created", zap.String("session_id", sess.ID))

	return &sess, nil
}

// Get returns a session's metadata and engine.
func (s *Service) Get(ctx context.Context, sessionID string) (*model.Session, *dialogue.Engine, error) {
	s.mu.RLock()
	e, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists || e.meta.Deleted {
		return nil, nil, ErrNotFound
	}

	meta := e.meta
	return &meta, e.engine, nil
}

// List returns sessions ordered by creation time, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) (*model.ListSessionsResponse, error) {
	s.mu.RLock()
	var sessions []model.Session
	for _, e := range s.sessions {
		if !e.meta.Deleted {
			sessions = append(sessions, e.meta)
		}
	}
	s.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	total := len(sessions)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &model.ListSessionsResponse{
		Sessions: sessions[start:end],
		Total:    total,
		HasMore:  end < total,
	}, nil
}

// Touch bumps a session's update time after an accepted intent.
func (s *Service) Touch(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[sessionID]; ok {
		e.meta.UpdatedAt = time.Now()
	}
}

// Delete soft deletes a session and closes its engine.
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	e, exists := s.sessions[sessionID]
	if !exists || e.meta.Deleted {
		s.mu.Unlock()
		return ErrNotFound
	}
	e.meta.Deleted = true
	e.meta.UpdatedAt = time.Now()
	s.mu.Unlock()

	e.engine.Close()
	s.logger.Info("session deleted", zap.String("session_id", sessionID))
	return nil
}
