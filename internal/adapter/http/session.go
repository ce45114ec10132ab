package http

import (
	"sync"

	"github.com/google/uuid"

	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
	"github.com/flight-alert/flight-alert-service/internal/usecase/locationsearch"
)

// ControllerFactory builds the search controller of a new session.
type ControllerFactory func(sessionID string) *locationsearch.Controller

// SessionRegistry holds one search controller per session id.
// It is safe for concurrent use.
type SessionRegistry struct {
	newController ControllerFactory
	newID         func() string
	log           *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*locationsearch.Controller
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry(factory ControllerFactory, log *logger.Logger) *SessionRegistry {
	return &SessionRegistry{
		newController: factory,
		newID:         uuid.NewString,
		log:           logger.OrNop(log).WithComponent("sessions"),
		sessions:      make(map[string]*locationsearch.Controller),
	}
}

// Create starts a new session and returns its id and controller.
func (r *SessionRegistry) Create() (string, *locationsearch.Controller) {
	id := r.newID()
	ctrl := r.newController(id)

	r.mu.Lock()
	r.sessions[id] = ctrl
	count := len(r.sessions)
	r.mu.Unlock()

	r.log.Debug().Str("session_id", id).Int("active_sessions", count).Msg("Search session created")
	return id, ctrl
}

// Get returns the controller of a session, or domain.ErrSessionNotFound.
func (r *SessionRegistry) Get(id string) (*locationsearch.Controller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctrl, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return ctrl, nil
}

// Delete closes and removes a session.
func (r *SessionRegistry) Delete(id string) error {
	r.mu.Lock()
	ctrl, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	ctrl.Close()
	r.log.Debug().Str("session_id", id).Msg("Search session closed")
	return nil
}

// Len returns the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll closes every session. Used on shutdown.
func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*locationsearch.Controller)
	r.mu.Unlock()

	for _, ctrl := range sessions {
		ctrl.Close()
	}
	if len(sessions) > 0 {
		r.log.Info().Int("sessions", len(sessions)).Msg("Closed all search sessions")
	}
}
