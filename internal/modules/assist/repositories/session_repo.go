package repositories

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepo stores live widget sessions. Sessions are ephemeral by
// design, so the only implementation is in-memory.
type SessionRepo interface {
	Create(session *models.Session) error
	Get(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID)
	CleanupExpired() int
}

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepo() SessionRepo {
	return &sessionRepo{
		sessions: make(map[uuid.UUID]*models.Session),
	}
}

func (r *sessionRepo) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return errors.New("session already exists")
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *sessionRepo) Get(id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (r *sessionRepo) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRepo) CleanupExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, sess := range r.sessions {
		if sess.IsExpired() {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
