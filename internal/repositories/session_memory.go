package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

type memorySession struct {
	data    []byte
	expires time.Time
}

// SessionMemoryRepository keeps sessions in process memory. Used for development and tests.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if !entry.expires.IsZero() && !r.now().Before(entry.expires) {
		delete(r.sessions, id)
		return nil, nil
	}

	// Decode a copy so callers never share state with the store.
	var sess models.Session
	if err := json.Unmarshal(entry.data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *SessionMemoryRepository) Save(_ context.Context, sess *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	entry := memorySession{data: data}
	if ttl > 0 {
		entry.expires = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.sessions[sess.ID] = entry
	r.mu.Unlock()
	return nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}
