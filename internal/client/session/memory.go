package session

import "sync"

// MemStore is an in-memory Store. It backs tests and any context where
// persistence across runs is not wanted.
type MemStore struct {
	mu      sync.Mutex
	session Session
	ok      bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session, m.ok = s, true
	return nil
}

func (m *MemStore) Load() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.ok
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session, m.ok = Session{}, false
	return nil
}

func (m *MemStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ok {
		return ""
	}
	return m.session.Token
}
