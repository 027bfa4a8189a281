package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the session as a single JSON document on disk.
//
// The whole session lives in one file, so token and user record are
// always written and removed together. Writes go through a temp file
// and rename, so a crash mid-save leaves either the old session or the
// new one, never a torn file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the given path. The file
// does not have to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save persists the session, overwriting any prior one.
func (f *FileStore) Save(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}

// Load returns the stored session. A missing file, unreadable file, or
// malformed content all report ok=false; persisted garbage is treated
// the same as no session at all.
func (f *FileStore) Load() (Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) load() (Session, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, false
	}
	if s.Token == "" {
		return Session{}, false
	}
	return s, true
}

// Clear removes the session file. Clearing an already-cleared store is
// a no-op.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Token returns the current bearer token, or "" when no session is live.
func (f *FileStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.load()
	if !ok {
		return ""
	}
	return s.Token
}
