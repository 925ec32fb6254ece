package journalclient

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"trading-journal/pkg/session"
)

// SessionStore keeps the CLI session in a YAML file readable only by its owner.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "trading-journal", "session.yaml")
	}
	return &SessionStore{path: path}, nil
}

func (s *SessionStore) Path() string {
	return s.path
}

// Load returns nil, nil when no session was saved.
func (s *SessionStore) Load() (*session.Session, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var sess session.Session
	if err := yaml.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", s.path, err)
	}
	return &sess, nil
}

func (s *SessionStore) Save(sess *session.Session) error {
	b, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	return os.WriteFile(s.path, b, 0o600)
}

// Clear removes the saved session; clearing twice is not an error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
