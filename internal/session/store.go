package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vanchuyen/codctl/internal/domain"
)

// FileStore persists the session as a single JSON file. The access
// token, refresh token and user are always written together and
// cleared together; partial state never survives a write.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// DefaultPath returns the session file location under the user config
// dir, honoring XDG_CONFIG_HOME
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "codctl", "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "codctl", "session.json")
}

// Load reads the persisted session. A missing file, unparseable
// content, a token without a user or an expired token all yield
// domain.ErrNoSession; corrupt state is purged on the way out.
func (s *FileStore) Load() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("session store: failed to read %s: %w", s.path, err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupt session data is treated as absent, never as fatal
		_ = s.Clear()
		return nil, domain.ErrNoSession
	}

	if session.AccessToken == "" || session.User == nil || !session.User.Role.Valid() {
		_ = s.Clear()
		return nil, domain.ErrNoSession
	}

	if expired(session.AccessToken, s.now()) {
		_ = s.Clear()
		return nil, domain.ErrSessionExpired
	}

	return &session, nil
}

// Save atomically replaces the persisted session
func (s *FileStore) Save(session *domain.Session) error {
	if session == nil || session.AccessToken == "" || session.User == nil {
		return fmt.Errorf("session store: refusing to save incomplete session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session store: failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("session store: failed to marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session store: failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session store: failed to replace session: %w", err)
	}

	return nil
}

// Clear removes the persisted session; clearing an absent session is
// not an error
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session store: failed to clear session: %w", err)
	}
	return nil
}

// expired inspects the token's exp claim without verifying the
// signature; verification is the backend's job, the client only avoids
// presenting a token it knows is dead. Tokens without an exp claim or
// that do not parse as JWT are passed through for the backend to judge.
func expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
