package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/hotkey"
)

// Store persists user settings as a small JSON file
type Store struct {
	logger *zap.Logger
	path   string
	mu     sync.Mutex
}

// NewStore creates a Store backed by the file at path
func NewStore(logger *zap.Logger, path string) *Store {
	return &Store{
		logger: logger,
		path:   path,
	}
}

// Path returns the location of the settings file
func (s *Store) Path() string {
	return s.path
}

// Load reads persisted settings. A missing file yields defaults; a stored
// hotkey that no longer parses falls back to the default instead of failing.
func (s *Store) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Settings{Hotkey: hotkey.DefaultAccelerator}, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var out domain.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	if out.Hotkey == "" {
		out.Hotkey = hotkey.DefaultAccelerator
	} else if _, err := hotkey.Parse(out.Hotkey); err != nil {
		s.logger.Warn("Stored hotkey is malformed, using default",
			zap.String("hotkey", out.Hotkey),
			zap.Error(err))
		out.Hotkey = hotkey.DefaultAccelerator
	}

	return out, nil
}

// Save writes settings atomically via a temp file and rename, so a crash
// mid-write never leaves a truncated settings file behind
func (s *Store) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close settings file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	s.logger.Debug("Settings saved", zap.String("path", s.path))
	return nil
}
