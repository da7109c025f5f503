// Package settings provides the persistent launcher configuration store.
//
// All launcher state that must survive restarts lives in one JSON file:
// the installation root, the active tooling version pointer, per-game
// install records, locale, and hardware requirement flags. A single
// process-wide mutex serializes every read and mutation, and each
// successful mutation is written to disk (temp file + rename) before
// the call returns.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lantern-launcher/lantern/internal/log"
)

const (
	// EnvLanternHome overrides the default settings directory.
	EnvLanternHome = "LANTERN_HOME"

	settingsFileName = "settings.json"

	// schemaVersion is bumped when the settings layout changes shape.
	schemaVersion = "2.0"
)

// GameInstall records which tooling version a game was last installed
// with. Independent of the active-version pointer.
type GameInstall struct {
	Installed     bool   `json:"installed"`
	Version       string `json:"version"`
	VersionFolder string `json:"version_folder"`
}

// Requirements caches hardware capability probes. Nil means "not yet
// probed"; the bypass flag short-circuits every check when set.
type Requirements struct {
	AVX                *bool `json:"avx,omitempty"`
	BypassRequirements *bool `json:"bypass_requirements,omitempty"`
}

// Settings is the full persisted launcher configuration.
type Settings struct {
	SchemaVersion       string                 `json:"version"`
	InstallationDir     string                 `json:"installation_dir,omitempty"`
	ActiveVersion       string                 `json:"active_version,omitempty"`
	ActiveVersionFolder string                 `json:"active_version_folder,omitempty"`
	Locale              string                 `json:"locale,omitempty"`
	Games               map[string]GameInstall `json:"games"`
	Requirements        Requirements           `json:"requirements"`
}

func defaults() *Settings {
	return &Settings{
		SchemaVersion: schemaVersion,
		Games:         make(map[string]GameInstall),
	}
}

// Store owns the settings file. At most one mutation is in flight at a
// time, and mutations are durable before Update returns.
type Store struct {
	path   string
	mu     sync.Mutex
	cur    *Settings
	logger log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// DefaultPath returns the settings file location: $LANTERN_HOME if set,
// otherwise the per-user config directory.
func DefaultPath() (string, error) {
	if home := os.Getenv(EnvLanternHome); home != "" {
		return filepath.Join(home, settingsFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "lantern", settingsFileName), nil
}

// Open loads the settings file at path, creating defaults if it does
// not exist yet. A missing file is not an error; a malformed one is.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.cur = defaults()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if loaded.Games == nil {
		loaded.Games = make(map[string]GameInstall)
	}
	loaded.SchemaVersion = schemaVersion
	s.cur = &loaded
	return s, nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the settings under the lock. Caller must hold s.mu.
func (s *Store) snapshot() Settings {
	cp := *s.cur
	cp.Games = make(map[string]GameInstall, len(s.cur.Games))
	for name, g := range s.cur.Games {
		cp.Games[name] = g
	}
	return cp
}

// Update applies fn to the settings under the store lock and persists
// the result before returning. If fn returns an error, nothing is
// written and the in-memory settings are unchanged.
func (s *Store) Update(fn func(*Settings) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(&next); err != nil {
		return err
	}
	s.cur = &next
	return nil
}

// persist writes the settings atomically. Caller must hold s.mu.
func (s *Store) persist(st *Settings) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp settings file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename settings file: %w", err)
	}
	return nil
}

// ResetToDefaults discards all persisted settings.
func (s *Store) ResetToDefaults() error {
	return s.Update(func(st *Settings) error {
		*st = *defaults()
		return nil
	})
}
