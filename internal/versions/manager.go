// Package versions implements the tooling version lifecycle manager:
// listing, downloading, removing, and activating tooling version
// directories under <install_root>/versions/<folder>/<version>, and
// reconciling the persisted active-version pointer against what is
// actually on disk.
package versions

import (
	"context"
	"runtime"
	"sync"

	"github.com/lantern-launcher/lantern/internal/httputil"
	"github.com/lantern-launcher/lantern/internal/log"
	"github.com/lantern-launcher/lantern/internal/osutil"
	"github.com/lantern-launcher/lantern/internal/settings"
)

// Fetcher retrieves a URL to a local file path.
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}

// Opener asks the OS to show a directory to the user.
type Opener func(path string) error

// Manager orchestrates version lifecycle operations. A Manager-level
// mutex serializes version-mutating operations so filesystem effects
// on the same version directory never interleave; the settings store
// has its own lock for pointer mutations.
type Manager struct {
	settings *settings.Store
	fetcher  Fetcher
	opener   Opener
	goos     string
	logger   log.Logger

	mu sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithFetcher overrides the archive fetcher.
func WithFetcher(f Fetcher) Option {
	return func(m *Manager) { m.fetcher = f }
}

// WithOpener overrides the OS folder opener.
func WithOpener(o Opener) Option {
	return func(m *Manager) { m.opener = o }
}

// WithLogger sets the manager's logger.
func WithLogger(l log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithGOOS overrides the platform used to pick archive and marker
// conventions. Tests use this to exercise both release shapes.
func WithGOOS(goos string) Option {
	return func(m *Manager) { m.goos = goos }
}

// New creates a version manager backed by the given settings store.
func New(store *settings.Store, opts ...Option) *Manager {
	m := &Manager{
		settings: store,
		fetcher:  httputil.NewFetcher(),
		opener:   osutil.OpenDir,
		goos:     runtime.GOOS,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// layout resolves the version tree layout from the persisted
// installation root. Returns ErrNoInstallDir when the root is unset.
func (m *Manager) layout() (Layout, error) {
	root, ok := m.settings.InstallationDir()
	if !ok {
		return Layout{}, ErrNoInstallDir
	}
	return Layout{Root: root}, nil
}
