package versions

import (
	"fmt"
	"os"
)

// Activate marks (folder, version) as the tooling version selected for
// use. The version directory must exist on disk; both pointer fields
// are persisted in one settings mutation.
func (m *Manager) Activate(folder, version string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkRef(folder, version); err != nil {
		return &Error{Kind: KindInstallation, Op: "save_active_version_change", Err: err}
	}

	layout, err := m.layout()
	if err != nil {
		return &Error{Kind: KindInstallation, Op: "save_active_version_change", Err: err}
	}

	dir := layout.VersionDir(folder, version)
	if _, err := os.Stat(dir); err != nil {
		return &Error{Kind: KindInstallation, Op: "save_active_version_change", Path: dir,
			Err: fmt.Errorf("version is not downloaded: %w", err)}
	}

	if err := m.settings.SetActiveVersion(folder, version); err != nil {
		return &Error{Kind: KindConfiguration, Op: "save_active_version_change", Err: err}
	}
	m.logger.Info("active version changed", "version", version, "folder", folder)
	return nil
}
