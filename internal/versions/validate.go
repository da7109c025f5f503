package versions

import (
	"fmt"
	"os"
)

// EnsureActiveVersionStillExists reconciles the persisted active
// pointer against the filesystem. Versions can disappear out-of-band
// (manual deletion, antivirus quarantine, disk cleanup); when the
// active version's directory is gone the pointer is cleared and false
// returned. An unset pointer is nothing to validate and reports false
// without mutation.
func (m *Manager) EnsureActiveVersionStillExists() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	layout, err := m.layout()
	if err != nil {
		return false, &Error{Kind: KindInstallation, Op: "ensure_active_version_still_exists", Err: err}
	}

	folder, version, ok := m.settings.ActiveVersion()
	m.logger.Debug("checking if active version still exists",
		"folder", folder, "version", version)
	if !ok {
		return false, nil
	}

	dir := layout.VersionDir(folder, version)
	if _, err := os.Stat(dir); err == nil {
		return true, nil
	}

	m.logger.Warn("active version no longer on disk, clearing pointer",
		"folder", folder, "version", version, "path", dir)
	if err := m.settings.ClearActiveVersion(); err != nil {
		return false, &Error{Kind: KindConfiguration, Op: "ensure_active_version_still_exists",
			Err: fmt.Errorf("unable to clear active version: %w", err)}
	}
	return false, nil
}
