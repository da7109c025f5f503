package versions

import (
	"fmt"
	"os"
)

// Remove deletes a version directory. A missing directory is not an
// error; removal is idempotent. If the removed version is the active
// one, the active pointer is cleared as part of the same operation so
// the launcher never reports an active version without files.
func (m *Manager) Remove(version, folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkRef(folder, version); err != nil {
		return &Error{Kind: KindInstallation, Op: "remove_version", Err: err}
	}

	layout, err := m.layout()
	if err != nil {
		return &Error{Kind: KindInstallation, Op: "remove_version", Err: err}
	}

	dir := layout.VersionDir(folder, version)
	m.logger.Info("deleting version", "version", version, "folder", folder)

	if err := os.RemoveAll(dir); err != nil {
		return &Error{Kind: KindIO, Op: "remove_version", Path: dir,
			Err: fmt.Errorf("unable to delete version directory: %w", err)}
	}

	activeFolder, activeVersion, ok := m.settings.ActiveVersion()
	if ok && activeFolder == folder && activeVersion == version {
		if err := m.settings.ClearActiveVersion(); err != nil {
			return &Error{Kind: KindConfiguration, Op: "remove_version",
				Err: fmt.Errorf("unable to clear active version: %w", err)}
		}
	}
	return nil
}
