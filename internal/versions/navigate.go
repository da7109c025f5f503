package versions

import (
	"fmt"
	"os"
)

// GoToFolder ensures the version folder exists (creating it if
// missing; no destructive reset, this is a convenience path) and asks
// the OS to show it in the file browser.
func (m *Manager) GoToFolder(folder string) error {
	layout, err := m.layout()
	if err != nil {
		return &Error{Kind: KindInstallation, Op: "go_to_version_folder", Err: err}
	}

	dir := layout.FolderDir(folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Kind: KindIO, Op: "go_to_version_folder", Path: dir,
			Err: fmt.Errorf("unable to create version folder in order to open it: %w", err)}
	}

	if err := m.opener(dir); err != nil {
		return &Error{Kind: KindInstallation, Op: "go_to_version_folder", Path: dir,
			Err: fmt.Errorf("unable to open folder in OS: %w", err)}
	}
	return nil
}
