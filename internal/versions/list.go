package versions

import "os"

// List returns the names of the downloaded version directories inside
// a version folder. An unset installation root and a missing folder
// are both common pre-setup states and yield an empty list, not an
// error. Only immediate subdirectories count; regular files are
// ignored. Ordering is directory enumeration order.
func (m *Manager) List(folder string) ([]string, error) {
	layout, err := m.layout()
	if err != nil {
		return nil, nil
	}

	dir := layout.FolderDir(folder)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		m.logger.Debug("version folder not found, returning empty list", "path", dir)
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Kind: KindIO, Op: "list_downloaded_versions", Path: dir, Err: err}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Kind: KindInstallation, Op: "list_downloaded_versions", Path: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
