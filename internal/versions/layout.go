package versions

import (
	"fmt"
	"path/filepath"
)

// Layout resolves on-disk paths inside the version directory tree
// rooted at <install_root>/versions. Pure path arithmetic; it never
// touches the filesystem.
type Layout struct {
	Root string
}

// VersionsDir returns <root>/versions.
func (l Layout) VersionsDir() string {
	return filepath.Join(l.Root, "versions")
}

// FolderDir returns <root>/versions/<folder>.
func (l Layout) FolderDir(folder string) string {
	return filepath.Join(l.VersionsDir(), folder)
}

// VersionDir returns <root>/versions/<folder>/<version>, the unit of
// installation.
func (l Layout) VersionDir(folder, version string) string {
	return filepath.Join(l.FolderDir(folder), version)
}

// ArchivePath returns the staging location of a downloaded archive,
// a sibling of the version directory inside the folder.
func (l Layout) ArchivePath(folder, filename string) string {
	return filepath.Join(l.FolderDir(folder), filename)
}

// checkRef rejects empty version coordinates. Folder and version names
// are otherwise opaque strings.
func checkRef(folder, version string) error {
	if folder == "" {
		return fmt.Errorf("version folder must not be empty")
	}
	if version == "" {
		return fmt.Errorf("version must not be empty")
	}
	return nil
}
