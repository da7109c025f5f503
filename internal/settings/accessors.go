package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// InstallationDir returns the installation root and whether it is set.
func (s *Store) InstallationDir() (string, bool) {
	st := s.Get()
	return st.InstallationDir, st.InstallationDir != ""
}

// SetInstallationDir validates and persists a new installation root.
// The directory is created if missing. Relative paths and filesystem
// roots are rejected.
func (s *Store) SetInstallationDir(dir string) error {
	if !filepath.IsAbs(dir) {
		return fmt.Errorf("installation directory must be an absolute path: %q", dir)
	}
	if dir == filepath.Dir(dir) {
		return fmt.Errorf("refusing to use filesystem root %q as installation directory", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create installation directory: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat installation directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("installation path %q is not a directory", dir)
	}
	return s.Update(func(st *Settings) error {
		st.InstallationDir = filepath.Clean(dir)
		return nil
	})
}

// ActiveVersion returns the active tooling pointer. ok is true only
// when both fields are set.
func (s *Store) ActiveVersion() (folder, version string, ok bool) {
	st := s.Get()
	return st.ActiveVersionFolder, st.ActiveVersion,
		st.ActiveVersionFolder != "" && st.ActiveVersion != ""
}

// SetActiveVersion persists both pointer fields in one mutation.
func (s *Store) SetActiveVersion(folder, version string) error {
	if folder == "" || version == "" {
		return fmt.Errorf("active version requires both folder and version, got (%q, %q)", folder, version)
	}
	return s.Update(func(st *Settings) error {
		st.ActiveVersionFolder = folder
		st.ActiveVersion = version
		return nil
	})
}

// ClearActiveVersion unsets both pointer fields.
func (s *Store) ClearActiveVersion() error {
	return s.Update(func(st *Settings) error {
		st.ActiveVersionFolder = ""
		st.ActiveVersion = ""
		return nil
	})
}

// Locale returns the persisted UI locale, empty if unset.
func (s *Store) Locale() string {
	return s.Get().Locale
}

// SetLocale persists the UI locale.
func (s *Store) SetLocale(locale string) error {
	return s.Update(func(st *Settings) error {
		st.Locale = locale
		return nil
	})
}
