package settings

import "fmt"

// GameInstalled reports whether the game was fully installed. Records
// with the installed flag set but an empty version or version folder
// are inconsistent; the flag is flipped to false and persisted before
// reporting.
func (s *Store) GameInstalled(name string) (bool, error) {
	st := s.Get()
	g, ok := st.Games[name]
	if !ok || !g.Installed {
		return false, nil
	}
	if g.Version == "" || g.VersionFolder == "" {
		s.logger.Warn("game record missing version fields, marking uninstalled",
			"game", name)
		err := s.Update(func(st *Settings) error {
			g := st.Games[name]
			g.Installed = false
			st.Games[name] = g
			return nil
		})
		return false, err
	}
	return true, nil
}

// GameInstallVersion returns the tooling version the game was installed
// with, empty if none.
func (s *Store) GameInstallVersion(name string) string {
	return s.Get().Games[name].Version
}

// GameInstallVersionFolder returns the version folder the game was
// installed from, empty if none.
func (s *Store) GameInstallVersionFolder(name string) string {
	return s.Get().Games[name].VersionFolder
}

// FinalizeGameInstall marks the game as installed with the currently
// active tooling version. Called by the installer once installation
// completes; fails if no version is active.
func (s *Store) FinalizeGameInstall(name string) error {
	return s.Update(func(st *Settings) error {
		if st.ActiveVersion == "" || st.ActiveVersionFolder == "" {
			return fmt.Errorf("cannot finalize install of %q: no active tooling version", name)
		}
		st.Games[name] = GameInstall{
			Installed:     true,
			Version:       st.ActiveVersion,
			VersionFolder: st.ActiveVersionFolder,
		}
		return nil
	})
}

// SetGameUninstalled clears the game's install record.
func (s *Store) SetGameUninstalled(name string) error {
	return s.Update(func(st *Settings) error {
		g := st.Games[name]
		g.Installed = false
		g.Version = ""
		g.VersionFolder = ""
		st.Games[name] = g
		return nil
	})
}
