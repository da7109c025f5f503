package versions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lantern-launcher/lantern/internal/archive"
	"github.com/lantern-launcher/lantern/internal/platform"
)

// errBadExtraction names antivirus interference because that is the
// most common real-world cause of files vanishing between extraction
// and the integrity check.
var errBadExtraction = errors.New(
	"version did not extract properly, critical files are missing; an antivirus may have deleted the files")

// Download fetches the archive for (folder, version) from url and
// stages it into the version directory.
//
// The destination directory is destructively reset first, making a
// retry after any failure start from a clean slate. There is no
// checksum for these archives; the presence of the platform marker
// executable after extraction is the only integrity gate, and a
// failed gate removes the directory entirely.
func (m *Manager) Download(ctx context.Context, version, folder, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkRef(folder, version); err != nil {
		return &Error{Kind: KindInstallation, Op: "download_version", Err: err}
	}

	layout, err := m.layout()
	if err != nil {
		return &Error{Kind: KindInstallation, Op: "download_version", Err: err}
	}

	destDir := layout.VersionDir(folder, version)
	m.logger.Info("downloading version", "version", version, "folder", folder, "dest", destDir)

	// Reset the destination so a prior partial download cannot leak
	// into this attempt.
	if err := os.RemoveAll(destDir); err != nil {
		return &Error{Kind: KindIO, Op: "download_version", Path: destDir,
			Err: fmt.Errorf("unable to reset destination folder: %w", err)}
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return &Error{Kind: KindIO, Op: "download_version", Path: destDir,
			Err: fmt.Errorf("unable to create destination folder: %w", err)}
	}

	release, err := platform.ReleaseFor(m.goos)
	if err != nil {
		return &Error{Kind: KindInstallation, Op: "download_version", Err: err}
	}

	archivePath := layout.ArchivePath(folder, release.ArchiveName(version))
	if err := m.fetcher.Fetch(ctx, url, archivePath); err != nil {
		// The empty destination directory is left behind for
		// inspection; a retry resets it anyway.
		return &Error{Kind: KindInstallation, Op: "download_version", Path: archivePath,
			Err: fmt.Errorf("unable to download version: %w", err)}
	}

	if err := archive.Extract(release.ArchiveKind, archivePath, destDir); err != nil {
		os.RemoveAll(destDir)
		return &Error{Kind: KindInstallation, Op: "download_version", Path: archivePath,
			Err: fmt.Errorf("unable to extract downloaded version: %w", err)}
	}

	marker := filepath.Join(destDir, release.MarkerName)
	if _, err := os.Stat(marker); err != nil {
		m.logger.Warn("version did not extract properly, marker is missing", "path", marker)
		if err := os.RemoveAll(destDir); err != nil {
			return &Error{Kind: KindIO, Op: "download_version", Path: destDir,
				Err: fmt.Errorf("unable to delete bad version folder: %w", err)}
		}
		return &Error{Kind: KindInstallation, Op: "download_version", Path: marker, Err: errBadExtraction}
	}

	m.logger.Info("version staged", "version", version, "folder", folder)
	return nil
}
