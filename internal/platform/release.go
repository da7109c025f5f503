// Package platform maps the running operating system to the release
// artifact conventions used by tooling version archives, and probes
// CPU capabilities the tooling requires.
package platform

import (
	"fmt"

	"github.com/lantern-launcher/lantern/internal/archive"
)

// Release describes how a tooling version is packaged for one OS:
// the archive container format and the marker executable whose
// presence proves a complete extraction.
type Release struct {
	ArchiveKind archive.Kind
	MarkerName  string
}

// ArchiveName returns the archive filename for a version, e.g.
// "v1.2.0.zip" or "v1.2.0.tar.gz".
func (r Release) ArchiveName(version string) string {
	return version + r.ArchiveKind.Ext()
}

// ReleaseFor returns the release conventions for a GOOS value.
// Windows releases ship as zip with extractor.exe; Unix-like releases
// ship as tar.gz with extractor. Anything else is unsupported.
func ReleaseFor(goos string) (Release, error) {
	switch goos {
	case "windows":
		return Release{ArchiveKind: archive.KindZip, MarkerName: "extractor.exe"}, nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return Release{ArchiveKind: archive.KindTarGz, MarkerName: "extractor"}, nil
	default:
		return Release{}, fmt.Errorf("unknown operating system %q, unable to download and extract a release", goos)
	}
}
