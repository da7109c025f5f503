package platform

import (
	"runtime"
	"testing"

	"github.com/lantern-launcher/lantern/internal/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseFor(t *testing.T) {
	tests := []struct {
		goos       string
		wantKind   archive.Kind
		wantMarker string
	}{
		{"windows", archive.KindZip, "extractor.exe"},
		{"linux", archive.KindTarGz, "extractor"},
		{"darwin", archive.KindTarGz, "extractor"},
		{"freebsd", archive.KindTarGz, "extractor"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			r, err := ReleaseFor(tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, r.ArchiveKind)
			assert.Equal(t, tt.wantMarker, r.MarkerName)
		})
	}
}

func TestReleaseForUnknownOS(t *testing.T) {
	_, err := ReleaseFor("plan9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operating system")
}

func TestArchiveName(t *testing.T) {
	r, err := ReleaseFor("linux")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0.tar.gz", r.ArchiveName("v1.2.0"))

	r, err = ReleaseFor("windows")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0.zip", r.ArchiveName("v1.2.0"))
}

func TestHasAVXDoesNotPanic(t *testing.T) {
	// Result is hardware-dependent; non-x86 always passes.
	got := HasAVX()
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		assert.True(t, got)
	}
}
