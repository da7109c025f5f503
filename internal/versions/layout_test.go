package versions

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutPaths(t *testing.T) {
	l := Layout{Root: filepath.FromSlash("/games")}

	assert.Equal(t, filepath.FromSlash("/games/versions"), l.VersionsDir())
	assert.Equal(t, filepath.FromSlash("/games/versions/jak1"), l.FolderDir("jak1"))
	assert.Equal(t, filepath.FromSlash("/games/versions/jak1/v1.2.0"), l.VersionDir("jak1", "v1.2.0"))
	assert.Equal(t, filepath.FromSlash("/games/versions/jak1/v1.2.0.tar.gz"),
		l.ArchivePath("jak1", "v1.2.0.tar.gz"))
}

func TestSortNewestFirst(t *testing.T) {
	names := []string{"v0.1.9", "v0.1.38", "nightly-2024-01-01", "v1.0.0"}
	SortNewestFirst(names)
	assert.Equal(t, []string{"v1.0.0", "v0.1.38", "v0.1.9", "nightly-2024-01-01"}, names)
}

func TestCheckRef(t *testing.T) {
	assert.NoError(t, checkRef("jak1", "v1.0.0"))
	assert.Error(t, checkRef("", "v1.0.0"))
	assert.Error(t, checkRef("jak1", ""))
}
