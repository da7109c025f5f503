package versions

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// SortNewestFirst orders version names for display: semver-parseable
// names descending, then everything else in reverse lexicographic
// order. Directory enumeration order is unspecified, so commands sort
// before printing.
func SortNewestFirst(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		vi, erri := semver.NewVersion(names[i])
		vj, errj := semver.NewVersion(names[j])
		switch {
		case erri == nil && errj == nil:
			return vi.GreaterThan(vj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return names[i] > names[j]
		}
	})
}
