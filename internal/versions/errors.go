package versions

import (
	"errors"
	"fmt"
)

// Kind classifies version manager failures so callers can branch on
// taxonomy instead of message text.
type Kind int

const (
	// KindConfiguration covers malformed or missing persisted
	// settings, such as an unset installation directory.
	KindConfiguration Kind = iota
	// KindInstallation covers the download, extract, remove, and
	// navigate paths: network failures, extraction failures, the
	// integrity check, and OS-open failures.
	KindInstallation
	// KindIO covers raw filesystem faults not otherwise classified.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInstallation:
		return "installation"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a classified version manager failure carrying the operation
// and target path for context, plus the underlying cause.
type Error struct {
	Kind Kind
	Op   string // operation identifier, e.g. "download_version"
	Path string // target path, if any
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNoInstallDir is returned by every operation that needs the
// installation root while it is unset.
var ErrNoInstallDir = &Error{
	Kind: KindConfiguration,
	Op:   "resolve",
	Err:  errors.New("no installation directory set"),
}

// IsKind reports whether any error in err's chain is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
