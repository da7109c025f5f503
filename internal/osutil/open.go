// Package osutil wraps small OS integration points that have no
// portable stdlib equivalent.
package osutil

import (
	"fmt"
	"os/exec"
	"runtime"
)

// startCommand launches a command without waiting for it. Overridable
// for testing.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenDir asks the desktop environment to show a directory in the
// system file browser.
func OpenDir(path string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "windows":
		name, args = "explorer", []string{path}
	case "darwin":
		name, args = "open", []string{path}
	default:
		name, args = "xdg-open", []string{path}
	}
	if err := startCommand(name, args...); err != nil {
		return fmt.Errorf("failed to open %s in file browser: %w", path, err)
	}
	return nil
}
