package main

import "os"

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitConfiguration indicates missing or invalid launcher configuration
	ExitConfiguration = 3

	// ExitInstallation indicates a version install or removal failed
	ExitInstallation = 4

	// ExitIO indicates a filesystem error
	ExitIO = 5

	// ExitNetwork indicates a network error
	ExitNetwork = 6
)

// exitWithCode exits with the specified exit code
func exitWithCode(code int) {
	os.Exit(code)
}
