package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lantern-launcher/lantern/internal/httputil"
	"github.com/lantern-launcher/lantern/internal/settings"
	"github.com/lantern-launcher/lantern/internal/versions"
)

// printInfo prints an informational message unless quiet mode is enabled
func printInfo(a ...interface{}) {
	if !quietFlag {
		fmt.Println(a...)
	}
}

// printInfof prints a formatted informational message unless quiet mode is enabled
func printInfof(format string, a ...interface{}) {
	if !quietFlag {
		fmt.Printf(format, a...)
	}
}

// printJSON marshals the given value to JSON and prints it to stdout
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		exitWithCode(ExitGeneral)
	}
}

// openStore opens the launcher settings file, exiting on failure.
func openStore() *settings.Store {
	path, err := settings.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitWithCode(ExitConfiguration)
	}
	store, err := settings.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		exitWithCode(ExitConfiguration)
	}
	return store
}

// newManager builds the version manager with a download client shaped by
// the user tunables.
func newManager(store *settings.Store) *versions.Manager {
	opts := httputil.DefaultOptions()
	opts.Timeout = tunables.Timeout()
	fetcher := httputil.NewFetcher(httputil.WithClient(httputil.NewClient(opts)))
	return versions.New(store, versions.WithFetcher(fetcher))
}

// exitWithVersionsError prints err and exits with a code matching its kind.
func exitWithVersionsError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case versions.IsKind(err, versions.KindConfiguration):
		exitWithCode(ExitConfiguration)
	case versions.IsKind(err, versions.KindIO):
		exitWithCode(ExitIO)
	case versions.IsKind(err, versions.KindInstallation):
		exitWithCode(ExitInstallation)
	default:
		exitWithCode(ExitGeneral)
	}
}
