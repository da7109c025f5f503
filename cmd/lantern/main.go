package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lantern-launcher/lantern/internal/log"
	"github.com/lantern-launcher/lantern/internal/userconfig"
)

// Version is the current version of lantern.
var Version = "0.1.0"

var (
	verboseFlag bool
	quietFlag   bool

	// tunables are loaded once before any command runs.
	tunables = userconfig.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "lantern",
	Short: "Manage downloaded tooling versions for the game launcher",
	Long: `lantern is the launcher backend for managing game tooling versions.

It downloads release archives into version-specific directories under the
configured installation root, tracks the active version, and keeps the
launcher settings file consistent with what is actually on disk.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg, err := userconfig.Load(); err == nil {
			tunables = cfg
		} else {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		log.SetDefault(log.NewText(os.Stderr, logLevel()))
	},
}

func logLevel() slog.Level {
	switch {
	case quietFlag:
		return slog.LevelError
	case verboseFlag:
		return slog.LevelDebug
	}
	switch tunables.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
}
