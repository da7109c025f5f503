package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lantern-launcher/lantern/internal/userconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launcher configuration",
	Long: `Manage launcher configuration.

Tunables (config.toml) are edited with get/set. Launcher settings such
as the installation directory and locale have dedicated subcommands.

Examples:
  lantern config get log_level
  lantern config set download_timeout 5m
  lantern config install-dir /opt/games
  lantern config locale en-US`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a tunable value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		value, ok := tunables.Get(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown config key: %s\n", key)
			fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a tunable value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		if err := tunables.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		if err := tunables.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		fmt.Printf("%s = %s\n", key, value)
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tunables and their current values",
	Run: func(cmd *cobra.Command, args []string) {
		keys := userconfig.AvailableKeys()
		var sorted []string
		for k := range keys {
			sorted = append(sorted, k)
		}
		sort.Strings(sorted)

		for _, k := range sorted {
			v, _ := tunables.Get(k)
			fmt.Printf("%-18s %s\n", k, v)
		}
	},
}

var configInstallDirCmd = &cobra.Command{
	Use:   "install-dir [path]",
	Short: "Show or set the installation directory",
	Long: `Show or set the directory that holds downloaded versions.

The path must be absolute. The directory is created if it is missing.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		if len(args) == 0 {
			dir, ok := store.InstallationDir()
			if !ok {
				printInfo("No installation directory is set.")
				exitWithCode(ExitConfiguration)
			}
			fmt.Println(dir)
			return
		}

		if err := store.SetInstallationDir(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitConfiguration)
		}
		printInfof("Installation directory set to %s\n", args[0])
	},
}

var configLocaleCmd = &cobra.Command{
	Use:   "locale [code]",
	Short: "Show or set the launcher locale",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		if len(args) == 0 {
			locale := store.Locale()
			if locale == "" {
				printInfo("No locale is set.")
				return
			}
			fmt.Println(locale)
			return
		}

		if err := store.SetLocale(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}
		printInfof("Locale set to %s\n", args[0])
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset launcher settings to defaults",
	Long: `Reset the launcher settings file to its default state.

Downloaded versions are left on disk; only the settings file is reset.`,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		if err := store.ResetToDefaults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}
		printInfo("Settings reset to defaults.")
	},
}

func printAvailableKeys() {
	keys := userconfig.AvailableKeys()
	var sorted []string
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, k := range sorted {
		fmt.Fprintf(os.Stderr, "  %s - %s\n", k, keys[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInstallDirCmd)
	configCmd.AddCommand(configLocaleCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
