package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Manage per-game install records",
	Long: `Manage the per-game install records in the launcher settings.

A game's record ties it to the version it was installed with. Records
whose version fields are missing are treated as not installed.`,
}

var gamesStatusCmd = &cobra.Command{
	Use:   "status <game>",
	Short: "Show whether a game is installed and with which version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		game := args[0]
		jsonOutput, _ := cmd.Flags().GetBool("json")

		store := openStore()
		installed, err := store.GameInstalled(game)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		if jsonOutput {
			type statusOutput struct {
				Game      string `json:"game"`
				Installed bool   `json:"installed"`
				Version   string `json:"version,omitempty"`
				Folder    string `json:"version_folder,omitempty"`
			}
			printJSON(statusOutput{
				Game:      game,
				Installed: installed,
				Version:   store.GameInstallVersion(game),
				Folder:    store.GameInstallVersionFolder(game),
			})
			return
		}

		if !installed {
			fmt.Printf("%s is not installed.\n", game)
			return
		}
		fmt.Printf("%s is installed with %s (%s).\n",
			game, store.GameInstallVersion(game), store.GameInstallVersionFolder(game))
	},
}

var gamesFinalizeCmd = &cobra.Command{
	Use:   "finalize <game>",
	Short: "Record a finished game install against the active version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		game := args[0]

		store := openStore()
		if err := store.FinalizeGameInstall(game); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitConfiguration)
		}
		printInfof("Recorded %s as installed with the active version.\n", game)
	},
}

var gamesUninstallCmd = &cobra.Command{
	Use:   "uninstall <game>",
	Short: "Clear a game's install record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		game := args[0]

		store := openStore()
		if err := store.SetGameUninstalled(game); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}
		printInfof("Cleared install record for %s.\n", game)
	},
}

func init() {
	gamesStatusCmd.Flags().Bool("json", false, "Output in JSON format")

	gamesCmd.AddCommand(gamesStatusCmd)
	gamesCmd.AddCommand(gamesFinalizeCmd)
	gamesCmd.AddCommand(gamesUninstallCmd)
	rootCmd.AddCommand(gamesCmd)
}
