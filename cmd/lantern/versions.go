package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lantern-launcher/lantern/internal/platform"
	"github.com/lantern-launcher/lantern/internal/releases"
	"github.com/lantern-launcher/lantern/internal/versions"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Manage downloaded tooling versions",
	Long: `Manage the tooling versions stored under the installation directory.

Versions live in <install_dir>/versions/<folder>/<version>/. The folder
groups versions by channel, for example "official".`,
}

var versionsListCmd = &cobra.Command{
	Use:   "list <folder>",
	Short: "List downloaded versions in a folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		folder := args[0]
		jsonOutput, _ := cmd.Flags().GetBool("json")

		mgr := newManager(openStore())
		list, err := mgr.List(folder)
		if err != nil {
			exitWithVersionsError(err)
		}
		versions.SortNewestFirst(list)

		if jsonOutput {
			type listOutput struct {
				Folder   string   `json:"folder"`
				Versions []string `json:"versions"`
			}
			printJSON(listOutput{Folder: folder, Versions: list})
			return
		}

		if len(list) == 0 {
			printInfof("No versions downloaded in %s.\n", folder)
			return
		}
		printInfof("Downloaded versions in %s (%d total):\n\n", folder, len(list))
		for _, v := range list {
			fmt.Printf("  %s\n", v)
		}
	},
}

var versionsDownloadCmd = &cobra.Command{
	Use:   "download <folder> <version>",
	Short: "Download and extract a tooling version",
	Long: `Download a release archive and extract it into the version directory.

Without --url the archive is located on the configured GitHub releases
repository by matching the version tag and the platform archive name.

Examples:
  lantern versions download official v0.1.38
  lantern versions download unofficial nightly-2024-01-01 --url https://example.com/nightly.tar.gz`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		folder, version := args[0], args[1]
		url, _ := cmd.Flags().GetString("url")

		ctx := context.Background()
		if url == "" {
			resolved, err := resolveAssetURL(ctx, version)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitWithCode(ExitNetwork)
			}
			url = resolved
		}

		mgr := newManager(openStore())
		printInfof("Downloading %s into %s...\n", version, folder)
		if err := mgr.Download(ctx, version, folder, url); err != nil {
			exitWithVersionsError(err)
		}
		printInfof("Version %s is ready.\n", version)
	},
}

// resolveAssetURL finds the download URL for version on the configured
// releases repository.
func resolveAssetURL(ctx context.Context, version string) (string, error) {
	rel, err := platform.ReleaseFor(runtime.GOOS)
	if err != nil {
		return "", err
	}

	client := releases.New()
	list, err := client.List(ctx, tunables.ReleasesRepo)
	if err != nil {
		return "", err
	}
	for i := range list {
		if list[i].Tag == version {
			return list[i].AssetURL(rel.ArchiveName(version))
		}
	}
	return "", fmt.Errorf("no release tagged %q on %s", version, tunables.ReleasesRepo)
}

var versionsRemoveCmd = &cobra.Command{
	Use:   "remove <folder> <version>",
	Short: "Remove a downloaded version",
	Long: `Remove a downloaded version from disk.

Removing the active version clears the active version pointer. Removing
a version that is not on disk succeeds.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		folder, version := args[0], args[1]

		mgr := newManager(openStore())
		if err := mgr.Remove(version, folder); err != nil {
			exitWithVersionsError(err)
		}
		printInfof("Removed %s from %s.\n", version, folder)
	},
}

var versionsActivateCmd = &cobra.Command{
	Use:   "activate <folder> <version>",
	Short: "Mark a downloaded version as active",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		folder, version := args[0], args[1]

		mgr := newManager(openStore())
		if err := mgr.Activate(folder, version); err != nil {
			exitWithVersionsError(err)
		}
		printInfof("Active version is now %s (%s).\n", version, folder)
	},
}

var versionsOpenCmd = &cobra.Command{
	Use:   "open <folder>",
	Short: "Open a version folder in the file browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mgr := newManager(openStore())
		if err := mgr.GoToFolder(args[0]); err != nil {
			exitWithVersionsError(err)
		}
	},
}

var versionsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the active version still exists on disk",
	Long: `Verify that the directory of the active version still exists.

When the directory is gone the active version pointer is cleared so the
launcher prompts for a fresh download instead of failing to start.`,
	Run: func(cmd *cobra.Command, args []string) {
		mgr := newManager(openStore())
		ok, err := mgr.EnsureActiveVersionStillExists()
		if err != nil {
			exitWithVersionsError(err)
		}
		if !ok {
			printInfo("No active version is available; download and activate one.")
			exitWithCode(ExitConfiguration)
		}
		printInfo("Active version is present.")
	},
}

func init() {
	versionsListCmd.Flags().Bool("json", false, "Output in JSON format")
	versionsDownloadCmd.Flags().String("url", "", "Direct archive URL, bypassing release lookup")

	versionsCmd.AddCommand(versionsListCmd)
	versionsCmd.AddCommand(versionsDownloadCmd)
	versionsCmd.AddCommand(versionsRemoveCmd)
	versionsCmd.AddCommand(versionsActivateCmd)
	versionsCmd.AddCommand(versionsOpenCmd)
	versionsCmd.AddCommand(versionsCheckCmd)
	rootCmd.AddCommand(versionsCmd)
}
