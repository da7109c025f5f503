package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lantern-launcher/lantern/internal/releases"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Query available releases on GitHub",
	Long: `Query the releases published on the configured GitHub repository.

The repository defaults to the releases_repo config key. Set GITHUB_TOKEN
to raise the API rate limit.`,
}

var releasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published releases, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		repo := releasesRepo(cmd)
		jsonOutput, _ := cmd.Flags().GetBool("json")

		client := releases.New()
		list, err := client.List(context.Background(), repo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list releases: %v\n", err)
			exitWithCode(ExitNetwork)
		}

		if jsonOutput {
			printJSON(list)
			return
		}

		printInfof("Releases on %s (%d total):\n\n", repo, len(list))
		for _, r := range list {
			marker := ""
			if r.PreRelease {
				marker = "  (pre-release)"
			}
			fmt.Printf("  %s%s\n", r.Tag, marker)
		}
	},
}

var releasesLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent published release",
	Run: func(cmd *cobra.Command, args []string) {
		repo := releasesRepo(cmd)

		client := releases.New()
		latest, err := client.Latest(context.Background(), repo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get latest release: %v\n", err)
			exitWithCode(ExitNetwork)
		}

		fmt.Println(latest.Tag)
	},
}

func releasesRepo(cmd *cobra.Command) string {
	if repo, _ := cmd.Flags().GetString("repo"); repo != "" {
		return repo
	}
	return tunables.ReleasesRepo
}

func init() {
	for _, c := range []*cobra.Command{releasesListCmd, releasesLatestCmd} {
		c.Flags().String("repo", "", "GitHub owner/repo to query (default from config)")
	}
	releasesListCmd.Flags().Bool("json", false, "Output in JSON format")

	releasesCmd.AddCommand(releasesListCmd)
	releasesCmd.AddCommand(releasesLatestCmd)
	rootCmd.AddCommand(releasesCmd)
}
