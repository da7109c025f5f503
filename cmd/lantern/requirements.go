package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lantern-launcher/lantern/internal/platform"
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Check hardware requirements",
	Long: `Check the hardware requirements of the tooling.

The AVX probe result is cached in the settings file. Use --force to probe
again, or set the bypass flag to skip requirement checks entirely.`,
}

var requirementsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the CPU meets the AVX requirement",
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")

		store := openStore()
		met, err := store.AVXRequirementMet(force, platform.HasAVX)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		if !met {
			fmt.Println("AVX requirement not met: this CPU does not support AVX.")
			exitWithCode(ExitConfiguration)
		}
		printInfo("AVX requirement met.")
	},
}

var requirementsBypassCmd = &cobra.Command{
	Use:   "bypass [true|false]",
	Short: "Show or set the requirement bypass flag",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()

		if len(args) == 0 {
			fmt.Println(strconv.FormatBool(store.BypassRequirements()))
			return
		}

		bypass, err := strconv.ParseBool(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: bypass must be true or false")
			exitWithCode(ExitUsage)
		}
		if err := store.SetBypassRequirements(bypass); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitWithCode(ExitGeneral)
		}
		printInfof("Requirement bypass set to %t.\n", bypass)
	},
}

func init() {
	requirementsCheckCmd.Flags().Bool("force", false, "Re-probe the CPU even when a cached result exists")

	requirementsCmd.AddCommand(requirementsCheckCmd)
	requirementsCmd.AddCommand(requirementsBypassCmd)
	rootCmd.AddCommand(requirementsCmd)
}
