package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ternarybob/pageobjects/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Skip config loading and logger setup
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "statusbar version %s\n", common.GetFullVersion())
	},
}
