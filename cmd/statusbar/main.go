package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/common"
)

var (
	// Command-line flags
	configFiles  []string
	remoteURL    string
	workbenchURL string
	showBanner   bool

	// Global state
	config *common.Config
	logger arbor.ILogger
)

var rootCmd = &cobra.Command{
	Use:           "statusbar",
	Short:         "Inspect and drive the status bar of a VS Code workbench",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load order: defaults -> config files -> env -> flags
		var err error
		config, err = common.LoadFromFiles(configFiles...)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if remoteURL != "" {
			config.Driver.RemoteURL = remoteURL
		}
		if workbenchURL != "" {
			config.Driver.WorkbenchURL = workbenchURL
		}
		if err := config.Validate(); err != nil {
			return err
		}

		logger = common.InitLogger(config)
		if showBanner {
			common.PrintBanner(config)
		}

		logger.Debug().
			Strs("config_files", configFiles).
			Str("remote_url", config.Driver.RemoteURL).
			Str("workbench_url", config.Driver.WorkbenchURL).
			Str("locators_file", config.Locators.File).
			Msg("Resolved configuration")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&configFiles, "config", "c", nil, "Configuration file path (can be repeated, later files override earlier ones)")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote-url", "", "DevTools URL of a running browser (overrides config)")
	rootCmd.PersistentFlags().StringVar(&workbenchURL, "workbench-url", "", "Workbench page to open (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&showBanner, "banner", false, "Print the banner before running")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
