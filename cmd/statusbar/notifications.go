package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ternarybob/pageobjects/internal/app"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Open or close the notifications center",
}

var notificationsOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the notifications center unless it is already open",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotifications(cmd, true)
	},
}

var notificationsCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the notifications center unless it is already closed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotifications(cmd, false)
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsOpenCmd)
	notificationsCmd.AddCommand(notificationsCloseCmd)
}

func runNotifications(cmd *cobra.Command, open bool) error {
	application, err := app.New(cmd.Context(), config, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	statusBar := application.StatusBar()
	if open {
		if _, err := statusBar.OpenNotificationsCenter(application.Context()); err != nil {
			return fmt.Errorf("failed to open notifications center: %w", err)
		}
		logger.Info().Msg("Notifications center open")
		return nil
	}

	if err := statusBar.CloseNotificationsCenter(application.Context()); err != nil {
		return fmt.Errorf("failed to close notifications center: %w", err)
	}
	logger.Info().Msg("Notifications center closed")
	return nil
}
