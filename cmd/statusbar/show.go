package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/pageobjects/internal/app"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the editor indicators and status bar items",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "Output format (text, json, yaml)")
}

func runShow(cmd *cobra.Command, args []string) error {
	application, err := app.New(cmd.Context(), config, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	snapshot, err := application.Snapshot(application.Context())
	if err != nil {
		return fmt.Errorf("failed to read status bar: %w", err)
	}
	return writeSnapshot(cmd.OutOrStdout(), showFormat, snapshot)
}

// writeSnapshot renders snapshot in the requested format
func writeSnapshot(w io.Writer, format string, snapshot *app.StatusSnapshot) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Language:\t%s\n", snapshot.Language)
		fmt.Fprintf(tw, "Line ending:\t%s\n", snapshot.LineEnding)
		fmt.Fprintf(tw, "Encoding:\t%s\n", snapshot.Encoding)
		fmt.Fprintf(tw, "Indentation:\t%s\n", snapshot.Indentation)
		fmt.Fprintf(tw, "Position:\t%s\n", snapshot.Position)
		fmt.Fprintf(tw, "Items:\t%s\n", strings.Join(snapshot.Items, ", "))
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
