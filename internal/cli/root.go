// Package cli implements the shopctl commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/igoratamanchuk/findamechanic/internal/app"
	"github.com/igoratamanchuk/findamechanic/internal/config"
)

var formatFlag string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "shopctl",
	Short:         "Inspect the FindAMechanic shop catalog",
	Long:          "Browse the Regina shop catalog, its derived tags and page metadata, and run AI shop searches from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		switch formatFlag {
		case "json", "text":
			return nil
		default:
			return fmt.Errorf("--format must be json or text, got %q", formatFlag)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

// openApp builds the same stack the API server runs, configured from the
// environment. Logs go to stderr so stdout stays machine-readable.
var openApp = func(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, app.NewLogger(os.Stderr, cfg.LogLevel))
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
