package commands

import (
	"fmt"
	"os"

	"github.com/imca-cat/tripreport/internal/render/console"
	"github.com/imca-cat/tripreport/internal/render/htmlreport"
	"github.com/imca-cat/tripreport/internal/snapshot"
	"github.com/spf13/cobra"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Snapshot  string // Snapshot document to render
	HTML      string // Write the HTML report here
	Title     string // HTML report title
	NoConsole bool   // Suppress the console tree
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render reports from a cached snapshot",
		Long: `Rebuild the hierarchy from a snapshot document written by
"scan --snapshot-out" and render it, without touching the original
trip directory.`,
		Example: `  # Print the console tree from a cached scan
  tripreport render --snapshot trip.json

  # Regenerate the HTML report only
  tripreport render --snapshot trip.json --html report.html --no-console`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Snapshot JSON document to render (required)")
	cmd.Flags().StringVar(&opts.HTML, "html", "", "Write an HTML report to the given path")
	cmd.Flags().StringVar(&opts.Title, "title", "", "HTML report title")
	cmd.Flags().BoolVar(&opts.NoConsole, "no-console", false, "Suppress console tree output")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	trip, err := snapshot.Load(opts.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	logger.Info("loaded hierarchy from snapshot", "path", opts.Snapshot)

	if !opts.NoConsole {
		console.Render(cmd.OutOrStdout(), trip, console.Options{NoColor: cfg.NoColor})
	}

	if opts.HTML != "" {
		title := opts.Title
		if title == "" {
			title = cfg.Title
		}
		htmlOpts := htmlreport.Options{Title: title, ReadFile: os.ReadFile}
		if err := htmlreport.Write(opts.HTML, trip, htmlOpts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "HTML report written to %s\n", opts.HTML)
	}
	return nil
}
