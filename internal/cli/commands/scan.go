package commands

import (
	"fmt"
	"os"

	"github.com/imca-cat/tripreport/internal/hierarchy"
	"github.com/imca-cat/tripreport/internal/render/console"
	"github.com/imca-cat/tripreport/internal/render/htmlreport"
	"github.com/imca-cat/tripreport/internal/snapshot"
	"github.com/imca-cat/tripreport/internal/traversal"
	"github.com/spf13/cobra"
)

// ScanOptions holds options for the scan command.
type ScanOptions struct {
	NoSiteLevel bool   // Treat root children as pucks, not sites
	Strict      bool   // Non-zero exit when issues exist
	SnapshotOut string // Write the snapshot document here
	SnapshotIn  string // Decode a snapshot instead of walking the disk
	HTML        string // Write the HTML report here
	Title       string // HTML report title
	NoConsole   bool   // Suppress the console tree
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Audit a trip directory and report its structure",
		Long: `Walk a trip directory, validate the expected subdirectories and
asset files at every level, and render the result.

Recoverable findings (a puck missing a required directory, a collection
missing an asset file) are reported in the output and never abort the
scan. The scan fails only when the root itself is missing or the
filesystem becomes unreadable mid-walk.

With --snapshot-in the filesystem is not touched at all; the hierarchy
is rebuilt from a previously written snapshot document.`,
		Example: `  # Audit a trip and print the tree
  tripreport scan /data/trips/2026-03

  # Pucks directly under the root, no site level
  tripreport scan --no-site-level /data/trips/2026-03

  # Cache the traversal for later rendering
  tripreport scan /data/trips/2026-03 --snapshot-out trip.json

  # Render from the cache, write an HTML report, fail on issues
  tripreport scan --snapshot-in trip.json --html report.html --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.NoSiteLevel, "no-site-level", false, "Treat trip root as containing pucks directly (no site level)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with non-zero status if any issues are found")
	cmd.Flags().StringVar(&opts.SnapshotOut, "snapshot-out", "", "Write the hierarchy snapshot JSON to the given path")
	cmd.Flags().StringVar(&opts.SnapshotIn, "snapshot-in", "", "Load the hierarchy from a snapshot JSON instead of scanning")
	cmd.Flags().StringVar(&opts.HTML, "html", "", "Write an HTML report to the given path")
	cmd.Flags().StringVar(&opts.Title, "title", "", "HTML report title")
	cmd.Flags().BoolVar(&opts.NoConsole, "no-console", false, "Suppress console tree output")

	return cmd
}

func runScan(cmd *cobra.Command, opts *ScanOptions, args []string) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	siteLevel := cfg.SiteLevel
	if cmd.Flags().Changed("no-site-level") {
		siteLevel = !opts.NoSiteLevel
	}
	strict := cfg.Strict || opts.Strict
	title := opts.Title
	if title == "" {
		title = cfg.Title
	}

	var trip *hierarchy.Trip
	var err error
	switch {
	case opts.SnapshotIn != "":
		if len(args) > 0 {
			return fmt.Errorf("a root directory and --snapshot-in are mutually exclusive")
		}
		trip, err = snapshot.Load(opts.SnapshotIn)
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		logger.Info("loaded hierarchy from snapshot", "path", opts.SnapshotIn)
	case len(args) == 0:
		return fmt.Errorf("provide a trip directory or use --snapshot-in to supply cached data")
	default:
		scanner := traversal.New(traversal.Config{
			SiteLevel: siteLevel,
			Logger:    logger,
		})
		trip, err = scanner.Scan(cmd.Context(), args[0])
		if err != nil {
			return err
		}
	}

	counts := trip.Counts()
	logger.Info("hierarchy ready",
		"sites", counts.Sites,
		"pucks", counts.Pucks,
		"pins", counts.Pins,
		"collections", counts.Collections)

	if !opts.NoConsole {
		console.Render(cmd.OutOrStdout(), trip, console.Options{NoColor: cfg.NoColor})
	}

	if opts.SnapshotOut != "" {
		if err := snapshot.Write(opts.SnapshotOut, trip); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", opts.SnapshotOut)
	}

	if opts.HTML != "" {
		htmlOpts := htmlreport.Options{Title: title, ReadFile: os.ReadFile}
		if err := htmlreport.Write(opts.HTML, trip, htmlOpts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "HTML report written to %s\n", opts.HTML)
	}

	if issues := trip.AllIssues(); strict && len(issues) > 0 {
		return fmt.Errorf("%d validation issues found", len(issues))
	}
	return nil
}
