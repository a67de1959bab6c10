// Package cli provides the command-line interface for tripreport.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/imca-cat/tripreport/internal/cli/commands"
	"github.com/imca-cat/tripreport/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tripreport",
		Short: "Tripreport - Trip Directory Audit",
		Long: `Tripreport inspects a beamline trip directory hierarchy
(trip -> site -> puck -> pin -> collection), verifies that each level
contains its expected subdirectories and asset files, and renders the
result as a console tree, an HTML report, or a reusable snapshot.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), commands.ConfigKey{}, cfg)
			ctx = context.WithValue(ctx, commands.LoggerKey{}, newLogger(cmd, cfg))
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Trip directory audit tool
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tripreport.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled console output")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())

	return rootCmd
}

// newLogger builds the structured logger commands log through. Debug
// level follows --verbose; output goes to the command's error stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
