package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/semworld/config"
	"github.com/c360studio/semworld/rdf"
	"github.com/c360studio/semworld/world"
)

func exportCmd(flags *rootFlags) *cobra.Command {
	var (
		format string
		output string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "export [files...]",
		Short: "Export the world graph",
		Long: `Export loads the configured world definition files and writes the
resulting graph in the chosen serialization format. With --watch the
world is rebuilt and re-exported whenever a definition file changes.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags)
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Export.Format = format
			}
			if output != "" {
				cfg.Export.Output = output
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if watch {
				return runExportWatch(cfg, args)
			}
			return runExport(cfg, args)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Serialization format (turtle, ntriples, nquads, trig)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-export when world files change")

	return cmd
}

func runExport(cfg *config.Config, args []string) error {
	m, _, err := buildWorld(cfg, args)
	if err != nil {
		return err
	}
	return writeExport(context.Background(), cfg, m)
}

// writeExport serializes the model to the configured output.
func writeExport(ctx context.Context, cfg *config.Config, m *world.Model) error {
	format, err := rdf.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}

	if cfg.Export.Output == "" {
		return m.Export(ctx, os.Stdout, format)
	}

	f, err := os.Create(cfg.Export.Output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := m.Export(ctx, f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	slog.Info("World exported", "path", cfg.Export.Output, "format", string(format))
	return nil
}

// runExportWatch re-exports the world whenever a definition file
// changes, until interrupted.
func runExportWatch(cfg *config.Config, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	patterns := cfg.World.Files
	if len(args) > 0 {
		patterns = args
	}
	paths, err := world.ResolveFiles(patterns)
	if err != nil {
		return err
	}

	// The world is rebuilt from scratch on every change; definitions
	// are declarative, so there is no state to migrate.
	rebuild := func() error {
		m := world.NewModel(
			world.WithBaseIRI(cfg.World.BaseIRI),
			world.WithLogger(slog.Default()),
		)
		if _, err := world.LoadFiles(m, paths); err != nil {
			return err
		}
		return writeExport(ctx, cfg, m)
	}

	// Initial export before watching.
	if err := rebuild(); err != nil {
		return err
	}

	watcher, err := world.NewWatcher(paths, cfg.Export.Debounce, slog.Default())
	if err != nil {
		return err
	}
	watcher.Start(ctx)
	defer watcher.Stop()

	slog.Info("Watching world files", "count", len(paths))
	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			slog.Info("World files changed", "files", changed)
			if err := rebuild(); err != nil {
				slog.Error("Re-export failed", "error", err)
			}
		}
	}
}
