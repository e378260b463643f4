package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tooltipper/pkg/config"
)

// globals holds the persistent flags and the config they select.
type globals struct {
	verbose    bool
	configPath string
	cfg        config.Config
}

func execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "tooltipper",
		Short:        "Inspect and preview tooltips in HTML pages",
		Long:         `tooltipper wires hover and click tooltips in an HTML page, replays pointer events against them and reports or renders the result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if g.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			g.cfg = cfg
			logger.Debug("config", "path", g.configPath, "selector", cfg.BaseSelector,
				"viewport", cfg.Viewport.Width, "events", len(cfg.Events))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newInspectCmd(g))
	root.AddCommand(newSnapshotCmd(g))
	root.AddCommand(newViewCmd(g))

	return root
}
