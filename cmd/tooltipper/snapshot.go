package main

import (
	"github.com/spf13/cobra"

	"tooltipper/pkg/render"
)

func newSnapshotCmd(g *globals) *cobra.Command {
	var (
		events        []string
		output        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "snapshot <page.html|url>",
		Short: "Render the page to PNG after replaying events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			s, err := openSession(cmd.Context(), args[0], g.cfg)
			if err != nil {
				return err
			}
			if err := s.replay(append(g.cfg.Events, events...)); err != nil {
				return err
			}
			if width == 0 {
				width = g.cfg.Viewport.Width
			}
			if height == 0 {
				height = g.cfg.Viewport.Height
			}
			r := render.NewRenderer(width, height)
			r.Render(s.page)
			if err := r.SavePNG(output); err != nil {
				return err
			}
			logger.Info("saved snapshot", "path", output, "width", width, "height", height)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&events, "event", "e", nil, `event to replay as "selector:type" (repeatable)`)
	cmd.Flags().StringVarP(&output, "output", "o", "snapshot.png", "output PNG file")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default from config)")
	return cmd
}
