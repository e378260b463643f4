package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tooltipper/pkg/css"
	"tooltipper/pkg/html"
)

func newInspectCmd(g *globals) *cobra.Command {
	var events []string

	cmd := &cobra.Command{
		Use:   "inspect <page.html|url>",
		Short: "Print each tooltip's state after replaying events",
		Example: `  tooltipper inspect page.html
  tooltipper inspect page.html --event "#help:hover" --event "#more:click"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], g.cfg)
			if err != nil {
				return err
			}
			if err := s.replay(append(g.cfg.Events, events...)); err != nil {
				return err
			}
			return s.report(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringArrayVarP(&events, "event", "e", nil, `event to replay as "selector:type" (repeatable)`)
	return cmd
}

// report writes one row per tooltip.
func (s *session) report(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOLTIP\tANCHOR\tTRIGGER\tPLACEMENT\tVISIBLE\tTOP\tLEFT")
	for _, c := range s.collector.Controllers() {
		cfg := c.Config()
		top, left := "-", "-"
		if c.Visible() {
			t, l := s.page.Offset(c.Element())
			top, left = css.FormatLength(t), css.FormatLength(l)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\t%s\t%s\n",
			label(c.Element()), label(c.Anchor()), cfg.Trigger, cfg.Placement, c.Visible(), top, left)
	}
	return tw.Flush()
}

// label names a node by tag, id and first class.
func label(n *html.Node) string {
	s := n.TagName
	if id, ok := n.GetAttribute("id"); ok && id != "" {
		s += "#" + id
	} else if cls := n.Classes(); len(cls) > 0 {
		s += "." + cls[0]
	}
	return s
}
