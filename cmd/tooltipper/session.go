package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"tooltipper/pkg/config"
	"tooltipper/pkg/dom"
	"tooltipper/pkg/html"
	"tooltipper/pkg/js"
	"tooltipper/pkg/tooltip"
	stdnet "tooltipper/std/net"
)

// session is a loaded page with its tooltips wired.
type session struct {
	page      *dom.Page
	collector *tooltip.Collector
	logger    *log.Logger
}

// readSource returns the markup at a URL or file path.
func readSource(ctx context.Context, source string) ([]byte, error) {
	if stdnet.IsNetworkURL(source) {
		body, _, err := stdnet.Fetch(ctx, source)
		return body, err
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	return data, nil
}

// openSession loads source and wires its tooltips. Pages with scripts are
// expected to call tooltipper themselves; pages without get the Collector
// run over their body.
func openSession(ctx context.Context, source string, cfg config.Config) (*session, error) {
	logger := loggerFromContext(ctx)
	markup, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}
	page, err := dom.Load(string(markup), dom.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	s := &session{page: page, logger: logger}
	collectorOpts := []tooltip.Option{tooltip.WithLogger(logger), tooltip.WithVisibleClass(cfg.VisibleClass)}
	if len(page.Doc.Scripts) > 0 {
		engine := js.New(js.WithLogger(logger), js.WithCollectorOptions(collectorOpts...))
		if err := engine.Execute(page); err != nil {
			return nil, fmt.Errorf("running scripts: %w", err)
		}
		s.collector = engine.Collector()
	} else {
		s.collector = tooltip.NewCollector(page, collectorOpts...)
		if _, err := s.collector.Initialize(page.Body(), tooltip.Options{BaseSelector: cfg.BaseSelector}); err != nil {
			return nil, err
		}
	}
	page.SetVisibility(s.tooltipVisible)
	logger.Info("loaded page", "source", source, "tooltips", len(s.collector.Controllers()))
	return s, nil
}

// tooltipVisible hides wired tooltip elements until their controller
// shows them, standing in for the page's stylesheet. It follows whatever
// base selector wired the element, including ones chosen by page scripts.
func (s *session) tooltipVisible(n *html.Node) bool {
	ctrl, ok := s.collector.ControllerFor(n)
	return !ok || ctrl.Visible()
}

// replay dispatches each "selector:type" event at every matching element.
// The type "hover" moves the pointer onto the element, producing the
// mouseleave and mouseenter events a real pointer would.
func (s *session) replay(events []string) error {
	for _, spec := range events {
		selector, typ, err := config.ParseEvent(spec)
		if err != nil {
			return err
		}
		nodes, err := s.page.QuerySelectorAll(s.page.Doc.Root, selector)
		if err != nil {
			return fmt.Errorf("event %q: %w", spec, err)
		}
		if len(nodes) == 0 {
			s.logger.Warn("event matched nothing", "event", spec)
		}
		for _, n := range nodes {
			switch typ {
			case "hover":
				s.page.PointerMove(n)
			default:
				s.page.Dispatch(n, typ)
			}
		}
	}
	return nil
}
