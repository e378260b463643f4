package js

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/dop251/goja"

	"tooltipper/pkg/dom"
	"tooltipper/pkg/tooltip"
)

// Engine executes a page's scripts against its DOM. Scripts see
// `document`, `console`, `dispatch` and the `tooltipper` entry point.
type Engine struct {
	vm            *goja.Runtime
	logger        *log.Logger
	collectorOpts []tooltip.Option
	collector     *tooltip.Collector
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes console output and script diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithCollectorOptions is passed through to the Collector backing
// `tooltipper`.
func WithCollectorOptions(opts ...tooltip.Option) Option {
	return func(e *Engine) { e.collectorOpts = append(e.collectorOpts, opts...) }
}

// New creates a new JS engine with a fresh goja runtime.
func New(opts ...Option) *Engine {
	e := &Engine{vm: goja.New()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	c := &consoleAPI{logger: e.logger.WithPrefix("console")}
	c.register(e.vm)

	return e
}

// Execute binds the page's DOM and runs its scripts in document order.
// The first script error stops execution and is returned.
func (e *Engine) Execute(page *dom.Page) error {
	ctx := registerDocument(e.vm, page, e.logger)
	registerEvents(ctx)

	opts := append([]tooltip.Option{tooltip.WithLogger(e.logger)}, e.collectorOpts...)
	e.collector = tooltip.NewCollector(page, opts...)
	registerTooltipper(ctx, e.collector)

	for i, script := range page.Doc.Scripts {
		e.logger.Debug("running script", "index", i, "bytes", len(script))
		if _, err := e.vm.RunString(script); err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}
	return nil
}

// Run evaluates src against the page bound by the last Execute.
func (e *Engine) Run(src string) (goja.Value, error) {
	return e.vm.RunString(src)
}

// Collector returns the Collector behind `tooltipper`, or nil before
// Execute.
func (e *Engine) Collector() *tooltip.Collector {
	return e.collector
}
