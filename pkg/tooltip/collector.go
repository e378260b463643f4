// Package tooltip discovers tooltip elements in a document and drives
// their show/hide behavior.
//
// A tooltip is any element matching the collector's base selector. Its
// parent at discovery time is its anchor. Each tooltip reads its own
// configuration from data attributes:
//
//	<a style="...">Hover me
//	  <span class="tooltipper" data-event="click" data-position="bottom|left">
//	    Details <b data-close>x</b>
//	  </span>
//	</a>
//
// data-event is "hover" (default) or "click"; data-position is
// "side|align" with side in top, bottom, left, right (default top|center).
// Elements carrying data-close inside a tooltip hide it when clicked.
package tooltip

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tooltipper/pkg/html"
)

// DefaultBaseSelector finds tooltip elements when Options leaves it empty.
const DefaultBaseSelector = ".tooltipper"

// Options configures one Initialize call.
type Options struct {
	BaseSelector string
}

func (o Options) withDefaults() Options {
	if o.BaseSelector == "" {
		o.BaseSelector = DefaultBaseSelector
	}
	return o
}

// Collector creates Controllers for the tooltips under a root. Each root
// and each tooltip element is initialized at most once.
type Collector struct {
	host         Host
	visibleClass string
	logger       *log.Logger

	roots       map[*html.Node]bool
	controlled  map[*html.Node]*Controller
	controllers []*Controller
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger routes collector and controller diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// WithVisibleClass overrides DefaultVisibleClass.
func WithVisibleClass(cls string) Option {
	return func(c *Collector) { c.visibleClass = cls }
}

// NewCollector returns a Collector that wires tooltips through host.
func NewCollector(host Host, opts ...Option) *Collector {
	c := &Collector{
		host:         host,
		visibleClass: DefaultVisibleClass,
		roots:        make(map[*html.Node]bool),
		controlled:   make(map[*html.Node]*Controller),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Initialize finds every descendant of root matching the base selector
// and wires a Controller for each. It returns the new Controllers; a
// root that was already initialized yields none. Only a malformed
// selector is an error.
func (c *Collector) Initialize(root *html.Node, opts Options) ([]*Controller, error) {
	if c.roots[root] {
		c.logger.Debug("root already initialized", "root", nodeID(root))
		return nil, nil
	}
	opts = opts.withDefaults()

	matches, err := c.host.QuerySelectorAll(root, opts.BaseSelector)
	if err != nil {
		return nil, fmt.Errorf("finding tooltips with %q: %w", opts.BaseSelector, err)
	}
	c.roots[root] = true

	var created []*Controller
	for _, el := range matches {
		if _, ok := c.controlled[el]; ok || el.Parent == nil {
			continue
		}
		ctrl := newController(c.host, el, c.visibleClass, c.logger)
		c.controlled[el] = ctrl
		c.controllers = append(c.controllers, ctrl)
		created = append(created, ctrl)
		c.logger.Debug("tooltip", "element", nodeID(el), "anchor", nodeID(ctrl.anchor),
			"trigger", ctrl.cfg.Trigger, "placement", ctrl.cfg.Placement)
	}
	c.logger.Info("initialized tooltips", "root", nodeID(root), "selector", opts.BaseSelector, "count", len(created))
	return created, nil
}

// Controllers returns every Controller created so far, in creation order.
func (c *Collector) Controllers() []*Controller {
	return append([]*Controller(nil), c.controllers...)
}

// ControllerFor returns the Controller owning el, if any.
func (c *Collector) ControllerFor(el *html.Node) (*Controller, bool) {
	ctrl, ok := c.controlled[el]
	return ctrl, ok
}
