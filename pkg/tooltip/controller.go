package tooltip

import (
	"github.com/charmbracelet/log"

	"tooltipper/pkg/dom"
	"tooltipper/pkg/html"
)

// DefaultVisibleClass marks a shown tooltip for the page's stylesheet.
const DefaultVisibleClass = "tooltipper-block"

// CloseSelector finds close triggers inside a tooltip.
const CloseSelector = "[data-close]"

// Host provides the DOM services a Controller needs. *dom.Page implements it.
type Host interface {
	QuerySelectorAll(root *html.Node, selector string) ([]*html.Node, error)
	On(n *html.Node, typ string, fn dom.Listener) dom.Subscription
	Overlay() *html.Node
	Offset(n *html.Node) (top, left float64)
	Size(n *html.Node) (width, height float64)
	SetTop(n *html.Node, v float64)
	SetLeft(n *html.Node, v float64)
}

// Controller drives one tooltip element. It is hidden until shown, and
// while visible the element lives in the host's overlay container.
type Controller struct {
	host         Host
	el           *html.Node
	anchor       *html.Node
	cfg          Config
	visibleClass string
	logger       *log.Logger

	visible bool
}

func newController(host Host, el *html.Node, visibleClass string, logger *log.Logger) *Controller {
	c := &Controller{
		host:         host,
		el:           el,
		anchor:       el.Parent,
		cfg:          ParseConfig(el.Dataset()),
		visibleClass: visibleClass,
		logger:       logger,
	}
	c.bindTrigger()
	c.bindClose()
	return c
}

// Element returns the tooltip element.
func (c *Controller) Element() *html.Node { return c.el }

// Anchor returns the element the tooltip is positioned against.
func (c *Controller) Anchor() *html.Node { return c.anchor }

// Config returns the configuration parsed at construction.
func (c *Controller) Config() Config { return c.cfg }

// Visible reports whether the tooltip is currently shown.
func (c *Controller) Visible() bool { return c.visible }

// bindTrigger subscribes to the anchor according to the trigger mode. An
// unknown mode binds nothing.
func (c *Controller) bindTrigger() {
	switch c.cfg.Trigger {
	case TriggerClick:
		c.host.On(c.anchor, dom.EventClick, c.onAnchorClick)
	case TriggerHover:
		c.host.On(c.anchor, dom.EventMouseEnter, c.onAnchorEnter)
		c.host.On(c.anchor, dom.EventMouseLeave, c.onAnchorLeave)
	default:
		c.logger.Debug("unknown trigger, no handlers bound", "trigger", c.cfg.Trigger)
	}
}

// bindClose wires every close marker present in the tooltip at
// construction time.
func (c *Controller) bindClose() {
	closers, err := c.host.QuerySelectorAll(c.el, CloseSelector)
	if err != nil {
		c.logger.Warn("close markers", "err", err)
		return
	}
	for _, n := range closers {
		c.host.On(n, dom.EventClick, c.onCloseClick)
	}
}

func (c *Controller) onAnchorClick(*dom.Event) {
	c.Toggle()
}

func (c *Controller) onAnchorEnter(*dom.Event) {
	if !c.visible {
		c.Show()
	}
}

func (c *Controller) onAnchorLeave(*dom.Event) {
	if c.visible {
		c.Hide()
	}
}

func (c *Controller) onCloseClick(*dom.Event) {
	c.Hide()
}

// Toggle shows a hidden tooltip and hides a visible one.
func (c *Controller) Toggle() {
	if c.visible {
		c.Hide()
	} else {
		c.Show()
	}
}

// Show lifts the tooltip into the overlay, positions it and marks it
// visible. It does nothing when already visible.
func (c *Controller) Show() {
	if c.visible {
		return
	}
	c.host.Overlay().AppendChild(c.el)
	c.layout()
	c.el.AddClass(c.visibleClass)
	c.visible = true
	c.logger.Debug("show", "tooltip", nodeID(c.el), "placement", c.cfg.Placement)
}

// Hide returns the tooltip under its anchor and clears the visible class.
// It does nothing when already hidden.
func (c *Controller) Hide() {
	if !c.visible {
		return
	}
	c.anchor.AppendChild(c.el)
	c.el.RemoveClass(c.visibleClass)
	c.visible = false
	c.logger.Debug("hide", "tooltip", nodeID(c.el))
}

// layout measures after attachment, since a detached element has no
// reliable size.
func (c *Controller) layout() {
	top, left := c.host.Offset(c.anchor)
	aw, ah := c.host.Size(c.anchor)
	w, h := c.host.Size(c.el)

	pos := Place(Rect{Top: top, Left: left, Width: aw, Height: ah}, w, h, c.cfg.Placement)
	if pos.HasTop {
		c.host.SetTop(c.el, pos.Top)
	}
	if pos.HasLeft {
		c.host.SetLeft(c.el, pos.Left)
	}
}

func nodeID(n *html.Node) string {
	if id, ok := n.GetAttribute("id"); ok {
		return "#" + id
	}
	return n.TagName
}
