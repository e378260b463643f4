package dom

import (
	"tooltipper/pkg/html"
)

// Event types dispatched by the page.
const (
	EventClick      = "click"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
)

// Event is passed to listeners during dispatch.
type Event struct {
	Type          string
	Target        *html.Node // node the event was dispatched at
	CurrentTarget *html.Node // node whose listener is running

	stopped bool
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// Listener handles an event.
type Listener func(*Event)

type listener struct {
	id int
	fn Listener
}

// Subscription identifies a registered listener.
type Subscription struct {
	page *Page
	node *html.Node
	typ  string
	id   int
}

// Cancel removes the listener. Cancelling twice is harmless.
func (s Subscription) Cancel() {
	if s.page == nil {
		return
	}
	byType := s.page.listeners[s.node]
	list := byType[s.typ]
	for i, l := range list {
		if l.id == s.id {
			byType[s.typ] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// On registers fn for events of type typ at node n.
func (p *Page) On(n *html.Node, typ string, fn Listener) Subscription {
	byType, ok := p.listeners[n]
	if !ok {
		byType = make(map[string][]*listener)
		p.listeners[n] = byType
	}
	p.nextID++
	byType[typ] = append(byType[typ], &listener{id: p.nextID, fn: fn})
	return Subscription{page: p, node: n, typ: typ, id: p.nextID}
}

// ListenerCount reports how many listeners of type typ are registered at n.
func (p *Page) ListenerCount(n *html.Node, typ string) int {
	return len(p.listeners[n][typ])
}

// bubbles reports whether typ propagates to ancestors. mouseenter and
// mouseleave are delivered to their target only.
func bubbles(typ string) bool {
	switch typ {
	case EventMouseEnter, EventMouseLeave:
		return false
	}
	return true
}

// Dispatch delivers an event of type typ to target and, for bubbling
// types, to each ancestor in turn. The propagation path is fixed before
// the first listener runs, so listeners that move nodes do not change
// who receives the event.
func (p *Page) Dispatch(target *html.Node, typ string) *Event {
	ev := &Event{Type: typ, Target: target}
	path := []*html.Node{target}
	if bubbles(typ) {
		for n := target.Parent; n != nil; n = n.Parent {
			path = append(path, n)
		}
	}
	p.logger.Debug("dispatch", "type", typ, "target", describe(target))

	for _, n := range path {
		list := p.listeners[n][typ]
		if len(list) == 0 {
			continue
		}
		ev.CurrentTarget = n
		for _, l := range append([]*listener(nil), list...) {
			l.fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	return ev
}

// Click dispatches a click at target.
func (p *Page) Click(target *html.Node) *Event {
	return p.Dispatch(target, EventClick)
}

// PointerMove moves the pointer onto target (nil for off-page) and fires
// mouseleave on every element the pointer left, deepest first, then
// mouseenter on every element it entered, outermost first.
func (p *Page) PointerMove(target *html.Node) {
	next := ancestry(target)
	prev := p.hovered
	p.hovered = next

	common := 0
	for common < len(prev) && common < len(next) && prev[common] == next[common] {
		common++
	}
	for i := len(prev) - 1; i >= common; i-- {
		p.Dispatch(prev[i], EventMouseLeave)
	}
	for _, n := range next[common:] {
		p.Dispatch(n, EventMouseEnter)
	}
}

// Hovered returns the deepest element under the pointer, or nil.
func (p *Page) Hovered() *html.Node {
	if len(p.hovered) == 0 {
		return nil
	}
	return p.hovered[len(p.hovered)-1]
}

// ancestry returns n's element ancestors and n itself, outermost first,
// excluding the synthetic document node.
func ancestry(n *html.Node) []*html.Node {
	var path []*html.Node
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && n.TagName != "document" {
			path = append(path, n)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func describe(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	if id, ok := n.GetAttribute("id"); ok {
		return n.TagName + "#" + id
	}
	return n.TagName
}
