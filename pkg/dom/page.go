// Package dom hosts a parsed document for interactive behaviors: it owns
// the overlay container, the event listener registry and the geometry
// read from inline styles.
package dom

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tooltipper/pkg/css"
	"tooltipper/pkg/html"
)

// Page wraps a document with the services UI behaviors need.
type Page struct {
	Doc *html.Document

	logger    *log.Logger
	listeners map[*html.Node]map[string][]*listener
	nextID    int
	hovered   []*html.Node // pointer path, outermost first
	visible   func(*html.Node) bool
}

// Option configures a Page.
type Option func(*Page)

// WithLogger routes page diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Page) { p.logger = l }
}

// WithVisibility installs a predicate deciding which elements render,
// standing in for stylesheet rules such as .tip { display: none }.
func WithVisibility(fn func(*html.Node) bool) Option {
	return func(p *Page) { p.visible = fn }
}

// SetVisibility replaces the visibility predicate after Load, for hosts
// whose predicate depends on state built from the loaded page.
func (p *Page) SetVisibility(fn func(*html.Node) bool) { p.visible = fn }

// NewPage wraps an already parsed document.
func NewPage(doc *html.Document, opts ...Option) *Page {
	p := &Page{
		Doc:       doc,
		listeners: make(map[*html.Node]map[string][]*listener),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	return p
}

// Load parses markup into a new Page.
func Load(markup string, opts ...Option) (*Page, error) {
	doc, err := html.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return NewPage(doc, opts...), nil
}

func (p *Page) Logger() *log.Logger { return p.logger }

// Body returns the document body.
func (p *Page) Body() *html.Node { return p.Doc.Body() }

// Overlay is the top-level container elements are lifted into to render
// above their siblings. It is the document body.
func (p *Page) Overlay() *html.Node { return p.Body() }

func (p *Page) QuerySelectorAll(root *html.Node, selector string) ([]*html.Node, error) {
	return css.QuerySelectorAll(root, selector)
}

func (p *Page) QuerySelector(root *html.Node, selector string) (*html.Node, error) {
	return css.QuerySelector(root, selector)
}
