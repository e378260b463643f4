package dom

import (
	"tooltipper/pkg/css"
	"tooltipper/pkg/html"
)

// Rect is an element's box in page coordinates.
type Rect struct {
	Top, Left, Width, Height float64
}

// Contains reports whether the point lies inside r. Empty rects contain nothing.
func (r Rect) Contains(x, y float64) bool {
	return r.Width > 0 && r.Height > 0 &&
		x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

// Visible reports whether n renders. Nodes hidden by inline
// display: none, or rejected by the WithVisibility predicate, are skipped
// by hit-testing and painting together with their subtree.
func (p *Page) Visible(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return true
	}
	if d, ok := p.Style(n).Get("display"); ok && d == "none" {
		return false
	}
	return p.visible == nil || p.visible(n)
}

// Style parses n's inline style attribute.
func (p *Page) Style(n *html.Node) *css.Style {
	attr, _ := n.GetAttribute("style")
	return css.ParseInlineStyle(attr)
}

// Offset returns n's position relative to the page: the sum of the top
// and left declared by n and each of its ancestors.
func (p *Page) Offset(n *html.Node) (top, left float64) {
	for ; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		s := p.Style(n)
		if v, ok := s.GetLength("top"); ok {
			top += v
		}
		if v, ok := s.GetLength("left"); ok {
			left += v
		}
	}
	return top, left
}

// Size returns n's declared width and height; missing values are 0.
func (p *Page) Size(n *html.Node) (width, height float64) {
	s := p.Style(n)
	width, _ = s.GetLength("width")
	height, _ = s.GetLength("height")
	return width, height
}

// Box combines Offset and Size.
func (p *Page) Box(n *html.Node) Rect {
	top, left := p.Offset(n)
	w, h := p.Size(n)
	return Rect{Top: top, Left: left, Width: w, Height: h}
}

func (p *Page) SetTop(n *html.Node, v float64)  { p.setLength(n, "top", v) }
func (p *Page) SetLeft(n *html.Node, v float64) { p.setLength(n, "left", v) }

func (p *Page) setLength(n *html.Node, property string, v float64) {
	s := p.Style(n)
	s.SetLength(property, v)
	n.SetAttribute("style", s.String())
}

// HitTest returns the deepest element whose box contains (x, y). Later
// siblings are tested first since they paint on top.
func (p *Page) HitTest(x, y float64) *html.Node {
	return p.hit(p.Doc.Root, x, y)
}

func (p *Page) hit(n *html.Node, x, y float64) *html.Node {
	if !p.Visible(n) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if h := p.hit(n.Children[i], x, y); h != nil {
			return h
		}
	}
	if n.Type == html.ElementNode && n.TagName != "document" && p.Box(n).Contains(x, y) {
		return n
	}
	return nil
}
