// Package render paints a page's positioned boxes into an image.
package render

import (
	"image"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"tooltipper/pkg/css"
	"tooltipper/pkg/dom"
	"tooltipper/pkg/html"
)

// Box is an element's painted rectangle.
type Box struct {
	Node   *html.Node
	Rect   dom.Rect
	Style  *css.Style
	ZIndex int
}

type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render clears the canvas and paints every visible element of the page.
// Boxes paint in document order within a z-index, so elements lifted into
// the overlay paint above the content they were taken from.
func (r *Renderer) Render(page *dom.Page) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	boxes := CollectBoxes(page)
	sortByZIndex(boxes)
	for _, box := range boxes {
		r.drawBox(box)
	}
}

// CollectBoxes returns the visible elements of the page in document order,
// skipping hidden subtrees.
func CollectBoxes(page *dom.Page) []*Box {
	var boxes []*Box
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if !page.Visible(n) {
			return
		}
		if n.Type == html.ElementNode && n.TagName != "document" {
			style := page.Style(n)
			z, _ := style.Get("z-index")
			zIndex, _ := strconv.Atoi(strings.TrimSpace(z))
			boxes = append(boxes, &Box{Node: n, Rect: page.Box(n), Style: style, ZIndex: zIndex})
		}
		for _, child := range n.Children {
			visit(child)
		}
	}
	visit(page.Doc.Root)
	return boxes
}

// sortByZIndex sorts boxes by z-index, keeping document order for ties.
func sortByZIndex(boxes []*Box) {
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].ZIndex < boxes[j].ZIndex
	})
}

func (r *Renderer) drawBox(box *Box) {
	rect := box.Rect
	if bg, ok := box.Style.Get("background-color"); ok {
		if color, ok := css.ParseColor(bg); ok && rect.Width > 0 && rect.Height > 0 {
			r.setColor(color)
			r.context.DrawRectangle(rect.Left, rect.Top, rect.Width, rect.Height)
			r.context.Fill()
		}
	}
	r.drawBorder(box)
	r.drawText(box)
}

func (r *Renderer) drawBorder(box *Box) {
	width, ok := box.Style.GetLength("border-width")
	if !ok || width <= 0 {
		return
	}
	color := css.Color{}
	if c, ok := box.Style.Get("border-color"); ok {
		color, _ = css.ParseColor(c)
	}
	rect := box.Rect
	r.setColor(color)
	r.context.SetLineWidth(width)
	// Stroke centered on the inside of the box edge.
	r.context.DrawRectangle(rect.Left+width/2, rect.Top+width/2, rect.Width-width, rect.Height-width)
	r.context.Stroke()
}

// drawText draws the element's own text runs with the context's built-in
// face, starting at the box origin.
func (r *Renderer) drawText(box *Box) {
	var runs []string
	for _, child := range box.Node.Children {
		if child.Type == html.TextNode && strings.TrimSpace(child.Text) != "" {
			runs = append(runs, strings.TrimSpace(child.Text))
		}
	}
	if len(runs) == 0 {
		return
	}
	color := css.Color{}
	if c, ok := box.Style.Get("color"); ok {
		color, _ = css.ParseColor(c)
	}
	r.setColor(color)
	r.context.DrawString(strings.Join(runs, " "), box.Rect.Left+2, box.Rect.Top+r.context.FontHeight())
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGB(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}
