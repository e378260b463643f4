package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"tooltipper/pkg/html"
	"tooltipper/pkg/render"
)

func newViewCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "view <page.html|url>",
		Short: "Open the page in a window and hover its tooltips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], g.cfg)
			if err != nil {
				return err
			}
			if err := s.replay(g.cfg.Events); err != nil {
				return err
			}

			a := app.New()
			w := a.NewWindow("tooltipper: " + args[0])
			status := widget.NewLabel("")
			view := newPageView(s, g.cfg.Viewport.Width, g.cfg.Viewport.Height, status)
			w.SetContent(container.NewBorder(nil, status, nil, nil, view))
			w.Resize(fyne.NewSize(float32(g.cfg.Viewport.Width), float32(g.cfg.Viewport.Height)+40))
			w.ShowAndRun()
			return nil
		},
	}
}

// pageView shows the rendered page and feeds pointer input back into it.
// Fyne delivers input on its event goroutine, which is the only place the
// page is touched once the window is open.
type pageView struct {
	widget.BaseWidget

	session  *session
	renderer *render.Renderer
	img      *canvas.Image
	status   *widget.Label
	hovered  *html.Node
}

var (
	_ desktop.Hoverable = (*pageView)(nil)
	_ fyne.Tappable     = (*pageView)(nil)
)

func newPageView(s *session, width, height int, status *widget.Label) *pageView {
	v := &pageView{
		session:  s,
		renderer: render.NewRenderer(width, height),
		status:   status,
	}
	v.renderer.Render(s.page)
	v.img = canvas.NewImageFromImage(v.renderer.Image())
	v.img.FillMode = canvas.ImageFillStretch
	v.img.ScaleMode = canvas.ImageScalePixels
	v.img.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	v.ExtendBaseWidget(v)
	v.updateStatus()
	return v
}

func (v *pageView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

func (v *pageView) MouseIn(ev *desktop.MouseEvent) { v.pointer(ev.Position) }

func (v *pageView) MouseMoved(ev *desktop.MouseEvent) { v.pointer(ev.Position) }

func (v *pageView) MouseOut() {
	v.session.page.PointerMove(nil)
	v.hovered = nil
	v.redraw()
}

func (v *pageView) Tapped(ev *fyne.PointEvent) {
	if n := v.session.page.HitTest(float64(ev.Position.X), float64(ev.Position.Y)); n != nil {
		v.session.page.Click(n)
		v.redraw()
	}
}

// pointer moves the page pointer to the element under pos and repaints
// when that element changed.
func (v *pageView) pointer(pos fyne.Position) {
	n := v.session.page.HitTest(float64(pos.X), float64(pos.Y))
	if n == v.hovered {
		return
	}
	v.hovered = n
	v.session.page.PointerMove(n)
	v.redraw()
}

func (v *pageView) redraw() {
	v.renderer.Render(v.session.page)
	v.img.Refresh()
	v.updateStatus()
}

func (v *pageView) updateStatus() {
	shown := 0
	for _, c := range v.session.collector.Controllers() {
		if c.Visible() {
			shown++
		}
	}
	over := "-"
	if v.hovered != nil {
		over = label(v.hovered)
	}
	v.status.SetText(fmt.Sprintf("pointer: %s   tooltips: %d shown / %d", over, shown, len(v.session.collector.Controllers())))
}
