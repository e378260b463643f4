package tooltip

// Rect is a box in page coordinates.
type Rect struct {
	Top, Left, Width, Height float64
}

// Position is the result of Place. An axis whose rule did not apply is
// reported unset and must leave the element's coordinate untouched.
type Position struct {
	Top, Left       float64
	HasTop, HasLeft bool
}

func (p *Position) setTop(v float64)  { p.Top, p.HasTop = v, true }
func (p *Position) setLeft(v float64) { p.Left, p.HasLeft = v, true }

// Place computes where a tooltip of the given size goes relative to
// anchor. The primary side fixes one axis, the alignment the other.
func Place(anchor Rect, width, height float64, pl Placement) Position {
	var pos Position

	switch pl.Side {
	case SideTop:
		pos.setTop(anchor.Top - height)
	case SideBottom:
		pos.setTop(anchor.Top + anchor.Height)
	case SideLeft:
		pos.setLeft(anchor.Left - width)
	case SideRight:
		pos.setLeft(anchor.Left + anchor.Width)
	}

	switch pl.Side {
	case SideTop, SideBottom:
		switch pl.Align {
		case AlignCenter:
			pos.setLeft(anchor.Left + anchor.Width/2 - width/2)
		case AlignLeft:
			pos.setLeft(anchor.Left)
		case AlignRight:
			pos.setLeft(anchor.Left + anchor.Width - width)
		}
	case SideLeft, SideRight:
		switch pl.Align {
		case AlignCenter:
			pos.setTop(anchor.Top + anchor.Height/2 - height/2)
		case AlignTop:
			pos.setTop(anchor.Top)
		case AlignBottom:
			pos.setTop(anchor.Top + anchor.Height - height)
		}
	}

	return pos
}
