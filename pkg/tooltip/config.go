package tooltip

import "strings"

// Trigger selects the interaction that shows a tooltip.
type Trigger string

const (
	TriggerHover Trigger = "hover"
	TriggerClick Trigger = "click"
)

// Side is the anchor edge a tooltip is placed against.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Align is the cross-axis alignment relative to the anchor's extent.
type Align string

const (
	AlignCenter Align = "center"
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignTop    Align = "top"
	AlignBottom Align = "bottom"
)

// Placement is a primary side plus a secondary alignment. Values outside
// the known constants are kept as-is; layout skips the axis they govern.
type Placement struct {
	Side  Side
	Align Align
}

func (p Placement) String() string {
	if p.Align == "" {
		return string(p.Side)
	}
	return string(p.Side) + "|" + string(p.Align)
}

// Config is the per-tooltip configuration, fixed at construction.
type Config struct {
	Trigger   Trigger
	Placement Placement
}

// Data attribute defaults, as read from data-event and data-position.
const (
	DefaultEvent    = "hover"
	DefaultPosition = "top|center"
)

// ParsePlacement splits "side|align". A value without "|" has no
// alignment, so the cross axis is left alone.
func ParsePlacement(s string) Placement {
	side, align, _ := strings.Cut(s, "|")
	if i := strings.IndexByte(align, '|'); i >= 0 {
		align = align[:i]
	}
	return Placement{Side: Side(side), Align: Align(align)}
}

// ParseConfig reads a tooltip's dataset over the defaults. Unknown keys
// are ignored and nothing here fails.
func ParseConfig(data map[string]string) Config {
	event, position := DefaultEvent, DefaultPosition
	if v, ok := data["event"]; ok {
		event = v
	}
	if v, ok := data["position"]; ok {
		position = v
	}
	return Config{
		Trigger:   Trigger(event),
		Placement: ParsePlacement(position),
	}
}
