package tooltip

import "testing"

func TestPlace(t *testing.T) {
	anchor := Rect{Top: 100, Left: 50, Width: 200, Height: 30}

	tests := []struct {
		placement string
		want      Position
	}{
		{"top|center", Position{Top: 80, Left: 110, HasTop: true, HasLeft: true}},
		{"top|left", Position{Top: 80, Left: 50, HasTop: true, HasLeft: true}},
		{"top|right", Position{Top: 80, Left: 170, HasTop: true, HasLeft: true}},
		{"bottom|left", Position{Top: 130, Left: 50, HasTop: true, HasLeft: true}},
		{"bottom|center", Position{Top: 130, Left: 110, HasTop: true, HasLeft: true}},
		{"left|center", Position{Top: 105, Left: -30, HasTop: true, HasLeft: true}},
		{"left|bottom", Position{Top: 110, Left: -30, HasTop: true, HasLeft: true}},
		{"right|top", Position{Top: 100, Left: 250, HasTop: true, HasLeft: true}},
		{"right|center", Position{Top: 105, Left: 250, HasTop: true, HasLeft: true}},

		// Alignments that belong to the other axis are ignored.
		{"top|top", Position{Top: 80, HasTop: true}},
		{"right|left", Position{Left: 250, HasLeft: true}},

		// One token: no alignment, cross axis untouched.
		{"bottom", Position{Top: 130, HasTop: true}},
		{"left", Position{Left: -30, HasLeft: true}},

		// Unknown primary side: nothing applies, not even the alignment.
		{"middle|center", Position{}},
		{"", Position{}},
	}
	for _, tt := range tests {
		got := Place(anchor, 80, 20, ParsePlacement(tt.placement))
		if got != tt.want {
			t.Errorf("Place(%q) = %+v, want %+v", tt.placement, got, tt.want)
		}
	}
}
