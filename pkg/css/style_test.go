package css

import "testing"

func TestParseInlineStyle_MultipleProperties(t *testing.T) {
	style := ParseInlineStyle("TOP: 100px; left:50px;; width: 200px ; bogus; background: #ffc")
	want := map[string]string{
		"top":              "100px",
		"left":             "50px",
		"width":            "200px",
		"background-color": "#ffc",
	}
	if len(style.Properties) != len(want) {
		t.Fatalf("expected %d properties, got %v", len(want), style.Properties)
	}
	for k, v := range want {
		if got, _ := style.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestGetLength(t *testing.T) {
	style := ParseInlineStyle("width: 80px; height: 20; top: auto")
	if w, ok := style.GetLength("width"); !ok || w != 80 {
		t.Errorf("width = %v, %v", w, ok)
	}
	if h, ok := style.GetLength("height"); !ok || h != 20 {
		t.Errorf("unitless height = %v, %v", h, ok)
	}
	if _, ok := style.GetLength("top"); ok {
		t.Error("auto is not a length")
	}
	if _, ok := style.GetLength("left"); ok {
		t.Error("missing property is not a length")
	}
}

func TestStyleStringRoundTrip(t *testing.T) {
	style := ParseInlineStyle("width: 80px; height: 20px")
	style.SetLength("top", -30)
	style.SetLength("left", 12.5)
	got := style.String()
	want := "height: 20px; left: 12.5px; top: -30px; width: 80px"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]Color{
		"red":     {255, 0, 0},
		" Navy ":  {0, 0, 128},
		"#ffcc00": {255, 204, 0},
		"#FC0":    {255, 204, 0},
	}
	for in, expected := range tests {
		color, ok := ParseColor(in)
		if !ok || color != expected {
			t.Errorf("color %q: expected %+v, got %+v (%v)", in, expected, color, ok)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "chartreuse-ish"} {
		if _, ok := ParseColor(bad); ok {
			t.Errorf("%q should not parse", bad)
		}
	}
}
