package css

import (
	"sort"
	"strconv"
	"strings"
)

// Style holds the declarations of an inline style attribute.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// SetLength stores v as a px length.
func (s *Style) SetLength(property string, v float64) {
	s.Set(property, FormatLength(v))
}

// String serializes the declarations in property order, suitable for
// writing back into a style attribute.
func (s *Style) String() string {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	decls := make([]string, len(keys))
	for i, k := range keys {
		decls[i] = k + ": " + s.Properties[k]
	}
	return strings.Join(decls, "; ")
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// FormatLength renders v as a px length without trailing zeros: 145px, -30px, 12.5px.
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	for _, decl := range strings.Split(styleAttr, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])
		if property == "" || value == "" {
			continue
		}
		if property == "background" {
			// Only the color form of the shorthand is meaningful here
			property = "background-color"
		}
		style.Set(property, value)
	}
	return style
}

type Color struct {
	R, G, B uint8
}

var namedColors = map[string]Color{
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"white":   {255, 255, 255},
	"black":   {0, 0, 0},
	"gray":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
	"lime":    {0, 255, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"silver":  {192, 192, 192},
}

// ParseColor accepts named colors and #rgb / #rrggbb hex forms.
func ParseColor(colorStr string) (Color, bool) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))
	if !strings.HasPrefix(colorStr, "#") {
		color, ok := namedColors[colorStr]
		return color, ok
	}
	hex := colorStr[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}
