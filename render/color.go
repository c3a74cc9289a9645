package render

import (
	"image/color"

	"explainer/diagram"
)

// Colours of the original explainer videos.
const (
	EncoderColor = "red"
	LatentColor  = "green"
	DecoderColor = "blue"
	Transparent  = "#00000000"
)

// Theme holds the defaults applied when a node or arrow leaves a colour
// or width unset.
type Theme struct {
	Background string
	Fill       string
	Stroke     string
	Text       string
	LineWidth  float64
	FontSize   float64
	Radius     float64
}

var DefaultTheme = Theme{
	Background: "#141414",
	Fill:       "#038f61",
	Stroke:     "white",
	Text:       "white",
	LineWidth:  3,
	FontSize:   28,
	Radius:     5,
}

// WithFontSize returns t with its label size replaced when size is positive.
func (t Theme) WithFontSize(size float64) Theme {
	if size > 0 {
		t.FontSize = size
	}
	return t
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa and CSS colour names.
func ParseColor(s string) (color.NRGBA, error) {
	return diagram.ParseColor(s)
}

// colorOr parses s, falling back to def when s is empty or invalid.
func colorOr(s, def string) color.NRGBA {
	if c, err := ParseColor(s); err == nil {
		return c
	}
	c, _ := ParseColor(def)
	return c
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
