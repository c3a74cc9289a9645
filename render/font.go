package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LineSpacing multiplies the font height between text lines.
const LineSpacing = 1.2

func FontFace(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// FontMeasurer sizes text with the face the renderer draws with, so block
// boxes hug their labels.
type FontMeasurer struct {
	Face font.Face
}

func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	face, err := FontFace(size)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{Face: face}, nil
}

func (m *FontMeasurer) Measure(lines []string) (float64, float64) {
	var w float64
	for _, line := range lines {
		adv := font.MeasureString(m.Face, line)
		if lw := float64(adv) / 64; lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * m.lineHeight()
}

func (m *FontMeasurer) lineHeight() float64 {
	return float64(m.Face.Metrics().Height) / 64 * LineSpacing
}
