package diagram

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa and CSS colour names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty", ErrBadColor)
	}
	if strings.HasPrefix(s, "#") {
		alpha := uint8(0xff)
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[7:], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
			}
			alpha = uint8(a)
			s = s[:7]
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
}

// checkColors reports the first named colour that does not parse. Empty
// values mean "use the theme" and are skipped.
func checkColors(named ...[2]string) error {
	for _, nc := range named {
		if nc[1] == "" {
			continue
		}
		if _, err := ParseColor(nc[1]); err != nil {
			return fmt.Errorf("%s: %w", nc[0], err)
		}
	}
	return nil
}
