package diagram

import (
	"fmt"
	"strings"

	"explainer/arrow"
)

// Direction picks which arrow constructor builds a connection.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
	DirCustom
)

var directionNames = [...]string{
	DirRight:  "right",
	DirLeft:   "left",
	DirUp:     "up",
	DirDown:   "down",
	DirCustom: "custom",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DirRight, nil
	}
	for d, name := range directionNames {
		if name == s {
			return Direction(d), nil
		}
	}
	return DirRight, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

func (d Direction) spec(from, to *Node, opts ...arrow.Option) arrow.Spec {
	switch d {
	case DirLeft:
		return arrow.LeftArrow(from, to, opts...)
	case DirUp:
		return arrow.UpArrow(from, to, opts...)
	case DirDown:
		return arrow.DownArrow(from, to, opts...)
	case DirCustom:
		return arrow.Directed(from, to, arrow.Right, arrow.Right, opts...)
	default:
		return arrow.RightArrow(from, to, opts...)
	}
}

// Style is how an arrow or curve is stroked.
type Style struct {
	Stroke     string
	LineWidth  float64
	ArrowSize  float64
	Dash       []float64
	Opacity    float64
	StartArrow bool
	EndArrow   bool
}

const (
	DefaultLineColor = "white"
	DefaultLineWidth = 3.0
	DefaultArrowSize = 8.0
)

func DefaultArrowStyle() Style {
	return Style{
		Stroke:    DefaultLineColor,
		LineWidth: DefaultLineWidth,
		ArrowSize: DefaultArrowSize,
		Opacity:   1,
		EndArrow:  true,
	}
}

func DefaultCurveStyle() Style {
	return Style{
		Stroke:    "blue",
		LineWidth: DefaultLineWidth,
		Opacity:   1,
	}
}

func (s Style) isZero() bool {
	return s.Stroke == "" && s.LineWidth == 0 && s.ArrowSize == 0 && len(s.Dash) == 0 &&
		s.Opacity == 0 && !s.StartArrow && !s.EndArrow
}

// Arrow is a live connection between two nodes.
type Arrow struct {
	FromID, ToID string
	Direction    Direction
	Spec         arrow.Spec
	Style        Style
}

// Points rebuilds the polyline from the current node state.
func (a *Arrow) Points() arrow.Polyline {
	return arrow.Build(a.Spec)
}

// FormatPolylines lists every arrow as "from -> to: x,y x,y ..." with the
// geometry recomputed now.
func FormatPolylines(d *Diagram) string {
	var b strings.Builder
	for _, a := range d.Arrows() {
		fmt.Fprintf(&b, "%s -> %s: %s\n", a.FromID, a.ToID, a.Points())
	}
	return b.String()
}
