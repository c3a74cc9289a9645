package geom

import "math"

// Box is an axis-aligned bounding box expressed as signed extents from a
// node's own origin. y grows downward, so Top is normally negative.
type Box struct {
	Left, Right, Top, Bottom float64
}

// BoxOf returns a w by h box centred on the origin.
func BoxOf(w, h float64) Box {
	return Box{Left: -w / 2, Right: w / 2, Top: -h / 2, Bottom: h / 2}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Size returns width and height as a vector.
func (b Box) Size() Point {
	return Point{X: b.Width(), Y: b.Height()}
}

// Center returns the middle of the box in the same frame as its extents.
func (b Box) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// IsEmpty reports whether the box has no area.
func (b Box) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Translate moves the box by p.
func (b Box) Translate(p Point) Box {
	return Box{
		Left:   b.Left + p.X,
		Right:  b.Right + p.X,
		Top:    b.Top + p.Y,
		Bottom: b.Bottom + p.Y,
	}
}

// Offset shifts the box so that the origin sits at o, where o is given in
// [-1,1] relative units: (-1,-1) is the top-left corner, (0,0) the centre.
func (b Box) Offset(o Point) Box {
	return b.Translate(Point{X: -o.X * b.Width() / 2, Y: -o.Y * b.Height() / 2})
}

// Union returns the smallest box containing both b and c. An empty box is
// the identity.
func (b Box) Union(c Box) Box {
	if b == (Box{}) {
		return c
	}
	if c == (Box{}) {
		return b
	}
	return Box{
		Left:   math.Min(b.Left, c.Left),
		Right:  math.Max(b.Right, c.Right),
		Top:    math.Min(b.Top, c.Top),
		Bottom: math.Max(b.Bottom, c.Bottom),
	}
}

// Grow expands every side by d.
func (b Box) Grow(d float64) Box {
	return Box{Left: b.Left - d, Right: b.Right + d, Top: b.Top - d, Bottom: b.Bottom + d}
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Bounds returns the tight box around points. It returns the zero Box for
// an empty slice.
func Bounds(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Left: points[0].X, Right: points[0].X, Top: points[0].Y, Bottom: points[0].Y}
	for _, p := range points[1:] {
		b.Left = math.Min(b.Left, p.X)
		b.Right = math.Max(b.Right, p.X)
		b.Top = math.Min(b.Top, p.Y)
		b.Bottom = math.Max(b.Bottom, p.Y)
	}
	return b
}
