package arrow

import (
	"errors"
	"strings"

	"explainer/geom"
)

var (
	ErrMissingFrom = errors.New("arrow has no source node")
	ErrMissingTo   = errors.New("arrow has no target node")
)

// Spec describes one directed arrow. Nil offsets and edges are absent;
// a non-nil zero vector is present and still counts.
type Spec struct {
	From, To Node

	FromAnchor, ToAnchor Anchor

	// Offsets are added to the resolved anchors.
	FromOffset, ToOffset *geom.Point

	// Edges insert a routing waypoint right after the start and right
	// before the end.
	FromEdge, ToEdge *geom.Point
}

// Validate reports missing endpoints.
func (s Spec) Validate() error {
	if s.From == nil {
		return ErrMissingFrom
	}
	if s.To == nil {
		return ErrMissingTo
	}
	return nil
}

// Start returns the resolved source point, offset included.
func (s Spec) Start() geom.Point {
	return withOffset(ResolveAnchor(s.From, s.FromAnchor), s.FromOffset)
}

// End returns the resolved target point, offset included.
func (s Spec) End() geom.Point {
	return withOffset(ResolveAnchor(s.To, s.ToAnchor), s.ToOffset)
}

func withOffset(p geom.Point, o *geom.Point) geom.Point {
	if o == nil {
		return p
	}
	return p.Add(*o)
}

// Build returns the current polyline of s: start, then start+FromEdge and
// end+ToEdge when present, then end. It always has 2 to 4 points. Build
// panics if either endpoint is nil.
func Build(s Spec) Polyline {
	if err := s.Validate(); err != nil {
		panic("arrow: " + err.Error())
	}
	start, end := s.Start(), s.End()

	points := make(Polyline, 0, 4)
	points = append(points, start)
	if s.FromEdge != nil {
		points = append(points, start.Add(*s.FromEdge))
	}
	if s.ToEdge != nil {
		points = append(points, end.Add(*s.ToEdge))
	}
	return append(points, end)
}

// Polyline is an ordered list of points drawn as connected segments.
type Polyline []geom.Point

// Start returns the first point.
func (p Polyline) Start() geom.Point { return p[0] }

// End returns the last point.
func (p Polyline) End() geom.Point { return p[len(p)-1] }

// Length returns the summed segment length.
func (p Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += p[i-1].Distance(p[i])
	}
	return l
}

// Segments calls fn for every consecutive pair of points.
func (p Polyline) Segments(fn func(a, b geom.Point)) {
	for i := 1; i < len(p); i++ {
		fn(p[i-1], p[i])
	}
}

func (p Polyline) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " ")
}
