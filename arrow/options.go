package arrow

import "explainer/geom"

// Option tweaks a Spec built by one of the directional constructors.
type Option func(*Spec)

// WithAnchors overrides both anchors.
func WithAnchors(from, to Anchor) Option {
	return func(s *Spec) {
		s.FromAnchor = from
		s.ToAnchor = to
	}
}

// WithOffsets sets both end offsets.
func WithOffsets(from, to geom.Point) Option {
	return func(s *Spec) {
		s.FromOffset = &from
		s.ToOffset = &to
	}
}

func WithFromOffset(o geom.Point) Option {
	return func(s *Spec) { s.FromOffset = &o }
}

func WithToOffset(o geom.Point) Option {
	return func(s *Spec) { s.ToOffset = &o }
}

// WithEdges sets both routing waypoints.
func WithEdges(from, to geom.Point) Option {
	return func(s *Spec) {
		s.FromEdge = &from
		s.ToEdge = &to
	}
}

func WithFromEdge(e geom.Point) Option {
	return func(s *Spec) { s.FromEdge = &e }
}

func WithToEdge(e geom.Point) Option {
	return func(s *Spec) { s.ToEdge = &e }
}

func newSpec(from, to Node, a1, a2 Anchor, opts []Option) Spec {
	s := Spec{From: from, To: to, FromAnchor: a1, ToAnchor: a2}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Directed returns a spec with explicit anchors.
func Directed(from, to Node, a1, a2 Anchor, opts ...Option) Spec {
	return newSpec(from, to, a1, a2, opts)
}

// UpArrow leaves from's top edge for to's bottom edge.
func UpArrow(from, to Node, opts ...Option) Spec {
	return newSpec(from, to, Top, Bottom, opts)
}

// DownArrow leaves from's bottom edge for to's top edge.
func DownArrow(from, to Node, opts ...Option) Spec {
	return newSpec(from, to, Bottom, Top, opts)
}

// RightArrow leaves from's right edge for to's left edge.
func RightArrow(from, to Node, opts ...Option) Spec {
	return newSpec(from, to, Right, Left, opts)
}

// LeftArrow leaves from's left edge for to's right edge.
func LeftArrow(from, to Node, opts ...Option) Spec {
	return newSpec(from, to, Left, Right, opts)
}
