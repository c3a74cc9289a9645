// Package arrow computes the polylines of directed arrows joining two
// diagram nodes. Nothing here is cached: callers re-run Build whenever they
// need the current geometry, typically once per rendered frame.
package arrow

import (
	"fmt"
	"strings"

	"explainer/geom"
)

// Anchor selects the edge midpoint of a node's bounding box that an arrow
// attaches to. The zero value is Right.
type Anchor int

const (
	Right Anchor = iota
	Left
	Top
	Bottom
)

var anchorNames = [...]string{
	Right:  "right",
	Left:   "left",
	Top:    "top",
	Bottom: "bottom",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor maps a name to an Anchor. The empty string yields the
// default, Right.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return Right, nil
	case "left":
		return Left, nil
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Right, fmt.Errorf("unknown anchor %q", s)
}

// Opposite returns the anchor on the facing edge.
func (a Anchor) Opposite() Anchor {
	switch a {
	case Left:
		return Right
	case Top:
		return Bottom
	case Bottom:
		return Top
	default:
		return Left
	}
}

// Node is the read-only view of a diagram element an arrow attaches to.
type Node interface {
	// WorldPosition is the node origin in world space.
	WorldPosition() geom.Point
	// Bounds is the bounding box relative to the node origin.
	Bounds() geom.Box
}

// LocalAnchor returns the anchor point of box b in the box's own frame.
// Left and right anchors have y=0, top and bottom anchors have x=0.
func LocalAnchor(b geom.Box, a Anchor) geom.Point {
	switch a {
	case Left:
		return geom.Pt(b.Left, 0)
	case Top:
		return geom.Pt(0, b.Top)
	case Bottom:
		return geom.Pt(0, b.Bottom)
	default:
		return geom.Pt(b.Right, 0)
	}
}

// ResolveAnchor returns the world-space anchor point of n. A zero-size box
// collapses to the node position.
func ResolveAnchor(n Node, a Anchor) geom.Point {
	return n.WorldPosition().Add(LocalAnchor(n.Bounds(), a))
}
