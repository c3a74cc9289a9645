// Package diagram is the scene model arrows are drawn over: positioned,
// sized nodes composed into a parent/child tree, the arrows joining them
// and freeform curves.
package diagram

import (
	"fmt"
	"strings"

	"explainer/geom"
)

type Kind int

const (
	KindBlock Kind = iota
	KindBlocks
	KindCircle
	KindText
	KindTrapezoid
	KindGroup
)

var kindNames = [...]string{
	KindBlock:     "block",
	KindBlocks:    "blocks",
	KindCircle:    "circle",
	KindText:      "text",
	KindTrapezoid: "trapezoid",
	KindGroup:     "group",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindBlock, nil
	}
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindBlock, fmt.Errorf("%w: %q", ErrBadKind, s)
}

// Layout constants shared by the block shapes.
const (
	Padding       = 10.0
	StackGap      = 20.0
	StackWidth    = 20.0
	StackHeight   = 40.0
	CircleSize    = 40.0
	CoderWidth    = 200.0
	CoderHeight   = 60.0
	CoderInset    = 20.0
	LabelDistance = 50.0
)

var DefaultStackColors = []string{"red", "blue", "green"}

// Node is one drawable element. Its bounding box is derived from its
// content every time it is read, so edits show up in arrows immediately.
type Node struct {
	ID    string
	Kind  Kind
	Lines []string

	// Local is the position relative to the parent, or to the world when
	// the node has no parent.
	Local geom.Point

	// Offset moves the origin inside the box, in [-1,1] units.
	Offset geom.Point

	// Width and Height override the derived size when non-zero.
	Width, Height float64

	Fill   string
	Stroke string

	// Count and Colors describe a block stack.
	Count  int
	Colors []string

	// Inset and Flip shape a trapezoid.
	Inset float64
	Flip  bool

	// LabelOffset places a circle's caption relative to its centre. Nil
	// means LabelDistance below it.
	LabelOffset *geom.Point

	// MoveTo is where the node ends up at t=1 when frames are rendered.
	MoveTo *geom.Point

	parent   *Node
	children []*Node
	measurer Measurer
}

func (n *Node) GetText() string {
	return strings.Join(n.Lines, "\n")
}

func (n *Node) SetText(text string) {
	if text == "" {
		n.Lines = nil
		return
	}
	n.Lines = strings.Split(text, "\n")
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// WorldPosition sums local positions up the parent chain. An ancestor's
// Offset moves its children along with its box.
func (n *Node) WorldPosition() geom.Point {
	p := n.Local
	for cur := n.parent; cur != nil; cur = cur.parent {
		p = p.Add(cur.Local).Add(cur.shift())
	}
	return p
}

// Bounds returns the node's box relative to its own origin.
func (n *Node) Bounds() geom.Box {
	return n.contentBounds().Offset(n.Offset)
}

// shift is how far Offset moves the node's content away from its origin.
func (n *Node) shift() geom.Point {
	if n.Offset.IsZero() {
		return geom.Zero
	}
	size := n.contentBounds().Size()
	return geom.Pt(-n.Offset.X*size.X/2, -n.Offset.Y*size.Y/2)
}

func (n *Node) contentBounds() geom.Box {
	var b geom.Box
	if n.Kind == KindGroup {
		for _, c := range n.children {
			b = b.Union(c.Bounds().Translate(c.Local))
		}
		if n.Width > 0 || n.Height > 0 {
			size := b.Size()
			if n.Width > 0 {
				size.X = n.Width
			}
			if n.Height > 0 {
				size.Y = n.Height
			}
			b = geom.BoxOf(size.X, size.Y).Translate(b.Center())
		}
	} else {
		size := n.Size()
		b = geom.BoxOf(size.X, size.Y)
	}
	return b
}

// Rect returns the bounding box in world space.
func (n *Node) Rect() geom.Box {
	return n.Bounds().Translate(n.WorldPosition())
}

// Size returns the content size of a non-group node, honouring explicit
// overrides.
func (n *Node) Size() geom.Point {
	w, h := n.contentSize()
	if n.Width > 0 {
		w = n.Width
		if n.Kind == KindCircle && n.Height == 0 {
			h = n.Width
		}
	}
	if n.Height > 0 {
		h = n.Height
	}
	return geom.Pt(w, h)
}

func (n *Node) contentSize() (float64, float64) {
	switch n.Kind {
	case KindBlock:
		w, h := n.measure()
		return w + 2*Padding, h + 2*Padding
	case KindBlocks:
		count := n.StackCount()
		if count == 0 {
			return 0, 0
		}
		w := float64(count)*StackWidth + float64(count-1)*StackGap
		return w + 2*Padding, StackHeight + 2*Padding
	case KindCircle:
		return CircleSize, CircleSize
	case KindText:
		return n.measure()
	case KindTrapezoid:
		return CoderWidth, CoderHeight
	}
	return 0, 0
}

func (n *Node) measure() (float64, float64) {
	m := n.measurer
	if m == nil {
		m = DefaultMeasurer
	}
	return m.Measure(n.Lines)
}

// StackCount is the number of blocks in a stack; it defaults to the number
// of colours.
func (n *Node) StackCount() int {
	if n.Count > 0 {
		return n.Count
	}
	return len(n.Colors)
}

// StackColor returns the fill of the i-th block in a stack.
func (n *Node) StackColor(i int) string {
	colors := n.Colors
	if len(colors) == 0 {
		colors = DefaultStackColors
	}
	return colors[i%len(colors)]
}

// StackRects returns the world-space boxes of each block in a stack.
func (n *Node) StackRects() []geom.Box {
	count := n.StackCount()
	if n.Kind != KindBlocks || count == 0 {
		return nil
	}
	r := n.Rect()
	rects := make([]geom.Box, count)
	x := r.Left + Padding
	for i := range rects {
		rects[i] = geom.Box{Left: x, Right: x + StackWidth, Top: r.Top + Padding, Bottom: r.Top + Padding + StackHeight}
		x += StackWidth + StackGap
	}
	return rects
}

// TrapezoidPoints returns the world-space outline of a trapezoid: the
// narrow edge on top, or at the bottom when flipped.
func (n *Node) TrapezoidPoints() []geom.Point {
	r := n.Rect()
	inset := n.Inset
	if inset == 0 {
		inset = CoderInset
	}
	if n.Flip {
		return []geom.Point{
			geom.Pt(r.Left, r.Top),
			geom.Pt(r.Right, r.Top),
			geom.Pt(r.Right-inset, r.Bottom),
			geom.Pt(r.Left+inset, r.Bottom),
		}
	}
	return []geom.Point{
		geom.Pt(r.Left+inset, r.Top),
		geom.Pt(r.Right-inset, r.Top),
		geom.Pt(r.Right, r.Bottom),
		geom.Pt(r.Left, r.Bottom),
	}
}

// LabelPosition is where a circle's caption is drawn.
func (n *Node) LabelPosition() geom.Point {
	if n.Kind == KindCircle {
		offset := geom.Pt(0, LabelDistance)
		if n.LabelOffset != nil {
			offset = *n.LabelOffset
		}
		return n.WorldPosition().Add(n.shift()).Add(offset)
	}
	return n.Rect().Center()
}

func (n *Node) isAncestor(of *Node) bool {
	for cur := of; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}
