package diagram

import (
	"errors"
	"fmt"

	"explainer/arrow"
	"explainer/geom"
)

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrBadKind       = errors.New("unknown node kind")
	ErrBadAnchor     = errors.New("bad anchor")
	ErrBadDirection  = errors.New("unknown arrow direction")
	ErrBadPoint      = errors.New("a point needs exactly two numbers")
	ErrCurveLength   = errors.New("curve endpoints differ in length")
	ErrParentCycle   = errors.New("node parent cycle")
	ErrBadColor      = errors.New("bad colour")
)

const (
	DefaultWidth      = 1920.0
	DefaultHeight     = 1080.0
	DefaultBackground = "#141414"
)

// Diagram owns the nodes, arrows and curves of one picture. World
// coordinates have their origin at the canvas centre.
type Diagram struct {
	Width      float64
	Height     float64
	Background string

	nodes    []*Node
	index    map[string]*Node
	arrows   []*Arrow
	curves   []*Curve
	measurer Measurer
}

func New() *Diagram {
	return &Diagram{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		nodes:      make([]*Node, 0),
		index:      make(map[string]*Node),
		arrows:     make([]*Arrow, 0),
		curves:     make([]*Curve, 0),
		measurer:   DefaultMeasurer,
	}
}

// SetMeasurer changes how text nodes are sized.
func (d *Diagram) SetMeasurer(m Measurer) {
	if m == nil {
		m = DefaultMeasurer
	}
	d.measurer = m
	for _, n := range d.nodes {
		n.measurer = m
	}
}

// AddNode inserts n under the node named parentID, or at the top level
// when parentID is empty.
func (d *Diagram) AddNode(n *Node, parentID string) error {
	if n.ID == "" {
		return fmt.Errorf("%w: empty id", ErrUnknownNode)
	}
	if _, ok := d.index[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	if parentID != "" {
		parent, ok := d.index[parentID]
		if !ok {
			return fmt.Errorf("%w: parent %q of %q", ErrUnknownNode, parentID, n.ID)
		}
		if n.isAncestor(parent) {
			return fmt.Errorf("%w: %q", ErrParentCycle, n.ID)
		}
		n.parent = parent
		parent.children = append(parent.children, n)
	}
	n.measurer = d.measurer
	d.nodes = append(d.nodes, n)
	d.index[n.ID] = n
	return nil
}

func (d *Diagram) Node(id string) (*Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

func (d *Diagram) mustNode(id string) (*Node, error) {
	n, ok := d.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	return n, nil
}

// Nodes returns every node in insertion order.
func (d *Diagram) Nodes() []*Node {
	return d.nodes
}

func (d *Diagram) Arrows() []*Arrow {
	return d.arrows
}

func (d *Diagram) Curves() []*Curve {
	return d.curves
}

// Connect adds an arrow between two existing nodes.
func (d *Diagram) Connect(fromID, toID string, dir Direction, opts ...arrow.Option) (*Arrow, error) {
	from, err := d.mustNode(fromID)
	if err != nil {
		return nil, err
	}
	to, err := d.mustNode(toID)
	if err != nil {
		return nil, err
	}
	a := &Arrow{
		FromID:    fromID,
		ToID:      toID,
		Direction: dir,
		Spec:      dir.spec(from, to, opts...),
		Style:     DefaultArrowStyle(),
	}
	d.arrows = append(d.arrows, a)
	return a, nil
}

// AddCurve appends a curve after checking both shapes line up.
// AddCurve appends c. A curve with no style at all gets DefaultCurveStyle.
func (d *Diagram) AddCurve(c *Curve) error {
	if c.To != nil && len(c.From) != len(c.To) {
		return fmt.Errorf("%w: %d != %d", ErrCurveLength, len(c.From), len(c.To))
	}
	if c.Style.isZero() {
		c.Style = DefaultCurveStyle()
	}
	d.curves = append(d.curves, c)
	return nil
}

func (d *Diagram) MoveNode(id string, dx, dy float64) error {
	n, err := d.mustNode(id)
	if err != nil {
		return err
	}
	n.Local = n.Local.Add(geom.Pt(dx, dy))
	return nil
}

func (d *Diagram) SetPosition(id string, p geom.Point) error {
	n, err := d.mustNode(id)
	if err != nil {
		return err
	}
	n.Local = p
	return nil
}

// Polylines recomputes every arrow against the current node state.
func (d *Diagram) Polylines() []arrow.Polyline {
	lines := make([]arrow.Polyline, len(d.arrows))
	for i, a := range d.arrows {
		lines[i] = a.Points()
	}
	return lines
}

// Extent is the world-space box covering everything drawn.
func (d *Diagram) Extent() geom.Box {
	var b geom.Box
	for _, n := range d.nodes {
		b = b.Union(n.Rect())
	}
	for _, line := range d.Polylines() {
		b = b.Union(geom.Bounds(line))
	}
	for _, c := range d.curves {
		b = b.Union(geom.Bounds(c.Points()))
	}
	return b
}

// NodeAt returns the top-most non-group node whose box contains p.
func (d *Diagram) NodeAt(p geom.Point) (*Node, bool) {
	for i := len(d.nodes) - 1; i >= 0; i-- {
		n := d.nodes[i]
		if n.Kind != KindGroup && n.Rect().Contains(p) {
			return n, true
		}
	}
	return nil, false
}

// Clone deep-copies the diagram; arrows are rebound to the copied nodes.
func (d *Diagram) Clone() *Diagram {
	c := New()
	c.Width, c.Height, c.Background = d.Width, d.Height, d.Background
	c.measurer = d.measurer
	for _, n := range d.nodes {
		cp := *n
		cp.parent, cp.children = nil, nil
		cp.Lines = append([]string(nil), n.Lines...)
		cp.Colors = append([]string(nil), n.Colors...)
		if n.MoveTo != nil {
			to := *n.MoveTo
			cp.MoveTo = &to
		}
		if n.LabelOffset != nil {
			lo := *n.LabelOffset
			cp.LabelOffset = &lo
		}
		parentID := ""
		if n.parent != nil {
			parentID = n.parent.ID
		}
		// ids were unique in d and parents precede children
		_ = c.AddNode(&cp, parentID)
	}
	for _, a := range d.arrows {
		cp := *a
		cp.Spec.From = c.index[a.FromID]
		cp.Spec.To = c.index[a.ToID]
		cp.Style.Dash = append([]float64(nil), a.Style.Dash...)
		c.arrows = append(c.arrows, &cp)
	}
	for _, cv := range d.curves {
		cp := *cv
		cp.From = append([]geom.Point(nil), cv.From...)
		cp.To = append([]geom.Point(nil), cv.To...)
		c.curves = append(c.curves, &cp)
	}
	return c
}

// At returns a copy of the diagram at interpolation parameter t: nodes with
// a MoveTo target are placed between their start and target, and curves
// are morphed. Arrows follow because they are recomputed on read.
func (d *Diagram) At(t float64) *Diagram {
	c := d.Clone()
	for _, n := range c.nodes {
		if n.MoveTo != nil {
			n.Local = n.Local.Lerp(*n.MoveTo, t)
		}
	}
	for _, cv := range c.curves {
		if cv.To != nil {
			cv.T = t
		}
	}
	return c
}
