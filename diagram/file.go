package diagram

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"explainer/arrow"
	"explainer/geom"
)

type fileDiagram struct {
	Canvas fileCanvas  `toml:"canvas"`
	Nodes  []fileNode  `toml:"node"`
	Arrows []fileArrow `toml:"arrow"`
	Curves []fileCurve `toml:"curve"`
}

type fileCanvas struct {
	Width      float64 `toml:"width,omitempty"`
	Height     float64 `toml:"height,omitempty"`
	Background string  `toml:"background,omitempty"`
}

type fileNode struct {
	ID     string    `toml:"id"`
	Kind   string    `toml:"kind,omitempty"`
	Text   string    `toml:"text,omitempty"`
	X      float64   `toml:"x"`
	Y      float64   `toml:"y"`
	Parent string    `toml:"parent,omitempty"`
	Width  float64   `toml:"width,omitempty"`
	Height float64   `toml:"height,omitempty"`
	Fill   string    `toml:"fill,omitempty"`
	Stroke string    `toml:"stroke,omitempty"`
	Count  int       `toml:"count,omitempty"`
	Colors []string  `toml:"colors,omitempty"`
	Inset  float64   `toml:"inset,omitempty"`
	Flip   bool      `toml:"flip,omitempty"`
	Offset []float64 `toml:"offset,omitempty"`
	MoveTo []float64 `toml:"move_to,omitempty"`

	LabelOffset []float64 `toml:"label_offset,omitempty"`
}

type fileArrow struct {
	From       string    `toml:"from"`
	To         string    `toml:"to"`
	Direction  string    `toml:"direction,omitempty"`
	FromAnchor string    `toml:"from_anchor,omitempty"`
	ToAnchor   string    `toml:"to_anchor,omitempty"`
	FromOffset []float64 `toml:"from_offset,omitempty"`
	ToOffset   []float64 `toml:"to_offset,omitempty"`
	FromEdge   []float64 `toml:"from_edge,omitempty"`
	ToEdge     []float64 `toml:"to_edge,omitempty"`
	fileStyle
}

type fileStyle struct {
	Stroke     string    `toml:"stroke,omitempty"`
	Width      float64   `toml:"width,omitempty"`
	ArrowSize  float64   `toml:"arrow_size,omitempty"`
	Dash       []float64 `toml:"dash,omitempty"`
	Opacity    *float64  `toml:"opacity,omitempty"`
	StartArrow *bool     `toml:"start_arrow,omitempty"`
	EndArrow   *bool     `toml:"end_arrow,omitempty"`
}

type fileCurve struct {
	From [][]float64 `toml:"from,omitempty"`
	To   [][]float64 `toml:"to,omitempty"`
	X    float64     `toml:"x,omitempty"`
	Y    float64     `toml:"y,omitempty"`
	T    float64     `toml:"t,omitempty"`
	Wave *fileWave   `toml:"wave,omitempty"`
	fileStyle
}

type fileWave struct {
	Samples    int        `toml:"samples"`
	Step       float64    `toml:"step"`
	Scale      float64    `toml:"scale,omitempty"`
	PhaseFrom  float64    `toml:"phase_from,omitempty"`
	PhaseTo    float64    `toml:"phase_to,omitempty"`
	Components []fileSine `toml:"component"`
}

type fileSine struct {
	Amplitude float64 `toml:"amplitude,omitempty"`
	Period    float64 `toml:"period,omitempty"`
}

// Load reads a TOML diagram file.
func Load(filename string) (*Diagram, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

// Decode parses a TOML diagram. Unknown keys are rejected so typos in
// hand-written files surface instead of silently dropping an edge.
func Decode(r io.Reader) (*Diagram, error) {
	var f fileDiagram
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return f.build()
}

func (f *fileDiagram) build() (*Diagram, error) {
	if err := checkColors([2]string{"canvas background", f.Canvas.Background}); err != nil {
		return nil, err
	}
	d := New()
	if f.Canvas.Width > 0 {
		d.Width = f.Canvas.Width
	}
	if f.Canvas.Height > 0 {
		d.Height = f.Canvas.Height
	}
	if f.Canvas.Background != "" {
		d.Background = f.Canvas.Background
	}

	if err := d.addFileNodes(f.Nodes); err != nil {
		return nil, err
	}
	for i, fa := range f.Arrows {
		if err := d.addFileArrow(fa); err != nil {
			return nil, fmt.Errorf("arrow %d (%s -> %s): %w", i, fa.From, fa.To, err)
		}
	}
	for i, fc := range f.Curves {
		if err := d.addFileCurve(fc); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
	}
	return d, nil
}

// addFileNodes inserts nodes parents-first regardless of file order.
func (d *Diagram) addFileNodes(nodes []fileNode) error {
	pending := make([]fileNode, len(nodes))
	copy(pending, nodes)

	for len(pending) > 0 {
		var next []fileNode
		for _, fn := range pending {
			if fn.Parent != "" {
				if _, ok := d.index[fn.Parent]; !ok {
					next = append(next, fn)
					continue
				}
			}
			n, err := fn.node()
			if err != nil {
				return fmt.Errorf("node %q: %w", fn.ID, err)
			}
			if err := d.AddNode(n, fn.Parent); err != nil {
				return err
			}
		}
		if len(next) == len(pending) {
			return unresolvedParents(next)
		}
		pending = next
	}
	return nil
}

func unresolvedParents(nodes []fileNode) error {
	waiting := make(map[string]bool, len(nodes))
	for _, fn := range nodes {
		waiting[fn.ID] = true
	}
	for _, fn := range nodes {
		if !waiting[fn.Parent] {
			return fmt.Errorf("%w: parent %q of %q", ErrUnknownNode, fn.Parent, fn.ID)
		}
	}
	return fmt.Errorf("%w: %q", ErrParentCycle, nodes[0].ID)
}

func (fn fileNode) node() (*Node, error) {
	kind, err := ParseKind(fn.Kind)
	if err != nil {
		return nil, err
	}
	n := &Node{
		ID:     fn.ID,
		Kind:   kind,
		Local:  geom.Pt(fn.X, fn.Y),
		Width:  fn.Width,
		Height: fn.Height,
		Fill:   fn.Fill,
		Stroke: fn.Stroke,
		Count:  fn.Count,
		Colors: fn.Colors,
		Inset:  fn.Inset,
		Flip:   fn.Flip,
	}
	n.SetText(fn.Text)

	colors := [][2]string{{"fill", fn.Fill}, {"stroke", fn.Stroke}}
	for i, c := range fn.Colors {
		colors = append(colors, [2]string{fmt.Sprintf("colors[%d]", i), c})
	}
	if err := checkColors(colors...); err != nil {
		return nil, err
	}

	offset, err := parsePoint(fn.Offset)
	if err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}
	if offset != nil {
		n.Offset = *offset
	}
	if n.MoveTo, err = parsePoint(fn.MoveTo); err != nil {
		return nil, fmt.Errorf("move_to: %w", err)
	}
	if n.LabelOffset, err = parsePoint(fn.LabelOffset); err != nil {
		return nil, fmt.Errorf("label_offset: %w", err)
	}
	return n, nil
}

func (d *Diagram) addFileArrow(fa fileArrow) error {
	dir, err := ParseDirection(fa.Direction)
	if err != nil {
		return err
	}

	var opts []arrow.Option
	if fa.FromAnchor != "" {
		a, err := arrow.ParseAnchor(fa.FromAnchor)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadAnchor, err)
		}
		opts = append(opts, func(s *arrow.Spec) { s.FromAnchor = a })
	}
	if fa.ToAnchor != "" {
		a, err := arrow.ParseAnchor(fa.ToAnchor)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadAnchor, err)
		}
		opts = append(opts, func(s *arrow.Spec) { s.ToAnchor = a })
	}

	points := []struct {
		name string
		raw  []float64
		opt  func(geom.Point) arrow.Option
	}{
		{"from_offset", fa.FromOffset, arrow.WithFromOffset},
		{"to_offset", fa.ToOffset, arrow.WithToOffset},
		{"from_edge", fa.FromEdge, arrow.WithFromEdge},
		{"to_edge", fa.ToEdge, arrow.WithToEdge},
	}
	for _, p := range points {
		pt, err := parsePoint(p.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		if pt != nil {
			opts = append(opts, p.opt(*pt))
		}
	}

	if err := checkColors([2]string{"stroke", fa.Stroke}); err != nil {
		return err
	}
	a, err := d.Connect(fa.From, fa.To, dir, opts...)
	if err != nil {
		return err
	}
	a.Style = fa.fileStyle.apply(DefaultArrowStyle())
	return nil
}

func (d *Diagram) addFileCurve(fc fileCurve) error {
	if err := checkColors([2]string{"stroke", fc.Stroke}); err != nil {
		return err
	}
	var c *Curve
	if fc.Wave != nil {
		w := Wave{
			Samples:   fc.Wave.Samples,
			Step:      fc.Wave.Step,
			Scale:     fc.Wave.Scale,
			PhaseFrom: fc.Wave.PhaseFrom,
			PhaseTo:   fc.Wave.PhaseTo,
		}
		for _, s := range fc.Wave.Components {
			w.Components = append(w.Components, Sine{Amplitude: s.Amplitude, Period: s.Period})
		}
		c = WaveCurve(w, DefaultCurveStyle())
	} else {
		from, err := parsePoints(fc.From)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}
		to, err := parsePoints(fc.To)
		if err != nil {
			return fmt.Errorf("to: %w", err)
		}
		c = &Curve{From: from, To: to, Style: DefaultCurveStyle()}
	}
	c.Position = geom.Pt(fc.X, fc.Y)
	c.T = fc.T
	c.Style = fc.fileStyle.apply(c.Style)
	return d.AddCurve(c)
}

func (fs fileStyle) apply(s Style) Style {
	if fs.Stroke != "" {
		s.Stroke = fs.Stroke
	}
	if fs.Width > 0 {
		s.LineWidth = fs.Width
	}
	if fs.ArrowSize > 0 {
		s.ArrowSize = fs.ArrowSize
	}
	if len(fs.Dash) > 0 {
		s.Dash = fs.Dash
	}
	if fs.Opacity != nil {
		s.Opacity = *fs.Opacity
	}
	if fs.StartArrow != nil {
		s.StartArrow = *fs.StartArrow
	}
	if fs.EndArrow != nil {
		s.EndArrow = *fs.EndArrow
	}
	return s
}

func parsePoint(raw []float64) (*geom.Point, error) {
	switch len(raw) {
	case 0:
		return nil, nil
	case 2:
		return geom.Ptr(raw[0], raw[1]), nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrBadPoint, len(raw))
}

func parsePoints(raw [][]float64) ([]geom.Point, error) {
	if raw == nil {
		return nil, nil
	}
	pts := make([]geom.Point, len(raw))
	for i, r := range raw {
		if len(r) != 2 {
			return nil, fmt.Errorf("point %d: %w: got %d", i, ErrBadPoint, len(r))
		}
		pts[i] = geom.Pt(r[0], r[1])
	}
	return pts, nil
}
