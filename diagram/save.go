package diagram

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"explainer/geom"
)

// Save writes the diagram to filename as TOML. Waves are written out as
// their sampled point lists.
func (d *Diagram) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return d.Encode(file)
}

func (d *Diagram) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(d.toFile())
}

func (d *Diagram) toFile() fileDiagram {
	f := fileDiagram{
		Canvas: fileCanvas{Width: d.Width, Height: d.Height, Background: d.Background},
	}

	for _, n := range d.nodes {
		fn := fileNode{
			ID:     n.ID,
			Kind:   n.Kind.String(),
			Text:   n.GetText(),
			X:      n.Local.X,
			Y:      n.Local.Y,
			Width:  n.Width,
			Height: n.Height,
			Fill:   n.Fill,
			Stroke: n.Stroke,
			Count:  n.Count,
			Colors: n.Colors,
			Inset:  n.Inset,
			Flip:   n.Flip,
		}
		if n.parent != nil {
			fn.Parent = n.parent.ID
		}
		if !n.Offset.IsZero() {
			fn.Offset = pointSlice(&n.Offset)
		}
		fn.MoveTo = pointSlice(n.MoveTo)
		fn.LabelOffset = pointSlice(n.LabelOffset)
		f.Nodes = append(f.Nodes, fn)
	}

	for _, a := range d.arrows {
		f.Arrows = append(f.Arrows, fileArrow{
			From:       a.FromID,
			To:         a.ToID,
			Direction:  a.Direction.String(),
			FromAnchor: a.Spec.FromAnchor.String(),
			ToAnchor:   a.Spec.ToAnchor.String(),
			FromOffset: pointSlice(a.Spec.FromOffset),
			ToOffset:   pointSlice(a.Spec.ToOffset),
			FromEdge:   pointSlice(a.Spec.FromEdge),
			ToEdge:     pointSlice(a.Spec.ToEdge),
			fileStyle:  styleToFile(a.Style),
		})
	}

	for _, c := range d.curves {
		f.Curves = append(f.Curves, fileCurve{
			From:      pointsSlice(c.From),
			To:        pointsSlice(c.To),
			X:         c.Position.X,
			Y:         c.Position.Y,
			T:         c.T,
			fileStyle: styleToFile(c.Style),
		})
	}
	return f
}

func styleToFile(s Style) fileStyle {
	opacity := s.Opacity
	start, end := s.StartArrow, s.EndArrow
	return fileStyle{
		Stroke:     s.Stroke,
		Width:      s.LineWidth,
		ArrowSize:  s.ArrowSize,
		Dash:       s.Dash,
		Opacity:    &opacity,
		StartArrow: &start,
		EndArrow:   &end,
	}
}

func pointSlice(p *geom.Point) []float64 {
	if p == nil {
		return nil
	}
	return []float64{p.X, p.Y}
}

func pointsSlice(pts []geom.Point) [][]float64 {
	if pts == nil {
		return nil
	}
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}
