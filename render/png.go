package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"explainer/arrow"
	"explainer/diagram"
	"explainer/geom"
)

type Options struct {
	Theme Theme
	// Face overrides the font built from Theme.FontSize.
	Face font.Face
}

func DefaultOptions() Options {
	return Options{Theme: DefaultTheme}
}

type painter struct {
	dc    *gg.Context
	theme Theme
	lh    float64
}

// Draw renders d into a new image the size of its canvas, with the world
// origin at the centre.
func Draw(d *diagram.Diagram, opts Options) (image.Image, error) {
	width, height := int(math.Ceil(d.Width)), int(math.Ceil(d.Height))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad canvas size %gx%g", d.Width, d.Height)
	}
	theme := opts.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme
	}

	face := opts.Face
	if face == nil {
		var err error
		if face, err = FontFace(theme.FontSize); err != nil {
			return nil, err
		}
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(colorOr(d.Background, theme.Background))
	dc.Clear()
	dc.Translate(float64(width)/2, float64(height)/2)
	dc.SetFontFace(face)

	p := &painter{dc: dc, theme: theme, lh: float64(face.Metrics().Height) / 64 * LineSpacing}

	// shapes first, then lines, then text so labels stay readable
	for _, n := range d.Nodes() {
		p.drawNode(n)
	}
	for _, c := range d.Curves() {
		p.drawCurve(c)
	}
	for _, a := range d.Arrows() {
		p.drawArrow(a.Points(), a.Style)
	}
	for _, n := range d.Nodes() {
		p.drawLabel(n)
	}
	return dc.Image(), nil
}

// PNG encodes the rendered diagram to w.
func PNG(d *diagram.Diagram, w io.Writer, opts Options) error {
	img, err := Draw(d, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

func SavePNG(d *diagram.Diagram, filename string, opts Options) error {
	img, err := Draw(d, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(filename, img)
}

// Frames writes n images to dir, sweeping t linearly from 0 to 1, and
// returns their paths.
func Frames(d *diagram.Diagram, n int, dir string, opts Options) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("frame count must be positive, got %d", n)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	if opts.Face == nil {
		face, err := FontFace(themeOrDefault(opts.Theme).FontSize)
		if err != nil {
			return nil, err
		}
		opts.Face = face
	}

	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := SavePNG(d.At(t), path, opts); err != nil {
			return paths, fmt.Errorf("frame %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func themeOrDefault(t Theme) Theme {
	if t == (Theme{}) {
		return DefaultTheme
	}
	return t
}

func (p *painter) drawNode(n *diagram.Node) {
	dc := p.dc
	r := n.Rect()
	stroke := colorOr(n.Stroke, p.theme.Stroke)
	dc.SetLineWidth(p.theme.LineWidth)

	switch n.Kind {
	case diagram.KindBlock:
		dc.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), p.theme.Radius)
		p.fillStroke(colorOr(n.Fill, p.theme.Fill), stroke)
	case diagram.KindBlocks:
		for i, b := range n.StackRects() {
			dc.DrawRectangle(b.Left, b.Top, b.Width(), b.Height())
			p.fillStroke(colorOr(n.StackColor(i), p.theme.Fill), stroke)
		}
	case diagram.KindCircle:
		c := r.Center()
		dc.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
		p.fillStroke(colorOr(n.Fill, p.theme.Fill), stroke)
	case diagram.KindTrapezoid:
		pts := n.TrapezoidPoints()
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		p.fillStroke(colorOr(n.Fill, "gray"), stroke)
	case diagram.KindGroup:
		if n.Fill == "" && n.Stroke == "" {
			return
		}
		dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
		p.fillStroke(colorOr(n.Fill, Transparent), colorOr(n.Stroke, Transparent))
	}
}

func (p *painter) fillStroke(fill, stroke color.Color) {
	p.dc.SetColor(fill)
	p.dc.FillPreserve()
	p.dc.SetColor(stroke)
	p.dc.Stroke()
}

func (p *painter) drawLabel(n *diagram.Node) {
	if len(n.Lines) == 0 {
		return
	}
	p.dc.SetColor(colorOr(p.theme.Text, DefaultTheme.Text))
	c := n.LabelPosition()
	y := c.Y - float64(len(n.Lines)-1)*p.lh/2
	for i, line := range n.Lines {
		p.dc.DrawStringAnchored(line, c.X, y+float64(i)*p.lh, 0.5, 0.35)
	}
}

func (p *painter) drawCurve(c *diagram.Curve) {
	pts := c.Points()
	if len(pts) < 2 {
		return
	}
	p.strokePath(pts, c.Style)
}

func (p *painter) drawArrow(line arrow.Polyline, style diagram.Style) {
	if len(line) < 2 {
		return
	}
	p.strokePath(line, style)

	col := withOpacity(colorOr(style.Stroke, p.theme.Stroke), style.Opacity)
	if style.EndArrow {
		p.drawArrowHead(line[len(line)-2], line[len(line)-1], style.ArrowSize, col)
	}
	if style.StartArrow {
		p.drawArrowHead(line[1], line[0], style.ArrowSize, col)
	}
}

func (p *painter) strokePath(pts []geom.Point, style diagram.Style) {
	dc := p.dc
	width := style.LineWidth
	if width <= 0 {
		width = p.theme.LineWidth
	}
	dc.SetLineWidth(width)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetColor(withOpacity(colorOr(style.Stroke, p.theme.Stroke), style.Opacity))
	if len(style.Dash) > 0 {
		dc.SetDash(style.Dash...)
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.Stroke()
	dc.SetDash()
}

// drawArrowHead fills a triangle whose tip sits on to, pointing away from
// from.
func (p *painter) drawArrowHead(from, to geom.Point, size float64, col color.Color) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}

	// Normalize
	dx /= length
	dy /= length

	if size <= 0 {
		size = diagram.DefaultArrowSize
	}
	arrowLength := size * 2
	halfWidth := size

	baseX1 := to.X - arrowLength*dx + halfWidth*dy
	baseY1 := to.Y - arrowLength*dy - halfWidth*dx
	baseX2 := to.X - arrowLength*dx - halfWidth*dy
	baseY2 := to.Y - arrowLength*dy + halfWidth*dx

	p.dc.SetColor(col)
	p.dc.MoveTo(to.X, to.Y)
	p.dc.LineTo(baseX1, baseY1)
	p.dc.LineTo(baseX2, baseY2)
	p.dc.ClosePath()
	p.dc.Fill()
}
