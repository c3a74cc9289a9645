package render

import (
	"math"
	"strings"

	"explainer/arrow"
	"explainer/diagram"
	"explainer/geom"
)

// CellAspect is how much taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Grid is a character raster of a world-space viewport, used by the
// terminal preview.
type Grid struct {
	Width, Height int

	cells  [][]rune
	marks  [][]bool
	origin geom.Point // world point at the top-left of cell (0,0)
	scale  geom.Point // world units per cell
}

// NewGrid maps view onto w by h cells, keeping the aspect ratio.
func NewGrid(w, h int, view geom.Box) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s := math.Max(view.Width()/float64(w), view.Height()/(float64(h)*CellAspect))
	if s <= 0 {
		s = 1
	}
	scale := geom.Pt(s, s*CellAspect)
	center := view.Center()
	origin := geom.Pt(center.X-float64(w)*scale.X/2, center.Y-float64(h)*scale.Y/2)

	g := &Grid{Width: w, Height: h, origin: origin, scale: scale}
	g.cells = make([][]rune, h)
	g.marks = make([][]bool, h)
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", w))
		g.marks[y] = make([]bool, w)
	}
	return g
}

// Scale returns the world size of one cell.
func (g *Grid) Scale() geom.Point {
	return g.scale
}

// Cell maps a world point to the cell containing it.
func (g *Grid) Cell(p geom.Point) (int, int) {
	return int(math.Floor((p.X - g.origin.X) / g.scale.X)), int(math.Floor((p.Y - g.origin.Y) / g.scale.Y))
}

func (g *Grid) isValidPos(x, y int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

func (g *Grid) Set(x, y int, r rune) {
	if g.isValidPos(x, y) {
		g.cells[y][x] = r
	}
}

func (g *Grid) At(x, y int) rune {
	if !g.isValidPos(x, y) {
		return 0
	}
	return g.cells[y][x]
}

func (g *Grid) Marked(x, y int) bool {
	return g.isValidPos(x, y) && g.marks[y][x]
}

// DrawBox outlines b; selected boxes get # borders.
func (g *Grid) DrawBox(b geom.Box, selected bool) {
	var horizontal, vertical, tl, tr, bl, br rune
	if selected {
		horizontal, vertical, tl, tr, bl, br = '#', '#', '#', '#', '#', '#'
	} else {
		horizontal, vertical, tl, tr, bl, br = '─', '│', '┌', '┐', '└', '┘'
	}

	x0, y0 := g.Cell(geom.Pt(b.Left, b.Top))
	x1, y1 := g.Cell(geom.Pt(b.Right, b.Bottom))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for x := x0; x <= x1; x++ {
		g.Set(x, y0, horizontal)
		g.Set(x, y1, horizontal)
	}
	for y := y0; y <= y1; y++ {
		g.Set(x0, y, vertical)
		g.Set(x1, y, vertical)
	}
	g.Set(x0, y0, tl)
	g.Set(x1, y0, tr)
	g.Set(x0, y1, bl)
	g.Set(x1, y1, br)

	if selected {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if g.isValidPos(x, y) {
					g.marks[y][x] = true
				}
			}
		}
	}
}

// DrawText centres lines on a world point.
func (g *Grid) DrawText(center geom.Point, lines []string) {
	cx, cy := g.Cell(center)
	y := cy - (len(lines)-1)/2
	for i, line := range lines {
		runes := []rune(line)
		x := cx - len(runes)/2
		for j, r := range runes {
			g.Set(x+j, y+i, r)
		}
	}
}

// DrawPolyline rasterises each segment and puts arrowheads on the ends.
func (g *Grid) DrawPolyline(pts []geom.Point, startArrow, endArrow bool) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		g.drawLineSegment(pts[i-1], pts[i])
	}
	if endArrow {
		x, y := g.Cell(pts[len(pts)-1])
		g.Set(x, y, arrowHead(pts[len(pts)-2], pts[len(pts)-1]))
	}
	if startArrow {
		x, y := g.Cell(pts[0])
		g.Set(x, y, arrowHead(pts[1], pts[0]))
	}
}

func (g *Grid) drawLineSegment(a, b geom.Point) {
	x0, y0 := g.Cell(a)
	x1, y1 := g.Cell(b)
	dx, dy := x1-x0, y1-y0

	var ch rune
	switch {
	case dy == 0:
		ch = '─'
	case dx == 0:
		ch = '│'
	case (dx > 0) == (dy > 0):
		ch = '╲'
	default:
		ch = '╱'
	}

	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		g.Set(x0, y0, ch)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(dx)*t))
		y := y0 + int(math.Round(float64(dy)*t))
		g.Set(x, y, ch)
	}
}

func arrowHead(from, to geom.Point) rune {
	d := to.Sub(from)
	if math.Abs(d.X) >= math.Abs(d.Y)*CellAspect {
		if d.X < 0 {
			return '◀'
		}
		return '▶'
	}
	if d.Y < 0 {
		return '▲'
	}
	return '▼'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (g *Grid) Lines() []string {
	lines := make([]string, g.Height)
	for y, row := range g.cells {
		lines[y] = string(row)
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Terminal rasterises d into a w by h grid showing view. The node named
// selected, if any, is drawn with # borders and marked.
func Terminal(d *diagram.Diagram, w, h int, view geom.Box, selected string) *Grid {
	g := NewGrid(w, h, view)

	for _, c := range d.Curves() {
		g.DrawPolyline(c.Points(), false, false)
	}
	for _, n := range d.Nodes() {
		if n.Kind == diagram.KindGroup || n.Kind == diagram.KindText {
			continue
		}
		g.DrawBox(n.Rect(), n.ID == selected)
	}
	for _, a := range d.Arrows() {
		g.drawArrow(a.Points(), a.Style)
	}
	for _, n := range d.Nodes() {
		if n.Kind == diagram.KindText && n.ID == selected {
			g.DrawBox(n.Rect(), true)
		}
		g.DrawText(n.LabelPosition(), n.Lines)
	}
	return g
}

func (g *Grid) drawArrow(line arrow.Polyline, style diagram.Style) {
	g.DrawPolyline(line, style.StartArrow, style.EndArrow)
}
