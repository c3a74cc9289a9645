package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"explainer/diagram"
	"explainer/geom"
)

func TestGridMapping(t *testing.T) {
	// 100 cells wide over 1000 world units: 10 per column, 20 per row
	g := NewGrid(100, 25, geom.Box{Left: -500, Right: 500, Top: -250, Bottom: 250})

	assert.Equal(t, geom.Pt(10, 20), g.Scale())
	x, y := g.Cell(geom.Pt(0, 0))
	assert.Equal(t, 50, x)
	assert.Equal(t, 12, y)
	x, y = g.Cell(geom.Pt(-500, -250))
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestGridHorizontalArrow(t *testing.T) {
	g := NewGrid(100, 25, geom.Box{Left: -500, Right: 500, Top: -250, Bottom: 250})
	g.DrawPolyline([]geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}, false, true)

	assert.Equal(t, '─', g.At(50, 12))
	assert.Equal(t, '─', g.At(55, 12))
	assert.Equal(t, '▶', g.At(60, 12))
	assert.Equal(t, ' ', g.At(61, 12))
}

func TestGridArrowHeads(t *testing.T) {
	tests := []struct {
		from, to geom.Point
		want     rune
	}{
		{geom.Pt(0, 0), geom.Pt(10, 0), '▶'},
		{geom.Pt(0, 0), geom.Pt(-10, 0), '◀'},
		{geom.Pt(0, 0), geom.Pt(0, -10), '▲'},
		{geom.Pt(0, 0), geom.Pt(0, 10), '▼'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(arrowHead(tt.from, tt.to)))
	}
}

func TestGridSelectedBox(t *testing.T) {
	g := NewGrid(100, 25, geom.Box{Left: -500, Right: 500, Top: -250, Bottom: 250})
	g.DrawBox(geom.Box{Left: 0, Right: 50, Top: 0, Bottom: 40}, true)

	assert.Equal(t, '#', g.At(50, 12))
	assert.Equal(t, '#', g.At(55, 14))
	assert.True(t, g.Marked(52, 13))
	assert.False(t, g.Marked(0, 0))
	assert.False(t, g.Marked(-1, 0))
}

func TestTerminal(t *testing.T) {
	d := diagram.New()
	d.SetMeasurer(diagram.MonoMeasurer{CharWidth: 10, LineHeight: 20})
	assert.NoError(t, d.AddNode(&diagram.Node{ID: "p", Kind: diagram.KindBlock, Lines: []string{"enc"}}, ""))
	assert.NoError(t, d.AddNode(&diagram.Node{ID: "q", Kind: diagram.KindBlock, Lines: []string{"dec"}, Local: geom.Pt(300, 0)}, ""))
	_, err := d.Connect("p", "q", diagram.DirRight)
	assert.NoError(t, err)

	g := Terminal(d, 80, 20, d.Extent().Grow(40), "q")
	out := g.String()

	assert.Contains(t, out, "enc")
	assert.Contains(t, out, "dec")
	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "#")
	assert.Len(t, g.Lines(), 20)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 80, len([]rune(line)))
	}
}
