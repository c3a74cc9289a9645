package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explainer/diagram"
	"explainer/geom"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#038f61", color.NRGBA{R: 0x03, G: 0x8f, B: 0x61, A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#00000000", color.NRGBA{}},
		{"#ff000080", color.NRGBA{R: 0xff, A: 0x80}},
		{"white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"Green", color.NRGBA{G: 0x80, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "#ff0000zz", "chartreuse-ish"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, diagram.ErrBadColor, bad)
	}
}

func TestColorOrAndOpacity(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, colorOr("not a colour", "red"))
	assert.Equal(t, uint8(0x80), withOpacity(color.NRGBA{A: 0xff}, 0.5).A)
	assert.Equal(t, uint8(0xff), withOpacity(color.NRGBA{A: 0xff}, 3).A)
	assert.Equal(t, uint8(0), withOpacity(color.NRGBA{A: 0xff}, -1).A)
}

func TestThemeWithFontSize(t *testing.T) {
	assert.Equal(t, 20.0, DefaultTheme.WithFontSize(20).FontSize)
	assert.Equal(t, DefaultTheme, DefaultTheme.WithFontSize(0))
	assert.Equal(t, 28.0, DefaultTheme.FontSize)
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(28)
	require.NoError(t, err)

	w1, h1 := m.Measure([]string{"flow"})
	w2, h2 := m.Measure([]string{"stochastic duration", "flow"})
	assert.Greater(t, w1, 0.0)
	assert.Greater(t, w2, w1)
	assert.InDelta(t, 2*h1, h2, 1e-9)

	w, h := m.Measure(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func pqDiagram(t *testing.T) *diagram.Diagram {
	d := diagram.New()
	d.Width, d.Height = 800, 200
	require.NoError(t, d.AddNode(&diagram.Node{ID: "p", Kind: diagram.KindBlock, Width: 100, Height: 40}, ""))
	require.NoError(t, d.AddNode(&diagram.Node{ID: "q", Kind: diagram.KindBlock, Width: 100, Height: 40, Local: geom.Pt(300, 0)}, ""))
	_, err := d.Connect("p", "q", diagram.DirRight)
	require.NoError(t, err)
	return d
}

func TestDraw(t *testing.T) {
	d := pqDiagram(t)

	img, err := Draw(d, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff}, img.At(5, 5), "background")
	assert.Equal(t, color.RGBA{R: 0x03, G: 0x8f, B: 0x61, A: 0xff}, img.At(400, 100), "block fill at p")
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.At(550, 100), "arrow stroke")
}

func TestDrawFollowsMovedNode(t *testing.T) {
	d := pqDiagram(t)
	require.NoError(t, d.MoveNode("q", 0, 60))

	img, err := Draw(d, DefaultOptions())
	require.NoError(t, err)
	// the arrow now runs diagonally, so its old straight path is empty
	assert.Equal(t, color.RGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff}, img.At(620, 100))
}

func TestDrawRejectsEmptyCanvas(t *testing.T) {
	d := diagram.New()
	d.Width = 0
	_, err := Draw(d, DefaultOptions())
	assert.Error(t, err)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(pqDiagram(t), &buf, DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
}

func TestFrames(t *testing.T) {
	d := pqDiagram(t)
	q, _ := d.Node("q")
	q.MoveTo = geom.Ptr(300, 60)

	dir := t.TempDir()
	paths, err := Frames(d, 3, dir, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
	assert.True(t, strings.HasSuffix(paths[2], "frame_0002.png"))

	_, err = Frames(d, 0, dir, DefaultOptions())
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	path := t.TempDir() + "/out.png"
	require.NoError(t, SavePNG(pqDiagram(t), path, DefaultOptions()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDrawExamples(t *testing.T) {
	for _, name := range []string{"../examples/vits.toml", "../examples/signal.toml"} {
		d, err := diagram.Load(name)
		require.NoError(t, err, name)
		m, err := NewFontMeasurer(DefaultTheme.FontSize)
		require.NoError(t, err)
		d.SetMeasurer(m)

		_, err = Draw(d.At(0.5), DefaultOptions())
		assert.NoError(t, err, name)
	}
}
