package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explainer/arrow"
	"explainer/config"
	"explainer/diagram"
	"explainer/geom"
)

func newTestModel(t *testing.T) *model {
	d := diagram.New()
	require.NoError(t, d.AddNode(&diagram.Node{ID: "p", Kind: diagram.KindBlock, Width: 100, Height: 40}, ""))
	require.NoError(t, d.AddNode(&diagram.Node{ID: "q", Kind: diagram.KindBlock, Width: 100, Height: 40, Local: geom.Pt(300, 0)}, ""))
	_, err := d.Connect("p", "q", diagram.DirRight)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.SaveDirectory = t.TempDir()
	m := newModel(d, filepath.Join(t.TempDir(), "pq.toml"), cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func press(m *model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+r":
			msg = tea.KeyMsg{Type: tea.KeyCtrlR}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestSelectionCycles(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "p", m.selectedID())

	press(m, "tab")
	assert.Equal(t, "q", m.selectedID())
	press(m, "tab")
	assert.Equal(t, "p", m.selectedID())
	press(m, "shift+tab")
	assert.Equal(t, "q", m.selectedID())
}

func TestMoveNodeDragsArrow(t *testing.T) {
	m := newTestModel(t)
	press(m, "tab", "m")
	assert.Equal(t, ModeMove, m.mode)

	// step is 10, shift doubles it
	press(m, "l", "L", "j", "enter")
	assert.Equal(t, ModeNormal, m.mode)

	q, _ := m.diagram.Node("q")
	assert.Equal(t, geom.Pt(330, 10), q.Local)
	assert.Equal(t, arrow.Polyline{geom.Pt(50, 0), geom.Pt(280, 10)}, m.diagram.Polylines()[0])

	press(m, "u")
	assert.Equal(t, geom.Pt(300, 0), q.Local)
	press(m, "ctrl+r")
	assert.Equal(t, geom.Pt(330, 10), q.Local)
}

func TestMoveCancelRestores(t *testing.T) {
	m := newTestModel(t)
	press(m, "m", "h", "h", "esc")

	p, _ := m.diagram.Node("p")
	assert.Equal(t, geom.Zero, p.Local)
	assert.False(t, m.history.CanUndo())
}

func TestResetSelected(t *testing.T) {
	m := newTestModel(t)
	press(m, "m", "k", "enter", "r")

	p, _ := m.diagram.Node("p")
	assert.Equal(t, geom.Zero, p.Local)
	assert.Equal(t, "Reset p", m.successMessage)

	press(m, "u")
	assert.Equal(t, geom.Pt(0, -10), p.Local)
}

func TestPanAndZoom(t *testing.T) {
	m := newTestModel(t)
	before := m.viewport()

	press(m, "l")
	assert.InDelta(t, before.Center().X+10, m.viewport().Center().X, 1e-9)

	press(m, "+")
	assert.InDelta(t, before.Width()/1.25, m.viewport().Width(), 1e-9)
	press(m, "-")
	assert.InDelta(t, before.Width(), m.viewport().Width(), 1e-9)
}

func TestCopyPolylines(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	press(m, "y")
	assert.Equal(t, "p -> q: 50,0 250,0\n", copied)
	assert.Equal(t, "Copied 1 arrows", m.successMessage)

	m.writeClipboard = func(string) error { return errors.New("no clipboard") }
	press(m, "y")
	assert.Equal(t, "no clipboard", m.errorMessage)
}

func TestExportPNG(t *testing.T) {
	m := newTestModel(t)
	var path string
	m.exportPNG = func(_ *diagram.Diagram, filename string) error {
		path = filename
		return nil
	}

	press(m, "p")
	assert.Equal(t, filepath.Join(m.config.SaveDirectory, "pq.png"), path)
	assert.Empty(t, m.errorMessage)
}

func TestSaveWritesFile(t *testing.T) {
	m := newTestModel(t)
	press(m, "s")
	require.Empty(t, m.errorMessage)

	d, err := diagram.Load(m.filename)
	require.NoError(t, err)
	assert.Len(t, d.Arrows(), 1)
}

func TestViewAndHelp(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "p (block)")

	press(m, "?")
	assert.True(t, m.help)
	assert.Contains(t, m.View(), "move node")
	press(m, "?")
	assert.False(t, m.help)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
