package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"explainer/render"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Reverse(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m *model) View() string {
	if m.help {
		return m.helpView()
	}

	w, h := m.canvasSize()
	// arrows are rebuilt from the current node positions on every frame
	grid := render.Terminal(m.diagram, w, h, m.viewport(), m.selectedID())

	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		b.WriteString(renderRow(grid, y))
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine(w))
	b.WriteByte('\n')
	b.WriteString(m.helpModel.View(m.keys))
	return b.String()
}

// renderRow styles runs of marked cells in one pass.
func renderRow(g *render.Grid, y int) string {
	var b, run strings.Builder
	marked := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if marked {
			b.WriteString(selectedStyle.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for x := 0; x < g.Width; x++ {
		if g.Marked(x, y) != marked {
			flush()
			marked = !marked
		}
		run.WriteRune(g.At(x, y))
	}
	flush()
	return b.String()
}

func (m *model) statusLine(width int) string {
	left := fmt.Sprintf(" %s ", m.modeString())
	if n := m.selectedNode(); n != nil {
		p := n.WorldPosition()
		left += fmt.Sprintf("| %s (%s) at %g,%g ", n.ID, n.Kind, p.X, p.Y)
	}
	left += fmt.Sprintf("| %d arrows | zoom %.2fx ", len(m.diagram.Arrows()), m.zoom)

	status := statusStyle.Render(left)
	switch {
	case m.errorMessage != "":
		status += " " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		status += " " + successStyle.Render(m.successMessage)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(status)
}

func (m *model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

func (m *model) helpView() string {
	helpLines := []string{
		titleStyle.Render("explainer preview"),
		"",
		"Arrows are recomputed from the node boxes on every redraw, so moving",
		"a node drags every connection attached to it.",
		"",
	}
	full := m.helpModel
	full.ShowAll = true
	helpLines = append(helpLines, full.View(m.keys))
	helpLines = append(helpLines, "", "Press ? or esc to close")
	return strings.Join(helpLines, "\n")
}
