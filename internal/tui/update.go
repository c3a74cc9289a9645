package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"explainer/diagram"
	"explainer/geom"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpModel.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.errorMessage = ""
		m.successMessage = ""

		if m.help {
			if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
				m.help = false
			}
			return m, nil
		}

		if m.mode == ModeMove {
			return m.handleMoveMode(msg)
		}
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help = true
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down):
		m.handlePan(msg.String())
	case key.Matches(msg, m.keys.Next):
		m.cycleSelection(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleSelection(-1)
	case key.Matches(msg, m.keys.Move):
		if n := m.selectedNode(); n != nil {
			m.moveOrigin = n.Local
			m.mode = ModeMove
		}
	case key.Matches(msg, m.keys.Reset):
		m.resetSelected()
	case key.Matches(msg, m.keys.Undo):
		m.report(m.history.Undo(m.diagram), "")
	case key.Matches(msg, m.keys.Redo):
		m.report(m.history.Redo(m.diagram), "")
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom *= 1.25
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom /= 1.25
	case key.Matches(msg, m.keys.Copy):
		m.copyPolylines()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.PNG):
		m.savePNG()
	}
	return m, nil
}

func (m *model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.selectedNode()
	if n == nil {
		m.mode = ModeNormal
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		delta := n.Local.Sub(m.moveOrigin)
		if !delta.IsZero() {
			m.history.Record(diagram.ActionMoveNode,
				diagram.MoveNodeData{ID: n.ID, DeltaX: delta.X, DeltaY: delta.Y},
				diagram.OriginalNodeState{ID: n.ID, Position: m.moveOrigin})
			m.logger.Debugf("moved %s by %s", n.ID, delta)
		}
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Cancel):
		m.report(m.diagram.SetPosition(n.ID, m.moveOrigin), "")
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down):
		m.handleNodeMove(n, msg.String())
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) handlePan(k string) {
	step := m.config.Step * getMoveSpeed(k) / m.zoom
	dx, dy := direction(k)
	m.pan = m.pan.Add(geom.Pt(dx*step, dy*step))
}

func (m *model) handleNodeMove(n *diagram.Node, k string) {
	step := m.config.Step * getMoveSpeed(k)
	dx, dy := direction(k)
	m.report(m.diagram.MoveNode(n.ID, dx*step, dy*step), "")
}

func direction(k string) (float64, float64) {
	switch k {
	case "h", "left", "H", "shift+left":
		return -1, 0
	case "l", "right", "L", "shift+right":
		return 1, 0
	case "k", "up", "K", "shift+up":
		return 0, -1
	case "j", "down", "J", "shift+down":
		return 0, 1
	}
	return 0, 0
}

func (m *model) cycleSelection(delta int) {
	if len(m.order) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.order)) % len(m.order)
}

func (m *model) resetSelected() {
	n := m.selectedNode()
	if n == nil {
		return
	}
	orig, ok := m.original[n.ID]
	if !ok || orig == n.Local {
		return
	}
	m.report(m.history.RecordSetPosition(m.diagram, n.ID, orig), fmt.Sprintf("Reset %s", n.ID))
}

func (m *model) copyPolylines() {
	text := diagram.FormatPolylines(m.diagram)
	if text == "" {
		m.errorMessage = "No arrows to copy"
		return
	}
	m.report(m.writeClipboard(text), fmt.Sprintf("Copied %d arrows", len(m.diagram.Arrows())))
}

func (m *model) save() {
	if m.filename == "" {
		m.errorMessage = "No file to save to"
		return
	}
	m.report(m.diagram.Save(m.filename), "Saved "+m.filename)
}

func (m *model) savePNG() {
	base := "diagram"
	if m.filename != "" {
		base = strings.TrimSuffix(filepath.Base(m.filename), filepath.Ext(m.filename))
	}
	path := m.config.GetSavePath(base + ".png")
	m.report(m.exportPNG(m.diagram, path), "Exported "+path)
}

func (m *model) report(err error, success string) {
	if err != nil {
		m.errorMessage = err.Error()
		m.logger.Errorf("%v", err)
		return
	}
	if success != "" {
		m.successMessage = success
		m.logger.Printf("%s", success)
	}
}
