package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"explainer/config"
	"explainer/diagram"
	"explainer/geom"
	"explainer/log"
	"explainer/render"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeMove
)

// viewPadding is the world margin kept around the diagram's initial extent.
const viewPadding = 60.0

type model struct {
	width  int
	height int

	diagram  *diagram.Diagram
	history  diagram.History
	filename string
	original map[string]geom.Point

	order    []string
	selected int
	mode     Mode
	help     bool

	view geom.Box
	pan  geom.Point
	zoom float64

	moveOrigin geom.Point

	errorMessage   string
	successMessage string

	config    *config.Config
	logger    log.Logger
	keys      keyMap
	helpModel help.Model

	writeClipboard func(string) error
	exportPNG      func(d *diagram.Diagram, filename string) error
}

// New builds the preview model for d. filename is where 's' saves to.
func New(d *diagram.Diagram, filename string, cfg *config.Config, logger log.Logger) tea.Model {
	return newModel(d, filename, cfg, logger)
}

func newModel(d *diagram.Diagram, filename string, cfg *config.Config, logger log.Logger) *model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Discard()
	}

	m := &model{
		diagram:  d,
		filename: filename,
		original: make(map[string]geom.Point),
		selected: -1,
		mode:     ModeNormal,
		view:     d.Extent().Grow(viewPadding),
		zoom:     1,
		config:   cfg,
		logger:   logger,
		keys:     defaultKeyMap(),

		helpModel:      help.New(),
		writeClipboard: clipboard.WriteAll,
		exportPNG: func(d *diagram.Diagram, filename string) error {
			return render.SavePNG(d, filename, render.Options{Theme: render.DefaultTheme.WithFontSize(cfg.FontSize)})
		},
	}
	for _, n := range d.Nodes() {
		m.original[n.ID] = n.Local
		if n.Kind != diagram.KindGroup {
			m.order = append(m.order, n.ID)
		}
	}
	if len(m.order) > 0 {
		m.selected = 0
	}
	return m
}

// Run starts the preview on the alternate screen and blocks until quit.
func Run(d *diagram.Diagram, filename string, cfg *config.Config, logger log.Logger) error {
	p := tea.NewProgram(New(d, filename, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) selectedNode() *diagram.Node {
	if m.selected < 0 || m.selected >= len(m.order) {
		return nil
	}
	n, _ := m.diagram.Node(m.order[m.selected])
	return n
}

func (m *model) selectedID() string {
	if n := m.selectedNode(); n != nil {
		return n.ID
	}
	return ""
}

// viewport is the world box currently on screen.
func (m *model) viewport() geom.Box {
	c := m.view.Center().Add(m.pan)
	w := m.view.Width() / m.zoom
	h := m.view.Height() / m.zoom
	return geom.BoxOf(w, h).Translate(c)
}

func (m *model) canvasSize() (int, int) {
	w := m.width
	if w < 1 {
		w = 80
	}
	// status line and help line
	h := m.height - 2
	if h < 1 {
		h = 22
	}
	return w, h
}
