// Package tui is an interactive terminal host for the layout engine,
// wiring live query, type filtering, pause/resume, selection, and
// keyboard-driven node dragging to the simulation tick loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TFMV/forcegraph/config"
	"github.com/TFMV/forcegraph/models"
	"github.com/TFMV/forcegraph/physics"
	"github.com/TFMV/forcegraph/render"
)

const frameInterval = 50 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(1)

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5722"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginLeft(1)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model hosting the engine
type Model struct {
	engine   *physics.Engine
	graph    *models.Graph
	view     models.View
	ascii    *render.ASCIIRenderer
	options  *render.Options
	drift    *physics.Drift
	driftOn  bool
	query    textinput.Model
	typeIdx  int // index into view.Types, -1 = all types
	dragging bool
}

// New creates a TUI host for the given graph
func New(g *models.Graph, settings config.Settings) Model {
	engine := physics.NewEngine(settings.EngineConfig())
	view := models.Filter(g, "", "")
	engine.SetActive(view)

	query := textinput.New()
	query.Placeholder = "search label or type"
	query.CharLimit = 64
	query.Width = 32

	options := render.NewDefaultOptions()
	options.Width = settings.Canvas.Width
	options.Height = settings.Canvas.Height
	options.Palette = render.NewPalette(view.Types, settings.Palette)

	return Model{
		engine:  engine,
		graph:   g,
		view:    view,
		ascii:   &render.ASCIIRenderer{},
		options: options,
		drift:   physics.NewDrift(1, 3.0),
		query:   query,
		typeIdx: -1,
	}
}

// Init starts the animation tick
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles ticks and key events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.engine.Running() {
			m.engine.Step()
		}
		if m.driftOn {
			m.drift.Advance()
		}
		return m, tick()

	case tea.KeyMsg:
		if m.query.Focused() {
			switch msg.String() {
			case "enter":
				m.query.Blur()
				m.applyFilter()
			case "esc":
				m.query.Blur()
				m.query.SetValue("")
				m.applyFilter()
			default:
				var cmd tea.Cmd
				m.query, cmd = m.query.Update(msg)
				return m, cmd
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.engine.SetRunning(!m.engine.Running())
	case "/":
		m.query.Focus()
		return m, textinput.Blink
	case "t":
		m.cycleTypeFilter()
	case "n":
		m.cycleSelection()
	case "c", "esc":
		m.stopDrag()
		m.engine.ClearSelection()
	case "d":
		m.toggleDrag()
	case "o":
		m.driftOn = !m.driftOn
	case "up", "down", "left", "right":
		m.moveDragged(msg.String())
	}
	return m, nil
}

func (m *Model) applyFilter() {
	typeFilter := ""
	if m.typeIdx >= 0 && m.typeIdx < len(m.view.Types) {
		typeFilter = m.view.Types[m.typeIdx]
	}
	m.stopDrag()
	m.view = models.Filter(m.graph, m.query.Value(), typeFilter)
	m.engine.SetActive(m.view)
}

func (m *Model) cycleTypeFilter() {
	m.typeIdx++
	if m.typeIdx >= len(m.view.Types) {
		m.typeIdx = -1
	}
	m.applyFilter()
}

func (m *Model) cycleSelection() {
	if len(m.view.Nodes) == 0 {
		return
	}
	m.stopDrag()
	current := m.engine.Selected()
	next := 0
	for i, node := range m.view.Nodes {
		if node.ID == current {
			next = (i + 1) % len(m.view.Nodes)
			break
		}
	}
	m.engine.ClearSelection()
	m.engine.Select(m.view.Nodes[next].ID)
}

func (m *Model) toggleDrag() {
	id := m.engine.Selected()
	if id == "" {
		return
	}
	if m.dragging {
		m.engine.EndDrag(id)
		m.dragging = false
		return
	}
	m.engine.BeginDrag(id)
	m.dragging = true
}

func (m *Model) stopDrag() {
	if !m.dragging {
		return
	}
	if id := m.engine.Selected(); id != "" {
		m.engine.EndDrag(id)
	}
	m.dragging = false
}

// moveDragged nudges the pinned node in canvas units, standing in for
// pointer coordinates
func (m *Model) moveDragged(key string) {
	if !m.dragging {
		return
	}
	id := m.engine.Selected()
	body, ok := m.engine.Body(id)
	if !ok {
		return
	}
	const step = 10.0
	x, y := body.X, body.Y
	switch key {
	case "up":
		y -= step
	case "down":
		y += step
	case "left":
		x -= step
	case "right":
		x += step
	}
	m.engine.Drag(id, x, y)
}

// View renders the current frame
func (m Model) View() string {
	frame := render.Snapshot(m.engine, m.view)
	if m.driftOn {
		frame.Positions = m.drift.Displace(frame.Positions)
	}

	canvas, err := m.ascii.Render(frame, m.options)
	if err != nil {
		return fmt.Sprintf("render error: %v", err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("forcegraph"))
	b.WriteString("\n")
	b.WriteString(m.statusLine(frame))
	b.WriteString("\n")
	b.WriteString(string(canvas))
	if m.query.Focused() {
		b.WriteString(m.query.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(
		"space pause · / search · t type filter · n select · d drag · arrows move · o drift · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine(frame *render.Frame) string {
	state := "running"
	if !m.engine.Running() {
		state = pausedStyle.Render("paused")
	}

	typeFilter := "all"
	if m.typeIdx >= 0 && m.typeIdx < len(m.view.Types) {
		typeFilter = m.view.Types[m.typeIdx]
	}

	parts := []string{
		state,
		fmt.Sprintf("nodes %d/%d", len(frame.Nodes), len(m.graph.Nodes)),
		fmt.Sprintf("edges %d/%d", len(frame.Edges), len(m.graph.Edges)),
		fmt.Sprintf("type %s", typeFilter),
	}
	if q := m.query.Value(); q != "" {
		parts = append(parts, fmt.Sprintf("query %q", q))
	}
	if sel := frame.Selected; sel != "" {
		label := sel
		if node, err := m.graph.FindNodeByID(sel); err == nil && node.Label != "" {
			label = node.Label
		}
		parts = append(parts, selectedStyle.Render(fmt.Sprintf("selected %s", label)))
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}
