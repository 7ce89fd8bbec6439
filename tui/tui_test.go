package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/forcegraph/config"
	"github.com/TFMV/forcegraph/models"
)

func testModel() Model {
	g := &models.Graph{
		Nodes: []models.Node{
			{ID: "a", Label: "Ada", Type: "person"},
			{ID: "b", Label: "Bob", Type: "person"},
			{ID: "c", Label: "Acme", Type: "company"},
		},
		Edges: []models.Edge{{ID: "e1", Source: "a", Target: "c"}},
	}
	return New(g, config.Default())
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func TestTickAdvancesSimulation(t *testing.T) {
	m := testModel()
	before := m.engine.Positions()

	m = update(t, m, tickMsg(time.Now()))
	assert.NotEqual(t, before, m.engine.Positions())
}

func TestSpaceTogglesPause(t *testing.T) {
	m := testModel()
	require.True(t, m.engine.Running())

	m = update(t, m, key(" "))
	assert.False(t, m.engine.Running())

	// A tick while paused must not move anything.
	before := m.engine.Positions()
	m = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, before, m.engine.Positions())
}

func TestTypeFilterCycles(t *testing.T) {
	m := testModel()
	require.Len(t, m.view.Nodes, 3)

	// Types are sorted: company first.
	m = update(t, m, key("t"))
	assert.Len(t, m.view.Nodes, 1)
	assert.Equal(t, "company", m.view.Nodes[0].Type)

	m = update(t, m, key("t"))
	assert.Len(t, m.view.Nodes, 2)

	// Cycling past the last type returns to the full set.
	m = update(t, m, key("t"))
	assert.Len(t, m.view.Nodes, 3)
}

func TestSelectionCycling(t *testing.T) {
	m := testModel()

	m = update(t, m, key("n"))
	assert.Equal(t, "a", m.engine.Selected())

	m = update(t, m, key("n"))
	assert.Equal(t, "b", m.engine.Selected())

	m = update(t, m, key("c"))
	assert.Empty(t, m.engine.Selected())
}

func TestDragMovesSelectedNode(t *testing.T) {
	m := testModel()
	m = update(t, m, key("n")) // select a
	m = update(t, m, key("d")) // pin it
	require.True(t, m.engine.Dragging("a"))

	before, _ := m.engine.Body("a")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	after, _ := m.engine.Body("a")
	assert.Equal(t, before.X+10, after.X)

	m = update(t, m, key("d")) // release
	assert.False(t, m.engine.Dragging("a"))
}

func TestViewRendersStatusAndCanvas(t *testing.T) {
	m := testModel()
	out := m.View()

	assert.Contains(t, out, "forcegraph")
	assert.Contains(t, out, "nodes 3/3")
	assert.Contains(t, out, "+") // canvas border
}
