package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/forcegraph/models"
)

func TestDraggedNodeReceivesNoForce(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	e.BeginDrag("a")
	held, _ := e.Body("a")
	other, _ := e.Body("b")

	for i := 0; i < 50; i++ {
		e.Step()
		b, _ := e.Body("a")
		assert.Zero(t, b.VX, "frame %d", i)
		assert.Zero(t, b.VY, "frame %d", i)
		assert.Equal(t, held.X, b.X, "frame %d", i)
		assert.Equal(t, held.Y, b.Y, "frame %d", i)
	}

	// The pinned node still exerts repulsion: its neighbor moved.
	moved, _ := e.Body("b")
	assert.NotEqual(t, other, moved)
}

func TestDragDrivesPositionDirectly(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	// Drag without BeginDrag is ignored.
	before, _ := e.Body("a")
	e.Drag("a", 10, 10)
	after, _ := e.Body("a")
	assert.Equal(t, before, after)

	e.BeginDrag("a")
	e.Drag("a", 123, 456)
	b, _ := e.Body("a")
	assert.Equal(t, 123.0, b.X)
	assert.Equal(t, 456.0, b.Y)
}

func TestEndDragResumesFromZeroVelocity(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	e.BeginDrag("a")
	e.Drag("a", 500, 500)
	e.EndDrag("a")

	b, _ := e.Body("a")
	assert.Zero(t, b.VX)
	assert.Zero(t, b.VY)
	assert.False(t, e.Dragging("a"))

	// Next step integrates normally again.
	e.Step()
	b, _ = e.Body("a")
	assert.NotEqual(t, Position{X: 500, Y: 500}, Position{X: b.X, Y: b.Y})
}

func TestSelectionIsExclusiveToggle(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	e.Select("a")
	assert.Equal(t, "a", e.Selected())

	// Selecting another node replaces the selection.
	e.Select("b")
	assert.Equal(t, "b", e.Selected())

	// Selecting the same node again toggles it off.
	e.Select("b")
	assert.Empty(t, e.Selected())

	e.Select("a")
	e.ClearSelection()
	assert.Empty(t, e.Selected())
}

func TestHighlightedEdgesFollowSelection(t *testing.T) {
	g := &models.Graph{
		Nodes: []models.Node{
			{ID: "a", Type: "person"},
			{ID: "b", Type: "person"},
			{ID: "c", Type: "company"},
		},
		Edges: []models.Edge{
			{ID: "e1", Source: "a", Target: "c"},
			{ID: "e2", Source: "b", Target: "c"},
		},
	}
	e := NewEngine(DefaultConfig())
	e.SetActive(models.Filter(g, "", ""))

	assert.Empty(t, e.HighlightedEdges())

	e.Select("a")
	require.Equal(t, map[string]bool{"e1": true}, e.HighlightedEdges())

	e.Select("c")
	assert.Equal(t, map[string]bool{"e1": true, "e2": true}, e.HighlightedEdges())

	e.ClearSelection()
	assert.Empty(t, e.HighlightedEdges())
}
