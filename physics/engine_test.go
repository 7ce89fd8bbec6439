package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/forcegraph/models"
)

func viewOf(nodes ...models.Node) models.View {
	g := &models.Graph{Nodes: nodes}
	return models.Filter(g, "", "")
}

func pair() models.View {
	return viewOf(
		models.Node{ID: "a", Type: "person"},
		models.Node{ID: "b", Type: "person"},
	)
}

func TestSeedingMatchesTypeRingLayout(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	// Single type: slot at -90° on the ring of radius 200 around
	// (400, 300), so the group centers at (400, 100). Two members on a
	// sub-circle of radius min(80, 30+15*2) = 60 at angles 0 and π.
	a, ok := e.Body("a")
	require.True(t, ok)
	b, ok := e.Body("b")
	require.True(t, ok)

	assert.InDelta(t, 460.0, a.X, 1e-9)
	assert.InDelta(t, 100.0, a.Y, 1e-9)
	assert.InDelta(t, 340.0, b.X, 1e-9)
	assert.InDelta(t, 100.0, b.Y, 1e-9)
}

func TestZeroStepsLeavesSeededPositions(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	seeded := e.Positions()
	// Reapplying the same active set must not move anything.
	e.SetActive(pair())
	assert.Equal(t, seeded, e.Positions())

	// New bodies start at rest.
	for _, id := range []string{"a", "b"} {
		b, _ := e.Body(id)
		assert.Zero(t, b.VX)
		assert.Zero(t, b.VY)
	}
}

func TestSameTypeNodesNeverSeedCoincident(t *testing.T) {
	nodes := make([]models.Node, 7)
	for i := range nodes {
		nodes[i] = models.Node{ID: string(rune('a' + i)), Type: "person"}
	}

	e := NewEngine(DefaultConfig())
	e.SetActive(viewOf(nodes...))

	positions := e.Positions()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			pi := positions[nodes[i].ID]
			pj := positions[nodes[j].ID]
			dist := math.Hypot(pi.X-pj.X, pi.Y-pj.Y)
			assert.Greater(t, dist, 0.0, "%s and %s seeded coincident", nodes[i].ID, nodes[j].ID)
		}
	}
}

func TestBodiesSurviveFilterChanges(t *testing.T) {
	g := &models.Graph{Nodes: []models.Node{
		{ID: "a", Label: "Ada", Type: "person"},
		{ID: "c", Label: "Acme", Type: "company"},
	}}

	e := NewEngine(DefaultConfig())
	e.SetActive(models.Filter(g, "", ""))
	for i := 0; i < 10; i++ {
		e.Step()
	}
	before, _ := e.Body("a")

	// Narrow to one node, then widen again: a's state is untouched.
	e.SetActive(models.Filter(g, "", "company"))
	e.SetActive(models.Filter(g, "", ""))
	after, _ := e.Body("a")
	assert.Equal(t, before, after)
}

func TestResetDiscardsAllState(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())
	e.Select("a")
	e.BeginDrag("b")

	e.Reset()

	_, ok := e.Body("a")
	assert.False(t, ok)
	assert.Empty(t, e.Selected())
	assert.False(t, e.Dragging("b"))
	assert.Empty(t, e.Positions())
}

func TestTwoNodeGraphReachesEquilibrium(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())

	stable := false
	for i := 0; i < 5000 && !stable; i++ {
		stable = e.Step()
	}
	require.True(t, stable, "simulation did not reach equilibrium")

	for _, id := range []string{"a", "b"} {
		b, _ := e.Body(id)
		assert.Zero(t, b.VX, "node %s", id)
		assert.Zero(t, b.VY, "node %s", id)
		assert.False(t, math.IsNaN(b.X) || math.IsInf(b.X, 0))
		assert.False(t, math.IsNaN(b.Y) || math.IsInf(b.Y, 0))
	}
}

func TestSingleNodeConvergesToCenter(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	e.SetActive(viewOf(models.Node{ID: "solo", Type: "person"}))

	stable := false
	for i := 0; i < 5000 && !stable; i++ {
		stable = e.Step()
	}
	require.True(t, stable)

	b, _ := e.Body("solo")
	assert.InDelta(t, cfg.Width/2, b.X, 10)
	assert.InDelta(t, cfg.Height/2, b.Y, 10)
}

func TestEmptyActiveSetIsStable(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(models.View{})
	assert.True(t, e.Step())
}

func TestPausePreservesState(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetActive(pair())
	e.Step()
	before := e.Positions()

	e.SetRunning(false)
	for i := 0; i < 20; i++ {
		e.Step()
	}
	assert.Equal(t, before, e.Positions())

	// Resuming continues from the held state.
	e.SetRunning(true)
	e.Step()
	assert.NotEqual(t, before, e.Positions())
}

func TestVelocityClampAndSnap(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	e.SetActive(viewOf(
		models.Node{ID: "a", Type: "x"},
		models.Node{ID: "b", Type: "y"},
		models.Node{ID: "c", Type: "z"},
	))

	for i := 0; i < 500; i++ {
		e.Step()
		for _, id := range []string{"a", "b", "c"} {
			b, _ := e.Body(id)
			speed := math.Hypot(b.VX, b.VY)
			if speed != 0 {
				assert.LessOrEqual(t, speed, cfg.MaxVelocity+1e-9)
				assert.GreaterOrEqual(t, speed, cfg.VelocityThreshold)
			}
		}
	}
}
