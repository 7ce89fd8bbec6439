// Package physics implements the force-directed layout engine: seeding,
// per-tick force accumulation and integration, equilibrium detection, and
// the interaction controller for drag and selection.
package physics

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/TFMV/forcegraph/models"
)

// Body holds the mutable physics state of one active node. Bodies are
// owned exclusively by the engine and persist across frames and filter
// changes; only a full graph reload discards them.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Position is a per-frame coordinate snapshot handed to renderers.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config holds the simulation constants. These are empirically tuned
// defaults, exposed for tuning rather than hard-coded.
type Config struct {
	Repulsion         float64 // pairwise push, scaled by 1/dist²
	Attraction        float64 // same-type pull coefficient
	Damping           float64 // velocity decay per step, in (0,1]
	IdealDistance     float64 // same-type attraction engages beyond half this
	CenterGravity     float64 // constant pull toward canvas center
	MaxVelocity       float64 // hard speed clamp
	VelocityThreshold float64 // below this, velocity snaps to exactly zero
	Width             float64 // canvas width
	Height            float64 // canvas height
}

// DefaultConfig returns the default simulation constants
func DefaultConfig() Config {
	return Config{
		Repulsion:         500.0,
		Attraction:        0.05,
		Damping:           0.85,
		IdealDistance:     120.0,
		CenterGravity:     0.015,
		MaxVelocity:       8.0,
		VelocityThreshold: 0.02,
		Width:             800,
		Height:            600,
	}
}

// Engine runs the simulation over the current active set. All state is
// instance-scoped; there is no process-wide physics state. A mutex guards
// every entry point so drag events and host reads are applied strictly
// between steps, never mid-step.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	bodies   map[string]*Body
	order    []string          // active node IDs in source order
	types    map[string]string // node ID -> type, active set only
	edges    []models.Edge     // active edges
	dragged  map[string]bool
	selected string
	running  bool
}

// NewEngine creates an engine with no active nodes
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		bodies:  make(map[string]*Body),
		types:   make(map[string]string),
		dragged: make(map[string]bool),
		running: true,
	}
}

// Reset discards all physics state. Called when the graph is replaced
// wholesale; every node re-enters the active set as a newcomer.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.bodies = make(map[string]*Body)
	e.order = nil
	e.types = make(map[string]string)
	e.edges = nil
	e.dragged = make(map[string]bool)
	e.selected = ""
}

// SetActive installs a new active set. Nodes already holding a body keep
// their position and velocity untouched; nodes entering the active set for
// the first time are seeded (see seed.go). After this call every active
// node has exactly one body.
func (e *Engine) SetActive(view models.View) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.order = make([]string, 0, len(view.Nodes))
	e.types = make(map[string]string, len(view.Nodes))
	for _, node := range view.Nodes {
		e.order = append(e.order, node.ID)
		e.types[node.ID] = node.Type
	}
	e.edges = append([]models.Edge(nil), view.Edges...)

	e.seedNewcomers(view.Nodes)
}

// Step executes one synchronous relaxation step and reports whether the
// active set is at equilibrium (every velocity snapped to zero). Dragged
// nodes receive no force and keep zero velocity, but still exert repulsion
// on every other node. While paused, Step preserves all state and only
// reports the equilibrium status.
func (e *Engine) Step() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return e.atRest()
	}
	return e.step()
}

func (e *Engine) step() bool {
	if len(e.order) == 0 {
		return true
	}

	centerX := e.cfg.Width / 2
	centerY := e.cfg.Height / 2
	halfIdeal := e.cfg.IdealDistance / 2

	for _, id := range e.order {
		if e.dragged[id] {
			continue
		}
		b := e.bodies[id]

		var fx, fy float64
		for _, otherID := range e.order {
			if otherID == id {
				continue
			}
			o := e.bodies[otherID]
			dx := b.X - o.X
			dy := b.Y - o.Y
			// Floor avoids divide-by-zero for coincident nodes.
			dist := math.Max(math.Hypot(dx, dy), 1)

			repulse := e.cfg.Repulsion / (dist * dist)
			fx += dx / dist * repulse
			fy += dy / dist * repulse

			// Same-type nodes attract until they close to half the
			// ideal distance, which keeps clusters from collapsing
			// to a point.
			if e.types[otherID] == e.types[id] && dist > halfIdeal {
				attract := (dist - halfIdeal) * e.cfg.Attraction
				fx -= dx / dist * attract
				fy -= dy / dist * attract
			}
		}

		fx += (centerX - b.X) * e.cfg.CenterGravity
		fy += (centerY - b.Y) * e.cfg.CenterGravity

		b.VX = (b.VX + fx) * e.cfg.Damping
		b.VY = (b.VY + fy) * e.cfg.Damping

		speed := math.Hypot(b.VX, b.VY)
		if speed > e.cfg.MaxVelocity {
			scale := e.cfg.MaxVelocity / speed
			b.VX *= scale
			b.VY *= scale
			speed = e.cfg.MaxVelocity
		}
		if speed < e.cfg.VelocityThreshold {
			// Snap to exact zero to suppress floating-point jitter.
			b.VX = 0
			b.VY = 0
		}

		b.X += b.VX
		b.Y += b.VY
	}

	return e.atRest()
}

func (e *Engine) atRest() bool {
	for _, id := range e.order {
		b := e.bodies[id]
		if b.VX != 0 || b.VY != 0 {
			return false
		}
	}
	return true
}

// Run drives the simulation from a host-provided tick interval until the
// context is canceled. One step runs to completion per tick; pausing via
// SetRunning takes effect before the next tick.
func (e *Engine) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Step()
		}
	}
}

// SetRunning pauses or resumes the simulation. Pausing preserves all
// positions and velocities; resuming continues from the held state.
func (e *Engine) SetRunning(running bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = running
}

// Running reports whether the simulation is active
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Positions returns a per-frame snapshot of active node coordinates
func (e *Engine) Positions() map[string]Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]Position, len(e.order))
	for _, id := range e.order {
		b := e.bodies[id]
		out[id] = Position{X: b.X, Y: b.Y}
	}
	return out
}

// ActiveEdges returns the edges of the current active set
func (e *Engine) ActiveEdges() []models.Edge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Edge(nil), e.edges...)
}

// Body returns a copy of a node's physics state
func (e *Engine) Body(id string) (Body, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.bodies[id]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

// Config returns the simulation constants in effect
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}
