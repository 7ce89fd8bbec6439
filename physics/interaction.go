package physics

// The interaction controller reconciles discrete host events (drag,
// select) with the simulation. Click-vs-drag disambiguation belongs to
// the host render layer; the engine only receives "select node X" and
// "set node X position" events. Every mutation takes the engine lock, so
// it lands strictly before or after a step, never mid-step.

// BeginDrag pins a node: its velocity is forced to zero and it receives
// no physics-derived force while dragged, though it still exerts
// repulsion on every other node.
func (e *Engine) BeginDrag(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bodies[id]
	if !ok {
		return
	}
	e.dragged[id] = true
	b.VX = 0
	b.VY = 0
}

// Drag drives a pinned node's position directly from pointer coordinates
func (e *Engine) Drag(id string, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dragged[id] {
		return
	}
	b := e.bodies[id]
	b.X = x
	b.Y = y
}

// EndDrag releases a pinned node. It re-enters normal integration on the
// next step, resuming from zero velocity: no throw or momentum carry-over.
func (e *Engine) EndDrag(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dragged[id] {
		return
	}
	delete(e.dragged, id)
	b := e.bodies[id]
	b.VX = 0
	b.VY = 0
}

// Dragging reports whether a node is currently pinned
func (e *Engine) Dragging(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dragged[id]
}

// Select toggles the highlight on a node. Selection is mutually
// exclusive: selecting a node clears any other selection, and selecting
// the already-selected node deselects it.
func (e *Engine) Select(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.selected == id {
		e.selected = ""
		return
	}
	e.selected = id
}

// ClearSelection clears the highlight, as when clicking empty canvas
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = ""
}

// Selected returns the currently selected node ID, or ""
func (e *Engine) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// HighlightedEdges recomputes the highlighted edge set from the current
// selection: every active edge incident to the selected node.
func (e *Engine) HighlightedEdges() map[string]bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]bool)
	if e.selected == "" {
		return out
	}
	for _, edge := range e.edges {
		if edge.Source == e.selected || edge.Target == e.selected {
			out[edge.ID] = true
		}
	}
	return out
}
