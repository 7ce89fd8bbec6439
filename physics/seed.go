package physics

import (
	"math"

	"github.com/TFMV/forcegraph/models"
)

const (
	typeRingRadius = 200.0 // distance of each type cluster from the canvas center
)

// seedNewcomers assigns starting positions to active nodes that have no
// body yet. Nodes are grouped by type; each distinct type gets an angular
// slot evenly distributed on a fixed ring around the canvas center,
// starting at -90° and proceeding clockwise, and members spread evenly
// around a sub-circle sized to the group. Same-type nodes therefore never
// seed at identical coordinates, so pure repulsion always has a nonzero
// initial gradient to work with.
//
// Existing bodies keep their position and velocity untouched. Callers
// hold the engine lock.
func (e *Engine) seedNewcomers(nodes []models.Node) {
	groups := make(map[string][]string)
	typeOrder := make([]string, 0)
	for _, node := range nodes {
		if _, ok := groups[node.Type]; !ok {
			typeOrder = append(typeOrder, node.Type)
		}
		groups[node.Type] = append(groups[node.Type], node.ID)
	}

	centerX := e.cfg.Width / 2
	centerY := e.cfg.Height / 2

	for i, nodeType := range typeOrder {
		members := groups[nodeType]

		slot := -math.Pi/2 + (2*math.Pi*float64(i))/float64(len(typeOrder))
		groupX := centerX + typeRingRadius*math.Cos(slot)
		groupY := centerY + typeRingRadius*math.Sin(slot)

		subRadius := math.Min(80, 30+15*float64(len(members)))

		for j, id := range members {
			if _, ok := e.bodies[id]; ok {
				continue
			}
			angle := (2 * math.Pi * float64(j)) / float64(len(members))
			e.bodies[id] = &Body{
				X: groupX + subRadius*math.Cos(angle),
				Y: groupY + subRadius*math.Sin(angle),
			}
		}
	}
}
