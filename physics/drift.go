package physics

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Drift is a render-time decorator that displaces a frame snapshot with
// smooth simplex noise for organic motion. It never touches engine state,
// so the simulation invariants (finiteness, velocity clamping, drag
// pinning) are unaffected by its output.
type Drift struct {
	noise    opensimplex.Noise
	scale    float64
	amount   float64
	timeStep float64
}

// NewDrift creates a drift decorator. amount is the maximum displacement
// in canvas units; a deterministic seed gives reproducible motion.
func NewDrift(seed int64, amount float64) *Drift {
	return &Drift{
		noise:  opensimplex.New(seed),
		scale:  0.03,
		amount: amount,
	}
}

// Displace returns a displaced copy of the given positions. The input map
// is never modified.
func (d *Drift) Displace(positions map[string]Position) map[string]Position {
	out := make(map[string]Position, len(positions))
	for id, p := range positions {
		nx := d.noise.Eval3(p.X*d.scale, p.Y*d.scale, d.timeStep)
		ny := d.noise.Eval3(p.X*d.scale+100, p.Y*d.scale+100, d.timeStep)
		out[id] = Position{
			X: p.X + nx*d.amount,
			Y: p.Y + ny*d.amount,
		}
	}
	return out
}

// Advance moves the noise field forward one animation frame
func (d *Drift) Advance() {
	d.timeStep += 0.01
}
