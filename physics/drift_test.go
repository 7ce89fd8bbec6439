package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriftNeverMutatesInput(t *testing.T) {
	in := map[string]Position{
		"a": {X: 100, Y: 100},
		"b": {X: 200, Y: 300},
	}
	original := map[string]Position{
		"a": {X: 100, Y: 100},
		"b": {X: 200, Y: 300},
	}

	d := NewDrift(42, 5.0)
	out := d.Displace(in)

	assert.Equal(t, original, in)
	assert.Len(t, out, 2)
}

func TestDriftDisplacementIsBoundedAndFinite(t *testing.T) {
	const amount = 5.0
	d := NewDrift(42, amount)

	in := map[string]Position{"a": {X: 50, Y: 75}}
	for frame := 0; frame < 100; frame++ {
		out := d.Displace(in)
		p := out["a"]
		assert.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0))
		assert.False(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0))
		// Simplex noise is in [-1, 1], so displacement stays within amount.
		assert.InDelta(t, in["a"].X, p.X, amount)
		assert.InDelta(t, in["a"].Y, p.Y, amount)
		d.Advance()
	}
}

func TestDriftIsDeterministicPerSeed(t *testing.T) {
	in := map[string]Position{"a": {X: 10, Y: 20}}

	out1 := NewDrift(7, 3.0).Displace(in)
	out2 := NewDrift(7, 3.0).Displace(in)
	assert.Equal(t, out1, out2)
}
