package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicDirections returns n unit vectors spread uniformly over the
// sphere, reproducible for a given seed.
func DeterministicDirections(seed uint64, n int) [][3]float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([][3]float64, 0, n)
	for len(out) < n {
		x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		norm := math.Sqrt(x*x + y*y + z*z)
		if norm < 1e-9 {
			continue
		}
		out = append(out, [3]float64{x / norm, y / norm, z / norm})
	}
	return out
}

// AxisDirections returns the six signed unit axes.
func AxisDirections() [][3]float64 {
	return [][3]float64{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
}

// DeterministicTriples returns n triples with components drawn uniformly
// from [-amplitude, amplitude).
func DeterministicTriples(seed uint64, amplitude float64, n int) [][3]float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([][3]float64, n)
	for i := range out {
		for j := range out[i] {
			out[i][j] = (rng.Float64()*2 - 1) * amplitude
		}
	}
	return out
}
