package spatial

import "math/rand/v2"

// RandUnitDVec3 returns a unit vector built by drawing each component
// uniformly from [0, 1) and normalizing.
//
// The result is not uniformly distributed over directions: every component
// is non-negative, and directions toward the corners of the unit cube are
// favored.
func RandUnitDVec3() DVec3 {
	return NewDVec3(rand.Float64(), rand.Float64(), rand.Float64()).Normalize()
}

// RandUnitDVec3From is RandUnitDVec3 drawing from r.
func RandUnitDVec3From(r *rand.Rand) DVec3 {
	return NewDVec3(r.Float64(), r.Float64(), r.Float64()).Normalize()
}

// RandUnitVec3 is the float32 counterpart of RandUnitDVec3 and shares its
// distribution.
func RandUnitVec3() Vec3 {
	return NewVec3(rand.Float32(), rand.Float32(), rand.Float32()).Normalize()
}

// RandUnitVec3From is RandUnitVec3 drawing from r.
func RandUnitVec3From(r *rand.Rand) Vec3 {
	return NewVec3(r.Float32(), r.Float32(), r.Float32()).Normalize()
}
