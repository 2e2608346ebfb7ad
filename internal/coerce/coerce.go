// Package coerce converts component triples and quadruples between
// floating-point precisions.
//
// Conversions follow Go numeric conversion rules: float64 to float32 rounds
// to nearest, values outside the float32 range become ±Inf, and NaN is
// preserved.
package coerce

import "golang.org/x/exp/constraints"

// Triple converts three components to the target precision.
func Triple[To, From constraints.Float](x, y, z From) [3]To {
	return [3]To{To(x), To(y), To(z)}
}

// Quad converts four components to the target precision.
func Quad[To, From constraints.Float](x, y, z, w From) [4]To {
	return [4]To{To(x), To(y), To(z), To(w)}
}

// Int converts an integer scalar to the target precision.
func Int[To constraints.Float, From constraints.Integer](i From) To {
	return To(i)
}

// Splat broadcasts one component to all three axes.
func Splat[To constraints.Float](v To) [3]To {
	return [3]To{v, v, v}
}
