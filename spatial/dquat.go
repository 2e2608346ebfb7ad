package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// DQuat is a rotation quaternion with float64 components x, y, z, w, where w
// is the scalar part.
type DQuat struct {
	inner quat.Number
}

// NewDQuat returns the quaternion (x, y, z, w). Usually DQuatFromAxisAngle
// or DQuatFromRotationArc is what you want.
func NewDQuat(x, y, z, w float64) DQuat {
	return DQuat{inner: quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// DQuatIdentity returns the identity rotation.
func DQuatIdentity() DQuat {
	return NewDQuat(0, 0, 0, 1)
}

// DQuatFromAxisAngle returns the rotation of angle radians about axis. The
// axis must be normalized; this is not checked.
func DQuatFromAxisAngle(axis DVec3, angle float64) DQuat {
	s, c := math.Sincos(0.5 * angle)
	v := r3.Scale(s, axis.inner)
	return NewDQuat(v.X, v.Y, v.Z, c)
}

// DQuatFromRotationArc returns the shortest rotation taking from to to. Both
// vectors must be normalized; this is not checked. Anti-parallel inputs
// yield a half turn about an arbitrary axis orthogonal to from.
func DQuatFromRotationArc(from, to DVec3) DQuat {
	const oneMinusEps = 1 - 2*0x1p-52

	d := r3.Dot(from.inner, to.inner)
	switch {
	case d > oneMinusEps:
		return DQuatIdentity()
	case d < -oneMinusEps:
		return DQuatFromAxisAngle(from.anyOrthonormal(), math.Pi)
	}

	c := r3.Cross(from.inner, to.inner)
	return NewDQuat(c.X, c.Y, c.Z, 1+d).Normalize()
}

// anyOrthonormal returns a unit vector orthogonal to the unit vector v
// (Duff et al., "Building an Orthonormal Basis, Revisited").
func (v DVec3) anyOrthonormal() DVec3 {
	sign := math.Copysign(1, v.inner.Z)
	a := -1 / (sign + v.inner.Z)
	b := v.inner.X * v.inner.Y * a
	return NewDVec3(b, sign+v.inner.Y*v.inner.Y*a, -v.inner.Y)
}

// DQuatFromNumber wraps a gonum quaternion. Real is the scalar part w.
func DQuatFromNumber(n quat.Number) DQuat {
	return DQuat{inner: n}
}

// Number returns the underlying gonum quaternion.
func (q DQuat) Number() quat.Number {
	return q.inner
}

// Quat converts q to single precision.
func (q DQuat) Quat() Quat {
	return NewQuat(float32(q.inner.Imag), float32(q.inner.Jmag), float32(q.inner.Kmag), float32(q.inner.Real))
}

// X returns the x component.
func (q DQuat) X() float64 { return q.inner.Imag }

// Y returns the y component.
func (q DQuat) Y() float64 { return q.inner.Jmag }

// Z returns the z component.
func (q DQuat) Z() float64 { return q.inner.Kmag }

// W returns the w component.
func (q DQuat) W() float64 { return q.inner.Real }

// SetX sets the x component.
func (q *DQuat) SetX(x float64) { q.inner.Imag = x }

// SetY sets the y component.
func (q *DQuat) SetY(y float64) { q.inner.Jmag = y }

// SetZ sets the z component.
func (q *DQuat) SetZ(z float64) { q.inner.Kmag = z }

// SetW sets the w component.
func (q *DQuat) SetW(w float64) { q.inner.Real = w }

// String formats q as DQuat(x, y, z, w).
func (q DQuat) String() string {
	return fmt.Sprintf("DQuat(%g, %g, %g, %g)", q.inner.Imag, q.inner.Jmag, q.inner.Kmag, q.inner.Real)
}

func (q DQuat) components() [4]float64 {
	return [4]float64{q.inner.Imag, q.inner.Jmag, q.inner.Kmag, q.inner.Real}
}

// Mul multiplies q by a quaternion or a vector of either precision. A
// quaternion operand yields the DQuat q * rhs; a vector operand yields the
// DVec3 rotated by q.
func (q DQuat) Mul(rhs any) (any, error) {
	if c, ok := quatOperand64(rhs); ok {
		return q.MulQuat(NewDQuat(c[0], c[1], c[2], c[3])), nil
	}
	if c, ok := vectorOperand64(rhs, false); ok {
		return q.MulDVec3(NewDVec3(c[0], c[1], c[2])), nil
	}
	return nil, unsupportedOperand("DQuat.Mul", rhs)
}

// RMul computes lhs * q. A quaternion lhs yields the DQuat lhs * q; a vector
// lhs is rotated by q exactly as in Mul.
func (q DQuat) RMul(lhs any) (any, error) {
	if c, ok := quatOperand64(lhs); ok {
		return NewDQuat(c[0], c[1], c[2], c[3]).MulQuat(q), nil
	}
	if c, ok := vectorOperand64(lhs, false); ok {
		return q.MulDVec3(NewDVec3(c[0], c[1], c[2])), nil
	}
	return nil, unsupportedOperand("DQuat.RMul", lhs)
}

// MulQuat returns the Hamilton product q * o. Rotating by the result applies
// o first, then q.
func (q DQuat) MulQuat(o DQuat) DQuat {
	return DQuat{inner: quat.Mul(q.inner, o.inner)}
}

// MulDVec3 rotates v by q.
func (q DQuat) MulDVec3(v DVec3) DVec3 {
	p := quat.Number{Imag: v.inner.X, Jmag: v.inner.Y, Kmag: v.inner.Z}
	r := quat.Mul(quat.Mul(q.inner, p), quat.Conj(q.inner))
	return NewDVec3(r.Imag, r.Jmag, r.Kmag)
}

// Length returns the norm of q.
func (q DQuat) Length() float64 {
	return quat.Abs(q.inner)
}

// Normalize returns q scaled to unit length.
func (q DQuat) Normalize() DQuat {
	return DQuat{inner: quat.Scale(1/quat.Abs(q.inner), q.inner)}
}

// Conjugate returns (-x, -y, -z, w). For a unit quaternion this is the
// inverse rotation.
func (q DQuat) Conjugate() DQuat {
	return DQuat{inner: quat.Conj(q.inner)}
}

// ToAxisAngle returns the rotation axis and angle in radians of the unit
// quaternion q. A rotation too small to determine an axis returns the x axis
// and a zero angle.
func (q DQuat) ToAxisAngle() (DVec3, float64) {
	const epsilonSq = 1e-8 * 1e-8

	w := q.inner.Real
	scaleSq := math.Max(1-w*w, 0)
	if scaleSq < epsilonSq {
		return NewDVec3(1, 0, 0), 0
	}

	inv := 1 / math.Sqrt(scaleSq)
	axis := NewDVec3(q.inner.Imag*inv, q.inner.Jmag*inv, q.inner.Kmag*inv)
	return axis, 2 * math.Acos(math.Max(-1, math.Min(1, w)))
}

// ApproxEqual reports whether every component of q is within tol of the
// matching component of o. q and -q describe the same rotation but are not
// approximately equal here.
func (q DQuat) ApproxEqual(o DQuat, tol float64) bool {
	a, b := q.components(), o.components()
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
