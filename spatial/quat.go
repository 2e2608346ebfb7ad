package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Quat is a rotation quaternion with float32 components x, y, z, w, where w
// is the scalar part.
type Quat struct {
	inner mgl32.Quat
}

// NewQuat returns the quaternion (x, y, z, w). Usually QuatFromAxisAngle or
// QuatFromRotationArc is what you want.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{inner: mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{inner: mgl32.QuatIdent()}
}

// QuatFromAxisAngle returns the rotation of angle radians about axis. The
// axis must be normalized; this is not checked.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return Quat{inner: mgl32.QuatRotate(angle, axis.inner)}
}

// QuatFromRotationArc returns the shortest rotation taking from to to. Both
// vectors must be normalized; this is not checked. Anti-parallel inputs
// yield a half turn about an arbitrary axis orthogonal to from.
//
// Inputs close to anti-parallel lose precision in float32; expect errors
// around 1e-3 there.
func QuatFromRotationArc(from, to Vec3) Quat {
	const oneMinusEps = 1 - 2*0x1p-23

	d := from.inner.Dot(to.inner)
	switch {
	case d > oneMinusEps:
		return QuatIdentity()
	case d < -oneMinusEps:
		return QuatFromAxisAngle(from.anyOrthonormal(), math32.Pi)
	}

	c := from.inner.Cross(to.inner)
	return NewQuat(c[0], c[1], c[2], 1+d).Normalize()
}

// anyOrthonormal returns a unit vector orthogonal to the unit vector v.
func (v Vec3) anyOrthonormal() Vec3 {
	x, y, z := v.Tuple()
	sign := math32.Copysign(1, z)
	a := -1 / (sign + z)
	b := x * y * a
	return NewVec3(b, sign+y*y*a, -y)
}

// QuatFromMgl wraps a mathgl quaternion.
func QuatFromMgl(q mgl32.Quat) Quat {
	return Quat{inner: q}
}

// Mgl returns the underlying mathgl quaternion.
func (q Quat) Mgl() mgl32.Quat {
	return q.inner
}

// QuatFromF32 builds a quaternion from an x/image array in x, y, z, w order.
func QuatFromF32(v f32.Vec4) Quat {
	return NewQuat(v[0], v[1], v[2], v[3])
}

// F32 returns the components as an x/image array in x, y, z, w order.
func (q Quat) F32() f32.Vec4 {
	return f32.Vec4(q.components())
}

// DQuat converts q to double precision.
func (q Quat) DQuat() DQuat {
	c := q.components()
	return NewDQuat(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
}

// X returns the x component.
func (q Quat) X() float32 { return q.inner.V[0] }

// Y returns the y component.
func (q Quat) Y() float32 { return q.inner.V[1] }

// Z returns the z component.
func (q Quat) Z() float32 { return q.inner.V[2] }

// W returns the w component.
func (q Quat) W() float32 { return q.inner.W }

// SetX sets the x component.
func (q *Quat) SetX(x float32) { q.inner.V[0] = x }

// SetY sets the y component.
func (q *Quat) SetY(y float32) { q.inner.V[1] = y }

// SetZ sets the z component.
func (q *Quat) SetZ(z float32) { q.inner.V[2] = z }

// SetW sets the w component.
func (q *Quat) SetW(w float32) { q.inner.W = w }

// String formats q as Quat(x, y, z, w).
func (q Quat) String() string {
	return fmt.Sprintf("Quat(%g, %g, %g, %g)", q.inner.V[0], q.inner.V[1], q.inner.V[2], q.inner.W)
}

func (q Quat) components() [4]float32 {
	return [4]float32{q.inner.V[0], q.inner.V[1], q.inner.V[2], q.inner.W}
}

// Mul multiplies q by a quaternion or a vector of either precision. A
// quaternion operand yields the Quat q * rhs; a vector operand yields the
// Vec3 rotated by q.
func (q Quat) Mul(rhs any) (any, error) {
	if c, ok := quatOperand32(rhs); ok {
		return q.MulQuat(NewQuat(c[0], c[1], c[2], c[3])), nil
	}
	if c, ok := vectorOperand32(rhs, false); ok {
		return q.MulVec3(Vec3{inner: c}), nil
	}
	return nil, unsupportedOperand("Quat.Mul", rhs)
}

// RMul computes lhs * q. A quaternion lhs yields the Quat lhs * q; a vector
// lhs is rotated by q exactly as in Mul.
func (q Quat) RMul(lhs any) (any, error) {
	if c, ok := quatOperand32(lhs); ok {
		return NewQuat(c[0], c[1], c[2], c[3]).MulQuat(q), nil
	}
	if c, ok := vectorOperand32(lhs, false); ok {
		return q.MulVec3(Vec3{inner: c}), nil
	}
	return nil, unsupportedOperand("Quat.RMul", lhs)
}

// MulQuat returns the Hamilton product q * o. Rotating by the result applies
// o first, then q.
func (q Quat) MulQuat(o Quat) Quat {
	return Quat{inner: q.inner.Mul(o.inner)}
}

// MulVec3 rotates v by q. The result is scaled by the squared norm of q, as
// with DQuat.MulDVec3.
func (q Quat) MulVec3(v Vec3) Vec3 {
	b, w := q.inner.V, q.inner.W
	r := v.inner.Mul(w*w - b.Dot(b)).
		Add(b.Mul(2 * v.inner.Dot(b))).
		Add(b.Cross(v.inner).Mul(2 * w))
	return Vec3{inner: r}
}

// Length returns the norm of q.
func (q Quat) Length() float32 {
	return q.inner.Len()
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	return Quat{inner: q.inner.Scale(1 / q.inner.Len())}
}

// Conjugate returns (-x, -y, -z, w). For a unit quaternion this is the
// inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{inner: q.inner.Conjugate()}
}

// ToAxisAngle returns the rotation axis and angle in radians of the unit
// quaternion q. A rotation too small to determine an axis returns the x axis
// and a zero angle.
func (q Quat) ToAxisAngle() (Vec3, float32) {
	const epsilonSq = 1e-8 * 1e-8

	w := q.inner.W
	scaleSq := math32.Max(1-w*w, 0)
	if scaleSq < epsilonSq {
		return NewVec3(1, 0, 0), 0
	}

	inv := 1 / math32.Sqrt(scaleSq)
	axis := Vec3{inner: q.inner.V.Mul(inv)}
	return axis, 2 * math32.Acos(math32.Max(-1, math32.Min(1, w)))
}

// ApproxEqual reports whether every component of q is within tol of the
// matching component of o.
func (q Quat) ApproxEqual(o Quat, tol float32) bool {
	a, b := q.components(), o.components()
	for i := range a {
		if !(math32.Abs(a[i]-b[i]) <= tol) {
			return false
		}
	}
	return true
}
