package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Vec3 is a 3D vector with float32 components.
type Vec3 struct {
	inner mgl32.Vec3
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{inner: mgl32.Vec3{x, y, z}}
}

// SplatVec3 returns a vector with all three components set to v.
func SplatVec3(v float32) Vec3 {
	return NewVec3(v, v, v)
}

// MakeVec3 builds a vector from one or three components. With y and z both
// nil, x is broadcast to all axes. Supplying exactly one of y and z returns
// ErrInvalidArgument.
func MakeVec3(x float32, y, z *float32) (Vec3, error) {
	if (y == nil) != (z == nil) {
		return Vec3{}, partialComponents("Vec3")
	}
	if y == nil {
		return SplatVec3(x), nil
	}
	return NewVec3(x, *y, *z), nil
}

// Vec3FromMgl wraps a mathgl vector.
func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{inner: v}
}

// Mgl returns the underlying mathgl vector.
func (v Vec3) Mgl() mgl32.Vec3 {
	return v.inner
}

// Vec3FromF32 wraps an x/image float32 array.
func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{inner: mgl32.Vec3(v)}
}

// F32 returns the components as an x/image float32 array.
func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3(v.inner)
}

// DVec3 converts v to double precision.
func (v Vec3) DVec3() DVec3 {
	return NewDVec3(float64(v.inner[0]), float64(v.inner[1]), float64(v.inner[2]))
}

// X returns the x component.
func (v Vec3) X() float32 { return v.inner[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v.inner[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v.inner[2] }

// SetX sets the x component.
func (v *Vec3) SetX(x float32) { v.inner[0] = x }

// SetY sets the y component.
func (v *Vec3) SetY(y float32) { v.inner[1] = y }

// SetZ sets the z component.
func (v *Vec3) SetZ(z float32) { v.inner[2] = z }

// Tuple returns the components in x, y, z order.
func (v Vec3) Tuple() (x, y, z float32) {
	return v.inner[0], v.inner[1], v.inner[2]
}

// String formats v as Vec3(x, y, z).
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.inner[0], v.inner[1], v.inner[2])
}

// Add returns v + rhs.
func (v Vec3) Add(rhs any) (Vec3, error) { return v.binary(opAdd, rhs, false) }

// Sub returns v - rhs.
func (v Vec3) Sub(rhs any) (Vec3, error) { return v.binary(opSub, rhs, false) }

// Mul returns the component-wise product v * rhs.
func (v Vec3) Mul(rhs any) (Vec3, error) { return v.binary(opMul, rhs, false) }

// Div returns the component-wise quotient v / rhs.
func (v Vec3) Div(rhs any) (Vec3, error) { return v.binary(opDiv, rhs, false) }

// RAdd returns lhs + v.
func (v Vec3) RAdd(lhs any) (Vec3, error) { return v.binary(opAdd, lhs, true) }

// RSub returns lhs - v.
func (v Vec3) RSub(lhs any) (Vec3, error) { return v.binary(opSub, lhs, true) }

// RMul returns lhs * v.
func (v Vec3) RMul(lhs any) (Vec3, error) { return v.binary(opMul, lhs, true) }

// RDiv returns lhs / v.
func (v Vec3) RDiv(lhs any) (Vec3, error) { return v.binary(opDiv, lhs, true) }

// AddInPlace sets v to v + rhs. v is left unchanged on error.
func (v *Vec3) AddInPlace(rhs any) error { return v.assign(opAdd, rhs) }

// SubInPlace sets v to v - rhs. v is left unchanged on error.
func (v *Vec3) SubInPlace(rhs any) error { return v.assign(opSub, rhs) }

// MulInPlace sets v to v * rhs. v is left unchanged on error.
func (v *Vec3) MulInPlace(rhs any) error { return v.assign(opMul, rhs) }

// DivInPlace sets v to v / rhs. v is left unchanged on error.
func (v *Vec3) DivInPlace(rhs any) error { return v.assign(opDiv, rhs) }

func (v Vec3) binary(op binaryOp, operand any, reflected bool) (Vec3, error) {
	c, ok := vectorOperand32(operand, true)
	if !ok {
		name := op.String()
		if reflected {
			name = "R" + name
		}
		return Vec3{}, unsupportedOperand("Vec3."+name, operand)
	}

	if reflected {
		return Vec3{inner: apply32(op, c, v.inner)}, nil
	}
	return Vec3{inner: apply32(op, v.inner, c)}, nil
}

func (v *Vec3) assign(op binaryOp, operand any) error {
	c, ok := vectorOperand32(operand, true)
	if !ok {
		return unsupportedOperand("Vec3."+op.String()+"InPlace", operand)
	}
	v.inner = apply32(op, v.inner, c)
	return nil
}

func apply32(op binaryOp, a, b mgl32.Vec3) mgl32.Vec3 {
	switch op {
	case opAdd:
		return a.Add(b)
	case opSub:
		return a.Sub(b)
	case opMul:
		return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
	default:
		return mgl32.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
	}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{inner: v.inner.Mul(-1)}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return v.inner.Len()
}

// Normalize returns v scaled to unit length. The zero vector yields NaN
// components.
func (v Vec3) Normalize() Vec3 {
	return Vec3{inner: v.inner.Normalize()}
}

// Dot returns the dot product of v and a Vec3 or DVec3.
func (v Vec3) Dot(rhs any) (float32, error) {
	c, ok := vectorOperand32(rhs, false)
	if !ok {
		return 0, unsupportedOperand("Vec3.Dot", rhs)
	}
	return v.inner.Dot(c), nil
}

// Cross returns the cross product v × rhs for a Vec3 or DVec3 rhs.
func (v Vec3) Cross(rhs any) (Vec3, error) {
	c, ok := vectorOperand32(rhs, false)
	if !ok {
		return Vec3{}, unsupportedOperand("Vec3.Cross", rhs)
	}
	return Vec3{inner: v.inner.Cross(c)}, nil
}

// ApproxEqual reports whether every component of v is within tol of the
// matching component of o.
func (v Vec3) ApproxEqual(o Vec3, tol float32) bool {
	for i := range v.inner {
		if !(math32.Abs(v.inner[i]-o.inner[i]) <= tol) {
			return false
		}
	}
	return true
}
