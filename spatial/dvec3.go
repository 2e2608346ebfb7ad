package spatial

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// DVec3 is a 3D vector with float64 components.
type DVec3 struct {
	inner r3.Vec
}

// NewDVec3 returns the vector (x, y, z).
func NewDVec3(x, y, z float64) DVec3 {
	return DVec3{inner: r3.Vec{X: x, Y: y, Z: z}}
}

// SplatDVec3 returns a vector with all three components set to v.
func SplatDVec3(v float64) DVec3 {
	return NewDVec3(v, v, v)
}

// MakeDVec3 builds a vector from one or three components. With y and z both
// nil, x is broadcast to all axes. Supplying exactly one of y and z returns
// ErrInvalidArgument.
func MakeDVec3(x float64, y, z *float64) (DVec3, error) {
	if (y == nil) != (z == nil) {
		return DVec3{}, partialComponents("DVec3")
	}
	if y == nil {
		return SplatDVec3(x), nil
	}
	return NewDVec3(x, *y, *z), nil
}

// DVec3FromR3 wraps a gonum vector.
func DVec3FromR3(v r3.Vec) DVec3 {
	return DVec3{inner: v}
}

// R3 returns the underlying gonum vector.
func (v DVec3) R3() r3.Vec {
	return v.inner
}

// Vec3 converts v to single precision.
func (v DVec3) Vec3() Vec3 {
	return NewVec3(float32(v.inner.X), float32(v.inner.Y), float32(v.inner.Z))
}

// X returns the x component.
func (v DVec3) X() float64 { return v.inner.X }

// Y returns the y component.
func (v DVec3) Y() float64 { return v.inner.Y }

// Z returns the z component.
func (v DVec3) Z() float64 { return v.inner.Z }

// SetX sets the x component.
func (v *DVec3) SetX(x float64) { v.inner.X = x }

// SetY sets the y component.
func (v *DVec3) SetY(y float64) { v.inner.Y = y }

// SetZ sets the z component.
func (v *DVec3) SetZ(z float64) { v.inner.Z = z }

// Tuple returns the components in x, y, z order.
func (v DVec3) Tuple() (x, y, z float64) {
	return v.inner.X, v.inner.Y, v.inner.Z
}

// String formats v as DVec3(x, y, z).
func (v DVec3) String() string {
	return fmt.Sprintf("DVec3(%g, %g, %g)", v.inner.X, v.inner.Y, v.inner.Z)
}

func (v DVec3) components() [3]float64 {
	return [3]float64{v.inner.X, v.inner.Y, v.inner.Z}
}

// Add returns v + rhs.
func (v DVec3) Add(rhs any) (DVec3, error) { return v.binary(opAdd, rhs, false) }

// Sub returns v - rhs.
func (v DVec3) Sub(rhs any) (DVec3, error) { return v.binary(opSub, rhs, false) }

// Mul returns the component-wise product v * rhs.
func (v DVec3) Mul(rhs any) (DVec3, error) { return v.binary(opMul, rhs, false) }

// Div returns the component-wise quotient v / rhs.
func (v DVec3) Div(rhs any) (DVec3, error) { return v.binary(opDiv, rhs, false) }

// RAdd returns lhs + v.
func (v DVec3) RAdd(lhs any) (DVec3, error) { return v.binary(opAdd, lhs, true) }

// RSub returns lhs - v.
func (v DVec3) RSub(lhs any) (DVec3, error) { return v.binary(opSub, lhs, true) }

// RMul returns lhs * v.
func (v DVec3) RMul(lhs any) (DVec3, error) { return v.binary(opMul, lhs, true) }

// RDiv returns lhs / v.
func (v DVec3) RDiv(lhs any) (DVec3, error) { return v.binary(opDiv, lhs, true) }

// AddInPlace sets v to v + rhs. v is left unchanged on error.
func (v *DVec3) AddInPlace(rhs any) error { return v.assign(opAdd, rhs) }

// SubInPlace sets v to v - rhs. v is left unchanged on error.
func (v *DVec3) SubInPlace(rhs any) error { return v.assign(opSub, rhs) }

// MulInPlace sets v to v * rhs. v is left unchanged on error.
func (v *DVec3) MulInPlace(rhs any) error { return v.assign(opMul, rhs) }

// DivInPlace sets v to v / rhs. v is left unchanged on error.
func (v *DVec3) DivInPlace(rhs any) error { return v.assign(opDiv, rhs) }

func (v DVec3) binary(op binaryOp, operand any, reflected bool) (DVec3, error) {
	c, ok := vectorOperand64(operand, true)
	if !ok {
		name := op.String()
		if reflected {
			name = "R" + name
		}
		return DVec3{}, unsupportedOperand("DVec3."+name, operand)
	}

	other := r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	if reflected {
		return DVec3{inner: apply64(op, other, v.inner)}, nil
	}
	return DVec3{inner: apply64(op, v.inner, other)}, nil
}

func (v *DVec3) assign(op binaryOp, operand any) error {
	c, ok := vectorOperand64(operand, true)
	if !ok {
		return unsupportedOperand("DVec3."+op.String()+"InPlace", operand)
	}
	v.inner = apply64(op, v.inner, r3.Vec{X: c[0], Y: c[1], Z: c[2]})
	return nil
}

func apply64(op binaryOp, a, b r3.Vec) r3.Vec {
	switch op {
	case opAdd:
		return r3.Add(a, b)
	case opSub:
		return r3.Sub(a, b)
	case opMul:
		return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
	default:
		return r3.Vec{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z}
	}
}

// Neg returns -v.
func (v DVec3) Neg() DVec3 {
	return DVec3{inner: r3.Scale(-1, v.inner)}
}

// Length returns the Euclidean norm of v.
func (v DVec3) Length() float64 {
	return r3.Norm(v.inner)
}

// Normalize returns v scaled to unit length. The zero vector yields NaN
// components.
func (v DVec3) Normalize() DVec3 {
	return DVec3{inner: r3.Unit(v.inner)}
}

// Dot returns the dot product of v and a DVec3 or Vec3.
func (v DVec3) Dot(rhs any) (float64, error) {
	c, ok := vectorOperand64(rhs, false)
	if !ok {
		return 0, unsupportedOperand("DVec3.Dot", rhs)
	}
	return r3.Dot(v.inner, r3.Vec{X: c[0], Y: c[1], Z: c[2]}), nil
}

// Cross returns the cross product v × rhs for a DVec3 or Vec3 rhs.
func (v DVec3) Cross(rhs any) (DVec3, error) {
	c, ok := vectorOperand64(rhs, false)
	if !ok {
		return DVec3{}, unsupportedOperand("DVec3.Cross", rhs)
	}
	return DVec3{inner: r3.Cross(v.inner, r3.Vec{X: c[0], Y: c[1], Z: c[2]})}, nil
}

// ApproxEqual reports whether every component of v is within tol of the
// matching component of o.
func (v DVec3) ApproxEqual(o DVec3, tol float64) bool {
	return scalar.EqualWithinAbs(v.inner.X, o.inner.X, tol) &&
		scalar.EqualWithinAbs(v.inner.Y, o.inner.Y, tol) &&
		scalar.EqualWithinAbs(v.inner.Z, o.inner.Z, tol)
}
