package spatial

import "github.com/cwbudde/algo-spatial/internal/coerce"

// binaryOp is a component-wise vector operator.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

var opNames = [...]string{
	opAdd: "Add",
	opSub: "Sub",
	opMul: "Mul",
	opDiv: "Div",
}

func (op binaryOp) String() string {
	return opNames[op]
}

// vectorOperand64 coerces a dispatch operand to float64 components. Scalars
// are broadcast to all three axes when allowScalar is set.
func vectorOperand64(operand any, allowScalar bool) ([3]float64, bool) {
	switch o := operand.(type) {
	case float64:
		if allowScalar {
			return coerce.Splat(o), true
		}
	case int64:
		if allowScalar {
			return coerce.Splat(coerce.Int[float64](o)), true
		}
	case int:
		if allowScalar {
			return coerce.Splat(coerce.Int[float64](o)), true
		}
	case DVec3:
		return o.components(), true
	case *DVec3:
		if o != nil {
			return o.components(), true
		}
	case Vec3:
		return coerce.Triple[float64](o.inner[0], o.inner[1], o.inner[2]), true
	case *Vec3:
		if o != nil {
			return coerce.Triple[float64](o.inner[0], o.inner[1], o.inner[2]), true
		}
	}

	return [3]float64{}, false
}

// vectorOperand32 is the float32 counterpart of vectorOperand64.
func vectorOperand32(operand any, allowScalar bool) ([3]float32, bool) {
	switch o := operand.(type) {
	case float64:
		if allowScalar {
			return coerce.Splat(float32(o)), true
		}
	case int64:
		if allowScalar {
			return coerce.Splat(coerce.Int[float32](o)), true
		}
	case int:
		if allowScalar {
			return coerce.Splat(coerce.Int[float32](o)), true
		}
	case Vec3:
		return o.inner, true
	case *Vec3:
		if o != nil {
			return o.inner, true
		}
	case DVec3:
		return coerce.Triple[float32](o.inner.X, o.inner.Y, o.inner.Z), true
	case *DVec3:
		if o != nil {
			return coerce.Triple[float32](o.inner.X, o.inner.Y, o.inner.Z), true
		}
	}

	return [3]float32{}, false
}

// quatOperand64 coerces a quaternion operand to float64 components in
// x, y, z, w order.
func quatOperand64(operand any) ([4]float64, bool) {
	switch o := operand.(type) {
	case DQuat:
		return o.components(), true
	case *DQuat:
		if o != nil {
			return o.components(), true
		}
	case Quat:
		c := o.components()
		return coerce.Quad[float64](c[0], c[1], c[2], c[3]), true
	case *Quat:
		if o != nil {
			c := o.components()
			return coerce.Quad[float64](c[0], c[1], c[2], c[3]), true
		}
	}

	return [4]float64{}, false
}

// quatOperand32 is the float32 counterpart of quatOperand64.
func quatOperand32(operand any) ([4]float32, bool) {
	switch o := operand.(type) {
	case Quat:
		return o.components(), true
	case *Quat:
		if o != nil {
			return o.components(), true
		}
	case DQuat:
		c := o.components()
		return coerce.Quad[float32](c[0], c[1], c[2], c[3]), true
	case *DQuat:
		if o != nil {
			c := o.components()
			return coerce.Quad[float32](c[0], c[1], c[2], c[3]), true
		}
	}

	return [4]float32{}, false
}
