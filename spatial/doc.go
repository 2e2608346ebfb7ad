// Package spatial provides 3D vectors and rotation quaternions in float64
// (DVec3, DQuat) and float32 (Vec3, Quat) precision for hosts that call
// operators with dynamically typed operands.
//
// The arithmetic itself is delegated: float64 types wrap gonum's r3.Vec and
// quat.Number, float32 types wrap mathgl's mgl32.Vec3 and mgl32.Quat. This
// package adds the operand dispatch on top of them.
//
// # Operands
//
// Vector operators (Add, Sub, Mul, Div, their reflected R* forms and the
// *InPlace forms) accept
//
//   - a float64 scalar, or an int64/int scalar, broadcast to all three axes
//   - a DVec3 or Vec3 (or a non-nil pointer to one)
//
// Operands of the other precision are converted component-wise to the
// receiver's precision, and the result always has the receiver's precision.
// Dot and Cross only accept vectors. Quaternion Mul accepts a quaternion of
// either precision (returning the composed quaternion) or a vector of either
// precision (returning the rotated vector).
//
// Any other operand yields an error matching ErrUnsupportedOperand. Division
// by zero is not an error; it produces ±Inf or NaN as usual.
//
// # Usage
//
//	v := spatial.NewDVec3(1, 2, 3)
//	w, err := v.Mul(2)            // DVec3(2, 4, 6)
//	u, err := v.Add(spatial.NewVec3(1, 1, 1))
//
//	q := spatial.DQuatFromAxisAngle(spatial.NewDVec3(0, 0, 1), math.Pi/2)
//	r, err := q.Mul(spatial.NewDVec3(1, 0, 0)) // DVec3(0, 1, 0)
//
// # Preconditions
//
// Nothing checks that quaternions are unit length or that the axis and
// from/to vectors given to the named constructors are normalized. Conjugate
// is the inverse rotation only for unit quaternions.
package spatial
