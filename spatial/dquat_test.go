package spatial

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spatial/internal/testutil"
	"gonum.org/v1/gonum/num/quat"
)

func dvec(c [3]float64) DVec3 { return NewDVec3(c[0], c[1], c[2]) }

func mulDVec3(t *testing.T, q DQuat, v any) DVec3 {
	t.Helper()
	got, err := q.Mul(v)
	if err != nil {
		t.Fatalf("Mul(%T) error = %v", v, err)
	}
	r, ok := got.(DVec3)
	if !ok {
		t.Fatalf("Mul(%T) returned %T, want DVec3", v, got)
	}
	return r
}

func TestDQuatFromAxisAngle(t *testing.T) {
	q := DQuatFromAxisAngle(NewDVec3(0, 0, 1), math.Pi/2)
	got := mulDVec3(t, q, NewDVec3(1, 0, 0))
	if !got.ApproxEqual(NewDVec3(0, 1, 0), 1e-12) {
		t.Fatalf("quarter turn about z of x = %v, want (0, 1, 0)", got)
	}

	half := math.Sqrt2 / 2
	if !q.ApproxEqual(NewDQuat(0, 0, half, half), 1e-15) {
		t.Fatalf("DQuatFromAxisAngle() = %v", q)
	}
}

func TestDQuatFromRotationArc(t *testing.T) {
	dirs := testutil.DeterministicDirections(42, 128)
	dirs = append(dirs, testutil.AxisDirections()...)

	for i := range dirs {
		for _, j := range []int{(i + 1) % len(dirs), i} {
			from, to := dvec(dirs[i]), dvec(dirs[j])
			q := DQuatFromRotationArc(from, to)
			got := mulDVec3(t, q, from)
			if !got.ApproxEqual(to, 1e-9) {
				t.Fatalf("arc(%v, %v) * from = %v, want %v", from, to, got, to)
			}
			if l := q.Length(); math.Abs(l-1) > 1e-12 {
				t.Fatalf("arc(%v, %v) has length %v, want 1", from, to, l)
			}
		}
	}
}

func TestDQuatFromRotationArcNearSingular(t *testing.T) {
	for _, p := range nearArcPairs(53) {
		from, to := p[0], p[1]
		q := DQuatFromRotationArc(from, to)
		if got := q.MulDVec3(from); !got.ApproxEqual(to, 1e-9) {
			t.Fatalf("arc(%v, %v) * from = %v, want %v", from, to, got, to)
		}
		if l := q.Length(); math.Abs(l-1) > 1e-12 {
			t.Fatalf("arc(%v, %v) has length %v, want 1", from, to, l)
		}
	}
}

func TestDQuatFromRotationArcAntiParallel(t *testing.T) {
	for _, d := range testutil.AxisDirections() {
		from := dvec(d)
		to := from.Neg()
		got := mulDVec3(t, DQuatFromRotationArc(from, to), from)
		if !got.ApproxEqual(to, 1e-9) {
			t.Fatalf("arc(%v, -from) * from = %v, want %v", from, got, to)
		}
	}
}

func TestDQuatFromRotationArcParallel(t *testing.T) {
	v := NewDVec3(0, 1, 0)
	if got := DQuatFromRotationArc(v, v); got != DQuatIdentity() {
		t.Fatalf("arc(v, v) = %v, want identity", got)
	}
}

func TestDQuatConjugateInverse(t *testing.T) {
	for _, d := range testutil.DeterministicDirections(17, 32) {
		q := DQuatFromAxisAngle(dvec(d), 1.234)
		got, err := q.Mul(q.Conjugate())
		if err != nil {
			t.Fatalf("Mul() error = %v", err)
		}
		if !got.(DQuat).ApproxEqual(DQuatIdentity(), 1e-12) {
			t.Fatalf("q * conj(q) = %v, want identity", got)
		}
	}

	if got := NewDQuat(1, -2, 3, 4).Conjugate(); got != NewDQuat(-1, 2, -3, 4) {
		t.Fatalf("Conjugate() = %v", got)
	}
}

func TestDQuatCompositionOrder(t *testing.T) {
	a := DQuatFromAxisAngle(NewDVec3(0, 0, 1), math.Pi/2)
	b := DQuatFromAxisAngle(NewDVec3(1, 0, 0), math.Pi/2)
	v := NewDVec3(0, 1, 0)

	ab := a.MulQuat(b)
	ba := b.MulQuat(a)
	if ab.ApproxEqual(ba, 1e-6) {
		t.Fatal("expected quaternion product to depend on operand order")
	}

	// b first: y -> z, then a leaves z fixed.
	if got := ab.MulDVec3(v); !got.ApproxEqual(NewDVec3(0, 0, 1), 1e-12) {
		t.Fatalf("(a*b) * y = %v, want (0, 0, 1)", got)
	}
	if got, want := ab.MulDVec3(v), a.MulDVec3(b.MulDVec3(v)); !got.ApproxEqual(want, 1e-12) {
		t.Fatalf("(a*b)*v = %v, want a*(b*v) = %v", got, want)
	}
}

func TestDQuatMulDispatch(t *testing.T) {
	q := DQuatFromAxisAngle(NewDVec3(0, 1, 0), 0.3)

	got, err := q.Mul(QuatIdentity())
	if err != nil {
		t.Fatalf("Mul(Quat) error = %v", err)
	}
	if dq, ok := got.(DQuat); !ok || !dq.ApproxEqual(q, 1e-15) {
		t.Fatalf("Mul(Quat identity) = %v (%T), want %v", got, got, q)
	}

	got, err = q.Mul(ptr(DQuatIdentity()))
	if err != nil {
		t.Fatalf("Mul(*DQuat) error = %v", err)
	}
	if _, ok := got.(DQuat); !ok {
		t.Fatalf("Mul(*DQuat) returned %T, want DQuat", got)
	}

	v := mulDVec3(t, q, NewVec3(1, 0, 0))
	want := q.MulDVec3(NewDVec3(1, 0, 0))
	if !v.ApproxEqual(want, 1e-15) {
		t.Fatalf("Mul(Vec3) = %v, want %v", v, want)
	}

	for _, operand := range []any{"q", 2.0, int64(2), nil, (*DQuat)(nil), (*Vec3)(nil)} {
		if _, err := q.Mul(operand); !errors.Is(err, ErrUnsupportedOperand) {
			t.Fatalf("Mul(%T) error = %v, want ErrUnsupportedOperand", operand, err)
		}
		if _, err := q.RMul(operand); !errors.Is(err, ErrUnsupportedOperand) {
			t.Fatalf("RMul(%T) error = %v, want ErrUnsupportedOperand", operand, err)
		}
	}
}

func TestDQuatRMul(t *testing.T) {
	q := DQuatFromAxisAngle(NewDVec3(0, 0, 1), 0.7)
	p := DQuatFromAxisAngle(NewDVec3(1, 0, 0), -0.4)
	v := NewDVec3(0.3, -1, 2)

	right, err := q.RMul(v)
	if err != nil {
		t.Fatalf("RMul(DVec3) error = %v", err)
	}
	left, err := q.Mul(v)
	if err != nil {
		t.Fatalf("Mul(DVec3) error = %v", err)
	}
	if right.(DVec3) != left.(DVec3) {
		t.Fatalf("RMul(v) = %v, want Mul(v) = %v", right, left)
	}

	composed, err := q.RMul(p)
	if err != nil {
		t.Fatalf("RMul(DQuat) error = %v", err)
	}
	if composed.(DQuat) != p.MulQuat(q) {
		t.Fatalf("RMul(p) = %v, want p*q = %v", composed, p.MulQuat(q))
	}
}

func TestDQuatNormalize(t *testing.T) {
	q := NewDQuat(1, 2, 3, 4).Normalize()
	if l := q.Length(); math.Abs(l-1) > 1e-15 {
		t.Fatalf("Normalize().Length() = %v, want 1", l)
	}
	if got := NewDQuat(0, 0, 0, 2).Normalize(); got != DQuatIdentity() {
		t.Fatalf("Normalize() = %v, want identity", got)
	}
}

func TestDQuatToAxisAngle(t *testing.T) {
	axis := NewDVec3(1, 2, 2).Normalize()
	gotAxis, gotAngle := DQuatFromAxisAngle(axis, 1.1).ToAxisAngle()
	if !gotAxis.ApproxEqual(axis, 1e-12) || math.Abs(gotAngle-1.1) > 1e-12 {
		t.Fatalf("ToAxisAngle() = (%v, %v), want (%v, 1.1)", gotAxis, gotAngle, axis)
	}

	gotAxis, gotAngle = DQuatIdentity().ToAxisAngle()
	if gotAxis != NewDVec3(1, 0, 0) || gotAngle != 0 {
		t.Fatalf("identity ToAxisAngle() = (%v, %v), want (x axis, 0)", gotAxis, gotAngle)
	}
}

func TestDQuatAccessorsAndConversions(t *testing.T) {
	var q DQuat
	q.SetX(1)
	q.SetY(2)
	q.SetZ(3)
	q.SetW(4)
	if q.X() != 1 || q.Y() != 2 || q.Z() != 3 || q.W() != 4 {
		t.Fatalf("accessors = (%v, %v, %v, %v)", q.X(), q.Y(), q.Z(), q.W())
	}
	if got := q.Number(); got != (quat.Number{Real: 4, Imag: 1, Jmag: 2, Kmag: 3}) {
		t.Fatalf("Number() = %v", got)
	}
	if got := DQuatFromNumber(quat.Number{Real: 1}); got != DQuatIdentity() {
		t.Fatalf("DQuatFromNumber() = %v", got)
	}
	if got := q.Quat(); got != NewQuat(1, 2, 3, 4) {
		t.Fatalf("Quat() = %v", got)
	}
	if got := q.String(); got != "DQuat(1, 2, 3, 4)" {
		t.Fatalf("String() = %q", got)
	}
}
