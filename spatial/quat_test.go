package spatial

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spatial/internal/testutil"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

func vec(c [3]float64) Vec3 { return dvec(c).Vec3() }

func mulVec3(t *testing.T, q Quat, v any) Vec3 {
	t.Helper()
	got, err := q.Mul(v)
	if err != nil {
		t.Fatalf("Mul(%T) error = %v", v, err)
	}
	r, ok := got.(Vec3)
	if !ok {
		t.Fatalf("Mul(%T) returned %T, want Vec3", v, got)
	}
	return r
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(NewVec3(0, 1, 0), math.Pi/2)
	// A quarter turn about y takes z to x.
	got := mulVec3(t, q, NewVec3(0, 0, 1))
	if !got.ApproxEqual(NewVec3(1, 0, 0), 1e-6) {
		t.Fatalf("quarter turn about y of z = %v, want (1, 0, 0)", got)
	}
}

func TestQuatFromRotationArc(t *testing.T) {
	dirs := testutil.DeterministicDirections(43, 128)
	dirs = append(dirs, testutil.AxisDirections()...)

	for i := range dirs {
		from, to := vec(dirs[i]), vec(dirs[(i+1)%len(dirs)])
		got := mulVec3(t, QuatFromRotationArc(from, to), from)
		if !got.ApproxEqual(to, 1e-3) {
			t.Fatalf("arc(%v, %v) * from = %v, want %v", from, to, got, to)
		}
	}
}

// nearArcPairs returns unit (from, to) pairs where to is offset from +from or
// -from by roughly eps radians.
func nearArcPairs(seed uint64) [][2]DVec3 {
	dirs := testutil.DeterministicDirections(seed, 16)
	dirs = append(dirs, testutil.AxisDirections()...)

	var pairs [][2]DVec3
	for _, d := range dirs {
		from := dvec(d)
		perp := from.anyOrthonormal()
		for _, eps := range []float64{1e-2, 1e-3, 1e-4, 1e-5} {
			for _, sign := range []float64{1, -1} {
				to, _ := from.Mul(sign)
				offset, _ := perp.Mul(eps)
				to, _ = to.Add(offset)
				pairs = append(pairs, [2]DVec3{from, to.Normalize()})
			}
		}
	}
	return pairs
}

func TestQuatFromRotationArcNearSingular(t *testing.T) {
	for _, p := range nearArcPairs(47) {
		from, to := p[0].Vec3(), p[1].Vec3()
		got := QuatFromRotationArc(from, to).MulVec3(from)
		if !got.ApproxEqual(to, 1e-3) {
			t.Fatalf("arc(%v, %v) * from = %v, want %v", from, to, got, to)
		}
	}
}

func TestQuatFromRotationArcDegenerate(t *testing.T) {
	for _, d := range testutil.AxisDirections() {
		from := vec(d)
		if got := QuatFromRotationArc(from, from); got != QuatIdentity() {
			t.Fatalf("arc(v, v) = %v, want identity", got)
		}
		to := from.Neg()
		got := mulVec3(t, QuatFromRotationArc(from, to), from)
		if !got.ApproxEqual(to, 1e-6) {
			t.Fatalf("arc(%v, -from) * from = %v, want %v", from, got, to)
		}
	}
}

func TestQuatConjugateInverse(t *testing.T) {
	for _, d := range testutil.DeterministicDirections(18, 32) {
		q := QuatFromAxisAngle(vec(d).Normalize(), -2.5)
		got, err := q.Mul(q.Conjugate())
		if err != nil {
			t.Fatalf("Mul() error = %v", err)
		}
		if !got.(Quat).ApproxEqual(QuatIdentity(), 1e-6) {
			t.Fatalf("q * conj(q) = %v, want identity", got)
		}
	}
}

func TestQuatCompositionOrder(t *testing.T) {
	a := QuatFromAxisAngle(NewVec3(0, 0, 1), math.Pi/2)
	b := QuatFromAxisAngle(NewVec3(1, 0, 0), math.Pi/2)
	v := NewVec3(0, 1, 0)

	if a.MulQuat(b).ApproxEqual(b.MulQuat(a), 1e-3) {
		t.Fatal("expected quaternion product to depend on operand order")
	}
	got := a.MulQuat(b).MulVec3(v)
	want := a.MulVec3(b.MulVec3(v))
	if !got.ApproxEqual(want, 1e-6) || !got.ApproxEqual(NewVec3(0, 0, 1), 1e-6) {
		t.Fatalf("(a*b)*y = %v, want a*(b*y) = %v = (0, 0, 1)", got, want)
	}
}

func TestQuatMulDispatch(t *testing.T) {
	q := QuatFromAxisAngle(NewVec3(1, 0, 0), 0.8)

	got, err := q.Mul(DQuatIdentity())
	if err != nil {
		t.Fatalf("Mul(DQuat) error = %v", err)
	}
	if sq, ok := got.(Quat); !ok || sq != q {
		t.Fatalf("Mul(DQuat identity) = %v (%T), want %v", got, got, q)
	}

	rotated := mulVec3(t, q, NewDVec3(0, 1, 0))
	if want := q.MulVec3(NewVec3(0, 1, 0)); rotated != want {
		t.Fatalf("Mul(DVec3) = %v, want %v", rotated, want)
	}
	if rotated := mulVec3(t, q, ptr(NewVec3(0, 1, 0))); rotated != q.MulVec3(NewVec3(0, 1, 0)) {
		t.Fatalf("Mul(*Vec3) = %v", rotated)
	}

	viaRMul, err := q.RMul(NewVec3(0, 1, 0))
	if err != nil {
		t.Fatalf("RMul(Vec3) error = %v", err)
	}
	if viaRMul.(Vec3) != rotated {
		t.Fatalf("RMul(v) = %v, want Mul(v) = %v", viaRMul, rotated)
	}

	p := QuatFromAxisAngle(NewVec3(0, 0, 1), 0.2)
	composed, err := q.RMul(p.DQuat())
	if err != nil {
		t.Fatalf("RMul(DQuat) error = %v", err)
	}
	if !composed.(Quat).ApproxEqual(p.MulQuat(q), 1e-7) {
		t.Fatalf("RMul(p) = %v, want p*q = %v", composed, p.MulQuat(q))
	}

	for _, operand := range []any{"q", float32(1), 1, NewDVec3(1, 1, 1).R3(), (*Quat)(nil)} {
		if _, err := q.Mul(operand); !errors.Is(err, ErrUnsupportedOperand) {
			t.Fatalf("Mul(%T) error = %v, want ErrUnsupportedOperand", operand, err)
		}
	}
}

func TestQuatNormalizeLength(t *testing.T) {
	q := NewQuat(1, 2, 3, 4).Normalize()
	if l := q.Length(); math.Abs(float64(l)-1) > 1e-6 {
		t.Fatalf("Normalize().Length() = %v, want 1", l)
	}
	if got := NewQuat(0, 0, 3, 4).Length(); got != 5 {
		t.Fatalf("Length() = %v, want 5", got)
	}
	if got := NewQuat(1, -2, 3, 4).Conjugate(); got != NewQuat(-1, 2, -3, 4) {
		t.Fatalf("Conjugate() = %v", got)
	}
}

func TestQuatToAxisAngle(t *testing.T) {
	axis := NewVec3(0, 0.6, 0.8)
	gotAxis, gotAngle := QuatFromAxisAngle(axis, 2).ToAxisAngle()
	if !gotAxis.ApproxEqual(axis, 1e-5) || math.Abs(float64(gotAngle)-2) > 1e-5 {
		t.Fatalf("ToAxisAngle() = (%v, %v), want (%v, 2)", gotAxis, gotAngle, axis)
	}
}

func TestQuatAccessorsAndConversions(t *testing.T) {
	var q Quat
	q.SetX(1)
	q.SetY(2)
	q.SetZ(3)
	q.SetW(4)
	if q.X() != 1 || q.Y() != 2 || q.Z() != 3 || q.W() != 4 {
		t.Fatalf("accessors = (%v, %v, %v, %v)", q.X(), q.Y(), q.Z(), q.W())
	}
	if got := q.Mgl(); got != (mgl32.Quat{W: 4, V: mgl32.Vec3{1, 2, 3}}) {
		t.Fatalf("Mgl() = %v", got)
	}
	if got := QuatFromMgl(mgl32.QuatIdent()); got != QuatIdentity() {
		t.Fatalf("QuatFromMgl() = %v", got)
	}
	if got := q.F32(); got != (f32.Vec4{1, 2, 3, 4}) {
		t.Fatalf("F32() = %v", got)
	}
	if got := QuatFromF32(f32.Vec4{0, 0, 0, 1}); got != QuatIdentity() {
		t.Fatalf("QuatFromF32() = %v", got)
	}
	if got := q.DQuat(); got != NewDQuat(1, 2, 3, 4) {
		t.Fatalf("DQuat() = %v", got)
	}
	if got := q.String(); got != "Quat(1, 2, 3, 4)" {
		t.Fatalf("String() = %q", got)
	}
}
