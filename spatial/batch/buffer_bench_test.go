package batch

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-spatial/spatial"
)

func BenchmarkRotate(b *testing.B) {
	q := spatial.DQuatFromAxisAngle(spatial.NewDVec3(0, 1, 0), 0.7)
	for _, n := range []int{16, 256, 4096} {
		buf := PackDVec3(vectors(1, n))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf.Rotate(q)
			}
		})
	}
}

func BenchmarkRotateScalar(b *testing.B) {
	q := spatial.DQuatFromAxisAngle(spatial.NewDVec3(0, 1, 0), 0.7)
	for _, n := range []int{16, 256, 4096} {
		vs := vectors(1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for j := range vs {
					vs[j] = q.MulDVec3(vs[j])
				}
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		x, y := PackDVec3(vectors(2, n)), PackDVec3(vectors(3, n))
		dst := make([]float64, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = x.Dot(dst, y)
			}
		})
	}
}
