package batch

import (
	"fmt"

	"github.com/cwbudde/algo-spatial/spatial"
	"github.com/cwbudde/algo-vecmath"
)

// DVec3Buffer holds n vectors in structure-of-arrays form. X, Y and Z
// always have the same length.
type DVec3Buffer struct {
	X, Y, Z []float64
}

// NewDVec3Buffer returns a zeroed buffer of n vectors.
func NewDVec3Buffer(n int) *DVec3Buffer {
	data := make([]float64, 3*n)
	return &DVec3Buffer{
		X: data[:n:n],
		Y: data[n : 2*n : 2*n],
		Z: data[2*n:],
	}
}

// PackDVec3 copies vs into a new buffer.
func PackDVec3(vs []spatial.DVec3) *DVec3Buffer {
	b := NewDVec3Buffer(len(vs))
	for i, v := range vs {
		b.Set(i, v)
	}
	return b
}

// FromInterleaved builds a buffer from x0, y0, z0, x1, ... data.
func FromInterleaved(xyz []float64) (*DVec3Buffer, error) {
	if len(xyz)%3 != 0 {
		return nil, fmt.Errorf("%w: FromInterleaved length %d is not a multiple of 3", ErrLengthMismatch, len(xyz))
	}
	n := len(xyz) / 3
	b := NewDVec3Buffer(n)
	for i := 0; i < n; i++ {
		b.X[i] = xyz[3*i]
		b.Y[i] = xyz[3*i+1]
		b.Z[i] = xyz[3*i+2]
	}
	return b, nil
}

// Len returns the number of vectors.
func (b *DVec3Buffer) Len() int { return len(b.X) }

// At returns vector i.
func (b *DVec3Buffer) At(i int) spatial.DVec3 {
	return spatial.NewDVec3(b.X[i], b.Y[i], b.Z[i])
}

// Set stores v at index i.
func (b *DVec3Buffer) Set(i int, v spatial.DVec3) {
	b.X[i], b.Y[i], b.Z[i] = v.Tuple()
}

// Unpack copies the buffer into a new slice of vectors.
func (b *DVec3Buffer) Unpack() []spatial.DVec3 {
	out := make([]spatial.DVec3, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Interleaved returns the buffer as x0, y0, z0, x1, ... data.
func (b *DVec3Buffer) Interleaved() []float64 {
	out := make([]float64, 3*b.Len())
	for i := range b.X {
		out[3*i] = b.X[i]
		out[3*i+1] = b.Y[i]
		out[3*i+2] = b.Z[i]
	}
	return out
}

// Add adds o component-wise.
func (b *DVec3Buffer) Add(o *DVec3Buffer) error {
	if err := checkLength("Add", o.Len(), b.Len()); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(b.X, o.X)
	vecmath.AddBlockInPlace(b.Y, o.Y)
	vecmath.AddBlockInPlace(b.Z, o.Z)
	return nil
}

// Mul multiplies by o component-wise.
func (b *DVec3Buffer) Mul(o *DVec3Buffer) error {
	if err := checkLength("Mul", o.Len(), b.Len()); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(b.X, o.X)
	vecmath.MulBlockInPlace(b.Y, o.Y)
	vecmath.MulBlockInPlace(b.Z, o.Z)
	return nil
}

// Scale multiplies every component by s.
func (b *DVec3Buffer) Scale(s float64) {
	vecmath.ScaleBlock(b.X, b.X, s)
	vecmath.ScaleBlock(b.Y, b.Y, s)
	vecmath.ScaleBlock(b.Z, b.Z, s)
}

// Dot writes the dot product of each vector pair into dst.
func (b *DVec3Buffer) Dot(dst []float64, o *DVec3Buffer) error {
	if err := checkLength("Dot", o.Len(), b.Len()); err != nil {
		return err
	}
	if err := checkLength("Dot dst", len(dst), b.Len()); err != nil {
		return err
	}

	tmp, buf := getScratch(b.Len())
	defer putScratch(buf)

	vecmath.MulBlock(dst, b.X, o.X)
	vecmath.MulBlock(tmp, b.Y, o.Y)
	vecmath.AddBlockInPlace(dst, tmp)
	vecmath.MulBlock(tmp, b.Z, o.Z)
	vecmath.AddBlockInPlace(dst, tmp)
	return nil
}

// Lengths writes the Euclidean length of each vector into dst.
func (b *DVec3Buffer) Lengths(dst []float64) error {
	if err := checkLength("Lengths", len(dst), b.Len()); err != nil {
		return err
	}
	vecmath.Magnitude(dst, b.X, b.Y)
	vecmath.Magnitude(dst, dst, b.Z)
	return nil
}

// Normalize scales every vector to unit length. Zero vectors become NaN,
// matching spatial.DVec3.Normalize.
func (b *DVec3Buffer) Normalize() {
	inv, buf := getScratch(b.Len())
	defer putScratch(buf)

	vecmath.Magnitude(inv, b.X, b.Y)
	vecmath.Magnitude(inv, inv, b.Z)
	for i, l := range inv {
		inv[i] = 1 / l
	}
	vecmath.MulBlockInPlace(b.X, inv)
	vecmath.MulBlockInPlace(b.Y, inv)
	vecmath.MulBlockInPlace(b.Z, inv)
}

// Rotate applies q to every vector, giving the same result as q.Mul(v)
// for each element.
func (b *DVec3Buffer) Rotate(q spatial.DQuat) {
	m := rotationRows(q)
	n := b.Len()

	out, outBuf := getScratch(3 * n)
	defer putScratch(outBuf)
	tmp, tmpBuf := getScratch(n)
	defer putScratch(tmpBuf)

	for r := 0; r < 3; r++ {
		row := out[r*n : (r+1)*n]
		vecmath.ScaleBlock(row, b.X, m[r][0])
		vecmath.ScaleBlock(tmp, b.Y, m[r][1])
		vecmath.AddBlockInPlace(row, tmp)
		vecmath.ScaleBlock(tmp, b.Z, m[r][2])
		vecmath.AddBlockInPlace(row, tmp)
	}

	copy(b.X, out[:n])
	copy(b.Y, out[n:2*n])
	copy(b.Z, out[2*n:])
}

// rotationRows returns the matrix of v -> q v q*, which for a non-unit q
// also scales by |q|^2.
func rotationRows(q spatial.DQuat) [3][3]float64 {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W()
	return [3][3]float64{
		{w*w + x*x - y*y - z*z, 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), w*w - x*x + y*y - z*z, 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), w*w - x*x - y*y + z*z},
	}
}
