// Package batch stores many float64 vectors as separate X, Y and Z slices
// and applies vector arithmetic across whole buffers with the block kernels
// of algo-vecmath.
//
// A DVec3Buffer interoperates with host numeric arrays through
// Interleaved and FromInterleaved, which use the x0, y0, z0, x1, ... layout.
package batch
