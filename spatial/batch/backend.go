package batch

import "github.com/cwbudde/algo-vecmath/cpu"

// Backend reports which kernel family the block operations dispatch to on
// this machine: "generic", "sse2", "avx2", or the architecture name when
// no x86 extension applies.
func Backend() string {
	f := cpu.DetectFeatures()
	switch {
	case f.ForceGeneric:
		return "generic"
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE2:
		return "sse2"
	case f.Architecture != "":
		return f.Architecture
	default:
		return "generic"
	}
}
