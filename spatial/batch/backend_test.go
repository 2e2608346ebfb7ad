package batch

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestBackend(t *testing.T) {
	if got := Backend(); got == "" {
		t.Fatal("Backend() is empty")
	}

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"forced", cpu.Features{ForceGeneric: true, HasAVX2: true, Architecture: "amd64"}, "generic"},
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}, "avx2"},
		{"sse2", cpu.Features{HasSSE2: true, Architecture: "amd64"}, "sse2"},
		{"other", cpu.Features{Architecture: "arm64"}, "arm64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			if got := Backend(); got != tt.want {
				t.Fatalf("Backend() = %q, want %q", got, tt.want)
			}
		})
	}
}
