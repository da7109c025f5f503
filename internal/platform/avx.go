package platform

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HasAVX reports whether the CPU supports AVX or AVX2, the minimum
// the tooling's renderer needs on x86. Non-x86 architectures have no
// AVX requirement and always pass.
func HasAVX() bool {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		return true
	}
	return cpu.X86.HasAVX || cpu.X86.HasAVX2
}
