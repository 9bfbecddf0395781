//go:build amd64
// +build amd64

package imagecodec

import "golang.org/x/sys/cpu"

// wideFillThreshold is the fill length at which the doubling copy overtakes
// the byte loop. With AVX2 the runtime memmove wins earlier.
var wideFillThreshold = func() int {
	if cpu.X86.HasAVX2 {
		return 16
	}
	return 32
}()
