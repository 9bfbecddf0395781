//go:build !amd64
// +build !amd64

package imagecodec

// wideFillThreshold is the fill length at which the doubling copy overtakes
// the byte loop.
var wideFillThreshold = 32
