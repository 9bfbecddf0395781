// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// fillBytes sets every byte of p to v. Short fills use a plain loop; past
// wideFillThreshold the doubling copy is faster because the runtime memmove
// moves whole vector registers.
func fillBytes(p []byte, v byte) {
	if len(p) < wideFillThreshold {
		for i := range p {
			p[i] = v
		}
		return
	}
	p[0] = v
	for filled := 1; filled < len(p); filled *= 2 {
		copy(p[filled:], p[:filled])
	}
}

// fillWords sets every 2-byte unit of p to the word w (given as two raw
// bytes, byte order preserved). len(p) must be even.
func fillWords(p []byte, w []byte) {
	if len(p) == 0 {
		return
	}
	copy(p, w[:2])
	for filled := 2; filled < len(p); filled *= 2 {
		copy(p[filled:], p[:filled])
	}
}

// fillPixels replicates the pixel unit pix (1, 2, 3 or 4 raw bytes) across
// p. len(p) must be a multiple of len(pix).
func fillPixels(p []byte, pix []byte) {
	if len(p) == 0 {
		return
	}
	n := copy(p, pix)
	for filled := n; filled < len(p); filled *= 2 {
		copy(p[filled:], p[:filled])
	}
}
