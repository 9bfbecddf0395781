// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// ThunderScan delta tables. An entry of thunderSkip leaves the pixel
// untouched.
const thunderSkip = -128

var thunderDelta2 = [4]int{0, 1, thunderSkip, -1}
var thunderDelta3 = [8]int{0, 1, 2, 3, thunderSkip, -3, -2, -1}

// ThunderCodec decodes the ThunderScan 4-bit scheme found in TIFF files.
// Each input byte splits into a 2-bit opcode and a 6-bit payload: 0 runs the
// last pixel, 1 encodes three 2-bit deltas, 2 encodes two 3-bit deltas and 3
// carries a raw pixel. Two pixels pack into one output byte, high nibble
// first.
type ThunderCodec struct {
	codecState
	width int
}

// NewThunderCodec returns a ThunderScan decoder for rows of 2*width pixels
// (width is the row length in bytes). A width below one puts the codec into
// StatusInitError.
func NewThunderCodec(width int) *ThunderCodec {
	c := &ThunderCodec{width: width}
	if width < 1 {
		c.status = StatusInitError
	}
	return c
}

func (c *ThunderCodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	rowPixels := 2 * c.width
	var (
		si, di    int
		npixels   int
		lastPixel byte
	)

	// setPixel writes one 4-bit pixel and advances the nibble cursor,
	// wrapping to the next row when the current one is complete.
	setPixel := func(v byte) bool {
		lastPixel = v & 0x0F
		if di >= len(dst) {
			c.status = StatusBufferTooSmall
			return false
		}
		if npixels&1 == 0 {
			dst[di] = lastPixel << 4
		} else {
			dst[di] |= lastPixel
			di++
		}
		npixels++
		if npixels == rowPixels {
			npixels = 0
			lastPixel = 0
		}
		return true
	}

	for si < len(src) {
		b := src[si]
		si++
		payload := b & 0x3F
		switch b >> 6 {
		case 0: // run of the last pixel
			for i := 0; i < int(payload); i++ {
				if !setPixel(lastPixel) {
					break
				}
			}
		case 1: // three 2-bit deltas
			for shift := 4; shift >= 0; shift -= 2 {
				d := thunderDelta2[(payload>>shift)&0x03]
				if d == thunderSkip {
					continue
				}
				if !setPixel(byte(int(lastPixel) + d)) {
					break
				}
			}
		case 2: // two 3-bit deltas
			for shift := 3; shift >= 0; shift -= 3 {
				d := thunderDelta3[(payload>>shift)&0x07]
				if d == thunderSkip {
					continue
				}
				if !setPixel(byte(int(lastPixel) + d)) {
					break
				}
			}
		case 3: // raw pixel
			setPixel(payload)
		}
		if c.status != StatusOK {
			break
		}
	}
	produced := di
	if npixels&1 == 1 {
		// A pending high nibble still occupies its byte.
		produced++
	}
	c.finish(len(src), si, produced)
	return si, produced
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *ThunderCodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
