// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// TargaRLECodec decodes and encodes the run-length scheme of Truevision
// Targa 2.0 images. A packet is one header byte followed by payload: bit 7
// set means a run packet ((header & 0x7F) + 1 copies of one pixel), bit 7
// clear means a literal packet of (header & 0x7F) + 1 distinct pixels.
// Pixels are 1, 2, 3 or 4 bytes wide depending on the color depth.
type TargaRLECodec struct {
	codecState
	pixelSize int
}

// NewTargaRLECodec returns a Targa RLE codec for the given color depth.
// Depths outside {8, 15, 16, 24, 32} put the codec into StatusInitError and
// every subsequent call is a no-op.
func NewTargaRLECodec(colorDepth int) *TargaRLECodec {
	c := &TargaRLECodec{}
	switch colorDepth {
	case 8:
		c.pixelSize = 1
	case 15, 16:
		c.pixelSize = 2
	case 24:
		c.pixelSize = 3
	case 32:
		c.pixelSize = 4
	default:
		c.status = StatusInitError
	}
	return c
}

func (c *TargaRLECodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	ps := c.pixelSize
	si, di := 0, 0
	for si < len(src) && di < len(dst) {
		hdr := src[si]
		si++
		count := int(hdr&0x7F) + 1
		if hdr&0x80 != 0 {
			// Run packet: one pixel payload, replicated. A 32-bit run
			// broadcasts the same four source bytes, so replication by
			// raw copy is endian-agnostic for every pixel size.
			if len(src)-si < ps {
				c.status = StatusNotEnoughData
				break
			}
			if avail := (len(dst) - di) / ps; count > avail {
				count = avail
				c.status = StatusBufferTooSmall
			}
			fillPixels(dst[di:di+count*ps], src[si:si+ps])
			si += ps
			di += count * ps
		} else {
			// Literal packet: count distinct pixels.
			n := count * ps
			if n > len(src)-si {
				n = len(src) - si
				c.status = StatusNotEnoughData
			}
			if n > len(dst)-di {
				n = (len(dst) - di) / ps * ps
				c.status = StatusBufferTooSmall
			}
			copy(dst[di:di+n], src[si:si+n])
			si += n
			di += n
		}
		if c.status != StatusOK {
			break
		}
	}
	c.finish(len(src), si, di)
	return si, di
}

// countMatchingPixels reports the length of the longest prefix of equal
// pixels in src, capped at 128.
func countMatchingPixels(src []byte, pixelSize int) int {
	total := len(src) / pixelSize
	if total > 128 {
		total = 128
	}
	first := src[:pixelSize]
	n := 1
	for ; n < total; n++ {
		if !pixelsEqual(first, src[n*pixelSize:(n+1)*pixelSize]) {
			break
		}
	}
	return n
}

// countDifferingPixels reports the length of the longest prefix of pairwise
// distinct pixels in src, capped at 128. The prefix ends just before the
// first pair of equal adjacent pixels.
func countDifferingPixels(src []byte, pixelSize int) int {
	total := len(src) / pixelSize
	if total > 128 {
		total = 128
	}
	n := 1
	for ; n < total; n++ {
		if pixelsEqual(src[(n-1)*pixelSize:n*pixelSize], src[n*pixelSize:(n+1)*pixelSize]) {
			return n - 1
		}
	}
	return n
}

func pixelsEqual(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Encode compresses src with alternating literal and run packets: a literal
// packet for the longest differing pixel prefix, then a run packet for the
// longest matching prefix, until the input is exhausted. Returns the bytes
// stored in dst.
func (c *TargaRLECodec) Encode(src, dst []byte) int {
	if !c.begin(src, dst) {
		return 0
	}
	ps := c.pixelSize
	si, di := 0, 0
	for len(src)-si >= ps {
		n := countDifferingPixels(src[si:], ps)
		if n > 0 {
			if len(dst)-di < 1+n*ps {
				c.status = StatusBufferTooSmall
				break
			}
			dst[di] = byte(n - 1)
			di++
			di += copy(dst[di:di+n*ps], src[si:si+n*ps])
			si += n * ps
		}
		if len(src)-si < ps {
			break
		}
		n = countMatchingPixels(src[si:], ps)
		if n > 1 {
			if len(dst)-di < 1+ps {
				c.status = StatusBufferTooSmall
				break
			}
			dst[di] = 0x80 | byte(n-1)
			di++
			di += copy(dst[di:di+ps], src[si:si+ps])
			si += n * ps
		}
	}
	c.finish(len(src), si, di)
	return di
}
