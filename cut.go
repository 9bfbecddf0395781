// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// CUTRLECodec decodes the run-length scheme of Dr. Halo CUT images. A header
// byte with the high bit set repeats the next byte (header & 0x7F) times, a
// header with the high bit clear copies (header & 0x7F) literal bytes, and a
// zero header terminates the stream early.
type CUTRLECodec struct {
	codecState
}

// NewCUTRLECodec returns a CUT RLE decoder.
func NewCUTRLECodec() *CUTRLECodec {
	return &CUTRLECodec{}
}

func (c *CUTRLECodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	si, di := 0, 0
	for si < len(src) && di < len(dst) {
		hdr := src[si]
		si++
		if hdr == 0 {
			// Zero header ends the stream. Residual destination space is
			// not reported; the line simply stays shorter.
			break
		}
		count := int(hdr & 0x7F)
		if hdr&0x80 != 0 {
			if si >= len(src) {
				c.status = StatusNotEnoughData
				break
			}
			b := src[si]
			si++
			if count > len(dst)-di {
				count = len(dst) - di
				c.status = StatusBufferTooSmall
			}
			fillBytes(dst[di:di+count], b)
			di += count
		} else {
			if count > len(src)-si {
				count = len(src) - si
				c.status = StatusNotEnoughData
			}
			if count > len(dst)-di {
				count = len(dst) - di
				c.status = StatusBufferTooSmall
			}
			copy(dst[di:di+count], src[si:si+count])
			si += count
			di += count
		}
		if c.status != StatusOK {
			break
		}
	}
	c.finish(len(src), si, di)
	return si, di
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *CUTRLECodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
