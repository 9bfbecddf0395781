// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// RLARLECodec decodes the run-length scheme of Wavefront RLA images. The
// header byte is signed: n >= 0 repeats the next byte n+1 times, n < 0
// copies the next -n bytes literally.
type RLARLECodec struct {
	codecState
}

// NewRLARLECodec returns an RLA RLE decoder.
func NewRLARLECodec() *RLARLECodec {
	return &RLARLECodec{}
}

func (c *RLARLECodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	si, di := 0, 0
	for si < len(src) && di < len(dst) {
		n := int(int8(src[si]))
		si++
		if n >= 0 {
			count := n + 1
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
			count := -n
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
func (c *RLARLECodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
