// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// PCXRLECodec decodes the ZSoft PCX run-length scheme. A header byte whose
// top two bits are set holds a run count in its low six bits, followed by
// the byte to repeat; any other byte is a literal single byte.
type PCXRLECodec struct {
	codecState
}

// NewPCXRLECodec returns a PCX RLE decoder.
func NewPCXRLECodec() *PCXRLECodec {
	return &PCXRLECodec{}
}

func (c *PCXRLECodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	si, di := 0, 0
	for si < len(src) && di < len(dst) {
		b := src[si]
		si++
		if b&0xC0 == 0xC0 {
			count := int(b & 0x3F)
			if si >= len(src) {
				c.status = StatusNotEnoughData
				break
			}
			v := src[si]
			si++
			if count > len(dst)-di {
				count = len(dst) - di
				c.status = StatusBufferTooSmall
			}
			fillBytes(dst[di:di+count], v)
			di += count
		} else {
			dst[di] = b
			di++
		}
		if c.status != StatusOK {
			break
		}
	}
	c.finish(len(src), si, di)
	return si, di
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *PCXRLECodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
