// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// PackbitsCodec decodes the Apple Packbits run-length scheme used by PSD
// layers and Amiga ILBM bodies. The header byte is signed: n >= 0 copies the
// next n+1 bytes literally, n < 0 repeats the next byte -n+1 times, and
// n == -128 is a no-op.
type PackbitsCodec struct {
	codecState
}

// NewPackbitsCodec returns a Packbits decoder.
func NewPackbitsCodec() *PackbitsCodec {
	return &PackbitsCodec{}
}

// UpdatesSource reports true: PSD drivers decode channel by channel from one
// compressed region and advance the source by the consumed count.
func (c *PackbitsCodec) UpdatesSource() bool { return true }

// UpdatesDest reports true, independently of UpdatesSource.
func (c *PackbitsCodec) UpdatesDest() bool { return true }

func (c *PackbitsCodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	si, di := 0, 0
	for si < len(src) && di < len(dst) {
		n := int(int8(src[si]))
		si++
		switch {
		case n == -128:
			// no-op
		case n < 0:
			count := -n + 1
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
		default:
			count := n + 1
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
func (c *PackbitsCodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
