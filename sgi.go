// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// SGIRLECodec decodes the run-length scheme of SGI (.rgb/.bw) images. The
// header carries a count in its low seven bits; a set high bit marks a
// literal group, a clear high bit a run, and a zero count ends the stream.
// With 16-bit samples every unit, the header included, is a big-endian word.
type SGIRLECodec struct {
	codecState
	sampleSize int // bytes per sample, 1 or 2
}

// NewSGIRLECodec returns an SGI RLE codec for the given sample size in bits.
// Sizes other than 8 and 16 put the codec into StatusInitError.
func NewSGIRLECodec(sampleSize int) *SGIRLECodec {
	c := &SGIRLECodec{}
	switch sampleSize {
	case 8:
		c.sampleSize = 1
	case 16:
		c.sampleSize = 2
	default:
		c.status = StatusInitError
	}
	return c
}

func (c *SGIRLECodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	if c.sampleSize == 1 {
		return c.decode8(src, dst)
	}
	return c.decode16(src, dst)
}

func (c *SGIRLECodec) decode8(src, dst []byte) (int, int) {
	si, di := 0, 0
	for si < len(src) && di < len(dst) {
		hdr := src[si]
		si++
		count := int(hdr & 0x7F)
		if count == 0 {
			break
		}
		if hdr&0x80 != 0 {
			// literal
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
		} else {
			// run
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
		}
		if c.status != StatusOK {
			break
		}
	}
	c.finish(len(src), si, di)
	return si, di
}

func (c *SGIRLECodec) decode16(src, dst []byte) (int, int) {
	si, di := 0, 0
	for di < len(dst) {
		if len(src)-si < 2 {
			if si < len(src) {
				// A lone trailing byte cannot form a header word.
				c.status = StatusNotEnoughData
			}
			break
		}
		hdr := uint16(src[si])<<8 | uint16(src[si+1])
		si += 2
		count := int(hdr & 0x7F)
		if count == 0 {
			break
		}
		if hdr&0x80 != 0 {
			// literal, count words
			n := count * 2
			if n > len(src)-si {
				n = (len(src) - si) / 2 * 2
				c.status = StatusNotEnoughData
			}
			if n > len(dst)-di {
				n = (len(dst) - di) / 2 * 2
				c.status = StatusBufferTooSmall
			}
			copy(dst[di:di+n], src[si:si+n])
			si += n
			di += n
		} else {
			// run of one word
			if len(src)-si < 2 {
				c.status = StatusNotEnoughData
				break
			}
			word := src[si : si+2]
			si += 2
			n := count * 2
			if n > len(dst)-di {
				n = (len(dst) - di) / 2 * 2
				c.status = StatusBufferTooSmall
			}
			fillWords(dst[di:di+n], word)
			di += n
		}
		if c.status != StatusOK {
			break
		}
	}
	c.finish(len(src), si, di)
	return si, di
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *SGIRLECodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
