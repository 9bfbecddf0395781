// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// AmigaRGBFormat selects between the two Impulse RGB schemes stored in IFF
// RGBN and RGB8 files.
type AmigaRGBFormat int

const (
	// FormatRGBN packs a 12-bit pixel, a genlock bit and a 3-bit count
	// into one big-endian 16-bit word.
	FormatRGBN AmigaRGBFormat = iota
	// FormatRGB8 packs a 24-bit pixel, a genlock bit and a 7-bit count
	// into one big-endian 32-bit word.
	FormatRGB8
)

// AmigaRGBCodec decodes the Impulse RGBN/RGB8 scheme: each big-endian data
// word carries its own repeat count in its low bits. A zero count is
// followed by an extended count byte; a zero extended byte is followed by a
// big-endian 16-bit count. The whole data word, count bits included, is
// replicated into the destination; the driver masks the pixel out later.
type AmigaRGBCodec struct {
	codecState
	wordSize  int
	countMask uint32
}

// NewAmigaRGBCodec returns a codec for the given packed-RGB format.
func NewAmigaRGBCodec(format AmigaRGBFormat) *AmigaRGBCodec {
	c := &AmigaRGBCodec{}
	switch format {
	case FormatRGBN:
		c.wordSize = 2
		c.countMask = 0x07
	case FormatRGB8:
		c.wordSize = 4
		c.countMask = 0x7F
	default:
		c.status = StatusInitError
	}
	return c
}

func (c *AmigaRGBCodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	ws := c.wordSize
	si, di := 0, 0
	for len(src)-si >= ws && di < len(dst) {
		word := src[si : si+ws]
		var raw uint32
		for _, b := range word {
			raw = raw<<8 | uint32(b)
		}
		si += ws
		count := int(raw & c.countMask)
		if count == 0 {
			// Extended count: one byte, and if that is zero too, a
			// big-endian 16-bit count.
			if si >= len(src) {
				c.status = StatusNotEnoughData
				break
			}
			count = int(src[si])
			si++
			if count == 0 {
				if len(src)-si < 2 {
					c.status = StatusNotEnoughData
					break
				}
				count = int(src[si])<<8 | int(src[si+1])
				si += 2
			}
		}
		n := count * ws
		if n > len(dst)-di {
			n = (len(dst) - di) / ws * ws
			c.status = StatusBufferTooSmall
		}
		fillPixels(dst[di:di+n], word)
		di += n
		if c.status != StatusOK {
			break
		}
	}
	if c.status == StatusOK && di < len(dst) && si < len(src) {
		// A trailing partial word cannot form a packet.
		c.status = StatusNotEnoughData
	}
	c.finish(len(src), si, di)
	return si, di
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *AmigaRGBCodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}

// VDATRLECodec decodes the Atari ST VDAT chunk scheme found in TVPaint IFF
// files. The stream splits into a command part and a data part of big-endian
// words: a 16-bit header holds the command count plus two, the command bytes
// follow, and the data words fill the rest. Command 0 reads a word count
// from the data stream and copies that many words literally; command 1 reads
// a count and replicates the next data word; a negative command copies -n
// words literally; a command >= 2 replicates the next data word n times.
type VDATRLECodec struct {
	codecState
}

// NewVDATRLECodec returns a VDAT decoder.
func NewVDATRLECodec() *VDATRLECodec {
	return &VDATRLECodec{}
}

func (c *VDATRLECodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	if len(src) < 2 {
		c.status = StatusNotEnoughData
		c.finish(len(src), 0, 0)
		return 0, 0
	}
	cmdCount := int(uint16(src[0])<<8|uint16(src[1])) - 2
	if cmdCount < 0 || 2+cmdCount > len(src) {
		c.status = StatusInvalidData
		c.finish(len(src), 2, 0)
		return 2, 0
	}
	cmds := src[2 : 2+cmdCount]
	data := src[2+cmdCount:]
	dp, di := 0, 0

	readWord := func() ([]byte, bool) {
		if len(data)-dp < 2 {
			c.status = StatusNotEnoughData
			return nil, false
		}
		w := data[dp : dp+2]
		dp += 2
		return w, true
	}

	for _, cmd := range cmds {
		if di >= len(dst) {
			break
		}
		n := int(int8(cmd))
		switch {
		case n == 0, n == 1:
			w, ok := readWord()
			if !ok {
				break
			}
			count := int(uint16(w[0])<<8 | uint16(w[1]))
			if n == 0 {
				c.copyWords(data, &dp, dst, &di, count)
			} else {
				c.runWord(data, &dp, dst, &di, count)
			}
		case n < 0:
			c.copyWords(data, &dp, dst, &di, -n)
		default:
			// Commands of two and above replicate the next word.
			c.runWord(data, &dp, dst, &di, n)
		}
		if c.status != StatusOK {
			break
		}
	}
	consumed := 2 + cmdCount + dp
	c.finish(len(src), consumed, di)
	return consumed, di
}

func (c *VDATRLECodec) copyWords(data []byte, dp *int, dst []byte, di *int, count int) {
	n := count * 2
	if n > len(data)-*dp {
		n = (len(data) - *dp) / 2 * 2
		c.status = StatusNotEnoughData
	}
	if n > len(dst)-*di {
		n = (len(dst) - *di) / 2 * 2
		c.status = StatusBufferTooSmall
	}
	copy(dst[*di:*di+n], data[*dp:*dp+n])
	*dp += n
	*di += n
}

func (c *VDATRLECodec) runWord(data []byte, dp *int, dst []byte, di *int, count int) {
	if len(data)-*dp < 2 {
		c.status = StatusNotEnoughData
		return
	}
	w := data[*dp : *dp+2]
	*dp += 2
	n := count * 2
	if n > len(dst)-*di {
		n = (len(dst) - *di) / 2 * 2
		c.status = StatusBufferTooSmall
	}
	fillWords(dst[*di:*di+n], w)
	*di += n
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *VDATRLECodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
