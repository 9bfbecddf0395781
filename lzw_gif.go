// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// lzwTableSize is the size of the LZW code table; codes are at most 12 bits.
const lzwTableSize = 4096

// noCode marks an empty previous-code slot between a clear code and the
// first data code.
const noCode = 0xFFFF

// GIFLZWCodec decodes the LSB-first LZW variant of GIF 89a image data.
// Constructed with the initial code size announced by the image block; the
// effective code size starts one bit wider and grows up to 12 bits as the
// table fills.
type GIFLZWCodec struct {
	codecState
	initialCodeSize uint
}

// NewGIFLZWCodec returns a GIF LZW decoder for an initial code size in
// [2, 8]. Sizes outside that range put the codec into StatusInitError.
func NewGIFLZWCodec(codeSize int) *GIFLZWCodec {
	c := &GIFLZWCodec{}
	if codeSize < 2 || codeSize > 8 {
		c.status = StatusInitError
		return c
	}
	c.initialCodeSize = uint(codeSize)
	return c
}

func (c *GIFLZWCodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	var (
		prefix [lzwTableSize]uint16
		suffix [lzwTableSize]uint8
		stack  [lzwTableSize]uint8
	)
	clearCode := uint16(1) << c.initialCodeSize
	eoiCode := clearCode + 1
	codeSize := c.initialCodeSize + 1
	mask := uint16(1)<<codeSize - 1
	freeCode := clearCode + 2
	oldCode := uint16(noCode)
	maxCode := false
	var firstChar uint8

	for i := uint16(0); i < clearCode; i++ {
		suffix[i] = uint8(i)
	}

	var (
		data uint32
		bits uint
	)
	si, di := 0, 0

	for di < len(dst) {
		// Refill the accumulator from the low end; codes come out of the
		// bottom bits.
		for bits < codeSize && si < len(src) {
			data |= uint32(src[si]) << bits
			si++
			bits += 8
		}
		if bits < codeSize {
			break
		}
		code := uint16(data) & mask
		data >>= codeSize
		bits -= codeSize

		if code == eoiCode {
			break
		}
		if code == clearCode {
			codeSize = c.initialCodeSize + 1
			mask = uint16(1)<<codeSize - 1
			freeCode = clearCode + 2
			oldCode = noCode
			maxCode = false
			continue
		}
		if code > freeCode {
			c.status = StatusInvalidData
			break
		}

		if oldCode == noCode {
			firstChar = suffix[code]
			dst[di] = firstChar
			di++
			oldCode = code
			continue
		}

		inCode := code
		sp := 0
		if code == freeCode {
			// The code about to be defined: expand the previous symbol
			// plus its own first character.
			stack[sp] = firstChar
			sp++
			code = oldCode
		}
		for code > clearCode {
			if sp >= lzwTableSize-1 {
				c.status = StatusBufferOverflow
				break
			}
			stack[sp] = suffix[code]
			sp++
			code = prefix[code]
		}
		if c.status != StatusOK {
			break
		}
		firstChar = suffix[code]
		stack[sp] = firstChar
		sp++

		for sp > 0 && di < len(dst) {
			sp--
			dst[di] = stack[sp]
			di++
		}

		if !maxCode {
			prefix[freeCode] = oldCode
			suffix[freeCode] = firstChar
			if freeCode == mask {
				if codeSize < 12 {
					codeSize++
					mask = uint16(1)<<codeSize - 1
				} else {
					// Keep writing into the last free slot.
					maxCode = true
				}
			}
			if freeCode < lzwTableSize-1 {
				freeCode++
			}
		}
		oldCode = inCode
	}
	// A remaining input tail is normal: the end-of-information code is
	// usually never reached because the output fills first.
	c.finish(len(src), si, di)
	return si, di
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *GIFLZWCodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
