// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

import "fmt"

// CCITTParams configures the Group 3 and Modified Huffman fax decoders.
type CCITTParams struct {
	// TwoDimensional accepts streams tagged for mixed 1-D/2-D coding.
	// Rows whose tag bit announces a 2-D row set StatusInvalidData; only
	// one-dimensional rows are decoded.
	TwoDimensional bool
	// Uncompressed accepts the T.4 uncompressed-mode option flag for
	// driver compatibility; uncompressed segments are not decoded.
	Uncompressed bool
	// ByteAlignedEOL marks streams whose EOL codes are padded to byte
	// boundaries. The zero-tolerant EOL scanner absorbs the padding either
	// way.
	ByteAlignedEOL bool
	// SwapBits reverses the bit order within each input byte before
	// decoding.
	SwapBits bool
	// WordAligned starts each decoded row on an even byte offset.
	WordAligned bool
	// Width is the row length in pixels.
	Width int
}

// DefaultCCITTParams returns parameters for a standard 1728-pixel G3 line.
func DefaultCCITTParams() CCITTParams {
	return CCITTParams{Width: 1728}
}

// Fax state-machine node kinds.
const (
	faxStNode = iota
	faxStTerminal
	faxStMakeup
	faxStEOL
)

// faxState is one node of the run decoder. Each node transitions on one
// input bit; a missing transition marks an invalid bit sequence.
type faxState struct {
	next [2]int32 // -1 = invalid
	run  int32
	kind uint8
}

// buildFaxStates compiles a T.4 code table plus the shared extended make-up
// codes and the EOL code into a transition table. State 0 is the root;
// make-up states re-enter the root to accumulate additional run length. The
// node reached by eleven zero bits loops on further zeros, so fill bits in
// front of an EOL are absorbed.
func buildFaxStates(codes []faxCode) []faxState {
	states := []faxState{{next: [2]int32{-1, -1}}}

	alloc := func() int32 {
		states = append(states, faxState{next: [2]int32{-1, -1}})
		return int32(len(states) - 1)
	}

	insert := func(c faxCode, kind uint8) {
		s := int32(0)
		for i := int(c.bits) - 1; i >= 0; i-- {
			bit := int(c.code>>uint(i)) & 1
			if states[s].next[bit] < 0 {
				// alloc may grow the slice, so take the new index
				// before storing the transition.
				n := alloc()
				states[s].next[bit] = n
			}
			s = states[s].next[bit]
		}
		states[s].run = int32(c.runLen)
		states[s].kind = kind
	}

	kindOf := func(run uint16) uint8 {
		if run >= 64 {
			return faxStMakeup
		}
		return faxStTerminal
	}
	for _, c := range codes {
		insert(c, kindOf(c.runLen))
	}
	for _, c := range faxExtCodes {
		insert(c, faxStMakeup)
	}
	insert(faxCode{code: faxEOLCode, bits: faxEOLBits}, faxStEOL)

	// Let the eleven-zeros prefix absorb any number of fill zeros.
	s := int32(0)
	for i := 0; i < faxEOLBits-1; i++ {
		s = states[s].next[0]
	}
	states[s].next[0] = s
	return states
}

// Sentinel results of nextRun beside actual run lengths.
const (
	faxRunExhausted = -1
	faxRunEOL       = -2
	faxRunInvalid   = -3
)

// ccittDecoder holds the shared machinery of the G3 and MH codecs: the two
// run state machines, the input bit cursor and the output bit cursor.
type ccittDecoder struct {
	codecState
	params CCITTParams
	white  []faxState
	black  []faxState

	src    []byte
	bitIdx int

	dst       []byte
	di        int
	bitPos    int
	restWidth int

	eolCount  int
	exhausted bool
	scratch   []byte
}

func (d *ccittDecoder) init(params CCITTParams) {
	d.params = params
	if params.Width < 1 {
		d.status = StatusInitError
		return
	}
	d.white = buildFaxStates(faxWhiteCodes)
	d.black = buildFaxStates(faxBlackCodes)
}

// setup binds the buffers for one Decode call. The destination is cleared
// up front; white runs only advance the cursor. With SwapBits the reversed
// input goes through a scratch copy, the caller's buffer stays untouched.
func (d *ccittDecoder) setup(src, dst []byte) {
	if d.params.SwapBits {
		if cap(d.scratch) < len(src) {
			d.scratch = make([]byte, len(src))
		}
		d.scratch = d.scratch[:len(src)]
		for i, b := range src {
			d.scratch[i] = bitRevTable[b]
		}
		d.src = d.scratch
	} else {
		d.src = src
	}
	fillBytes(dst, 0)
	d.dst = dst
	d.di = 0
	d.bitPos = 0
	d.bitIdx = 0
	d.restWidth = d.params.Width
	d.eolCount = 0
	d.exhausted = false
}

func (d *ccittDecoder) nextBit() (int, bool) {
	if d.bitIdx >= len(d.src)*8 {
		return 0, false
	}
	bit := int(d.src[d.bitIdx>>3]>>(7-uint(d.bitIdx&7))) & 1
	d.bitIdx++
	return bit, true
}

// alignInput moves the input cursor to the next byte boundary.
func (d *ccittDecoder) alignInput() {
	d.bitIdx = (d.bitIdx + 7) &^ 7
	if d.params.WordAligned && (d.bitIdx>>3)&1 == 1 {
		d.bitIdx += 8
	}
}

// nextRun executes the state machine on the input bit stream and returns a
// run length, or one of the faxRun sentinels. Make-up codes accumulate and
// re-enter the root until a terminating code arrives. An input that ends
// mid-code yields faxRunExhausted regardless of accumulated make-ups.
func (d *ccittDecoder) nextRun(states []faxState) int {
	total := 0
	s := int32(0)
	for {
		bit, ok := d.nextBit()
		if !ok {
			return faxRunExhausted
		}
		next := states[s].next[bit]
		if next < 0 {
			return faxRunInvalid
		}
		switch states[next].kind {
		case faxStTerminal:
			return total + int(states[next].run)
		case faxStMakeup:
			total += int(states[next].run)
			s = 0
		case faxStEOL:
			return faxRunEOL
		default:
			s = next
		}
	}
}

// fillRun advances the output bit cursor by length bits, setting them for
// black runs. A run longer than the remaining row width is clamped; the
// standard calls such input unrecoverable, the decoder carries on with the
// truncated row. Reports whether the row is now fully written.
func (d *ccittDecoder) fillRun(length int, black bool) bool {
	if length > d.restWidth {
		length = d.restWidth
	}
	d.restWidth -= length

	if black && length > 0 {
		idx, pos, rem := d.di, d.bitPos, length
		if pos > 0 {
			n := 8 - pos
			if n > rem {
				n = rem
			}
			if idx < len(d.dst) {
				d.dst[idx] |= byte(0xFF>>uint(pos)) &^ byte(0xFF>>uint(pos+n))
			}
			rem -= n
			if pos+n == 8 {
				idx++
			}
		}
		if whole := rem >> 3; whole > 0 {
			end := idx + whole
			if end > len(d.dst) {
				end = len(d.dst)
			}
			if idx < end {
				fillBytes(d.dst[idx:end], 0xFF)
			}
			idx += whole
			rem &= 7
		}
		if rem > 0 && idx < len(d.dst) {
			d.dst[idx] |= ^byte(0xFF >> uint(rem))
		}
	}

	total := d.bitPos + length
	d.di += total >> 3
	d.bitPos = total & 7

	if d.restWidth == 0 {
		if d.bitPos != 0 {
			d.di++
			d.bitPos = 0
		}
		if d.params.WordAligned && d.di&1 == 1 {
			d.di++
		}
		d.restWidth = d.params.Width
		return true
	}
	return false
}

// lineEnd pads a prematurely ended row out with white so the next row
// starts at its proper offset. Rows that never produced a run are left
// alone; consecutive EOLs (the return-to-control sequence) must not emit
// blank rows.
func (d *ccittDecoder) lineEnd() {
	if d.restWidth < d.params.Width {
		d.fillRun(d.restWidth, false)
	}
}

// decodeRow alternates white and black runs, starting with white, until the
// row is complete, an EOL or invalid sequence interrupts it, or a buffer
// runs out.
func (d *ccittDecoder) decodeRow() {
	white := true
	for d.di < len(d.dst) {
		var run int
		if white {
			run = d.nextRun(d.white)
		} else {
			run = d.nextRun(d.black)
		}
		switch run {
		case faxRunExhausted:
			d.exhausted = true
			return
		case faxRunEOL:
			d.eolCount++
			d.lineEnd()
			return
		case faxRunInvalid:
			if DebugOn {
				fmt.Println("imagecodec: ccitt: invalid bit sequence, ending row")
			}
			d.lineEnd()
			return
		}
		done := d.fillRun(run, !white)
		white = !white
		if done {
			return
		}
	}
}

// syncEOL scans for eleven or more consecutive zero bits followed by a one
// bit, the G3 end-of-line marker.
func (d *ccittDecoder) syncEOL() bool {
	zeros := 0
	for {
		bit, ok := d.nextBit()
		if !ok {
			return false
		}
		if bit == 0 {
			zeros++
			continue
		}
		if zeros >= 11 {
			d.eolCount++
			return true
		}
		zeros = 0
	}
}

// CCITTFax3Codec decodes CCITT Group 3 one-dimensional fax data with EOL
// synchronization, as stored by TIFF CCITT T.4 images.
type CCITTFax3Codec struct {
	ccittDecoder
}

// NewCCITTFax3Codec returns a G3 decoder. A width below one puts the codec
// into StatusInitError.
func NewCCITTFax3Codec(params CCITTParams) *CCITTFax3Codec {
	c := &CCITTFax3Codec{}
	c.ccittDecoder.init(params)
	return c
}

func (c *CCITTFax3Codec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	c.setup(src, dst)

	for c.bitIdx < len(c.src)*8 && c.di < len(c.dst) {
		if !c.syncEOL() {
			c.exhausted = true
			break
		}
		if c.params.TwoDimensional {
			tag, ok := c.nextBit()
			if !ok {
				c.exhausted = true
				break
			}
			if tag == 0 {
				// A two-dimensionally coded row; not decodable here.
				c.status = StatusInvalidData
				break
			}
		}
		c.decodeRow()
		if c.status != StatusOK || c.exhausted {
			break
		}
	}

	consumed := (c.bitIdx + 7) >> 3
	if consumed > len(src) {
		consumed = len(src)
	}
	produced := c.di
	if produced > len(dst) {
		produced = len(dst)
	}
	if c.status == StatusOK && c.exhausted && produced < len(dst) {
		c.status = StatusNotEnoughData
	}
	c.finish(len(src), consumed, produced)
	return consumed, produced
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *CCITTFax3Codec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}

// EOLCount reports the number of end-of-line codes seen during the last
// Decode call.
func (d *ccittDecoder) EOLCount() int { return d.eolCount }

// CCITTMHCodec decodes Modified Huffman fax data: the same run codes as G3
// but without EOL markers. Every row starts on a fresh input byte (an even
// one when WordAligned is set).
type CCITTMHCodec struct {
	ccittDecoder
}

// NewCCITTMHCodec returns an MH decoder. A width below one puts the codec
// into StatusInitError.
func NewCCITTMHCodec(params CCITTParams) *CCITTMHCodec {
	c := &CCITTMHCodec{}
	c.ccittDecoder.init(params)
	return c
}

func (c *CCITTMHCodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	c.setup(src, dst)

	for c.bitIdx < len(c.src)*8 && c.di < len(c.dst) {
		c.decodeRow()
		if c.status != StatusOK || c.exhausted {
			break
		}
		c.alignInput()
	}

	consumed := (c.bitIdx + 7) >> 3
	if consumed > len(src) {
		consumed = len(src)
	}
	produced := c.di
	if produced > len(dst) {
		produced = len(dst)
	}
	if c.status == StatusOK && c.exhausted && produced < len(dst) {
		c.status = StatusNotEnoughData
	}
	c.finish(len(src), consumed, produced)
	return consumed, produced
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *CCITTMHCodec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
