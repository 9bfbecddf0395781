// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

import (
	"bytes"
	"testing"
)

// lsbWriter packs variable-width codes the way a GIF encoder does:
// least-significant bit first.
type lsbWriter struct {
	out  []byte
	data uint32
	bits uint
}

func (w *lsbWriter) write(code uint16, width uint) {
	w.data |= uint32(code) << w.bits
	w.bits += width
	for w.bits >= 8 {
		w.out = append(w.out, byte(w.data))
		w.data >>= 8
		w.bits -= 8
	}
}

func (w *lsbWriter) flush() []byte {
	if w.bits > 0 {
		w.out = append(w.out, byte(w.data))
		w.data = 0
		w.bits = 0
	}
	return w.out
}

// msbWriter packs variable-width codes the way a TIFF LZW encoder does:
// most-significant bit first.
type msbWriter struct {
	out  []byte
	data uint32
	bits uint
}

func (w *msbWriter) write(code uint16, width uint) {
	w.data |= uint32(code) << (32 - width - w.bits)
	w.bits += width
	for w.bits >= 8 {
		w.out = append(w.out, byte(w.data>>24))
		w.data <<= 8
		w.bits -= 8
	}
}

func (w *msbWriter) flush() []byte {
	if w.bits > 0 {
		w.out = append(w.out, byte(w.data>>24))
		w.data = 0
		w.bits = 0
	}
	return w.out
}

func TestGIFLZWDecodeBasic(t *testing.T) {
	// Initial code size 2: clear=4, EOI=5, codes are 3 bits wide.
	var w lsbWriter
	w.write(4, 3) // clear
	w.write(0, 3) // A
	w.write(1, 3) // B
	w.write(5, 3) // EOI
	src := w.flush()

	c := NewGIFLZWCodec(2)
	dst := make([]byte, 2)
	consumed, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if produced != 2 || !bytes.Equal(dst, []byte{0, 1}) {
		t.Errorf("output: expected [0 1], got % X", dst[:produced])
	}
	if consumed+c.CompressedAvailable() != len(src) {
		t.Errorf("counter law violated")
	}
}

func TestGIFLZWDecodeKwKwK(t *testing.T) {
	// clear, 0, 6 decodes to A AA: code 6 is the code being defined.
	var w lsbWriter
	w.write(4, 3)
	w.write(0, 3)
	w.write(6, 3)
	w.write(5, 3)
	src := w.flush()

	c := NewGIFLZWCodec(2)
	dst := make([]byte, 3)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if !bytes.Equal(dst[:produced], []byte{0, 0, 0}) {
		t.Errorf("output: expected [0 0 0], got % X", dst[:produced])
	}
}

func TestGIFLZWDecodeMidStreamClear(t *testing.T) {
	var w lsbWriter
	w.write(4, 3) // clear
	w.write(1, 3)
	w.write(2, 3)
	w.write(4, 3) // clear again
	w.write(3, 3)
	w.write(5, 3) // EOI
	src := w.flush()

	c := NewGIFLZWCodec(2)
	dst := make([]byte, 3)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if !bytes.Equal(dst[:produced], []byte{1, 2, 3}) {
		t.Errorf("output: expected [1 2 3], got % X", dst[:produced])
	}
}

func TestGIFLZWInvalidCode(t *testing.T) {
	// Code 7 is past the first free slot right after a clear.
	var w lsbWriter
	w.write(4, 3)
	w.write(0, 3)
	w.write(7, 3)
	src := w.flush()

	c := NewGIFLZWCodec(2)
	dst := make([]byte, 8)
	c.Decode(src, dst)
	if c.Status() != StatusInvalidData {
		t.Fatalf("status: expected invalid input, got %v", c.Status())
	}
}

func TestGIFLZWOutputFillsFirst(t *testing.T) {
	// The EOI code is typically never reached; a leftover input tail is a
	// normal exit.
	var w lsbWriter
	w.write(4, 3)
	w.write(0, 3)
	w.write(1, 3)
	w.write(2, 3)
	w.write(5, 3)
	src := w.flush()

	c := NewGIFLZWCodec(2)
	dst := make([]byte, 2)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if produced != 2 || !bytes.Equal(dst, []byte{0, 1}) {
		t.Errorf("output: expected [0 1], got % X", dst[:produced])
	}
}

func TestGIFLZWInitError(t *testing.T) {
	for _, size := range []int{1, 9, 0, -3} {
		c := NewGIFLZWCodec(size)
		if c.Status() != StatusInitError {
			t.Errorf("code size %d: expected init error, got %v", size, c.Status())
		}
	}
}

func TestGIFLZWDeterminism(t *testing.T) {
	// Keep every code three bits wide by clearing before the table can
	// force a width change.
	var w lsbWriter
	for i := 0; i < 20; i++ {
		w.write(4, 3)
		w.write(uint16(i%4), 3)
		w.write(uint16((i+1)%4), 3)
	}
	w.write(5, 3)
	src := w.flush()

	c := NewGIFLZWCodec(2)
	first := make([]byte, 40)
	c.Decode(src, first)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	for run := 0; run < 3; run++ {
		again := make([]byte, 40)
		c.Decode(src, again)
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d: outputs differ", run)
		}
	}
}

func TestTIFFLZWDecodeBasic(t *testing.T) {
	var w msbWriter
	w.write(tiffLZWClearCode, 9)
	w.write('A', 9)
	w.write('B', 9)
	w.write(tiffLZWEOICode, 9)
	src := w.flush()

	c := NewTIFFLZWCodec()
	dst := make([]byte, 2)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if !bytes.Equal(dst[:produced], []byte("AB")) {
		t.Errorf("output: expected AB, got % X", dst[:produced])
	}
}

func TestTIFFLZWDecodeWithTableCodes(t *testing.T) {
	// clear A B 258 decodes to ABAB: code 258 was defined as "AB".
	var w msbWriter
	w.write(tiffLZWClearCode, 9)
	w.write('A', 9)
	w.write('B', 9)
	w.write(258, 9)
	w.write(tiffLZWEOICode, 9)
	src := w.flush()

	c := NewTIFFLZWCodec()
	dst := make([]byte, 4)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if !bytes.Equal(dst[:produced], []byte("ABAB")) {
		t.Errorf("output: expected ABAB, got %q", dst[:produced])
	}
}

func TestTIFFLZWInvalidCode(t *testing.T) {
	var w msbWriter
	w.write(tiffLZWClearCode, 9)
	w.write('A', 9)
	w.write(300, 9) // far past the free slot
	src := w.flush()

	c := NewTIFFLZWCodec()
	dst := make([]byte, 8)
	c.Decode(src, dst)
	if c.Status() != StatusInvalidData {
		t.Fatalf("status: expected invalid input, got %v", c.Status())
	}
}

func TestTIFFLZWMidStreamClear(t *testing.T) {
	var w msbWriter
	w.write(tiffLZWClearCode, 9)
	w.write('A', 9)
	w.write('B', 9)
	w.write(tiffLZWClearCode, 9)
	w.write('C', 9)
	w.write(tiffLZWEOICode, 9)
	src := w.flush()

	c := NewTIFFLZWCodec()
	dst := make([]byte, 3)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	if !bytes.Equal(dst[:produced], []byte("ABC")) {
		t.Errorf("output: expected ABC, got %q", dst[:produced])
	}
}
