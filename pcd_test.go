// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

import (
	"bytes"
	"testing"
)

// pcdStream builds a synthetic Photo-CD sector: a one-entry Huffman table
// (the single-bit code 0 with delta +1), the sync preamble, one luma row of
// four +1 symbols, and the terminating row marker.
func pcdStream(height int) []byte {
	var buf bytes.Buffer
	// table: count byte 0 means one entry; entry = length-1, sequence
	// high/low, key
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x01})
	// sync preamble
	buf.Write([]byte{0x00, 0xFF, 0xF0})
	// row marker for row 0, plane 0 (luma)
	buf.Write([]byte{0xFF, 0xFF, 0xFE, 0x00, 0x00, 0x00})
	// four zero symbol bits, zero-padded to a byte
	buf.WriteByte(0x00)
	// terminating marker: row index == height
	buf.Write([]byte{0xFF, 0xFF, 0xFE})
	row := uint32(height) << 11
	buf.Write([]byte{byte(row >> 16), byte(row >> 8), byte(row)})
	return buf.Bytes()
}

func TestPhotoCDDecodeLumaRow(t *testing.T) {
	d := NewPhotoCDDecoder(bytes.NewReader(pcdStream(1)))
	defer d.DecodeEnd()

	planes := PCDPlanes{
		Y:  make([]byte, 4),
		Cb: make([]byte, 2),
		Cr: make([]byte, 2),
	}
	produced := d.DecodePlanes(planes, 4, 1)
	if d.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", d.Status())
	}
	want := []byte{1, 1, 1, 1}
	if !bytes.Equal(planes.Y, want) {
		t.Errorf("luma row: expected % X, got % X", want, planes.Y)
	}
	if produced != 4 || d.DecompressedBytes() != 4 {
		t.Errorf("produced: expected 4, got %d (counter %d)", produced, d.DecompressedBytes())
	}
	for _, b := range planes.Cb {
		if b != 0 {
			t.Fatal("chroma plane touched by a luma row")
		}
	}
}

func TestPhotoCDRangeLimit(t *testing.T) {
	d := NewPhotoCDDecoder(bytes.NewReader(nil))
	tests := []struct {
		in   int
		want byte
	}{
		{-200, 0},
		{-1, 0},
		{0, 0},
		{1, 1},
		{200, 200},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := d.rangeLimit[tt.in+256]; got != tt.want {
			t.Errorf("rangeLimit(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestPhotoCDMalformedTable(t *testing.T) {
	// Entry length byte 0x10 decodes to seventeen bits, past the limit.
	src := []byte{0x00, 0x10, 0x00, 0x00, 0x01}
	d := NewPhotoCDDecoder(bytes.NewReader(src))
	planes := PCDPlanes{Y: make([]byte, 4), Cb: make([]byte, 2), Cr: make([]byte, 2)}
	d.DecodePlanes(planes, 4, 1)
	if d.Status() != StatusInvalidData {
		t.Fatalf("status: expected invalid input, got %v", d.Status())
	}
}

func TestPhotoCDTruncatedStream(t *testing.T) {
	full := pcdStream(1)
	d := NewPhotoCDDecoder(bytes.NewReader(full[:7]))
	planes := PCDPlanes{Y: make([]byte, 4), Cb: make([]byte, 2), Cr: make([]byte, 2)}
	d.DecodePlanes(planes, 4, 1)
	if d.Status() != StatusNotEnoughData {
		t.Fatalf("status: expected not enough input, got %v", d.Status())
	}
}

func TestPhotoCDInvalidPlane(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x01})
	buf.Write([]byte{0x00, 0xFF, 0xF0})
	// plane selector 1 is not a valid destination
	buf.Write([]byte{0xFF, 0xFF, 0xFE, 0x00, 0x02, 0x00})

	d := NewPhotoCDDecoder(bytes.NewReader(buf.Bytes()))
	planes := PCDPlanes{Y: make([]byte, 4), Cb: make([]byte, 2), Cr: make([]byte, 2)}
	d.DecodePlanes(planes, 4, 2)
	if d.Status() != StatusInvalidData {
		t.Fatalf("status: expected invalid input, got %v", d.Status())
	}
}

func TestPhotoCDRequiresDimensions(t *testing.T) {
	d := NewPhotoCDDecoder(bytes.NewReader(nil))
	d.DecodePlanes(PCDPlanes{}, 0, 4)
	if d.Status() != StatusInvalidBufferSize {
		t.Fatalf("status: expected invalid buffer size, got %v", d.Status())
	}
}
