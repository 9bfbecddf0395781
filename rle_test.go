// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

import (
	"bytes"
	"testing"
)

func TestPackbitsDecode(t *testing.T) {
	tests := []struct {
		name       string
		src        []byte
		unpacked   int
		want       []byte
		wantStatus Status
	}{
		{
			name:       "run literal and noop",
			src:        []byte{0xFE, 0xAA, 0x02, 0x10, 0x20, 0x30, 0x80},
			unpacked:   6,
			want:       []byte{0xAA, 0xAA, 0xAA, 0x10, 0x20, 0x30},
			wantStatus: StatusOK,
		},
		{
			name:       "run trimmed to destination",
			src:        []byte{0xF9, 0x55}, // run of 8
			unpacked:   4,
			want:       []byte{0x55, 0x55, 0x55, 0x55},
			wantStatus: StatusBufferTooSmall,
		},
		{
			name:       "literal starved by source",
			src:        []byte{0x05, 0x01, 0x02},
			unpacked:   8,
			want:       []byte{0x01, 0x02},
			wantStatus: StatusNotEnoughData,
		},
		{
			name:       "run header without payload",
			src:        []byte{0xFE},
			unpacked:   4,
			want:       nil,
			wantStatus: StatusNotEnoughData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPackbitsCodec()
			dst := make([]byte, tt.unpacked)
			consumed, produced := c.Decode(tt.src, dst)
			if c.Status() != tt.wantStatus {
				t.Fatalf("status: expected %v, got %v", tt.wantStatus, c.Status())
			}
			if !bytes.Equal(dst[:produced], tt.want) {
				t.Errorf("output: expected % X, got % X", tt.want, dst[:produced])
			}
			if consumed+c.CompressedAvailable() != len(tt.src) {
				t.Errorf("counter law violated: consumed %d, available %d, packed %d",
					consumed, c.CompressedAvailable(), len(tt.src))
			}
			if produced != c.DecompressedBytes() {
				t.Errorf("DecompressedBytes: expected %d, got %d", produced, c.DecompressedBytes())
			}
		})
	}
}

func TestPackbitsResumableFlags(t *testing.T) {
	c := NewPackbitsCodec()
	if !c.UpdatesSource() {
		t.Error("expected UpdatesSource")
	}
	if !c.UpdatesDest() {
		t.Error("expected UpdatesDest")
	}
}

func TestPSPRLEDecode(t *testing.T) {
	tests := []struct {
		name       string
		src        []byte
		unpacked   int
		want       []byte
		wantStatus Status
	}{
		{
			name:       "run then literal",
			src:        []byte{0x83, 0x7F, 0x03, 0x01, 0x02, 0x03},
			unpacked:   6,
			want:       []byte{0x7F, 0x7F, 0x7F, 0x01, 0x02, 0x03},
			wantStatus: StatusOK,
		},
		{
			name:       "zero length run",
			src:        []byte{0x80, 0xEE, 0x01, 0x42},
			unpacked:   1,
			want:       []byte{0x42},
			wantStatus: StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPSPRLECodec()
			dst := make([]byte, tt.unpacked)
			_, produced := c.Decode(tt.src, dst)
			if c.Status() != tt.wantStatus {
				t.Fatalf("status: expected %v, got %v", tt.wantStatus, c.Status())
			}
			if !bytes.Equal(dst[:produced], tt.want) {
				t.Errorf("output: expected % X, got % X", tt.want, dst[:produced])
			}
		})
	}
}

func TestPCXRLEDecode(t *testing.T) {
	c := NewPCXRLECodec()
	src := []byte{0xC3, 0x55, 0x07, 0xC2, 0xAA}
	dst := make([]byte, 6)
	consumed, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	want := []byte{0x55, 0x55, 0x55, 0x07, 0xAA, 0xAA}
	if !bytes.Equal(dst, want) {
		t.Errorf("output: expected % X, got % X", want, dst)
	}
	if consumed != 5 || produced != 6 {
		t.Errorf("counters: expected (5, 6), got (%d, %d)", consumed, produced)
	}
}

func TestRLARLEDecode(t *testing.T) {
	c := NewRLARLECodec()
	// run of 3, then 3 literal bytes
	src := []byte{0x02, 0x11, 0xFD, 0x01, 0x02, 0x03}
	dst := make([]byte, 6)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	want := []byte{0x11, 0x11, 0x11, 0x01, 0x02, 0x03}
	if !bytes.Equal(dst[:produced], want) {
		t.Errorf("output: expected % X, got % X", want, dst[:produced])
	}
}

func TestCUTRLEDecode(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		unpacked int
		want     []byte
		consumed int
	}{
		{
			name:     "run literal and terminator",
			src:      []byte{0x83, 0x99, 0x02, 0x01, 0x02, 0x00, 0xEE},
			unpacked: 8,
			want:     []byte{0x99, 0x99, 0x99, 0x01, 0x02},
			consumed: 6,
		},
		{
			name:     "terminator leaves residual output permissive",
			src:      []byte{0x00},
			unpacked: 4,
			want:     nil,
			consumed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCUTRLECodec()
			dst := make([]byte, tt.unpacked)
			consumed, produced := c.Decode(tt.src, dst)
			if c.Status() != StatusOK {
				t.Fatalf("status: expected ok, got %v", c.Status())
			}
			if consumed != tt.consumed {
				t.Errorf("consumed: expected %d, got %d", tt.consumed, consumed)
			}
			if !bytes.Equal(dst[:produced], tt.want) {
				t.Errorf("output: expected % X, got % X", tt.want, dst[:produced])
			}
		})
	}
}

func TestSGIRLEDecode8(t *testing.T) {
	c := NewSGIRLECodec(8)
	src := []byte{0x83, 0x01, 0x02, 0x03, 0x02, 0xAA, 0x00}
	dst := make([]byte, 8)
	consumed, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	want := []byte{0x01, 0x02, 0x03, 0xAA, 0xAA}
	if !bytes.Equal(dst[:produced], want) {
		t.Errorf("output: expected % X, got % X", want, dst[:produced])
	}
	if consumed != 7 {
		t.Errorf("consumed: expected 7, got %d", consumed)
	}
}

func TestSGIRLEDecode16(t *testing.T) {
	c := NewSGIRLECodec(16)
	src := []byte{
		0x00, 0x82, 0x01, 0x02, 0x03, 0x04, // literal, 2 words
		0x00, 0x02, 0xBE, 0xEF, // run, 2 copies of one word
		0x00, 0x00, // terminator
	}
	dst := make([]byte, 8)
	_, produced := c.Decode(src, dst)
	if c.Status() != StatusOK {
		t.Fatalf("status: expected ok, got %v", c.Status())
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0xBE, 0xEF, 0xBE, 0xEF}
	if !bytes.Equal(dst[:produced], want) {
		t.Errorf("output: expected % X, got % X", want, dst[:produced])
	}
}

func TestSGIRLEInitError(t *testing.T) {
	c := NewSGIRLECodec(12)
	if c.Status() != StatusInitError {
		t.Fatalf("status: expected init error, got %v", c.Status())
	}
	dst := make([]byte, 4)
	consumed, produced := c.Decode([]byte{0x83, 0x01}, dst)
	if consumed != 0 || produced != 0 {
		t.Errorf("decode on broken codec: expected no-op, got (%d, %d)", consumed, produced)
	}
	if c.Status() != StatusInitError {
		t.Errorf("status after decode: expected init error, got %v", c.Status())
	}
}
