// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagecodec implements the byte-stream compression schemes found in
// legacy raster image formats: the run-length dialects of Targa, Packbits,
// PSP, PCX, SGI, RLA, Dr. Halo CUT, Amiga RGBN/RGB8 and Atari VDAT, the GIF
// and TIFF LZW variants, a deflate bridge, the ThunderScan 4-bit codec, the
// CCITT Group 3 / Modified Huffman fax codecs and the Kodak Photo-CD planar
// Huffman decoder.
//
// Every codec consumes a bounded compressed byte slice and produces a bounded
// decompressed byte slice, reporting a detailed status. Decoders tolerate
// truncated, malformed and adversarial input without reading or writing
// outside the caller-supplied slices.
package imagecodec

import "fmt"

// DebugOn is responsible for logging messages into stdout. If problems arise
// during decoding, set it true.
var DebugOn = false

// Status describes the outcome of the last Decode or Encode call.
type Status int

const (
	// StatusUnused marks a freshly constructed codec.
	StatusUnused Status = iota
	// StatusUninitialized marks a codec whose DecodeInit has not run yet
	// although the codec requires it.
	StatusUninitialized
	// StatusInitError marks a codec constructed with invalid parameters.
	// Decode on such a codec is a no-op.
	StatusInitError
	// StatusOK means the packet stream terminated cleanly or the
	// destination was exactly filled.
	StatusOK
	// StatusNotEnoughData means the compressed stream ran out before the
	// destination was filled. Some drivers treat this as a normal
	// termination.
	StatusNotEnoughData
	// StatusBufferTooSmall means a run or literal had to be trimmed to the
	// remaining destination space. Some drivers treat this as a normal
	// termination.
	StatusBufferTooSmall
	// StatusInvalidData means the compressed stream is malformed.
	StatusInvalidData
	// StatusBufferOverflow means an internal expansion limit was hit
	// (for example the LZW expansion stack).
	StatusBufferOverflow
	// StatusInvalidBufferSize means Decode or Encode was called with an
	// empty source or destination.
	StatusInvalidBufferSize
	// StatusInternal marks a bug in the codec itself, never malformed
	// input.
	StatusInternal
)

var statusNames = map[Status]string{
	StatusUnused:            "unused",
	StatusUninitialized:     "uninitialized",
	StatusInitError:         "initialization error",
	StatusOK:                "ok",
	StatusNotEnoughData:     "not enough input",
	StatusBufferTooSmall:    "output buffer too small",
	StatusInvalidData:       "invalid input",
	StatusBufferOverflow:    "buffer overflow",
	StatusInvalidBufferSize: "invalid buffer size",
	StatusInternal:          "internal error",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Err maps a status onto the package error taxonomy. StatusOK and
// StatusUnused map to nil; StatusInitError and StatusUninitialized map to
// ErrInitFailed and ErrNotInitialized.
func (s Status) Err() error {
	switch s {
	case StatusNotEnoughData:
		return ErrNotEnoughData
	case StatusBufferTooSmall:
		return ErrBufferTooSmall
	case StatusInvalidData:
		return ErrInvalidData
	case StatusBufferOverflow:
		return ErrBufferOverflow
	case StatusInvalidBufferSize:
		return ErrInvalidBufferSize
	case StatusInitError:
		return ErrInitFailed
	case StatusUninitialized:
		return ErrNotInitialized
	case StatusInternal:
		return ErrInternal
	}
	return nil
}

// Codec is the uniform surface of all decoders and encoders in this package.
//
// A driver owns a Codec, may call DecodeInit, then invokes Decode one or more
// times and finally DecodeEnd. Decode reports how many source bytes it
// consumed and how many destination bytes it produced; the driver advances
// its own slices between calls. Encoders follow the symmetric lifecycle.
type Codec interface {
	// Decode decompresses src into dst. It never reads outside src nor
	// writes outside dst, regardless of input.
	Decode(src, dst []byte) (consumed, produced int)
	// Encode compresses src into dst and reports the bytes stored. Codecs
	// without an encoder store zero bytes.
	Encode(src, dst []byte) (stored int)

	DecodeInit()
	DecodeEnd()
	EncodeInit()
	EncodeEnd()

	// Status reports the outcome of the last Decode or Encode call.
	Status() Status
	// CompressedAvailable reports the source bytes still unread at the end
	// of the last Decode call.
	CompressedAvailable() int
	// DecompressedBytes reports the bytes written into the destination
	// during the last Decode call.
	DecompressedBytes() int

	// UpdatesSource reports whether the driver is expected to advance its
	// source slice by the consumed count between calls (resumable input).
	UpdatesSource() bool
	// UpdatesDest reports whether the driver is expected to advance its
	// destination slice by the produced count between calls.
	UpdatesDest() bool
}

// codecState carries the status and the two counters shared by every codec.
type codecState struct {
	status  Status
	availIn int
	written int
}

func (s *codecState) Status() Status           { return s.status }
func (s *codecState) CompressedAvailable() int { return s.availIn }
func (s *codecState) DecompressedBytes() int   { return s.written }
func (s *codecState) UpdatesSource() bool      { return false }
func (s *codecState) UpdatesDest() bool        { return false }

func (s *codecState) DecodeInit() { s.reset() }
func (s *codecState) DecodeEnd()  {}
func (s *codecState) EncodeInit() { s.reset() }
func (s *codecState) EncodeEnd()  {}

func (s *codecState) reset() {
	if s.status != StatusInitError {
		s.status = StatusOK
	}
	s.availIn = 0
	s.written = 0
}

// begin validates a Decode or Encode call. Empty buffers set
// StatusInvalidBufferSize. A hard error status from a previous call sticks
// until DecodeInit; the normal-termination statuses (NotEnoughData,
// BufferTooSmall) do not block further calls.
func (s *codecState) begin(src, dst []byte) bool {
	s.availIn = len(src)
	s.written = 0
	switch s.status {
	case StatusInitError, StatusUninitialized, StatusInvalidData,
		StatusBufferOverflow, StatusInternal:
		return false
	}
	if len(src) == 0 || len(dst) == 0 {
		s.status = StatusInvalidBufferSize
		return false
	}
	s.status = StatusOK
	return true
}

// finish records the counters after a Decode call.
func (s *codecState) finish(srcLen, consumed, produced int) {
	s.availIn = srcLen - consumed
	s.written = produced
}

// Fault is the payload of the panic raised by compressionFault. It marks a
// bug in a codec, never malformed input; the safe slice arithmetic used by
// the decode loops makes these paths unreachable short of a codec defect.
type Fault struct {
	Codec string
	Msg   string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("imagecodec: internal fault in %s codec: %s", f.Codec, f.Msg)
}

func compressionFault(codec, msg string) {
	panic(&Fault{Codec: codec, Msg: msg})
}
