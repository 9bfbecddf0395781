// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// FlushMode selects how the LZ77 bridge treats the end of the supplied
// input.
type FlushMode int

const (
	// FlushFinish expects each Decode call to carry a complete zlib
	// stream. One-shot formats (PSP) and per-strip formats (TIFF, with
	// AutoReset) use this.
	FlushFinish FlushMode = iota
	// FlushPartial allows the compressed stream to arrive split across
	// Decode calls; a dry source is not an error, the driver simply calls
	// again with the next chunk. Streaming PNG readers use this.
	FlushPartial
)

// LZ77Params configures the deflate bridge.
type LZ77Params struct {
	// FlushMode distinguishes one-shot streams from streamed ones.
	FlushMode FlushMode
	// AutoReset resets the inflate state before every Decode call. TIFF
	// stores one full zlib stream per strip and requires this; PNG does
	// not.
	AutoReset bool
}

// LZ77Codec is a thin bridge to the zlib inflate implementation of
// github.com/klauspost/compress. DecodeInit acquires the inflate stream,
// Decode feeds it compressed bytes and drains into the destination, and
// DecodeEnd releases it.
//
// The bridge must be initialized: Decode before DecodeInit is a no-op with
// StatusUninitialized.
type LZ77Codec struct {
	codecState
	params LZ77Params

	in     bytes.Reader
	zr     io.ReadCloser
	opened bool

	// FlushPartial bookkeeping: the inflate reader cannot suspend inside
	// a deflate block, so the codec retains the input seen so far and
	// replays it, skipping the bytes already delivered.
	stream   []byte
	totalOut int64
}

// NewLZ77Codec returns a deflate bridge with the given parameters.
func NewLZ77Codec(params LZ77Params) *LZ77Codec {
	c := &LZ77Codec{params: params}
	c.status = StatusUninitialized
	return c
}

// DecodeInit prepares the inflate stream. The zlib header is only read on
// the first Decode call, once compressed bytes exist.
func (c *LZ77Codec) DecodeInit() {
	c.reset()
	c.status = StatusOK
	c.opened = false
	c.stream = nil
	c.totalOut = 0
}

// DecodeEnd releases the inflate stream.
func (c *LZ77Codec) DecodeEnd() {
	if c.zr != nil {
		c.zr.Close()
		c.zr = nil
	}
	c.opened = false
	c.stream = nil
	c.status = StatusUninitialized
}

// UpdatesSource reports true; drivers advance the compressed stream by the
// consumed count between calls.
func (c *LZ77Codec) UpdatesSource() bool { return true }

// UpdatesDest reports true.
func (c *LZ77Codec) UpdatesDest() bool { return true }

func (c *LZ77Codec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	if c.params.FlushMode == FlushPartial {
		return c.decodePartial(src, dst)
	}

	c.in.Reset(src)
	if !c.opened || c.params.AutoReset {
		if err := c.open(); err != nil {
			c.status = StatusInvalidData
			consumed := len(src) - c.in.Len()
			c.finish(len(src), consumed, 0)
			return consumed, 0
		}
	}
	produced := c.drain(dst)
	consumed := len(src) - c.in.Len()
	c.finish(len(src), consumed, produced)
	return consumed, produced
}

// decodePartial appends the new chunk to the retained stream, replays the
// inflate from the start and skips the bytes already handed out. The input
// is always fully consumed; the driver never has to re-send a tail.
func (c *LZ77Codec) decodePartial(src, dst []byte) (int, int) {
	c.stream = append(c.stream, src...)
	c.in.Reset(c.stream)
	c.opened = false
	if err := c.open(); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			// Not even the zlib header is complete yet.
			c.finish(len(src), len(src), 0)
			return len(src), 0
		}
		c.status = StatusInvalidData
		c.finish(len(src), len(src), 0)
		return len(src), 0
	}
	if c.totalOut > 0 {
		if _, err := io.CopyN(io.Discard, c.zr, c.totalOut); err != nil {
			c.status = StatusInternal
			c.finish(len(src), len(src), 0)
			return len(src), 0
		}
	}
	produced := c.drain(dst)
	c.totalOut += int64(produced)
	c.finish(len(src), len(src), produced)
	return len(src), produced
}

// drain reads decompressed bytes into dst until dst is full, the stream
// ends, or the input runs dry.
func (c *LZ77Codec) drain(dst []byte) int {
	produced := 0
	for produced < len(dst) {
		n, err := c.zr.Read(dst[produced:])
		produced += n
		if err == nil {
			continue
		}
		switch err {
		case io.EOF:
			// Stream terminated cleanly.
		case io.ErrUnexpectedEOF:
			if c.params.FlushMode == FlushFinish {
				c.status = StatusNotEnoughData
			}
		default:
			if DebugOn {
				println("imagecodec: inflate:", err.Error())
			}
			c.status = StatusInvalidData
		}
		break
	}
	return produced
}

// open creates or resets the zlib reader over the current input. The
// bytes.Reader is an io.ByteReader, so inflate consumes exactly the bytes it
// needs and the consumed count stays accurate.
func (c *LZ77Codec) open() error {
	if c.zr == nil {
		zr, err := zlib.NewReader(&c.in)
		if err != nil {
			return err
		}
		c.zr = zr
	} else if err := c.zr.(zlib.Resetter).Reset(&c.in, nil); err != nil {
		return err
	}
	c.opened = true
	return nil
}

// Encode is reserved for future implementation and stores zero bytes.
func (c *LZ77Codec) Encode(src, dst []byte) int {
	c.begin(src, dst)
	return 0
}
