// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// NoCompressionCodec copies bytes through unchanged. It stands in for the
// "no compression" entry of a format's scheme table so drivers can treat
// stored and compressed data uniformly.
type NoCompressionCodec struct {
	codecState
}

// NewNoCompressionCodec returns a pass-through codec.
func NewNoCompressionCodec() *NoCompressionCodec {
	return &NoCompressionCodec{}
}

// Decode copies min(len(src), len(dst)) bytes. When the destination wants
// more bytes than the source holds the status becomes StatusNotEnoughData.
func (c *NoCompressionCodec) Decode(src, dst []byte) (int, int) {
	if !c.begin(src, dst) {
		return 0, 0
	}
	n := copy(dst, src)
	if len(dst) > len(src) {
		c.status = StatusNotEnoughData
	}
	c.finish(len(src), n, n)
	return n, n
}

// Encode copies min(len(src), len(dst)) bytes.
func (c *NoCompressionCodec) Encode(src, dst []byte) int {
	if !c.begin(src, dst) {
		return 0
	}
	n := copy(dst, src)
	c.finish(len(src), n, n)
	return n
}
