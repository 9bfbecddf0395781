// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

import (
	"bufio"
	"io"

	"github.com/32bitkid/bitreader"
)

// pcdBlockSize is the sliding-buffer block size the accumulator refills
// from.
const pcdBlockSize = 2048

// pcdSyncPrefix marks a row header: 23 one bits. The bit stream is scanned
// until the top 24 accumulator bits match it.
const pcdSyncPrefix = 0xFFFFFE00

// pcdEntry is one Huffman table entry: the code length, the code sequence
// MSB-aligned in a 32-bit accumulator, the signed delta key and the
// length-derived match mask.
type pcdEntry struct {
	length uint8
	seq    uint32
	key    uint8
	mask   uint32
}

// PCDPlanes is the destination triple of a Photo-CD decode: one luma and
// two chroma planes. The chroma planes hold half-resolution rows; their row
// index is the luma row divided by two.
type PCDPlanes struct {
	Y  []byte
	Cb []byte
	Cr []byte
}

// PhotoCDDecoder decodes the Huffman-coded delta stream of a Kodak Photo-CD
// image sector into three planar destinations. The compressed bits come
// from the reader handed to the constructor; the three destination planes
// and the pixel dimensions arrive per call.
type PhotoCDDecoder struct {
	codecState
	br     bitreader.BitReader
	tables [][]pcdEntry

	// rangeLimit saturates delta sums: 256 zeros, the identity ramp, 256
	// times 255. Indexed with an offset of 256.
	rangeLimit [3 * 256]byte
}

// NewPhotoCDDecoder returns a Photo-CD decoder reading compressed data from
// r through a block-buffered bit reader.
func NewPhotoCDDecoder(r io.Reader) *PhotoCDDecoder {
	d := &PhotoCDDecoder{
		br: bitreader.NewReader(bufio.NewReaderSize(r, pcdBlockSize)),
	}
	for i := 0; i < 256; i++ {
		d.rangeLimit[256+i] = byte(i)
		d.rangeLimit[512+i] = 255
	}
	return d
}

// DecodeEnd drops the Huffman tables and the buffered reader.
func (d *PhotoCDDecoder) DecodeEnd() {
	d.tables = nil
	d.br = nil
	d.status = StatusUninitialized
}

// readByte pulls one byte through the bit reader.
func (d *PhotoCDDecoder) readByte() (byte, error) {
	v, err := d.br.Read32(8)
	return byte(v), err
}

// readTables reads the Huffman table set from the stream: one table, or
// three when the line width asks for the higher resolutions. Each stored
// entry is a length byte, a two-byte big-endian code sequence and a key
// byte; a length over sixteen bits marks a corrupt table and aborts the
// decode.
func (d *PhotoCDDecoder) readTables(width int) error {
	count := 1
	if width > 1536 {
		count = 3
	}
	d.tables = make([][]pcdEntry, count)
	for t := 0; t < count; t++ {
		n, err := d.readByte()
		if err != nil {
			return err
		}
		entries := make([]pcdEntry, int(n)+1)
		for i := range entries {
			length, err := d.readByte()
			if err != nil {
				return err
			}
			hi, err := d.readByte()
			if err != nil {
				return err
			}
			lo, err := d.readByte()
			if err != nil {
				return err
			}
			key, err := d.readByte()
			if err != nil {
				return err
			}
			bits := int(length) + 1
			if bits > 16 {
				return wrapCodecError("build huffman table", "photo-cd", ErrInvalidData)
			}
			entries[i] = pcdEntry{
				length: uint8(bits),
				seq:    uint32(hi)<<24 | uint32(lo)<<16,
				key:    key,
				mask:   ^uint32(1<<(32-uint(bits)) - 1),
			}
		}
		d.tables[t] = entries
	}
	return nil
}

// sync scans the bit stream for the 24-bit pattern 0x00FFF0 followed by the
// row-header prefix.
func (d *PhotoCDDecoder) sync() bool {
	for {
		v, err := d.br.Peek32(24)
		if err != nil {
			return false
		}
		if v == 0x00FFF0 {
			break
		}
		d.br.Skip(1)
	}
	for {
		v, err := d.br.Peek32(32)
		if err != nil {
			return false
		}
		if v&0xFFFFFF00 == pcdSyncPrefix {
			return true
		}
		d.br.Skip(1)
	}
}

// resync recovers from an unmatched symbol by scanning for the next
// row-header prefix.
func (d *PhotoCDDecoder) resync() bool {
	for {
		v, err := d.br.Peek32(32)
		if err != nil {
			return false
		}
		if v&0xFFFFFF00 == pcdSyncPrefix {
			return true
		}
		d.br.Skip(1)
	}
}

// DecodePlanes decodes rows into the three planes until the row index
// reaches height. Plane selectors 0, 2 and 3 address Y, Cb and Cr; the
// chroma rows are half width and half height. Returns the bytes touched
// across all planes; the outcome is reported through Status.
func (d *PhotoCDDecoder) DecodePlanes(planes PCDPlanes, width, height int) int {
	d.availIn = 0
	d.written = 0
	if width < 1 || height < 1 {
		d.status = StatusInvalidBufferSize
		return 0
	}
	if d.br == nil {
		d.status = StatusUninitialized
		return 0
	}
	d.status = StatusOK

	if d.tables == nil {
		if err := d.readTables(width); err != nil {
			if DebugOn {
				println("imagecodec: photo-cd:", err.Error())
			}
			d.status = StatusInvalidData
			return 0
		}
	}
	if !d.sync() {
		d.status = StatusNotEnoughData
		return 0
	}

	var (
		row      []byte
		rowPos   int
		rowLen   int
		table    []pcdEntry
		produced int
	)

	for {
		acc, err := d.br.Peek32(32)
		if err != nil {
			d.status = StatusNotEnoughData
			break
		}
		if acc&0xFFFFFF00 == pcdSyncPrefix {
			d.br.Skip(24)
			w, err := d.br.Read32(24)
			if err != nil {
				d.status = StatusNotEnoughData
				break
			}
			rowIdx := int(w>>11) & 0x1FFF
			plane := int(w >> 9 & 0x3)
			if rowIdx >= height {
				// Clean termination marker.
				break
			}
			switch plane {
			case 0:
				row, rowLen = planeRow(planes.Y, rowIdx, width)
				table = d.planeTable(0)
			case 2:
				row, rowLen = planeRow(planes.Cb, rowIdx>>1, width>>1)
				table = d.planeTable(1)
			case 3:
				row, rowLen = planeRow(planes.Cr, rowIdx>>1, width>>1)
				table = d.planeTable(2)
			default:
				d.status = StatusInvalidData
				d.written = produced
				return produced
			}
			rowPos = 0
			continue
		}

		matched := false
		for i := range table {
			e := &table[i]
			if acc&e.mask == e.seq&e.mask {
				if rowPos < rowLen && rowPos < len(row) {
					delta := int(int8(e.key))
					row[rowPos] = d.rangeLimit[int(row[rowPos])+delta+256]
					rowPos++
					produced++
				}
				d.br.Skip(uint(e.length))
				matched = true
				break
			}
		}
		if !matched {
			if !d.resync() {
				d.status = StatusNotEnoughData
				break
			}
		}
	}
	d.written = produced
	return produced
}

// planeTable selects the Huffman table for a plane slot, falling back to
// the single shared table at base resolutions.
func (d *PhotoCDDecoder) planeTable(slot int) []pcdEntry {
	if slot < len(d.tables) {
		return d.tables[slot]
	}
	return d.tables[0]
}

// planeRow slices one row out of a plane, clipping at the plane's end.
func planeRow(plane []byte, rowIdx, rowLen int) ([]byte, int) {
	off := rowIdx * rowLen
	if off >= len(plane) {
		return nil, 0
	}
	end := off + rowLen
	if end > len(plane) {
		end = len(plane)
	}
	return plane[off:end], rowLen
}
