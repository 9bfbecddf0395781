// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecodec

// faxCode is one CCITT T.4 run-length code: the code bits (right-justified),
// the code length and the run length it stands for.
type faxCode struct {
	code   uint16
	bits   uint8
	runLen uint16
}

// White terminating codes (0-63)
var faxWhiteCodes = []faxCode{
	{0x35, 8, 0},  // 00110101
	{0x7, 6, 1},   // 000111
	{0x7, 4, 2},   // 0111
	{0x8, 4, 3},   // 1000
	{0xB, 4, 4},   // 1011
	{0xC, 4, 5},   // 1100
	{0xE, 4, 6},   // 1110
	{0xF, 4, 7},   // 1111
	{0x13, 5, 8},  // 10011
	{0x14, 5, 9},  // 10100
	{0x7, 5, 10},  // 00111
	{0x8, 5, 11},  // 01000
	{0x8, 6, 12},  // 001000
	{0x3, 6, 13},  // 000011
	{0x34, 6, 14}, // 110100
	{0x35, 6, 15}, // 110101
	{0x2A, 6, 16}, // 101010
	{0x2B, 6, 17}, // 101011
	{0x27, 7, 18}, // 0100111
	{0xC, 7, 19},  // 0001100
	{0x8, 7, 20},  // 0001000
	{0x17, 7, 21}, // 0010111
	{0x3, 7, 22},  // 0000011
	{0x4, 7, 23},  // 0000100
	{0x28, 7, 24}, // 0101000
	{0x2B, 7, 25}, // 0101011
	{0x13, 7, 26}, // 0010011
	{0x24, 7, 27}, // 0100100
	{0x18, 7, 28}, // 0011000
	{0x2, 8, 29},  // 00000010
	{0x3, 8, 30},  // 00000011
	{0x1A, 8, 31}, // 00011010
	{0x1B, 8, 32}, // 00011011
	{0x12, 8, 33}, // 00010010
	{0x13, 8, 34}, // 00010011
	{0x14, 8, 35}, // 00010100
	{0x15, 8, 36}, // 00010101
	{0x16, 8, 37}, // 00010110
	{0x17, 8, 38}, // 00010111
	{0x28, 8, 39}, // 00101000
	{0x29, 8, 40}, // 00101001
	{0x2A, 8, 41}, // 00101010
	{0x2B, 8, 42}, // 00101011
	{0x2C, 8, 43}, // 00101100
	{0x2D, 8, 44}, // 00101101
	{0x4, 8, 45},  // 00000100
	{0x5, 8, 46},  // 00000101
	{0xA, 8, 47},  // 00001010
	{0xB, 8, 48},  // 00001011
	{0x52, 8, 49}, // 01010010
	{0x53, 8, 50}, // 01010011
	{0x54, 8, 51}, // 01010100
	{0x55, 8, 52}, // 01010101
	{0x24, 8, 53}, // 00100100
	{0x25, 8, 54}, // 00100101
	{0x58, 8, 55}, // 01011000
	{0x59, 8, 56}, // 01011001
	{0x5A, 8, 57}, // 01011010
	{0x5B, 8, 58}, // 01011011
	{0x4A, 8, 59}, // 01001010
	{0x4B, 8, 60}, // 01001011
	{0x32, 8, 61}, // 00110010
	{0x33, 8, 62}, // 00110011
	{0x34, 8, 63}, // 00110100
	// Make-up codes (64, 128, ...)
	{0x1B, 5, 64},
	{0x12, 5, 128},
	{0x17, 6, 192},
	{0x37, 7, 256},
	{0x36, 8, 320},
	{0x37, 8, 384},
	{0x64, 8, 448},
	{0x65, 8, 512},
	{0x68, 8, 576},
	{0x67, 8, 640},
	{0xCC, 9, 704},
	{0xCD, 9, 768},
	{0xD2, 9, 832},
	{0xD3, 9, 896},
	{0xD4, 9, 960},
	{0xD5, 9, 1024},
	{0xD6, 9, 1088},
	{0xD7, 9, 1152},
	{0xD8, 9, 1216},
	{0xD9, 9, 1280},
	{0xDA, 9, 1344},
	{0xDB, 9, 1408},
	{0x98, 9, 1472},
	{0x99, 9, 1536},
	{0x9A, 9, 1600},
	{0x18, 6, 1664},
	{0x9B, 9, 1728},
}

// Black terminating codes (0-63)
var faxBlackCodes = []faxCode{
	{0x37, 10, 0},  // 0000110111
	{0x2, 3, 1},    // 010
	{0x3, 2, 2},    // 11
	{0x2, 2, 3},    // 10
	{0x3, 3, 4},    // 011
	{0x3, 4, 5},    // 0011
	{0x2, 4, 6},    // 0010
	{0x3, 5, 7},    // 00011
	{0x5, 6, 8},    // 000101
	{0x4, 6, 9},    // 000100
	{0x4, 7, 10},   // 0000100
	{0x5, 7, 11},   // 0000101
	{0x7, 7, 12},   // 0000111
	{0x4, 8, 13},   // 00000100
	{0x7, 8, 14},   // 00000111
	{0x18, 9, 15},  // 000011000
	{0x17, 10, 16}, // 0000010111
	{0x18, 10, 17}, // 0000011000
	{0x8, 10, 18},  // 0000001000
	{0x67, 11, 19}, // 00001100111
	{0x68, 11, 20}, // 00001101000
	{0x6C, 11, 21}, // 00001101100
	{0x37, 11, 22}, // 00000110111
	{0x28, 11, 23}, // 00000101000
	{0x17, 11, 24}, // 00000010111
	{0x18, 11, 25}, // 00000011000
	{0xCA, 12, 26}, // 000011001010
	{0xCB, 12, 27}, // 000011001011
	{0xCC, 12, 28}, // 000011001100
	{0xCD, 12, 29}, // 000011001101
	{0x68, 12, 30}, // 000001101000
	{0x69, 12, 31}, // 000001101001
	{0x6A, 12, 32}, // 000001101010
	{0x6B, 12, 33}, // 000001101011
	{0xD2, 12, 34}, // 000011010010
	{0xD3, 12, 35}, // 000011010011
	{0xD4, 12, 36}, // 000011010100
	{0xD5, 12, 37}, // 000011010101
	{0xD6, 12, 38}, // 000011010110
	{0xD7, 12, 39}, // 000011010111
	{0x6C, 12, 40}, // 000001101100
	{0x6D, 12, 41}, // 000001101101
	{0xDA, 12, 42}, // 000011011010
	{0xDB, 12, 43}, // 000011011011
	{0x54, 12, 44}, // 000001010100
	{0x55, 12, 45}, // 000001010101
	{0x56, 12, 46}, // 000001010110
	{0x57, 12, 47}, // 000001010111
	{0x64, 12, 48}, // 000001100100
	{0x65, 12, 49}, // 000001100101
	{0x52, 12, 50}, // 000001010010
	{0x53, 12, 51}, // 000001010011
	{0x24, 12, 52}, // 000000100100
	{0x37, 12, 53}, // 000000110111
	{0x38, 12, 54}, // 000000111000
	{0x27, 12, 55}, // 000000100111
	{0x28, 12, 56}, // 000000101000
	{0x58, 12, 57}, // 000001011000
	{0x59, 12, 58}, // 000001011001
	{0x2B, 12, 59}, // 000000101011
	{0x2C, 12, 60}, // 000000101100
	{0x5A, 12, 61}, // 000001011010
	{0x66, 12, 62}, // 000001100110
	{0x67, 12, 63}, // 000001100111
	// Make-up codes
	{0xF, 10, 64},
	{0xC8, 12, 128},
	{0xC9, 12, 192},
	{0x5B, 12, 256},
	{0x33, 12, 320},
	{0x34, 12, 384},
	{0x35, 12, 448},
	{0x6C, 13, 512},
	{0x6D, 13, 576},
	{0x4A, 13, 640},
	{0x4B, 13, 704},
	{0x4C, 13, 768},
	{0x4D, 13, 832},
	{0x72, 13, 896},
	{0x73, 13, 960},
	{0x74, 13, 1024},
	{0x75, 13, 1088},
	{0x76, 13, 1152},
	{0x77, 13, 1216},
	{0x52, 13, 1280},
	{0x53, 13, 1344},
	{0x54, 13, 1408},
	{0x55, 13, 1472},
	{0x5A, 13, 1536},
	{0x5B, 13, 1600},
	{0x64, 13, 1664},
	{0x65, 13, 1728},
}

// Extended make-up codes (1792-2560), shared by both colors per T.4.
var faxExtCodes = []faxCode{
	{0x8, 11, 1792},  // 00000001000
	{0xC, 11, 1856},  // 00000001100
	{0xD, 11, 1920},  // 00000001101
	{0x12, 12, 1984}, // 000000010010
	{0x13, 12, 2048}, // 000000010011
	{0x14, 12, 2112}, // 000000010100
	{0x15, 12, 2176}, // 000000010101
	{0x16, 12, 2240}, // 000000010110
	{0x17, 12, 2304}, // 000000010111
	{0x1C, 12, 2368}, // 000000011100
	{0x1D, 12, 2432}, // 000000011101
	{0x1E, 12, 2496}, // 000000011110
	{0x1F, 12, 2560}, // 000000011111
}

// faxEOL is the 12-bit end-of-line code 000000000001.
const (
	faxEOLBits = 12
	faxEOLCode = 0x1
)

// bitRevTable reverses the bit order of a byte; index i holds i with its
// bits mirrored.
var bitRevTable = [256]byte{
	0x00, 0x80, 0x40, 0xC0, 0x20, 0xA0, 0x60, 0xE0, 0x10, 0x90, 0x50, 0xD0, 0x30, 0xB0, 0x70, 0xF0,
	0x08, 0x88, 0x48, 0xC8, 0x28, 0xA8, 0x68, 0xE8, 0x18, 0x98, 0x58, 0xD8, 0x38, 0xB8, 0x78, 0xF8,
	0x04, 0x84, 0x44, 0xC4, 0x24, 0xA4, 0x64, 0xE4, 0x14, 0x94, 0x54, 0xD4, 0x34, 0xB4, 0x74, 0xF4,
	0x0C, 0x8C, 0x4C, 0xCC, 0x2C, 0xAC, 0x6C, 0xEC, 0x1C, 0x9C, 0x5C, 0xDC, 0x3C, 0xBC, 0x7C, 0xFC,
	0x02, 0x82, 0x42, 0xC2, 0x22, 0xA2, 0x62, 0xE2, 0x12, 0x92, 0x52, 0xD2, 0x32, 0xB2, 0x72, 0xF2,
	0x0A, 0x8A, 0x4A, 0xCA, 0x2A, 0xAA, 0x6A, 0xEA, 0x1A, 0x9A, 0x5A, 0xDA, 0x3A, 0xBA, 0x7A, 0xFA,
	0x06, 0x86, 0x46, 0xC6, 0x26, 0xA6, 0x66, 0xE6, 0x16, 0x96, 0x56, 0xD6, 0x36, 0xB6, 0x76, 0xF6,
	0x0E, 0x8E, 0x4E, 0xCE, 0x2E, 0xAE, 0x6E, 0xEE, 0x1E, 0x9E, 0x5E, 0xDE, 0x3E, 0xBE, 0x7E, 0xFE,
	0x01, 0x81, 0x41, 0xC1, 0x21, 0xA1, 0x61, 0xE1, 0x11, 0x91, 0x51, 0xD1, 0x31, 0xB1, 0x71, 0xF1,
	0x09, 0x89, 0x49, 0xC9, 0x29, 0xA9, 0x69, 0xE9, 0x19, 0x99, 0x59, 0xD9, 0x39, 0xB9, 0x79, 0xF9,
	0x05, 0x85, 0x45, 0xC5, 0x25, 0xA5, 0x65, 0xE5, 0x15, 0x95, 0x55, 0xD5, 0x35, 0xB5, 0x75, 0xF5,
	0x0D, 0x8D, 0x4D, 0xCD, 0x2D, 0xAD, 0x6D, 0xED, 0x1D, 0x9D, 0x5D, 0xDD, 0x3D, 0xBD, 0x7D, 0xFD,
	0x03, 0x83, 0x43, 0xC3, 0x23, 0xA3, 0x63, 0xE3, 0x13, 0x93, 0x53, 0xD3, 0x33, 0xB3, 0x73, 0xF3,
	0x0B, 0x8B, 0x4B, 0xCB, 0x2B, 0xAB, 0x6B, 0xEB, 0x1B, 0x9B, 0x5B, 0xDB, 0x3B, 0xBB, 0x7B, 0xFB,
	0x07, 0x87, 0x47, 0xC7, 0x27, 0xA7, 0x67, 0xE7, 0x17, 0x97, 0x57, 0xD7, 0x37, 0xB7, 0x77, 0xF7,
	0x0F, 0x8F, 0x4F, 0xCF, 0x2F, 0xAF, 0x6F, 0xEF, 0x1F, 0x9F, 0x5F, 0xDF, 0x3F, 0xBF, 0x7F, 0xFF,
}
