// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command codeccli decodes one raw compressed stream with a named codec.
// It exists for inspecting stray compressed regions ripped out of image
// files, not for decoding whole images.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Geek0x0/imagecodec"
)

func main() {
	codecName := flag.String("codec", "", "Codec: none, targa, packbits, psp, pcx, rla, cut, sgi, rgbn, rgb8, vdat, giflzw, tifflzw, lz77, thunder, g3, mh")
	size := flag.Int("size", 0, "Decompressed size in bytes (required)")
	depth := flag.Int("depth", 24, "Color depth for the targa codec")
	sample := flag.Int("sample", 8, "Sample size in bits for the sgi codec")
	codeSize := flag.Int("codesize", 8, "Initial code size for the giflzw codec")
	width := flag.Int("width", 1728, "Row width for the thunder, g3 and mh codecs")
	swap := flag.Bool("swapbits", false, "Reverse the bit order of g3/mh input bytes")
	out := flag.String("o", "", "Output file (default stdout)")
	flag.Parse()

	if flag.NArg() == 0 || *codecName == "" || *size <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: codeccli -codec name -size n [options] file")
		flag.PrintDefaults()
		os.Exit(2)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read %s: %v", flag.Arg(0), err)
	}

	codec := newCodec(strings.ToLower(*codecName), *depth, *sample, *codeSize, *width, *swap)
	codec.DecodeInit()
	defer codec.DecodeEnd()

	dst := make([]byte, *size)
	consumed, produced := codec.Decode(src, dst)
	status := codec.Status()
	fmt.Fprintf(os.Stderr, "status: %v, consumed: %d, produced: %d, input left: %d\n",
		status, consumed, produced, codec.CompressedAvailable())
	if err := status.Err(); err != nil {
		switch status {
		case imagecodec.StatusNotEnoughData, imagecodec.StatusBufferTooSmall:
			// Partial output is still worth writing.
		default:
			log.Fatalf("decode: %v", err)
		}
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(dst[:produced]); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func newCodec(name string, depth, sample, codeSize, width int, swap bool) imagecodec.Codec {
	switch name {
	case "none":
		return imagecodec.NewNoCompressionCodec()
	case "targa":
		return imagecodec.NewTargaRLECodec(depth)
	case "packbits":
		return imagecodec.NewPackbitsCodec()
	case "psp":
		return imagecodec.NewPSPRLECodec()
	case "pcx":
		return imagecodec.NewPCXRLECodec()
	case "rla":
		return imagecodec.NewRLARLECodec()
	case "cut":
		return imagecodec.NewCUTRLECodec()
	case "sgi":
		return imagecodec.NewSGIRLECodec(sample)
	case "rgbn":
		return imagecodec.NewAmigaRGBCodec(imagecodec.FormatRGBN)
	case "rgb8":
		return imagecodec.NewAmigaRGBCodec(imagecodec.FormatRGB8)
	case "vdat":
		return imagecodec.NewVDATRLECodec()
	case "giflzw":
		return imagecodec.NewGIFLZWCodec(codeSize)
	case "tifflzw":
		return imagecodec.NewTIFFLZWCodec()
	case "lz77":
		return imagecodec.NewLZ77Codec(imagecodec.LZ77Params{})
	case "thunder":
		return imagecodec.NewThunderCodec(width)
	case "g3":
		params := imagecodec.DefaultCCITTParams()
		params.Width = width
		params.SwapBits = swap
		return imagecodec.NewCCITTFax3Codec(params)
	case "mh":
		params := imagecodec.DefaultCCITTParams()
		params.Width = width
		params.SwapBits = swap
		return imagecodec.NewCCITTMHCodec(params)
	}
	log.Fatalf("unknown codec %q", name)
	return nil
}
