// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import (
	"io"

	"github.com/google/wuffs/lib/litonlylzma"
	"github.com/klauspost/compress/zlib"
)

// decompressZlib inflates a zlib-wrapped SWF body (signature "CWS").
// Decompression itself is delegated entirely to klauspost/compress; this
// decoder never reimplements the DEFLATE algorithm.
func decompressZlib(r io.Reader) ([]byte, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, ErrDecompressionFailed
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, ErrDecompressionFailed
	}
	return out, nil
}

// decompressLZMA inflates an LZMA-wrapped SWF body (signature "ZWS").
// The SWF container carries its own 4-byte compressed-length field
// ahead of the standard 5-byte LZMA properties, then omits the
// standard format's 8-byte uncompressed-size field entirely. This
// re-synthesizes the 13-byte header litonlylzma expects (properties +
// uncompressed size) from the caller-supplied properties bytes and the
// file's own declared uncompressed size, then hands off the compressed
// payload unchanged.
//
// litonlylzma implements only Literal Only LZMA, the no-match subset of
// the format: it returns ErrUnsupportedLZMAData (surfaced here as
// ErrDecompressionFailed) the moment the bitstream contains an actual
// Lempel-Ziv match, which ordinary LZMA encoders emit constantly. A real
// ZWS body compressed by a general-purpose LZMA encoder will therefore
// almost always fail to decompress through this path; see DESIGN.md's
// "Open Question decisions" entry on decompressLZMA.
func decompressLZMA(properties [5]byte, compressed []byte, uncompressedSize uint32) ([]byte, error) {
	size := []byte{
		byte(uncompressedSize),
		byte(uncompressedSize >> 8),
		byte(uncompressedSize >> 16),
		byte(uncompressedSize >> 24),
		0, 0, 0, 0,
	}
	src := make([]byte, 0, len(properties)+len(size)+len(compressed))
	src = append(src, properties[:]...)
	src = append(src, size...)
	src = append(src, compressed...)

	dst, _, err := litonlylzma.FileFormatLZMA.Decode(nil, src)
	if err != nil {
		return nil, ErrDecompressionFailed
	}
	return dst, nil
}
