// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "errors"

// Errors returned by the Bit Stream.
var (
	// ErrStreamExhaustion is returned when a read requests more bits or
	// bytes than remain in the buffer.
	ErrStreamExhaustion = errors.New("swf: read past end of stream")

	// ErrNotByteAligned names a failure to byte-align the cursor. No reader
	// in this package returns it: a byte-aligned read that runs out of
	// buffer after its implicit alignment step reports ErrStreamExhaustion.
	ErrNotByteAligned = errors.New("swf: cursor could not be byte-aligned")
)

// Errors returned while decoding the SWF container.
var (
	// ErrInvalidSignature is returned when the first three bytes of the
	// file are not one of FWS, CWS or ZWS.
	ErrInvalidSignature = errors.New("swf: signature is not FWS, CWS or ZWS")

	// ErrUnmatchedFileLength is returned when the header's declared
	// file_length does not equal 8 plus the length of the decompressed
	// remainder of the file.
	ErrUnmatchedFileLength = errors.New("swf: declared file length does not match decompressed size")

	// ErrDecompressionFailed wraps a failure surfaced by the zlib or LZMA
	// external collaborator.
	ErrDecompressionFailed = errors.New("swf: decompression failed")
)

// ErrUnknownDiscriminator is returned when a closed-set discriminator byte
// (ABC multiname kind, namespace kind, trait kind, method/class flag bit,
// fill-style kind, filter id) falls outside its defined range. Unknown SWF
// tag and action codes are NOT reported through this error; per §4.2 they
// are skipped by their declared length instead.
var ErrUnknownDiscriminator = errors.New("swf: unknown discriminator for a closed-set enum")
