// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// This file documents and supports the dispatch pattern repeated by every
// tagged-record taxonomy in this package (SWF tags, AVM1 actions,
// multiname kinds, trait kinds, fill-style kinds, filter ids): a
// discriminator is read from the stream, it selects a decoder, and the
// matching decoder consumes the rest of the record from the shared
// stream. SWF tags select through tagRegistry, a map of decoder functions
// built once at package init (the teacher's funcMaps idiom); the other
// taxonomies switch on the discriminator.
//
// Unknown SWF tag and action codes are forward-compatible: their payload
// is captured raw and passed over by its declared length. skipUnknown
// below realigns the stream when a known record's decoder stopped short
// of its declared end. Multinames, traits, fill styles and filters treat
// an unknown discriminator as fatal, returning ErrUnknownDiscriminator
// from their own dispatch switch.

// skipUnknown advances the stream past length bytes of an unrecognized
// record and reports whether the stream actually had that many bytes left.
func skipUnknown(s *BitStream, length int) error {
	s.ByteAlign()
	if s.BitsRemaining() < length*8 {
		return ErrStreamExhaustion
	}
	s.MoveBytes(length)
	return nil
}
