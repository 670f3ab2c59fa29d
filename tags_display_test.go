// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestDecodePlaceObjectTagNoTrailingColorTransform(t *testing.T) {
	// PlaceObject (tag 4) with a declared length of exactly
	// character_id(2) + depth(2) + matrix(1), no trailing ColorTransform,
	// immediately followed by a ShowFrame tag. A decoder that infers
	// ColorTransform presence from whole-stream remaining bits (rather
	// than this tag's own declared length) would misread ShowFrame's
	// header bytes as color-transform data.
	s := NewBitStream([]byte{
		0x05, 0x01, // tag header: code=4 (PlaceObject), length=5
		0x00, 0x00, // character_id = 0
		0x00, 0x00, // depth = 0
		0x00, // matrix: all flags clear
		0x40, 0x00, // next tag header: code=1 (ShowFrame), length=0
	})
	tag, err := readTag(s, 6)
	if err != nil {
		t.Fatalf("readTag(PlaceObject) failed: %v", err)
	}
	if tag.PlaceObject == nil {
		t.Fatal("PlaceObject not populated")
	}
	if tag.PlaceObject.ColorTransform != nil {
		t.Errorf("ColorTransform = %+v, want nil (no bytes left in this tag's body)", tag.PlaceObject.ColorTransform)
	}

	next, err := readTag(s, 6)
	if err != nil {
		t.Fatalf("readTag(ShowFrame) failed: %v", err)
	}
	if next.Header.Code != TagShowFrame {
		t.Fatalf("next tag code = %d, want TagShowFrame (stream desynced by PlaceObject decode)", next.Header.Code)
	}
}

func TestDecodePlaceObjectTagWithTrailingColorTransform(t *testing.T) {
	// A declared length of 6 that includes one trailing RGB-form
	// ColorTransform byte after the 5 fixed body bytes: hasAdd=0,
	// hasMult=0, nbits=0, padded to the byte, matching
	// readColorTransform(s, false).
	s := NewBitStream([]byte{
		0x06, 0x01, // tag header: code=4 (PlaceObject), length=6
		0x00, 0x00, // character_id = 0
		0x00, 0x00, // depth = 0
		0x00, // matrix: all flags clear
		0x00, // color transform: hasAdd=0, hasMult=0, nbits=0
	})
	tag, err := readTag(s, 6)
	if err != nil {
		t.Fatalf("readTag(PlaceObject) failed: %v", err)
	}
	if tag.PlaceObject == nil || tag.PlaceObject.ColorTransform == nil {
		t.Fatalf("PlaceObject = %+v, want ColorTransform populated", tag.PlaceObject)
	}
}

func TestDecodePlaceObject2TagMinimal(t *testing.T) {
	s := NewBitStream([]byte{
		0x00,       // all flags clear
		0x05, 0x00, // depth = 5
	})
	var dst Tag
	if err := decodePlaceObject2Tag(s, TagHeader{}, &dst, 6); err != nil {
		t.Fatalf("decodePlaceObject2Tag failed: %v", err)
	}
	if dst.PlaceObject2 == nil {
		t.Fatal("PlaceObject2 not populated")
	}
	if dst.PlaceObject2.Depth != 5 {
		t.Errorf("Depth = %d, want 5", dst.PlaceObject2.Depth)
	}
	if dst.PlaceObject2.Matrix != nil {
		t.Errorf("Matrix = %+v, want nil (HasMatrix clear)", dst.PlaceObject2.Matrix)
	}
}

func TestDecodeRemoveObject2Tag(t *testing.T) {
	s := NewBitStream([]byte{0x07, 0x00})
	var dst Tag
	if err := decodeRemoveObject2Tag(s, TagHeader{}, &dst, 6); err != nil {
		t.Fatalf("decodeRemoveObject2Tag failed: %v", err)
	}
	if dst.RemoveObject2 == nil || dst.RemoveObject2.Depth != 7 {
		t.Fatalf("RemoveObject2 = %+v, want Depth=7", dst.RemoveObject2)
	}
}

func TestReadClipActionsVersion6WidthAndTermination(t *testing.T) {
	s := NewBitStream([]byte{
		0x00, 0x00, // reserved
		0x01, 0x00, 0x00, 0x00, // all_event_flags (32-bit)
		0x01, 0x00, 0x00, 0x00, // record 1: event_flags (32-bit)
		0x02, 0x00, 0x00, 0x00, // record 1: action_record_size = 2
		0x06, 0x00, // ActionPlay, ActionEnd
		0x00, 0x00, 0x00, 0x00, // terminating zero flags
	})
	ca, err := readClipActions(s, 6)
	if err != nil {
		t.Fatalf("readClipActions failed: %v", err)
	}
	if ca.AllEventFlags != 1 {
		t.Errorf("AllEventFlags = %d, want 1", ca.AllEventFlags)
	}
	if len(ca.Records) != 1 {
		t.Fatalf("Records = %+v, want 1 entry", ca.Records)
	}
	if len(ca.Records[0].Actions) != 1 || ca.Records[0].Actions[0].Code != 0x06 {
		t.Errorf("Records[0].Actions = %+v, want single ActionPlay", ca.Records[0].Actions)
	}
}

func TestReadClipEventFlagsWidthGating(t *testing.T) {
	s5 := NewBitStream([]byte{0x01, 0x00})
	flags5, err := readClipEventFlags(s5, 5)
	if err != nil || flags5 != 1 {
		t.Fatalf("readClipEventFlags(v5) = %d, err=%v; want 1", flags5, err)
	}
	if s5.BytePosition() != 2 {
		t.Errorf("BytePosition after v5 read = %d, want 2 (16-bit width)", s5.BytePosition())
	}

	s6 := NewBitStream([]byte{0x01, 0x00, 0x00, 0x00})
	flags6, err := readClipEventFlags(s6, 6)
	if err != nil || flags6 != 1 {
		t.Fatalf("readClipEventFlags(v6) = %d, err=%v; want 1", flags6, err)
	}
	if s6.BytePosition() != 4 {
		t.Errorf("BytePosition after v6 read = %d, want 4 (32-bit width)", s6.BytePosition())
	}
}
