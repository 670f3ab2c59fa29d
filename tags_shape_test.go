// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestDecodeDefineShapeTagV1Empty(t *testing.T) {
	s := NewBitStream([]byte{
		0x01, 0x00, // character_id = 1
		0x00,       // bounds: nbits=0
		0x00,       // fill style count = 0
		0x00,       // line style count = 0
		0x00,       // fillBits(4)=0, lineBits(4)=0
		0x00,       // shape records: immediate EndShape
	})
	decoder := decodeDefineShapeTag(1)
	var dst Tag
	if err := decoder(s, TagHeader{}, &dst, 6); err != nil {
		t.Fatalf("decodeDefineShapeTag(1) failed: %v", err)
	}
	if dst.Shape == nil {
		t.Fatal("Shape not populated")
	}
	if dst.Shape.CharacterID != 1 || dst.Shape.Version != 1 {
		t.Errorf("Shape = %+v, want CharacterID=1 Version=1", dst.Shape)
	}
	if len(dst.Shape.Shapes.FillStyles) != 0 {
		t.Errorf("FillStyles = %+v, want empty", dst.Shape.Shapes.FillStyles)
	}
}

func TestDecodeDefineShapeTagV4ReadsEdgeBoundsAndFlags(t *testing.T) {
	s := NewBitStream([]byte{
		0x02, 0x00, // character_id = 2
		0x00,       // bounds: nbits=0
		0x00,       // edge_bounds: nbits=0
		0b00000_1_0_1, // reserved(5)=0, nonScaling=1, scaling=0, fillWinding=1
		0x00,       // fill style count = 0
		0x00,       // line style count = 0
		0x00,       // fillBits/lineBits = 0
		0x00,       // shape records: immediate EndShape
	})
	decoder := decodeDefineShapeTag(4)
	var dst Tag
	if err := decoder(s, TagHeader{}, &dst, 6); err != nil {
		t.Fatalf("decodeDefineShapeTag(4) failed: %v", err)
	}
	if !dst.Shape.UsesNonScalingStrokes || !dst.Shape.UsesFillWindingRule {
		t.Errorf("Shape = %+v, want NonScalingStrokes and FillWindingRule set", dst.Shape)
	}
	if dst.Shape.UsesScalingStrokes {
		t.Errorf("UsesScalingStrokes = true, want false")
	}
}

func TestDecodeDefineMorphShapeTagV1(t *testing.T) {
	s := NewBitStream([]byte{
		0x03, 0x00, // character_id = 3
		0x00,       // start bounds: nbits=0
		0x00,       // end bounds: nbits=0
		0x00, 0x00, 0x00, 0x00, // offset to end edges (unused)
		0x00,       // fill style count = 0
		0x00,       // line style count = 0
		0x00,       // startFillBits/startLineBits = 0
		0x00,       // start shape: immediate EndShape
		0x00,       // endFillBits/endLineBits = 0
		0x00,       // end shape: immediate EndShape
	})
	decoder := decodeDefineMorphShapeTag(1)
	var dst Tag
	if err := decoder(s, TagHeader{}, &dst, 6); err != nil {
		t.Fatalf("decodeDefineMorphShapeTag(1) failed: %v", err)
	}
	if dst.MorphShape == nil || dst.MorphShape.CharacterID != 3 {
		t.Fatalf("MorphShape = %+v, want CharacterID=3", dst.MorphShape)
	}
}
