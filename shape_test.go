// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestReadFillStyleSolid(t *testing.T) {
	s := NewBitStream([]byte{FillSolid, 0x10, 0x20, 0x30, 0x40})
	fs, err := readFillStyle(s, 3)
	if err != nil {
		t.Fatalf("readFillStyle failed: %v", err)
	}
	want := RGBA{Red: 0x10, Green: 0x20, Blue: 0x30, Alpha: 0x40}
	if fs.Kind != FillSolid || fs.Color != want {
		t.Errorf("readFillStyle = %+v, want solid color %+v", fs, want)
	}
}

func TestReadFillStyleUnknownKind(t *testing.T) {
	s := NewBitStream([]byte{0xFE})
	if _, err := readFillStyle(s, 3); err != ErrUnknownDiscriminator {
		t.Fatalf("readFillStyle(unknown) = %v, want ErrUnknownDiscriminator", err)
	}
}

func TestReadStyleArrayCountExtendedForm(t *testing.T) {
	s := NewBitStream([]byte{0xFF, 0x00, 0x01}) // 0xFF marker -> 16-bit count = 256
	count, err := readStyleArrayCount(s)
	if err != nil {
		t.Fatalf("readStyleArrayCount failed: %v", err)
	}
	if count != 256 {
		t.Errorf("readStyleArrayCount = %d, want 256", count)
	}
}

func TestReadStyleArrayCountShortForm(t *testing.T) {
	s := NewBitStream([]byte{0x03})
	count, err := readStyleArrayCount(s)
	if err != nil {
		t.Fatalf("readStyleArrayCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("readStyleArrayCount = %d, want 3", count)
	}
}

func TestReadShapeRecordsEndTerminator(t *testing.T) {
	// A single non-edge record whose five flag bits are all clear: the
	// EndShape terminator. 8 zero bits, padded with zero bits to a byte.
	s := NewBitStream([]byte{0x00})
	shape, err := readShapeRecords(s, 1, 0, 0)
	if err != nil {
		t.Fatalf("readShapeRecords failed: %v", err)
	}
	if len(shape.Records) != 0 {
		t.Errorf("Records = %+v, want empty (immediate EndShape)", shape.Records)
	}
}

func TestReadEdgeRecordStraightGeneralLine(t *testing.T) {
	// straight=1, nbits_field=0000 (-> nbits=2), general=1,
	// dx=2 bits (01), dy=2 bits (10), padded to two bytes.
	s := NewBitStream([]byte{0x85, 0x80})
	rec, err := readEdgeRecord(s)
	if err != nil {
		t.Fatalf("readEdgeRecord failed: %v", err)
	}
	if rec.Kind != ShapeRecordStraightEdge {
		t.Fatalf("Kind = %v, want ShapeRecordStraightEdge", rec.Kind)
	}
}

func TestReadLineStyle2WithFill(t *testing.T) {
	// width=1 (LE uint16), caps/join bits all zero, hasFill=1, rest clear,
	// endCap bits zero, then a solid fill style follows (no miter limit
	// since join != miter).
	s := NewBitStream([]byte{
		0x01, 0x00, // width
		0b0000_1_000, // startCap=0,join=0,hasFill=1,noH=0,noV=0,pixelHint=0
		0b000_0_00_00, // reserved(5)=0, noClose=0, endCap(2)=0
		FillSolid, 0x01, 0x02, 0x03, 0x04,
	})
	ls, err := readLineStyle2(s, 4)
	if err != nil {
		t.Fatalf("readLineStyle2 failed: %v", err)
	}
	if !ls.HasFill {
		t.Fatalf("HasFill = false, want true")
	}
	if ls.FillType.Kind != FillSolid {
		t.Errorf("FillType.Kind = %#x, want FillSolid", ls.FillType.Kind)
	}
}
