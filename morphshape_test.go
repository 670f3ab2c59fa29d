// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestReadMorphGradientSingleStop(t *testing.T) {
	s := NewBitStream([]byte{
		0x01,                   // count = 1
		0x00, 0x10, 0x20, 0x30, 0x40, // start ratio + RGBA
		0xFF, 0x50, 0x60, 0x70, 0x80, // end ratio + RGBA
	})
	g, err := readMorphGradient(s)
	if err != nil {
		t.Fatalf("readMorphGradient failed: %v", err)
	}
	if len(g.Records) != 1 {
		t.Fatalf("Records = %+v, want 1 entry", g.Records)
	}
	r := g.Records[0]
	if r.StartRatio != 0 || r.EndRatio != 0xFF {
		t.Errorf("ratios = %d/%d, want 0/255", r.StartRatio, r.EndRatio)
	}
	if r.StartColor != (RGBA{Red: 0x10, Green: 0x20, Blue: 0x30, Alpha: 0x40}) {
		t.Errorf("StartColor = %+v", r.StartColor)
	}
}

func TestReadMorphFillStyleSolid(t *testing.T) {
	s := NewBitStream([]byte{
		FillSolid,
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
	})
	fs, err := readMorphFillStyle(s)
	if err != nil {
		t.Fatalf("readMorphFillStyle failed: %v", err)
	}
	if fs.StartColor != (RGBA{Red: 1, Green: 2, Blue: 3, Alpha: 4}) {
		t.Errorf("StartColor = %+v", fs.StartColor)
	}
	if fs.EndColor != (RGBA{Red: 5, Green: 6, Blue: 7, Alpha: 8}) {
		t.Errorf("EndColor = %+v", fs.EndColor)
	}
}

func TestReadMorphLineStyleArrayVersion1(t *testing.T) {
	s := NewBitStream([]byte{
		0x01,       // count = 1
		0x0A, 0x00, // start_width = 10
		0x14, 0x00, // end_width = 20
		0x01, 0x02, 0x03, 0x04, // start color
		0x05, 0x06, 0x07, 0x08, // end color
	})
	ls, ls2, err := readMorphLineStyleArray(s, false)
	if err != nil {
		t.Fatalf("readMorphLineStyleArray failed: %v", err)
	}
	if ls2 != nil {
		t.Fatalf("ls2 = %+v, want nil for version 1", ls2)
	}
	if len(ls) != 1 || ls[0].StartWidth != 10 || ls[0].EndWidth != 20 {
		t.Fatalf("ls = %+v, want StartWidth=10 EndWidth=20", ls)
	}
}
