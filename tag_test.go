// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestReadTagHeaderShortForm(t *testing.T) {
	// 0x40 0x00 little-endian -> raw 0x0040 -> code=1 (ShowFrame), length=0.
	s := NewBitStream([]byte{0x40, 0x00})
	h, err := readTagHeader(s)
	if err != nil {
		t.Fatalf("readTagHeader failed: %v", err)
	}
	want := TagHeader{Code: TagShowFrame, Length: 0}
	if h != want {
		t.Errorf("readTagHeader = %+v, want %+v", h, want)
	}
}

func TestReadTagHeaderLongForm(t *testing.T) {
	s := NewBitStream([]byte{0x3F, 0x00, 0x00, 0x01, 0x00, 0x00})
	h, err := readTagHeader(s)
	if err != nil {
		t.Fatalf("readTagHeader failed: %v", err)
	}
	want := TagHeader{Code: 0, Length: 256}
	if h != want {
		t.Errorf("readTagHeader = %+v, want %+v", h, want)
	}
}

func TestReadTagUnknownCodeSkippedByLength(t *testing.T) {
	// Short-form header with an unregistered code (999) and a 3-byte
	// payload, followed by a trailing marker byte that must remain
	// untouched by the skip.
	raw := uint16(999)<<6 | 3
	s := NewBitStream([]byte{
		byte(raw), byte(raw >> 8),
		0xAA, 0xBB, 0xCC,
		0xFF,
	})
	tag, err := readTag(s, 6)
	if err != nil {
		t.Fatalf("readTag failed: %v", err)
	}
	if tag.Header.Code != 999 || tag.Header.Length != 3 {
		t.Fatalf("readTag header = %+v, want code=999 length=3", tag.Header)
	}
	marker, err := s.ReadUint8()
	if err != nil || marker != 0xFF {
		t.Errorf("trailing marker = %#x, err=%v; want 0xFF", marker, err)
	}
}
