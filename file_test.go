// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestParseUncompressedMinimalSWF(t *testing.T) {
	// "FWS", version 1, file_length=15 (8-byte prefix + 7-byte body),
	// frame rect (nbits=0), frame_rate=0, frame_count=0, End tag.
	data := []byte{
		'F', 'W', 'S', 0x01, 15, 0x00, 0x00, 0x00,
		0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}
	f, err := NewBytes(data, &Options{})
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}
	defer f.Close()

	if err := f.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f.Version != 1 {
		t.Errorf("Version = %d, want 1", f.Version)
	}
	if len(f.Tags) != 1 || f.Tags[0].Header.Code != TagEnd {
		t.Fatalf("Tags = %+v, want a single End tag", f.Tags)
	}
}

func TestParseInvalidSignature(t *testing.T) {
	data := []byte{'X', 'X', 'X', 0x01, 0x08, 0x00, 0x00, 0x00}
	f, err := NewBytes(data, &Options{})
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}
	defer f.Close()

	if err := f.Parse(); err != ErrInvalidSignature {
		t.Fatalf("Parse signature error = %v, want ErrInvalidSignature", err)
	}
}

func TestParseUnmatchedFileLength(t *testing.T) {
	data := []byte{
		'F', 'W', 'S', 0x01, 100, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	f, err := NewBytes(data, &Options{})
	if err != nil {
		t.Fatalf("NewBytes failed: %v", err)
	}
	defer f.Close()

	if err := f.Parse(); err != ErrUnmatchedFileLength {
		t.Fatalf("Parse length error = %v, want ErrUnmatchedFileLength", err)
	}
}
