// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestReadMultinameQName(t *testing.T) {
	s := NewBitStream([]byte{0x07, 0x02, 0x05})
	m, err := readMultiname(s)
	if err != nil {
		t.Fatalf("readMultiname failed: %v", err)
	}
	want := Multiname{Kind: MultinameKindQName, NamespaceIndex: 2, NameIndex: 5}
	if m != want {
		t.Errorf("readMultiname = %+v, want %+v", m, want)
	}
}

func TestReadMultinameRTQNameL(t *testing.T) {
	s := NewBitStream([]byte{0x11})
	m, err := readMultiname(s)
	if err != nil {
		t.Fatalf("readMultiname failed: %v", err)
	}
	if m.Kind != MultinameKindRTQNameL {
		t.Errorf("Kind = %#x, want RTQNameL", m.Kind)
	}
}

func TestReadMultinameUnknownKind(t *testing.T) {
	s := NewBitStream([]byte{0xFE})
	if _, err := readMultiname(s); err != ErrUnknownDiscriminator {
		t.Fatalf("readMultiname(unknown) = %v, want ErrUnknownDiscriminator", err)
	}
}

func TestReadVarUint30Cases(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"zero", []byte{0x00}, 0},
		{"127", []byte{0x7F}, 127},
		{"128", []byte{0x80, 0x01}, 128},
		{"0x0FFFFFFF", []byte{0xFF, 0xFF, 0xFF, 0x7F}, 0x0FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBitStream(tt.data)
			got, err := s.ReadVarUint30()
			if err != nil {
				t.Fatalf("ReadVarUint30 failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadVarUint30 = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestConstantPoolReservedIndexZeroNotStored(t *testing.T) {
	// declared string_count = 2 -> one actual entry stored.
	s := NewBitStream([]byte{
		0x00,       // int_count = 0
		0x00,       // uint_count = 0
		0x00,       // double_count = 0
		0x02,       // string_count = 2
		0x03, 'a', 'b', 'c', // one string, length-prefixed
		0x00, // namespace_count = 0
		0x00, // ns_set_count = 0
		0x00, // multiname_count = 0
	})
	pool, err := readConstantPool(s)
	if err != nil {
		t.Fatalf("readConstantPool failed: %v", err)
	}
	if len(pool.Strings) != 1 || pool.Strings[0] != "abc" {
		t.Fatalf("pool.Strings = %+v, want [\"abc\"]", pool.Strings)
	}
	if pool.String(0) != "" {
		t.Errorf("pool.String(0) = %q, want empty (reserved index)", pool.String(0))
	}
	if pool.String(1) != "abc" {
		t.Errorf("pool.String(1) = %q, want \"abc\"", pool.String(1))
	}
}
