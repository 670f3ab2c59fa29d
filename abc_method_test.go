// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestReadMethodInfoNoOptionalNoParamNames(t *testing.T) {
	s := NewBitStream([]byte{
		0x01,       // param_count = 1
		0x00,       // return_type = 0
		0x05,       // param_type[0] = 5
		0x07,       // name_index = 7
		0x00,       // flags = 0
	})
	m, err := readMethodInfo(s)
	if err != nil {
		t.Fatalf("readMethodInfo failed: %v", err)
	}
	if len(m.ParamTypeIndices) != 1 || m.ParamTypeIndices[0] != 5 {
		t.Fatalf("ParamTypeIndices = %v, want [5]", m.ParamTypeIndices)
	}
	if m.NameIndex != 7 {
		t.Errorf("NameIndex = %d, want 7", m.NameIndex)
	}
	if len(m.Options) != 0 || len(m.ParamNameIndices) != 0 {
		t.Errorf("MethodInfo = %+v, want no optional/param-name data", m)
	}
}

func TestReadTraitInfoSlot(t *testing.T) {
	s := NewBitStream([]byte{
		0x03,                       // name_index = 3
		TraitKindSlot | (0 << 4),   // kind byte: Slot, no attrs
		0x01,                       // slot_id = 1
		0x00,                       // type_name_index = 0
		0x00,                       // vindex = 0 (no vkind byte follows)
	})
	tr, err := readTraitInfo(s)
	if err != nil {
		t.Fatalf("readTraitInfo failed: %v", err)
	}
	if tr.Kind != TraitKindSlot || tr.SlotID != 1 {
		t.Fatalf("TraitInfo = %+v, want Kind=Slot SlotID=1", tr)
	}
}

func TestReadTraitInfoMethodWithMetadata(t *testing.T) {
	kindByte := TraitKindMethod | (TraitAttrMetadata << 4)
	s := NewBitStream([]byte{
		0x02,     // name_index = 2
		kindByte, // kind=Method, attrs=Metadata
		0x09,     // disp_id = 9
		0x0A,     // method_index = 10
		0x01,     // metadata count = 1
		0x04,     // metadata_indices[0] = 4
	})
	tr, err := readTraitInfo(s)
	if err != nil {
		t.Fatalf("readTraitInfo failed: %v", err)
	}
	if tr.Kind != TraitKindMethod || tr.MethodIndex != 10 {
		t.Fatalf("TraitInfo = %+v, want Kind=Method MethodIndex=10", tr)
	}
	if len(tr.MetadataIndices) != 1 || tr.MetadataIndices[0] != 4 {
		t.Fatalf("MetadataIndices = %v, want [4]", tr.MetadataIndices)
	}
}

func TestReadTraitInfoUnknownKind(t *testing.T) {
	s := NewBitStream([]byte{0x00, 0x0F}) // kind nibble 0xF is undefined
	if _, err := readTraitInfo(s); err != ErrUnknownDiscriminator {
		t.Fatalf("readTraitInfo(unknown) = %v, want ErrUnknownDiscriminator", err)
	}
}

func TestReadMethodBodyInfoOpaqueCode(t *testing.T) {
	s := NewBitStream([]byte{
		0x00, // method_index = 0
		0x02, // max_stack = 2
		0x01, // local_count = 1
		0x00, // init_scope_depth = 0
		0x01, // max_scope_depth = 1
		0x03, // code_length = 3
		0xAA, 0xBB, 0xCC, // opaque bytecode
		0x00, // exception count = 0
		0x00, // trait count = 0
	})
	b, err := readMethodBodyInfo(s)
	if err != nil {
		t.Fatalf("readMethodBodyInfo failed: %v", err)
	}
	if len(b.Code) != 3 || b.Code[0] != 0xAA {
		t.Fatalf("Code = %v, want [0xAA 0xBB 0xCC]", b.Code)
	}
	if len(b.Exceptions) != 0 || len(b.Traits) != 0 {
		t.Errorf("MethodBodyInfo = %+v, want no exceptions/traits", b)
	}
}
