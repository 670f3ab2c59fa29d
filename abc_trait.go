// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Trait kind discriminators: the low 4 bits of a trait's kind byte.
// Like multinames, an unrecognized kind is fatal (§4.8).
const (
	TraitKindSlot     uint8 = 0
	TraitKindMethod   uint8 = 1
	TraitKindGetter   uint8 = 2
	TraitKindSetter   uint8 = 3
	TraitKindClass    uint8 = 4
	TraitKindFunction uint8 = 5
	TraitKindConst    uint8 = 6
)

// Trait attribute flags: the high 4 bits of a trait's kind byte.
const (
	TraitAttrFinal    uint8 = 0x1
	TraitAttrOverride uint8 = 0x2
	TraitAttrMetadata uint8 = 0x4
)

// TraitInfo is a tagged variant over the seven trait kinds attached to
// a class, instance, or script. Only the fields relevant to Kind are
// populated.
type TraitInfo struct {
	NameIndex uint32 `json:"name_index"`
	Kind      uint8  `json:"kind"`
	Attrs     uint8  `json:"attrs"`

	// Slot / Const.
	SlotID       uint32 `json:"slot_id,omitempty"`
	TypeNameIndex uint32 `json:"type_name_index,omitempty"`
	VIndex       uint32 `json:"vindex,omitempty"`
	VKind        uint8  `json:"vkind,omitempty"`

	// Class.
	ClassIndex uint32 `json:"class_index,omitempty"`

	// Function.
	FunctionIndex uint32 `json:"function_index,omitempty"`

	// Method / Getter / Setter.
	DispID      uint32 `json:"disp_id,omitempty"`
	MethodIndex uint32 `json:"method_index,omitempty"`

	MetadataIndices []uint32 `json:"metadata_indices,omitempty"`
}

func readTraitInfo(s *BitStream) (TraitInfo, error) {
	var t TraitInfo
	var err error
	if t.NameIndex, err = s.ReadVarUint30(); err != nil {
		return t, err
	}
	kindByte, err := s.ReadUint8()
	if err != nil {
		return t, err
	}
	t.Kind = kindByte & 0x0F
	t.Attrs = kindByte >> 4

	switch t.Kind {
	case TraitKindSlot, TraitKindConst:
		if t.SlotID, err = s.ReadVarUint30(); err != nil {
			return t, err
		}
		if t.TypeNameIndex, err = s.ReadVarUint30(); err != nil {
			return t, err
		}
		if t.VIndex, err = s.ReadVarUint30(); err != nil {
			return t, err
		}
		if t.VIndex != 0 {
			t.VKind, err = s.ReadUint8()
		}
	case TraitKindClass:
		if t.SlotID, err = s.ReadVarUint30(); err != nil {
			return t, err
		}
		t.ClassIndex, err = s.ReadVarUint30()
	case TraitKindFunction:
		if t.SlotID, err = s.ReadVarUint30(); err != nil {
			return t, err
		}
		t.FunctionIndex, err = s.ReadVarUint30()
	case TraitKindMethod, TraitKindGetter, TraitKindSetter:
		if t.DispID, err = s.ReadVarUint30(); err != nil {
			return t, err
		}
		t.MethodIndex, err = s.ReadVarUint30()
	default:
		return t, ErrUnknownDiscriminator
	}
	if err != nil {
		return t, err
	}

	if t.Attrs&TraitAttrMetadata != 0 {
		count, err := s.ReadVarUint30()
		if err != nil {
			return t, err
		}
		t.MetadataIndices = make([]uint32, count)
		for i := range t.MetadataIndices {
			if t.MetadataIndices[i], err = s.ReadVarUint30(); err != nil {
				return t, err
			}
		}
	}
	return t, nil
}

func readTraits(s *BitStream) ([]TraitInfo, error) {
	count, err := s.ReadVarUint30()
	if err != nil {
		return nil, err
	}
	traits := make([]TraitInfo, count)
	for i := range traits {
		if traits[i], err = readTraitInfo(s); err != nil {
			return nil, err
		}
	}
	return traits, nil
}
