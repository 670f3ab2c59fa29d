// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Multiname kind discriminators (§4.8). Unlike the SWF tag/action
// registries, an unrecognized kind here is fatal: the multiname pool is
// a closed set and a new kind byte means the reader is out of sync.
const (
	MultinameKindQName       uint8 = 0x07
	MultinameKindQNameA      uint8 = 0x0D
	MultinameKindRTQName     uint8 = 0x0F
	MultinameKindRTQNameA    uint8 = 0x10
	MultinameKindRTQNameL    uint8 = 0x11
	MultinameKindRTQNameLA   uint8 = 0x12
	MultinameKindMultiname   uint8 = 0x09
	MultinameKindMultinameA  uint8 = 0x0E
	MultinameKindMultinameL  uint8 = 0x1B
	MultinameKindMultinameLA uint8 = 0x1C
	MultinameKindTypeName    uint8 = 0x1D
)

// Multiname is a tagged variant over the eleven multiname kinds defined
// by the ABC format. Only the fields relevant to Kind are populated.
type Multiname struct {
	Kind uint8 `json:"kind"`

	// QName / QNameA: a namespace plus a name, both resolved at compile
	// time.
	NamespaceIndex uint32 `json:"namespace_index,omitempty"`
	NameIndex      uint32 `json:"name_index,omitempty"`

	// RTQName / RTQNameA: the namespace is supplied at runtime from the
	// operand stack; only the name is stored.
	// (NameIndex above is reused.)

	// RTQNameL / RTQNameLA: both namespace and name come from the stack;
	// no indices are stored.

	// Multiname / MultinameA: a name plus a namespace set.
	NamespaceSetIndex uint32 `json:"namespace_set_index,omitempty"`

	// MultinameL / MultinameLA: the name comes from the stack; only the
	// namespace set is stored.
	// (NamespaceSetIndex above is reused.)

	// TypeName: a parameterized generic type, e.g. Vector.<int>.
	QNameIndex uint32   `json:"qname_index,omitempty"`
	Params     []uint32 `json:"params,omitempty"`
}

func readMultiname(s *BitStream) (Multiname, error) {
	kind, err := s.ReadUint8()
	if err != nil {
		return Multiname{}, err
	}
	m := Multiname{Kind: kind}

	switch kind {
	case MultinameKindQName, MultinameKindQNameA:
		if m.NamespaceIndex, err = s.ReadVarUint30(); err != nil {
			return m, err
		}
		m.NameIndex, err = s.ReadVarUint30()
	case MultinameKindRTQName, MultinameKindRTQNameA:
		m.NameIndex, err = s.ReadVarUint30()
	case MultinameKindRTQNameL, MultinameKindRTQNameLA:
		// No stored fields; both name and namespace resolve at runtime.
	case MultinameKindMultiname, MultinameKindMultinameA:
		if m.NameIndex, err = s.ReadVarUint30(); err != nil {
			return m, err
		}
		m.NamespaceSetIndex, err = s.ReadVarUint30()
	case MultinameKindMultinameL, MultinameKindMultinameLA:
		m.NamespaceSetIndex, err = s.ReadVarUint30()
	case MultinameKindTypeName:
		if m.QNameIndex, err = s.ReadVarUint30(); err != nil {
			return m, err
		}
		paramCount, err := s.ReadVarUint30()
		if err != nil {
			return m, err
		}
		m.Params = make([]uint32, paramCount)
		for i := range m.Params {
			if m.Params[i], err = s.ReadVarUint30(); err != nil {
				return m, err
			}
		}
	default:
		return m, ErrUnknownDiscriminator
	}
	return m, err
}
