// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Method flag bits (§4.8).
const (
	MethodFlagNeedArguments  uint8 = 0x01
	MethodFlagNeedActivation uint8 = 0x02
	MethodFlagNeedRest       uint8 = 0x04
	MethodFlagHasOptional    uint8 = 0x08
	MethodFlagSetDxns        uint8 = 0x40
	MethodFlagHasParamNames  uint8 = 0x80
)

// OptionDetail is one entry of a method's default-argument table.
type OptionDetail struct {
	ValueIndex uint32 `json:"value_index"`
	Kind       uint8  `json:"kind"`
}

// MethodInfo is the ABC method_info record: a signature shared by every
// method, function, getter, and setter in the file.
type MethodInfo struct {
	ReturnTypeIndex uint32         `json:"return_type_index"`
	ParamTypeIndices []uint32      `json:"param_type_indices"`
	NameIndex       uint32         `json:"name_index"`
	Flags           uint8          `json:"flags"`
	Options         []OptionDetail `json:"options,omitempty"`
	ParamNameIndices []uint32      `json:"param_name_indices,omitempty"`
}

func readMethodInfo(s *BitStream) (MethodInfo, error) {
	var m MethodInfo
	paramCount, err := s.ReadVarUint30()
	if err != nil {
		return m, err
	}
	if m.ReturnTypeIndex, err = s.ReadVarUint30(); err != nil {
		return m, err
	}
	m.ParamTypeIndices = make([]uint32, paramCount)
	for i := range m.ParamTypeIndices {
		if m.ParamTypeIndices[i], err = s.ReadVarUint30(); err != nil {
			return m, err
		}
	}
	if m.NameIndex, err = s.ReadVarUint30(); err != nil {
		return m, err
	}
	if m.Flags, err = s.ReadUint8(); err != nil {
		return m, err
	}
	if m.Flags&MethodFlagHasOptional != 0 {
		optCount, err := s.ReadVarUint30()
		if err != nil {
			return m, err
		}
		m.Options = make([]OptionDetail, optCount)
		for i := range m.Options {
			if m.Options[i].ValueIndex, err = s.ReadVarUint30(); err != nil {
				return m, err
			}
			if m.Options[i].Kind, err = s.ReadUint8(); err != nil {
				return m, err
			}
		}
	}
	if m.Flags&MethodFlagHasParamNames != 0 {
		m.ParamNameIndices = make([]uint32, paramCount)
		for i := range m.ParamNameIndices {
			if m.ParamNameIndices[i], err = s.ReadVarUint30(); err != nil {
				return m, err
			}
		}
	}
	return m, nil
}

// MetadataInfo is an ABC metadata_info record: a name plus a table of
// key/value string-index pairs attached by a TraitAttrMetadata trait.
type MetadataInfo struct {
	NameIndex uint32   `json:"name_index"`
	Keys      []uint32 `json:"keys"`
	Values    []uint32 `json:"values"`
}

func readMetadataInfo(s *BitStream) (MetadataInfo, error) {
	var md MetadataInfo
	var err error
	if md.NameIndex, err = s.ReadVarUint30(); err != nil {
		return md, err
	}
	itemCount, err := s.ReadVarUint30()
	if err != nil {
		return md, err
	}
	md.Keys = make([]uint32, itemCount)
	for i := range md.Keys {
		if md.Keys[i], err = s.ReadVarUint30(); err != nil {
			return md, err
		}
	}
	md.Values = make([]uint32, itemCount)
	for i := range md.Values {
		if md.Values[i], err = s.ReadVarUint30(); err != nil {
			return md, err
		}
	}
	return md, nil
}

// ExceptionInfo is one entry of a method body's exception table: a
// bytecode range, its catch target, and the caught type/variable names.
type ExceptionInfo struct {
	From        uint32 `json:"from"`
	To          uint32 `json:"to"`
	Target      uint32 `json:"target"`
	TypeIndex   uint32 `json:"type_index"`
	VarNameIndex uint32 `json:"var_name_index"`
}

func readExceptionInfo(s *BitStream) (ExceptionInfo, error) {
	var e ExceptionInfo
	var err error
	if e.From, err = s.ReadVarUint30(); err != nil {
		return e, err
	}
	if e.To, err = s.ReadVarUint30(); err != nil {
		return e, err
	}
	if e.Target, err = s.ReadVarUint30(); err != nil {
		return e, err
	}
	if e.TypeIndex, err = s.ReadVarUint30(); err != nil {
		return e, err
	}
	e.VarNameIndex, err = s.ReadVarUint30()
	return e, err
}

// MethodBodyInfo is the ABC method_body_info record: the bytecode and
// frame layout for one method_info entry. The Code bytes are kept
// opaque — disassembling or validating AVM2 bytecode semantics is out
// of scope for this decoder.
type MethodBodyInfo struct {
	MethodIndex    uint32          `json:"method_index"`
	MaxStack       uint32          `json:"max_stack"`
	LocalCount     uint32          `json:"local_count"`
	InitScopeDepth uint32          `json:"init_scope_depth"`
	MaxScopeDepth  uint32          `json:"max_scope_depth"`
	Code           []byte          `json:"code"`
	Exceptions     []ExceptionInfo `json:"exceptions"`
	Traits         []TraitInfo     `json:"traits"`
}

func readMethodBodyInfo(s *BitStream) (MethodBodyInfo, error) {
	var b MethodBodyInfo
	var err error
	if b.MethodIndex, err = s.ReadVarUint30(); err != nil {
		return b, err
	}
	if b.MaxStack, err = s.ReadVarUint30(); err != nil {
		return b, err
	}
	if b.LocalCount, err = s.ReadVarUint30(); err != nil {
		return b, err
	}
	if b.InitScopeDepth, err = s.ReadVarUint30(); err != nil {
		return b, err
	}
	if b.MaxScopeDepth, err = s.ReadVarUint30(); err != nil {
		return b, err
	}
	codeLength, err := s.ReadVarUint30()
	if err != nil {
		return b, err
	}
	if b.Code, err = s.ReadBytes(int(codeLength)); err != nil {
		return b, err
	}
	excCount, err := s.ReadVarUint30()
	if err != nil {
		return b, err
	}
	b.Exceptions = make([]ExceptionInfo, excCount)
	for i := range b.Exceptions {
		if b.Exceptions[i], err = readExceptionInfo(s); err != nil {
			return b, err
		}
	}
	b.Traits, err = readTraits(s)
	return b, err
}
