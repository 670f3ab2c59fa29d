// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Instance flag bits (§4.8).
const (
	ClassFlagSealed      uint8 = 0x01
	ClassFlagFinal       uint8 = 0x02
	ClassFlagInterface   uint8 = 0x04
	ClassFlagProtectedNs uint8 = 0x08
)

// InstanceInfo is the ABC instance_info record: a class's name,
// superclass, interface list, and instance-side traits.
type InstanceInfo struct {
	NameIndex       uint32      `json:"name_index"`
	SuperNameIndex  uint32      `json:"super_name_index"`
	Flags           uint8       `json:"flags"`
	ProtectedNsIndex uint32     `json:"protected_ns_index,omitempty"`
	InterfaceIndices []uint32   `json:"interface_indices"`
	InitIndex       uint32      `json:"init_index"`
	Traits          []TraitInfo `json:"traits"`
}

func readInstanceInfo(s *BitStream) (InstanceInfo, error) {
	var inst InstanceInfo
	var err error
	if inst.NameIndex, err = s.ReadVarUint30(); err != nil {
		return inst, err
	}
	if inst.SuperNameIndex, err = s.ReadVarUint30(); err != nil {
		return inst, err
	}
	if inst.Flags, err = s.ReadUint8(); err != nil {
		return inst, err
	}
	if inst.Flags&ClassFlagProtectedNs != 0 {
		if inst.ProtectedNsIndex, err = s.ReadVarUint30(); err != nil {
			return inst, err
		}
	}
	ifaceCount, err := s.ReadVarUint30()
	if err != nil {
		return inst, err
	}
	inst.InterfaceIndices = make([]uint32, ifaceCount)
	for i := range inst.InterfaceIndices {
		if inst.InterfaceIndices[i], err = s.ReadVarUint30(); err != nil {
			return inst, err
		}
	}
	if inst.InitIndex, err = s.ReadVarUint30(); err != nil {
		return inst, err
	}
	inst.Traits, err = readTraits(s)
	return inst, err
}

// ClassInfo is the ABC class_info record: a class's static-side
// initializer and traits, paired by index with an InstanceInfo.
type ClassInfo struct {
	InitIndex uint32      `json:"init_index"`
	Traits    []TraitInfo `json:"traits"`
}

func readClassInfo(s *BitStream) (ClassInfo, error) {
	var c ClassInfo
	var err error
	if c.InitIndex, err = s.ReadVarUint30(); err != nil {
		return c, err
	}
	c.Traits, err = readTraits(s)
	return c, err
}

// ScriptInfo is the ABC script_info record: one entry per SWF frame (or
// file-level) script, with its own initializer and traits.
type ScriptInfo struct {
	InitIndex uint32      `json:"init_index"`
	Traits    []TraitInfo `json:"traits"`
}

func readScriptInfo(s *BitStream) (ScriptInfo, error) {
	var sc ScriptInfo
	var err error
	if sc.InitIndex, err = s.ReadVarUint30(); err != nil {
		return sc, err
	}
	sc.Traits, err = readTraits(s)
	return sc, err
}
