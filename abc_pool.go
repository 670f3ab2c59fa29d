// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Namespace kind discriminators (§4.8).
const (
	NamespaceKindNamespace         uint8 = 0x08
	NamespaceKindPackageNamespace  uint8 = 0x16
	NamespaceKindPackageInternal   uint8 = 0x17
	NamespaceKindProtected         uint8 = 0x18
	NamespaceKindExplicit          uint8 = 0x19
	NamespaceKindStaticProtected   uint8 = 0x1A
	NamespaceKindPrivate           uint8 = 0x05
)

// Namespace is one constant-pool namespace entry: a kind byte plus an
// index into the string pool (0 means the empty/"any" name, per the
// pool's reserved-index-0 convention).
type Namespace struct {
	Kind      uint8  `json:"kind"`
	NameIndex uint32 `json:"name_index"`
}

func readNamespace(s *BitStream) (Namespace, error) {
	var ns Namespace
	var err error
	if ns.Kind, err = s.ReadUint8(); err != nil {
		return ns, err
	}
	ns.NameIndex, err = s.ReadVarUint30()
	return ns, err
}

// ConstantPool is the ABC cpool_info: seven independently-indexed pools,
// each with a reserved index 0 that decoders must never dereference.
type ConstantPool struct {
	Integers       []int32    `json:"integers"`
	UIntegers      []uint32   `json:"uintegers"`
	Doubles        []float64  `json:"doubles"`
	Strings        []string   `json:"strings"`
	Namespaces     []Namespace `json:"namespaces"`
	NamespaceSets  [][]uint32 `json:"namespace_sets"`
	Multinames     []Multiname `json:"multinames"`
}

// String returns the pool string at the 1-based stream index idx, or ""
// for the reserved index 0 or an out-of-range index (ABC readers commonly
// treat both as "*"). Index 0 is not stored, so idx maps to Strings[idx-1].
func (p *ConstantPool) String(idx uint32) string {
	if idx == 0 || int(idx) > len(p.Strings) {
		return ""
	}
	return p.Strings[idx-1]
}

func readConstantPool(s *BitStream) (ConstantPool, error) {
	var pool ConstantPool

	intCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.Integers = make([]int32, maxInt(int(intCount)-1, 0))
	for i := range pool.Integers {
		if pool.Integers[i], err = s.ReadVarSint32(); err != nil {
			return pool, err
		}
	}

	uintCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.UIntegers = make([]uint32, maxInt(int(uintCount)-1, 0))
	for i := range pool.UIntegers {
		if pool.UIntegers[i], err = s.ReadVarUint32(); err != nil {
			return pool, err
		}
	}

	doubleCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.Doubles = make([]float64, maxInt(int(doubleCount)-1, 0))
	for i := range pool.Doubles {
		if pool.Doubles[i], err = s.ReadDouble(); err != nil {
			return pool, err
		}
	}

	stringCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.Strings = make([]string, maxInt(int(stringCount)-1, 0))
	for i := range pool.Strings {
		length, err := s.ReadVarUint30()
		if err != nil {
			return pool, err
		}
		b, err := s.ReadBytes(int(length))
		if err != nil {
			return pool, err
		}
		pool.Strings[i] = string(b)
	}

	nsCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.Namespaces = make([]Namespace, maxInt(int(nsCount)-1, 0))
	for i := range pool.Namespaces {
		if pool.Namespaces[i], err = readNamespace(s); err != nil {
			return pool, err
		}
	}

	nsSetCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.NamespaceSets = make([][]uint32, maxInt(int(nsSetCount)-1, 0))
	for i := range pool.NamespaceSets {
		count, err := s.ReadVarUint30()
		if err != nil {
			return pool, err
		}
		set := make([]uint32, count)
		for j := range set {
			if set[j], err = s.ReadVarUint30(); err != nil {
				return pool, err
			}
		}
		pool.NamespaceSets[i] = set
	}

	multinameCount, err := s.ReadVarUint30()
	if err != nil {
		return pool, err
	}
	pool.Multinames = make([]Multiname, maxInt(int(multinameCount)-1, 0))
	for i := range pool.Multinames {
		if pool.Multinames[i], err = readMultiname(s); err != nil {
			return pool, err
		}
	}

	return pool, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
