// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// ABCFile is the top-level ActionScript Bytecode container embedded by
// a DoABC tag: a version pair, the shared constant pool, and the five
// parallel record tables (methods, metadata, classes, scripts, method
// bodies) that reference into it and into each other by index.
type ABCFile struct {
	MinorVersion uint16           `json:"minor_version"`
	MajorVersion uint16           `json:"major_version"`
	ConstantPool ConstantPool     `json:"constant_pool"`
	Methods      []MethodInfo     `json:"methods"`
	Metadata     []MetadataInfo   `json:"metadata"`
	Instances    []InstanceInfo   `json:"instances"`
	Classes      []ClassInfo      `json:"classes"`
	Scripts      []ScriptInfo     `json:"scripts"`
	MethodBodies []MethodBodyInfo `json:"method_bodies"`
}

// readABCFile decodes one ABC program in full. The instance_info and
// class_info tables are read back to back (instance_info[class_count]
// immediately followed by class_info[class_count]) per §4.8; they are
// zipped into the ABCFile's parallel Instances/Classes slices in the
// order the format defines, not the order a caller might expect.
func readABCFile(s *BitStream) (*ABCFile, error) {
	abc := &ABCFile{}
	var err error
	if abc.MinorVersion, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	if abc.MajorVersion, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	if abc.ConstantPool, err = readConstantPool(s); err != nil {
		return nil, err
	}

	methodCount, err := s.ReadVarUint30()
	if err != nil {
		return nil, err
	}
	abc.Methods = make([]MethodInfo, methodCount)
	for i := range abc.Methods {
		if abc.Methods[i], err = readMethodInfo(s); err != nil {
			return nil, err
		}
	}

	metadataCount, err := s.ReadVarUint30()
	if err != nil {
		return nil, err
	}
	abc.Metadata = make([]MetadataInfo, metadataCount)
	for i := range abc.Metadata {
		if abc.Metadata[i], err = readMetadataInfo(s); err != nil {
			return nil, err
		}
	}

	classCount, err := s.ReadVarUint30()
	if err != nil {
		return nil, err
	}
	abc.Instances = make([]InstanceInfo, classCount)
	for i := range abc.Instances {
		if abc.Instances[i], err = readInstanceInfo(s); err != nil {
			return nil, err
		}
	}
	abc.Classes = make([]ClassInfo, classCount)
	for i := range abc.Classes {
		if abc.Classes[i], err = readClassInfo(s); err != nil {
			return nil, err
		}
	}

	scriptCount, err := s.ReadVarUint30()
	if err != nil {
		return nil, err
	}
	abc.Scripts = make([]ScriptInfo, scriptCount)
	for i := range abc.Scripts {
		if abc.Scripts[i], err = readScriptInfo(s); err != nil {
			return nil, err
		}
	}

	bodyCount, err := s.ReadVarUint30()
	if err != nil {
		return nil, err
	}
	abc.MethodBodies = make([]MethodBodyInfo, bodyCount)
	for i := range abc.MethodBodies {
		if abc.MethodBodies[i], err = readMethodBodyInfo(s); err != nil {
			return nil, err
		}
	}

	return abc, nil
}
