// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// DefineSpriteTag is tag 39: a nested, self-contained tag stream scoped
// to a single multi-frame movie clip. Its tag loop recurses into the
// same readTag dispatch used at the top level, terminated by its own
// End tag rather than the file's.
type DefineSpriteTag struct {
	CharacterID uint16 `json:"character_id"`
	FrameCount  uint16 `json:"frame_count"`
	Tags        []Tag  `json:"tags"`
}

func decodeDefineSpriteTag(s *BitStream, h TagHeader, dst *Tag, swfVersion uint8) error {
	st := &DefineSpriteTag{}
	var err error
	if st.CharacterID, err = s.ReadUint16(); err != nil {
		return err
	}
	if st.FrameCount, err = s.ReadUint16(); err != nil {
		return err
	}
	for {
		tag, err := readTag(s, swfVersion)
		if err != nil {
			return err
		}
		st.Tags = append(st.Tags, tag)
		if tag.Header.Code == TagEnd {
			break
		}
	}
	dst.DefineSprite = st
	return nil
}

// DoABCTag is tag 82: an embedded ActionScript Bytecode program, the
// boundary between the SWF container and the ABC format.
type DoABCTag struct {
	Flags       uint32    `json:"flags"`
	Name        string    `json:"name"`
	ABCFile     *ABCFile  `json:"abc_file"`
}

const abcFlagLazyInitialize = 1

func decodeDoABCTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	abc := &DoABCTag{}
	var err error
	if abc.Flags, err = s.ReadUint32(); err != nil {
		return err
	}
	if abc.Name, err = s.ReadCString(); err != nil {
		return err
	}
	abc.ABCFile, err = readABCFile(s)
	if err != nil {
		return err
	}
	dst.DoABC = abc
	return nil
}
