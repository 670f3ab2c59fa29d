// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// PlaceObjectTag is tag 4: the original, unconditional placement record.
type PlaceObjectTag struct {
	CharacterID    uint16          `json:"character_id"`
	Depth          uint16          `json:"depth"`
	Matrix         Matrix          `json:"matrix"`
	ColorTransform *ColorTransform `json:"color_transform,omitempty"`
}

func decodePlaceObjectTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	p := &PlaceObjectTag{}
	start := s.BytePosition()
	var err error
	if p.CharacterID, err = s.ReadUint16(); err != nil {
		return err
	}
	if p.Depth, err = s.ReadUint16(); err != nil {
		return err
	}
	if p.Matrix, err = readMatrix(s); err != nil {
		return err
	}
	bodyEnd := start + int(h.Length)
	if consumed := s.BytePosition(); consumed < bodyEnd {
		ct, err := readColorTransform(s, false)
		if err != nil {
			return err
		}
		p.ColorTransform = &ct
	}
	dst.PlaceObject = p
	return nil
}

// ClipActionRecord binds one event mask to the AVM1 action list that
// runs when the event fires.
type ClipActionRecord struct {
	EventFlags uint32   `json:"event_flags"`
	KeyCode    uint8    `json:"key_code,omitempty"`
	Actions    []Action `json:"actions"`
}

// ClipActions is the event-handler table attached to PlaceObject2/3.
// AllEventFlags and each record's EventFlags are 16 bits for SWF <= 5
// and 32 bits from SWF 6 onward.
type ClipActions struct {
	AllEventFlags uint32             `json:"all_event_flags"`
	Records       []ClipActionRecord `json:"records"`
}

// clipEventFlagBitKeyPress is the bit, within a ClipActions event mask,
// of the KeyPress handler. It lies above bit 15, so only the 32-bit masks
// of SWF 6 onward can carry it.
const clipEventFlagBitKeyPress = 1 << 17

func readClipEventFlags(s *BitStream, swfVersion uint8) (uint32, error) {
	if swfVersion <= 5 {
		v, err := s.ReadUint16()
		return uint32(v), err
	}
	return s.ReadUint32()
}

func readClipActions(s *BitStream, swfVersion uint8) (ClipActions, error) {
	var ca ClipActions
	if _, err := s.ReadUint16(); err != nil { // reserved
		return ca, err
	}
	allFlags, err := readClipEventFlags(s, swfVersion)
	if err != nil {
		return ca, err
	}
	ca.AllEventFlags = allFlags

	for {
		flags, err := readClipEventFlags(s, swfVersion)
		if err != nil {
			return ca, err
		}
		if flags == 0 {
			return ca, nil
		}
		size, err := s.ReadUint32()
		if err != nil {
			return ca, err
		}
		rec := ClipActionRecord{EventFlags: flags}
		recEnd := s.BytePosition() + int(size)
		if flags&clipEventFlagBitKeyPress != 0 {
			if rec.KeyCode, err = s.ReadUint8(); err != nil {
				return ca, err
			}
		}
		rec.Actions, err = readActionList(s, recEnd)
		if err != nil {
			return ca, err
		}
		if pos := s.BytePosition(); pos < recEnd {
			s.SeekBytes(recEnd)
		}
		ca.Records = append(ca.Records, rec)
	}
}

// PlaceObject2Tag is tag 26: the flag-gated placement/move/update record.
type PlaceObject2Tag struct {
	HasClipActions bool            `json:"has_clip_actions"`
	HasClipDepth   bool            `json:"has_clip_depth"`
	HasName        bool            `json:"has_name"`
	HasRatio       bool            `json:"has_ratio"`
	HasColorTransform bool         `json:"has_color_transform"`
	HasMatrix      bool            `json:"has_matrix"`
	HasCharacter   bool            `json:"has_character"`
	Move           bool            `json:"move"`
	Depth          uint16          `json:"depth"`
	CharacterID    uint16          `json:"character_id,omitempty"`
	Matrix         *Matrix         `json:"matrix,omitempty"`
	ColorTransform *ColorTransform `json:"color_transform,omitempty"`
	Ratio          uint16          `json:"ratio,omitempty"`
	Name           string          `json:"name,omitempty"`
	ClipDepth      uint16          `json:"clip_depth,omitempty"`
	ClipActions    *ClipActions    `json:"clip_actions,omitempty"`
}

func decodePlaceObject2Tag(s *BitStream, h TagHeader, dst *Tag, swfVersion uint8) error {
	p := &PlaceObject2Tag{}
	var err error
	if p.HasClipActions, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasClipDepth, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasName, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasRatio, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasColorTransform, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasMatrix, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasCharacter, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.Move, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.Depth, err = s.ReadUint16(); err != nil {
		return err
	}
	if p.HasCharacter {
		if p.CharacterID, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	if p.HasMatrix {
		m, err := readMatrix(s)
		if err != nil {
			return err
		}
		p.Matrix = &m
	}
	if p.HasColorTransform {
		ct, err := readColorTransform(s, true)
		if err != nil {
			return err
		}
		p.ColorTransform = &ct
	}
	if p.HasRatio {
		if p.Ratio, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	if p.HasName {
		if p.Name, err = s.ReadCString(); err != nil {
			return err
		}
	}
	if p.HasClipDepth {
		if p.ClipDepth, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	if p.HasClipActions {
		ca, err := readClipActions(s, swfVersion)
		if err != nil {
			return err
		}
		p.ClipActions = &ca
	}
	dst.PlaceObject2 = p
	return nil
}

// PlaceObject3Tag is tag 70: PlaceObject2 plus filters, blend mode,
// bitmap caching, visibility, and class-name binding for runtime shared
// objects loaded via ImportAssets.
type PlaceObject3Tag struct {
	PlaceObject2Tag
	OpaqueBackground bool      `json:"opaque_background"`
	HasVisible       bool      `json:"has_visible"`
	HasImage         bool      `json:"has_image"`
	HasClassName     bool      `json:"has_class_name"`
	HasCacheAsBitmap bool      `json:"has_cache_as_bitmap"`
	HasBlendMode     bool      `json:"has_blend_mode"`
	HasFilterList    bool      `json:"has_filter_list"`
	ClassName        string    `json:"class_name,omitempty"`
	SurfaceFilterList []Filter `json:"surface_filter_list,omitempty"`
	BlendMode        uint8     `json:"blend_mode,omitempty"`
	BitmapCache      uint8     `json:"bitmap_cache,omitempty"`
	Visible          uint8     `json:"visible,omitempty"`
	BackgroundColor  RGBA      `json:"background_color,omitempty"`
}

func decodePlaceObject3Tag(s *BitStream, h TagHeader, dst *Tag, swfVersion uint8) error {
	p := &PlaceObject3Tag{}
	var err error
	if p.HasClipActions, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasClipDepth, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasName, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasRatio, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasColorTransform, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasMatrix, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasCharacter, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.Move, err = s.ReadBitBool(); err != nil {
		return err
	}
	if _, err = s.ReadUBits(1); err != nil { // reserved
		return err
	}
	if p.OpaqueBackground, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasVisible, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasImage, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasClassName, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasCacheAsBitmap, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasBlendMode, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.HasFilterList, err = s.ReadBitBool(); err != nil {
		return err
	}
	if p.Depth, err = s.ReadUint16(); err != nil {
		return err
	}
	if p.HasClassName || (p.HasImage && p.HasCharacter) {
		if p.ClassName, err = s.ReadCString(); err != nil {
			return err
		}
	}
	if p.HasCharacter {
		if p.CharacterID, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	if p.HasMatrix {
		m, err := readMatrix(s)
		if err != nil {
			return err
		}
		p.Matrix = &m
	}
	if p.HasColorTransform {
		ct, err := readColorTransform(s, true)
		if err != nil {
			return err
		}
		p.ColorTransform = &ct
	}
	if p.HasRatio {
		if p.Ratio, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	if p.HasName {
		if p.Name, err = s.ReadCString(); err != nil {
			return err
		}
	}
	if p.HasClipDepth {
		if p.ClipDepth, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	if p.HasFilterList {
		if p.SurfaceFilterList, err = readFilterList(s); err != nil {
			return err
		}
	}
	if p.HasBlendMode {
		if p.BlendMode, err = s.ReadUint8(); err != nil {
			return err
		}
	}
	if p.HasCacheAsBitmap {
		if p.BitmapCache, err = s.ReadUint8(); err != nil {
			return err
		}
	}
	if p.HasVisible {
		if p.Visible, err = s.ReadUint8(); err != nil {
			return err
		}
	}
	if p.OpaqueBackground {
		if p.BackgroundColor, err = readRGBA(s); err != nil {
			return err
		}
	}
	if p.HasClipActions {
		ca, err := readClipActions(s, swfVersion)
		if err != nil {
			return err
		}
		p.ClipActions = &ca
	}
	dst.PlaceObject3 = p
	return nil
}

// RemoveObjectTag is tag 5: remove by (character id, depth) pair.
type RemoveObjectTag struct {
	CharacterID uint16 `json:"character_id"`
	Depth       uint16 `json:"depth"`
}

func decodeRemoveObjectTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	r := &RemoveObjectTag{}
	var err error
	if r.CharacterID, err = s.ReadUint16(); err != nil {
		return err
	}
	r.Depth, err = s.ReadUint16()
	dst.RemoveObject = r
	return err
}

// RemoveObject2Tag is tag 28: remove by depth alone.
type RemoveObject2Tag struct {
	Depth uint16 `json:"depth"`
}

func decodeRemoveObject2Tag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	r := &RemoveObject2Tag{}
	var err error
	r.Depth, err = s.ReadUint16()
	dst.RemoveObject2 = r
	return err
}
