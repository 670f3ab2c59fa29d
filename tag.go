// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Tag codes named explicitly by the components below. Codes with no
// dedicated decoder have no entry in readTag's registry; readTag captures
// their payload into Tag.RawBody and moves past it by its declared
// length, the SWF-side forward-compatibility rule documented in
// registry.go.
const (
	TagEnd                    uint16 = 0
	TagShowFrame              uint16 = 1
	TagDefineShape            uint16 = 2
	TagPlaceObject            uint16 = 4
	TagRemoveObject           uint16 = 5
	TagDefineBits             uint16 = 6
	TagDefineButton           uint16 = 7
	TagJPEGTables             uint16 = 8
	TagSetBackgroundColor     uint16 = 9
	TagDefineFont             uint16 = 10
	TagDefineText             uint16 = 11
	TagDoAction               uint16 = 12
	TagDefineFontInfo         uint16 = 13
	TagDefineSound            uint16 = 14
	TagStartSound             uint16 = 15
	TagDefineButtonSound      uint16 = 17
	TagSoundStreamHead        uint16 = 18
	TagSoundStreamBlock       uint16 = 19
	TagDefineBitsLossless     uint16 = 20
	TagDefineBitsJPEG2        uint16 = 21
	TagDefineShape2           uint16 = 22
	TagDefineButtonCxform     uint16 = 23
	TagProtect                uint16 = 24
	TagPlaceObject2           uint16 = 26
	TagRemoveObject2          uint16 = 28
	TagDefineShape3           uint16 = 32
	TagDefineText2            uint16 = 33
	TagDefineButton2          uint16 = 34
	TagDefineBitsJPEG3        uint16 = 35
	TagDefineBitsLossless2    uint16 = 36
	TagDefineEditText         uint16 = 37
	TagDefineSprite           uint16 = 39
	TagFrameLabel             uint16 = 43
	TagSoundStreamHead2       uint16 = 45
	TagDefineMorphShape       uint16 = 46
	TagDefineFont2            uint16 = 48
	TagExportAssets           uint16 = 56
	TagImportAssets           uint16 = 57
	TagEnableDebugger         uint16 = 58
	TagDoInitAction           uint16 = 59
	TagDefineVideoStream      uint16 = 60
	TagVideoFrame             uint16 = 61
	TagDefineFontInfo2        uint16 = 62
	TagEnableDebugger2        uint16 = 64
	TagScriptLimits           uint16 = 65
	TagSetTabIndex            uint16 = 66
	TagFileAttributes         uint16 = 69
	TagPlaceObject3           uint16 = 70
	TagImportAssets2          uint16 = 71
	TagDefineFontAlignZones   uint16 = 73
	TagCSMTextSettings        uint16 = 74
	TagDefineFont3            uint16 = 75
	TagSymbolClass            uint16 = 76
	TagMetadata               uint16 = 77
	TagDefineScalingGrid      uint16 = 78
	TagDoABC                  uint16 = 82
	TagDefineShape4           uint16 = 83
	TagDefineMorphShape2      uint16 = 84
	TagDefineSceneAndFrameLabelData uint16 = 86
	TagDefineBinaryData       uint16 = 87
	TagDefineFontName         uint16 = 88
	TagStartSound2            uint16 = 89
	TagDefineBitsJPEG4        uint16 = 90
	TagDefineFont4            uint16 = 91
	TagEnableTelemetry        uint16 = 93
	TagProductInfo            uint16 = 41
)

// TagHeader is the short (10-bit code + 6-bit length) or extended
// (6-bit length field of 0x3F followed by a 32-bit length) tag header.
type TagHeader struct {
	Code   uint16 `json:"code"`
	Length uint32 `json:"length"`
}

const shortTagMaxLength = 0x3F

func readTagHeader(s *BitStream) (TagHeader, error) {
	raw, err := s.ReadUint16()
	if err != nil {
		return TagHeader{}, err
	}
	h := TagHeader{
		Code:   raw >> 6,
		Length: uint32(raw & 0x3F),
	}
	if h.Length == shortTagMaxLength {
		h.Length, err = s.ReadUint32()
		if err != nil {
			return h, err
		}
	}
	return h, nil
}

// Tag is one decoded SWF tag: its header plus whichever typed payload
// matched its code, or RawBody when no dedicated decoder exists.
type Tag struct {
	Header TagHeader `json:"header"`

	ShowFrame         bool                    `json:"-"`
	Shape             *ShapeTag               `json:"shape,omitempty"`
	MorphShape        *MorphShapeTag          `json:"morph_shape,omitempty"`
	PlaceObject       *PlaceObjectTag         `json:"place_object,omitempty"`
	PlaceObject2      *PlaceObject2Tag        `json:"place_object2,omitempty"`
	PlaceObject3      *PlaceObject3Tag        `json:"place_object3,omitempty"`
	RemoveObject      *RemoveObjectTag        `json:"remove_object,omitempty"`
	RemoveObject2     *RemoveObject2Tag       `json:"remove_object2,omitempty"`
	SetBackgroundColor *SetBackgroundColorTag `json:"set_background_color,omitempty"`
	FrameLabel        *FrameLabelTag          `json:"frame_label,omitempty"`
	ExportAssets      *ExportAssetsTag        `json:"export_assets,omitempty"`
	ImportAssets      *ImportAssetsTag        `json:"import_assets,omitempty"`
	EnableDebugger    *EnableDebuggerTag      `json:"enable_debugger,omitempty"`
	ScriptLimits      *ScriptLimitsTag        `json:"script_limits,omitempty"`
	SetTabIndex       *SetTabIndexTag         `json:"set_tab_index,omitempty"`
	FileAttributes    *FileAttributesTag      `json:"file_attributes,omitempty"`
	SymbolClass       *SymbolClassTag         `json:"symbol_class,omitempty"`
	Metadata          *MetadataTag            `json:"metadata,omitempty"`
	DefineScalingGrid *DefineScalingGridTag   `json:"define_scaling_grid,omitempty"`
	ProductInfo       *ProductInfoTag         `json:"product_info,omitempty"`
	DefineBinaryData  *DefineBinaryDataTag    `json:"define_binary_data,omitempty"`
	DoAction          *DoActionTag            `json:"do_action,omitempty"`
	DoInitAction      *DoInitActionTag        `json:"do_init_action,omitempty"`
	DefineSprite      *DefineSpriteTag        `json:"define_sprite,omitempty"`
	DoABC             *DoABCTag               `json:"do_abc,omitempty"`

	RawBody []byte `json:"raw_body,omitempty"`
}

// tagDecoder decodes one tag's payload given its header, populating dst.
type tagDecoder func(s *BitStream, h TagHeader, dst *Tag, swfVersion uint8) error

// tagRegistry maps a tag code to its decoder. Built once at package
// init, mirroring the teacher's funcMaps registry in file.go.
var tagRegistry = map[uint16]tagDecoder{
	TagShowFrame:          decodeShowFrameTag,
	TagDefineShape:        decodeDefineShapeTag(1),
	TagDefineShape2:       decodeDefineShapeTag(2),
	TagDefineShape3:       decodeDefineShapeTag(3),
	TagDefineShape4:       decodeDefineShapeTag(4),
	TagDefineMorphShape:   decodeDefineMorphShapeTag(1),
	TagDefineMorphShape2:  decodeDefineMorphShapeTag(2),
	TagPlaceObject:        decodePlaceObjectTag,
	TagPlaceObject2:       decodePlaceObject2Tag,
	TagPlaceObject3:       decodePlaceObject3Tag,
	TagRemoveObject:       decodeRemoveObjectTag,
	TagRemoveObject2:      decodeRemoveObject2Tag,
	TagSetBackgroundColor: decodeSetBackgroundColorTag,
	TagFrameLabel:         decodeFrameLabelTag,
	TagExportAssets:       decodeExportAssetsTag,
	TagImportAssets:       decodeImportAssetsTag(1),
	TagImportAssets2:      decodeImportAssetsTag(2),
	TagEnableDebugger:     decodeEnableDebuggerTag(1),
	TagEnableDebugger2:    decodeEnableDebuggerTag(2),
	TagScriptLimits:       decodeScriptLimitsTag,
	TagSetTabIndex:        decodeSetTabIndexTag,
	TagFileAttributes:     decodeFileAttributesTag,
	TagSymbolClass:        decodeSymbolClassTag,
	TagMetadata:           decodeMetadataTag,
	TagDefineScalingGrid:  decodeDefineScalingGridTag,
	TagProductInfo:        decodeProductInfoTag,
	TagDefineBinaryData:   decodeDefineBinaryDataTag,
	TagDoAction:           decodeDoActionTag,
	TagDoInitAction:       decodeDoInitActionTag,
	TagDefineSprite:       decodeDefineSpriteTag,
	TagDoABC:              decodeDoABCTag,
	TagProtect:            decodeProtectTag,
	TagEnd:                decodeEndTag,
}

// readTag reads one tag header and dispatches to its decoder, or falls
// back to a raw-body capture of exactly the declared length when no
// decoder is registered.
func readTag(s *BitStream, swfVersion uint8) (Tag, error) {
	h, err := readTagHeader(s)
	if err != nil {
		return Tag{}, err
	}
	t := Tag{Header: h}
	bodyStart := s.BytePosition()
	bodyEnd := bodyStart + int(h.Length)

	decode, ok := tagRegistry[h.Code]
	if !ok {
		if t.RawBody, err = s.ReadBytes(int(h.Length)); err != nil {
			return t, err
		}
		return t, nil
	}
	if err := decode(s, h, &t, swfVersion); err != nil {
		return t, err
	}
	// Tags are bounded by their declared length; realign to the
	// declared end regardless of how many bytes the decoder consumed,
	// so a partially-understood tag never desyncs the stream for its
	// successor (mirrors the teacher's per-directory bounds in
	// ParseDataDirectories).
	if pos := s.BytePosition(); pos < bodyEnd {
		if err := skipUnknown(s, bodyEnd-pos); err != nil {
			return t, err
		}
	} else if pos > bodyEnd {
		s.SeekBytes(bodyEnd)
	}
	return t, nil
}

func decodeShowFrameTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	dst.ShowFrame = true
	return nil
}

func decodeEndTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	return nil
}

func decodeProtectTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	return nil
}

// SetBackgroundColorTag is tag 9.
type SetBackgroundColorTag struct {
	Color RGB `json:"color"`
}

func decodeSetBackgroundColorTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	c, err := readRGB(s)
	if err != nil {
		return err
	}
	dst.SetBackgroundColor = &SetBackgroundColorTag{Color: c}
	return nil
}

// FrameLabelTag is tag 43. Per the Open Question recorded in
// DESIGN.md, the trailing named-anchor flag byte is read when present
// (the tag's declared length exceeds the name's own encoded size); the
// label name itself is authoritative regardless.
type FrameLabelTag struct {
	Name       string `json:"name"`
	NamedAnchor bool   `json:"named_anchor,omitempty"`
}

func decodeFrameLabelTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	start := s.BytePosition()
	name, err := s.ReadCString()
	if err != nil {
		return err
	}
	ft := &FrameLabelTag{Name: name}
	if consumed := s.BytePosition() - start; consumed < int(h.Length) {
		b, err := s.ReadUint8()
		if err != nil {
			return err
		}
		ft.NamedAnchor = b == 1
	}
	dst.FrameLabel = ft
	return nil
}

// ExportAssetsTag is tag 56: a table of (id, name) pairs for symbols
// exported to other SWF files.
type ExportAssetsTag struct {
	Assets []AssetRef `json:"assets"`
}

// AssetRef is a (character id, name) pair shared by the export/import
// asset tags.
type AssetRef struct {
	ID   uint16 `json:"id"`
	Name string `json:"name"`
}

func readAssetRefs(s *BitStream) ([]AssetRef, error) {
	count, err := s.ReadUint16()
	if err != nil {
		return nil, err
	}
	refs := make([]AssetRef, count)
	for i := range refs {
		if refs[i].ID, err = s.ReadUint16(); err != nil {
			return nil, err
		}
		if refs[i].Name, err = s.ReadCString(); err != nil {
			return nil, err
		}
	}
	return refs, nil
}

func decodeExportAssetsTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	refs, err := readAssetRefs(s)
	if err != nil {
		return err
	}
	dst.ExportAssets = &ExportAssetsTag{Assets: refs}
	return nil
}

// ImportAssetsTag is tag 57 (version 1) or 71 (version 2, carries a
// trailing reserved byte and a download-policy byte before the table).
type ImportAssetsTag struct {
	URL     string     `json:"url"`
	Version int        `json:"version"`
	Assets  []AssetRef `json:"assets"`
}

func decodeImportAssetsTag(version int) tagDecoder {
	return func(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
		url, err := s.ReadCString()
		if err != nil {
			return err
		}
		if version == 2 {
			if _, err := s.ReadUint16(); err != nil { // reserved + download flag byte
				return err
			}
		}
		refs, err := readAssetRefs(s)
		if err != nil {
			return err
		}
		dst.ImportAssets = &ImportAssetsTag{URL: url, Version: version, Assets: refs}
		return nil
	}
}

// EnableDebuggerTag is tag 58 (version 1, no reserved field) or 64
// (version 2, a leading reserved uint16) carrying the MD5-hashed
// debugger password.
type EnableDebuggerTag struct {
	Version      int    `json:"version"`
	PasswordHash string `json:"password_hash"`
}

func decodeEnableDebuggerTag(version int) tagDecoder {
	return func(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
		if version == 2 {
			if _, err := s.ReadUint16(); err != nil {
				return err
			}
		}
		hash, err := s.ReadCString()
		if err != nil {
			return err
		}
		dst.EnableDebugger = &EnableDebuggerTag{Version: version, PasswordHash: hash}
		return nil
	}
}

// ScriptLimitsTag is tag 65.
type ScriptLimitsTag struct {
	MaxRecursionDepth uint16 `json:"max_recursion_depth"`
	ScriptTimeoutSeconds uint16 `json:"script_timeout_seconds"`
}

func decodeScriptLimitsTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	st := &ScriptLimitsTag{}
	var err error
	if st.MaxRecursionDepth, err = s.ReadUint16(); err != nil {
		return err
	}
	if st.ScriptTimeoutSeconds, err = s.ReadUint16(); err != nil {
		return err
	}
	dst.ScriptLimits = st
	return nil
}

// SetTabIndexTag is tag 66.
type SetTabIndexTag struct {
	Depth    uint16 `json:"depth"`
	TabIndex uint16 `json:"tab_index"`
}

func decodeSetTabIndexTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	st := &SetTabIndexTag{}
	var err error
	if st.Depth, err = s.ReadUint16(); err != nil {
		return err
	}
	if st.TabIndex, err = s.ReadUint16(); err != nil {
		return err
	}
	dst.SetTabIndex = st
	return nil
}

// FileAttributesTag is tag 69: a single flags word.
type FileAttributesTag struct {
	UseDirectBlit     bool `json:"use_direct_blit"`
	UseGPU            bool `json:"use_gpu"`
	HasMetadata       bool `json:"has_metadata"`
	ActionScript3     bool `json:"actionscript3"`
	UseNetwork        bool `json:"use_network"`
}

func decodeFileAttributesTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	if _, err := s.ReadUBits(1); err != nil { // reserved
		return err
	}
	fa := &FileAttributesTag{}
	var err error
	if fa.UseDirectBlit, err = s.ReadBitBool(); err != nil {
		return err
	}
	if fa.UseGPU, err = s.ReadBitBool(); err != nil {
		return err
	}
	if fa.HasMetadata, err = s.ReadBitBool(); err != nil {
		return err
	}
	if fa.ActionScript3, err = s.ReadBitBool(); err != nil {
		return err
	}
	if _, err = s.ReadUBits(2); err != nil { // reserved
		return err
	}
	if fa.UseNetwork, err = s.ReadBitBool(); err != nil {
		return err
	}
	if _, err = s.ReadUBits(24); err != nil { // reserved
		return err
	}
	dst.FileAttributes = fa
	return nil
}

// SymbolClassTag is tag 76: a table of (id, class-name) pairs.
type SymbolClassTag struct {
	Symbols []AssetRef `json:"symbols"`
}

func decodeSymbolClassTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	refs, err := readAssetRefs(s)
	if err != nil {
		return err
	}
	dst.SymbolClass = &SymbolClassTag{Symbols: refs}
	return nil
}

// MetadataTag is tag 77: a single raw XML/RDF string.
type MetadataTag struct {
	XML string `json:"xml"`
}

func decodeMetadataTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	xml, err := s.ReadCString()
	if err != nil {
		return err
	}
	dst.Metadata = &MetadataTag{XML: xml}
	return nil
}

// DefineScalingGridTag is tag 78: binds a character id to a guide
// rectangle used for 9-slice scaling.
type DefineScalingGridTag struct {
	CharacterID uint16    `json:"character_id"`
	Splitter    Rectangle `json:"splitter"`
}

func decodeDefineScalingGridTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	id, err := s.ReadUint16()
	if err != nil {
		return err
	}
	r, err := readRectangle(s)
	if err != nil {
		return err
	}
	dst.DefineScalingGrid = &DefineScalingGridTag{CharacterID: id, Splitter: r}
	return nil
}

// ProductInfoTag is tag 41: Adobe-internal build provenance, kept for
// completeness of the tag taxonomy even though it has no effect on
// playback.
type ProductInfoTag struct {
	ProductID    uint32 `json:"product_id"`
	Edition      uint32 `json:"edition"`
	MajorVersion uint8  `json:"major_version"`
	MinorVersion uint8  `json:"minor_version"`
	BuildNumber  uint64 `json:"build_number"`
	CompileDate  uint64 `json:"compile_date"`
}

func decodeProductInfoTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	pi := &ProductInfoTag{}
	var err error
	if pi.ProductID, err = s.ReadUint32(); err != nil {
		return err
	}
	if pi.Edition, err = s.ReadUint32(); err != nil {
		return err
	}
	if pi.MajorVersion, err = s.ReadUint8(); err != nil {
		return err
	}
	if pi.MinorVersion, err = s.ReadUint8(); err != nil {
		return err
	}
	if pi.BuildNumber, err = s.ReadUint64(); err != nil {
		return err
	}
	if pi.CompileDate, err = s.ReadUint64(); err != nil {
		return err
	}
	dst.ProductInfo = pi
	return nil
}

// DefineBinaryDataTag is tag 87.
type DefineBinaryDataTag struct {
	CharacterID uint16 `json:"character_id"`
	Data        []byte `json:"data"`
}

func decodeDefineBinaryDataTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	id, err := s.ReadUint16()
	if err != nil {
		return err
	}
	if _, err := s.ReadUint32(); err != nil { // reserved
		return err
	}
	remaining := int(h.Length) - 6
	if remaining < 0 {
		return ErrStreamExhaustion
	}
	data, err := s.ReadBytes(remaining)
	if err != nil {
		return err
	}
	dst.DefineBinaryData = &DefineBinaryDataTag{CharacterID: id, Data: data}
	return nil
}

// DoActionTag is tag 12: an AVM1 action list scoped to the current frame.
type DoActionTag struct {
	Actions []Action `json:"actions"`
}

func decodeDoActionTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	end := s.BytePosition() + int(h.Length)
	actions, err := readActionList(s, end)
	if err != nil {
		return err
	}
	dst.DoAction = &DoActionTag{Actions: actions}
	return nil
}

// DoInitActionTag is tag 59: an AVM1 action list scoped to a sprite's
// initialization, keyed by the sprite's character id.
type DoInitActionTag struct {
	SpriteID uint16   `json:"sprite_id"`
	Actions  []Action `json:"actions"`
}

func decodeDoInitActionTag(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
	id, err := s.ReadUint16()
	if err != nil {
		return err
	}
	end := s.BytePosition() + int(h.Length) - 2
	actions, err := readActionList(s, end)
	if err != nil {
		return err
	}
	dst.DoInitAction = &DoInitActionTag{SpriteID: id, Actions: actions}
	return nil
}
