// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// ShapeTag is the payload shared by DefineShape (v1), DefineShape2 (v2),
// DefineShape3 (v3, RGBA colors), and DefineShape4 (v4, edge bounds plus
// a stroke usage flags byte).
type ShapeTag struct {
	Version     int            `json:"version"`
	CharacterID uint16         `json:"character_id"`
	Bounds      Rectangle      `json:"bounds"`
	EdgeBounds  Rectangle      `json:"edge_bounds,omitempty"`
	UsesFillWindingRule bool   `json:"uses_fill_winding_rule,omitempty"`
	UsesNonScalingStrokes bool `json:"uses_non_scaling_strokes,omitempty"`
	UsesScalingStrokes  bool   `json:"uses_scaling_strokes,omitempty"`
	Shapes      ShapeWithStyle `json:"shapes"`
}

// decodeDefineShapeTag returns a tagDecoder bound to a specific
// DefineShape tag version (1 through 4), the version being the one free
// variable across the four tag codes.
func decodeDefineShapeTag(version int) tagDecoder {
	return func(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
		st := &ShapeTag{Version: version}
		var err error
		if st.CharacterID, err = s.ReadUint16(); err != nil {
			return err
		}
		if st.Bounds, err = readRectangle(s); err != nil {
			return err
		}
		if version == 4 {
			if st.EdgeBounds, err = readRectangle(s); err != nil {
				return err
			}
			if _, err = s.ReadUBits(5); err != nil { // reserved
				return err
			}
			if st.UsesNonScalingStrokes, err = s.ReadBitBool(); err != nil {
				return err
			}
			if st.UsesScalingStrokes, err = s.ReadBitBool(); err != nil {
				return err
			}
			if st.UsesFillWindingRule, err = s.ReadBitBool(); err != nil {
				return err
			}
		}
		st.Shapes, err = readShapeWithStyle(s, version)
		if err != nil {
			return err
		}
		dst.Shape = st
		return nil
	}
}

// MorphShapeTag is the payload shared by DefineMorphShape (v1) and
// DefineMorphShape2 (v2, adds edge bounds and the stroke flags byte).
type MorphShapeTag struct {
	Version     int        `json:"version"`
	CharacterID uint16     `json:"character_id"`
	StartBounds Rectangle  `json:"start_bounds"`
	EndBounds   Rectangle  `json:"end_bounds"`
	StartEdgeBounds Rectangle `json:"start_edge_bounds,omitempty"`
	EndEdgeBounds   Rectangle `json:"end_edge_bounds,omitempty"`
	UsesNonScalingStrokes bool `json:"uses_non_scaling_strokes,omitempty"`
	UsesScalingStrokes    bool `json:"uses_scaling_strokes,omitempty"`
	Shape MorphShape `json:"shape"`
}

func decodeDefineMorphShapeTag(version int) tagDecoder {
	return func(s *BitStream, h TagHeader, dst *Tag, _ uint8) error {
		mt := &MorphShapeTag{Version: version}
		var err error
		if mt.CharacterID, err = s.ReadUint16(); err != nil {
			return err
		}
		if mt.StartBounds, err = readRectangle(s); err != nil {
			return err
		}
		if mt.EndBounds, err = readRectangle(s); err != nil {
			return err
		}
		if version == 2 {
			if mt.StartEdgeBounds, err = readRectangle(s); err != nil {
				return err
			}
			if mt.EndEdgeBounds, err = readRectangle(s); err != nil {
				return err
			}
			if _, err = s.ReadUBits(6); err != nil { // reserved
				return err
			}
			if mt.UsesNonScalingStrokes, err = s.ReadBitBool(); err != nil {
				return err
			}
			if mt.UsesScalingStrokes, err = s.ReadBitBool(); err != nil {
				return err
			}
		}
		if _, err = s.ReadUint32(); err != nil { // offset to end edges, unused here
			return err
		}

		shape := MorphShape{
			StartBounds:     mt.StartBounds,
			EndBounds:       mt.EndBounds,
			StartEdgeBounds: mt.StartEdgeBounds,
			EndEdgeBounds:   mt.EndEdgeBounds,
		}
		if shape.FillStyles, err = readMorphFillStyleArray(s); err != nil {
			return err
		}
		shapeVersion2 := version == 2
		if shape.LineStyles, shape.LineStyles2, err = readMorphLineStyleArray(s, shapeVersion2); err != nil {
			return err
		}

		startFillBits, err := s.ReadUBits(4)
		if err != nil {
			return err
		}
		startLineBits, err := s.ReadUBits(4)
		if err != nil {
			return err
		}
		if shape.StartShape, err = readShapeRecords(s, version, startFillBits, startLineBits); err != nil {
			return err
		}
		endFillBits, err := s.ReadUBits(4)
		if err != nil {
			return err
		}
		endLineBits, err := s.ReadUBits(4)
		if err != nil {
			return err
		}
		shape.EndShape, err = readShapeRecords(s, version, endFillBits, endLineBits)
		if err != nil {
			return err
		}

		mt.Shape = shape
		dst.MorphShape = mt
		return nil
	}
}
