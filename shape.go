// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Fill-style kind discriminators (§4.3).
const (
	FillSolid                       uint8 = 0x00
	FillLinearGradient               uint8 = 0x10
	FillRadialGradient               uint8 = 0x12
	FillFocalRadialGradient          uint8 = 0x13
	FillRepeatingBitmap              uint8 = 0x40
	FillClippedBitmap                uint8 = 0x41
	FillNonSmoothedRepeatingBitmap   uint8 = 0x42
	FillNonSmoothedClippedBitmap     uint8 = 0x43
)

// FillStyle is a tagged-variant record: only the fields relevant to Kind
// are populated, mirroring the teacher's per-variant debug-directory
// payloads in debug.go (CVInfoPDB70 vs CVInfoPDB20, selected by signature).
type FillStyle struct {
	Kind          uint8          `json:"kind"`
	Color         RGBA           `json:"color,omitempty"`
	GradientMatrix Matrix        `json:"gradient_matrix,omitempty"`
	Gradient      Gradient       `json:"gradient,omitempty"`
	FocalGradient FocalGradient  `json:"focal_gradient,omitempty"`
	BitmapID      uint16         `json:"bitmap_id,omitempty"`
	BitmapMatrix  Matrix         `json:"bitmap_matrix,omitempty"`
}

func readFillStyle(s *BitStream, shapeVersion int) (FillStyle, error) {
	kind, err := s.ReadUint8()
	if err != nil {
		return FillStyle{}, err
	}
	fs := FillStyle{Kind: kind}

	switch kind {
	case FillSolid:
		fs.Color, err = readColor(s, shapeVersion)
	case FillLinearGradient, FillRadialGradient:
		if fs.GradientMatrix, err = readMatrix(s); err != nil {
			return fs, err
		}
		fs.Gradient, err = readGradient(s, shapeVersion)
	case FillFocalRadialGradient:
		if fs.GradientMatrix, err = readMatrix(s); err != nil {
			return fs, err
		}
		fs.FocalGradient, err = readFocalGradient(s, shapeVersion)
	case FillRepeatingBitmap, FillClippedBitmap, FillNonSmoothedRepeatingBitmap, FillNonSmoothedClippedBitmap:
		if fs.BitmapID, err = s.ReadUint16(); err != nil {
			return fs, err
		}
		fs.BitmapMatrix, err = readMatrix(s)
	default:
		return fs, ErrUnknownDiscriminator
	}
	return fs, err
}

// readFillStyleArray reads a count-prefixed array of FillStyle: a 1-byte
// count with an extended 16-bit form when the byte equals 0xFF.
func readFillStyleArray(s *BitStream, shapeVersion int) ([]FillStyle, error) {
	count, err := readStyleArrayCount(s)
	if err != nil {
		return nil, err
	}
	styles := make([]FillStyle, count)
	for i := range styles {
		if styles[i], err = readFillStyle(s, shapeVersion); err != nil {
			return nil, err
		}
	}
	return styles, nil
}

func readStyleArrayCount(s *BitStream) (int, error) {
	count8, err := s.ReadUint8()
	if err != nil {
		return 0, err
	}
	if count8 != 0xFF {
		return int(count8), nil
	}
	count16, err := s.ReadUint16()
	if err != nil {
		return 0, err
	}
	return int(count16), nil
}

// LineStyle is the pre-v4 line style: a width plus a plain color.
type LineStyle struct {
	Width uint16 `json:"width"`
	Color RGBA   `json:"color"`
}

func readLineStyle(s *BitStream, shapeVersion int) (LineStyle, error) {
	var ls LineStyle
	var err error
	if ls.Width, err = s.ReadUint16(); err != nil {
		return ls, err
	}
	ls.Color, err = readColor(s, shapeVersion)
	return ls, err
}

// LineStyle2 is the DefineShape4 line style: cap/join/scaling flags and
// either an explicit color or a fill style for the stroke.
type LineStyle2 struct {
	Width           uint16    `json:"width"`
	StartCapStyle   uint8     `json:"start_cap_style"`
	JoinStyle       uint8     `json:"join_style"`
	HasFill         bool      `json:"has_fill"`
	NoHScale        bool      `json:"no_h_scale"`
	NoVScale        bool      `json:"no_v_scale"`
	PixelHinting    bool      `json:"pixel_hinting"`
	NoClose         bool      `json:"no_close"`
	EndCapStyle     uint8     `json:"end_cap_style"`
	MiterLimit      float64   `json:"miter_limit,omitempty"`
	Color           RGBA      `json:"color,omitempty"`
	FillType        FillStyle `json:"fill_type,omitempty"`
}

const joinStyleMiter = 2

func readLineStyle2(s *BitStream, shapeVersion int) (LineStyle2, error) {
	var ls LineStyle2
	var err error
	if ls.Width, err = s.ReadUint16(); err != nil {
		return ls, err
	}
	startCap, err := s.ReadUBits(2)
	if err != nil {
		return ls, err
	}
	ls.StartCapStyle = uint8(startCap)
	join, err := s.ReadUBits(2)
	if err != nil {
		return ls, err
	}
	ls.JoinStyle = uint8(join)
	if ls.HasFill, err = s.ReadBitBool(); err != nil {
		return ls, err
	}
	if ls.NoHScale, err = s.ReadBitBool(); err != nil {
		return ls, err
	}
	if ls.NoVScale, err = s.ReadBitBool(); err != nil {
		return ls, err
	}
	if ls.PixelHinting, err = s.ReadBitBool(); err != nil {
		return ls, err
	}
	if _, err = s.ReadUBits(5); err != nil { // reserved
		return ls, err
	}
	if ls.NoClose, err = s.ReadBitBool(); err != nil {
		return ls, err
	}
	endCap, err := s.ReadUBits(2)
	if err != nil {
		return ls, err
	}
	ls.EndCapStyle = uint8(endCap)

	if ls.JoinStyle == joinStyleMiter {
		if ls.MiterLimit, err = s.ReadFixed8(); err != nil {
			return ls, err
		}
	}
	if ls.HasFill {
		ls.FillType, err = readFillStyle(s, shapeVersion)
	} else {
		ls.Color, err = readColor(s, shapeVersion)
	}
	return ls, err
}

// readLineStyleArray reads a count-prefixed array of line styles, using
// LineStyle2 for shapeVersion 4 and LineStyle otherwise.
func readLineStyleArray(s *BitStream, shapeVersion int) ([]LineStyle, []LineStyle2, error) {
	count, err := readStyleArrayCount(s)
	if err != nil {
		return nil, nil, err
	}
	if shapeVersion >= 4 {
		styles := make([]LineStyle2, count)
		for i := range styles {
			if styles[i], err = readLineStyle2(s, shapeVersion); err != nil {
				return nil, nil, err
			}
		}
		return nil, styles, nil
	}
	styles := make([]LineStyle, count)
	for i := range styles {
		if styles[i], err = readLineStyle(s, shapeVersion); err != nil {
			return nil, nil, err
		}
	}
	return styles, nil, nil
}

// ShapeRecordKind discriminates the ShapeRecord tagged variant.
type ShapeRecordKind uint8

const (
	ShapeRecordEnd ShapeRecordKind = iota
	ShapeRecordStyleChange
	ShapeRecordStraightEdge
	ShapeRecordCurvedEdge
)

// ShapeRecord is a tagged variant: StraightEdge, CurvedEdge, StyleChange,
// or the EndShape terminator (five zero state-flag bits).
type ShapeRecord struct {
	Kind ShapeRecordKind `json:"kind"`

	// StyleChange fields.
	MoveDeltaX  int32      `json:"move_delta_x,omitempty"`
	MoveDeltaY  int32      `json:"move_delta_y,omitempty"`
	FillStyle0  uint32     `json:"fill_style0,omitempty"`
	FillStyle1  uint32     `json:"fill_style1,omitempty"`
	LineStyle   uint32     `json:"line_style,omitempty"`
	HasNewStyles bool      `json:"has_new_styles,omitempty"`
	FillStyles  []FillStyle `json:"fill_styles,omitempty"`
	LineStyles  []LineStyle `json:"line_styles,omitempty"`
	LineStyles2 []LineStyle2 `json:"line_styles2,omitempty"`

	// Edge fields. A straight edge stores its deltas in MoveDeltaX and
	// MoveDeltaY above; a curved edge populates Control* and Anchor*.
	ControlDeltaX int32 `json:"control_delta_x,omitempty"`
	ControlDeltaY int32 `json:"control_delta_y,omitempty"`
	AnchorDeltaX  int32 `json:"anchor_delta_x,omitempty"`
	AnchorDeltaY  int32 `json:"anchor_delta_y,omitempty"`
}

// Shape is an ordered list of ShapeRecord, decoded with a running
// (fill-bits, line-bits) width that StyleChange's NewStyles sub-field can
// reset mid-stream.
type Shape struct {
	Records []ShapeRecord `json:"records"`
}

// readShapeRecords decodes the ShapeRecord loop starting from the given
// initial fill/line bit widths, terminating at EndShape.
func readShapeRecords(s *BitStream, shapeVersion int, fillBits, lineBits uint32) (Shape, error) {
	var shape Shape
	for {
		isEdge, err := s.ReadBitBool()
		if err != nil {
			return shape, err
		}
		if !isEdge {
			rec, newFillBits, newLineBits, isEnd, err := readNonEdgeRecord(s, shapeVersion, fillBits, lineBits)
			if err != nil {
				return shape, err
			}
			if isEnd {
				return shape, nil
			}
			fillBits, lineBits = newFillBits, newLineBits
			shape.Records = append(shape.Records, rec)
			continue
		}
		rec, err := readEdgeRecord(s)
		if err != nil {
			return shape, err
		}
		shape.Records = append(shape.Records, rec)
	}
}

func readNonEdgeRecord(s *BitStream, shapeVersion int, fillBits, lineBits uint32) (ShapeRecord, uint32, uint32, bool, error) {
	newStyles, err := s.ReadBitBool()
	if err != nil {
		return ShapeRecord{}, fillBits, lineBits, false, err
	}
	hasLineStyle, err := s.ReadBitBool()
	if err != nil {
		return ShapeRecord{}, fillBits, lineBits, false, err
	}
	hasFillStyle1, err := s.ReadBitBool()
	if err != nil {
		return ShapeRecord{}, fillBits, lineBits, false, err
	}
	hasFillStyle0, err := s.ReadBitBool()
	if err != nil {
		return ShapeRecord{}, fillBits, lineBits, false, err
	}
	hasMoveTo, err := s.ReadBitBool()
	if err != nil {
		return ShapeRecord{}, fillBits, lineBits, false, err
	}

	if !newStyles && !hasLineStyle && !hasFillStyle1 && !hasFillStyle0 && !hasMoveTo {
		return ShapeRecord{}, fillBits, lineBits, true, nil
	}

	rec := ShapeRecord{Kind: ShapeRecordStyleChange}

	if hasMoveTo {
		nbits, err := s.ReadUBits(5)
		if err != nil {
			return rec, fillBits, lineBits, false, err
		}
		if rec.MoveDeltaX, err = s.ReadSBits(int(nbits)); err != nil {
			return rec, fillBits, lineBits, false, err
		}
		if rec.MoveDeltaY, err = s.ReadSBits(int(nbits)); err != nil {
			return rec, fillBits, lineBits, false, err
		}
	}
	if hasFillStyle0 {
		if rec.FillStyle0, err = s.ReadUBits(int(fillBits)); err != nil {
			return rec, fillBits, lineBits, false, err
		}
	}
	if hasFillStyle1 {
		if rec.FillStyle1, err = s.ReadUBits(int(fillBits)); err != nil {
			return rec, fillBits, lineBits, false, err
		}
	}
	if hasLineStyle {
		if rec.LineStyle, err = s.ReadUBits(int(lineBits)); err != nil {
			return rec, fillBits, lineBits, false, err
		}
	}
	if newStyles {
		rec.HasNewStyles = true
		if rec.FillStyles, err = readFillStyleArray(s, shapeVersion); err != nil {
			return rec, fillBits, lineBits, false, err
		}
		if rec.LineStyles, rec.LineStyles2, err = readLineStyleArray(s, shapeVersion); err != nil {
			return rec, fillBits, lineBits, false, err
		}
		nFillBits, err := s.ReadUBits(4)
		if err != nil {
			return rec, fillBits, lineBits, false, err
		}
		nLineBits, err := s.ReadUBits(4)
		if err != nil {
			return rec, fillBits, lineBits, false, err
		}
		fillBits, lineBits = nFillBits, nLineBits
	}
	return rec, fillBits, lineBits, false, nil
}

func readEdgeRecord(s *BitStream) (ShapeRecord, error) {
	straight, err := s.ReadBitBool()
	if err != nil {
		return ShapeRecord{}, err
	}
	nbitsField, err := s.ReadUBits(4)
	if err != nil {
		return ShapeRecord{}, err
	}
	nbits := int(nbitsField) + 2

	if straight {
		rec := ShapeRecord{Kind: ShapeRecordStraightEdge}
		general, err := s.ReadBitBool()
		if err != nil {
			return rec, err
		}
		if general {
			if rec.MoveDeltaX, err = s.ReadSBits(nbits); err != nil {
				return rec, err
			}
			if rec.MoveDeltaY, err = s.ReadSBits(nbits); err != nil {
				return rec, err
			}
			return rec, nil
		}
		vertical, err := s.ReadBitBool()
		if err != nil {
			return rec, err
		}
		if vertical {
			rec.MoveDeltaY, err = s.ReadSBits(nbits)
		} else {
			rec.MoveDeltaX, err = s.ReadSBits(nbits)
		}
		return rec, err
	}

	rec := ShapeRecord{Kind: ShapeRecordCurvedEdge}
	if rec.ControlDeltaX, err = s.ReadSBits(nbits); err != nil {
		return rec, err
	}
	if rec.ControlDeltaY, err = s.ReadSBits(nbits); err != nil {
		return rec, err
	}
	if rec.AnchorDeltaX, err = s.ReadSBits(nbits); err != nil {
		return rec, err
	}
	rec.AnchorDeltaY, err = s.ReadSBits(nbits)
	return rec, err
}

// ShapeWithStyle is FillStyleArray + LineStyleArray + Shape, the payload
// carried by DefineShape tags.
type ShapeWithStyle struct {
	FillStyles  []FillStyle  `json:"fill_styles"`
	LineStyles  []LineStyle  `json:"line_styles,omitempty"`
	LineStyles2 []LineStyle2 `json:"line_styles2,omitempty"`
	Shape       Shape        `json:"shape"`
}

func readShapeWithStyle(s *BitStream, shapeVersion int) (ShapeWithStyle, error) {
	var sws ShapeWithStyle
	var err error
	if sws.FillStyles, err = readFillStyleArray(s, shapeVersion); err != nil {
		return sws, err
	}
	if sws.LineStyles, sws.LineStyles2, err = readLineStyleArray(s, shapeVersion); err != nil {
		return sws, err
	}
	fillBits, err := s.ReadUBits(4)
	if err != nil {
		return sws, err
	}
	lineBits, err := s.ReadUBits(4)
	if err != nil {
		return sws, err
	}
	sws.Shape, err = readShapeRecords(s, shapeVersion, fillBits, lineBits)
	return sws, err
}
