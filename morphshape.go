// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// MorphGradientRecord pairs a start and end (ratio, color) stop.
type MorphGradientRecord struct {
	StartRatio uint8 `json:"start_ratio"`
	StartColor RGBA  `json:"start_color"`
	EndRatio   uint8 `json:"end_ratio"`
	EndColor   RGBA  `json:"end_color"`
}

// MorphGradient is the paired-stop gradient used by morph fill styles.
type MorphGradient struct {
	Records []MorphGradientRecord `json:"records"`
}

func readMorphGradient(s *BitStream) (MorphGradient, error) {
	count, err := s.ReadUint8()
	if err != nil {
		return MorphGradient{}, err
	}
	g := MorphGradient{Records: make([]MorphGradientRecord, count)}
	for i := range g.Records {
		r := &g.Records[i]
		if r.StartRatio, err = s.ReadUint8(); err != nil {
			return g, err
		}
		if r.StartColor, err = readRGBA(s); err != nil {
			return g, err
		}
		if r.EndRatio, err = s.ReadUint8(); err != nil {
			return g, err
		}
		if r.EndColor, err = readRGBA(s); err != nil {
			return g, err
		}
	}
	return g, nil
}

// MorphFillStyle mirrors FillStyle but every geometric/color field comes
// in a paired start/end form.
type MorphFillStyle struct {
	Kind              uint8         `json:"kind"`
	StartColor        RGBA          `json:"start_color,omitempty"`
	EndColor          RGBA          `json:"end_color,omitempty"`
	StartGradientMatrix Matrix      `json:"start_gradient_matrix,omitempty"`
	EndGradientMatrix   Matrix      `json:"end_gradient_matrix,omitempty"`
	Gradient          MorphGradient `json:"gradient,omitempty"`
	BitmapID          uint16        `json:"bitmap_id,omitempty"`
	StartBitmapMatrix Matrix        `json:"start_bitmap_matrix,omitempty"`
	EndBitmapMatrix   Matrix        `json:"end_bitmap_matrix,omitempty"`
}

func readMorphFillStyle(s *BitStream) (MorphFillStyle, error) {
	kind, err := s.ReadUint8()
	if err != nil {
		return MorphFillStyle{}, err
	}
	fs := MorphFillStyle{Kind: kind}

	switch kind {
	case FillSolid:
		if fs.StartColor, err = readRGBA(s); err != nil {
			return fs, err
		}
		fs.EndColor, err = readRGBA(s)
	case FillLinearGradient, FillRadialGradient, FillFocalRadialGradient:
		if fs.StartGradientMatrix, err = readMatrix(s); err != nil {
			return fs, err
		}
		if fs.EndGradientMatrix, err = readMatrix(s); err != nil {
			return fs, err
		}
		fs.Gradient, err = readMorphGradient(s)
	case FillRepeatingBitmap, FillClippedBitmap, FillNonSmoothedRepeatingBitmap, FillNonSmoothedClippedBitmap:
		if fs.BitmapID, err = s.ReadUint16(); err != nil {
			return fs, err
		}
		if fs.StartBitmapMatrix, err = readMatrix(s); err != nil {
			return fs, err
		}
		fs.EndBitmapMatrix, err = readMatrix(s)
	default:
		return fs, ErrUnknownDiscriminator
	}
	return fs, err
}

func readMorphFillStyleArray(s *BitStream) ([]MorphFillStyle, error) {
	count, err := readStyleArrayCount(s)
	if err != nil {
		return nil, err
	}
	styles := make([]MorphFillStyle, count)
	for i := range styles {
		if styles[i], err = readMorphFillStyle(s); err != nil {
			return nil, err
		}
	}
	return styles, nil
}

// MorphLineStyle is the shape-version-1 morph line style: paired widths
// and colors, no cap/join information.
type MorphLineStyle struct {
	StartWidth uint16 `json:"start_width"`
	EndWidth   uint16 `json:"end_width"`
	StartColor RGBA   `json:"start_color"`
	EndColor   RGBA   `json:"end_color"`
}

func readMorphLineStyle(s *BitStream) (MorphLineStyle, error) {
	var ls MorphLineStyle
	var err error
	if ls.StartWidth, err = s.ReadUint16(); err != nil {
		return ls, err
	}
	if ls.EndWidth, err = s.ReadUint16(); err != nil {
		return ls, err
	}
	if ls.StartColor, err = readRGBA(s); err != nil {
		return ls, err
	}
	ls.EndColor, err = readRGBA(s)
	return ls, err
}

// MorphLineStyle2 is the shape-version-2 morph line style: cap/join/flags
// as in LineStyle2, plus either paired explicit colors or a single
// MorphFillStyle carrying both ends of the stroke's fill.
type MorphLineStyle2 struct {
	StartWidth    uint16         `json:"start_width"`
	EndWidth      uint16         `json:"end_width"`
	StartCapStyle uint8          `json:"start_cap_style"`
	JoinStyle     uint8          `json:"join_style"`
	HasFill       bool           `json:"has_fill"`
	NoHScale      bool           `json:"no_h_scale"`
	NoVScale      bool           `json:"no_v_scale"`
	PixelHinting  bool           `json:"pixel_hinting"`
	NoClose       bool           `json:"no_close"`
	EndCapStyle   uint8          `json:"end_cap_style"`
	MiterLimit    float64        `json:"miter_limit,omitempty"`
	StartColor    RGBA           `json:"start_color,omitempty"`
	EndColor      RGBA           `json:"end_color,omitempty"`
	FillType      MorphFillStyle `json:"fill_type,omitempty"`
}

func readMorphLineStyle2(s *BitStream) (MorphLineStyle2, error) {
	var ls MorphLineStyle2
	var err error
	if ls.StartWidth, err = s.ReadUint16(); err != nil {
		return ls, err
	}
	if ls.EndWidth, err = s.ReadUint16(); err != nil {
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
	if _, err = s.ReadUBits(5); err != nil {
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
		ls.FillType, err = readMorphFillStyle(s)
	} else {
		if ls.StartColor, err = readRGBA(s); err != nil {
			return ls, err
		}
		ls.EndColor, err = readRGBA(s)
	}
	return ls, err
}

// MorphShape is the DefineMorphShape payload: paired fill/line style
// arrays plus the two edge lists (start and end).
type MorphShape struct {
	StartBounds     Rectangle         `json:"start_bounds"`
	EndBounds       Rectangle         `json:"end_bounds"`
	StartEdgeBounds Rectangle         `json:"start_edge_bounds,omitempty"`
	EndEdgeBounds   Rectangle         `json:"end_edge_bounds,omitempty"`
	FillStyles      []MorphFillStyle  `json:"fill_styles"`
	LineStyles      []MorphLineStyle  `json:"line_styles,omitempty"`
	LineStyles2     []MorphLineStyle2 `json:"line_styles2,omitempty"`
	StartShape      Shape             `json:"start_shape"`
	EndShape        Shape             `json:"end_shape"`
}

// readMorphLineStyleArray reads the count-prefixed morph line style array,
// using MorphLineStyle2 when shapeVersion2 is true.
func readMorphLineStyleArray(s *BitStream, shapeVersion2 bool) ([]MorphLineStyle, []MorphLineStyle2, error) {
	count, err := readStyleArrayCount(s)
	if err != nil {
		return nil, nil, err
	}
	if shapeVersion2 {
		styles := make([]MorphLineStyle2, count)
		for i := range styles {
			if styles[i], err = readMorphLineStyle2(s); err != nil {
				return nil, nil, err
			}
		}
		return nil, styles, nil
	}
	styles := make([]MorphLineStyle, count)
	for i := range styles {
		if styles[i], err = readMorphLineStyle(s); err != nil {
			return nil, nil, err
		}
	}
	return styles, nil, nil
}
