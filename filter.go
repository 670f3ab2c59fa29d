// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// Filter id discriminators (§4.5).
const (
	FilterDropShadow    uint8 = 0
	FilterBlur          uint8 = 1
	FilterGlow          uint8 = 2
	FilterBevel         uint8 = 3
	FilterGradientGlow  uint8 = 4
	FilterConvolution   uint8 = 5
	FilterColorMatrix   uint8 = 6
	FilterGradientBevel uint8 = 7
)

// Filter is a tagged variant over the eight visual filter kinds. Only the
// fields relevant to ID are populated.
type Filter struct {
	ID uint8 `json:"id"`

	DropShadow    *DropShadowFilter    `json:"drop_shadow,omitempty"`
	Blur          *BlurFilter          `json:"blur,omitempty"`
	Glow          *GlowFilter          `json:"glow,omitempty"`
	Bevel         *BevelFilter         `json:"bevel,omitempty"`
	GradientGlow  *GradientFilter      `json:"gradient_glow,omitempty"`
	Convolution   *ConvolutionFilter   `json:"convolution,omitempty"`
	ColorMatrix   *ColorMatrixFilter   `json:"color_matrix,omitempty"`
	GradientBevel *GradientFilter      `json:"gradient_bevel,omitempty"`
}

// DropShadowFilter per §4.5.
type DropShadowFilter struct {
	Color           RGBA    `json:"color"`
	BlurX           float64 `json:"blur_x"`
	BlurY           float64 `json:"blur_y"`
	Angle           float64 `json:"angle"`
	Distance        float64 `json:"distance"`
	Strength        float64 `json:"strength"`
	InnerShadow     bool    `json:"inner_shadow"`
	Knockout        bool    `json:"knockout"`
	CompositeSource bool    `json:"composite_source"`
	Passes          uint8   `json:"passes"`
}

func readDropShadowFilter(s *BitStream) (*DropShadowFilter, error) {
	f := &DropShadowFilter{}
	var err error
	if f.Color, err = readRGBA(s); err != nil {
		return nil, err
	}
	if f.BlurX, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.BlurY, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Angle, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Distance, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Strength, err = s.ReadFixed8(); err != nil {
		return nil, err
	}
	if f.InnerShadow, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.Knockout, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.CompositeSource, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	passes, err := s.ReadUBits(5)
	if err != nil {
		return nil, err
	}
	f.Passes = uint8(passes)
	return f, nil
}

// BlurFilter per §4.5.
type BlurFilter struct {
	BlurX  float64 `json:"blur_x"`
	BlurY  float64 `json:"blur_y"`
	Passes uint8   `json:"passes"`
}

func readBlurFilter(s *BitStream) (*BlurFilter, error) {
	f := &BlurFilter{}
	var err error
	if f.BlurX, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.BlurY, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	passes, err := s.ReadUBits(5)
	if err != nil {
		return nil, err
	}
	f.Passes = uint8(passes)
	if _, err = s.ReadUBits(3); err != nil { // reserved
		return nil, err
	}
	return f, nil
}

// GlowFilter per §4.5.
type GlowFilter struct {
	Color           RGBA    `json:"color"`
	BlurX           float64 `json:"blur_x"`
	BlurY           float64 `json:"blur_y"`
	Strength        float64 `json:"strength"`
	InnerGlow       bool    `json:"inner_glow"`
	Knockout        bool    `json:"knockout"`
	CompositeSource bool    `json:"composite_source"`
	Passes          uint8   `json:"passes"`
}

func readGlowFilter(s *BitStream) (*GlowFilter, error) {
	f := &GlowFilter{}
	var err error
	if f.Color, err = readRGBA(s); err != nil {
		return nil, err
	}
	if f.BlurX, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.BlurY, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Strength, err = s.ReadFixed8(); err != nil {
		return nil, err
	}
	if f.InnerGlow, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.Knockout, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.CompositeSource, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	passes, err := s.ReadUBits(5)
	if err != nil {
		return nil, err
	}
	f.Passes = uint8(passes)
	return f, nil
}

// BevelFilter per §4.5.
type BevelFilter struct {
	ShadowColor     RGBA    `json:"shadow_color"`
	HighlightColor  RGBA    `json:"highlight_color"`
	BlurX           float64 `json:"blur_x"`
	BlurY           float64 `json:"blur_y"`
	Angle           float64 `json:"angle"`
	Distance        float64 `json:"distance"`
	Strength        float64 `json:"strength"`
	InnerShadow     bool    `json:"inner_shadow"`
	Knockout        bool    `json:"knockout"`
	CompositeSource bool    `json:"composite_source"`
	OnTop           bool    `json:"on_top"`
	Passes          uint8   `json:"passes"`
}

func readBevelFilter(s *BitStream) (*BevelFilter, error) {
	f := &BevelFilter{}
	var err error
	if f.ShadowColor, err = readRGBA(s); err != nil {
		return nil, err
	}
	if f.HighlightColor, err = readRGBA(s); err != nil {
		return nil, err
	}
	if f.BlurX, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.BlurY, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Angle, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Distance, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Strength, err = s.ReadFixed8(); err != nil {
		return nil, err
	}
	if f.InnerShadow, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.Knockout, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.CompositeSource, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.OnTop, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	passes, err := s.ReadUBits(4)
	if err != nil {
		return nil, err
	}
	f.Passes = uint8(passes)
	return f, nil
}

// GradientFilter backs both GradientGlowFilter and GradientBevelFilter,
// which share an identical layout.
type GradientFilter struct {
	Colors          []RGBA  `json:"colors"`
	Ratios          []uint8 `json:"ratios"`
	BlurX           float64 `json:"blur_x"`
	BlurY           float64 `json:"blur_y"`
	Angle           float64 `json:"angle"`
	Distance        float64 `json:"distance"`
	Strength        float64 `json:"strength"`
	InnerShadow     bool    `json:"inner_shadow"`
	Knockout        bool    `json:"knockout"`
	CompositeSource bool    `json:"composite_source"`
	OnTop           bool    `json:"on_top"`
	Passes          uint8   `json:"passes"`
}

func readGradientFilter(s *BitStream) (*GradientFilter, error) {
	f := &GradientFilter{}
	numColors, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	f.Colors = make([]RGBA, numColors)
	for i := range f.Colors {
		if f.Colors[i], err = readRGBA(s); err != nil {
			return nil, err
		}
	}
	f.Ratios = make([]uint8, numColors)
	for i := range f.Ratios {
		if f.Ratios[i], err = s.ReadUint8(); err != nil {
			return nil, err
		}
	}
	if f.BlurX, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.BlurY, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Angle, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Distance, err = s.ReadFixed16(); err != nil {
		return nil, err
	}
	if f.Strength, err = s.ReadFixed8(); err != nil {
		return nil, err
	}
	if f.InnerShadow, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.Knockout, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.CompositeSource, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.OnTop, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	passes, err := s.ReadUBits(4)
	if err != nil {
		return nil, err
	}
	f.Passes = uint8(passes)
	return f, nil
}

// ConvolutionFilter per §4.5.
type ConvolutionFilter struct {
	MatrixX       uint8     `json:"matrix_x"`
	MatrixY       uint8     `json:"matrix_y"`
	Divisor       float32   `json:"divisor"`
	Bias          float32   `json:"bias"`
	Matrix        []float32 `json:"matrix"`
	DefaultColor  RGBA      `json:"default_color"`
	Clamp         bool      `json:"clamp"`
	PreserveAlpha bool      `json:"preserve_alpha"`
}

func readConvolutionFilter(s *BitStream) (*ConvolutionFilter, error) {
	f := &ConvolutionFilter{}
	var err error
	if f.MatrixX, err = s.ReadUint8(); err != nil {
		return nil, err
	}
	if f.MatrixY, err = s.ReadUint8(); err != nil {
		return nil, err
	}
	if f.Divisor, err = s.ReadFloat(); err != nil {
		return nil, err
	}
	if f.Bias, err = s.ReadFloat(); err != nil {
		return nil, err
	}
	n := int(f.MatrixX) * int(f.MatrixY)
	f.Matrix = make([]float32, n)
	for i := range f.Matrix {
		if f.Matrix[i], err = s.ReadFloat(); err != nil {
			return nil, err
		}
	}
	if f.DefaultColor, err = readRGBA(s); err != nil {
		return nil, err
	}
	if _, err = s.ReadUBits(6); err != nil { // reserved
		return nil, err
	}
	if f.Clamp, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	f.PreserveAlpha, err = s.ReadBitBool()
	return f, err
}

// ColorMatrixFilter per §4.5: a flat 4x5 color transform matrix.
type ColorMatrixFilter struct {
	Matrix [20]float32 `json:"matrix"`
}

func readColorMatrixFilter(s *BitStream) (*ColorMatrixFilter, error) {
	f := &ColorMatrixFilter{}
	for i := range f.Matrix {
		v, err := s.ReadFloat()
		if err != nil {
			return nil, err
		}
		f.Matrix[i] = v
	}
	return f, nil
}

func readFilter(s *BitStream) (Filter, error) {
	id, err := s.ReadUint8()
	if err != nil {
		return Filter{}, err
	}
	filter := Filter{ID: id}
	switch id {
	case FilterDropShadow:
		filter.DropShadow, err = readDropShadowFilter(s)
	case FilterBlur:
		filter.Blur, err = readBlurFilter(s)
	case FilterGlow:
		filter.Glow, err = readGlowFilter(s)
	case FilterBevel:
		filter.Bevel, err = readBevelFilter(s)
	case FilterGradientGlow:
		filter.GradientGlow, err = readGradientFilter(s)
	case FilterConvolution:
		filter.Convolution, err = readConvolutionFilter(s)
	case FilterColorMatrix:
		filter.ColorMatrix, err = readColorMatrixFilter(s)
	case FilterGradientBevel:
		filter.GradientBevel, err = readGradientFilter(s)
	default:
		return filter, ErrUnknownDiscriminator
	}
	return filter, err
}

// readFilterList reads a 1-byte count followed by that many filters.
func readFilterList(s *BitStream) ([]Filter, error) {
	count, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	filters := make([]Filter, count)
	for i := range filters {
		if filters[i], err = readFilter(s); err != nil {
			return nil, err
		}
	}
	return filters, nil
}
