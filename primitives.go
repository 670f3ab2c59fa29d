// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// RGB is a 24-bit opaque color.
type RGB struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
}

// RGBA is a 32-bit color with alpha, used from shape version 3 onward.
type RGBA struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
	Alpha uint8 `json:"alpha"`
}

func readRGB(s *BitStream) (RGB, error) {
	var c RGB
	var err error
	if c.Red, err = s.ReadUint8(); err != nil {
		return c, err
	}
	if c.Green, err = s.ReadUint8(); err != nil {
		return c, err
	}
	c.Blue, err = s.ReadUint8()
	return c, err
}

func readRGBA(s *BitStream) (RGBA, error) {
	var c RGBA
	var err error
	if c.Red, err = s.ReadUint8(); err != nil {
		return c, err
	}
	if c.Green, err = s.ReadUint8(); err != nil {
		return c, err
	}
	if c.Blue, err = s.ReadUint8(); err != nil {
		return c, err
	}
	c.Alpha, err = s.ReadUint8()
	return c, err
}

// readColor reads RGB for shapeVersion < 3 and RGBA for shapeVersion >= 3,
// always returning an RGBA (alpha forced to 0xff for the RGB case).
func readColor(s *BitStream, shapeVersion int) (RGBA, error) {
	if shapeVersion >= 3 {
		return readRGBA(s)
	}
	rgb, err := readRGB(s)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{Red: rgb.Red, Green: rgb.Green, Blue: rgb.Blue, Alpha: 0xff}, nil
}

// Rectangle is a bit-packed rectangle: a 5-bit field width followed by
// four signed fields of that width, padded to a byte boundary. An nbits
// of 0 yields all-zero bounds.
type Rectangle struct {
	XMin int32 `json:"x_min"`
	XMax int32 `json:"x_max"`
	YMin int32 `json:"y_min"`
	YMax int32 `json:"y_max"`
}

func readRectangle(s *BitStream) (Rectangle, error) {
	var r Rectangle
	nbits, err := s.ReadUBits(5)
	if err != nil {
		return r, err
	}
	if r.XMin, err = s.ReadSBits(int(nbits)); err != nil {
		return r, err
	}
	if r.XMax, err = s.ReadSBits(int(nbits)); err != nil {
		return r, err
	}
	if r.YMin, err = s.ReadSBits(int(nbits)); err != nil {
		return r, err
	}
	r.YMax, err = s.ReadSBits(int(nbits))
	s.ByteAlign()
	return r, err
}

// Matrix is the SWF 2x3 affine transform. The scale and rotate/skew pairs
// are each flag-gated: scale defaults to identity and rotate/skew to zero
// when absent. The translate pair is always present (an nbits of 0
// yields zero).
type Matrix struct {
	ScaleX    float64 `json:"scale_x"`
	ScaleY    float64 `json:"scale_y"`
	RotateSkew0 float64 `json:"rotate_skew0"`
	RotateSkew1 float64 `json:"rotate_skew1"`
	TranslateX  int32   `json:"translate_x"`
	TranslateY  int32   `json:"translate_y"`
}

func readMatrix(s *BitStream) (Matrix, error) {
	m := Matrix{ScaleX: 1, ScaleY: 1}

	hasScale, err := s.ReadBitBool()
	if err != nil {
		return m, err
	}
	if hasScale {
		nbits, err := s.ReadUBits(5)
		if err != nil {
			return m, err
		}
		if m.ScaleX, err = s.ReadFBits(int(nbits)); err != nil {
			return m, err
		}
		if m.ScaleY, err = s.ReadFBits(int(nbits)); err != nil {
			return m, err
		}
	}

	hasRotate, err := s.ReadBitBool()
	if err != nil {
		return m, err
	}
	if hasRotate {
		nbits, err := s.ReadUBits(5)
		if err != nil {
			return m, err
		}
		if m.RotateSkew0, err = s.ReadFBits(int(nbits)); err != nil {
			return m, err
		}
		if m.RotateSkew1, err = s.ReadFBits(int(nbits)); err != nil {
			return m, err
		}
	}

	nTranslateBits, err := s.ReadUBits(5)
	if err != nil {
		return m, err
	}
	if m.TranslateX, err = s.ReadSBits(int(nTranslateBits)); err != nil {
		return m, err
	}
	m.TranslateY, err = s.ReadSBits(int(nTranslateBits))
	return m, err
}

// ColorTransform is the optional color multiply/add transform attached to
// PlaceObject records. The add terms are read only when the record's own
// HasAddTerms bit is set, and the multiply terms only when its
// HasMultTerms bit is set; absent MultTerms default to identity.
type ColorTransform struct {
	RedMultTerm   float64 `json:"red_mult_term"`
	GreenMultTerm float64 `json:"green_mult_term"`
	BlueMultTerm  float64 `json:"blue_mult_term"`
	AlphaMultTerm float64 `json:"alpha_mult_term"`
	RedAddTerm    int32   `json:"red_add_term"`
	GreenAddTerm  int32   `json:"green_add_term"`
	BlueAddTerm   int32   `json:"blue_add_term"`
	AlphaAddTerm  int32   `json:"alpha_add_term"`
}

// readColorTransform reads a CXFORM (withAlpha=false) or CXFORMWITHALPHA
// (withAlpha=true) record.
func readColorTransform(s *BitStream, withAlpha bool) (ColorTransform, error) {
	ct := ColorTransform{RedMultTerm: 1, GreenMultTerm: 1, BlueMultTerm: 1, AlphaMultTerm: 1}

	hasAdd, err := s.ReadBitBool()
	if err != nil {
		return ct, err
	}
	hasMult, err := s.ReadBitBool()
	if err != nil {
		return ct, err
	}
	nbits, err := s.ReadUBits(4)
	if err != nil {
		return ct, err
	}
	n := int(nbits)

	if hasMult {
		if ct.RedMultTerm, err = readSBitsAsUnitFraction(s, n); err != nil {
			return ct, err
		}
		if ct.GreenMultTerm, err = readSBitsAsUnitFraction(s, n); err != nil {
			return ct, err
		}
		if ct.BlueMultTerm, err = readSBitsAsUnitFraction(s, n); err != nil {
			return ct, err
		}
		if withAlpha {
			if ct.AlphaMultTerm, err = readSBitsAsUnitFraction(s, n); err != nil {
				return ct, err
			}
		}
	}
	if hasAdd {
		if ct.RedAddTerm, err = s.ReadSBits(n); err != nil {
			return ct, err
		}
		if ct.GreenAddTerm, err = s.ReadSBits(n); err != nil {
			return ct, err
		}
		if ct.BlueAddTerm, err = s.ReadSBits(n); err != nil {
			return ct, err
		}
		if withAlpha {
			if ct.AlphaAddTerm, err = s.ReadSBits(n); err != nil {
				return ct, err
			}
		}
	}
	return ct, nil
}

// readSBitsAsUnitFraction reads n signed bits and scales by 1/256, the
// representation used for CXFORM multiply terms.
func readSBitsAsUnitFraction(s *BitStream, n int) (float64, error) {
	v, err := s.ReadSBits(n)
	if err != nil {
		return 0, err
	}
	return float64(v) / 256.0, nil
}

// GradientRecord is one (ratio, color) stop in a gradient fill, up to 15
// per gradient.
type GradientRecord struct {
	Ratio uint8 `json:"ratio"`
	Color RGBA  `json:"color"`
}

// Gradient is the LINEAR/RADIAL gradient payload: a spread/interpolation
// flag byte followed by up to 15 stops.
type Gradient struct {
	SpreadMode       uint8            `json:"spread_mode"`
	InterpolationMode uint8           `json:"interpolation_mode"`
	Records          []GradientRecord `json:"records"`
}

func readGradient(s *BitStream, shapeVersion int) (Gradient, error) {
	var g Gradient
	flags, err := s.ReadUBits(2)
	if err != nil {
		return g, err
	}
	g.SpreadMode = uint8(flags)
	interp, err := s.ReadUBits(2)
	if err != nil {
		return g, err
	}
	g.InterpolationMode = uint8(interp)
	numGradients, err := s.ReadUBits(4)
	if err != nil {
		return g, err
	}
	g.Records = make([]GradientRecord, numGradients)
	for i := range g.Records {
		ratio, err := s.ReadUint8()
		if err != nil {
			return g, err
		}
		color, err := readColor(s, shapeVersion)
		if err != nil {
			return g, err
		}
		g.Records[i] = GradientRecord{Ratio: ratio, Color: color}
	}
	return g, nil
}

// FocalGradient is a FOCALGRADIENT record: a Gradient plus an 8.8
// fixed-point focal point.
type FocalGradient struct {
	Gradient
	FocalPoint float64 `json:"focal_point"`
}

func readFocalGradient(s *BitStream, shapeVersion int) (FocalGradient, error) {
	g, err := readGradient(s, shapeVersion)
	if err != nil {
		return FocalGradient{}, err
	}
	focal, err := s.ReadFixed8()
	if err != nil {
		return FocalGradient{}, err
	}
	return FocalGradient{Gradient: g, FocalPoint: focal}, nil
}
