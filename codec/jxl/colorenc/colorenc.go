/*
DESCRIPTION
  colorenc.go describes a decoded colour-encoding descriptor: colour space,
  whitepoint, primaries, transfer function and rendering intent. This is the
  compact bitstream form the ICC synthesiser (codec/jxl/icc) expands into a
  byte-exact ICC v4.4 profile.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package colorenc holds the decoded ColourEncoding data model that the ICC
// profile synthesiser and the JPEG reconstructor's component-type mapping
// both consume. Parsing this descriptor out of the frame/image header
// bitstream is out of scope here (an external collaborator); this package
// only models the result.
package colorenc

// ColourSpace names the overall colour model of an image.
type ColourSpace int

const (
	ColourSpaceRGB ColourSpace = iota
	ColourSpaceGray
	ColourSpaceXYB
	ColourSpaceUnknown
)

// WhitePoint names a standard illuminant, or Custom for an explicit
// chromaticity pair.
type WhitePoint int

const (
	WhitePointD65 WhitePoint = iota
	WhitePointCustom
	WhitePointE
	WhitePointDCI
)

// Primaries names a standard primaries set, or Custom for explicit
// chromaticity triples.
type Primaries int

const (
	PrimariesSRGB Primaries = iota
	PrimariesCustom
	PrimariesP3
	Primaries2100
)

// TransferFunction names a standard transfer function, or Gamma for an
// explicit gamma value.
type TransferFunction int

const (
	TFSRGB TransferFunction = iota
	TFLinear
	TFBT709
	TFPQ
	TFDCI
	TFHLG
	TFGamma
	TFUnknown
)

// RenderingIntent is the ICC rendering intent, carried as a 2-bit field on
// the wire (the ICC header occupies a full u32 for it, with the
// remaining 30 bits required to be zero on output).
type RenderingIntent int

const (
	RenderingIntentPerceptual RenderingIntent = iota
	RenderingIntentRelative
	RenderingIntentSaturation
	RenderingIntentAbsolute
)

// Chromaticity is a CIE xy chromaticity coordinate pair.
type Chromaticity struct {
	X, Y float64
}

// ColourEncoding is the decoded compact colour-encoding descriptor.
type ColourEncoding struct {
	ColourSpace ColourSpace
	WhitePoint  WhitePoint
	WhitePointXY Chromaticity // valid when WhitePoint == WhitePointCustom

	Primaries  Primaries
	Red, Green, Blue Chromaticity // valid when Primaries == PrimariesCustom

	TransferFunction TransferFunction
	Gamma            float64 // valid when TransferFunction == TFGamma; stores g; the para tag's type-0 form carries 1/g

	RenderingIntent RenderingIntent
}

// ToXYZ returns the chromaticity as CIE XYZ, following
// x = wx/wy, y = 1, z = (1-wx-wy)/wy.
func (wp Chromaticity) ToXYZ() (x, y, z float64) {
	if wp.Y == 0 {
		return 0, 0, 0
	}
	x = wp.X / wp.Y
	y = 1
	z = (1 - wp.X - wp.Y) / wp.Y
	return
}

// StandardWhitePointXY returns the chromaticity of a named white point.
// D65 and the DCI white point are the two standards the ICC tone-mapping
// rule (CanToneMap, below) distinguishes.
func StandardWhitePointXY(wp WhitePoint) Chromaticity {
	switch wp {
	case WhitePointD65:
		return Chromaticity{0.3127, 0.3290}
	case WhitePointE:
		return Chromaticity{1.0 / 3, 1.0 / 3}
	case WhitePointDCI:
		return Chromaticity{0.314, 0.351}
	default:
		return Chromaticity{}
	}
}

// StandardPrimaries returns the red/green/blue chromaticities of a named
// primaries set.
func StandardPrimaries(p Primaries) (r, g, b Chromaticity) {
	switch p {
	case PrimariesSRGB:
		return Chromaticity{0.639998686, 0.330010138},
			Chromaticity{0.300003784, 0.600003357},
			Chromaticity{0.150002046, 0.059997204}
	case PrimariesP3:
		return Chromaticity{0.680, 0.320},
			Chromaticity{0.265, 0.690},
			Chromaticity{0.150, 0.060}
	case Primaries2100:
		return Chromaticity{0.708, 0.292},
			Chromaticity{0.170, 0.797},
			Chromaticity{0.131, 0.046}
	default:
		return
	}
}

// CanToneMap mirrors the reference decoder's can_tone_map predicate: true
// only for RGB images with a PQ or HLG transfer function, named (non-Custom)
// primaries, and a whitepoint of D65 or (DCI with P3 primaries).
func (c ColourEncoding) CanToneMap() bool {
	if c.ColourSpace != ColourSpaceRGB {
		return false
	}
	if c.TransferFunction != TFPQ && c.TransferFunction != TFHLG {
		return false
	}
	if c.Primaries == PrimariesCustom {
		return false
	}
	if c.WhitePoint == WhitePointD65 {
		return true
	}
	return c.WhitePoint == WhitePointDCI && c.Primaries == PrimariesP3
}
