/*
DESCRIPTION
  description.go builds the profile description string stored in the
  desc tag: one of four canonical strings for the common
  sRGB/DisplayP3/Rec2100PQ/Rec2100HLG cases, else a structured fallback
  built from 3-letter abbreviations.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package icc

import (
	"fmt"

	"github.com/ausocean/jxlvardct/codec/jxl/colorenc"
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

// Describe builds the ICC profile description string for ce.
func Describe(ce colorenc.ColourEncoding) (string, error) {
	if d, ok := canonicalDescription(ce); ok {
		return d, nil
	}

	intent := intentAbbrev(ce.RenderingIntent)

	if ce.ColourSpace == colorenc.ColourSpaceXYB {
		return fmt.Sprintf("XYB_%s", intent), nil
	}

	wp := whitePointAbbrev(ce)
	tf, err := transferAbbrev(ce)
	if err != nil {
		return "", err
	}

	if ce.ColourSpace == colorenc.ColourSpaceGray {
		return fmt.Sprintf("Gra_%s_%s_%s", wp, intent, tf), nil
	}

	prim := primariesAbbrev(ce)
	return fmt.Sprintf("RGB_%s_%s_%s_%s", wp, prim, intent, tf), nil
}

func canonicalDescription(ce colorenc.ColourEncoding) (string, bool) {
	if ce.ColourSpace != colorenc.ColourSpaceRGB || ce.WhitePoint != colorenc.WhitePointD65 {
		return "", false
	}
	switch {
	case ce.Primaries == colorenc.PrimariesSRGB && ce.TransferFunction == colorenc.TFSRGB && ce.RenderingIntent == colorenc.RenderingIntentPerceptual:
		return "sRGB", true
	case ce.Primaries == colorenc.PrimariesP3 && ce.TransferFunction == colorenc.TFSRGB && ce.RenderingIntent == colorenc.RenderingIntentPerceptual:
		return "DisplayP3", true
	case ce.Primaries == colorenc.Primaries2100 && ce.TransferFunction == colorenc.TFPQ && ce.RenderingIntent == colorenc.RenderingIntentRelative:
		return "Rec2100PQ", true
	case ce.Primaries == colorenc.Primaries2100 && ce.TransferFunction == colorenc.TFHLG && ce.RenderingIntent == colorenc.RenderingIntentRelative:
		return "Rec2100HLG", true
	}
	return "", false
}

func intentAbbrev(ri colorenc.RenderingIntent) string {
	switch ri {
	case colorenc.RenderingIntentPerceptual:
		return "Per"
	case colorenc.RenderingIntentRelative:
		return "Rel"
	case colorenc.RenderingIntentSaturation:
		return "Sat"
	case colorenc.RenderingIntentAbsolute:
		return "Abs"
	default:
		return "Unk"
	}
}

func whitePointAbbrev(ce colorenc.ColourEncoding) string {
	switch ce.WhitePoint {
	case colorenc.WhitePointD65:
		return "D65"
	case colorenc.WhitePointE:
		return "EER"
	case colorenc.WhitePointDCI:
		return "DCI"
	default:
		return fmt.Sprintf("%.7f;%.7f", ce.WhitePointXY.X, ce.WhitePointXY.Y)
	}
}

func primariesAbbrev(ce colorenc.ColourEncoding) string {
	switch ce.Primaries {
	case colorenc.PrimariesSRGB:
		return "SRG"
	case colorenc.PrimariesP3:
		return "P3 "
	case colorenc.Primaries2100:
		return "202"
	default:
		return fmt.Sprintf("%.7f;%.7f;%.7f;%.7f;%.7f;%.7f",
			ce.Red.X, ce.Red.Y, ce.Green.X, ce.Green.Y, ce.Blue.X, ce.Blue.Y)
	}
}

func transferAbbrev(ce colorenc.ColourEncoding) (string, error) {
	switch ce.TransferFunction {
	case colorenc.TFSRGB:
		return "SRG", nil
	case colorenc.TFLinear:
		return "Lin", nil
	case colorenc.TFBT709:
		return "709", nil
	case colorenc.TFPQ:
		return "PeQ", nil
	case colorenc.TFDCI:
		return "DCI", nil
	case colorenc.TFHLG:
		return "HLG", nil
	case colorenc.TFGamma:
		// ce.Gamma stores 1/g, so the displayed exponent is 1/ce.Gamma.
		return fmt.Sprintf("g%.7f", 1/ce.Gamma), nil
	default:
		return "", jxlerr.New(jxlerr.IccUnsupportedTransferFunction, "%v", ce.TransferFunction)
	}
}
