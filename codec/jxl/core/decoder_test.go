/*
DESCRIPTION
  decoder_test.go provides testing for the Decoder's tile dequantisation
  and dispatch to the right inverse transform implementation.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package core

import (
	"testing"

	"github.com/ausocean/jxlvardct/codec/jxl/colorenc"
	"github.com/ausocean/jxlvardct/codec/jxl/dct"
	"github.com/ausocean/jxlvardct/codec/jxl/quant"
)

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	dm := quant.NewDefaultDequantMatrices()
	ce := colorenc.ColourEncoding{
		ColourSpace:      colorenc.ColourSpaceRGB,
		WhitePoint:       colorenc.WhitePointD65,
		Primaries:        colorenc.PrimariesSRGB,
		TransferFunction: colorenc.TFSRGB,
		RenderingIntent:  colorenc.RenderingIntentPerceptual,
	}
	return NewDecoder(dm, ce)
}

func TestPrepareShapesThenDecodeTileDCT(t *testing.T) {
	dec := newTestDecoder(t)
	if err := dec.PrepareShapes([]dct.Shape{dct.DCT}); err != nil {
		t.Fatalf("PrepareShapes: %v", err)
	}
	coeffs := make([]float32, 64)
	coeffs[0] = 1
	out, err := dec.DecodeTile(Tile{Shape: dct.DCT, Channel: 1, Coefficients: coeffs})
	if err != nil {
		t.Fatalf("DecodeTile: %v", err)
	}
	if len(out) != 64 {
		t.Fatalf("len(out) = %d, want 64", len(out))
	}
}

func TestDecodeTileRejectsMismatchedCoefficientCount(t *testing.T) {
	dec := newTestDecoder(t)
	if err := dec.PrepareShapes([]dct.Shape{dct.DCT16x16}); err != nil {
		t.Fatalf("PrepareShapes: %v", err)
	}
	_, err := dec.DecodeTile(Tile{Shape: dct.DCT16x16, Channel: 0, Coefficients: make([]float32, 4)})
	if err == nil {
		t.Error("expected an error for a coefficient slice shorter than the dequant table")
	}
}

func TestDecodeTileNonDCTShape(t *testing.T) {
	dec := newTestDecoder(t)
	if err := dec.PrepareShapes([]dct.Shape{dct.DCT2x2}); err != nil {
		t.Fatalf("PrepareShapes: %v", err)
	}
	coeffs := make([]float32, 64)
	coeffs[0] = 3
	out, err := dec.DecodeTile(Tile{Shape: dct.DCT2x2, Channel: 2, Coefficients: coeffs})
	if err != nil {
		t.Fatalf("DecodeTile: %v", err)
	}
	if len(out) != 64 {
		t.Fatalf("len(out) = %d, want 64", len(out))
	}
}

func TestSynthesizeICCProducesAValidSizedHeader(t *testing.T) {
	dec := newTestDecoder(t)
	profile, err := dec.SynthesizeICC()
	if err != nil {
		t.Fatalf("SynthesizeICC: %v", err)
	}
	if len(profile) < 128 {
		t.Fatalf("profile too short: %d bytes", len(profile))
	}
}
