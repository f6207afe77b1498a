/*
DESCRIPTION
  decoder.go wires the dequantisation engine, inverse transform family,
  ICC profile synthesiser, and JPEG reconstructor into a single Decoder
  for one frame: EnsureComputed runs once, synchronously, before any
  per-tile work; DecodeTile is then safe to call concurrently from
  multiple tiles since it only reads the now-immutable DequantMatrices
  state. Progress is reported through the package-level Log variable
  convention codec/jpeg/lex.go uses, not a per-call parameter.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package core wires the dequantisation, inverse transform, ICC, and
// JPEG reconstruction subsystems into a per-frame Decoder.
package core

import (
	"github.com/ausocean/jxlvardct/codec/jxl/colorenc"
	"github.com/ausocean/jxlvardct/codec/jxl/dct"
	"github.com/ausocean/jxlvardct/codec/jxl/icc"
	"github.com/ausocean/jxlvardct/codec/jxl/jpegrecon"
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
	"github.com/ausocean/jxlvardct/codec/jxl/quant"
	"github.com/ausocean/utils/logging"
)

// Log is the package-level logger, set by the calling binary's CLI
// boundary (cmd/jxlreconinfo), following the same convention as
// codec/jpeg's package-level Log.
var Log logging.Logger

// Decoder holds the per-frame dequantisation state and colour encoding
// needed to decode tiles and synthesise the frame's ICC profile.
type Decoder struct {
	dm     *quant.DequantMatrices
	colour colorenc.ColourEncoding
}

// NewDecoder builds a Decoder from an already-decoded DequantMatrices
// and ColourEncoding.
func NewDecoder(dm *quant.DequantMatrices, ce colorenc.ColourEncoding) *Decoder {
	return &Decoder{dm: dm, colour: ce}
}

// PrepareShapes computes the dequantisation weight tables for every
// transform shape the frame's tiles will use. Must be called once,
// before any concurrent DecodeTile calls: DequantMatrices is not safe
// for concurrent reads until EnsureComputed has returned.
func (dec *Decoder) PrepareShapes(shapes []dct.Shape) error {
	if Log != nil {
		Log.Debug("preparing dequant matrices", "numShapes", len(shapes))
	}
	return dec.dm.EnsureComputed(shapes)
}

// Tile is one decoded tile's coefficients, colour channel, and transform
// shape, ready for dequantisation and inverse transform.
type Tile struct {
	Shape        dct.Shape
	Channel      int // 0=X, 1=Y, 2=B
	Coefficients []float32
}

// DecodeTile dequantises t's coefficients and runs the inverse
// transform, returning the pixel-domain block. Safe to call
// concurrently across tiles once PrepareShapes has returned.
func (dec *Decoder) DecodeTile(t Tile) ([]float32, error) {
	table := dct.ForStrategy(t.Shape)
	weights := dec.dm.Matrix(table, t.Channel)
	if len(weights) != len(t.Coefficients) {
		return nil, jxlerr.New(jxlerr.InvalidQuantEncoding, "tile has %d coefficients, dequant table has %d", len(t.Coefficients), len(weights))
	}

	dequantised := make([]float32, len(t.Coefficients))
	for i, c := range t.Coefficients {
		dequantised[i] = c * weights[i]
	}

	if t.Shape.IsDCT() {
		return dct.IDCT2DShape(t.Shape, dequantised), nil
	}

	switch t.Shape {
	case dct.IDENTITY:
		return dct.IdentityIDCT(dequantised), nil
	case dct.DCT2x2:
		return dct.DCT2x2IDCT(dequantised), nil
	case dct.DCT4x4:
		return dct.DCT4x4IDCT(dequantised), nil
	default:
		return nil, jxlerr.New(jxlerr.InvalidQuantEncodingMode, "unsupported non-DCT shape %v (AFV needs a dedicated caller providing its split 4x4/4x8 coefficient halves)", t.Shape)
	}
}

// SynthesizeICC builds the ICC v4.4 profile for the frame's colour
// encoding. Independent of tile decoding; safe to call at any time.
func (dec *Decoder) SynthesizeICC() ([]byte, error) {
	return icc.Synthesize(dec.colour)
}

// ReconstructJPEG parses a jbrd box and re-synthesises the byte-exact
// JPEG file from the decoded coefficient stores. decompress recovers the
// jbrd box's compressed metadata payload (an external collaborator, see
// codec/jxl/jpegrecon).
func ReconstructJPEG(jbrdBytes []byte, decompress jpegrecon.Decompressor, width, height int, stores []*jpegrecon.CoefficientStore) ([]byte, error) {
	data, err := jpegrecon.Parse(jbrdBytes, decompress)
	if err != nil {
		return nil, err
	}
	return jpegrecon.WriteJpeg(data, width, height, stores)
}
