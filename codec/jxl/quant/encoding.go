/*
DESCRIPTION
  encoding.go defines QuantEncoding, the tagged description of how one of
  the 17 QuantTable slots' weights are produced, and its bitstream decoder.
  Ported from the reference decoder's QuantEncoding enum and
  DctQuantWeightParams::decode.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package quant implements the VarDCT quantization weight table engine:
// the 17 canonical QuantTable slots, their library defaults, and the
// banded/special-case weight construction used to derive them.
package quant

import (
	"github.com/ausocean/jxlvardct/codec/jxl/bitstream"
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

// BlockDim and BlockSize are the base 8x8 DCT block's side length and
// pixel area; every QuantTable slot's weight table is a multiple of it.
const (
	BlockDim  = 8
	BlockSize = BlockDim * BlockDim
)

const almostZero = 1e-8

// dctMaxDistanceBands bounds the number of bands a DctQuantWeightParams
// may carry: 1 + 2^4.
const (
	dctLog2MaxDistanceBands = 4
	dctMaxDistanceBands     = 1 + (1 << dctLog2MaxDistanceBands)
)

// DctQuantWeightParams is the per-channel distance-band description a
// banded DCT weight table is interpolated from.
type DctQuantWeightParams struct {
	Params   [3][dctMaxDistanceBands]float32
	NumBands int
}

// NewDctQuantWeightParams builds a DctQuantWeightParams from literal
// per-channel band values, as the library default tables in library.go do.
func NewDctQuantWeightParams(values [3][]float32) DctQuantWeightParams {
	n := len(values[0])
	var p DctQuantWeightParams
	p.NumBands = n
	for c := 0; c < 3; c++ {
		copy(p.Params[c][:n], values[c])
	}
	return p
}

// DecodeDctQuantWeightParams reads a DctQuantWeightParams from the
// bitstream: a 4-bit band count minus one, then num_bands float16 values
// per channel, with the first (DC) band scaled by 64 and bounds-checked.
func DecodeDctQuantWeightParams(r *bitstream.Reader) (DctQuantWeightParams, error) {
	nb, err := r.Read(dctLog2MaxDistanceBands)
	if err != nil {
		return DctQuantWeightParams{}, err
	}
	numBands := int(nb) + 1

	var params [3][dctMaxDistanceBands]float32
	for c := 0; c < 3; c++ {
		for i := 0; i < numBands; i++ {
			bits, err := r.Read(16)
			if err != nil {
				return DctQuantWeightParams{}, err
			}
			params[c][i] = bitstream.Float16ToFloat32(uint16(bits))
		}
		if params[c][0] < almostZero {
			return DctQuantWeightParams{}, jxlerr.New(jxlerr.HfQuantFactorTooSmall, "band 0 value %v", params[c][0])
		}
		params[c][0] *= 64
	}
	return DctQuantWeightParams{Params: params, NumBands: numBands}, nil
}

// Mode tags which of the eight weight-construction strategies a
// QuantEncoding uses.
type Mode int

const (
	ModeLibrary Mode = iota
	ModeIdentity
	ModeDct2
	ModeDct4
	ModeDct4x8
	ModeAfv
	ModeDct
	ModeRaw
)

// QuantEncoding is the tagged description of one QuantTable slot's weight
// source; only the fields Mode names are meaningful.
type QuantEncoding struct {
	Mode Mode

	// ModeIdentity
	IdentityWeights [3][3]float32

	// ModeDct2
	Dct2Weights [3][6]float32

	// ModeDct4
	Dct4Params DctQuantWeightParams
	Dct4XybMul [3][2]float32

	// ModeDct4x8
	Dct4x8Params DctQuantWeightParams
	Dct4x8XybMul [3]float32

	// ModeAfv
	AfvParams4x8 DctQuantWeightParams
	AfvParams4x4 DctQuantWeightParams
	AfvWeights   [3][9]float32

	// ModeDct
	DctParams DctQuantWeightParams

	// ModeRaw
	RawQTable    []int32
	RawQTableDen float32
}

// logNumQuantModes is the bit width of the mode selector preceding every
// non-default QuantEncoding.
const logNumQuantModes = 3

// DecodeQuantEncoding reads one QuantEncoding from the bitstream for the
// QuantTable slot sized requiredSizeX*requiredSizeY (in BlockDim units).
func DecodeQuantEncoding(requiredSizeX, requiredSizeY int, r *bitstream.Reader) (QuantEncoding, error) {
	requiredSize := requiredSizeX * requiredSizeY

	modeBits, err := r.Read(logNumQuantModes)
	if err != nil {
		return QuantEncoding{}, err
	}
	mode := uint8(modeBits)

	readScaledWeight := func() (float32, error) {
		bits, err := r.Read(16)
		if err != nil {
			return 0, err
		}
		v := bitstream.Float16ToFloat32(uint16(bits))
		if abs32(v) < almostZero {
			return 0, jxlerr.New(jxlerr.HfQuantFactorTooSmall, "value %v", v)
		}
		return v, nil
	}

	switch mode {
	case 0:
		return QuantEncoding{Mode: ModeLibrary}, nil
	case 1:
		if requiredSize != 1 {
			return QuantEncoding{}, jxlerr.New(jxlerr.InvalidQuantEncoding, "mode %d requires size 1, got %d", mode, requiredSize)
		}
		var w [3][3]float32
		for c := 0; c < 3; c++ {
			for i := 0; i < 3; i++ {
				v, err := readScaledWeight()
				if err != nil {
					return QuantEncoding{}, err
				}
				w[c][i] = v * 64
			}
		}
		return QuantEncoding{Mode: ModeIdentity, IdentityWeights: w}, nil
	case 2:
		if requiredSize != 1 {
			return QuantEncoding{}, jxlerr.New(jxlerr.InvalidQuantEncoding, "mode %d requires size 1, got %d", mode, requiredSize)
		}
		var w [3][6]float32
		for c := 0; c < 3; c++ {
			for i := 0; i < 6; i++ {
				v, err := readScaledWeight()
				if err != nil {
					return QuantEncoding{}, err
				}
				w[c][i] = v * 64
			}
		}
		return QuantEncoding{Mode: ModeDct2, Dct2Weights: w}, nil
	case 3:
		if requiredSize != 1 {
			return QuantEncoding{}, jxlerr.New(jxlerr.InvalidQuantEncoding, "mode %d requires size 1, got %d", mode, requiredSize)
		}
		var mul [3][2]float32
		for c := 0; c < 3; c++ {
			for i := 0; i < 2; i++ {
				v, err := readScaledWeight()
				if err != nil {
					return QuantEncoding{}, err
				}
				mul[c][i] = v
			}
		}
		params, err := DecodeDctQuantWeightParams(r)
		if err != nil {
			return QuantEncoding{}, err
		}
		return QuantEncoding{Mode: ModeDct4, Dct4Params: params, Dct4XybMul: mul}, nil
	case 4:
		if requiredSize != 1 {
			return QuantEncoding{}, jxlerr.New(jxlerr.InvalidQuantEncoding, "mode %d requires size 1, got %d", mode, requiredSize)
		}
		var mul [3]float32
		for c := 0; c < 3; c++ {
			v, err := readScaledWeight()
			if err != nil {
				return QuantEncoding{}, err
			}
			mul[c] = v
		}
		params, err := DecodeDctQuantWeightParams(r)
		if err != nil {
			return QuantEncoding{}, err
		}
		return QuantEncoding{Mode: ModeDct4x8, Dct4x8Params: params, Dct4x8XybMul: mul}, nil
	case 5:
		if requiredSize != 1 {
			return QuantEncoding{}, jxlerr.New(jxlerr.InvalidQuantEncoding, "mode %d requires size 1, got %d", mode, requiredSize)
		}
		var w [3][9]float32
		for c := 0; c < 3; c++ {
			for i := 0; i < 9; i++ {
				bits, err := r.Read(16)
				if err != nil {
					return QuantEncoding{}, err
				}
				w[c][i] = bitstream.Float16ToFloat32(uint16(bits))
			}
			for i := 0; i < 6; i++ {
				w[c][i] *= 64
			}
		}
		p4x8, err := DecodeDctQuantWeightParams(r)
		if err != nil {
			return QuantEncoding{}, err
		}
		p4x4, err := DecodeDctQuantWeightParams(r)
		if err != nil {
			return QuantEncoding{}, err
		}
		return QuantEncoding{Mode: ModeAfv, AfvParams4x8: p4x8, AfvParams4x4: p4x4, AfvWeights: w}, nil
	case 6:
		params, err := DecodeDctQuantWeightParams(r)
		if err != nil {
			return QuantEncoding{}, err
		}
		return QuantEncoding{Mode: ModeDct, DctParams: params}, nil
	case 7:
		// Raw mode reads its table from an auxiliary modular sub-bitstream
		// in the reference decoder; no such decoder is wired in here, so mode
		// 7 returns an InvalidRawQuantTable error -- callers that need Raw
		// construct it directly via NewRawQuantEncoding.
		return QuantEncoding{}, jxlerr.New(jxlerr.InvalidRawQuantTable, "raw quant table decoding requires the modular sub-bitstream, not wired")
	default:
		return QuantEncoding{}, jxlerr.New(jxlerr.InvalidQuantEncodingMode, "mode %d", mode)
	}
}

// NewRawQuantEncoding builds a ModeRaw QuantEncoding from an explicit
// per-sample integer table and shift, mirroring QuantEncoding::raw_from_qtable.
func NewRawQuantEncoding(qtable []int32, shift int) QuantEncoding {
	return QuantEncoding{
		Mode:         ModeRaw,
		RawQTable:    qtable,
		RawQTableDen: float32(int64(1)<<uint(shift)) * (1.0 / (8.0 * 255.0)),
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
