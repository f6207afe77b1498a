/*
DESCRIPTION
  dequant.go implements DequantMatrices, the engine that turns a frame's 17
  QuantEncoding slots into dequantization weight tables per transform shape
  and colour channel. Ported from the reference decoder's
  DequantMatrices::{decode,ensure_computed,compute_quant_table}.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package quant

import (
	"github.com/ausocean/jxlvardct/codec/jxl/bitstream"
	"github.com/ausocean/jxlvardct/codec/jxl/dct"
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

// afvFreqs is the AFV encoding's fixed frequency-position table, used to
// interpolate its "high frequency" corner weights.
var afvFreqs = [16]float32{
	0, 0, 0.8517778890324296, 5.37778436506804,
	0, 0, 4.734747904497923, 5.449245381693219,
	1.6598270267479331, 4, 7.275749096817861, 10.423227632456525,
	2.662932286148962, 7.630657783650829, 8.962388608184032, 12.97166202570235,
}

const afvLo = 0.8517778890324296
const afvHi = 12.97166202570235 - afvLo + 1e-6

// DequantMatrices holds the 17 QuantEncoding slots for a frame and the
// per-slot weight tables computed from them, lazily and only for the
// transform shapes a frame actually uses.
type DequantMatrices struct {
	encodings [dct.NumQuantTables]QuantEncoding
	computed  [dct.NumQuantTables]bool
	tables    [dct.NumQuantTables][3][]float32 // dequant (1/weight)
	invTables [dct.NumQuantTables][3][]float32 // weight
}

// DecodeDequantMatrices reads the frame-level "all default" flag and, if
// unset, all 17 QuantEncoding slots in QuantTable order.
func DecodeDequantMatrices(r *bitstream.Reader) (*DequantMatrices, error) {
	allDefault, err := r.Read(1)
	if err != nil {
		return nil, err
	}
	dm := &DequantMatrices{}
	if allDefault == 1 {
		dm.encodings = Library()
		return dm, nil
	}
	for i := 0; i < dct.NumQuantTables; i++ {
		enc, err := DecodeQuantEncoding(dct.RequiredSizeX[i], dct.RequiredSizeY[i], r)
		if err != nil {
			return nil, err
		}
		dm.encodings[i] = enc
	}
	return dm, nil
}

// NewDefaultDequantMatrices returns a DequantMatrices with every slot set
// to its library default, as a frame whose header sets "all default" would.
func NewDefaultDequantMatrices() *DequantMatrices {
	return &DequantMatrices{encodings: Library()}
}

// EnsureComputed computes the weight table for every QuantTable slot
// referenced by shapes, if not already computed.
func (dm *DequantMatrices) EnsureComputed(shapes []dct.Shape) error {
	var needed [dct.NumQuantTables]bool
	for _, s := range shapes {
		needed[dct.ForStrategy(s)] = true
	}
	for i := 0; i < dct.NumQuantTables; i++ {
		if !needed[i] || dm.computed[i] {
			continue
		}
		if err := dm.computeQuantTable(dct.QuantTable(i)); err != nil {
			return err
		}
		dm.computed[i] = true
	}
	return nil
}

// Matrix returns the dequantization table (1/weight) for the given
// QuantTable slot and channel (0=X, 1=Y, 2=B), sized
// RequiredSizeX*8 * RequiredSizeY*8.
func (dm *DequantMatrices) Matrix(t dct.QuantTable, channel int) []float32 {
	return dm.tables[t][channel]
}

// InvMatrix returns the raw weight table (pre-reciprocal) for the given
// QuantTable slot and channel, with its low-frequency corner zeroed as the
// reference decoder's compute_quant_table finalisation step does.
func (dm *DequantMatrices) InvMatrix(t dct.QuantTable, channel int) []float32 {
	return dm.invTables[t][channel]
}

func (dm *DequantMatrices) computeQuantTable(table dct.QuantTable) error {
	enc := dm.encodings[table]
	if enc.Mode == ModeLibrary {
		enc = Library()[table]
	}

	wrows := BlockDim * dct.RequiredSizeX[table]
	wcols := BlockDim * dct.RequiredSizeY[table]
	num := wrows * wcols
	weights := make([]float32, 3*num)

	switch enc.Mode {
	case ModeLibrary:
		return jxlerr.New(jxlerr.InvalidQuantEncodingMode, "unresolved library encoding for slot %v", table)
	case ModeIdentity:
		for c := 0; c < 3; c++ {
			base := 64 * c
			for i := 0; i < 64; i++ {
				weights[base+i] = enc.IdentityWeights[c][0]
			}
			weights[base+1] = enc.IdentityWeights[c][1]
			weights[base+8] = enc.IdentityWeights[c][1]
			weights[base+9] = enc.IdentityWeights[c][2]
		}
	case ModeDct2:
		for c := 0; c < 3; c++ {
			xyb := enc.Dct2Weights[c]
			start := c * 64
			weights[start] = 0xBAD
			weights[start+1] = xyb[0]
			weights[start+8] = xyb[0]
			weights[start+9] = xyb[1]
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					weights[start+y*8+x+2] = xyb[2]
					weights[start+(y+2)*8+x] = xyb[2]
				}
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					weights[start+(y+2)*8+x+2] = xyb[3]
				}
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					weights[start+y*8+x+4] = xyb[4]
					weights[start+(y+4)*8+x] = xyb[4]
				}
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					weights[start+(y+4)*8+x+4] = xyb[5]
				}
			}
		}
	case ModeDct4:
		weights4x4 := make([]float32, 3*16)
		if err := getQuantWeights(4, 4, enc.Dct4Params, weights4x4); err != nil {
			return err
		}
		for c := 0; c < 3; c++ {
			for y := 0; y < BlockDim; y++ {
				for x := 0; x < BlockDim; x++ {
					weights[c*num+y*BlockDim+x] = weights4x4[c*16+(y/2)*4+(x/2)]
				}
			}
			weights[c*num+1] /= enc.Dct4XybMul[c][0]
			weights[c*num+BlockDim] /= enc.Dct4XybMul[c][0]
			weights[c*num+BlockDim+1] /= enc.Dct4XybMul[c][1]
		}
	case ModeDct4x8:
		weights4x8 := make([]float32, 3*32)
		if err := getQuantWeights(4, 8, enc.Dct4x8Params, weights4x8); err != nil {
			return err
		}
		for c := 0; c < 3; c++ {
			for y := 0; y < BlockDim; y++ {
				for x := 0; x < BlockDim; x++ {
					weights[c*num+y*BlockDim+x] = weights4x8[c*32+(y/2)*8+x]
				}
			}
			weights[c*num+BlockDim] /= enc.Dct4x8XybMul[c]
		}
	case ModeDct:
		if err := getQuantWeights(wrows, wcols, enc.DctParams, weights); err != nil {
			return err
		}
	case ModeRaw:
		if len(enc.RawQTable) != 3*num {
			return jxlerr.New(jxlerr.InvalidRawQuantTable, "got %d entries, want %d", len(enc.RawQTable), 3*num)
		}
		for i := 0; i < 3*num; i++ {
			if enc.RawQTable[i] <= 0 {
				return jxlerr.New(jxlerr.InvalidRawQuantTable, "non-positive entry at %d", i)
			}
			weights[i] = 1 / (enc.RawQTableDen * float32(enc.RawQTable[i]))
		}
	case ModeAfv:
		weights4x8 := make([]float32, 3*32)
		if err := getQuantWeights(4, 8, enc.AfvParams4x8, weights4x8); err != nil {
			return err
		}
		weights4x4 := make([]float32, 3*16)
		if err := getQuantWeights(4, 4, enc.AfvParams4x4, weights4x4); err != nil {
			return err
		}
		for c := 0; c < 3; c++ {
			afv := enc.AfvWeights[c]
			var bands [4]float32
			bands[0] = afv[5]
			if bands[0] < almostZero {
				return jxlerr.New(jxlerr.InvalidDistanceBand, "afv band 0 channel %d value %v", c, bands[0])
			}
			for i := 1; i < 4; i++ {
				bands[i] = bands[i-1] * mult(afv[i+5])
				if bands[i] < almostZero {
					return jxlerr.New(jxlerr.InvalidDistanceBand, "afv band %d channel %d value %v", i, c, bands[i])
				}
			}

			start := c * 64
			weights[start] = 1
			set := func(x, y int, val float32) { weights[start+y*8+x] = val }
			set(0, 1, afv[0])
			set(1, 0, afv[1])
			set(0, 2, afv[2])
			set(2, 0, afv[3])
			set(2, 2, afv[4])
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if x < 2 && y < 2 {
						continue
					}
					val := interpolate(afvFreqs[y*4+x]-afvLo, afvHi, bands[:])
					set(2*x, 2*y, val)
				}
			}

			for y := 0; y < BlockDim/2; y++ {
				for x := 0; x < BlockDim; x++ {
					if x == 0 && y == 0 {
						continue
					}
					weights[c*num+(2*y+1)*BlockDim+x] = weights4x8[c*32+y*8+x]
				}
			}
			for y := 0; y < BlockDim/2; y++ {
				for x := 0; x < BlockDim/2; x++ {
					if x == 0 && y == 0 {
						continue
					}
					weights[c*num+(2*y)*BlockDim+2*x+1] = weights4x4[c*16+y*4+x]
				}
			}
		}
	}

	dequantTable := make([]float32, 3*num)
	invTable := make([]float32, 3*num)
	for i, w := range weights {
		if w < almostZero || w > 1/almostZero {
			return jxlerr.New(jxlerr.InvalidQuantizationTableWeight, "weight index %d is %v", i, w)
		}
		dequantTable[i] = 1 / w
		invTable[i] = w
	}

	// Zero the low-frequency corner of the inverse table: the matching DC
	// coefficients are carried by the LF image, not the HF residual this
	// table dequantizes.
	xs, ys := coefficientLayout(dct.RequiredSizeX[table], dct.RequiredSizeY[table])
	for c := 0; c < 3; c++ {
		for y := 0; y < ys; y++ {
			for x := 0; x < xs; x++ {
				invTable[c*ys*xs*BlockSize+y*BlockDim*xs+x] = 0
			}
		}
	}

	for c := 0; c < 3; c++ {
		dm.tables[table][c] = dequantTable[c*num : (c+1)*num]
		dm.invTables[table][c] = invTable[c*num : (c+1)*num]
	}
	return nil
}
