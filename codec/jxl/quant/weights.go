/*
DESCRIPTION
  weights.go implements the banded-distance weight interpolation the Dct,
  Dct4, Dct4x8, and Afv encodings all build on, ported from the reference
  decoder's get_quant_weights/interpolate/interpolate_vec/mult.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package quant

import (
	"math"

	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

// mult maps a per-band multiplier parameter onto the ratio applied to the
// previous band: positive values grow the band geometrically, negative
// values shrink it, and zero leaves it unchanged.
func mult(v float32) float32 {
	if v > 0 {
		return 1 + v
	}
	return 1 / (1 - v)
}

// interpolateVec looks up a geometric interpolation of array at a
// continuous scaled distance, per the reference decoder's interpolate_vec.
func interpolateVec(scaledPos float32, array []float32) float32 {
	idxF := math.Floor(float64(scaledPos))
	frac := scaledPos - float32(idxF)
	idx := int(idxF)
	a := array[idx]
	b := array[idx+1]
	return float32(math.Pow(float64(b/a), float64(frac))) * a
}

// interpolate is interpolateVec's counterpart used by the Afv encoding,
// which interpolates over a position normalised to [0, max) rather than a
// pre-scaled distance.
func interpolate(pos, max float32, array []float32) float32 {
	scaledPos := pos * float32(len(array)-1) / max
	idx := int(scaledPos)
	a := array[idx]
	b := array[idx+1]
	return a * float32(math.Pow(float64(b/a), float64(scaledPos-float32(idx))))
}

// getQuantWeights fills out (sized 3*rows*cols) with the banded-distance
// interpolated weights for a rows x cols block, per channel.
func getQuantWeights(rows, cols int, p DctQuantWeightParams, out []float32) error {
	for c := 0; c < 3; c++ {
		var bands [dctMaxDistanceBands]float32
		bands[0] = p.Params[c][0]
		if bands[0] < almostZero {
			return jxlerr.New(jxlerr.InvalidDistanceBand, "band 0 channel %d value %v", c, bands[0])
		}
		for i := 1; i < p.NumBands; i++ {
			bands[i] = bands[i-1] * mult(p.Params[c][i])
			if bands[i] < almostZero {
				return jxlerr.New(jxlerr.InvalidDistanceBand, "band %d channel %d value %v", i, c, bands[i])
			}
		}

		scale := float32(p.NumBands-1) / (float32(math.Sqrt2) + 1e-6)
		rcpCol := scale / float32(cols-1)
		rcpRow := scale / float32(rows-1)
		for y := 0; y < rows; y++ {
			dy := float32(y) * rcpRow
			dy2 := dy * dy
			for x := 0; x < cols; x++ {
				dx := float32(x) * rcpCol
				scaledDistance := float32(math.Sqrt(float64(dx*dx + dy2)))
				var weight float32
				if p.NumBands == 1 {
					weight = bands[0]
				} else {
					weight = interpolateVec(scaledDistance, bands[:])
				}
				out[c*cols*rows+y*cols+x] = weight
			}
		}
	}
	return nil
}

// coefficientLayout returns (min, max) of rows and cols, the "low frequency
// corner" dimensions the final zeroing step in dequant.go uses.
func coefficientLayout(rows, cols int) (xs, ys int) {
	if rows < cols {
		return rows, cols
	}
	return cols, rows
}
