/*
DESCRIPTION
  refdct_cross_test.go cross-checks DCT1D against the independent
  FFT-derived reference transform in internal/refdct, so the Chen
  factorisation's round trip (dct_test.go) isn't the only thing
  validating it.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

import (
	"math"
	"testing"

	"github.com/ausocean/jxlvardct/internal/refdct"
)

// TestDCT1DMatchesReferenceUpToOrthonormalScaling checks DCT1D against
// refdct.ForwardDCTII's un-normalised DCT-II. The two disagree only by
// the usual orthonormal-DCT scale factor: the DC term carries an extra
// 1/sqrt(2) relative to every other term.
func TestDCT1DMatchesReferenceUpToOrthonormalScaling(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64} {
		in := make([]float32, n)
		inF64 := make([]float64, n)
		for i := range in {
			v := math.Sin(float64(i)*0.37) + 0.2*math.Cos(float64(i)*1.1)
			in[i] = float32(v)
			inF64[i] = v
		}
		got := DCT1D(n, in)
		ref := refdct.ForwardDCTII(inF64)

		for k := 0; k < n; k++ {
			scale := 1 / math.Sqrt2
			if k == 0 {
				scale = 0.5
			}
			want := ref[k] * scale
			if math.Abs(float64(got[k])-want) > 1e-2 {
				t.Errorf("N=%d k=%d: DCT1D = %v, want %v (reference*scale)", n, k, got[k], want)
			}
		}
	}
}
