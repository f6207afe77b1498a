/*
DESCRIPTION
  refdct_test.go provides testing for the FFT-derived reference DCT's own
  round trip, independent of any consumer package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package refdct

import (
	"math"
	"testing"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64, 128, 256} {
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Sin(float64(i)*0.37) + 0.2*math.Cos(float64(i)*1.1)
		}
		X := ForwardDCTII(x)
		back := InverseDCTIII(X)
		scale := float64(n)
		for i := range back {
			got := back[i] / scale
			if math.Abs(got-x[i]) > 1e-9 {
				t.Fatalf("N=%d i=%d: InverseDCTIII(ForwardDCTII(x))/N = %v, want %v", n, i, got, x[i])
			}
		}
	}
}

func TestForwardDCTIIDCComponent(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	X := ForwardDCTII(x)
	want := 2.0 * 8
	if math.Abs(X[0]-want) > 1e-9 {
		t.Errorf("X[0] = %v, want %v", X[0], want)
	}
	for k := 1; k < len(X); k++ {
		if math.Abs(X[k]) > 1e-9 {
			t.Errorf("X[%d] = %v, want ~0 for a constant input", k, X[k])
		}
	}
}
