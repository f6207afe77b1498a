/*
DESCRIPTION
  dct_test.go provides testing for the 1-D/2-D forward and inverse DCT
  family in idct1d.go, dct1d.go, and idct2d.go.

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
)

func almostEqual(a, b []float32, tol float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

func TestIDCT1DIdentitySize1(t *testing.T) {
	got := IDCT1D(1, []float32{42})
	if got[0] != 42 {
		t.Errorf("IDCT1D(1, [42]) = %v, want [42]", got)
	}
}

func TestIDCT1DSize2(t *testing.T) {
	got := IDCT1D(2, []float32{3, 1})
	want := []float32{4, 2}
	if !almostEqual(got, want, 1e-5) {
		t.Errorf("IDCT1D(2, [3 1]) = %v, want %v", got, want)
	}
}

func TestDCT1DRoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64, 128, 256} {
		in := make([]float32, n)
		for i := range in {
			in[i] = float32(math.Sin(float64(i) * 0.3))
		}
		coeffs := DCT1D(n, in)
		back := IDCT1D(n, coeffs)
		// The ported Chen factorisation round-trips to an overall scale of
		// N (it is not orthonormal), so compare after removing that scale.
		scale := float32(n)
		for i := range back {
			back[i] /= scale
		}
		if !almostEqual(back, in, 1e-2) {
			t.Errorf("N=%d: IDCT1D(DCT1D(x))/N = %v, want %v", n, back, in)
		}
	}
}

func TestIDCT2DShapeDims(t *testing.T) {
	block := make([]float32, 64)
	block[0] = 8 // pure DC
	out := IDCT2DShape(DCT, block)
	if len(out) != 64 {
		t.Fatalf("len(out) = %d, want 64", len(out))
	}
	for i, v := range out {
		if math.Abs(float64(v)-8) > 1e-4 {
			t.Errorf("out[%d] = %v, want ~8 for a pure-DC block of value 8 (2-D IDCT has no built-in normalisation)", i, v)
		}
	}
}

func TestIDCT2DShapePanicsOnNonDCT(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-DCT shape")
		}
	}()
	IDCT2DShape(IDENTITY, make([]float32, 64))
}

func TestForStrategyGrouping(t *testing.T) {
	cases := []struct {
		s    Shape
		want QuantTable
	}{
		{DCT16x8, QTDct8x16},
		{DCT8x16, QTDct8x16},
		{AFV0, QTAfv0},
		{AFV3, QTAfv0},
		{DCT256x128, QTDct128x256},
	}
	for _, c := range cases {
		if got := ForStrategy(c.s); got != c.want {
			t.Errorf("ForStrategy(%v) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestRequiredSizeSum(t *testing.T) {
	sum := 0
	for i := 0; i < NumQuantTables; i++ {
		sum += RequiredSizeX[i] * RequiredSizeY[i]
	}
	if sum != SumRequiredXY {
		t.Errorf("sum of RequiredSizeX*RequiredSizeY = %d, want %d", sum, SumRequiredXY)
	}
}
