/*
DESCRIPTION
  nondct_test.go provides testing for the Identity, DCT2x2, DCT4x4, and AFV
  transform modes in nondct.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

import "testing"

func TestIdentityIDCTIsCopy(t *testing.T) {
	block := make([]float32, 64)
	for i := range block {
		block[i] = float32(i)
	}
	got := IdentityIDCT(block)
	if !almostEqual(got, block, 0) {
		t.Errorf("IdentityIDCT modified its input: got %v, want %v", got, block)
	}
	got[0] = -1
	if block[0] == -1 {
		t.Error("IdentityIDCT aliased its input slice")
	}
}

func TestDCT2x2IDCTSize(t *testing.T) {
	block := make([]float32, 64)
	block[0] = 1
	got := DCT2x2IDCT(block)
	if len(got) != 64 {
		t.Fatalf("len(got) = %d, want 64", len(got))
	}
}

func TestDCT2x2IDCTPureDCIsFlat(t *testing.T) {
	block := make([]float32, 64)
	block[0] = 4
	got := DCT2x2IDCT(block)
	for i, v := range got {
		if v != got[0] {
			t.Errorf("out[%d] = %v, out[0] = %v; a pure DC coefficient should synthesise a flat block", i, v, got[0])
		}
	}
}

func TestDCT4x4IDCTUpsampling(t *testing.T) {
	block := make([]float32, 64)
	block[0] = 8
	got := DCT4x4IDCT(block)
	if len(got) != 64 {
		t.Fatalf("len(got) = %d, want 64", len(got))
	}
	// Each 2x2 cell must replicate a single upsampled value.
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 2 {
			v := got[y*8+x]
			if got[y*8+x+1] != v || got[(y+1)*8+x] != v || got[(y+1)*8+x+1] != v {
				t.Errorf("cell (%d,%d) is not a uniform 2x2 replicate", y, x)
			}
		}
	}
}

func TestAFVIDCTOrientationsFillDistinctCorners(t *testing.T) {
	c4 := make([]float32, 16)
	c8 := make([]float32, 32)
	for i := range c4 {
		c4[i] = 1
	}
	for i := range c8 {
		c8[i] = 1
	}
	for _, o := range []AFVOrientation{AFVTopLeft, AFVTopRight, AFVBottomLeft, AFVBottomRight} {
		out := AFVIDCT(o, c4, c8)
		if len(out) != 64 {
			t.Fatalf("orientation %v: len(out) = %d, want 64", o, len(out))
		}
	}
}
