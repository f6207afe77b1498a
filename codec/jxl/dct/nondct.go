/*
DESCRIPTION
  nondct.go implements JPEG XL's four non-DCT transform modes: Identity
  (Hornuss), DCT2x2, DCT4x4, and AFV. Their weight layouts (codec/jxl/quant)
  are ported at full fidelity from the reference decoder; their
  pixel-domain synthesis is reconstructed here from the same nested
  subband layout the weight tables describe (the retrieved reference
  sources include the weight-table construction but not a transform-domain
  AFV/DCT2/DCT4 synthesis routine — see DESIGN.md).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

// IdentityIDCT implements Hornuss: the dequantised 8x8 block already is
// the pixel block, so this is a copy.
func IdentityIDCT(block []float32) []float32 {
	out := make([]float32, len(block))
	copy(out, block)
	return out
}

// DCT2x2IDCT reconstructs an 8x8 pixel block from the nested 1/2/4/8 DC
// pyramid DCT2x2 uses. The coefficient layout at each dyadic level k (k in
// {1,2,4}) places the horizontal detail subband at rows[0,k)xcols[k,2k),
// the vertical detail at rows[k,2k)xcols[0,k), and the diagonal detail at
// rows[k,2k)xcols[k,2k) -- exactly the corners DequantMatrices' Dct2
// encoding assigns distinct weights to. Each level's synthesis is
// therefore a 2x2 IDCT2D applied per approximation cell.
func DCT2x2IDCT(block []float32) []float32 {
	if len(block) != 64 {
		panic("dct: DCT2x2IDCT requires a 64-element 8x8 block")
	}
	approx := []float32{block[0]}
	size := 1
	for size < 8 {
		k := size
		next := make([]float32, (2*k)*(2*k))
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				a := approx[i*k+j]
				h := block[i*8+(k+j)]
				v := block[(k+i)*8+j]
				d := block[(k+i)*8+(k+j)]
				pix := IDCT2D(2, 2, []float32{a, h, v, d})
				next[(2*i)*(2*k)+2*j] = pix[0]
				next[(2*i)*(2*k)+2*j+1] = pix[1]
				next[(2*i+1)*(2*k)+2*j] = pix[2]
				next[(2*i+1)*(2*k)+2*j+1] = pix[3]
			}
		}
		approx = next
		size = 2 * k
	}
	return approx
}

// DCT4x4IDCT performs a 4x4 IDCT on the block's upper-left 4x4 coefficient
// corner, then upsamples the resulting 4x4 pixel patch by nearest-neighbour
// 2x replication to fill the 8x8 block.
func DCT4x4IDCT(block []float32) []float32 {
	if len(block) != 64 {
		panic("dct: DCT4x4IDCT requires a 64-element 8x8 block")
	}
	corner := make([]float32, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			corner[y*4+x] = block[y*8+x]
		}
	}
	patch := IDCT2D(4, 4, corner)
	out := make([]float32, 64)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			out[y*8+x] = patch[(y/2)*4+(x/2)]
		}
	}
	return out
}

// AFVOrientation selects which corner of the 8x8 block the 4x4 sub-block
// occupies, one of the four AFV transform shapes.
type AFVOrientation int

const (
	AFVTopLeft AFVOrientation = iota
	AFVTopRight
	AFVBottomLeft
	AFVBottomRight
)

// AFVIDCT reconstructs an 8x8 pixel block as the orientation-dependent
// composite of a 4x4 IDCT (placed in the corner orient names) and a 4x8
// IDCT occupying the remaining half of the block. coeffs4x4 and coeffs4x8
// are the two non-overlapping coefficient halves (16 and 32 elements
// respectively) as already split out by the caller's block-shape logic.
func AFVIDCT(orient AFVOrientation, coeffs4x4, coeffs4x8 []float32) []float32 {
	if len(coeffs4x4) != 16 {
		panic("dct: AFVIDCT requires a 16-element 4x4 half")
	}
	if len(coeffs4x8) != 32 {
		panic("dct: AFVIDCT requires a 32-element 4x8 half")
	}
	quarter := IDCT2D(4, 4, coeffs4x4)
	half := IDCT2D(4, 8, coeffs4x8)

	out := make([]float32, 64)
	// Place the 4x4 quarter in the named corner; the 4x8 half fills the
	// complementary half of the block (top/bottom or left/right
	// depending on orientation), matching the encoding's "two non-DCT
	// bands overlaid" structure.
	switch orient {
	case AFVTopLeft, AFVTopRight:
		// 4x4 sits in the top half alongside a second 4x4 slot that the
		// 4x8 half's left/right 4 columns occupy; bottom half is the
		// other 4 rows of the 4x8 half.
		leftCol := 0
		if orient == AFVTopRight {
			leftCol = 4
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				out[y*8+leftCol+x] = quarter[y*4+x]
			}
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 8; x++ {
				out[(y+4)*8+x] = half[y*8+x]
			}
		}
	case AFVBottomLeft, AFVBottomRight:
		leftCol := 0
		if orient == AFVBottomRight {
			leftCol = 4
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				out[(y+4)*8+leftCol+x] = quarter[y*4+x]
			}
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 8; x++ {
				out[y*8+x] = half[y*8+x]
			}
		}
	}
	return out
}
