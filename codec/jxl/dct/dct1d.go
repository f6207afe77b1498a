/*
DESCRIPTION
  dct1d.go implements the forward 1-D DCT family DCT1D<N>, the mirror
  image of IDCT1D<N> in idct1d.go. The decoding core never calls this (this
  module implements a decoder only, never an encoder); it exists solely as
  the independent fixture the IDCT1D<N>(DCT1D<N>(b)) ~= b round-trip tests
  need.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

// DCT1D computes the N-point forward DCT of in, returning a freshly
// allocated output slice of the same length, using the same Chen
// factorisation (run forwards) that IDCT1D runs backwards.
func DCT1D(n int, in []float32) []float32 {
	switch n {
	case 1:
		out := make([]float32, 1)
		out[0] = in[0]
		return out
	case 2:
		return []float32{in[0] + in[1], in[0] - in[1]}
	}

	half := n / 2
	tmp := make([]float32, n)

	// 1. add_reverse into the first half.
	for i := 0; i < half; i++ {
		tmp[i] = in[i] + in[n-1-i]
	}
	// 2. recursive forward DCT on the first half.
	copy(tmp[0:half], DCT1D(half, tmp[0:half]))

	// 3. sub_reverse into the second half.
	for i := 0; i < half; i++ {
		tmp[half+i] = in[i] - in[n-1-i]
	}
	// 4. multiply the second half by K_MULTIPLIERS<N>.
	mul := kMultipliers(n)
	for i := 0; i < half; i++ {
		tmp[half+i] *= mul[i]
	}
	// 5. recursive forward DCT on the second half.
	copy(tmp[half:n], DCT1D(half, tmp[half:n]))

	// 6. b: a near-cumulative-sum pass over the second half in place.
	second := append([]float32(nil), tmp[half:n]...)
	tmp[half] = second[0]*float32(sqrt2) + second[1]
	for i := 1; i <= half-2; i++ {
		tmp[half+i] = second[i] + second[i+1]
	}
	// tmp[n-1] (the last element of the second half) is left unchanged.

	// 7. inverse_even_odd: interleave the two halves back together.
	out := make([]float32, n)
	for i := 0; i < half; i++ {
		out[2*i] = tmp[i]
		out[2*i+1] = tmp[half+i]
	}
	return out
}
