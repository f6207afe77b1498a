/*
DESCRIPTION
  idct1d.go implements the 1-D inverse DCT family IDCT1D<N> for every power
  of two N in {1,2,4,...,256}, following the radix-2 Chen/Wang fast IDCT
  factorisation (Chen, Smith & Fralick 1977; generalised here to arbitrary
  powers of two via the same recursive halving Wang's 1984 fast IDCT uses).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dct implements the inverse block transform family: the 1-D/2-D
// IDCT kernels and the non-DCT (Identity, DCT2x2, DCT4x4, AFV) modes.
package dct

import (
	"math"
	"sync"
)

const sqrt2 = math.Sqrt2

var (
	kMulMu    sync.Mutex
	kMulCache = map[int][]float32{}
)

// kMultipliers returns K_MULTIPLIERS<N>, computing and caching it on first
// use. K_MULTIPLIERS<N>[i] = 1 / (2*cos(pi*(i+0.5)/N)) for i in [0, N/2).
// The cache mirrors the "initialise the big constant table once, then
// read-only" idiom the library quant encodings also use.
func kMultipliers(n int) []float32 {
	kMulMu.Lock()
	defer kMulMu.Unlock()
	if m, ok := kMulCache[n]; ok {
		return m
	}
	half := n / 2
	m := make([]float32, half)
	for i := 0; i < half; i++ {
		m[i] = float32(1 / (2 * math.Cos(math.Pi*(float64(i)+0.5)/float64(n))))
	}
	kMulCache[n] = m
	return m
}

// IDCT1D computes the N-point inverse DCT of in, returning a freshly
// allocated output slice of the same length. N must be a power of two in
// [1, 256]; in must have length N.
func IDCT1D(n int, in []float32) []float32 {
	switch n {
	case 1:
		out := make([]float32, 1)
		out[0] = in[0]
		return out
	case 2:
		return []float32{in[0] + in[1], in[0] - in[1]}
	}

	half := n / 2

	// 1. forward_even_odd: even-indexed inputs into the first half, odd
	// into the second.
	firstIn := make([]float32, half)
	secondIn := make([]float32, half)
	for i := 0; i < half; i++ {
		firstIn[i] = in[2*i]
		secondIn[i] = in[2*i+1]
	}

	// 2. Recursive IDCT1D<N/2> on the first half.
	first := IDCT1D(half, firstIn)

	// 3. b_transpose on the second half (pre-recursion, on the raw
	// odd-indexed samples).
	for i := half - 1; i >= 1; i-- {
		secondIn[i] += secondIn[i-1]
	}
	secondIn[0] *= float32(sqrt2)

	// 4. Recursive IDCT1D<N/2> on the second half.
	second := IDCT1D(half, secondIn)

	// 5. multiply_and_add.
	mul := kMultipliers(n)
	out := make([]float32, n)
	for i := 0; i < half; i++ {
		m := mul[i]
		out[i] = first[i] + m*second[i]
		out[n-1-i] = first[i] - m*second[i]
	}
	return out
}

// idct128 and idct256 are the large-block entry points, kept as named
// wrappers since a production decoder typically hand-unrolls these sizes
// for speed. Both route through the same recursive core: this module isn't
// benchmarked, so the hand-unrolled bodies aren't duplicated here (see
// DESIGN.md).
func idct128(in []float32) []float32 { return IDCT1D(128, in) }
func idct256(in []float32) []float32 { return IDCT1D(256, in) }
