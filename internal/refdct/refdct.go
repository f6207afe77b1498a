/*
DESCRIPTION
  refdct.go implements an FFT-derived reference DCT-II/DCT-III pair,
  independent of the Chen radix factorisation in codec/jxl/dct, for use
  as a cross-check in that package's tests. Grounded on the Makhoul
  (1980) even-odd split used to compute a DCT through a same-size FFT,
  the same go-dsp/fft.FFTReal call codec/pcm/filters.go uses for its
  convolution filters.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package refdct is a test-only reference DCT, deliberately independent
// of codec/jxl/dct's production Chen factorisation, so that package's
// tests have something else to check their round trips against.
package refdct

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// ForwardDCTII returns the length-N DCT-II of x:
//
//	X[k] = 2 * sum_{n=0}^{N-1} x[n] * cos(pi*k*(2n+1)/(2N))
//
// computed via the Makhoul even-odd split through an N-point FFT rather
// than the direct O(N^2) sum. N must be even; every shape in
// codec/jxl/dct is a power of two.
func ForwardDCTII(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n%2 != 0 {
		panic("refdct: ForwardDCTII requires an even length")
	}

	v := make([]float64, n)
	half := n / 2
	for i := 0; i < half; i++ {
		v[i] = x[2*i]
		v[n-1-i] = x[2*i+1]
	}

	V := fft.FFTReal(v)

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		theta := -math.Pi * float64(k) / (2 * float64(n))
		c, s := math.Cos(theta), math.Sin(theta)
		out[k] = 2 * (real(V[k])*c - imag(V[k])*s)
	}
	return out
}

// InverseDCTIII computes the DCT-III (the un-normalised inverse of
// ForwardDCTII):
//
//	y[n] = X[0]/2 + sum_{k=1}^{N-1} X[k] * cos(pi*k*(2n+1)/(2N))
//
// satisfying InverseDCTIII(ForwardDCTII(x)) == N*x. Computed directly
// rather than through another FFT pass: reconstructing the full complex
// spectrum that the forward split needs for an FFT-based inverse is
// more machinery than a test-only reference of at most 256 samples
// warrants; go-dsp/fft still grounds the forward half of this pair.
func InverseDCTIII(X []float64) []float64 {
	n := len(X)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := X[0] / 2
		for k := 1; k < n; k++ {
			sum += X[k] * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(n)))
		}
		out[i] = sum
	}
	return out
}
