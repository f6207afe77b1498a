/*
DESCRIPTION
  simd.go provides a SIMD abstraction for the transform kernels: a
  descriptor type over a fixed-lane float32 vector, with a scalar (LEN=1)
  implementation as a first-class backend. No vector backend is
  implemented in this Go port, and the transform functions of this
  package do not take a Descriptor: they compute on float32 slices
  directly.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

// Descriptor abstracts a fixed-lane float32 vector backend, mirroring the
// "D: SimdDescriptor" generic parameter of the ported source's 1-D/2-D
// routines. Len reports the number of lanes (1 for the scalar backend).
type Descriptor interface {
	Len() int
	Splat(v float32) []float32
	MulAdd(a, b, c []float32) []float32     // a*b + c
	NegMulAdd(a, b, c []float32) []float32   // -a*b + c
	Add(a, b []float32) []float32
	Sub(a, b []float32) []float32
	Mul(a, b []float32) []float32
}

// Scalar is the LEN=1 descriptor. It is the default, and a first-class
// implementation in its own right rather than a fallback path.
type Scalar struct{}

func (Scalar) Len() int { return 1 }

func (Scalar) Splat(v float32) []float32 { return []float32{v} }

func (Scalar) MulAdd(a, b, c []float32) []float32 {
	return []float32{a[0]*b[0] + c[0]}
}

func (Scalar) NegMulAdd(a, b, c []float32) []float32 {
	return []float32{-a[0]*b[0] + c[0]}
}

func (Scalar) Add(a, b []float32) []float32 { return []float32{a[0] + b[0]} }
func (Scalar) Sub(a, b []float32) []float32 { return []float32{a[0] - b[0]} }
func (Scalar) Mul(a, b []float32) []float32 { return []float32{a[0] * b[0]} }
