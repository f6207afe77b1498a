/*
DESCRIPTION
  float16.go decodes the IEEE 754 binary16 values the quantization weight
  stream carries. No half-precision float package appears anywhere in the
  retrieved corpus, so this is a small, self-contained bit-manipulation
  helper rather than a wired third-party dependency (see DESIGN.md).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitstream

import "math"

// Float16ToFloat32 converts an IEEE 754 binary16 bit pattern to float32.
func Float16ToFloat32(bits uint16) float32 {
	sign := uint32(bits&0x8000) << 16
	exp := (bits >> 10) & 0x1f
	frac := uint32(bits & 0x3ff)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: normalise by shifting the fraction left until the
		// implicit leading bit would be set, adjusting the exponent to match.
		e := 0
		f := frac
		for f&0x400 == 0 {
			f <<= 1
			e--
		}
		f &= 0x3ff
		exp32 := uint32(int32(127-15+1+e)) << 23
		return math.Float32frombits(sign | exp32 | (f << 13))
	case 0x1f:
		exp32 := uint32(0xff) << 23
		return math.Float32frombits(sign | exp32 | (frac << 13))
	default:
		exp32 := (uint32(exp) - 15 + 127) << 23
		return math.Float32frombits(sign | exp32 | (frac << 13))
	}
}
