/*
DESCRIPTION
  tags.go builds the individual ICC tag blobs the profile assembler in
  icc.go concatenates: mluc (text), XYZ (tristimulus), sf32 (the chad
  matrix), cicp (coding-independent code points), and para/curv (tone
  response curves).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package icc

import (
	"math"

	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
	"gonum.org/v1/gonum/mat"
)

// mlucTag builds a single-record multi-localized-unicode tag for the
// "enUS" locale, encoding text as UTF-16BE by prefixing each ASCII byte
// with 0x00.
func mlucTag(text string) ([]byte, error) {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7f {
			return nil, jxlerr.New(jxlerr.IccMlucTextNotAscii, "%q", text)
		}
	}
	n := len(text)
	body := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		body[2*i] = 0
		body[2*i+1] = text[i]
	}
	buf := make([]byte, 28+len(body))
	copy(buf[0:4], "mluc")
	putU32(buf[8:12], 1) // one record
	putU32(buf[12:16], 12)
	copy(buf[16:20], "enUS")
	putU32(buf[20:24], uint32(len(body)))
	putU32(buf[24:28], 28)
	copy(buf[28:], body)
	return buf, nil
}

// xyzTag builds a single-entry XYZ tag.
func xyzTag(x, y, z float64) ([]byte, error) {
	buf := make([]byte, 20)
	copy(buf[0:4], "XYZ ")
	for i, v := range []float64{x, y, z} {
		if err := putS15Fixed16(buf[8+4*i:12+4*i], v); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// chadTag builds an sf32 (s15Fixed16 array) tag carrying the 9 entries of
// a 3x3 chromatic adaptation matrix, row-major.
func chadTag(m *mat.Dense) ([]byte, error) {
	buf := make([]byte, 8+9*4)
	copy(buf[0:4], "sf32")
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			i := r*3 + c
			if err := putS15Fixed16(buf[8+4*i:12+4*i], m.At(r, c)); err != nil {
				return nil, err
			}
		}
	}
	return buf, nil
}

// cicpTag builds a coding-independent code points tag.
func cicpTag(colourPrimaries, transferCharacteristics, matrixCoefficients, videoFullRange byte) []byte {
	buf := make([]byte, 12)
	copy(buf[0:4], "cicp")
	buf[8] = colourPrimaries
	buf[9] = transferCharacteristics
	buf[10] = matrixCoefficients
	buf[11] = videoFullRange
	return buf
}

// paraTag builds a parametric curve tag of the given type code (0 or 3)
// carrying the given parameters.
func paraTag(typeCode uint16, params []float64) ([]byte, error) {
	buf := make([]byte, 12+4*len(params))
	copy(buf[0:4], "para")
	putU16(buf[8:10], typeCode)
	for i, p := range params {
		if err := putS15Fixed16(buf[12+4*i:16+4*i], p); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// curvTag builds a sampled lookup-table curve tag from entries already
// normalised to [0,1], encoding each as a 16-bit fraction of 65535 per the
// curv tag convention.
func curvTag(entries []float64) []byte {
	buf := make([]byte, 12+2*len(entries))
	copy(buf[0:4], "curv")
	putU32(buf[8:12], uint32(len(entries)))
	for i, v := range entries {
		clamped := math.Max(0, math.Min(1, v))
		putU16(buf[12+2*i:14+2*i], uint16(math.Round(clamped*65535)))
	}
	return buf
}

// hlgEOTFTable samples the ITU-R BT.2100 HLG EOTF, normalised to [0,1], at
// N points, sign-mirrored for negative x (x only ranges over [0,1] here
// so the mirror branch is unreachable but kept for fidelity with the
// reference formula).
func hlgEOTFTable(n int) []float64 {
	const a = 0.17883277
	b := 1 - 4*a
	c := 0.5599107295
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		sign := 1.0
		ax := x
		if x < 0 {
			sign = -1
			ax = -x
		}
		var y float64
		if ax <= 0.5 {
			y = ax * ax / 3
		} else {
			y = (math.Exp((ax-c)/a) + b) / 12
		}
		out[i] = sign * y
	}
	return out
}

// pqEOTFTable samples the SMPTE ST 2084 PQ EOTF, normalised to [0,1], at
// N points.
func pqEOTFTable(n int) []float64 {
	const (
		m1 = 2610.0 / 16384.0
		m2 = (2523.0 / 4096.0) * 128.0
		c1 = 3424.0 / 4096.0
		c2 = (2413.0 / 4096.0) * 32.0
		c3 = (2392.0 / 4096.0) * 32.0
		it = 10000.0
	)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		xp := math.Pow(x, 1/m2)
		num := math.Max(xp-c1, 0)
		den := c2 - c3*xp
		y := math.Pow(num/den, 1/m1) * (10000.0 / it)
		if y < 0 {
			y = 0
		}
		if y > 1 {
			y = 1
		}
		out[i] = y
	}
	return out
}
