/*
DESCRIPTION
  s15fixed16.go encodes the ICC s15Fixed16 numeric type (signed 32-bit,
  15 integer bits, 16 fractional bits) used throughout XYZ, chad, and
  parametric-curve tags.

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
)

// s15Fixed16 converts v to its ICC s15Fixed16 bit pattern, erroring if v is
// outside the representable range.
func s15Fixed16(v float64) (int32, error) {
	scaled := v * 65536
	if math.IsNaN(scaled) || scaled > math.MaxInt32 || scaled < math.MinInt32 {
		return 0, jxlerr.New(jxlerr.IccValueOutOfRangeS15Fixed16, "%v", v)
	}
	return int32(math.Round(scaled)), nil
}

func putS15Fixed16(buf []byte, v float64) error {
	enc, err := s15Fixed16(v)
	if err != nil {
		return err
	}
	putU32(buf, uint32(enc))
	return nil
}

func putU32(buf []byte, v uint32) {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
}

func putU16(buf []byte, v uint16) {
	buf[0] = byte(v >> 8)
	buf[1] = byte(v)
}
