/*
DESCRIPTION
  primaries.go builds the RGB-to-XYZ-D50 matrix the rXYZ/gXYZ/bXYZ ICC
  tags carry. It composes a primaries matrix in the encoding's native
  white point with the Bradford
  adaptation from bradford.go, mirroring the two-stage construction
  (primaries_to_xyz then adapt_to_xyz_d50) of the reference decoder this
  profile synthesiser targets.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package icc

import (
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
	"gonum.org/v1/gonum/mat"
)

// primariesToXYZ builds the 3x3 matrix mapping RGB in the given primaries
// to CIE XYZ relative to the encoding's own native white point (wx, wy),
// by scaling each primary's XYZ column so the matrix maps (1,1,1) onto
// the white point's XYZ.
func primariesToXYZ(rx, ry, gx, gy, bx, by, wx, wy float64) (*mat.Dense, error) {
	rz := 1 - rx - ry
	gz := 1 - gx - gy
	bz := 1 - bx - by
	p := mat.NewDense(3, 3, []float64{
		rx, gx, bx,
		ry, gy, by,
		rz, gz, bz,
	})

	w, err := whitePointXYZ(wx, wy)
	if err != nil {
		return nil, err
	}

	var pInv mat.Dense
	if err := pInv.Inverse(p); err != nil {
		return nil, jxlerr.Wrap(jxlerr.MatrixInversionFailed, err, "primaries matrix inversion")
	}

	s := mat.NewVecDense(3, nil)
	s.MulVec(&pInv, mat.NewVecDense(3, w))

	sDiag := mat.NewDense(3, 3, []float64{
		s.AtVec(0), 0, 0,
		0, s.AtVec(1), 0,
		0, 0, s.AtVec(2),
	})

	var result mat.Dense
	result.Mul(p, sDiag)
	return &result, nil
}

// PrimariesToXYZD50 builds the RGB-to-XYZ-D50 matrix for the given
// primaries and native white point: the native-white-point RGB-to-XYZ
// matrix from primariesToXYZ, left-multiplied by the Bradford adaptation
// from (wx, wy) to D50.
func PrimariesToXYZD50(rx, ry, gx, gy, bx, by, wx, wy float64) (*mat.Dense, error) {
	native, err := primariesToXYZ(rx, ry, gx, gy, bx, by, wx, wy)
	if err != nil {
		return nil, err
	}
	chad, err := AdaptToXYZD50(wx, wy)
	if err != nil {
		return nil, err
	}
	var result mat.Dense
	result.Mul(chad, native)
	return &result, nil
}
