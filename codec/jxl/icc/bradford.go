/*
DESCRIPTION
  bradford.go implements the Bradford chromatic adaptation matrix the chad
  ICC tag carries. The 3x3 linear algebra (two matrix products and a 3x3
  inverse) is done with gonum.org/v1/gonum/mat rather than hand-rolled
  arithmetic, generalising the one place in the corpus that already
  imports gonum for numerics.

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

// bradfordMatrix is the canonical Bradford cone-response matrix.
var bradfordMatrix = mat.NewDense(3, 3, []float64{
	0.8951, 0.2664, -0.1614,
	-0.7502, 1.7135, 0.0367,
	0.0389, -0.0685, 1.0296,
})

// d50XYZ is the ICC profile connection space white point.
var d50XYZ = []float64{0.96422, 1.0, 0.82521}

// whitePointXYZ converts a CIE xy chromaticity to CIE XYZ with Y = 1.
func whitePointXYZ(wx, wy float64) ([]float64, error) {
	if wx < 0 || wx > 1 || wy <= 0 || wy > 1 {
		return nil, jxlerr.New(jxlerr.IccInvalidWhitePoint, "wx=%v wy=%v out of range", wx, wy)
	}
	x := wx / wy
	z := (1 - wx - wy) / wy
	if math.IsNaN(x) || math.IsNaN(z) || math.IsInf(x, 0) || math.IsInf(z, 0) {
		return nil, jxlerr.New(jxlerr.IccInvalidWhitePoint, "wx=%v wy=%v produced a non-finite XYZ", wx, wy)
	}
	return []float64{x, 1, z}, nil
}

// AdaptToXYZD50 computes the 3x3 chromatic adaptation matrix mapping a
// source white point (given as CIE xy) to the D50 profile connection
// space via the Bradford method.
func AdaptToXYZD50(wx, wy float64) (*mat.Dense, error) {
	wSrc, err := whitePointXYZ(wx, wy)
	if err != nil {
		return nil, err
	}

	lmsSrc := mat.NewVecDense(3, nil)
	lmsSrc.MulVec(bradfordMatrix, mat.NewVecDense(3, wSrc))
	lmsD50 := mat.NewVecDense(3, nil)
	lmsD50.MulVec(bradfordMatrix, mat.NewVecDense(3, d50XYZ))

	diag := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		s := lmsSrc.AtVec(i)
		if s == 0 {
			return nil, jxlerr.New(jxlerr.IccInvalidWhitePoint, "lms_src[%d] is zero for wx=%v wy=%v", i, wx, wy)
		}
		diag.Set(i, i, lmsD50.AtVec(i)/s)
	}

	var bInv mat.Dense
	if err := bInv.Inverse(bradfordMatrix); err != nil {
		return nil, jxlerr.Wrap(jxlerr.MatrixInversionFailed, err, "bradford matrix inversion")
	}

	var chad mat.Dense
	chad.Mul(&bInv, diag)
	chad.Mul(&chad, bradfordMatrix)
	return &chad, nil
}
