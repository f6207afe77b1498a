/*
DESCRIPTION
  shape.go enumerates the 27 transform shapes VarDCT blocks may use, and
  the 17-slot QuantTable grouping several of them share, per ISO/IEC
  18181-1's variable block-size transform table.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dct

// Shape is a tagged enumeration over the 27 block transform shapes VarDCT
// supports.
type Shape int

const (
	DCT Shape = iota // the default 8x8 DCT
	IDENTITY         // Hornuss
	DCT2x2
	DCT4x4
	DCT16x16
	DCT32x32
	DCT16x8
	DCT8x16
	DCT32x8
	DCT8x32
	DCT32x16
	DCT16x32
	DCT4x8
	DCT8x4
	AFV0
	AFV1
	AFV2
	AFV3
	DCT64x64
	DCT64x32
	DCT32x64
	DCT128x128
	DCT128x64
	DCT64x128
	DCT256x256
	DCT256x128
	DCT128x256

	numShapes = DCT128x256 + 1
)

// NumShapes is the cardinality of the Shape enumeration (27).
const NumShapes = int(numShapes)

// dims holds {rows, cols} in pixels for every shape, rows first following
// the usual "ROWS x COLS" convention (apply the COLS-point IDCT to rows,
// then transpose, apply the ROWS-point IDCT).
var dims = [numShapes][2]int{
	DCT:        {8, 8},
	IDENTITY:   {8, 8},
	DCT2x2:     {8, 8},
	DCT4x4:     {8, 8},
	DCT16x16:   {16, 16},
	DCT32x32:   {32, 32},
	DCT16x8:    {16, 8},
	DCT8x16:    {8, 16},
	DCT32x8:    {32, 8},
	DCT8x32:    {8, 32},
	DCT32x16:   {32, 16},
	DCT16x32:   {16, 32},
	DCT4x8:     {4, 8},
	DCT8x4:     {8, 4},
	AFV0:       {8, 8},
	AFV1:       {8, 8},
	AFV2:       {8, 8},
	AFV3:       {8, 8},
	DCT64x64:   {64, 64},
	DCT64x32:   {64, 32},
	DCT32x64:   {32, 64},
	DCT128x128: {128, 128},
	DCT128x64:  {128, 64},
	DCT64x128:  {64, 128},
	DCT256x256: {256, 256},
	DCT256x128: {256, 128},
	DCT128x256: {128, 256},
}

// Dims returns the (rows, cols) pixel size of a block of this shape.
func (s Shape) Dims() (rows, cols int) {
	d := dims[s]
	return d[0], d[1]
}

// String names the shape.
func (s Shape) String() string {
	names := [numShapes]string{
		"DCT", "IDENTITY", "DCT2x2", "DCT4x4", "DCT16x16", "DCT32x32",
		"DCT16x8", "DCT8x16", "DCT32x8", "DCT8x32", "DCT32x16", "DCT16x32",
		"DCT4x8", "DCT8x4", "AFV0", "AFV1", "AFV2", "AFV3", "DCT64x64",
		"DCT64x32", "DCT32x64", "DCT128x128", "DCT128x64", "DCT64x128",
		"DCT256x256", "DCT256x128", "DCT128x256",
	}
	if int(s) < 0 || int(s) >= int(numShapes) {
		return "UnknownShape"
	}
	return names[s]
}

// QuantTable is one of the 17 canonical weight-table slots, several of
// which serve more than one Shape (e.g. DCT16x8 and DCT8x16 share one
// table, transposed).
type QuantTable int

const (
	QTDct QuantTable = iota
	QTIdentity
	QTDct2x2
	QTDct4x4
	QTDct16x16
	QTDct32x32
	QTDct8x16
	QTDct8x32
	QTDct16x32
	QTDct4x8
	QTAfv0
	QTDct64x64
	QTDct32x64
	QTDct128x128
	QTDct64x128
	QTDct256x256
	QTDct128x256

	numQuantTables = QTDct128x256 + 1
)

// NumQuantTables is the cardinality of the QuantTable enumeration (17).
const NumQuantTables = int(numQuantTables)

// RequiredSizeX and RequiredSizeY give, per QuantTable slot, the shape's
// side length in units of BLOCK_DIM (8); their product is the count of 8x8
// sub-blocks the weight table must cover before tiling/interpolation. The
// values and their sum (2056) are ported from the reference decoder's
// DequantMatrices::REQUIRED_SIZE_X/Y and SUM_REQUIRED_X_Y.
var RequiredSizeX = [numQuantTables]int{1, 1, 1, 1, 2, 4, 1, 1, 2, 1, 1, 8, 4, 16, 8, 32, 16}
var RequiredSizeY = [numQuantTables]int{1, 1, 1, 1, 2, 4, 2, 4, 4, 1, 1, 8, 8, 16, 16, 32, 32}

// SumRequiredXY is the sum over all slots of RequiredSizeX[i]*RequiredSizeY[i].
const SumRequiredXY = 2056

// ForStrategy maps a transform shape onto its QuantTable slot: shapes that
// are transposes of each other (e.g. DCT16x8/DCT8x16) share one slot.
func ForStrategy(s Shape) QuantTable {
	switch s {
	case DCT:
		return QTDct
	case IDENTITY:
		return QTIdentity
	case DCT2x2:
		return QTDct2x2
	case DCT4x4:
		return QTDct4x4
	case DCT16x16:
		return QTDct16x16
	case DCT32x32:
		return QTDct32x32
	case DCT16x8, DCT8x16:
		return QTDct8x16
	case DCT32x8, DCT8x32:
		return QTDct8x32
	case DCT32x16, DCT16x32:
		return QTDct16x32
	case DCT4x8, DCT8x4:
		return QTDct4x8
	case AFV0, AFV1, AFV2, AFV3:
		return QTAfv0
	case DCT64x64:
		return QTDct64x64
	case DCT64x32, DCT32x64:
		return QTDct32x64
	case DCT128x128:
		return QTDct128x128
	case DCT128x64, DCT64x128:
		return QTDct64x128
	case DCT256x256:
		return QTDct256x256
	case DCT256x128, DCT128x256:
		return QTDct128x256
	default:
		return QTDct
	}
}

// IsDCT reports whether the shape is decoded via the generic N-point
// IDCT family (as opposed to Identity/DCT2/DCT4/AFV non-DCT modes).
func (s Shape) IsDCT() bool {
	switch s {
	case IDENTITY, DCT2x2, DCT4x4, AFV0, AFV1, AFV2, AFV3:
		return false
	default:
		return true
	}
}
