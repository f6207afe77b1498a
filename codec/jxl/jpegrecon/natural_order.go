/*
DESCRIPTION
  natural_order.go holds the JPEG natural (zigzag) scan order table
  (ITU-T T.81 annex A figure A.6) the coefficient store uses to place a
  row-major 8x8 transform block's AC coefficients into their zigzag
  serialisation slots.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package jpegrecon

// JPEGNaturalOrder maps a zigzag scan index (0..63) to its row-major
// position within an 8x8 block, the standard JPEG coefficient ordering.
var JPEGNaturalOrder = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}
