/*
DESCRIPTION
  store.go implements the JPEG DCT coefficient store and quantisation
  table filling: StoreDC/StoreBlock lay decoded transform-domain
  coefficients into JPEG natural (zigzag) order, and
  UpdateQuantTablesFromRaw maps a codestream-delivered quantisation table
  onto the right DQT slots.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package jpegrecon

import (
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

// clampI16 clamps v to the signed 16-bit range JPEG coefficient storage
// requires.
func clampI16(v int64) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int32(v)
}

// CoefficientStore holds one component's per-block zigzag-order
// coefficients, indexed [by][bx][0..63].
type CoefficientStore struct {
	blocksW, blocksH int
	blocks           [][][64]int32
}

// NewCoefficientStore allocates a store sized for a blocksW x blocksH
// grid of 8x8 blocks.
func NewCoefficientStore(blocksW, blocksH int) *CoefficientStore {
	blocks := make([][][64]int32, blocksH)
	for y := range blocks {
		blocks[y] = make([][64]int32, blocksW)
	}
	return &CoefficientStore{blocksW: blocksW, blocksH: blocksH, blocks: blocks}
}

// Block returns the zigzag-order coefficients of the block at (bx, by).
func (s *CoefficientStore) Block(bx, by int) [64]int32 {
	return s.blocks[by][bx]
}

// StoreDC writes the DC coefficient (index 0) of block (bx, by).
func (s *CoefficientStore) StoreDC(bx, by int, val float32) {
	s.blocks[by][bx][0] = clampI16(int64(val))
}

// StoreBlock writes indices 1..63 of block (bx, by) from a row-major 8x8
// AC coefficient array, transposing (x,y) -> (y,x) and permuting from
// natural (row-major) order into JPEG zigzag order via JPEGNaturalOrder.
func (s *CoefficientStore) StoreBlock(bx, by int, coeffs [64]float32) {
	block := &s.blocks[by][bx]
	for zigzag := 1; zigzag < 64; zigzag++ {
		pos := JPEGNaturalOrder[zigzag]
		x, y := pos%8, pos/8
		transposed := x*8 + y
		block[zigzag] = clampI16(int64(coeffs[transposed]))
	}
}

// UpdateQuantTablesFromRaw mirrors the reference decoder's
// update_quant_tables_from_raw: it maps a codestream-delivered 3x64
// quantisation table (qtable, channel order Y/Cb/Cr or R/G/B) onto the
// first three DQT slots in info according to doYCbCr (a grayscale info
// maps channel 0 to every slot). Each slot is filled only from its mapped
// channel: values are not copied between slots, and slots past the third
// are left unchanged.
func UpdateQuantTablesFromRaw(info []QuantTableInfo, qtable []int32, den float64, doYCbCr bool) error {
	if len(qtable) != 3*64 {
		return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "raw quant table length %d, want %d", len(qtable), 3*64)
	}

	var channelOrder [3]int
	switch {
	case len(info) <= 1:
		channelOrder = [3]int{0, 0, 0} // grayscale: single physical table
	case doYCbCr:
		channelOrder = [3]int{1, 0, 2}
	default:
		channelOrder = [3]int{0, 1, 2}
	}

	for slot := range info {
		if slot >= 3 {
			break
		}
		channel := channelOrder[slot]
		for i := 0; i < 64; i++ {
			raw := qtable[channel*64+i]
			v := float64(raw) * den
			if v <= 0 || v > 65535 {
				return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "quant value %v out of range (0, 65535]", v)
			}
			info[slot].Values[i] = uint16(v + 0.5)
		}
	}

	return nil
}
