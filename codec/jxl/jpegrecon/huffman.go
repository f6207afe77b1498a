/*
DESCRIPTION
  huffman.go builds JPEG Huffman code tables from jbrd-carried BITS/VALS
  counts and entropy-codes 8x8 coefficient blocks, per ITU-T T.81 annex
  C/F. The bit-packing convention (MSB-first, byte-stuffed 0xFF) follows
  the same big-endian marker-writing style as codec/jpeg's RTP/JPEG
  header writer, generalised here to a full variable-length entropy
  coder.

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

// huffCode is one symbol's (code, length) pair.
type huffCode struct {
	code uint16
	size uint8
}

// huffTable maps a symbol value to its Huffman code.
type huffTable map[int]huffCode

// buildHuffTable walks code values the way ITU-T T.81 annex C.2 does:
// starting at 0, incrementing once per symbol in a bit-length class and
// shifting left once per bit length.
func buildHuffTable(slot HuffmanSlot) huffTable {
	table := make(huffTable, len(slot.Values))
	code := 0
	vi := 0
	for size := 1; size <= 16; size++ {
		n := slot.Counts[size-1]
		for i := 0; i < n; i++ {
			table[slot.Values[vi]] = huffCode{code: uint16(code), size: uint8(size)}
			code++
			vi++
		}
		code <<= 1
	}
	return table
}

// bitWriter packs bits MSB-first into bytes, byte-stuffing every 0xFF
// that appears in the output (ITU-T T.81 section F.1.2.3).
type bitWriter struct {
	buf     []byte
	cur     uint32
	nBits   int
}

func (w *bitWriter) writeBits(code uint32, size int) {
	if size == 0 {
		return
	}
	w.cur = (w.cur << uint(size)) | (code & ((1 << uint(size)) - 1))
	w.nBits += size
	for w.nBits >= 8 {
		shift := uint(w.nBits - 8)
		b := byte(w.cur >> shift)
		w.buf = append(w.buf, b)
		if b == 0xFF {
			w.buf = append(w.buf, 0x00)
		}
		w.nBits -= 8
		w.cur &= (1 << shift) - 1
	}
}

// flush pads the last partial byte with 1 bits (the JPEG convention for
// entropy-segment padding) and emits it.
func (w *bitWriter) flush() {
	if w.nBits == 0 {
		return
	}
	pad := 8 - w.nBits
	w.writeBits((1<<uint(pad))-1, pad)
}

// sizeOf returns the number of bits needed to represent |v|, i.e.
// ceil(log2(|v|+1)), with sizeOf(0) = 0.
func sizeOf(v int) int {
	if v < 0 {
		v = -v
	}
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

// biasedValue returns diff's JPEG-biased magnitude representation: itself
// if non-negative, or diff + (1<<size) - 1 if negative.
func biasedValue(diff, size int) uint32 {
	if diff >= 0 {
		return uint32(diff)
	}
	return uint32(diff + (1 << uint(size)) - 1)
}

// encodeBlock entropy-codes one 8x8 block's 64 zigzag-order coefficients
// (coeffs[0] is the DC value) against the given DC/AC tables, updating
// prevDC in place.
func encodeBlock(w *bitWriter, coeffs [64]int32, dcTable, acTable huffTable, prevDC *int32) error {
	diff := int(coeffs[0] - *prevDC)
	*prevDC = coeffs[0]
	size := sizeOf(diff)
	dc, ok := dcTable[size]
	if !ok {
		return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "no DC huffman code for size %d", size)
	}
	w.writeBits(uint32(dc.code), int(dc.size))
	w.writeBits(biasedValue(diff, size), size)

	zeroRun := 0
	for i := 1; i < 64; i++ {
		v := int(coeffs[i])
		if v == 0 {
			zeroRun++
			continue
		}
		for zeroRun >= 16 {
			zrl, ok := acTable[0xF0]
			if !ok {
				return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "no ZRL huffman code")
			}
			w.writeBits(uint32(zrl.code), int(zrl.size))
			zeroRun -= 16
		}
		s := sizeOf(v)
		sym := (zeroRun << 4) | s
		ac, ok := acTable[sym]
		if !ok {
			return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "no AC huffman code for symbol %#x", sym)
		}
		w.writeBits(uint32(ac.code), int(ac.size))
		w.writeBits(biasedValue(v, s), s)
		zeroRun = 0
	}
	if zeroRun > 0 {
		eob, ok := acTable[0x00]
		if !ok {
			return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "no EOB huffman code")
		}
		w.writeBits(uint32(eob.code), int(eob.size))
	}
	return nil
}
