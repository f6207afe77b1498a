/*
DESCRIPTION
  writer_test.go checks WriteJpeg's marker framing and entropy coding
  against a known-good byte sequence for a minimal single-block image.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package jpegrecon

import (
	"bytes"
	"testing"
)

// TestWriteJpegProducesByteExactFraming builds a one-component, one-block
// (8x8) reconstruction fixture with a one-symbol DC table and a
// two-symbol AC table, and checks that WriteJpeg's output matches the
// JPEG byte stream that framing implies exactly: SOI, DQT, DHT, SOF0,
// SOS (header plus entropy-coded scan), EOI.
func TestWriteJpegProducesByteExactFraming(t *testing.T) {
	dcSlot := HuffmanSlot{IsAC: false, SlotID: 0, Counts: [16]int{1}, Values: []int{0}}
	acSlot := HuffmanSlot{IsAC: true, SlotID: 0, Counts: [16]int{2}, Values: []int{0, 1}}

	quant := QuantTableInfo{Precision: 0, Index: 0, IsLast: true}
	for i := range quant.Values {
		quant.Values[i] = 1
	}

	d := &JpegReconstructionData{
		MarkerOrder:     []byte{dqt, dht, 0xC0, sos},
		QuantInfo:       []QuantTableInfo{quant},
		HuffmanSlots:    []HuffmanSlot{dcSlot, acSlot},
		FrameComponents: []FrameComponent{{ID: 1, QuantIndex: 0, HSampling: 1, VSampling: 1}},
		Scans: []Scan{{
			Components: []ScanComponent{{ComponentIndex: 0, DCTableIndex: 0, ACTableIndex: 0}},
			Ss:         0,
			Se:         63,
		}},
	}

	store := NewCoefficientStore(1, 1)
	store.blocks[0][0][1] = 1 // one AC coefficient: run 0, category 1

	got, err := WriteJpeg(d, 8, 8, []*CoefficientStore{store})
	if err != nil {
		t.Fatalf("WriteJpeg: %v", err)
	}

	var want []byte
	want = append(want, 0xFF, soi)

	// DQT: one 8-bit table, all 64 entries set to 1 (so the zigzag
	// permutation can't change the expected bytes).
	want = append(want, 0xFF, dqt, 0x00, 0x43, 0x00)
	for i := 0; i < 64; i++ {
		want = append(want, 0x01)
	}

	// DHT: the DC slot (one 1-bit code for category 0), then the AC slot
	// (two 1-bit codes: EOB and category 1).
	want = append(want, 0xFF, dht, 0x00, 0x27)
	want = append(want, 0x00) // class=0, slot=0
	want = append(want, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, 0x00) // DC symbol: category 0
	want = append(want, 0x10) // class=1, slot=0
	want = append(want, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, 0x00, 0x01) // AC symbols: EOB, category 1

	// SOF0: 8x8, one component, quant table 0, 1x1 sampling.
	want = append(want, 0xFF, 0xC0, 0x00, 0x0B, 0x08, 0x00, 0x08, 0x00, 0x08, 0x01)
	want = append(want, 0x01, 0x11, 0x00)

	// SOS header, then the entropy-coded scan: DC code 0 (category 0, no
	// value bits), AC code 1 plus value bit 1 (coefficient 1), EOB code
	// 0, padded with 1 bits to a full byte: 0110_1111 = 0x6F.
	want = append(want, 0xFF, sos, 0x00, 0x08, 0x01, 0x01, 0x00, 0x00, 0x3F, 0x00)
	want = append(want, 0x6F)

	want = append(want, 0xFF, eoi)

	if !bytes.Equal(got, want) {
		t.Errorf("WriteJpeg output mismatch:\ngot:  % x\nwant: % x", got, want)
	}
}
