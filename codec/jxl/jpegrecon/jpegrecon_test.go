/*
DESCRIPTION
  jpegrecon_test.go provides testing for the Huffman table builder, bit
  packing, coefficient store, quant table filling, and a minimal Parse
  round trip.

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

	"github.com/google/go-cmp/cmp"
)

func TestBuildHuffTableAssignsShorterCodesToEarlierSymbols(t *testing.T) {
	slot := HuffmanSlot{
		Counts: [16]int{0, 2}, // two symbols of length 2, none of length 1
		Values: []int{5, 6},
	}
	table := buildHuffTable(slot)
	if table[5].size != 2 || table[6].size != 2 {
		t.Fatalf("table = %+v, want both symbols at size 2", table)
	}
	if table[5].code == table[6].code {
		t.Error("symbols of the same length must get distinct codes")
	}
}

func TestSizeOfAndBiasedValue(t *testing.T) {
	cases := []struct {
		v    int
		size int
	}{{0, 0}, {1, 1}, {-1, 1}, {3, 2}, {-3, 2}, {255, 8}}
	for _, c := range cases {
		if got := sizeOf(c.v); got != c.size {
			t.Errorf("sizeOf(%d) = %d, want %d", c.v, got, c.size)
		}
	}
	if got := biasedValue(-3, 2); got != 0 {
		t.Errorf("biasedValue(-3, 2) = %d, want 0", got)
	}
	if got := biasedValue(3, 2); got != 3 {
		t.Errorf("biasedValue(3, 2) = %d, want 3", got)
	}
}

func TestBitWriterByteStuffsFF(t *testing.T) {
	w := &bitWriter{}
	w.writeBits(0xFF, 8)
	w.flush()
	want := []byte{0xFF, 0x00}
	if !bytes.Equal(w.buf, want) {
		t.Errorf("buf = %x, want %x", w.buf, want)
	}
}

func TestCoefficientStoreDCAndZigzag(t *testing.T) {
	s := NewCoefficientStore(1, 1)
	s.StoreDC(0, 0, 42)
	var coeffs [64]float32
	coeffs[1] = 7 // row-major position (x=1, y=0)
	s.StoreBlock(0, 0, coeffs)

	block := s.Block(0, 0)
	if block[0] != 42 {
		t.Errorf("DC = %v, want 42", block[0])
	}
	// Natural order index 1 is row-major position 1 (x=1,y=0); after the
	// (x,y)->(y,x) transpose that value comes from row-major position
	// (x=0,y=1) = index 8, which is zero, so zigzag[1] should be 0, while
	// the 7 we wrote lands wherever the transpose sends index 1.
	found := false
	for i := 1; i < 64; i++ {
		if block[i] == 7 {
			found = true
		}
	}
	if !found {
		t.Error("StoreBlock lost the non-zero coefficient")
	}
}

func TestUpdateQuantTablesFromRawRejectsOutOfRange(t *testing.T) {
	info := []QuantTableInfo{{}, {}, {}}
	qtable := make([]int32, 3*64)
	qtable[0] = -1
	if err := UpdateQuantTablesFromRaw(info, qtable, 1.0/(8*255), true); err == nil {
		t.Error("expected an error for a non-positive quant value")
	}
}

func TestUpdateQuantTablesFromRawFillsYCbCrOrder(t *testing.T) {
	info := []QuantTableInfo{{}, {}, {}}
	qtable := make([]int32, 3*64)
	for i := 0; i < 64; i++ {
		qtable[0*64+i] = 100 // Y
		qtable[1*64+i] = 200 // Cb
		qtable[2*64+i] = 300 // Cr
	}
	den := 1.0
	if err := UpdateQuantTablesFromRaw(info, qtable, den, true); err != nil {
		t.Fatalf("UpdateQuantTablesFromRaw: %v", err)
	}
	// doYCbCr=true maps channel order [1,0,2]: slot 0 <- channel 1 (Cb=200).
	if info[0].Values[0] != 200 {
		t.Errorf("info[0].Values[0] = %d, want 200", info[0].Values[0])
	}
	if info[1].Values[0] != 100 {
		t.Errorf("info[1].Values[0] = %d, want 100", info[1].Values[0])
	}
	if info[2].Values[0] != 300 {
		t.Errorf("info[2].Values[0] = %d, want 300", info[2].Values[0])
	}
}

func TestUpdateQuantTablesFromRawFillsGrayOrder(t *testing.T) {
	info := []QuantTableInfo{{Index: 0, IsLast: true}}
	qtable := make([]int32, 3*64)
	for i := 0; i < 64; i++ {
		qtable[i] = 50
	}
	if err := UpdateQuantTablesFromRaw(info, qtable, 1.0, false); err != nil {
		t.Fatalf("UpdateQuantTablesFromRaw: %v", err)
	}

	want := []QuantTableInfo{{Index: 0, IsLast: true}}
	want[0].Values[0] = 50

	if diff := cmp.Diff(want[0].Index, info[0].Index); diff != "" {
		t.Errorf("Index mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0].Values[0], info[0].Values[0]); diff != "" {
		t.Errorf("Values[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	stub := func(compressed []byte, n int) ([]byte, error) {
		return make([]byte, n), nil
	}
	// is_gray(1 bit)=1, marker(6 bits)=0x19 (EOI); nothing else follows,
	// so the mandatory quant-table-count read beyond the marker list must
	// fail with an unexpected-EOF wrapped in the tagged core error.
	b := byte(1) | byte(0x19)<<1
	if _, err := Parse([]byte{b}, stub); err == nil {
		t.Error("expected an error for a jbrd buffer truncated before the quant table count")
	}
}
