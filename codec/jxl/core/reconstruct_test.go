/*
DESCRIPTION
  reconstruct_test.go checks that ReconstructJPEG correctly wires
  jpegrecon.Parse into jpegrecon.WriteJpeg for a hand-packed jbrd box.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package core

import (
	"testing"

	"github.com/ausocean/jxlvardct/codec/jxl/jpegrecon"
)

// lsbBitWriter packs bits least-significant-bit-first, matching the wire
// convention codec/jxl/bitstream.Reader consumes.
type lsbBitWriter struct {
	buf []byte
	cur uint64
	n   int
}

func (w *lsbBitWriter) write(v uint64, n int) {
	w.cur |= (v & ((uint64(1) << uint(n)) - 1)) << uint(w.n)
	w.n += n
	for w.n >= 8 {
		w.buf = append(w.buf, byte(w.cur))
		w.cur >>= 8
		w.n -= 8
	}
}

// bytes flushes any partial trailing byte, zero-padded, and returns the
// packed buffer.
func (w *lsbBitWriter) bytes() []byte {
	if w.n > 0 {
		w.buf = append(w.buf, byte(w.cur))
		w.cur, w.n = 0, 0
	}
	return w.buf
}

// TestReconstructJPEGRoundTripsAMinimalJbrdBox hand-packs a jbrd box
// describing a grayscale image with one quant table and a two-slot
// Huffman table, no APP/COM/scan markers, and checks that ReconstructJPEG
// parses it and writes back the minimal framing (SOI, EOI) that marker
// list implies.
func TestReconstructJPEGRoundTripsAMinimalJbrdBox(t *testing.T) {
	w := &lsbBitWriter{}
	w.write(1, 1)    // is_gray
	w.write(0x19, 6) // marker list: immediately EOI, no other markers

	w.write(0, 2) // quant table count selector -> base 1 table
	w.write(0, 1) // precision
	w.write(0, 2) // index
	w.write(1, 1) // is_last

	w.write(0, 2) // component type: Gray
	w.write(0, 2) // component 0 quant index

	w.write(1, 2) // huffman count selector -> base 2
	w.write(0, 3) // literal 0 -> count 2

	// DC slot: one 1-bit code for category 0.
	w.write(0, 1) // is_ac
	w.write(0, 2) // slot id
	w.write(0, 1) // is_last
	w.write(0, 2) // counts[0] must be 0
	w.write(1, 2) // counts[1] = 1 (one code of length 1)
	for i := 0; i < 15; i++ {
		w.write(0, 2) // counts[2..16] = 0
	}
	w.write(0, 2) // symbol 0 selector
	w.write(0, 2) // symbol 0 literal -> value 0

	// AC slot: two 1-bit codes (EOB, category 1).
	w.write(1, 1) // is_ac
	w.write(0, 2) // slot id
	w.write(1, 1) // is_last
	w.write(0, 2) // counts[0] must be 0
	w.write(2, 2) // counts[1] selector -> base 2
	w.write(0, 3) // literal 0 -> count 2
	for i := 0; i < 15; i++ {
		w.write(0, 2) // counts[2..16] = 0
	}
	w.write(0, 2) // symbol 0 selector
	w.write(0, 2) // symbol 0 literal -> value 0 (EOB)
	w.write(0, 2) // symbol 1 selector
	w.write(1, 2) // symbol 1 literal -> value 1

	w.write(0, 2) // tail data length selector -> base 0
	w.write(0, 1) // has_padding

	jbrd := w.bytes()

	decompress := func(compressed []byte, n int) ([]byte, error) {
		return make([]byte, n), nil
	}

	store := jpegrecon.NewCoefficientStore(1, 1)
	out, err := ReconstructJPEG(jbrd, decompress, 8, 8, []*jpegrecon.CoefficientStore{store})
	if err != nil {
		t.Fatalf("ReconstructJPEG: %v", err)
	}
	want := []byte{0xFF, 0xD8, 0xFF, 0xD9} // SOI, EOI: the marker list names nothing else
	if string(out) != string(want) {
		t.Errorf("ReconstructJPEG = % x, want % x", out, want)
	}
}
