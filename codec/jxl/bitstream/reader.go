/*
DESCRIPTION
  reader.go provides a least-significant-bit-first bitstream reader for the
  VarDCT decoding core. Bits are consumed in little-endian byte order, the
  wire order JPEG XL uses throughout its codestream.

AUTHOR
  Ported for the jxlvardct module.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitstream provides the LSB-first bit reader the VarDCT core pulls
// from. The entropy-coded bitstream itself (Brotli-style ANS/prefix coding)
// is an external collaborator out of scope for this core; this package only
// provides the raw bit-level primitives the codestream's header and jbrd
// parsing need.
package bitstream

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

type bytePeeker interface {
	io.ByteReader
	Peek(int) ([]byte, error)
}

// Reader reads bits least-significant-bit-first from an underlying
// io.Reader, with bytes consumed in stream order (little-endian).
type Reader struct {
	r        bytePeeker
	cur      uint64 // buffered bits, low bits valid
	nValid   int    // number of valid low bits in cur
	nReadTot int     // total bits read so far
}

// NewReader returns a new Reader pulling bytes from r.
func NewReader(r io.Reader) *Reader {
	byter, ok := r.(bytePeeker)
	if !ok {
		byter = bufio.NewReader(r)
	}
	return &Reader{r: byter}
}

// Read reads n bits, 0 <= n <= 56, and returns them as the low bits of a
// uint64, least-significant-bit-first within each consumed byte.
func (r *Reader) Read(n int) (uint64, error) {
	if n < 0 || n > 56 {
		return 0, errors.Errorf("bitstream: invalid read width %d", n)
	}
	for r.nValid < n {
		b, err := r.r.ReadByte()
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, errors.Wrap(err, "bitstream: read byte")
		}
		r.cur |= uint64(b) << uint(r.nValid)
		r.nValid += 8
	}
	mask := uint64(1)<<uint(n) - 1
	if n == 0 {
		mask = 0
	}
	v := r.cur & mask
	r.cur >>= uint(n)
	r.nValid -= n
	r.nReadTot += n
	return v, nil
}

// JumpToByteBoundary discards up to 7 bits, which must be zero.
func (r *Reader) JumpToByteBoundary() error {
	rem := r.nValid % 8
	if rem == 0 {
		return nil
	}
	v, err := r.Read(rem)
	if err != nil {
		return err
	}
	if v != 0 {
		return errors.Errorf("bitstream: non-zero padding bits at byte boundary: %#x", v)
	}
	return nil
}

// TotalBitsRead returns the cumulative number of bits consumed via Read.
func (r *Reader) TotalBitsRead() int {
	return r.nReadTot
}

// Underlying returns the byte reader Read pulls from, for callers that
// need to consume the remaining raw bytes once bit-level parsing is
// done (e.g. a jbrd box's trailing compressed payload). Only valid
// immediately after a successful JumpToByteBoundary.
func (r *Reader) Underlying() io.Reader {
	return r.r.(io.Reader)
}

// U32 decodes one of four (offset, nbits) distributions selected by a
// leading 2-bit selector, the variable-width integer coding JPEG XL uses
// pervasively in jbrd and header parsing. Each di is itself encoded as
// either a literal bit count ("Bits(n)"), a constant ("d"), or a
// pre-offset bit count ("BitsOffset(n, base)"); callers express that via
// the Dist helper type.
func (r *Reader) U32(d0, d1, d2, d3 Dist) (uint32, error) {
	sel, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	dists := [4]Dist{d0, d1, d2, d3}
	d := dists[sel]
	if d.Bits == 0 {
		return d.Base, nil
	}
	v, err := r.Read(d.Bits)
	if err != nil {
		return 0, err
	}
	return d.Base + uint32(v), nil
}

// Dist describes one arm of a U32 variable-length distribution: Base is
// added to an n-bit literal (or returned verbatim when Bits == 0).
type Dist struct {
	Bits int
	Base uint32
}

// D constructs a constant distribution: a U32 arm with no literal bits,
// always decoding to the given base value.
func D(base uint32) Dist { return Dist{Bits: 0, Base: base} }

// Bits constructs a plain n-bit distribution with no offset.
func Bits(n int) Dist { return Dist{Bits: n, Base: 0} }

// BitsOffset constructs an n-bit distribution with base added to the
// literal value, the reference decoder's "BitsOffset(n, base)" notation.
func BitsOffset(n int, base uint32) Dist { return Dist{Bits: n, Base: base} }
