/*
DESCRIPTION
  parse.go implements the jbrd box parse contract: reading the bit-packed
  reconstruction metadata and, as the final step, handing the remaining
  bytes to a general-purpose lossless
  decompressor to recover the APP/COM/inter-marker/tail/padding payload
  slices. That decompressor (the jbrd box's Brotli-equivalent stream) is
  an external collaborator, the same role the modular sub-bitstream
  decoder plays for Raw quantisation tables (not wired in; see
  DecodeQuantEncoding in codec/jxl/quant): this package accepts it as an
  injected Decompressor.

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
	"io"

	"github.com/ausocean/jxlvardct/codec/jxl/bitstream"
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

const maxMarkers = 16384

// Decompressor recovers the concatenated payload bytes the jbrd box
// compresses as a single stream. Production callers wire this to the
// codestream's general-purpose entropy decoder; tests can supply an
// identity or stub implementation.
type Decompressor func(compressed []byte, decompressedLen int) ([]byte, error)

const (
	markerEOI  = 0xD9
	markerAppLo = 0xE0
	markerAppHi = 0xEF
	markerCOM  = 0xFE
	markerFF   = 0xFF
	markerDRI  = 0xDD
	markerSOSBase = 0xDA
)

// Parse decodes jbrdBytes into a JpegReconstructionData by walking the
// jbrd box's field sequence in order.
func Parse(jbrdBytes []byte, decompress Decompressor) (*JpegReconstructionData, error) {
	r := bitstream.NewReader(bytes.NewReader(jbrdBytes))
	d := &JpegReconstructionData{}

	// Step 1.
	isGray, err := r.Read(1)
	if err != nil {
		return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "is_gray")
	}
	d.IsGray = isGray != 0

	// Step 2: marker list, terminated by EOI.
	var numApp, numCom, numFakeFF, numDRI, numScan int
	for {
		if len(d.MarkerOrder) >= maxMarkers {
			return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "marker list exceeds %d entries", maxMarkers)
		}
		m6, err := r.Read(6)
		if err != nil {
			return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "marker code")
		}
		m := byte(m6) + 0xC0
		if m == markerEOI {
			break
		}
		d.MarkerOrder = append(d.MarkerOrder, m)

		// Step 3: classify for counting.
		switch {
		case m >= markerAppLo && m <= markerAppHi:
			numApp++
		case m == markerCOM:
			numCom++
		case m == markerFF:
			numFakeFF++
		case m == markerDRI:
			numDRI++
		case m == markerSOSBase:
			numScan++
		}
	}

	// Step 4: APP markers.
	for i := 0; i < numApp; i++ {
		tag, err := r.U32(bitstream.D(0), bitstream.D(1), bitstream.BitsOffset(1, 2), bitstream.BitsOffset(2, 4))
		if err != nil {
			return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "app tag")
		}
		lenMinus1, err := r.Read(16)
		if err != nil {
			return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "app len")
		}
		d.Apps = append(d.Apps, AppMarker{
			Type:    AppTagType(tag),
			Payload: make([]byte, lenMinus1+1),
		})
	}

	// Step 5: COM markers.
	for i := 0; i < numCom; i++ {
		lenMinus1, err := r.Read(16)
		if err != nil {
			return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "com len")
		}
		d.Coms = append(d.Coms, ComMarker{Payload: make([]byte, lenMinus1+1)})
	}

	// Step 6: quant tables (values come from the codestream, filled later
	// via UpdateQuantTablesFromRaw).
	numQuant, err := r.U32(bitstream.D(1), bitstream.D(2), bitstream.D(3), bitstream.D(4))
	if err != nil {
		return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "quant table count")
	}
	for i := uint32(0); i < numQuant; i++ {
		prec, err := r.Read(1)
		if err != nil {
			return nil, err
		}
		idx, err := r.Read(2)
		if err != nil {
			return nil, err
		}
		isLast, err := r.Read(1)
		if err != nil {
			return nil, err
		}
		d.QuantInfo = append(d.QuantInfo, QuantTableInfo{
			Precision: int(prec),
			Index:     int(idx),
			IsLast:    isLast != 0,
		})
	}

	// Step 7: component type and frame components.
	ctype, err := r.Read(2)
	if err != nil {
		return nil, err
	}
	d.ComponentType = ComponentType(ctype)
	var numComponents int
	switch d.ComponentType {
	case ComponentGray:
		numComponents = 1
		d.ComponentIDs = []byte{1}
	case ComponentYCbCr:
		numComponents = 3
		d.ComponentIDs = []byte{1, 2, 3}
	case ComponentRGB:
		numComponents = 3
		d.ComponentIDs = []byte{'R', 'G', 'B'}
	case ComponentCustom:
		cnt, err := r.U32(bitstream.D(0), bitstream.Bits(4), bitstream.BitsOffset(8, 16), bitstream.Bits(16))
		if err != nil {
			return nil, err
		}
		if cnt != 1 && cnt != 3 {
			return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "custom component count %d must be 1 or 3", cnt)
		}
		numComponents = int(cnt)
		for i := 0; i < numComponents; i++ {
			id, err := r.Read(8)
			if err != nil {
				return nil, err
			}
			d.ComponentIDs = append(d.ComponentIDs, byte(id))
		}
	default:
		return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "invalid component type %d", ctype)
	}
	for i := 0; i < numComponents; i++ {
		qidx, err := r.Read(2)
		if err != nil {
			return nil, err
		}
		d.FrameComponents = append(d.FrameComponents, FrameComponent{
			ID:         d.ComponentIDs[i],
			QuantIndex: int(qidx),
			HSampling:  1,
			VSampling:  1,
		})
	}

	// Step 8: Huffman tables.
	numHuff, err := r.U32(bitstream.D(4), bitstream.BitsOffset(3, 2), bitstream.BitsOffset(4, 10), bitstream.BitsOffset(6, 26))
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numHuff; i++ {
		isAC, err := r.Read(1)
		if err != nil {
			return nil, err
		}
		slotID, err := r.Read(2)
		if err != nil {
			return nil, err
		}
		isLast, err := r.Read(1)
		if err != nil {
			return nil, err
		}
		slot := HuffmanSlot{IsAC: isAC != 0, SlotID: int(slotID), IsLast: isLast != 0}
		numSymbols := 0
		for c := 0; c < 17; c++ {
			cnt, err := r.U32(bitstream.D(0), bitstream.D(1), bitstream.BitsOffset(3, 2), bitstream.Bits(8))
			if err != nil {
				return nil, err
			}
			if c == 0 {
				if cnt != 0 {
					return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "huffman count[0] must be 0, got %d", cnt)
				}
				continue
			}
			slot.Counts[c-1] = int(cnt)
			numSymbols += int(cnt)
		}
		for s := 0; s < numSymbols; s++ {
			v, err := r.U32(bitstream.Bits(2), bitstream.BitsOffset(2, 4), bitstream.BitsOffset(4, 8), bitstream.BitsOffset(8, 1))
			if err != nil {
				return nil, err
			}
			if v > 256 {
				return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "huffman symbol %d exceeds 256", v)
			}
			slot.Values = append(slot.Values, int(v))
		}
		d.HuffmanSlots = append(d.HuffmanSlots, slot)
	}

	// Step 9: scans.
	for i := 0; i < numScan; i++ {
		numScanComp, err := r.U32(bitstream.D(1), bitstream.D(2), bitstream.D(3), bitstream.D(4))
		if err != nil {
			return nil, err
		}
		ss, err := r.Read(6)
		if err != nil {
			return nil, err
		}
		se, err := r.Read(6)
		if err != nil {
			return nil, err
		}
		al, err := r.Read(4)
		if err != nil {
			return nil, err
		}
		ah, err := r.Read(4)
		if err != nil {
			return nil, err
		}
		scan := Scan{Ss: int(ss), Se: int(se), Al: int(al), Ah: int(ah)}
		for c := uint32(0); c < numScanComp; c++ {
			compIdx, err := r.Read(2)
			if err != nil {
				return nil, err
			}
			acIdx, err := r.Read(2)
			if err != nil {
				return nil, err
			}
			dcIdx, err := r.Read(2)
			if err != nil {
				return nil, err
			}
			scan.Components = append(scan.Components, ScanComponent{
				ComponentIndex: int(compIdx),
				ACTableIndex:   int(acIdx),
				DCTableIndex:   int(dcIdx),
			})
		}
		lastPass, err := r.U32(bitstream.D(0), bitstream.D(1), bitstream.D(2), bitstream.BitsOffset(3, 3))
		if err != nil {
			return nil, err
		}
		scan.LastNeededPass = int(lastPass)
		d.Scans = append(d.Scans, scan)
	}

	// Step 10: restart points per scan.
	for i := range d.Scans {
		cnt, err := r.U32(bitstream.D(0), bitstream.BitsOffset(2, 1), bitstream.BitsOffset(4, 4), bitstream.BitsOffset(16, 20))
		if err != nil {
			return nil, err
		}
		prev := uint32(0)
		for j := uint32(0); j < cnt; j++ {
			delta, err := r.U32(bitstream.D(0), bitstream.BitsOffset(3, 1), bitstream.BitsOffset(5, 9), bitstream.BitsOffset(28, 41))
			if err != nil {
				return nil, err
			}
			prev += delta
			d.Scans[i].Restarts = append(d.Scans[i].Restarts, RestartMarker{Delta: int(prev)})
		}
	}

	// Step 11: extra zero runs per scan.
	for i := range d.Scans {
		cnt, err := r.U32(bitstream.D(0), bitstream.BitsOffset(2, 1), bitstream.BitsOffset(4, 4), bitstream.BitsOffset(16, 20))
		if err != nil {
			return nil, err
		}
		for j := uint32(0); j < cnt; j++ {
			numZeros, err := r.U32(bitstream.D(1), bitstream.BitsOffset(2, 2), bitstream.BitsOffset(4, 5), bitstream.BitsOffset(8, 20))
			if err != nil {
				return nil, err
			}
			blockDelta, err := r.Read(32)
			if err != nil {
				return nil, err
			}
			d.Scans[i].ExtraZeroRuns = append(d.Scans[i].ExtraZeroRuns, ExtraZeroRun{
				NumZeros:   int(numZeros),
				BlockDelta: int(blockDelta),
			})
		}
	}

	// Step 12: restart interval.
	hasDRI := numDRI > 0
	if hasDRI {
		v, err := r.Read(16)
		if err != nil {
			return nil, err
		}
		d.RestartInterval = int(v)
	}

	// Step 13: fake-0xFF marker sizes.
	for i := 0; i < numFakeFF; i++ {
		v, err := r.Read(16)
		if err != nil {
			return nil, err
		}
		d.FakeFFMarkerSizes = append(d.FakeFFMarkerSizes, int(v))
	}

	// Step 14: tail data length.
	tailLen, err := r.U32(bitstream.D(0), bitstream.BitsOffset(8, 1), bitstream.BitsOffset(16, 257), bitstream.BitsOffset(22, 65793))
	if err != nil {
		return nil, err
	}
	d.TailDataLen = int(tailLen)

	// Step 15: padding.
	hasPadding, err := r.Read(1)
	if err != nil {
		return nil, err
	}
	d.HasPadding = hasPadding != 0
	if d.HasPadding {
		v, err := r.Read(24)
		if err != nil {
			return nil, err
		}
		d.PaddingBitsLen = int(v)
	}

	// Step 16: byte-align, then decompress the remainder.
	if err := r.JumpToByteBoundary(); err != nil {
		return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "byte alignment")
	}
	rest, err := io.ReadAll(r.Underlying())
	if err != nil {
		return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "reading trailing compressed bytes")
	}

	unknownAppLen := 0
	for _, a := range d.Apps {
		if a.Type == AppUnknown {
			unknownAppLen += len(a.Payload)
		}
	}
	comLen := 0
	for _, c := range d.Coms {
		comLen += len(c.Payload)
	}
	interLen := 0
	for _, sz := range d.FakeFFMarkerSizes {
		interLen += sz
	}
	total := unknownAppLen + comLen + interLen + d.TailDataLen + d.PaddingBitsLen

	payload, err := decompress(rest, total)
	if err != nil {
		return nil, jxlerr.Wrap(jxlerr.InvalidJpegReconstructionData, err, "decompressing jbrd payload")
	}
	if len(payload) != total {
		return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "decompressed length %d != expected %d", len(payload), total)
	}

	pos := 0
	for i := range d.Apps {
		if d.Apps[i].Type == AppUnknown {
			n := len(d.Apps[i].Payload)
			copy(d.Apps[i].Payload, payload[pos:pos+n])
			pos += n
		}
	}
	for i := range d.Coms {
		n := len(d.Coms[i].Payload)
		copy(d.Coms[i].Payload, payload[pos:pos+n])
		pos += n
	}
	for _, sz := range d.FakeFFMarkerSizes {
		d.InterMarkerChunks = append(d.InterMarkerChunks, payload[pos:pos+sz])
		pos += sz
	}
	d.TailData = payload[pos : pos+d.TailDataLen]
	pos += d.TailDataLen
	d.PaddingBits = payload[pos : pos+d.PaddingBitsLen]
	pos += d.PaddingBitsLen

	return d, nil
}
