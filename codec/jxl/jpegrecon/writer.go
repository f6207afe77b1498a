/*
DESCRIPTION
  writer.go implements the jbrd write contract: replaying the marker
  order recorded by Parse, interleaving payload bytes,
  re-synthesising DQT/DHT/SOF/SOS segments, and entropy-coding the
  decoded coefficient stores back into a byte-exact JPEG file. Marker
  byte layout follows the big-endian writeHeader style of
  codec/jpeg/jpeg.go, generalised from a single fixed baseline frame to
  the full variable marker-order replay jbrd requires.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package jpegrecon

import (
	"encoding/binary"

	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

const (
	soi = 0xD8
	eoi = 0xD9
	dqt = 0xDB
	dht = 0xC4
	dri = 0xDD
	sos = 0xDA
)

func isSOF(m byte) bool {
	switch {
	case m >= 0xC0 && m <= 0xC3:
		return true
	case m >= 0xC5 && m <= 0xC7:
		return true
	case m >= 0xC9 && m <= 0xCB:
		return true
	case m >= 0xCD && m <= 0xCF:
		return true
	}
	return false
}

// WriteJpeg reassembles a byte-exact JPEG file from d and the decoded
// coefficient stores (one per frame component, in FrameComponents
// order).
func WriteJpeg(d *JpegReconstructionData, width, height int, stores []*CoefficientStore) ([]byte, error) {
	if len(stores) != len(d.FrameComponents) {
		return nil, jxlerr.New(jxlerr.InvalidJpegReconstructionData, "%d coefficient stores, want %d", len(stores), len(d.FrameComponents))
	}

	var out []byte
	put16 := func(v uint16) {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], v)
		out = append(out, b[:]...)
	}

	out = append(out, 0xFF, soi)

	appIdx, comIdx, quantIdx, huffEmitted, ffIdx, scanIdx := 0, 0, 0, false, 0, 0

	for _, m := range d.MarkerOrder {
		switch {
		case m >= markerAppLo && m <= markerAppHi:
			app := d.Apps[appIdx]
			appIdx++
			if len(app.Payload) >= 3 && allZero(app.Payload[3:]) {
				continue // placeholder Icc/Exif/Xmp never filled
			}
			out = append(out, 0xFF, m)
			out = append(out, app.Payload...)

		case m == markerCOM:
			com := d.Coms[comIdx]
			comIdx++
			out = append(out, 0xFF, markerCOM)
			put16(uint16(len(com.Payload) + 2))
			out = append(out, com.Payload...)

		case m == dqt:
			quantIdx += writeDQTGroup(&out, d.QuantInfo[quantIdx:])

		case m == dht:
			if !huffEmitted {
				writeDHTGroup(&out, d.HuffmanSlots)
				huffEmitted = true
			}

		case isSOF(m):
			if err := writeSOF(&out, m, width, height, d.FrameComponents); err != nil {
				return nil, err
			}

		case m == sos:
			scan := d.Scans[scanIdx]
			scanIdx++
			if err := writeScan(&out, scan, d.FrameComponents, d.HuffmanSlots, stores); err != nil {
				return nil, err
			}

		case m == dri:
			if d.RestartInterval > 0 {
				out = append(out, 0xFF, dri, 0x00, 0x04)
				put16(uint16(d.RestartInterval))
			}

		case m == markerFF:
			if ffIdx < len(d.InterMarkerChunks) {
				out = append(out, d.InterMarkerChunks[ffIdx]...)
			}
			ffIdx++

		default:
			out = append(out, 0xFF, m)
		}
	}

	out = append(out, 0xFF, eoi)
	out = append(out, d.TailData...)
	return out, nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// writeDQTGroup writes one DQT marker covering a run of tables up to and
// including the first is_last=true entry. It returns the number of
// QuantTableInfo entries consumed.
func writeDQTGroup(out *[]byte, tables []QuantTableInfo) int {
	n := 0
	for n < len(tables) && !tables[n].IsLast {
		n++
	}
	if n < len(tables) {
		n++ // include the is_last table
	}
	group := tables[:n]

	length := 2
	for _, t := range group {
		length += 1 + 64*(t.Precision+1)
	}
	*out = append(*out, 0xFF, dqt)
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(length))
	*out = append(*out, b[:]...)
	for _, t := range group {
		*out = append(*out, byte(t.Precision<<4)|byte(t.Index))
		for zigzag := 0; zigzag < 64; zigzag++ {
			v := t.Values[JPEGNaturalOrder[zigzag]]
			if t.Precision == 0 {
				*out = append(*out, byte(v))
			} else {
				var vb [2]byte
				binary.BigEndian.PutUint16(vb[:], v)
				*out = append(*out, vb[:]...)
			}
		}
	}
	return n
}

// writeDHTGroup writes all Huffman tables in one DHT marker. IsLast is
// not consulted, so the tables are not split into separate markers;
// WriteJpeg emits this marker at the first DHT entry of MarkerOrder and
// writes nothing for later DHT entries.
func writeDHTGroup(out *[]byte, slots []HuffmanSlot) {
	length := 2
	for _, s := range slots {
		length += 1 + 16 + len(s.Values)
	}
	*out = append(*out, 0xFF, dht)
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(length))
	*out = append(*out, b[:]...)
	for _, s := range slots {
		class := 0
		if s.IsAC {
			class = 1
		}
		*out = append(*out, byte(class<<4)|byte(s.SlotID))
		for _, c := range s.Counts {
			*out = append(*out, byte(c))
		}
		for _, v := range s.Values {
			if v == 256 {
				continue // EOB sentinel, not an emitted symbol
			}
			*out = append(*out, byte(v))
		}
	}
}

func writeSOF(out *[]byte, marker byte, width, height int, comps []FrameComponent) error {
	*out = append(*out, 0xFF, marker)
	length := 8 + 3*len(comps)
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(length))
	*out = append(*out, b[:]...)
	*out = append(*out, 8) // precision
	var hb, wb [2]byte
	binary.BigEndian.PutUint16(hb[:], uint16(height))
	binary.BigEndian.PutUint16(wb[:], uint16(width))
	*out = append(*out, hb[:]...)
	*out = append(*out, wb[:]...)
	*out = append(*out, byte(len(comps)))
	for _, c := range comps {
		*out = append(*out, c.ID, byte(c.HSampling<<4)|byte(c.VSampling), byte(c.QuantIndex))
	}
	return nil
}

func writeScan(out *[]byte, scan Scan, comps []FrameComponent, slots []HuffmanSlot, stores []*CoefficientStore) error {
	*out = append(*out, 0xFF, sos)
	length := 6 + 2*len(scan.Components)
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(length))
	*out = append(*out, b[:]...)
	*out = append(*out, byte(len(scan.Components)))
	for _, sc := range scan.Components {
		id := comps[sc.ComponentIndex].ID
		*out = append(*out, id, byte(sc.DCTableIndex<<4)|byte(sc.ACTableIndex))
	}
	*out = append(*out, byte(scan.Ss), byte(scan.Se), byte(scan.Ah<<4)|byte(scan.Al))

	dcTables := map[int]huffTable{}
	acTables := map[int]huffTable{}
	for _, s := range slots {
		t := buildHuffTable(s)
		if s.IsAC {
			acTables[s.SlotID] = t
		} else {
			dcTables[s.SlotID] = t
		}
	}

	w := &bitWriter{}
	prevDC := make([]int32, len(scan.Components))
	maxBlocksH, maxBlocksW := 0, 0
	for _, sc := range scan.Components {
		st := stores[sc.ComponentIndex]
		if st.blocksH > maxBlocksH {
			maxBlocksH = st.blocksH
		}
		if st.blocksW > maxBlocksW {
			maxBlocksW = st.blocksW
		}
	}
	for by := 0; by < maxBlocksH; by++ {
		for bx := 0; bx < maxBlocksW; bx++ {
			for ci, sc := range scan.Components {
				st := stores[sc.ComponentIndex]
				if bx >= st.blocksW || by >= st.blocksH {
					continue
				}
				dcT, ok := dcTables[sc.DCTableIndex]
				if !ok {
					return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "missing DC table %d", sc.DCTableIndex)
				}
				acT, ok := acTables[sc.ACTableIndex]
				if !ok {
					return jxlerr.New(jxlerr.InvalidJpegReconstructionData, "missing AC table %d", sc.ACTableIndex)
				}
				if err := encodeBlock(w, st.Block(bx, by), dcT, acT, &prevDC[ci]); err != nil {
					return err
				}
			}
		}
	}
	w.flush()
	*out = append(*out, w.buf...)
	return nil
}
