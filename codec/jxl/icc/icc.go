/*
DESCRIPTION
  icc.go synthesises a complete ICC v4.4 profile (ICC.1:2022-05) from a
  decoded ColourEncoding: the 128-byte header, the ordered tag set, the
  tag table, and the MD5 profile ID.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package icc synthesises ICC v4.4 colour profiles from a decoded
// ColourEncoding descriptor, deterministically and without any external
// ICC library: every byte of the output is produced by this package.
package icc

import (
	"crypto/md5"

	"github.com/ausocean/jxlvardct/codec/jxl/colorenc"
	"github.com/ausocean/jxlvardct/codec/jxl/jxlerr"
)

const headerSize = 128

// d50U32 is the fixed D50 PCS illuminant encoded as ICC u16Fixed16-style
// big-endian XYZ words, as ICC.1:2022-05 section 7.2.16 requires for the
// profile connection space.
var d50U32 = [3]uint32{0x0000F6D6, 0x00010000, 0x0000D32D}

type taggedBlob struct {
	sig  string
	blob []byte
}

// Synthesize builds a complete ICC v4.4 profile for ce.
func Synthesize(ce colorenc.ColourEncoding) ([]byte, error) {
	desc, err := Describe(ce)
	if err != nil {
		return nil, err
	}

	var tags []taggedBlob

	descTag, err := mlucTag(desc)
	if err != nil {
		return nil, err
	}
	tags = append(tags, taggedBlob{"desc", descTag})

	cprtTag, err := mlucTag("CC0")
	if err != nil {
		return nil, err
	}
	tags = append(tags, taggedBlob{"cprt", cprtTag})

	wx, wy := nativeWhitePoint(ce)

	var wtpt []byte
	if ce.ColourSpace == colorenc.ColourSpaceGray {
		x, y, z := (colorenc.Chromaticity{X: wx, Y: wy}).ToXYZ()
		wtpt, err = xyzTag(x, y, z)
	} else {
		wtpt, err = xyzTag(0.964203, 1.0, 0.824905)
	}
	if err != nil {
		return nil, err
	}
	tags = append(tags, taggedBlob{"wtpt", wtpt})

	if ce.ColourSpace != colorenc.ColourSpaceGray {
		m, err := AdaptToXYZD50(wx, wy)
		if err != nil {
			return nil, err
		}
		blob, err := chadTag(m)
		if err != nil {
			return nil, err
		}
		tags = append(tags, taggedBlob{"chad", blob})
	}

	if code, ok := cicpCode(ce); ok {
		tags = append(tags, taggedBlob{"cicp", cicpTag(code.primaries, code.transfer, 0, 1)})
	}

	if ce.ColourSpace == colorenc.ColourSpaceRGB {
		rx, ry, gx, gy, bx, by := primariesXY(ce)
		m, err := PrimariesToXYZD50(rx, ry, gx, gy, bx, by, wx, wy)
		if err != nil {
			return nil, err
		}
		for i, sig := range []string{"rXYZ", "gXYZ", "bXYZ"} {
			blob, err := xyzTag(m.At(0, i), m.At(1, i), m.At(2, i))
			if err != nil {
				return nil, err
			}
			tags = append(tags, taggedBlob{sig, blob})
		}
	}

	trc, err := trcTag(ce)
	if err != nil {
		return nil, err
	}
	if ce.ColourSpace == colorenc.ColourSpaceGray {
		tags = append(tags, taggedBlob{"kTRC", trc})
	} else {
		tags = append(tags, taggedBlob{"rTRC", trc}, taggedBlob{"gTRC", trc}, taggedBlob{"bTRC", trc})
	}

	return assemble(ce, tags)
}

func nativeWhitePoint(ce colorenc.ColourEncoding) (wx, wy float64) {
	if ce.WhitePoint == colorenc.WhitePointCustom {
		return ce.WhitePointXY.X, ce.WhitePointXY.Y
	}
	c := colorenc.StandardWhitePointXY(ce.WhitePoint)
	return c.X, c.Y
}

func primariesXY(ce colorenc.ColourEncoding) (rx, ry, gx, gy, bx, by float64) {
	if ce.Primaries == colorenc.PrimariesCustom {
		return ce.Red.X, ce.Red.Y, ce.Green.X, ce.Green.Y, ce.Blue.X, ce.Blue.Y
	}
	r, g, b := colorenc.StandardPrimaries(ce.Primaries)
	return r.X, r.Y, g.X, g.Y, b.X, b.Y
}

type cicpCodes struct {
	primaries, transfer byte
}

// cicpCode maps a ColourEncoding to its CICP (ITU-T H.273) primaries and
// transfer-characteristics codes, for the combinations that have one.
func cicpCode(ce colorenc.ColourEncoding) (cicpCodes, bool) {
	if ce.ColourSpace != colorenc.ColourSpaceRGB || ce.WhitePoint == colorenc.WhitePointCustom {
		return cicpCodes{}, false
	}
	var p byte
	switch {
	case ce.WhitePoint == colorenc.WhitePointD65 && ce.Primaries == colorenc.PrimariesSRGB:
		p = 1
	case ce.WhitePoint == colorenc.WhitePointD65 && ce.Primaries == colorenc.Primaries2100:
		p = 9
	case ce.WhitePoint == colorenc.WhitePointD65 && ce.Primaries == colorenc.PrimariesP3:
		p = 12
	case ce.WhitePoint == colorenc.WhitePointDCI && ce.Primaries == colorenc.PrimariesP3:
		p = 11
	default:
		return cicpCodes{}, false
	}
	var t byte
	switch ce.TransferFunction {
	case colorenc.TFBT709:
		t = 1
	case colorenc.TFLinear:
		t = 8
	case colorenc.TFSRGB:
		t = 13
	case colorenc.TFPQ:
		t = 16
	case colorenc.TFDCI:
		t = 17
	case colorenc.TFHLG:
		t = 18
	default:
		return cicpCodes{}, false
	}
	return cicpCodes{p, t}, true
}

// trcTag builds the tone-response-curve tag for ce's transfer function.
func trcTag(ce colorenc.ColourEncoding) ([]byte, error) {
	switch ce.TransferFunction {
	case colorenc.TFGamma:
		return paraTag(0, []float64{1 / ce.Gamma})
	case colorenc.TFSRGB:
		return paraTag(3, []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045})
	case colorenc.TFBT709:
		return paraTag(3, []float64{1 / 0.45, 1 / 1.099, 0.099 / 1.099, 1 / 4.5, 0.081})
	case colorenc.TFLinear:
		return paraTag(3, []float64{1, 1, 0, 1, 0})
	case colorenc.TFDCI:
		return paraTag(3, []float64{2.6, 1, 0, 1, 0})
	case colorenc.TFPQ:
		return curvTag(pqEOTFTable(64)), nil
	case colorenc.TFHLG:
		return curvTag(hlgEOTFTable(64)), nil
	default:
		return nil, jxlerr.New(jxlerr.IccUnsupportedTransferFunction, "%v", ce.TransferFunction)
	}
}

// assemble lays out the header, tag table, and tag data, then writes the
// total size and MD5 profile ID (ICC.1:2022-05 section 7.2.18).
func assemble(ce colorenc.ColourEncoding, tags []taggedBlob) ([]byte, error) {
	// Deduplicate shared-blob tags (rTRC/gTRC/bTRC point at the same bytes)
	// so the tag table can record one offset+size triple per distinct blob.
	type entry struct {
		sig          string
		offset, size uint32
	}
	var blobArea []byte
	var entries []entry
	offsetOf := map[int]uint32{} // index into tags sharing an identical blob pointer
	for i, t := range tags {
		shared := -1
		for j := 0; j < i; j++ {
			if len(tags[j].blob) == len(t.blob) && &tags[j].blob[0] == &t.blob[0] {
				shared = j
				break
			}
		}
		if shared >= 0 {
			entries = append(entries, entry{t.sig, offsetOf[shared], uint32(len(t.blob))})
			continue
		}
		off := uint32(len(blobArea))
		blobArea = append(blobArea, t.blob...)
		for len(blobArea)%4 != 0 {
			blobArea = append(blobArea, 0)
		}
		offsetOf[i] = off
		entries = append(entries, entry{t.sig, off, uint32(len(t.blob))})
	}

	tableSize := 4 + 12*len(entries)
	total := headerSize + tableSize + len(blobArea)
	buf := make([]byte, total)

	writeHeader(buf, ce)

	putU32(buf[headerSize:headerSize+4], uint32(len(entries)))
	for i, e := range entries {
		base := headerSize + 4 + 12*i
		copy(buf[base:base+4], e.sig)
		putU32(buf[base+4:base+8], uint32(headerSize+tableSize)+e.offset)
		putU32(buf[base+8:base+12], e.size)
	}
	copy(buf[headerSize+tableSize:], blobArea)

	putU32(buf[0:4], uint32(total))

	idSrc := make([]byte, total)
	copy(idSrc, buf)
	for i := 44; i < 48; i++ {
		idSrc[i] = 0
	}
	for i := 64; i < 68; i++ {
		idSrc[i] = 0
	}
	for i := 84; i < 100; i++ {
		idSrc[i] = 0
	}
	sum := md5.Sum(idSrc)
	copy(buf[84:100], sum[:])

	return buf, nil
}

func writeHeader(buf []byte, ce colorenc.ColourEncoding) {
	copy(buf[4:8], "jxl ")
	putU32(buf[8:12], 0x04400000)
	if ce.ColourSpace == colorenc.ColourSpaceXYB {
		copy(buf[12:16], "scnr")
	} else {
		copy(buf[12:16], "mntr")
	}
	if ce.ColourSpace == colorenc.ColourSpaceGray {
		copy(buf[16:20], "GRAY")
	} else {
		copy(buf[16:20], "RGB ")
	}
	if ce.CanToneMap() {
		copy(buf[20:24], "Lab ")
	} else {
		copy(buf[20:24], "XYZ ")
	}
	// 2019-12-01 00:00:00, big-endian u16 fields: year, month, day, hour,
	// minute, second.
	putU16(buf[24:26], 2019)
	putU16(buf[26:28], 12)
	putU16(buf[28:30], 1)
	putU16(buf[30:32], 0)
	putU16(buf[32:34], 0)
	putU16(buf[34:36], 0)
	copy(buf[36:40], "acsp")
	copy(buf[40:44], "APPL")
	putU32(buf[64:68], uint32(ce.RenderingIntent))
	putU32(buf[68:72], d50U32[0])
	putU32(buf[72:76], d50U32[1])
	putU32(buf[76:80], d50U32[2])
	copy(buf[80:84], "jxl ")
}
