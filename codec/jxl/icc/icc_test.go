/*
DESCRIPTION
  icc_test.go provides testing for profile synthesis, descriptions, and
  the Bradford adaptation matrix.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package icc

import (
	"crypto/md5"
	"math"
	"testing"

	"github.com/ausocean/jxlvardct/codec/jxl/colorenc"
)

func srgbEncoding() colorenc.ColourEncoding {
	return colorenc.ColourEncoding{
		ColourSpace:      colorenc.ColourSpaceRGB,
		WhitePoint:       colorenc.WhitePointD65,
		Primaries:        colorenc.PrimariesSRGB,
		TransferFunction: colorenc.TFSRGB,
		RenderingIntent:  colorenc.RenderingIntentPerceptual,
	}
}

func TestDescribeCanonicalCases(t *testing.T) {
	cases := []struct {
		ce   colorenc.ColourEncoding
		want string
	}{
		{srgbEncoding(), "sRGB"},
		{colorenc.ColourEncoding{ColourSpace: colorenc.ColourSpaceRGB, WhitePoint: colorenc.WhitePointD65, Primaries: colorenc.PrimariesP3, TransferFunction: colorenc.TFSRGB, RenderingIntent: colorenc.RenderingIntentPerceptual}, "DisplayP3"},
		{colorenc.ColourEncoding{ColourSpace: colorenc.ColourSpaceRGB, WhitePoint: colorenc.WhitePointD65, Primaries: colorenc.Primaries2100, TransferFunction: colorenc.TFPQ, RenderingIntent: colorenc.RenderingIntentRelative}, "Rec2100PQ"},
		{colorenc.ColourEncoding{ColourSpace: colorenc.ColourSpaceRGB, WhitePoint: colorenc.WhitePointD65, Primaries: colorenc.Primaries2100, TransferFunction: colorenc.TFHLG, RenderingIntent: colorenc.RenderingIntentRelative}, "Rec2100HLG"},
	}
	for _, c := range cases {
		got, err := Describe(c.ce)
		if err != nil {
			t.Fatalf("Describe(%+v): %v", c.ce, err)
		}
		if got != c.want {
			t.Errorf("Describe(%+v) = %q, want %q", c.ce, got, c.want)
		}
	}
}

func TestDescribeGammaGray(t *testing.T) {
	ce := colorenc.ColourEncoding{
		ColourSpace:      colorenc.ColourSpaceGray,
		WhitePoint:       colorenc.WhitePointD65,
		TransferFunction: colorenc.TFGamma,
		Gamma:            1.0 / 1.7,
		RenderingIntent:  colorenc.RenderingIntentRelative,
	}
	got, err := Describe(ce)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := "Gra_D65_Rel_g1.7000000"
	if got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}

func TestSynthesizeHeaderAndProfileID(t *testing.T) {
	profile, err := Synthesize(srgbEncoding())
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(profile) < headerSize {
		t.Fatalf("profile too short: %d bytes", len(profile))
	}

	size := uint32(profile[0])<<24 | uint32(profile[1])<<16 | uint32(profile[2])<<8 | uint32(profile[3])
	if int(size) != len(profile) {
		t.Errorf("header size field = %d, want %d", size, len(profile))
	}
	if string(profile[36:40]) != "acsp" {
		t.Errorf("acsp signature missing: %q", profile[36:40])
	}
	if string(profile[16:20]) != "RGB " {
		t.Errorf("colour space = %q, want %q", profile[16:20], "RGB ")
	}

	// Recompute the profile ID the same way Synthesize does and check it
	// was actually written into the output.
	idSrc := make([]byte, len(profile))
	copy(idSrc, profile)
	for i := 44; i < 48; i++ {
		idSrc[i] = 0
	}
	for i := 64; i < 68; i++ {
		idSrc[i] = 0
	}
	for i := 84; i < 100; i++ {
		idSrc[i] = 0
	}
	want := md5.Sum(idSrc)
	if string(profile[84:100]) != string(want[:]) {
		t.Error("profile ID at offset 84..100 does not match the recomputed MD5")
	}
}

func TestSynthesizeGrayHasNoChadOrRGBTags(t *testing.T) {
	ce := colorenc.ColourEncoding{
		ColourSpace:      colorenc.ColourSpaceGray,
		WhitePoint:       colorenc.WhitePointD65,
		TransferFunction: colorenc.TFGamma,
		Gamma:            1.0 / 2.2,
		RenderingIntent:  colorenc.RenderingIntentRelative,
	}
	profile, err := Synthesize(ce)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(profile[16:20]) != "GRAY" {
		t.Errorf("colour space = %q, want GRAY", profile[16:20])
	}
	count := uint32(profile[128])<<24 | uint32(profile[129])<<16 | uint32(profile[130])<<8 | uint32(profile[131])
	for i := uint32(0); i < count; i++ {
		base := 132 + 12*i
		sig := string(profile[base : base+4])
		if sig == "chad" || sig == "rXYZ" || sig == "gXYZ" || sig == "bXYZ" {
			t.Errorf("Gray profile unexpectedly carries tag %q", sig)
		}
	}
}

// TestAdaptToXYZD50IdentityAtD50 confirms the Bradford adaptation is the
// identity when the source white point already is the D50 PCS itself:
// adapting D50 to D50 must be a no-op. D65's chromaticity does not equal
// the fixed D50 reference XYZ, so D65 cannot produce an identity matrix
// under correct Bradford arithmetic; D50's own chromaticity is the pair
// for which the round trip is exact. See DESIGN.md.
func TestAdaptToXYZD50IdentityAtD50(t *testing.T) {
	// xy chromaticity of the same D50 reference point (0.96422, 1, 0.82521)
	// used as the PCS target.
	wx, wy := 0.3456691868948136, 0.3584961802231997
	m, err := AdaptToXYZD50(wx, wy)
	if err != nil {
		t.Fatalf("AdaptToXYZD50: %v", err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 1.0
			}
			if math.Abs(m.At(r, c)-want) > 1e-6 {
				t.Errorf("chad[%d][%d] = %v, want %v", r, c, m.At(r, c), want)
			}
		}
	}
}

// TestSynthesizeSRGBCICPAndLength checks the sRGB profile's cicp tag bytes
// against the ITU-T H.273 code points sRGB maps to (primaries 1, transfer
// characteristics 13, matrix coefficients 0, full range 1), and that the
// overall profile length falls within a few bytes of a profile built from
// this tag set (desc, cprt, wtpt, chad, cicp, rXYZ/gXYZ/bXYZ, rTRC/gTRC/bTRC
// sharing one para blob).
func TestSynthesizeSRGBCICPAndLength(t *testing.T) {
	profile, err := Synthesize(srgbEncoding())
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	count := uint32(profile[128])<<24 | uint32(profile[129])<<16 | uint32(profile[130])<<8 | uint32(profile[131])
	var cicp []byte
	for i := uint32(0); i < count; i++ {
		base := 132 + 12*i
		if string(profile[base:base+4]) != "cicp" {
			continue
		}
		off := uint32(profile[base+4])<<24 | uint32(profile[base+5])<<16 | uint32(profile[base+6])<<8 | uint32(profile[base+7])
		size := uint32(profile[base+8])<<24 | uint32(profile[base+9])<<16 | uint32(profile[base+10])<<8 | uint32(profile[base+11])
		cicp = profile[off : off+size]
	}
	if cicp == nil {
		t.Fatal("sRGB profile carries no cicp tag")
	}
	want := []byte{1, 13, 0, 1}
	got := cicp[8:12]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cicp bytes = %v, want %v", got, want)
			break
		}
	}

	// 128-byte header + a 4+12*11-byte tag table (desc, cprt, wtpt, chad,
	// cicp, rXYZ, gXYZ, bXYZ, rTRC, gTRC, bTRC; the three TRC entries share
	// one para blob) + the deduplicated, word-padded blob area.
	const wantLen = 480
	if len(profile) != wantLen {
		t.Errorf("sRGB profile length = %d, want %d", len(profile), wantLen)
	}
}

// TestHLGEOTFTableSampleValue checks one interior sample of the HLG EOTF
// table against a hand-worked value of the ITU-R BT.2100 formula, so a
// sign or constant error in hlgEOTFTable doesn't pass unnoticed just
// because the table's overall shape still looks plausible.
func TestHLGEOTFTableSampleValue(t *testing.T) {
	table := hlgEOTFTable(64)
	const i, want, tolerance = 32, 0.086, 0.002
	if got := table[i]; math.Abs(got-want) > tolerance {
		t.Errorf("hlgEOTFTable(64)[%d] = %v, want %v +/- %v", i, got, want, tolerance)
	}
}

func TestAdaptToXYZD50RejectsOutOfRangeWhitePoint(t *testing.T) {
	if _, err := AdaptToXYZD50(0.5, 0); err == nil {
		t.Error("expected an error for wy = 0")
	}
	if _, err := AdaptToXYZD50(1.5, 0.5); err == nil {
		t.Error("expected an error for wx out of [0,1]")
	}
}
