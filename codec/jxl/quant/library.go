/*
DESCRIPTION
  library.go holds the 17 built-in QuantEncoding defaults used whenever a
  frame's quant table header selects "all default" or leaves an individual
  slot at Library, ported at full precision from the reference decoder's
  DequantMatrices::dct/.../dct128x256 and ::afv0.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package quant

import (
	"sync"

	"github.com/ausocean/jxlvardct/codec/jxl/dct"
)

func libDct() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{3150.0, 0.0, -0.4, -0.4, -0.4, -2.0},
		{560.0, 0.0, -0.3, -0.3, -0.3, -0.3},
		{512.0, -2.0, -1.0, 0.0, -1.0, -2.0},
	})}
}

func libIdentity() QuantEncoding {
	return QuantEncoding{Mode: ModeIdentity, IdentityWeights: [3][3]float32{
		{280.0, 3160.0, 3160.0},
		{60.0, 864.0, 864.0},
		{18.0, 200.0, 200.0},
	}}
}

func libDct2x2() QuantEncoding {
	return QuantEncoding{Mode: ModeDct2, Dct2Weights: [3][6]float32{
		{3840.0, 2560.0, 1280.0, 640.0, 480.0, 300.0},
		{960.0, 640.0, 320.0, 180.0, 140.0, 120.0},
		{640.0, 320.0, 128.0, 64.0, 32.0, 16.0},
	}}
}

func libDct4x4() QuantEncoding {
	return QuantEncoding{
		Mode: ModeDct4,
		Dct4Params: NewDctQuantWeightParams([3][]float32{
			{2200.0, 0.0, 0.0, 0.0},
			{392.0, 0.0, 0.0, 0.0},
			{112.0, -0.25, -0.25, -0.5},
		}),
		Dct4XybMul: [3][2]float32{{1, 1}, {1, 1}, {1, 1}},
	}
}

func libDct16x16() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{8996.8725711814115328, -1.3000777393353804, -0.49424529824571225, -0.439093774457103443, -0.6350101832695744, -0.90177264050827612, -1.6162099239887414},
		{3191.48366296844234752, -0.67424582104194355, -0.80745813428471001, -0.44925837484843441, -0.35865440981033403, -0.31322389111877305, -0.37615025315725483},
		{1157.50408145487200256, -2.0531423165804414, -1.4, -0.50687130033378396, -0.42708730624733904, -1.4856834539296244, -4.9209142884401604},
	})}
}

func libDct32x32() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{15718.40830982518931456, -1.025, -0.98, -0.9012, -0.4, -0.48819395464, -0.421064, -0.27},
		{7305.7636810695983104, -0.8041958212306401, -0.7633036457487539, -0.55660379990111464, -0.49785304658857626, -0.43699592683512467, -0.40180866526242109, -0.27321683125358037},
		{3803.53173721215041536, -3.060733579805728, -2.0413270132490346, -2.0235650159727417, -0.5495389509954993, -0.4, -0.4, -0.3},
	})}
}

func libDct8x16() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{7240.7734393502, -0.7, -0.7, -0.2, -0.2, -0.2, -0.5},
		{1448.15468787004, -0.5, -0.5, -0.5, -0.2, -0.2, -0.2},
		{506.854140754517, -1.4, -0.2, -0.5, -0.5, -1.5, -3.6},
	})}
}

func libDct8x32() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{16283.2494710648897, -1.7812845336559429, -1.6309059012653515, -1.0382179034313539, -0.85, -0.7, -0.9, -1.2360638576849587},
		{5089.15750884921511936, -0.320049391452786891, -0.35362849922161446, -0.30340000000000003, -0.61, -0.5, -0.5, -0.6},
		{3397.77603275308720128, -0.321327362693153371, -0.34507619223117997, -0.70340000000000003, -0.9, -1.0, -1.0, -1.1754605576265209},
	})}
}

func libDct16x32() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{13844.97076442300573, -0.97113799999999995, -0.658, -0.42026, -0.22712, -0.2206, -0.226, -0.6},
		{4798.964084220744293, -0.61125308982767057, -0.83770786552491361, -0.79014862079498627, -0.2692727459704829, -0.38272769465388551, -0.22924222653091453, -0.20719098826199578},
		{1807.236946760964614, -1.2, -1.2, -0.7, -0.7, -0.7, -0.4, -0.5},
	})}
}

func libDct4x8() QuantEncoding {
	return QuantEncoding{
		Mode: ModeDct4x8,
		Dct4x8Params: NewDctQuantWeightParams([3][]float32{
			{2198.050556016380522, -0.96269623020744692, -0.76194253026666783, -0.6551140670773547},
			{764.3655248643528689, -0.92630200888366945, -0.9675229603596517, -0.27845290869168118},
			{527.107573587542228, -1.4594385811273854, -1.450082094097871593, -1.5843722511996204},
		}),
		Dct4x8XybMul: [3]float32{1, 1, 1},
	}
}

// libAfv0 is the single AFV library default; the format reuses the Dct4x8
// and Dct4x4 band parameters verbatim.
func libAfv0() QuantEncoding {
	dct4x8 := libDct4x8()
	dct4x4 := libDct4x4()
	return QuantEncoding{
		Mode:         ModeAfv,
		AfvParams4x8: dct4x8.Dct4x8Params,
		AfvParams4x4: dct4x4.Dct4Params,
		AfvWeights: [3][9]float32{
			{3072.0, 3072.0, 256.0, 256.0, 256.0, 414.0, 0.0, 0.0, 0.0},
			{1024.0, 1024.0, 50.0, 50.0, 50.0, 58.0, 0.0, 0.0, 0.0},
			{384.0, 384.0, 12.0, 12.0, 12.0, 22.0, -0.25, -0.25, -0.25},
		},
	}
}

func libDct64x64() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{0.9 * 26629.073922049845, -1.025, -0.78, -0.65012, -0.19041574084286472, -0.20819395464, -0.421064, -0.32733845535848671},
		{0.9 * 9311.3238710010046, -0.3041958212306401, -0.3633036457487539, -0.35660379990111464, -0.3443074455424403, -0.33699592683512467, -0.30180866526242109, -0.27321683125358037},
		{0.9 * 4992.2486445538634, -1.2, -1.2, -0.8, -0.7, -0.7, -0.4, -0.5},
	})}
}

func libDct32x64() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{0.65 * 23629.073922049845, -1.025, -0.78, -0.65012, -0.19041574084286472, -0.20819395464, -0.421064, -0.32733845535848671},
		{0.65 * 8611.3238710010046, -0.3041958212306401, -0.3633036457487539, -0.35660379990111464, -0.3443074455424403, -0.33699592683512467, -0.30180866526242109, -0.27321683125358037},
		{0.65 * 4492.2486445538634, -1.2, -1.2, -0.8, -0.7, -0.7, -0.4, -0.5},
	})}
}

func libDct128x128() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{1.8 * 26629.073922049845, -1.025, -0.78, -0.65012, -0.19041574084286472, -0.20819395464, -0.421064, -0.32733845535848671},
		{1.8 * 9311.3238710010046, -0.3041958212306401, -0.3633036457487539, -0.35660379990111464, -0.3443074455424403, -0.33699592683512467, -0.30180866526242109, -0.27321683125358037},
		{1.8 * 4992.2486445538634, -1.2, -1.2, -0.8, -0.7, -0.7, -0.4, -0.5},
	})}
}

func libDct64x128() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{1.3 * 23629.073922049845, -1.025, -0.78, -0.65012, -0.19041574084286472, -0.20819395464, -0.421064, -0.32733845535848671},
		{1.3 * 8611.3238710010046, -0.3041958212306401, -0.3633036457487539, -0.35660379990111464, -0.3443074455424403, -0.33699592683512467, -0.30180866526242109, -0.27321683125358037},
		{1.3 * 4492.2486445538634, -1.2, -1.2, -0.8, -0.7, -0.7, -0.4, -0.5},
	})}
}

func libDct256x256() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{3.6 * 26629.073922049845, -1.025, -0.78, -0.65012, -0.19041574084286472, -0.20819395464, -0.421064, -0.32733845535848671},
		{3.6 * 9311.3238710010046, -0.3041958212306401, -0.3633036457487539, -0.35660379990111464, -0.3443074455424403, -0.33699592683512467, -0.30180866526242109, -0.27321683125358037},
		{3.6 * 4992.2486445538634, -1.2, -1.2, -0.8, -0.7, -0.7, -0.4, -0.5},
	})}
}

func libDct128x256() QuantEncoding {
	return QuantEncoding{Mode: ModeDct, DctParams: NewDctQuantWeightParams([3][]float32{
		{2.6 * 23629.073922049845, -1.025, -0.78, -0.65012, -0.19041574084286472, -0.20819395464, -0.421064, -0.32733845535848671},
		{2.6 * 8611.3238710010046, -0.3041958212306401, -0.3633036457487539, -0.35660379990111464, -0.3443074455424403, -0.33699592683512467, -0.30180866526242109, -0.27321683125358037},
		{2.6 * 4492.2486445538634, -1.2, -1.2, -0.8, -0.7, -0.7, -0.4, -0.5},
	})}
}

var (
	libraryOnce  sync.Once
	libraryTable [dct.NumQuantTables]QuantEncoding
)

// Library returns the 17 built-in QuantEncoding defaults, indexed by
// dct.QuantTable, computing and caching them on first use.
func Library() [dct.NumQuantTables]QuantEncoding {
	libraryOnce.Do(func() {
		libraryTable = [dct.NumQuantTables]QuantEncoding{
			libDct(), libIdentity(), libDct2x2(), libDct4x4(),
			libDct16x16(), libDct32x32(), libDct8x16(), libDct8x32(),
			libDct16x32(), libDct4x8(), libAfv0(), libDct64x64(),
			libDct32x64(), libDct128x128(), libDct64x128(), libDct256x256(),
			libDct128x256(),
		}
	})
	return libraryTable
}
