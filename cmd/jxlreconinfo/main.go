/*
DESCRIPTION
  jxlreconinfo is a command line tool for inspecting a JPEG XL jbrd
  reconstruction box and for synthesising a standalone ICC v4.4 profile
  for a named colour encoding preset.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package jxlreconinfo is a small CLI around codec/jxl/jpegrecon and
// codec/jxl/icc, for inspecting jbrd boxes and synthesising ICC
// profiles without building a full decoder pipeline.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/jxlvardct/codec/jxl/colorenc"
	"github.com/ausocean/jxlvardct/codec/jxl/icc"
	"github.com/ausocean/jxlvardct/codec/jxl/jpegrecon"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, following the cmd/rv convention.
const (
	logPath      = "/var/log/jxlreconinfo/jxlreconinfo.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

var log logging.Logger

func main() {
	jbrdPath := flag.String("jbrd", "", "Path to a raw jbrd box payload to inspect.")
	iccPreset := flag.String("icc-preset", "", "Colour encoding preset to synthesise an ICC profile for: srgb, display-p3, gray-srgb, rec2100-pq, rec2100-hlg.")
	iccOut := flag.String("icc-out", "", "Path to write the synthesised ICC profile to (requires -icc-preset).")
	logLevel := flag.Int("LogLevel", int(logging.Info), "Specifies log level")
	flag.Parse()

	if *logLevel < int(logging.Debug) || *logLevel > int(logging.Fatal) {
		*logLevel = int(logging.Info)
	}
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log = logging.New(int8(*logLevel), io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if *jbrdPath == "" && *iccPreset == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *jbrdPath != "" {
		if err := inspectJbrd(*jbrdPath); err != nil {
			log.Fatal("failed to inspect jbrd box", "path", *jbrdPath, "error", err)
		}
	}

	if *iccPreset != "" {
		if err := synthesisePreset(*iccPreset, *iccOut); err != nil {
			log.Fatal("failed to synthesise ICC profile", "preset", *iccPreset, "error", err)
		}
	}
}

// passthroughDecompress stands in for the Brotli decompressor a real
// jbrd box's metadata payload needs; this tool only reports the parsed
// structure, so it never looks at the decompressed bytes' content.
func passthroughDecompress(compressed []byte, decompressedLen int) ([]byte, error) {
	out := make([]byte, decompressedLen)
	copy(out, compressed)
	return out, nil
}

func inspectJbrd(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	data, err := jpegrecon.Parse(raw, passthroughDecompress)
	if err != nil {
		return err
	}
	fmt.Printf("jbrd box: %d bytes\n", len(raw))
	fmt.Printf("  gray: %v\n", data.IsGray)
	fmt.Printf("  components: %d\n", len(data.FrameComponents))
	fmt.Printf("  quant tables: %d\n", len(data.QuantInfo))
	fmt.Printf("  huffman slots: %d\n", len(data.HuffmanSlots))
	fmt.Printf("  scans: %d\n", len(data.Scans))
	fmt.Printf("  restart interval: %d\n", data.RestartInterval)
	fmt.Printf("  app markers: %d, com markers: %d\n", len(data.Apps), len(data.Coms))
	log.Info("parsed jbrd box", "path", path, "components", len(data.FrameComponents), "scans", len(data.Scans))
	return nil
}

func synthesisePreset(name, outPath string) error {
	ce, err := presetColourEncoding(name)
	if err != nil {
		return err
	}
	profile, err := icc.Synthesize(ce)
	if err != nil {
		return err
	}
	if outPath == "" {
		fmt.Printf("synthesised a %d byte ICC profile for preset %q (use -icc-out to write it)\n", len(profile), name)
		return nil
	}
	log.Info("writing ICC profile", "preset", name, "bytes", len(profile), "path", outPath)
	return os.WriteFile(outPath, profile, 0644)
}

func presetColourEncoding(name string) (colorenc.ColourEncoding, error) {
	switch name {
	case "srgb":
		return colorenc.ColourEncoding{
			ColourSpace:      colorenc.ColourSpaceRGB,
			WhitePoint:       colorenc.WhitePointD65,
			Primaries:        colorenc.PrimariesSRGB,
			TransferFunction: colorenc.TFSRGB,
			RenderingIntent:  colorenc.RenderingIntentRelative,
		}, nil
	case "display-p3":
		return colorenc.ColourEncoding{
			ColourSpace:      colorenc.ColourSpaceRGB,
			WhitePoint:       colorenc.WhitePointD65,
			Primaries:        colorenc.PrimariesP3,
			TransferFunction: colorenc.TFSRGB,
			RenderingIntent:  colorenc.RenderingIntentRelative,
		}, nil
	case "gray-srgb":
		return colorenc.ColourEncoding{
			ColourSpace:      colorenc.ColourSpaceGray,
			WhitePoint:       colorenc.WhitePointD65,
			TransferFunction: colorenc.TFSRGB,
			RenderingIntent:  colorenc.RenderingIntentRelative,
		}, nil
	case "rec2100-pq":
		return colorenc.ColourEncoding{
			ColourSpace:      colorenc.ColourSpaceRGB,
			WhitePoint:       colorenc.WhitePointD65,
			Primaries:        colorenc.Primaries2100,
			TransferFunction: colorenc.TFPQ,
			RenderingIntent:  colorenc.RenderingIntentRelative,
		}, nil
	case "rec2100-hlg":
		return colorenc.ColourEncoding{
			ColourSpace:      colorenc.ColourSpaceRGB,
			WhitePoint:       colorenc.WhitePointD65,
			Primaries:        colorenc.Primaries2100,
			TransferFunction: colorenc.TFHLG,
			RenderingIntent:  colorenc.RenderingIntentRelative,
		}, nil
	default:
		return colorenc.ColourEncoding{}, fmt.Errorf("unknown preset %q", name)
	}
}
