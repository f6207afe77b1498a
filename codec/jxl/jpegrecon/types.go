/*
DESCRIPTION
  types.go models the jbrd "JPEG reconstruction data" the JPEG
  reconstructor parses and later writes back out.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package jpegrecon reassembles a byte-exact original JPEG file from a
// VarDCT-decoded frame carrying a jbrd reconstruction box. It is
// grounded on the marker-handling idioms of codec/jpeg's RTP/JPEG
// depacketizer, generalised here from a fixed RFC 2435 payload header
// to the full jbrd parse/write contract.
package jpegrecon

// AppTagType distinguishes the four kinds of APPn payload the jbrd box
// may carry.
type AppTagType int

const (
	AppUnknown AppTagType = iota
	AppIcc
	AppExif
	AppXmp
)

// ComponentType names the fixed component layouts a JPEG frame can use;
// Custom frames carry an explicit component-ID list.
type ComponentType int

const (
	ComponentGray ComponentType = iota
	ComponentYCbCr
	ComponentRGB
	ComponentCustom
)

// AppMarker holds one parsed APPn segment: its tag classification and a
// payload buffer that decompression later fills (for AppUnknown) or that
// the codestream fills directly (for Icc/Exif/Xmp).
type AppMarker struct {
	Type    AppTagType
	Payload []byte
}

// ComMarker holds one parsed COM segment's payload buffer.
type ComMarker struct {
	Payload []byte
}

// QuantTableInfo describes one DQT table slot as declared in the
// codestream (values are filled in later by UpdateQuantTablesFromRaw,
// not by Parse).
type QuantTableInfo struct {
	Precision int // 0 = 8-bit, 1 = 16-bit
	Index     int
	IsLast    bool
	Values    [64]uint16
}

// FrameComponent describes one component of the JPEG frame header.
type FrameComponent struct {
	ID         byte
	QuantIndex int
	HSampling  int // derived during writing; defaults to 1
	VSampling  int
}

// HuffmanSlot describes one parsed DHT table.
type HuffmanSlot struct {
	IsAC   bool
	SlotID int
	IsLast bool
	Counts [16]int // DHT counts[0..15], BITS array
	Values []int   // symbols, <=256; 256 is the EOB sentinel for AC slot 0 handling
}

// ScanComponent is one component's table assignment within a scan.
type ScanComponent struct {
	ComponentIndex int
	ACTableIndex   int
	DCTableIndex   int
}

// RestartMarker describes one reset point's block-index delta within a
// scan, cumulative from the previous entry (or 0 for the first).
type RestartMarker struct {
	Delta int
}

// ExtraZeroRun describes one extra AC zero-run inserted outside the
// normal entropy-coding walk, keyed by block index.
type ExtraZeroRun struct {
	NumZeros   int
	BlockDelta int
}

// Scan holds one SOS segment's header and encoding metadata.
type Scan struct {
	Components     []ScanComponent
	Ss, Se         int
	Ah, Al         int
	LastNeededPass int
	Restarts       []RestartMarker
	ExtraZeroRuns  []ExtraZeroRun
}

// JpegReconstructionData is the fully parsed jbrd box contents, ready to
// be combined with decoded DCT coefficients and written back out as a
// byte-exact JPEG file.
type JpegReconstructionData struct {
	IsGray bool

	// MarkerOrder lists the 6-bit marker codes (already offset by
	// +0xC0) encountered while scanning the marker list, in file order,
	// up to and excluding the terminating 0xD9 (EOI).
	MarkerOrder []byte

	Apps      []AppMarker
	Coms      []ComMarker
	QuantInfo []QuantTableInfo

	ComponentType   ComponentType
	ComponentIDs    []byte // only meaningful for ComponentCustom
	FrameComponents []FrameComponent

	HuffmanSlots []HuffmanSlot

	Scans []Scan

	RestartInterval int // only meaningful if a 0xDD marker was recorded

	FakeFFMarkerSizes []int // one per fake 0xFF marker in MarkerOrder

	TailDataLen int

	HasPadding      bool
	PaddingBitsLen  int

	// Decompressed payload slices, in the order Parse step 16 assigns
	// them: unknown-type APP payloads, COM payloads, inter-marker
	// chunks, tail data, padding bits.
	InterMarkerChunks [][]byte
	TailData          []byte
	PaddingBits        []byte
}
