/*
DESCRIPTION
  jxlerr.go defines the single tagged error value produced by every
  subsystem of the VarDCT decoding core.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package jxlerr provides the tagged error kind shared by the quant,
// transform, ICC, and JPEG-reconstruction packages.
package jxlerr

import "fmt"

// Kind identifies the category of a core failure.
type Kind int

const (
	Unknown Kind = iota
	HfQuantFactorTooSmall
	InvalidDistanceBand
	InvalidQuantEncoding
	InvalidQuantEncodingMode
	InvalidRawQuantTable
	InvalidQuantizationTableWeight
	InvalidColorEncoding
	InvalidColorSpace
	InvalidRenderingIntent
	IccInvalidWhitePoint
	IccInvalidWhitePointY
	IccValueOutOfRangeS15Fixed16
	IccWriteOutOfBounds
	IccInvalidTagString
	IccMlucTextNotAscii
	IccUnsupportedTransferFunction
	IccTableSizeExceeded
	InvalidGamma
	MatrixInversionFailed
	InvalidJpegReconstructionData
)

var names = map[Kind]string{
	Unknown:                         "Unknown",
	HfQuantFactorTooSmall:           "HfQuantFactorTooSmall",
	InvalidDistanceBand:             "InvalidDistanceBand",
	InvalidQuantEncoding:            "InvalidQuantEncoding",
	InvalidQuantEncodingMode:        "InvalidQuantEncodingMode",
	InvalidRawQuantTable:            "InvalidRawQuantTable",
	InvalidQuantizationTableWeight:  "InvalidQuantizationTableWeight",
	InvalidColorEncoding:            "InvalidColorEncoding",
	InvalidColorSpace:               "InvalidColorSpace",
	InvalidRenderingIntent:          "InvalidRenderingIntent",
	IccInvalidWhitePoint:            "IccInvalidWhitePoint",
	IccInvalidWhitePointY:           "IccInvalidWhitePointY",
	IccValueOutOfRangeS15Fixed16:    "IccValueOutOfRangeS15Fixed16",
	IccWriteOutOfBounds:             "IccWriteOutOfBounds",
	IccInvalidTagString:             "IccInvalidTagString",
	IccMlucTextNotAscii:             "IccMlucTextNotAscii",
	IccUnsupportedTransferFunction:  "IccUnsupportedTransferFunction",
	IccTableSizeExceeded:            "IccTableSizeExceeded",
	InvalidGamma:                    "InvalidGamma",
	MatrixInversionFailed:           "MatrixInversionFailed",
	InvalidJpegReconstructionData:   "InvalidJpegReconstructionData",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is the single tagged error value produced by the core. It carries
// an optional cause for Unwrap, matching the github.com/pkg/errors
// wrap/cause idiom used throughout this codebase.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New returns an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
