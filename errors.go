package ril

import "github.com/rapidimg/ril/internal/rerr"

// Error kinds. Callers compare with errors.Is; every fallible entry point
// in this package wraps one of these with additional context.
var (
	ErrInvalidFormat         = rerr.ErrInvalidFormat
	ErrInvalidDescriptor     = rerr.ErrInvalidDescriptor
	ErrUnsupportedConversion = rerr.ErrUnsupportedConversion
	ErrUnsupportedFileFormat = rerr.ErrUnsupportedFileFormat
	ErrUnsupportedForRaster  = rerr.ErrUnsupportedForRaster
	ErrCorruptFile           = rerr.ErrCorruptFile
	ErrOutOfMemory           = rerr.ErrOutOfMemory
	ErrNotImplemented        = rerr.ErrNotImplemented
)
