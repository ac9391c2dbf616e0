// Package rerr defines the error kinds shared by every layer of the image
// engine, from pixel-format validation up through the container codecs.
package rerr

import "errors"

// Sentinel errors identifying the kind of failure. Callers compare with
// errors.Is; codecs and converters wrap these with fmt.Errorf("...: %w", ...)
// to attach context.
var (
	// ErrInvalidFormat means a PixelFormat failed Valid().
	ErrInvalidFormat = errors.New("invalid pixel format")

	// ErrInvalidDescriptor means a plane or image descriptor failed its
	// invariants (zero dimension, bad alignment, undersized pitch/slice,
	// mismatched plane-table length).
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrUnsupportedConversion means a numeric sign/width combination has
	// no implemented codec path, or a compressed format was fed into a
	// per-pixel converter.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrUnsupportedFileFormat means no known container was sniffed, a
	// save path had no recognized extension, or the raster bridge is
	// absent for a raster-only input.
	ErrUnsupportedFileFormat = errors.New("unsupported file format")

	// ErrUnsupportedForRaster means an image cannot be represented by a
	// raster-only target (PNG/JPG/BMP): it has more than one layer, face,
	// or level, or uses a channel layout the raster bridge can't emit.
	ErrUnsupportedForRaster = errors.New("unsupported for raster output")

	// ErrCorruptFile means a container header failed structural checks:
	// bad magic, missing required flags, out-of-range enum, or a
	// truncated pixel blob.
	ErrCorruptFile = errors.New("corrupt file")

	// ErrOutOfMemory means aligned allocation failed.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNotImplemented marks a reserved code path, such as DDS write.
	ErrNotImplemented = errors.New("not implemented")
)
