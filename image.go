package ril

import (
	"fmt"

	"github.com/rapidimg/ril/internal/blockcodec"
	"github.com/rapidimg/ril/internal/rimage"
)

// Image owns an ImageDesc and an aligned byte buffer of length Desc.Size.
// The zero value is not usable; construct with NewImage or
// NewImageWithContent.
type Image = rimage.Image

// Proxy is a borrowed (desc, bytes) pair for passing a view over image
// bytes without transferring ownership.
type Proxy = rimage.Proxy

// NewImage allocates a zeroed, aligned buffer sized for desc.
func NewImage(desc ImageDesc) (*Image, error) { return rimage.New(desc) }

// NewImageWithContent allocates like NewImage, then copies
// min(desc.Size, len(initial)) bytes from initial. A length mismatch logs
// through Logger and otherwise does not fail.
func NewImageWithContent(desc ImageDesc, initial []byte) (*Image, error) {
	return rimage.NewWithContent(desc, initial)
}

// DecompressBlocks decodes the plane at index plane of img, which must be a BC1/BC2/BC3
// surface, into a new single-plane Image of uncompressed RGBA8 pixels.
// This is an additional operation, not a relaxation of PlaneDesc.ToRGBA8's
// ErrUnsupportedConversion stance for compressed layouts.
func DecompressBlocks(img *Image, plane int) (*Image, error) {
	src, err := img.PlaneBytes(plane)
	if err != nil {
		return nil, err
	}
	outPlane, rgba, err := blockcodec.Decompress(img.Desc.Planes[plane], src)
	if err != nil {
		return nil, err
	}
	outDesc, err := MakeImageDesc(outPlane, 1, 1, 1, FaceMajor, outPlane.Alignment)
	if err != nil {
		return nil, err
	}
	return NewImageWithContent(outDesc, rgba)
}

// BlockCodec names a block-compression format CompressBlocks can target.
type BlockCodec int

const (
	// BlockBC1 compresses color only (no alpha), 8 bytes per 4x4 block.
	BlockBC1 BlockCodec = iota
	// BlockBC3 compresses color plus interpolated alpha, 16 bytes per
	// 4x4 block.
	BlockBC3
)

// CompressBlocks encodes the plane at index plane of img, which must be RGBA8, into a new
// single-plane Image of BC1 or BC3 blocks. Like DecompressBlocks, this is
// an additional operation layered on top of the core conversion path,
// which has no compressed-format encode side.
func CompressBlocks(img *Image, plane int, codec BlockCodec) (*Image, error) {
	src, err := img.PlaneBytes(plane)
	if err != nil {
		return nil, err
	}
	var outPlane PlaneDesc
	var block []byte
	switch codec {
	case BlockBC1:
		outPlane, block, err = blockcodec.CompressBC1(img.Desc.Planes[plane], src)
	case BlockBC3:
		outPlane, block, err = blockcodec.CompressBC3(img.Desc.Planes[plane], src)
	default:
		return nil, fmt.Errorf("ril.CompressBlocks: unknown codec %d: %w", codec, ErrUnsupportedConversion)
	}
	if err != nil {
		return nil, err
	}
	outDesc, err := MakeImageDesc(outPlane, 1, 1, 1, FaceMajor, outPlane.Alignment)
	if err != nil {
		return nil, err
	}
	return NewImageWithContent(outDesc, block)
}
