// Package blockcodec converts between compressed BC1/BC2/BC3 block data and
// uncompressed RGBA8 pixels, in both directions. It is an enrichment beyond
// the core conversion path: PlaneDesc.ToRGBA8 still reports
// ErrUnsupportedConversion for compressed layouts, exactly as the format
// table specifies. This package is a separate, opt-in set of operations for
// callers that need actual pixels, or actual blocks, rather than a
// conversion error.
package blockcodec

import (
	"fmt"

	"github.com/mauserzjeh/dxt"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

// Decompress decodes one 2D plane of block-compressed bytes into an
// uncompressed RGBA8 plane. Only BC1, BC2, and BC3 are supported; any
// other compressed layout returns ErrUnsupportedConversion.
func Decompress(p plane.Desc, blockBytes []byte) (plane.Desc, []byte, error) {
	var rgba []byte
	var err error
	switch p.Format.Layout() {
	case pixfmt.LayoutBC1:
		rgba, err = dxt.DecodeDXT1(blockBytes, uint(p.Extent.W), uint(p.Extent.H))
	case pixfmt.LayoutBC2:
		rgba, err = dxt.DecodeDXT3(blockBytes, uint(p.Extent.W), uint(p.Extent.H))
	case pixfmt.LayoutBC3:
		rgba, err = dxt.DecodeDXT5(blockBytes, uint(p.Extent.W), uint(p.Extent.H))
	default:
		return plane.Desc{}, nil, fmt.Errorf("blockcodec.Decompress: layout %s has no block decoder: %w", p.Format.Layout(), rerr.ErrUnsupportedConversion)
	}
	if err != nil {
		return plane.Desc{}, nil, fmt.Errorf("blockcodec.Decompress: %w", err)
	}

	out, err := plane.Make(pixfmt.RGBA8(), p.Extent, 0, 0, 0, 4)
	if err != nil {
		return plane.Desc{}, nil, err
	}
	if len(rgba) != out.Size {
		return plane.Desc{}, nil, fmt.Errorf("blockcodec.Decompress: decoded length %d != expected %d: %w", len(rgba), out.Size, rerr.ErrCorruptFile)
	}
	return out, rgba, nil
}

// Supported reports whether layout has a block decoder.
func Supported(layout pixfmt.Layout) bool {
	switch layout {
	case pixfmt.LayoutBC1, pixfmt.LayoutBC2, pixfmt.LayoutBC3:
		return true
	default:
		return false
	}
}
