// Package ril is a single-header-style image description and container
// library: a packed PixelFormat descriptor, plane and image geometry,
// mipmap generation, rectangular copy, and RIL/DDS container codecs, with
// an optional bridge to PNG/JPG/BMP via the standard image codecs and
// golang.org/x/image/bmp.
package ril

import "github.com/rapidimg/ril/internal/pixfmt"

// PixelFormat is a 32-bit tagged description of one pixel: a block layout,
// up to three independent sign interpretations (for channels 0, 1-2, and
// 3), and a four-way channel swizzle.
type PixelFormat = pixfmt.PixelFormat

// Layout names one of the supported block layouts: uncompressed packed
// integers, depth/stencil combinations, macroblock video formats, and the
// BC/ETC2/ASTC compressed families.
type Layout = pixfmt.Layout

// Sign names how a channel's raw bits are interpreted: unsigned/signed
// normalized, sRGB-normalized, unsigned/signed integer, or float.
type Sign = pixfmt.Sign

// Swizzle names, for one output channel, the source channel (X/Y/Z/W) or
// constant (0/1) that feeds it.
type Swizzle = pixfmt.Swizzle

const (
	SwizzleConst0 = pixfmt.SwizzleConst0
	SwizzleConst1 = pixfmt.SwizzleConst1
	SwizzleX      = pixfmt.SwizzleX
	SwizzleY      = pixfmt.SwizzleY
	SwizzleZ      = pixfmt.SwizzleZ
	SwizzleW      = pixfmt.SwizzleW
)

const (
	SignUnorm = pixfmt.SignUnorm
	SignSnorm = pixfmt.SignSnorm
	SignBnorm = pixfmt.SignBnorm
	SignGnorm = pixfmt.SignGnorm
	SignUint  = pixfmt.SignUint
	SignSint  = pixfmt.SignSint
	SignBint  = pixfmt.SignBint
	SignGint  = pixfmt.SignGint
	SignFloat = pixfmt.SignFloat
)

// MakeFormat packs the given fields into a PixelFormat. It performs only
// field masking; it does not validate that the chosen signs match the
// layout's channel widths.
func MakeFormat(layout Layout, sign0, sign12, sign3 Sign, sw0, sw1, sw2, sw3 Swizzle) PixelFormat {
	return pixfmt.Make(layout, sign0, sign12, sign3, sw0, sw1, sw2, sw3)
}

// FormatFromU32 reinterprets a raw 32-bit encoding as a PixelFormat.
func FormatFromU32(v uint32) PixelFormat { return pixfmt.FromU32(v) }

// ParseFormat parses the string form produced by PixelFormat.String.
func ParseFormat(s string) (PixelFormat, error) { return pixfmt.Parse(s) }
