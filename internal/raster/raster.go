// Package raster bridges the image engine to the host's raster codecs:
// PNG, JPEG, and BMP. It stands in for the four-callback (read/skip/eof/
// write) surface an external stb-style codec would use; in Go that surface
// collapses onto io.Reader/io.Writer, so this package is a thin adapter
// from image.Image to PlaneDesc/ImageDesc and back.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

// Format names one of the raster containers this bridge can write.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
)

// FormatForExtension maps a lowercased filename suffix (without the dot)
// to a Format, as used by the save-dispatch path.
func FormatForExtension(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case "png":
		return PNG, true
	case "jpg", "jpeg":
		return JPEG, true
	case "bmp":
		return BMP, true
	default:
		return 0, false
	}
}

// pngHeader, jpegHeader, and bmpHeader are the magic byte sequences the
// dispatcher in the root package sniffs before handing a stream to Decode.
var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegHeader = []byte{0xFF, 0xD8}
	bmpHeader  = []byte{'B', 'M'}
)

// Sniff reports whether b begins with a PNG, JPEG, or BMP signature.
func Sniff(b []byte) bool {
	return hasPrefix(b, pngHeader) || hasPrefix(b, jpegHeader) || hasPrefix(b, bmpHeader)
}

func hasPrefix(b, prefix []byte) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == string(prefix)
}

// Decode reads a PNG, JPEG, or BMP stream and returns it as a single-layer,
// single-face, single-level ImageDesc. 16-bit-per-channel PNG sources are
// preserved as RGBA16Unorm; everything else decodes to RGBA8.
func Decode(r io.Reader) (imgdesc.Desc, []byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return imgdesc.Desc{}, nil, fmt.Errorf("raster.Decode: %w: %v", rerr.ErrUnsupportedFileFormat, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	wide := false
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		wide = true
	}

	if wide {
		return decodeWide(img, w, h)
	}
	return decodeNarrow(img, w, h)
}

// decodeNarrow normalizes an arbitrary image.Image implementation to
// *image.NRGBA via draw.Draw, then copies its packed bytes directly: an
// NRGBA pixel is already R,G,B,A at 8 bits each, the same byte order RGBA8
// uses.
func decodeNarrow(img image.Image, w, h int) (imgdesc.Desc, []byte, error) {
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: w, H: h, D: 1}, 0, 0, 0, 4)
	if err != nil {
		return imgdesc.Desc{}, nil, err
	}
	desc, err := imgdesc.Make(base, 1, 1, 1, imgdesc.FaceMajor, 4)
	if err != nil {
		return imgdesc.Desc{}, nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)

	pixelBytes := make([]byte, desc.Size)
	copy(pixelBytes, dst.Pix)
	return desc, pixelBytes, nil
}

func decodeWide(img image.Image, w, h int) (imgdesc.Desc, []byte, error) {
	base, err := plane.Make(pixfmt.RGBA16Unorm(), plane.Extent{W: w, H: h, D: 1}, 0, 0, 0, 4)
	if err != nil {
		return imgdesc.Desc{}, nil, err
	}
	desc, err := imgdesc.Make(base, 1, 1, 1, imgdesc.FaceMajor, 4)
	if err != nil {
		return imgdesc.Desc{}, nil, err
	}
	bounds := img.Bounds()
	pixelBytes := make([]byte, desc.Size)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
			off, err := base.Pixel(x, y, 0)
			if err != nil {
				return imgdesc.Desc{}, nil, err
			}
			putU16(pixelBytes[off:], c.R)
			putU16(pixelBytes[off+2:], c.G)
			putU16(pixelBytes[off+4:], c.B)
			putU16(pixelBytes[off+6:], c.A)
		}
	}
	return desc, pixelBytes, nil
}

func putU16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// Encode writes desc/pixelBytes as format. The descriptor must describe a
// single layer, face, and level of an uncompressed format; anything else
// is UnsupportedForRaster. quality is forwarded to the JPEG encoder and
// ignored otherwise, matching the host stb encoder's own behavior.
func Encode(w io.Writer, format Format, desc imgdesc.Desc, pixelBytes []byte, quality int) error {
	if desc.ArrayLength != 1 || desc.Faces != 1 || desc.Levels != 1 || len(desc.Planes) != 1 {
		return fmt.Errorf("raster.Encode: multi-plane image: %w", rerr.ErrUnsupportedForRaster)
	}
	p := desc.Planes[0]
	if p.Format.Compressed() {
		return fmt.Errorf("raster.Encode: compressed format %s: %w", p.Format.Layout(), rerr.ErrUnsupportedForRaster)
	}

	rgba8, err := p.ToRGBA8(pixelBytes)
	if err != nil {
		return fmt.Errorf("raster.Encode: %w", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, p.Extent.W, p.Extent.H))
	copy(img.Pix, rgba8)

	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: clampQuality(quality)})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("raster.Encode: unknown format %d: %w", format, rerr.ErrUnsupportedFileFormat)
	}
}

func clampQuality(q int) int {
	if q <= 0 {
		return jpeg.DefaultQuality
	}
	if q > 100 {
		return 100
	}
	return q
}
