// Package ddscodec reads (and stub-writes) Microsoft DirectDraw Surface
// files: the legacy 128-byte header with its DDPIXELFORMAT mask table, the
// DX10 extension header for DXGI-bridged formats, and the cubemap/volume/
// mipmap geometry rules that feed an ImageDesc.
package ddscodec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

var magic = [4]byte{'D', 'D', 'S', ' '}

// DDSD_* describe which fields of fileHeader are meaningful.
const (
	ddsdCaps        = 0x1
	ddsdHeight      = 0x2
	ddsdWidth       = 0x4
	ddsdPitch       = 0x8
	ddsdPixelFormat = 0x1000
	ddsdMipmapCount = 0x20000
	ddsdLinearSize  = 0x80000
	ddsdDepth       = 0x800000
)

// DDPF_* describe which fields of pixelFormat are meaningful.
const (
	ddpfAlphaPixels   = 0x1
	ddpfAlpha         = 0x2
	ddpfFourCC        = 0x4
	ddpfPaletteIndex8 = 0x20
	ddpfRGB           = 0x40
	ddpfYUV           = 0x200
	ddpfLuminance     = 0x20000
)

// DDSCAPS_* and DDSCAPS2_* classify the surface.
const (
	ddscapsComplex = 0x8
	ddscapsMipmap  = 0x400000

	ddscaps2CubemapPositiveX = 0x400
	ddscaps2CubemapNegativeX = 0x800
	ddscaps2CubemapPositiveY = 0x1000
	ddscaps2CubemapNegativeY = 0x2000
	ddscaps2CubemapPositiveZ = 0x4000
	ddscaps2CubemapNegativeZ = 0x8000
	ddscaps2CubemapAllFaces  = ddscaps2CubemapPositiveX | ddscaps2CubemapNegativeX |
		ddscaps2CubemapPositiveY | ddscaps2CubemapNegativeY |
		ddscaps2CubemapPositiveZ | ddscaps2CubemapNegativeZ
	ddscaps2Volume = 0x200000
)

func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

var fourCCDX10 = fourCC('D', 'X', '1', '0')

// pixelFormat mirrors the 32-byte DDPIXELFORMAT struct.
type pixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// fileHeader mirrors the 124-byte DDS_HEADER struct (everything after the
// 4-byte "DDS " magic).
type fileHeader struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       pixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// dx10Header mirrors the 20-byte DDS_HEADER_DXT10 extension.
type dx10Header struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// maskFormat is one entry of the legacy DDPIXELFORMAT lookup table: the
// PixelFormat it maps to, the DDPF flags that must be set to consider the
// entry, and the mask/fourCC/bit-count values that must match exactly.
type maskFormat struct {
	format pixfmt.PixelFormat
	flags  uint32
	fourCC uint32
	bits   uint32
	r, g, b, a uint32
}

var legacyTable = []maskFormat{
	{format: pixfmt.BGRA8(), flags: ddpfRGB | ddpfAlphaPixels, bits: 32, r: 0x00ff0000, g: 0x0000ff00, b: 0x000000ff, a: 0xff000000},
	{format: pixfmt.BGRX8(), flags: ddpfRGB, bits: 32, r: 0x00ff0000, g: 0x0000ff00, b: 0x000000ff, a: 0x00000000},
	{format: pixfmt.RGB10A2Unorm(), flags: ddpfRGB | ddpfAlphaPixels, bits: 32, r: 0x3ff00000, g: 0x000ffc00, b: 0x000003ff, a: 0xc0000000},
	{format: pixfmt.BGR565Unorm(), flags: ddpfRGB, bits: 16, r: 0xf800, g: 0x07e0, b: 0x001f, a: 0},
	{format: pixfmt.BGRA5551Unorm(), flags: ddpfRGB | ddpfAlphaPixels, bits: 16, r: 0x7c00, g: 0x03e0, b: 0x001f, a: 0x8000},
	{format: pixfmt.Make(pixfmt.Layout4_4_4_4, pixfmt.SignUnorm, pixfmt.SignUnorm, pixfmt.SignUnorm, pixfmt.SwizzleZ, pixfmt.SwizzleY, pixfmt.SwizzleX, pixfmt.SwizzleW), flags: ddpfRGB | ddpfAlphaPixels, bits: 16, r: 0x0f00, g: 0x00f0, b: 0x000f, a: 0xf000},
	{format: pixfmt.R8Unorm(), flags: ddpfLuminance, bits: 8, r: 0xff},
	{format: pixfmt.RG8Unorm(), flags: ddpfLuminance | ddpfAlphaPixels, bits: 16, r: 0x00ff, a: 0xff00},
	{format: pixfmt.A8Unorm(), flags: ddpfAlpha, bits: 8, a: 0xff},
	{format: pixfmt.BC1Unorm(), flags: ddpfFourCC, fourCC: fourCC('D', 'X', 'T', '1')},
	{format: pixfmt.BC2Unorm(), flags: ddpfFourCC, fourCC: fourCC('D', 'X', 'T', '2')},
	{format: pixfmt.BC2Unorm(), flags: ddpfFourCC, fourCC: fourCC('D', 'X', 'T', '3')},
	{format: pixfmt.BC3Unorm(), flags: ddpfFourCC, fourCC: fourCC('D', 'X', 'T', '4')},
	{format: pixfmt.BC3Unorm(), flags: ddpfFourCC, fourCC: fourCC('D', 'X', 'T', '5')},
	{format: pixfmt.BC4Unorm(), flags: ddpfFourCC, fourCC: fourCC('A', 'T', 'I', '1')},
	{format: pixfmt.BC4Unorm(), flags: ddpfFourCC, fourCC: fourCC('B', 'C', '4', 'U')},
	{format: pixfmt.BC4Snorm(), flags: ddpfFourCC, fourCC: fourCC('B', 'C', '4', 'S')},
	{format: pixfmt.BC5Unorm(), flags: ddpfFourCC, fourCC: fourCC('A', 'T', 'I', '2')},
	{format: pixfmt.BC5Unorm(), flags: ddpfFourCC, fourCC: fourCC('B', 'C', '5', 'U')},
	{format: pixfmt.BC5Snorm(), flags: ddpfFourCC, fourCC: fourCC('B', 'C', '5', 'S')},
	{format: pixfmt.R16Float(), flags: ddpfFourCC, fourCC: 111},
	{format: pixfmt.RG16Float(), flags: ddpfFourCC, fourCC: 112},
	{format: pixfmt.RGBA16Float(), flags: ddpfFourCC, fourCC: 113},
	{format: pixfmt.R32Float(), flags: ddpfFourCC, fourCC: 114},
	{format: pixfmt.RGB32Float(), flags: ddpfFourCC, fourCC: 115},
	{format: pixfmt.RGBA32Float(), flags: ddpfFourCC, fourCC: 116},
	{format: pixfmt.RGBA16Unorm(), flags: ddpfFourCC, fourCC: 36},
}

// matchLegacy finds the first table entry whose required mask fields equal
// pf's, considering only the fields the entry's own flags imply are
// meaningful (fourCC only under DDPF_FOURCC; color masks only under the
// channel flags they cover; bit count only for packed-integer entries).
func matchLegacy(pf pixelFormat) (pixfmt.PixelFormat, bool) {
	for _, e := range legacyTable {
		if e.flags&ddpfFourCC != 0 {
			if pf.Flags&ddpfFourCC != 0 && pf.FourCC == e.fourCC {
				return e.format, true
			}
			continue
		}
		if pf.Flags&ddpfFourCC != 0 {
			continue
		}
		if pf.Flags&e.flags != e.flags {
			continue
		}
		if e.bits != 0 && pf.RGBBitCount != e.bits {
			continue
		}
		if (e.flags&(ddpfRGB|ddpfLuminance) != 0) && pf.RBitMask != e.r {
			continue
		}
		if e.flags&ddpfRGB != 0 && pf.GBitMask != e.g {
			continue
		}
		if e.flags&ddpfRGB != 0 && pf.BBitMask != e.b {
			continue
		}
		if e.flags&(ddpfAlphaPixels|ddpfAlpha) != 0 && pf.ABitMask != e.a {
			continue
		}
		return e.format, true
	}
	return pixfmt.Unknown(), false
}

// Result is the decoded geometry and pixel data of one DDS file.
type Result struct {
	Desc  imgdesc.Desc
	Bytes []byte
}

// Read decodes a DDS stream into a plane table and pixel blob.
func Read(r io.Reader) (Result, error) {
	var tag [4]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return Result{}, fmt.Errorf("ddscodec.Read: read tag: %w", err)
	}
	if tag != magic {
		return Result{}, fmt.Errorf("ddscodec.Read: not a DDS file: %w", rerr.ErrUnsupportedFileFormat)
	}

	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Result{}, fmt.Errorf("ddscodec.Read: read header: %w", err)
	}
	if hdr.Flags&(ddsdWidth|ddsdHeight) != ddsdWidth|ddsdHeight {
		return Result{}, fmt.Errorf("ddscodec.Read: missing DDSD_WIDTH|DDSD_HEIGHT: %w", rerr.ErrCorruptFile)
	}
	if hdr.PixelFormat.Flags&ddpfPaletteIndex8 != 0 {
		return Result{}, fmt.Errorf("ddscodec.Read: palette-indexed surfaces unsupported: %w", rerr.ErrUnsupportedFileFormat)
	}

	format := pixfmt.Unknown()
	bgr2rgb := false

	if hdr.PixelFormat.Flags&ddpfFourCC != 0 && hdr.PixelFormat.FourCC == fourCCDX10 {
		var dx10 dx10Header
		if err := binary.Read(r, binary.LittleEndian, &dx10); err != nil {
			return Result{}, fmt.Errorf("ddscodec.Read: read DX10 header: %w", err)
		}
		format = pixfmt.FromDXGI(int(dx10.DXGIFormat))
	} else {
		var ok bool
		format, ok = matchLegacy(hdr.PixelFormat)
		if !ok {
			return Result{}, fmt.Errorf("ddscodec.Read: no pixel format matched DDPIXELFORMAT: %w", rerr.ErrUnsupportedFileFormat)
		}
	}
	if !format.Valid() {
		return Result{}, fmt.Errorf("ddscodec.Read: unmapped pixel format: %w", rerr.ErrUnsupportedFileFormat)
	}

	if format.Layout() == pixfmt.Layout8_8_8_8 &&
		format.Swizzle(0) == pixfmt.SwizzleZ && format.Swizzle(1) == pixfmt.SwizzleY && format.Swizzle(2) == pixfmt.SwizzleX {
		format = pixfmt.Make(pixfmt.Layout8_8_8_8, format.Sign0(), format.Sign0(), format.Sign0(),
			pixfmt.SwizzleX, pixfmt.SwizzleY, pixfmt.SwizzleZ, format.Swizzle(3))
		bgr2rgb = true
	}

	var faces int
	switch {
	case hdr.Caps2&ddscaps2CubemapAllFaces == ddscaps2CubemapAllFaces:
		faces = 6
	case hdr.Caps2&ddscaps2Volume != 0, hdr.Caps2&ddscaps2CubemapAllFaces == 0:
		faces = 1
	default:
		return Result{}, fmt.Errorf("ddscodec.Read: partial cubemap face set unsupported: %w", rerr.ErrUnsupportedFileFormat)
	}

	depth := 1
	if hdr.Flags&ddsdDepth != 0 && hdr.Depth > 0 {
		depth = int(hdr.Depth)
	}

	levels := 1
	if hdr.Flags&ddsdMipmapCount != 0 && hdr.Caps&ddscapsMipmap != 0 && hdr.Caps&ddscapsComplex != 0 && hdr.MipMapCount > 0 {
		levels = int(hdr.MipMapCount)
	}

	base, err := plane.Make(format, plane.Extent{W: int(hdr.Width), H: int(hdr.Height), D: depth}, 0, 0, 0, 4)
	if err != nil {
		return Result{}, fmt.Errorf("ddscodec.Read: %w", err)
	}

	desc, err := imgdesc.Make(base, 1, faces, levels, imgdesc.FaceMajor, 4)
	if err != nil {
		return Result{}, fmt.Errorf("ddscodec.Read: %w", err)
	}

	pixelBytes := make([]byte, desc.Size)
	if _, err := io.ReadFull(r, pixelBytes); err != nil {
		return Result{}, fmt.Errorf("ddscodec.Read: pixel blob truncated: %w", rerr.ErrCorruptFile)
	}

	if bgr2rgb {
		bb := format.BlockBytes()
		for off := 0; off+bb <= len(pixelBytes); off += bb {
			pixelBytes[off], pixelBytes[off+2] = pixelBytes[off+2], pixelBytes[off]
		}
	}

	return Result{Desc: desc, Bytes: pixelBytes}, nil
}

// Write is reserved; DDS encoding is not implemented.
func Write(w io.Writer, desc imgdesc.Desc, pixelBytes []byte) error {
	return fmt.Errorf("ddscodec.Write: %w", rerr.ErrNotImplemented)
}

// Sniff reports whether the first four bytes of b are the DDS magic.
func Sniff(b []byte) bool {
	return len(b) >= 4 && b[0] == magic[0] && b[1] == magic[1] && b[2] == magic[2] && b[3] == magic[3]
}
