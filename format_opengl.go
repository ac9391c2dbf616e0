package ril

import "github.com/rapidimg/ril/internal/pixfmt"

// GLFormat is the (internalFormat, format, type) triple OpenGL's
// glTexImage family expects for one PixelFormat.
type GLFormat struct {
	InternalFormat uint32
	Format         uint32
	Type           uint32
}

// OpenGL enum values used below, named the way the Khronos headers do.
const (
	glRGBA8    = 0x8058
	glRGBA16   = 0x805B
	glRGBA16F  = 0x881A
	glRGBA32F  = 0x8814
	glRGB565   = 0x8D62
	glR8       = 0x8229
	glR16      = 0x822A
	glR16F     = 0x822D
	glR32F     = 0x822E
	glRG8      = 0x822B
	glRG16F    = 0x822F
	glCompBC1  = 0x83F1 // GL_COMPRESSED_RGBA_S3TC_DXT1_EXT
	glCompBC2  = 0x83F2 // GL_COMPRESSED_RGBA_S3TC_DXT3_EXT
	glCompBC3  = 0x83F3 // GL_COMPRESSED_RGBA_S3TC_DXT5_EXT

	glRGBA            = 0x1908
	glRGB             = 0x1907
	glRed             = 0x1903
	glRG              = 0x8227
	glUnsignedByte    = 0x1401
	glUnsignedShort   = 0x1403
	glFloat           = 0x1406
	glHalfFloat       = 0x140B
	glUnsignedShort565 = 0x8363
)

type glEntry struct {
	format pixfmt.PixelFormat
	gl     GLFormat
}

var glTable = []glEntry{
	{pixfmt.RGBA8(), GLFormat{glRGBA8, glRGBA, glUnsignedByte}},
	{pixfmt.RGBA16Unorm(), GLFormat{glRGBA16, glRGBA, glUnsignedShort}},
	{pixfmt.RGBA16Float(), GLFormat{glRGBA16F, glRGBA, glHalfFloat}},
	{pixfmt.RGBA32Float(), GLFormat{glRGBA32F, glRGBA, glFloat}},
	{pixfmt.RGB565Unorm(), GLFormat{glRGB565, glRGB, glUnsignedShort565}},
	{pixfmt.R8Unorm(), GLFormat{glR8, glRed, glUnsignedByte}},
	{pixfmt.R16Unorm(), GLFormat{glR16, glRed, glUnsignedShort}},
	{pixfmt.R16Float(), GLFormat{glR16F, glRed, glHalfFloat}},
	{pixfmt.R32Float(), GLFormat{glR32F, glRed, glFloat}},
	{pixfmt.RG8Unorm(), GLFormat{glRG8, glRG, glUnsignedByte}},
	{pixfmt.RG16Float(), GLFormat{glRG16F, glRG, glHalfFloat}},
	{pixfmt.BC1Unorm(), GLFormat{glCompBC1, glCompBC1, 0}},
	{pixfmt.BC2Unorm(), GLFormat{glCompBC2, glCompBC2, 0}},
	{pixfmt.BC3Unorm(), GLFormat{glCompBC3, glCompBC3, 0}},
}

// ToOpenGL maps f to its OpenGL (internalFormat, format, type) triple. ok
// is false for any format with no table entry.
func ToOpenGL(f PixelFormat) (gl GLFormat, ok bool) {
	for _, e := range glTable {
		if e.format == f {
			return e.gl, true
		}
	}
	return GLFormat{}, false
}

// FromOpenGL is the inverse of ToOpenGL, matched on internalFormat alone.
func FromOpenGL(internalFormat uint32) (PixelFormat, bool) {
	for _, e := range glTable {
		if e.gl.InternalFormat == internalFormat {
			return e.format, true
		}
	}
	return Unknown(), false
}
