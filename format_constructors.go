package ril

import "github.com/rapidimg/ril/internal/pixfmt"

// Unknown is the empty pixel format.
func Unknown() PixelFormat { return pixfmt.Unknown() }

func RGBA8() PixelFormat       { return pixfmt.RGBA8() }
func RGBA8Srgb() PixelFormat   { return pixfmt.RGBA8Srgb() }
func RGBA8Uint() PixelFormat   { return pixfmt.RGBA8Uint() }
func RGBA8Snorm() PixelFormat  { return pixfmt.RGBA8Snorm() }
func RGBA8Sint() PixelFormat   { return pixfmt.RGBA8Sint() }
func BGRA8() PixelFormat       { return pixfmt.BGRA8() }
func BGRX8() PixelFormat       { return pixfmt.BGRX8() }
func R8Unorm() PixelFormat     { return pixfmt.R8Unorm() }
func A8Unorm() PixelFormat     { return pixfmt.A8Unorm() }
func R16Uint() PixelFormat     { return pixfmt.R16Uint() }
func R16Unorm() PixelFormat    { return pixfmt.R16Unorm() }
func R16Float() PixelFormat    { return pixfmt.R16Float() }
func R32Float() PixelFormat    { return pixfmt.R32Float() }
func R32Uint() PixelFormat     { return pixfmt.R32Uint() }
func RG8Unorm() PixelFormat    { return pixfmt.RG8Unorm() }
func RG16Float() PixelFormat   { return pixfmt.RG16Float() }
func RGBA16Float() PixelFormat { return pixfmt.RGBA16Float() }
func RGBA16Unorm() PixelFormat { return pixfmt.RGBA16Unorm() }
func RGBA32Float() PixelFormat { return pixfmt.RGBA32Float() }
func RGBA32Uint() PixelFormat  { return pixfmt.RGBA32Uint() }
func RGB32Float() PixelFormat  { return pixfmt.RGB32Float() }

func R11G11B10Float() PixelFormat { return pixfmt.R11G11B10Float() }
func RGB565Unorm() PixelFormat    { return pixfmt.RGB565Unorm() }
func BGR565Unorm() PixelFormat    { return pixfmt.BGR565Unorm() }
func BGRA5551Unorm() PixelFormat  { return pixfmt.BGRA5551Unorm() }
func RGBA4444Unorm() PixelFormat  { return pixfmt.RGBA4444Unorm() }
func RGB10A2Unorm() PixelFormat   { return pixfmt.RGB10A2Unorm() }
func RGB10A2Uint() PixelFormat    { return pixfmt.RGB10A2Uint() }

func Depth24Stencil8() PixelFormat         { return pixfmt.Depth24Stencil8() }
func Depth32FloatStencil8X24() PixelFormat { return pixfmt.Depth32FloatStencil8X24() }

func BC1Unorm() PixelFormat { return pixfmt.BC1Unorm() }
func BC1Srgb() PixelFormat  { return pixfmt.BC1Srgb() }
func BC2Unorm() PixelFormat { return pixfmt.BC2Unorm() }
func BC2Srgb() PixelFormat  { return pixfmt.BC2Srgb() }
func BC3Unorm() PixelFormat { return pixfmt.BC3Unorm() }
func BC3Srgb() PixelFormat  { return pixfmt.BC3Srgb() }
func BC4Unorm() PixelFormat { return pixfmt.BC4Unorm() }
func BC4Snorm() PixelFormat { return pixfmt.BC4Snorm() }
func BC5Unorm() PixelFormat { return pixfmt.BC5Unorm() }
func BC5Snorm() PixelFormat { return pixfmt.BC5Snorm() }
func BC6HUf16() PixelFormat { return pixfmt.BC6HUf16() }
func BC6HSf16() PixelFormat { return pixfmt.BC6HSf16() }
func BC7Unorm() PixelFormat { return pixfmt.BC7Unorm() }
func BC7Srgb() PixelFormat  { return pixfmt.BC7Srgb() }

func ETC2RGBUnorm() PixelFormat     { return pixfmt.ETC2RGBUnorm() }
func ETC2RGBA1Unorm() PixelFormat   { return pixfmt.ETC2RGBA1Unorm() }
func ETC2RGBAUnorm() PixelFormat    { return pixfmt.ETC2RGBAUnorm() }
func ETC2EACR11Unorm() PixelFormat  { return pixfmt.ETC2EACR11Unorm() }
func ETC2EACRG11Unorm() PixelFormat { return pixfmt.ETC2EACRG11Unorm() }

func ASTC4x4Unorm() PixelFormat   { return pixfmt.ASTC4x4Unorm() }
func ASTC5x4Unorm() PixelFormat   { return pixfmt.ASTC5x4Unorm() }
func ASTC5x5Unorm() PixelFormat   { return pixfmt.ASTC5x5Unorm() }
func ASTC6x5Unorm() PixelFormat   { return pixfmt.ASTC6x5Unorm() }
func ASTC6x6Unorm() PixelFormat   { return pixfmt.ASTC6x6Unorm() }
func ASTC8x5Unorm() PixelFormat   { return pixfmt.ASTC8x5Unorm() }
func ASTC8x6Unorm() PixelFormat   { return pixfmt.ASTC8x6Unorm() }
func ASTC8x8Unorm() PixelFormat   { return pixfmt.ASTC8x8Unorm() }
func ASTC10x5Unorm() PixelFormat  { return pixfmt.ASTC10x5Unorm() }
func ASTC10x6Unorm() PixelFormat  { return pixfmt.ASTC10x6Unorm() }
func ASTC10x8Unorm() PixelFormat  { return pixfmt.ASTC10x8Unorm() }
func ASTC10x10Unorm() PixelFormat { return pixfmt.ASTC10x10Unorm() }
func ASTC12x10Unorm() PixelFormat { return pixfmt.ASTC12x10Unorm() }
func ASTC12x12Unorm() PixelFormat { return pixfmt.ASTC12x12Unorm() }
func ASTC6x6Sfloat() PixelFormat  { return pixfmt.ASTC6x6Sfloat() }

func GRGBUnorm() PixelFormat { return pixfmt.GRGBUnorm() }
func RGBGUnorm() PixelFormat { return pixfmt.RGBGUnorm() }
func R1Unorm() PixelFormat   { return pixfmt.R1Unorm() }

// FromDXGI maps a DXGI_FORMAT code (0..88) to a PixelFormat, or Unknown for
// an unmapped code.
func FromDXGI(code int) PixelFormat { return pixfmt.FromDXGI(code) }
