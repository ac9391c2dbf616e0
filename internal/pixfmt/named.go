package pixfmt

// Unknown is the empty pixel format.
func Unknown() PixelFormat { return PixelFormat(0) }

func rgba(layout Layout, sign Sign) PixelFormat {
	return Make(layout, sign, sign, sign, SwizzleX, SwizzleY, SwizzleZ, SwizzleW)
}

// RGBA8 is a 4x8-bit unsigned-normalized pixel, channel order R,G,B,A.
func RGBA8() PixelFormat { return rgba(Layout8_8_8_8, SignUnorm) }

// RGBA8Srgb is RGBA8 with sRGB-encoded channels.
func RGBA8Srgb() PixelFormat { return rgba(Layout8_8_8_8, SignGnorm) }

// RGBA8Uint is RGBA8 with unsigned-integer channels.
func RGBA8Uint() PixelFormat { return rgba(Layout8_8_8_8, SignUint) }

// RGBA8Snorm is RGBA8 with signed-normalized channels.
func RGBA8Snorm() PixelFormat { return rgba(Layout8_8_8_8, SignSnorm) }

// RGBA8Sint is RGBA8 with signed-integer channels.
func RGBA8Sint() PixelFormat { return rgba(Layout8_8_8_8, SignSint) }

// BGRA8 is a 4x8-bit unsigned-normalized pixel stored in memory order
// B,G,R,A but swizzled so its logical channel order is R,G,B,A.
func BGRA8() PixelFormat {
	return Make(Layout8_8_8_8, SignUnorm, SignUnorm, SignUnorm, SwizzleZ, SwizzleY, SwizzleX, SwizzleW)
}

// BGRX8 is BGRA8 with no alpha channel; the output alpha is always 1.0.
func BGRX8() PixelFormat {
	return Make(Layout8_8_8_8, SignUnorm, SignUnorm, SignUnorm, SwizzleZ, SwizzleY, SwizzleX, SwizzleConst1)
}

// R8Unorm is a single 8-bit unsigned-normalized channel.
func R8Unorm() PixelFormat {
	return Make(Layout8, SignUnorm, SignUnorm, SignUnorm, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}

// A8Unorm is a single 8-bit unsigned-normalized channel read out as alpha.
func A8Unorm() PixelFormat {
	return Make(Layout8, SignUnorm, SignUnorm, SignUnorm, SwizzleConst0, SwizzleConst0, SwizzleConst0, SwizzleX)
}

// R16Uint is a single 16-bit unsigned-integer channel.
func R16Uint() PixelFormat {
	return Make(Layout16, SignUint, SignUint, SignUint, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}

// R16Unorm is a single 16-bit unsigned-normalized channel.
func R16Unorm() PixelFormat {
	return Make(Layout16, SignUnorm, SignUnorm, SignUnorm, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}

// R16Float is a single 16-bit float channel.
func R16Float() PixelFormat {
	return Make(Layout16, SignFloat, SignFloat, SignFloat, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}

// R32Float is a single 32-bit float channel.
func R32Float() PixelFormat {
	return Make(Layout32, SignFloat, SignFloat, SignFloat, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}

// R32Uint is a single 32-bit unsigned-integer channel.
func R32Uint() PixelFormat {
	return Make(Layout32, SignUint, SignUint, SignUint, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}

// RG8Unorm is two 8-bit unsigned-normalized channels, R then G.
func RG8Unorm() PixelFormat {
	return Make(Layout8_8, SignUnorm, SignUnorm, SignUnorm, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
}

// RG16Float is two 16-bit float channels.
func RG16Float() PixelFormat {
	return Make(Layout16_16, SignFloat, SignFloat, SignFloat, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
}

// RGBA16Float is four 16-bit float channels.
func RGBA16Float() PixelFormat { return rgba(Layout16_16_16_16, SignFloat) }

// RGBA16Unorm is four 16-bit unsigned-normalized channels.
func RGBA16Unorm() PixelFormat { return rgba(Layout16_16_16_16, SignUnorm) }

// RGBA32Float is four 32-bit float channels, the format used for HDR loads.
func RGBA32Float() PixelFormat { return rgba(Layout32_32_32_32, SignFloat) }

// RGBA32Uint is four 32-bit unsigned-integer channels.
func RGBA32Uint() PixelFormat { return rgba(Layout32_32_32_32, SignUint) }

// RGB32Float is three 32-bit float channels; alpha reads back as 1.0.
func RGB32Float() PixelFormat {
	return Make(Layout32_32_32, SignFloat, SignFloat, SignFloat, SwizzleX, SwizzleY, SwizzleZ, SwizzleConst1)
}

// R11G11B10Float is a packed 32-bit float triple, alpha reads back as 1.0.
func R11G11B10Float() PixelFormat {
	return Make(Layout11_11_10, SignFloat, SignFloat, SignFloat, SwizzleX, SwizzleY, SwizzleZ, SwizzleConst1)
}

// RGB565Unorm is a packed 16-bit 5:6:5 unsigned-normalized triple.
func RGB565Unorm() PixelFormat {
	return Make(Layout5_6_5, SignUnorm, SignUnorm, SignUnorm, SwizzleX, SwizzleY, SwizzleZ, SwizzleConst1)
}

// BGR565Unorm matches the DXGI B5G6R5 memory layout (B in the low bits).
func BGR565Unorm() PixelFormat {
	return Make(Layout5_6_5, SignUnorm, SignUnorm, SignUnorm, SwizzleZ, SwizzleY, SwizzleX, SwizzleConst1)
}

// BGRA5551Unorm matches the DXGI B5G5R5A1 memory layout.
func BGRA5551Unorm() PixelFormat {
	return Make(Layout5_5_5_1, SignUnorm, SignUnorm, SignUnorm, SwizzleZ, SwizzleY, SwizzleX, SwizzleW)
}

// RGBA4444Unorm is a packed 16-bit 4:4:4:4 unsigned-normalized quad.
func RGBA4444Unorm() PixelFormat { return rgba(Layout4_4_4_4, SignUnorm) }

// RGB10A2Unorm is a packed 32-bit 10:10:10:2 unsigned-normalized quad.
func RGB10A2Unorm() PixelFormat { return rgba(Layout10_10_10_2, SignUnorm) }

// RGB10A2Uint is a packed 32-bit 10:10:10:2 unsigned-integer quad.
func RGB10A2Uint() PixelFormat { return rgba(Layout10_10_10_2, SignUint) }

// Depth24Stencil8 packs a 24-bit unsigned-normalized depth in the low bits
// and an 8-bit unsigned-integer stencil above it.
func Depth24Stencil8() PixelFormat {
	return Make(Layout24_8, SignUnorm, SignUint, SignUint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
}

// Depth32FloatStencil8X24 packs a 32-bit float depth, an 8-bit stencil, and
// 24 unused padding bits.
func Depth32FloatStencil8X24() PixelFormat {
	return Make(Layout32_8_24, SignFloat, SignUint, SignUint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
}

func bc(layout Layout, sign Sign) PixelFormat {
	return Make(layout, sign, sign, sign, SwizzleX, SwizzleY, SwizzleZ, SwizzleW)
}

// BC1Unorm is a DXT1/BC1 block (4x4, 8 bytes).
func BC1Unorm() PixelFormat { return bc(LayoutBC1, SignUnorm) }

// BC1Srgb is BC1Unorm with sRGB-encoded channels.
func BC1Srgb() PixelFormat { return bc(LayoutBC1, SignGnorm) }

// BC2Unorm is a DXT2/DXT3/BC2 block (4x4, 16 bytes).
func BC2Unorm() PixelFormat { return bc(LayoutBC2, SignUnorm) }

// BC2Srgb is BC2Unorm with sRGB-encoded channels.
func BC2Srgb() PixelFormat { return bc(LayoutBC2, SignGnorm) }

// BC3Unorm is a DXT4/DXT5/BC3 block (4x4, 16 bytes).
func BC3Unorm() PixelFormat { return bc(LayoutBC3, SignUnorm) }

// BC3Srgb is BC3Unorm with sRGB-encoded channels.
func BC3Srgb() PixelFormat { return bc(LayoutBC3, SignGnorm) }

// BC4Unorm is a single-channel BC4 block (4x4, 8 bytes).
func BC4Unorm() PixelFormat { return bc(LayoutBC4, SignUnorm) }

// BC4Snorm is BC4Unorm with signed-normalized channels.
func BC4Snorm() PixelFormat { return bc(LayoutBC4, SignSnorm) }

// BC5Unorm is a two-channel BC5 block (4x4, 16 bytes).
func BC5Unorm() PixelFormat { return bc(LayoutBC5, SignUnorm) }

// BC5Snorm is BC5Unorm with signed-normalized channels.
func BC5Snorm() PixelFormat { return bc(LayoutBC5, SignSnorm) }

// BC6HUf16 is an unsigned-float HDR BC6H block (4x4, 16 bytes).
func BC6HUf16() PixelFormat { return bc(LayoutBC6H, SignFloat) }

// BC6HSf16 is a signed-float HDR BC6H block (4x4, 16 bytes).
func BC6HSf16() PixelFormat { return bc(LayoutBC6H, SignFloat) }

// BC7Unorm is a BC7 block (4x4, 16 bytes).
func BC7Unorm() PixelFormat { return bc(LayoutBC7, SignUnorm) }

// BC7Srgb is BC7Unorm with sRGB-encoded channels.
func BC7Srgb() PixelFormat { return bc(LayoutBC7, SignGnorm) }

// ETC2RGBUnorm is an ETC2 RGB block (4x4, 8 bytes).
func ETC2RGBUnorm() PixelFormat { return bc(LayoutETC2RGB, SignUnorm) }

// ETC2RGBA1Unorm is an ETC2 RGB block with 1-bit punch-through alpha.
func ETC2RGBA1Unorm() PixelFormat { return bc(LayoutETC2RGBA1, SignUnorm) }

// ETC2RGBAUnorm is an ETC2_EAC RGBA block (4x4, 16 bytes).
func ETC2RGBAUnorm() PixelFormat { return bc(LayoutETC2RGBA, SignUnorm) }

// ETC2EACR11Unorm is a single-channel EAC R11 block (4x4, 8 bytes).
func ETC2EACR11Unorm() PixelFormat { return bc(LayoutETC2EACR11, SignUnorm) }

// ETC2EACRG11Unorm is a two-channel EAC RG11 block (4x4, 16 bytes).
func ETC2EACRG11Unorm() PixelFormat { return bc(LayoutETC2EACRG11, SignUnorm) }

func astc(layout Layout, sign Sign) PixelFormat { return bc(layout, sign) }

// ASTC4x4Unorm through ASTC12x12Unorm are LDR ASTC blocks at each of the
// fourteen supported block extents (all 16 bytes/block).
func ASTC4x4Unorm() PixelFormat   { return astc(LayoutASTC4x4, SignUnorm) }
func ASTC5x4Unorm() PixelFormat   { return astc(LayoutASTC5x4, SignUnorm) }
func ASTC5x5Unorm() PixelFormat   { return astc(LayoutASTC5x5, SignUnorm) }
func ASTC6x5Unorm() PixelFormat   { return astc(LayoutASTC6x5, SignUnorm) }
func ASTC6x6Unorm() PixelFormat   { return astc(LayoutASTC6x6, SignUnorm) }
func ASTC8x5Unorm() PixelFormat   { return astc(LayoutASTC8x5, SignUnorm) }
func ASTC8x6Unorm() PixelFormat   { return astc(LayoutASTC8x6, SignUnorm) }
func ASTC8x8Unorm() PixelFormat   { return astc(LayoutASTC8x8, SignUnorm) }
func ASTC10x5Unorm() PixelFormat  { return astc(LayoutASTC10x5, SignUnorm) }
func ASTC10x6Unorm() PixelFormat  { return astc(LayoutASTC10x6, SignUnorm) }
func ASTC10x8Unorm() PixelFormat  { return astc(LayoutASTC10x8, SignUnorm) }
func ASTC10x10Unorm() PixelFormat { return astc(LayoutASTC10x10, SignUnorm) }
func ASTC12x10Unorm() PixelFormat { return astc(LayoutASTC12x10, SignUnorm) }
func ASTC12x12Unorm() PixelFormat { return astc(LayoutASTC12x12, SignUnorm) }

// ASTC6x6Sfloat is the HDR ASTC variant named in the image-engine test
// scenarios (6x6 block, signed-float sign preserved but not converted).
func ASTC6x6Sfloat() PixelFormat { return astc(LayoutASTC6x6, SignFloat) }

// GRGBUnorm and RGBGUnorm are the packed video macroblock layouts (2x1
// block, 4 bytes): G8R8_G8B8 and R8G8_B8G8 respectively.
func GRGBUnorm() PixelFormat { return rgba(LayoutGRGB, SignUnorm) }
func RGBGUnorm() PixelFormat { return rgba(LayoutRGBG, SignUnorm) }

// R1Unorm is the 1-bit-per-pixel packed layout.
func R1Unorm() PixelFormat {
	return Make(Layout1, SignUnorm, SignUnorm, SignUnorm, SwizzleConst0, SwizzleConst0, SwizzleConst0, SwizzleConst1)
}
