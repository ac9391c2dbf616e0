package pixfmt

// dxgiTable maps each DXGI_FORMAT code 0..88 to exactly one PixelFormat. It
// is built once at package init and never mutated afterward, making it a
// process-wide constant in all but syntax.
const numDXGIFormats = 89

var dxgiTable = buildDXGITable()

func buildDXGITable() [numDXGIFormats]PixelFormat {
	var t [numDXGIFormats]PixelFormat

	t[2] = RGBA32Float()  // R32G32B32A32_FLOAT
	t[3] = RGBA32Uint()   // R32G32B32A32_UINT
	t[4] = rgba(Layout32_32_32_32, SignSint)

	t[6] = RGB32Float() // R32G32B32_FLOAT
	t[7] = Make(Layout32_32_32, SignUint, SignUint, SignUint, SwizzleX, SwizzleY, SwizzleZ, SwizzleConst1)
	t[8] = Make(Layout32_32_32, SignSint, SignSint, SignSint, SwizzleX, SwizzleY, SwizzleZ, SwizzleConst1)

	t[10] = RGBA16Float() // R16G16B16A16_FLOAT
	t[11] = RGBA16Unorm()
	t[12] = rgba(Layout16_16_16_16, SignUint)
	t[13] = rgba(Layout16_16_16_16, SignSnorm)
	t[14] = rgba(Layout16_16_16_16, SignSint)

	t[16] = Make(Layout32_32, SignFloat, SignFloat, SignFloat, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1) // R32G32_FLOAT
	t[17] = Make(Layout32_32, SignUint, SignUint, SignUint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
	t[18] = Make(Layout32_32, SignSint, SignSint, SignSint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)

	t[20] = Depth32FloatStencil8X24() // D32_FLOAT_S8X24_UINT

	t[24] = RGB10A2Unorm() // R10G10B10A2_UNORM
	t[25] = RGB10A2Uint()

	t[26] = R11G11B10Float() // R11G11B10_FLOAT

	t[28] = RGBA8()     // R8G8B8A8_UNORM
	t[29] = RGBA8Srgb() // R8G8B8A8_UNORM_SRGB
	t[30] = RGBA8Uint()
	t[31] = RGBA8Snorm()
	t[32] = RGBA8Sint()

	t[34] = RG16Float() // R16G16_FLOAT
	t[35] = Make(Layout16_16, SignUnorm, SignUnorm, SignUnorm, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
	t[36] = Make(Layout16_16, SignUint, SignUint, SignUint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
	t[37] = Make(Layout16_16, SignSnorm, SignSnorm, SignSnorm, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
	t[38] = Make(Layout16_16, SignSint, SignSint, SignSint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)

	t[40] = R32Float() // D32_FLOAT
	t[41] = R32Float() // R32_FLOAT
	t[42] = R32Uint()
	t[43] = Make(Layout32, SignSint, SignSint, SignSint, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)

	t[45] = Depth24Stencil8() // D24_UNORM_S8_UINT

	t[49] = RG8Unorm() // R8G8_UNORM
	t[50] = Make(Layout8_8, SignUint, SignUint, SignUint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
	t[51] = Make(Layout8_8, SignSnorm, SignSnorm, SignSnorm, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)
	t[52] = Make(Layout8_8, SignSint, SignSint, SignSint, SwizzleX, SwizzleY, SwizzleConst0, SwizzleConst1)

	t[54] = R16Float() // R16_FLOAT
	t[55] = R16Unorm() // D16_UNORM
	t[56] = R16Unorm() // R16_UNORM
	t[57] = R16Uint()
	t[58] = Make(Layout16, SignSnorm, SignSnorm, SignSnorm, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
	t[59] = Make(Layout16, SignSint, SignSint, SignSint, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)

	t[61] = R8Unorm() // R8_UNORM
	t[62] = Make(Layout8, SignUint, SignUint, SignUint, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
	t[63] = Make(Layout8, SignSnorm, SignSnorm, SignSnorm, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
	t[64] = Make(Layout8, SignSint, SignSint, SignSint, SwizzleX, SwizzleConst0, SwizzleConst0, SwizzleConst1)
	t[65] = A8Unorm() // A8_UNORM

	t[66] = R1Unorm() // R1_UNORM

	t[68] = RGBGUnorm() // R8G8_B8G8_UNORM
	t[69] = GRGBUnorm() // G8R8_G8B8_UNORM

	t[71] = BC1Unorm() // BC1_UNORM
	t[72] = BC1Srgb()

	t[74] = BC2Unorm() // BC2_UNORM
	t[75] = BC2Srgb()

	t[77] = BC3Unorm() // BC3_UNORM
	t[78] = BC3Srgb()

	t[80] = BC4Unorm() // BC4_UNORM
	t[81] = BC4Snorm()

	t[83] = BC5Unorm() // BC5_UNORM
	t[84] = BC5Snorm()

	t[85] = BGR565Unorm()   // B5G6R5_UNORM
	t[86] = BGRA5551Unorm() // B5G5R5A1_UNORM
	t[87] = BGRA8()         // B8G8R8A8_UNORM
	t[88] = BGRX8()         // B8G8R8X8_UNORM

	return t
}

// FromDXGI maps a DXGI_FORMAT code (0..88) to its PixelFormat. Unknown or
// out-of-range codes yield Unknown().
func FromDXGI(code int) PixelFormat {
	if code < 0 || code >= numDXGIFormats {
		return Unknown()
	}
	return dxgiTable[code]
}

// ToDXGI linearly searches the table for the first code mapping to f, or
// returns 0 (DXGI_FORMAT_UNKNOWN) if none matches.
func (f PixelFormat) ToDXGI() int {
	for i, pf := range dxgiTable {
		if i == 0 {
			continue
		}
		if pf == f {
			return i
		}
	}
	return 0
}
