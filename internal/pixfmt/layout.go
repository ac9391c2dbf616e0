package pixfmt

// Layout indexes the static table of pixel layouts. Zero is the empty/
// unknown layout; every other value names an entry in layoutTable.
type Layout uint8

// channelDesc locates one channel's bits within a block.
type channelDesc struct {
	shift uint8
	bits  uint8
}

// layoutInfo is one row of the layout table: block geometry plus, for
// uncompressed layouts, the per-channel bit placement. Compressed layouts
// carry a zeroed channel array.
type layoutInfo struct {
	name        string
	blockWidth  uint8
	blockHeight uint8
	blockBytes  uint8
	numChannels uint8
	channels    [4]channelDesc
}

// Named layout constants. The table is a closed, process-wide constant: new
// formats are never added at runtime.
const (
	LayoutUnknown Layout = iota

	// Single bit per pixel, 8 pixels packed per byte block.
	Layout1

	// Uncompressed, 1 channel.
	Layout8
	Layout16
	Layout24
	Layout32

	// Uncompressed, 2 channels.
	Layout8_8
	Layout16_16
	Layout32_32

	// Uncompressed, 3 channels.
	Layout8_8_8
	Layout16_16_16
	Layout32_32_32
	Layout11_11_10
	Layout5_6_5

	// Uncompressed, 4 channels.
	Layout8_8_8_8
	Layout16_16_16_16
	Layout32_32_32_32
	Layout10_10_10_2
	Layout5_5_5_1
	Layout4_4_4_4

	// Depth/stencil combinations.
	Layout8_24
	Layout24_8
	Layout32_8_24

	// Packed video macroblock layouts.
	LayoutGRGB
	LayoutRGBG

	// Block-compressed BC1-BC7.
	LayoutBC1
	LayoutBC2
	LayoutBC3
	LayoutBC4
	LayoutBC5
	LayoutBC6H
	LayoutBC7

	// ETC2 / ETC2_EAC.
	LayoutETC2RGB
	LayoutETC2RGBA1
	LayoutETC2RGBA
	LayoutETC2EACR11
	LayoutETC2EACRG11

	// ASTC, one entry per block extent.
	LayoutASTC4x4
	LayoutASTC5x4
	LayoutASTC5x5
	LayoutASTC6x5
	LayoutASTC6x6
	LayoutASTC8x5
	LayoutASTC8x6
	LayoutASTC8x8
	LayoutASTC10x5
	LayoutASTC10x6
	LayoutASTC10x8
	LayoutASTC10x10
	LayoutASTC12x10
	LayoutASTC12x12

	numLayouts
)

// NumLayouts is the number of defined layouts, including LayoutUnknown.
const NumLayouts = int(numLayouts)

func ch(shift, bits int) channelDesc { return channelDesc{shift: uint8(shift), bits: uint8(bits)} }

var layoutTable = [numLayouts]layoutInfo{
	LayoutUnknown: {name: "UNKNOWN"},

	Layout1: {name: "L1", blockWidth: 8, blockHeight: 1, blockBytes: 1},

	Layout8:  {name: "8", blockWidth: 1, blockHeight: 1, blockBytes: 1, numChannels: 1, channels: [4]channelDesc{ch(0, 8)}},
	Layout16: {name: "16", blockWidth: 1, blockHeight: 1, blockBytes: 2, numChannels: 1, channels: [4]channelDesc{ch(0, 16)}},
	Layout24: {name: "24", blockWidth: 1, blockHeight: 1, blockBytes: 3, numChannels: 1, channels: [4]channelDesc{ch(0, 24)}},
	Layout32: {name: "32", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 1, channels: [4]channelDesc{ch(0, 32)}},

	Layout8_8:   {name: "8_8", blockWidth: 1, blockHeight: 1, blockBytes: 2, numChannels: 2, channels: [4]channelDesc{ch(0, 8), ch(8, 8)}},
	Layout16_16: {name: "16_16", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 2, channels: [4]channelDesc{ch(0, 16), ch(16, 16)}},
	Layout32_32: {name: "32_32", blockWidth: 1, blockHeight: 1, blockBytes: 8, numChannels: 2, channels: [4]channelDesc{ch(0, 32), ch(32, 32)}},

	Layout8_8_8:    {name: "8_8_8", blockWidth: 1, blockHeight: 1, blockBytes: 3, numChannels: 3, channels: [4]channelDesc{ch(0, 8), ch(8, 8), ch(16, 8)}},
	Layout16_16_16: {name: "16_16_16", blockWidth: 1, blockHeight: 1, blockBytes: 6, numChannels: 3, channels: [4]channelDesc{ch(0, 16), ch(16, 16), ch(32, 16)}},
	Layout32_32_32: {name: "32_32_32", blockWidth: 1, blockHeight: 1, blockBytes: 12, numChannels: 3, channels: [4]channelDesc{ch(0, 32), ch(32, 32), ch(64, 32)}},
	Layout11_11_10: {name: "11_11_10", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 3, channels: [4]channelDesc{ch(0, 11), ch(11, 11), ch(22, 10)}},
	Layout5_6_5:    {name: "5_6_5", blockWidth: 1, blockHeight: 1, blockBytes: 2, numChannels: 3, channels: [4]channelDesc{ch(0, 5), ch(5, 6), ch(11, 5)}},

	Layout8_8_8_8:     {name: "8_8_8_8", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 4, channels: [4]channelDesc{ch(0, 8), ch(8, 8), ch(16, 8), ch(24, 8)}},
	Layout16_16_16_16: {name: "16_16_16_16", blockWidth: 1, blockHeight: 1, blockBytes: 8, numChannels: 4, channels: [4]channelDesc{ch(0, 16), ch(16, 16), ch(32, 16), ch(48, 16)}},
	Layout32_32_32_32: {name: "32_32_32_32", blockWidth: 1, blockHeight: 1, blockBytes: 16, numChannels: 4, channels: [4]channelDesc{ch(0, 32), ch(32, 32), ch(64, 32), ch(96, 32)}},
	Layout10_10_10_2:  {name: "10_10_10_2", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 4, channels: [4]channelDesc{ch(0, 10), ch(10, 10), ch(20, 10), ch(30, 2)}},
	Layout5_5_5_1:     {name: "5_5_5_1", blockWidth: 1, blockHeight: 1, blockBytes: 2, numChannels: 4, channels: [4]channelDesc{ch(0, 5), ch(5, 5), ch(10, 5), ch(15, 1)}},
	Layout4_4_4_4:     {name: "4_4_4_4", blockWidth: 1, blockHeight: 1, blockBytes: 2, numChannels: 4, channels: [4]channelDesc{ch(0, 4), ch(4, 4), ch(8, 4), ch(12, 4)}},

	Layout8_24:    {name: "8_24", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 2, channels: [4]channelDesc{ch(0, 8), ch(8, 24)}},
	Layout24_8:    {name: "24_8", blockWidth: 1, blockHeight: 1, blockBytes: 4, numChannels: 2, channels: [4]channelDesc{ch(0, 24), ch(24, 8)}},
	Layout32_8_24: {name: "32_8_24", blockWidth: 1, blockHeight: 1, blockBytes: 8, numChannels: 3, channels: [4]channelDesc{ch(0, 32), ch(32, 8), ch(40, 24)}},

	LayoutGRGB: {name: "GRGB", blockWidth: 2, blockHeight: 1, blockBytes: 4, numChannels: 4, channels: [4]channelDesc{ch(8, 8), ch(0, 8), ch(24, 8), ch(16, 8)}},
	LayoutRGBG: {name: "RGBG", blockWidth: 2, blockHeight: 1, blockBytes: 4, numChannels: 4, channels: [4]channelDesc{ch(0, 8), ch(8, 8), ch(16, 8), ch(24, 8)}},

	LayoutBC1:  {name: "BC1", blockWidth: 4, blockHeight: 4, blockBytes: 8},
	LayoutBC2:  {name: "BC2", blockWidth: 4, blockHeight: 4, blockBytes: 16},
	LayoutBC3:  {name: "BC3", blockWidth: 4, blockHeight: 4, blockBytes: 16},
	LayoutBC4:  {name: "BC4", blockWidth: 4, blockHeight: 4, blockBytes: 8},
	LayoutBC5:  {name: "BC5", blockWidth: 4, blockHeight: 4, blockBytes: 16},
	LayoutBC6H: {name: "BC6H", blockWidth: 4, blockHeight: 4, blockBytes: 16},
	LayoutBC7:  {name: "BC7", blockWidth: 4, blockHeight: 4, blockBytes: 16},

	LayoutETC2RGB:     {name: "ETC2_RGB", blockWidth: 4, blockHeight: 4, blockBytes: 8},
	LayoutETC2RGBA1:   {name: "ETC2_RGBA1", blockWidth: 4, blockHeight: 4, blockBytes: 8},
	LayoutETC2RGBA:    {name: "ETC2_EAC_RGBA", blockWidth: 4, blockHeight: 4, blockBytes: 16},
	LayoutETC2EACR11:  {name: "ETC2_EAC_R11", blockWidth: 4, blockHeight: 4, blockBytes: 8},
	LayoutETC2EACRG11: {name: "ETC2_EAC_RG11", blockWidth: 4, blockHeight: 4, blockBytes: 16},

	LayoutASTC4x4:   {name: "ASTC_4x4", blockWidth: 4, blockHeight: 4, blockBytes: 16},
	LayoutASTC5x4:   {name: "ASTC_5x4", blockWidth: 5, blockHeight: 4, blockBytes: 16},
	LayoutASTC5x5:   {name: "ASTC_5x5", blockWidth: 5, blockHeight: 5, blockBytes: 16},
	LayoutASTC6x5:   {name: "ASTC_6x5", blockWidth: 6, blockHeight: 5, blockBytes: 16},
	LayoutASTC6x6:   {name: "ASTC_6x6", blockWidth: 6, blockHeight: 6, blockBytes: 16},
	LayoutASTC8x5:   {name: "ASTC_8x5", blockWidth: 8, blockHeight: 5, blockBytes: 16},
	LayoutASTC8x6:   {name: "ASTC_8x6", blockWidth: 8, blockHeight: 6, blockBytes: 16},
	LayoutASTC8x8:   {name: "ASTC_8x8", blockWidth: 8, blockHeight: 8, blockBytes: 16},
	LayoutASTC10x5:  {name: "ASTC_10x5", blockWidth: 10, blockHeight: 5, blockBytes: 16},
	LayoutASTC10x6:  {name: "ASTC_10x6", blockWidth: 10, blockHeight: 6, blockBytes: 16},
	LayoutASTC10x8:  {name: "ASTC_10x8", blockWidth: 10, blockHeight: 8, blockBytes: 16},
	LayoutASTC10x10: {name: "ASTC_10x10", blockWidth: 10, blockHeight: 10, blockBytes: 16},
	LayoutASTC12x10: {name: "ASTC_12x10", blockWidth: 12, blockHeight: 10, blockBytes: 16},
	LayoutASTC12x12: {name: "ASTC_12x12", blockWidth: 12, blockHeight: 12, blockBytes: 16},
}

// Valid reports whether l indexes a defined, non-empty layout entry.
func (l Layout) Valid() bool { return l > LayoutUnknown && l < numLayouts }

func (l Layout) info() layoutInfo {
	if l >= numLayouts {
		return layoutInfo{}
	}
	return layoutTable[l]
}

// BlockWidth, BlockHeight, and BlockBytes describe the minimum addressable
// rectangle of pixels for this layout, and its encoded byte size.
func (l Layout) BlockWidth() int  { return int(l.info().blockWidth) }
func (l Layout) BlockHeight() int { return int(l.info().blockHeight) }
func (l Layout) BlockBytes() int  { return int(l.info().blockBytes) }
func (l Layout) NumChannels() int { return int(l.info().numChannels) }

// Compressed reports whether a block covers more than a single pixel.
func (l Layout) Compressed() bool {
	i := l.info()
	return i.blockWidth > 1 || i.blockHeight > 1
}

func (l Layout) String() string {
	if l >= numLayouts {
		return "UNKNOWN"
	}
	return layoutTable[l].name
}
