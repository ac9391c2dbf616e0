// Package pixfmt implements the 32-bit pixel-format descriptor: its packed
// bit layout, validation, string form, DXGI bridge, and the canonical
// float4 encode/decode used by every other layer of the image engine.
package pixfmt

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Swizzle names, for one output channel, the source channel or constant
// that feeds it.
type Swizzle uint8

const (
	SwizzleConst0 Swizzle = iota // literal 0.0
	SwizzleConst1                // literal 1.0
	SwizzleX                     // source channel 0
	SwizzleY                     // source channel 1
	SwizzleZ                     // source channel 2
	SwizzleW                     // source channel 3
	numSwizzles
)

func (s Swizzle) valid() bool { return s < numSwizzles }

func (s Swizzle) String() string {
	switch s {
	case SwizzleConst0:
		return "0"
	case SwizzleConst1:
		return "1"
	case SwizzleX:
		return "X"
	case SwizzleY:
		return "Y"
	case SwizzleZ:
		return "Z"
	case SwizzleW:
		return "W"
	default:
		return "?"
	}
}

// channelIndex returns the source channel index this swizzle names, or -1
// for the constant swizzles.
func (s Swizzle) channelIndex() int {
	if s < SwizzleX {
		return -1
	}
	return int(s - SwizzleX)
}

// PixelFormat is the 32-bit packed descriptor. The zero value is
// LayoutUnknown, the empty format.
type PixelFormat uint32

const (
	shiftLayout   = 0
	shiftReserved = 7
	shiftSign0    = 8
	shiftSign12   = 12
	shiftSign3    = 16
	shiftSwizzle0 = 20
	shiftSwizzle1 = 23
	shiftSwizzle2 = 26
	shiftSwizzle3 = 29

	maskLayout = 0x7f
	maskSign   = 0xf
	maskSwiz   = 0x7
)

// Make packs the given fields into a PixelFormat. It performs only field
// masking; it does not validate that the chosen signs match the layout's
// channel widths.
func Make(layout Layout, sign0, sign12, sign3 Sign, sw0, sw1, sw2, sw3 Swizzle) PixelFormat {
	var v uint32
	v |= uint32(layout) & maskLayout
	v |= (uint32(sign0) & maskSign) << shiftSign0
	v |= (uint32(sign12) & maskSign) << shiftSign12
	v |= (uint32(sign3) & maskSign) << shiftSign3
	v |= (uint32(sw0) & maskSwiz) << shiftSwizzle0
	v |= (uint32(sw1) & maskSwiz) << shiftSwizzle1
	v |= (uint32(sw2) & maskSwiz) << shiftSwizzle2
	v |= (uint32(sw3) & maskSwiz) << shiftSwizzle3
	return PixelFormat(v)
}

// FromU32 reinterprets a raw 32-bit encoding as a PixelFormat, verbatim.
func FromU32(v uint32) PixelFormat { return PixelFormat(v) }

// ToU32 returns the raw 32-bit encoding.
func (f PixelFormat) ToU32() uint32 { return uint32(f) }

// Layout returns the format's layout field.
func (f PixelFormat) Layout() Layout { return Layout(uint32(f) >> shiftLayout & maskLayout) }

func (f PixelFormat) sign(group int) Sign {
	switch group {
	case 0:
		return Sign(uint32(f) >> shiftSign0 & maskSign)
	case 1:
		return Sign(uint32(f) >> shiftSign12 & maskSign)
	default:
		return Sign(uint32(f) >> shiftSign3 & maskSign)
	}
}

// Sign0, Sign12, and Sign3 return the three sign fields.
func (f PixelFormat) Sign0() Sign  { return f.sign(0) }
func (f PixelFormat) Sign12() Sign { return f.sign(1) }
func (f PixelFormat) Sign3() Sign  { return f.sign(2) }

func (f PixelFormat) reserved() uint32 { return uint32(f) >> shiftReserved & 0x1 }

func (f PixelFormat) swizzle(slot int) Swizzle {
	shift := []int{shiftSwizzle0, shiftSwizzle1, shiftSwizzle2, shiftSwizzle3}[slot]
	return Swizzle(uint32(f) >> uint(shift) & maskSwiz)
}

// Swizzle returns the swizzle selector for output channel slot (0..3).
func (f PixelFormat) Swizzle(slot int) Swizzle { return f.swizzle(slot) }

// signForChannel returns the sign group that governs channel index c (0..3).
func (f PixelFormat) signForChannel(c int) Sign {
	switch c {
	case 0:
		return f.Sign0()
	case 3:
		return f.Sign3()
	default:
		return f.Sign12()
	}
}

// Empty reports whether f is the zero/unknown format.
func (f PixelFormat) Empty() bool { return f.Layout() == LayoutUnknown }

// Valid reports whether every field of f is within range and reserved is
// clear. It does not check that signs or swizzles make semantic sense for
// the layout.
func (f PixelFormat) Valid() bool {
	if !f.Layout().Valid() {
		return false
	}
	if f.reserved() != 0 {
		return false
	}
	for g := 0; g < 3; g++ {
		if !f.sign(g).Valid() {
			return false
		}
	}
	for slot := 0; slot < 4; slot++ {
		if !f.swizzle(slot).valid() {
			return false
		}
	}
	return true
}

// Less implements a total order over the 32-bit encoding.
func (f PixelFormat) Less(other PixelFormat) bool { return uint32(f) < uint32(other) }

func (f PixelFormat) String() string {
	return fmt.Sprintf("%s-sign0(%s)-sign12(%s)-sign3(%s)-%s%s%s%s",
		f.Layout(), f.Sign0(), f.Sign12(), f.Sign3(),
		f.swizzle(0), f.swizzle(1), f.swizzle(2), f.swizzle(3))
}

// BlockWidth, BlockHeight, and BlockBytes delegate to the layout table.
func (f PixelFormat) BlockWidth() int  { return f.Layout().BlockWidth() }
func (f PixelFormat) BlockHeight() int { return f.Layout().BlockHeight() }
func (f PixelFormat) BlockBytes() int  { return f.Layout().BlockBytes() }
func (f PixelFormat) Compressed() bool { return f.Layout().Compressed() }

// channelBits returns the bit width of source channel c (0..3), or 0 if the
// layout has no such channel.
func (f PixelFormat) channelBits(c int) int {
	info := f.Layout().info()
	if c < 0 || c >= int(info.numChannels) {
		return 0
	}
	return int(info.channels[c].bits)
}

func (f PixelFormat) channelShift(c int) int {
	return int(f.Layout().info().channels[c].shift)
}

// Hash returns an FNV-1a digest of the packed encoding, so PixelFormat can
// key a map without relying on Go's struct-by-value hashing (which this
// type already gets for free, but callers that also hash PlaneDesc want a
// consistent scheme across both).
func (f PixelFormat) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(f))
	h.Write(buf[:])
	return h.Sum64()
}
