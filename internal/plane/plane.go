// Package plane implements PlaneDesc: the geometry and byte spacing of a
// single 1D/2D/3D plane of pixel blocks, plus the float4 conversions that
// walk a plane's bytes.
package plane

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/bits"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/rerr"
)

// Extent is a plane's dimensions in pixels.
type Extent struct{ W, H, D int }

// Coord is a plane's position within an owning image: array element, cube
// face, and mip level.
type Coord struct{ Array, Face, Level int }

// Desc describes one plane: its format, pixel extent, and byte spacing.
// Desc is pure metadata; it never owns pixel bytes.
type Desc struct {
	Format    pixfmt.PixelFormat
	Extent    Extent
	Step      int // bytes between adjacent blocks along X
	Pitch     int // bytes between adjacent block rows along Y
	Slice     int // bytes between adjacent Z slices
	Size      int // = Slice * Extent.D
	Offset    int // absolute byte offset inside the owning image
	Alignment int // power-of-two byte alignment, default 4
}

func nextMultiple(v, align int) int {
	if align <= 1 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

func numBlocks(dim, block int) int {
	if block <= 0 {
		block = 1
	}
	return (dim + block - 1) / block
}

// Make computes step/pitch/slice/size from the requested minimums and
// returns a fully resolved, valid Desc. Zero extent components are
// normalized to 1. alignment must be a power of two; 0 defaults to 4.
func Make(format pixfmt.PixelFormat, extent Extent, step, pitch, slice, alignment int) (Desc, error) {
	if alignment == 0 {
		alignment = 4
	}
	if alignment <= 0 || bits.OnesCount(uint(alignment)) != 1 {
		return Desc{}, fmt.Errorf("plane.Make: alignment %d is not a power of two: %w", alignment, rerr.ErrInvalidDescriptor)
	}
	if !format.Valid() {
		return Desc{}, fmt.Errorf("plane.Make: %w", rerr.ErrInvalidFormat)
	}

	if extent.W <= 0 {
		extent.W = 1
	}
	if extent.H <= 0 {
		extent.H = 1
	}
	if extent.D <= 0 {
		extent.D = 1
	}

	bw, bh, bb := format.BlockWidth(), format.BlockHeight(), format.BlockBytes()
	blocksX := numBlocks(extent.W, bw)
	blocksY := numBlocks(extent.H, bh)

	if step < bb {
		step = bb
	}
	minPitch := step * blocksX
	if pitch < minPitch {
		pitch = minPitch
	}
	pitch = nextMultiple(pitch, alignment)

	minSlice := pitch * blocksY
	if slice < minSlice {
		slice = minSlice
	}
	slice = nextMultiple(slice, alignment)

	d := Desc{
		Format:    format,
		Extent:    extent,
		Step:      step,
		Pitch:     pitch,
		Slice:     slice,
		Size:      slice * extent.D,
		Alignment: alignment,
	}
	if !d.Valid() {
		return Desc{}, fmt.Errorf("plane.Make: resolved descriptor failed validation: %w", rerr.ErrInvalidDescriptor)
	}
	return d, nil
}

// Valid reports whether d's spacing is internally consistent.
func (d Desc) Valid() bool {
	if !d.Format.Valid() {
		return false
	}
	if d.Extent.W <= 0 || d.Extent.H <= 0 || d.Extent.D <= 0 {
		return false
	}
	if d.Alignment <= 0 || bits.OnesCount(uint(d.Alignment)) != 1 {
		return false
	}
	bw, bh, bb := d.Format.BlockWidth(), d.Format.BlockHeight(), d.Format.BlockBytes()
	blocksX := numBlocks(d.Extent.W, bw)
	blocksY := numBlocks(d.Extent.H, bh)
	if d.Step < bb {
		return false
	}
	if d.Pitch < d.Step*blocksX || d.Pitch%d.Alignment != 0 {
		return false
	}
	if d.Slice < d.Pitch*blocksY || d.Slice%d.Alignment != 0 {
		return false
	}
	if d.Size != d.Slice*d.Extent.D {
		return false
	}
	return true
}

// Hash returns an FNV-1a digest over every geometry field, keyed the same
// way as pixfmt.PixelFormat.Hash so a mipmap-chain cache can use either as
// a map key.
func (d Desc) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, v := range []uint32{
		d.Format.ToU32(),
		uint32(d.Extent.W), uint32(d.Extent.H), uint32(d.Extent.D),
		uint32(d.Step), uint32(d.Pitch), uint32(d.Slice),
		uint32(d.Size), uint32(d.Offset), uint32(d.Alignment),
	} {
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Pixel returns the byte offset of the block containing pixel (x,y,z),
// measured from the start of the image blob (it includes the plane's own
// Offset). x, y, and z must be in range and aligned
// to the format's block dimensions.
func (d Desc) Pixel(x, y, z int) (int, error) {
	if x < 0 || x >= d.Extent.W || y < 0 || y >= d.Extent.H || z < 0 || z >= d.Extent.D {
		return 0, fmt.Errorf("plane.Pixel: (%d,%d,%d) out of range %+v: %w", x, y, z, d.Extent, rerr.ErrInvalidDescriptor)
	}
	bw, bh := d.Format.BlockWidth(), d.Format.BlockHeight()
	if x%bw != 0 || y%bh != 0 {
		return 0, fmt.Errorf("plane.Pixel: (%d,%d) not aligned to block %dx%d: %w", x, y, bw, bh, rerr.ErrInvalidDescriptor)
	}
	return d.Offset + z*d.Slice + (y/bh)*d.Pitch + (x/bw)*d.Step, nil
}

// ToFloat4 decodes every pixel of an uncompressed plane, row-major
// (z, y, x), into a Float4 slice of length W*H*D.
func (d Desc) ToFloat4(bytes []byte) ([]pixfmt.Float4, error) {
	if d.Format.Compressed() {
		return nil, fmt.Errorf("plane.ToFloat4: compressed format %s: %w", d.Format.Layout(), rerr.ErrUnsupportedConversion)
	}
	out := make([]pixfmt.Float4, 0, d.Extent.W*d.Extent.H*d.Extent.D)
	bb := d.Format.BlockBytes()
	for z := 0; z < d.Extent.D; z++ {
		for y := 0; y < d.Extent.H; y++ {
			for x := 0; x < d.Extent.W; x++ {
				off, err := d.Pixel(x, y, z)
				if err != nil {
					return nil, err
				}
				rel := off - d.Offset
				if rel+bb > len(bytes) {
					return nil, fmt.Errorf("plane.ToFloat4: pixel (%d,%d,%d) out of bounds: %w", x, y, z, rerr.ErrInvalidDescriptor)
				}
				v, err := d.Format.StoreToFloat4(bytes[rel : rel+bb])
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
		}
	}
	return out, nil
}

// ToRGBA8 decodes every pixel like ToFloat4, then clamps and scales each
// component into an interleaved 8-bit RGBA byte slice.
func (d Desc) ToRGBA8(bytes []byte) ([]byte, error) {
	v4s, err := d.ToFloat4(bytes)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(v4s)*4)
	for i, v := range v4s {
		for c := 0; c < 4; c++ {
			f := v[c]
			if f < 0 {
				f = 0
			}
			if f > 1 {
				f = 1
			}
			out[i*4+c] = byte(f*255 + 0.5)
		}
	}
	return out, nil
}

// FromFloat4 writes one Z slice (dstZ) back into dst from a contiguous
// Float4 buffer src of length W*H, bounds-checking every destination pixel
// before copying its encoded bytes.
func (d Desc) FromFloat4(dst []byte, dstZ int, src []pixfmt.Float4) error {
	if d.Format.Compressed() {
		return fmt.Errorf("plane.FromFloat4: compressed format %s: %w", d.Format.Layout(), rerr.ErrUnsupportedConversion)
	}
	if len(src) != d.Extent.W*d.Extent.H {
		return fmt.Errorf("plane.FromFloat4: src length %d != %d: %w", len(src), d.Extent.W*d.Extent.H, rerr.ErrInvalidDescriptor)
	}
	bb := d.Format.BlockBytes()
	i := 0
	for y := 0; y < d.Extent.H; y++ {
		for x := 0; x < d.Extent.W; x++ {
			off, err := d.Pixel(x, y, dstZ)
			if err != nil {
				return err
			}
			rel := off - d.Offset
			if rel+bb > len(dst) {
				return fmt.Errorf("plane.FromFloat4: pixel (%d,%d,%d) out of bounds: %w", x, y, dstZ, rerr.ErrInvalidDescriptor)
			}
			p, err := d.Format.LoadFromFloat4(src[i])
			if err != nil {
				return err
			}
			copy(dst[rel:rel+bb], d.Format.Bytes(p))
			i++
		}
	}
	return nil
}
