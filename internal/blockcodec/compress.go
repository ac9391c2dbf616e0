package blockcodec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

// CompressBC1 encodes an RGBA8 plane into BC1 (DXT1) blocks: one 8-byte
// color block per 4x4 texel group, alpha discarded. Texels past the
// source extent (for dimensions not a multiple of 4) are treated as
// transparent black, matching the reference block-compressor.
func CompressBC1(src plane.Desc, rgbaBytes []byte) (plane.Desc, []byte, error) {
	return compressBlocks(src, rgbaBytes, pixfmt.BC1Unorm(), false)
}

// CompressBC3 encodes an RGBA8 plane into BC3 (DXT5) blocks: an 8-byte
// interpolated alpha block followed by an 8-byte PCA color block per 4x4
// texel group.
func CompressBC3(src plane.Desc, rgbaBytes []byte) (plane.Desc, []byte, error) {
	return compressBlocks(src, rgbaBytes, pixfmt.BC3Unorm(), true)
}

func compressBlocks(src plane.Desc, rgbaBytes []byte, dstFormat pixfmt.PixelFormat, withAlpha bool) (plane.Desc, []byte, error) {
	if src.Format != pixfmt.RGBA8() {
		return plane.Desc{}, nil, fmt.Errorf("blockcodec.compressBlocks: source format %s is not RGBA8: %w", src.Format.Layout(), rerr.ErrUnsupportedConversion)
	}

	out, err := plane.Make(dstFormat, src.Extent, 0, 0, 0, 4)
	if err != nil {
		return plane.Desc{}, nil, err
	}

	width, height := src.Extent.W, src.Extent.H
	blocksAcross := (width + 3) / 4
	blocksDown := (height + 3) / 4
	blockBytes := out.Format.BlockBytes()
	dst := make([]byte, out.Size)

	for bz := 0; bz < src.Extent.D; bz++ {
		for by := 0; by < blocksDown; by++ {
			for bx := 0; bx < blocksAcross; bx++ {
				var px [16]rgba8
				i := 0
				for dy := 0; dy < 4; dy++ {
					for dx := 0; dx < 4; dx++ {
						x, y := bx*4+dx, by*4+dy
						if x < width && y < height {
							off, err := src.Pixel(x, y, bz)
							if err != nil {
								return plane.Desc{}, nil, err
							}
							rel := off - src.Offset
							px[i] = rgba8{rgbaBytes[rel], rgbaBytes[rel+1], rgbaBytes[rel+2], rgbaBytes[rel+3]}
						}
						i++
					}
				}

				blockOff, err := out.Pixel(bx*4, by*4, bz)
				if err != nil {
					return plane.Desc{}, nil, err
				}
				rel := blockOff - out.Offset

				color := compressColorBlock(px)
				if withAlpha {
					alpha := compressAlphaBlock(px)
					copy(dst[rel:rel+8], alpha)
					copy(dst[rel+8:rel+blockBytes], color)
				} else {
					copy(dst[rel:rel+blockBytes], color)
				}
			}
		}
	}

	return out, dst, nil
}

// rgba8 is one unpacked RGBA8 texel.
type rgba8 struct{ r, g, b, a uint8 }

// colorVec is a 3D float vector used by the PCA color-endpoint search.
type colorVec [3]float64

func dot(a, b colorVec) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func normalizeVec(v colorVec) colorVec {
	length := math.Sqrt(dot(v, v))
	if length == 0 {
		return colorVec{}
	}
	return colorVec{v[0] / length, v[1] / length, v[2] / length}
}

func scaleVec(v colorVec, s float64) colorVec { return colorVec{v[0] * s, v[1] * s, v[2] * s} }
func addVec(a, b colorVec) colorVec           { return colorVec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// principalAxis estimates the dominant eigenvector of a 3x3 covariance
// matrix by power iteration, which is accurate enough for a 4x4 block's
// color endpoints without a full eigendecomposition.
func principalAxis(s [3][3]float64) colorVec {
	v := normalizeVec(colorVec{1, 1, 1})
	for i := 0; i < 5; i++ {
		next := colorVec{
			s[0][0]*v[0] + s[0][1]*v[1] + s[0][2]*v[2],
			s[1][0]*v[0] + s[1][1]*v[1] + s[1][2]*v[2],
			s[2][0]*v[0] + s[2][1]*v[1] + s[2][2]*v[2],
		}
		v = normalizeVec(next)
	}
	return v
}

func rgbTo565(r, g, b float64) uint16 {
	fr := math.Round(math.Max(0, math.Min(255, r)))
	fg := math.Round(math.Max(0, math.Min(255, g)))
	fb := math.Round(math.Max(0, math.Min(255, b)))
	return uint16((uint32(fr)>>3)<<11 | (uint32(fg)>>2)<<5 | (uint32(fb) >> 3))
}

func decode565(v uint16) [3]uint8 {
	return [3]uint8{
		uint8(((v >> 11) & 0x1f) << 3),
		uint8(((v >> 5) & 0x3f) << 2),
		uint8((v & 0x1f) << 3),
	}
}

// compressColorBlock picks BC1-style 5:6:5 endpoints along the block's
// principal color axis (via a short power iteration over the covariance
// matrix, rather than a full eigendecomposition) and returns the packed
// 8-byte color block: two endpoints plus sixteen 2-bit palette indices.
func compressColorBlock(px [16]rgba8) []byte {
	var avg colorVec
	for _, p := range px {
		avg[0] += float64(p.r)
		avg[1] += float64(p.g)
		avg[2] += float64(p.b)
	}
	avg[0] /= 16
	avg[1] /= 16
	avg[2] /= 16

	var s [3][3]float64
	for _, p := range px {
		r := float64(p.r) - avg[0]
		g := float64(p.g) - avg[1]
		b := float64(p.b) - avg[2]
		s[0][0] += r * r
		s[0][1] += r * g
		s[0][2] += r * b
		s[1][1] += g * g
		s[1][2] += g * b
		s[2][2] += b * b
	}
	s[1][0], s[2][0], s[2][1] = s[0][1], s[0][2], s[1][2]

	v := principalAxis(s)

	minProj, maxProj := math.MaxFloat64, -math.MaxFloat64
	for _, p := range px {
		proj := dot(colorVec{float64(p.r), float64(p.g), float64(p.b)}, v)
		if proj < minProj {
			minProj = proj
		}
		if proj > maxProj {
			maxProj = proj
		}
	}
	avgProj := dot(avg, v)
	end0 := addVec(avg, scaleVec(v, maxProj-avgProj))
	end1 := addVec(avg, scaleVec(v, minProj-avgProj))

	c0 := rgbTo565(end0[0], end0[1], end0[2])
	c1 := rgbTo565(end1[0], end1[1], end1[2])
	if c0 < c1 {
		c0, c1 = c1, c0
	}

	col0, col1 := decode565(c0), decode565(c1)
	var palette [4][3]uint8
	palette[0], palette[1] = col0, col1
	for i := 0; i < 3; i++ {
		palette[2][i] = uint8((2*uint16(col0[i]) + uint16(col1[i]) + 1) / 3)
		palette[3][i] = uint8((uint16(col0[i]) + 2*uint16(col1[i]) + 1) / 3)
	}

	var idx [16]uint8
	for i, p := range px {
		best, bestDist := uint8(0), uint32(1<<32-1)
		for j := 0; j < 4; j++ {
			dr := int(p.r) - int(palette[j][0])
			dg := int(p.g) - int(palette[j][1])
			db := int(p.b) - int(palette[j][2])
			d := uint32(dr*dr + dg*dg + db*db)
			if d < bestDist {
				bestDist, best = d, uint8(j)
			}
		}
		idx[i] = best
	}

	var packed uint32
	for i := 0; i < 16; i++ {
		packed |= uint32(idx[i]&0x3) << (2 * uint(i))
	}

	out := make([]byte, 8)
	binary.LittleEndian.PutUint16(out, c0)
	binary.LittleEndian.PutUint16(out[2:], c1)
	binary.LittleEndian.PutUint32(out[4:], packed)
	return out
}

// compressAlphaBlock packs a BC3-style 8-byte interpolated alpha block: two
// 8-bit endpoints plus sixteen 3-bit indices into an 8-entry palette
// (a0, a1 and six interpolated values when a0 > a1; a0, a1, four
// interpolated values and the 0/255 anchors otherwise).
func compressAlphaBlock(px [16]rgba8) []byte {
	minA, maxA := uint8(255), uint8(0)
	for _, p := range px {
		if p.a < minA {
			minA = p.a
		}
		if p.a > maxA {
			maxA = p.a
		}
	}
	a0, a1 := maxA, minA

	var palette [8]uint8
	palette[0], palette[1] = a0, a1
	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			num := uint32((7-i)*int(a0) + i*int(a1))
			palette[1+i] = uint8((num + 3) / 7)
		}
	} else {
		for i := 1; i <= 4; i++ {
			num := uint32((5-i)*int(a0) + i*int(a1))
			palette[1+i] = uint8((num + 2) / 5)
		}
		palette[6], palette[7] = 0, 255
	}

	var idx [16]uint8
	for i, p := range px {
		best, bestDist := uint8(0), uint32(1<<32-1)
		for j := 0; j < 8; j++ {
			d := int(p.a) - int(palette[j])
			d *= d
			if uint32(d) < bestDist {
				bestDist, best = uint32(d), uint8(j)
			}
		}
		idx[i] = best
	}

	var packed [6]byte
	bit := 0
	for i := 0; i < 16; i++ {
		v := uint(idx[i]) & 0x7
		bi, sh := bit/8, bit%8
		packed[bi] |= byte(v << sh)
		if sh > 5 && bi+1 < 6 {
			packed[bi+1] |= byte(v >> (8 - sh))
		}
		bit += 3
	}

	out := make([]byte, 8)
	out[0], out[1] = a0, a1
	copy(out[2:], packed[:])
	return out
}
