// Package mipgen implements box-average mipmap synthesis across a variable
// source-to-destination block ratio. It specifies only the arithmetic; the
// quality of the kernel is intentionally the simplest correct average.
package mipgen

import (
	"fmt"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

// GenerateLevel averages src down into dst, where dst.Extent must equal
// max(1, src.Extent/2) component-wise. Both planes must be uncompressed.
func GenerateLevel(dst plane.Desc, dstBytes []byte, src plane.Desc, srcBytes []byte) error {
	if src.Format.Compressed() || dst.Format.Compressed() {
		return fmt.Errorf("mipgen.GenerateLevel: compressed formats are not supported: %w", rerr.ErrUnsupportedConversion)
	}
	wantW, wantH, wantD := halveDim(src.Extent.W), halveDim(src.Extent.H), halveDim(src.Extent.D)
	if dst.Extent.W != wantW || dst.Extent.H != wantH || dst.Extent.D != wantD {
		return fmt.Errorf("mipgen.GenerateLevel: dst extent %+v != expected (%d,%d,%d): %w", dst.Extent, wantW, wantH, wantD, rerr.ErrInvalidDescriptor)
	}

	sx := src.Extent.W / dst.Extent.W
	sy := src.Extent.H / dst.Extent.H
	sz := src.Extent.D / dst.Extent.D
	count := float32(sx * sy * sz)

	bb := src.Format.BlockBytes()
	slice := make([]pixfmt.Float4, dst.Extent.W*dst.Extent.H)
	for z := 0; z < dst.Extent.D; z++ {
		i := 0
		for y := 0; y < dst.Extent.H; y++ {
			for x := 0; x < dst.Extent.W; x++ {
				var sum pixfmt.Float4
				for dz := 0; dz < sz; dz++ {
					for dy := 0; dy < sy; dy++ {
						for dx := 0; dx < sx; dx++ {
							sX, sY, sZ := x*sx+dx, y*sy+dy, z*sz+dz
							off, err := src.Pixel(sX, sY, sZ)
							if err != nil {
								return err
							}
							rel := off - src.Offset
							v, err := src.Format.StoreToFloat4(srcBytes[rel : rel+bb])
							if err != nil {
								return err
							}
							for c := 0; c < 4; c++ {
								sum[c] += v[c]
							}
						}
					}
				}
				for c := 0; c < 4; c++ {
					sum[c] /= count
				}
				slice[i] = sum
				i++
			}
		}
		if err := dst.FromFloat4(dstBytes, z, slice); err != nil {
			return err
		}
	}
	return nil
}

func halveDim(v int) int {
	if v <= 1 {
		return 1
	}
	return v / 2
}
