// Package copyeng implements CopyContent: an aligned rectangular region copy
// between planes of equal block size, with destination/source clipping.
package copyeng

import (
	"fmt"

	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

// Point is a block-grid coordinate in pixel units.
type Point struct{ X, Y, Z int }

// Extent is a copy region's size in pixel units.
type Extent struct{ W, H, D int }

// CopyContent copies the region of extent ext starting at src coordinate
// srcPt in srcDesc/srcBytes into dstDesc/dstBytes at dstPt, clipping both
// rectangles to their plane bounds. A fully out-of-bounds rectangle is a
// silent no-op.
func CopyContent(dstDesc plane.Desc, dstBytes []byte, dstPt Point, srcDesc plane.Desc, srcBytes []byte, srcPt Point, ext Extent) error {
	if dstDesc.Format.BlockBytes() != srcDesc.Format.BlockBytes() {
		return fmt.Errorf("copyeng.CopyContent: block byte mismatch %d != %d: %w", dstDesc.Format.BlockBytes(), srcDesc.Format.BlockBytes(), rerr.ErrInvalidDescriptor)
	}
	sbw, sbh := srcDesc.Format.BlockWidth(), srcDesc.Format.BlockHeight()
	dbw, dbh := dstDesc.Format.BlockWidth(), dstDesc.Format.BlockHeight()
	if srcPt.X%sbw != 0 || srcPt.Y%sbh != 0 {
		return fmt.Errorf("copyeng.CopyContent: src coord not block-aligned: %w", rerr.ErrInvalidDescriptor)
	}
	if dstPt.X%dbw != 0 || dstPt.Y%dbh != 0 {
		return fmt.Errorf("copyeng.CopyContent: dst coord not block-aligned: %w", rerr.ErrInvalidDescriptor)
	}
	blockBytes := srcDesc.Format.BlockBytes()

	// Convert everything to block units.
	sx1, sy1, sz1 := srcPt.X/sbw, srcPt.Y/sbh, srcPt.Z
	sw, sh, sd := ceilDiv(ext.W, sbw), ceilDiv(ext.H, sbh), ext.D
	sx2, sy2, sz2 := sx1+sw, sy1+sh, sz1+sd

	dx1, dy1, dz1 := dstPt.X/dbw, dstPt.Y/dbh, dstPt.Z

	srcBoundsX := ceilDiv(srcDesc.Extent.W, sbw)
	srcBoundsY := ceilDiv(srcDesc.Extent.H, sbh)

	// Clamp the source rectangle to the source plane's bounds.
	clampLo := func(lo, hi, bound int) (int, int, int) {
		delta := 0
		if lo < 0 {
			delta = -lo
			lo = 0
		}
		if lo > bound {
			lo = bound
		}
		if hi > bound {
			hi = bound
		}
		if hi < lo {
			hi = lo
		}
		return lo, hi, delta
	}
	nsx1, nsx2, dx1delta := clampLo(sx1, sx2, srcBoundsX)
	nsy1, nsy2, dy1delta := clampLo(sy1, sy2, srcBoundsY)
	nsz1, nsz2, dz1delta := clampLo(sz1, sz2, srcDesc.Extent.D)

	// Translate the destination rectangle by the same clamp delta, then
	// clamp it to the destination bounds, and re-translate the source
	// window by the destination's additional clamp.
	ndx1 := dx1 + dx1delta
	ndy1 := dy1 + dy1delta
	ndz1 := dz1 + dz1delta
	regionW := nsx2 - nsx1
	regionH := nsy2 - nsy1
	regionD := nsz2 - nsz1

	dstBoundsX := ceilDiv(dstDesc.Extent.W, dbw)
	dstBoundsY := ceilDiv(dstDesc.Extent.H, dbh)

	fdx1, fdx2, sx1Extra := clampLo(ndx1, ndx1+regionW, dstBoundsX)
	fdy1, fdy2, sy1Extra := clampLo(ndy1, ndy1+regionH, dstBoundsY)
	fdz1, fdz2, sz1Extra := clampLo(ndz1, ndz1+regionD, dstDesc.Extent.D)

	nsx1 += sx1Extra
	nsy1 += sy1Extra
	nsz1 += sz1Extra

	finalW := fdx2 - fdx1
	finalH := fdy2 - fdy1
	finalD := fdz2 - fdz1
	if finalW <= 0 || finalH <= 0 || finalD <= 0 {
		return nil
	}

	rowBytes := finalW * blockBytes
	for z := 0; z < finalD; z++ {
		for y := 0; y < finalH; y++ {
			srcOff, err := srcDesc.Pixel((nsx1)*sbw, (nsy1+y)*sbh, nsz1+z)
			if err != nil {
				return err
			}
			dstOff, err := dstDesc.Pixel((fdx1)*dbw, (fdy1+y)*dbh, fdz1+z)
			if err != nil {
				return err
			}
			srcRel := srcOff - srcDesc.Offset
			dstRel := dstOff - dstDesc.Offset
			if srcRel+rowBytes > len(srcBytes) || dstRel+rowBytes > len(dstBytes) {
				return fmt.Errorf("copyeng.CopyContent: row copy out of bounds: %w", rerr.ErrInvalidDescriptor)
			}
			copy(dstBytes[dstRel:dstRel+rowBytes], srcBytes[srcRel:srcRel+rowBytes])
		}
	}
	return nil
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	return (a + b - 1) / b
}
