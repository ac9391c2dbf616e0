package ril

import "github.com/rapidimg/ril/internal/copyeng"

// Point is a 3D integer coordinate, in pixels, used by CopyContent.
type Point = copyeng.Point

// CopyContent copies a block-aligned rectangle from one plane's bytes into
// another, clipping both the source and destination windows to their
// respective plane bounds. A fully out-of-bounds request is a silent
// no-op. The two planes' formats must share the same block byte size.
func CopyContent(dstDesc PlaneDesc, dstBytes []byte, dstPt Point, srcDesc PlaneDesc, srcBytes []byte, srcPt Point, extent Extent) error {
	return copyeng.CopyContent(dstDesc, dstBytes, dstPt, srcDesc, srcBytes, srcPt, copyeng.Extent(extent))
}
