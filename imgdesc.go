package ril

import "github.com/rapidimg/ril/internal/imgdesc"

// ImageDesc is a dense plane table for an arrayed, faced, and mipmapped
// image, indexed by array*faces*levels + face*levels + level.
type ImageDesc = imgdesc.Desc

// Order selects the plane-table walk order used by MakeImageDesc.
type Order = imgdesc.Order

const (
	// FaceMajor walks array, then face, then level: mip levels of a face
	// are adjacent. This is the DDS convention.
	FaceMajor = imgdesc.FaceMajor
	// MipMajor walks array, then level, then face: all faces of a given
	// mip level are adjacent.
	MipMajor = imgdesc.MipMajor
)

// MaxLevels returns the mip chain length for base, counting the base
// level itself.
func MaxLevels(base PlaneDesc) int { return imgdesc.MaxLevels(base) }

// MakeImageDesc synthesizes a plane table from a base plane description
// and the array/face/level counts, walking planes in the given order.
// levels == 0 means "full mip chain".
func MakeImageDesc(base PlaneDesc, arrayLength, faces, levels int, order Order, alignment int) (ImageDesc, error) {
	return imgdesc.Make(base, arrayLength, faces, levels, order, alignment)
}
