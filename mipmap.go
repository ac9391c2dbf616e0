package ril

import (
	"fmt"

	"github.com/rapidimg/ril/internal/mipgen"
)

// GenerateMipmaps builds a full mip chain for a single array element and
// face: it allocates a fresh Image sized for `levels` levels of base's
// format and extent (0 means the full chain), copies base's bytes into
// level 0, then box-filters each subsequent level from the one above it.
func GenerateMipmaps(base PlaneDesc, baseBytes []byte, levels int) (*Image, error) {
	desc, err := MakeImageDesc(base, 1, 1, levels, FaceMajor, base.Alignment)
	if err != nil {
		return nil, fmt.Errorf("ril.GenerateMipmaps: %w", err)
	}

	img, err := NewImage(desc)
	if err != nil {
		return nil, fmt.Errorf("ril.GenerateMipmaps: %w", err)
	}

	level0, err := img.PlaneBytes(0)
	if err != nil {
		return nil, fmt.Errorf("ril.GenerateMipmaps: %w", err)
	}
	if len(level0) != len(baseBytes) {
		return nil, fmt.Errorf("ril.GenerateMipmaps: base plane size %d != descriptor size %d: %w", len(baseBytes), len(level0), ErrInvalidDescriptor)
	}
	copy(level0, baseBytes)

	for l := 1; l < len(desc.Planes); l++ {
		dstBytes, err := img.PlaneBytes(l)
		if err != nil {
			return nil, fmt.Errorf("ril.GenerateMipmaps: %w", err)
		}
		srcBytes, err := img.PlaneBytes(l - 1)
		if err != nil {
			return nil, fmt.Errorf("ril.GenerateMipmaps: %w", err)
		}
		if err := mipgen.GenerateLevel(desc.Planes[l], dstBytes, desc.Planes[l-1], srcBytes); err != nil {
			return nil, fmt.Errorf("ril.GenerateMipmaps: level %d: %w", l, err)
		}
	}

	return img, nil
}
