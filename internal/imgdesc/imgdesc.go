// Package imgdesc implements ImageDesc: the plane table that turns a base
// plane description plus (arrayLength, faces, levels, order, alignment)
// into byte-exact offsets for every array/face/mip combination.
package imgdesc

import (
	"fmt"
	"math/bits"

	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

// Order selects the plane-table walk order.
type Order int

const (
	// FaceMajor walks array, then face, then level. Mip levels of a face
	// are adjacent; this is the DDS convention.
	FaceMajor Order = iota
	// MipMajor walks array, then level, then face. All faces of a given
	// mip level are adjacent.
	MipMajor
)

// Desc is a dense plane table indexed by
// a*faces*levels + f*levels + l.
type Desc struct {
	ArrayLength int
	Faces       int
	Levels      int
	Alignment   int
	Size        int
	Planes      []plane.Desc
}

func nextMultiple(v, align int) int {
	if align <= 1 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

func halveExtent(e plane.Extent) plane.Extent {
	half := func(v int) int {
		if v <= 1 {
			return 1
		}
		return v / 2
	}
	return plane.Extent{W: half(e.W), H: half(e.H), D: half(e.D)}
}

// MaxLevels returns the mip chain length for base, counting the base level
// itself: iteratively halve (w,h,d) until all equal 1.
func MaxLevels(base plane.Desc) int {
	e := base.Extent
	levels := 1
	for e.W > 1 || e.H > 1 || e.D > 1 {
		e = halveExtent(e)
		levels++
	}
	return levels
}

// Index computes the dense plane-table index for (array, face, level).
func (d Desc) Index(array, face, level int) int {
	return array*d.Faces*d.Levels + face*d.Levels + level
}

// Coord3 is the inverse of Index.
func (d Desc) Coord3(i int) (array, face, level int) {
	array = i / (d.Faces * d.Levels)
	rem := i % (d.Faces * d.Levels)
	face = rem / d.Levels
	level = rem % d.Levels
	return
}

// Make synthesizes a plane table from a base plane description and the
// array/face/level counts, walking planes in the given order. levels == 0
// means "full mip chain" (MaxLevels(base)).
func Make(base plane.Desc, arrayLength, faces, levels int, order Order, alignment int) (Desc, error) {
	if arrayLength <= 0 {
		arrayLength = 1
	}
	if faces <= 0 {
		faces = 1
	}
	if alignment == 0 {
		alignment = 4
	}
	if alignment <= 0 || bits.OnesCount(uint(alignment)) != 1 {
		return Desc{}, fmt.Errorf("imgdesc.Make: alignment %d is not a power of two: %w", alignment, rerr.ErrInvalidDescriptor)
	}
	if alignment%base.Alignment != 0 {
		return Desc{}, fmt.Errorf("imgdesc.Make: image alignment %d is not a multiple of plane alignment %d: %w", alignment, base.Alignment, rerr.ErrInvalidDescriptor)
	}
	if levels <= 0 {
		levels = MaxLevels(base)
	}

	d := Desc{
		ArrayLength: arrayLength,
		Faces:       faces,
		Levels:      levels,
		Alignment:   alignment,
		Planes:      make([]plane.Desc, arrayLength*faces*levels),
	}

	running := 0
	visit := func(a, f, l int, levelBase plane.Desc) (plane.Desc, error) {
		idx := d.Index(a, f, l)
		p := levelBase
		p.Offset = running
		if !p.Valid() {
			return plane.Desc{}, fmt.Errorf("imgdesc.Make: plane (%d,%d,%d) invalid: %w", a, f, l, rerr.ErrInvalidDescriptor)
		}
		d.Planes[idx] = p
		running = nextMultiple(running+p.Size, alignment)
		return p, nil
	}

	for a := 0; a < arrayLength; a++ {
		switch order {
		case MipMajor:
			for l := 0; l < levels; l++ {
				levelPlane := base
				if l > 0 {
					e := base.Extent
					for i := 0; i < l; i++ {
						e = halveExtent(e)
					}
					resolved, err := plane.Make(base.Format, e, 0, 0, 0, base.Alignment)
					if err != nil {
						return Desc{}, err
					}
					levelPlane = resolved
				}
				for f := 0; f < faces; f++ {
					if _, err := visit(a, f, l, levelPlane); err != nil {
						return Desc{}, err
					}
				}
			}
		default: // FaceMajor
			for f := 0; f < faces; f++ {
				levelPlane := base
				for l := 0; l < levels; l++ {
					if l > 0 {
						resolved, err := plane.Make(base.Format, halveExtent(levelPlane.Extent), 0, 0, 0, base.Alignment)
						if err != nil {
							return Desc{}, err
						}
						levelPlane = resolved
					}
					if _, err := visit(a, f, l, levelPlane); err != nil {
						return Desc{}, err
					}
				}
			}
		}
	}

	d.Size = running
	if err := d.Validate(); err != nil {
		return Desc{}, err
	}
	return d, nil
}

// Empty reports whether d is the zero-value descriptor.
func (d Desc) Empty() bool {
	return d.ArrayLength == 0 && d.Faces == 0 && d.Levels == 0 && len(d.Planes) == 0
}

// Validate checks every invariant an ImageDesc must hold: either it's the
// all-zero empty value, or its plane count matches the counters, every
// plane validates on its own, and every plane fits within [0, Size).
func (d Desc) Validate() error {
	if d.Empty() {
		return nil
	}
	if d.ArrayLength <= 0 || d.Faces <= 0 || d.Levels <= 0 {
		return fmt.Errorf("imgdesc.Validate: non-empty descriptor has a zero counter: %w", rerr.ErrInvalidDescriptor)
	}
	if d.Alignment <= 0 || bits.OnesCount(uint(d.Alignment)) != 1 {
		return fmt.Errorf("imgdesc.Validate: alignment %d is not a power of two: %w", d.Alignment, rerr.ErrInvalidDescriptor)
	}
	want := d.ArrayLength * d.Faces * d.Levels
	if len(d.Planes) != want {
		return fmt.Errorf("imgdesc.Validate: plane count %d != %d: %w", len(d.Planes), want, rerr.ErrInvalidDescriptor)
	}
	for i, p := range d.Planes {
		if !p.Valid() {
			return fmt.Errorf("imgdesc.Validate: plane %d invalid: %w", i, rerr.ErrInvalidDescriptor)
		}
		if p.Offset < 0 || p.Offset+p.Size > d.Size {
			return fmt.Errorf("imgdesc.Validate: plane %d [%d,%d) exceeds image size %d: %w", i, p.Offset, p.Offset+p.Size, d.Size, rerr.ErrInvalidDescriptor)
		}
	}
	return nil
}
