package ril

import "github.com/rapidimg/ril/internal/plane"

// PlaneDesc describes one plane: its format, pixel extent, and byte
// spacing (step/pitch/slice/size/offset/alignment). It is pure metadata
// and never owns pixel bytes.
type PlaneDesc = plane.Desc

// Extent is a plane's dimensions in pixels.
type Extent = plane.Extent

// MakePlane computes step/pitch/slice/size from the requested minimums
// and returns a fully resolved, valid PlaneDesc. Zero extent components
// are normalized to 1; alignment must be a power of two (0 defaults to 4).
func MakePlane(format PixelFormat, extent Extent, step, pitch, slice, alignment int) (PlaneDesc, error) {
	return plane.Make(format, extent, step, pitch, slice, alignment)
}
