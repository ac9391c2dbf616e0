package imgdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func bc1Base(t *testing.T) plane.Desc {
	t.Helper()
	base, err := plane.Make(pixfmt.BC1Unorm(), plane.Extent{W: 256, H: 256, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	return base
}

func TestDXT1CubemapFaceMajor(t *testing.T) {
	base := bc1Base(t)
	d, err := Make(base, 1, 6, 9, FaceMajor, 4)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	wantSlices := []int{32768, 8192, 2048, 512, 128, 32, 8, 8, 8}
	faceSize := 0
	for l, want := range wantSlices {
		p := d.Planes[d.Index(0, 0, l)]
		assert.Equal(t, want, p.Size, "level %d", l)
		faceSize += want
	}
	assert.Equal(t, 43704, faceSize)
	assert.Equal(t, 262224, d.Size)

	// Within a face, successive mip levels are adjacent.
	for l := 0; l < 8; l++ {
		cur := d.Planes[d.Index(0, 0, l)]
		next := d.Planes[d.Index(0, 0, l+1)]
		assert.Equal(t, cur.Offset+cur.Size, next.Offset)
	}
	// Then faces follow each other.
	lastLevel := d.Planes[d.Index(0, 0, 8)]
	firstOfFace1 := d.Planes[d.Index(0, 1, 0)]
	assert.Equal(t, lastLevel.Offset+lastLevel.Size, firstOfFace1.Offset)
}

func TestDXT1CubemapMipMajor(t *testing.T) {
	base := bc1Base(t)
	d, err := Make(base, 1, 6, 9, MipMajor, 4)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	face0Level0 := d.Planes[d.Index(0, 0, 0)]
	face0Level1 := d.Planes[d.Index(0, 0, 1)]
	face0Level2 := d.Planes[d.Index(0, 0, 2)]
	assert.Equal(t, 0, face0Level0.Offset)
	assert.Equal(t, 32768*6, face0Level1.Offset)
	assert.Equal(t, (32768+8192)*6, face0Level2.Offset)

	// All faces of a given level are contiguous.
	for f := 0; f < 5; f++ {
		cur := d.Planes[d.Index(0, f, 0)]
		next := d.Planes[d.Index(0, f+1, 0)]
		assert.Equal(t, cur.Offset+cur.Size, next.Offset)
	}
}

func TestDefaultAlignmentSixteen(t *testing.T) {
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 2, H: 2, D: 2}, 0, 0, 0, 4)
	require.NoError(t, err)
	d, err := Make(base, 4, 1, 1, FaceMajor, 16)
	require.NoError(t, err)
	for i, p := range d.Planes {
		assert.Equal(t, 0, p.Offset%16, "plane %d", i)
	}
}

func TestIndexCoord3Inverse(t *testing.T) {
	base := bc1Base(t)
	d, err := Make(base, 2, 6, 3, FaceMajor, 4)
	require.NoError(t, err)
	for i := 0; i < len(d.Planes); i++ {
		a, f, l := d.Coord3(i)
		assert.Equal(t, i, d.Index(a, f, l))
	}
}

func TestMaxLevelsSingleton(t *testing.T) {
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 1, H: 1, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, MaxLevels(base))
}

func TestEmptyDescriptorHasNoPlanes(t *testing.T) {
	var d Desc
	assert.True(t, d.Empty())
	assert.NoError(t, d.Validate())
}

func BenchmarkMakeCubemapChain(b *testing.B) {
	base, err := plane.Make(pixfmt.BC1Unorm(), plane.Extent{W: 256, H: 256, D: 1}, 0, 0, 0, 4)
	require.NoError(b, err)
	for i := 0; i < b.N; i++ {
		if _, err := Make(base, 1, 6, 9, FaceMajor, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func TestValidateRejectsMismatchedPlaneCount(t *testing.T) {
	base := bc1Base(t)
	d, err := Make(base, 1, 1, 1, FaceMajor, 4)
	require.NoError(t, err)
	d.Planes = append(d.Planes, plane.Desc{})
	assert.Error(t, d.Validate())
}
