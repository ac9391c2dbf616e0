package rimage

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func testDesc(t *testing.T, align int) imgdesc.Desc {
	t.Helper()
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	d, err := imgdesc.Make(base, 1, 1, 1, imgdesc.FaceMajor, align)
	require.NoError(t, err)
	return d
}

func TestNewAllocatesAlignedZeroed(t *testing.T) {
	d := testDesc(t, 16)
	img, err := New(d)
	require.NoError(t, err)
	assert.Len(t, img.Bytes(), d.Size)
	assert.Equal(t, uintptr(0), uintptr(unsafe.Pointer(&img.Bytes()[0]))%16)
	for _, b := range img.Bytes() {
		assert.Equal(t, byte(0), b)
	}
}

func TestNewWithContentTruncates(t *testing.T) {
	d := testDesc(t, 4)
	big := make([]byte, d.Size*2)
	for i := range big {
		big[i] = 0xFF
	}
	img, err := NewWithContent(d, big)
	require.NoError(t, err)
	assert.Len(t, img.Bytes(), d.Size)
	for _, b := range img.Bytes() {
		assert.Equal(t, byte(0xFF), b)
	}
}

func TestCloneIsIndependentCopy(t *testing.T) {
	d := testDesc(t, 4)
	img, err := New(d)
	require.NoError(t, err)
	img.Bytes()[0] = 7

	clone, err := img.Clone()
	require.NoError(t, err)
	assert.Equal(t, img.Bytes(), clone.Bytes())

	clone.Bytes()[0] = 9
	assert.NotEqual(t, img.Bytes()[0], clone.Bytes()[0])
}

func TestPlaneBytesRange(t *testing.T) {
	d := testDesc(t, 4)
	img, err := New(d)
	require.NoError(t, err)
	pb, err := img.PlaneBytes(0)
	require.NoError(t, err)
	assert.Len(t, pb, d.Planes[0].Size)
}
