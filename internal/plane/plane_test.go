package plane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/pixfmt"
)

func TestMakeNormalizesZeroExtent(t *testing.T) {
	d, err := Make(pixfmt.RGBA8(), Extent{}, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Extent{1, 1, 1}, d.Extent)
	assert.True(t, d.Valid())
}

func TestMakeAlignment(t *testing.T) {
	d, err := Make(pixfmt.RGBA8(), Extent{3, 3, 1}, 0, 0, 0, 16)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Pitch%16)
	assert.Equal(t, 0, d.Slice%16)
	assert.Equal(t, d.Slice*d.Extent.D, d.Size)
}

func TestMakeRejectsBadAlignment(t *testing.T) {
	_, err := Make(pixfmt.RGBA8(), Extent{1, 1, 1}, 0, 0, 0, 3)
	assert.Error(t, err)
}

func TestPixelAddressing(t *testing.T) {
	d, err := Make(pixfmt.RGBA8(), Extent{4, 4, 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	off, err := d.Pixel(2, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, d.Pitch*1+d.Step*2, off)
}

func TestPixelBlockAlignmentRequired(t *testing.T) {
	d, err := Make(pixfmt.BC1Unorm(), Extent{8, 8, 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	_, err = d.Pixel(1, 0, 0)
	assert.Error(t, err)
	_, err = d.Pixel(4, 0, 0)
	assert.NoError(t, err)
}

func TestToFloat4AndBack(t *testing.T) {
	d, err := Make(pixfmt.R8Unorm(), Extent{2, 2, 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	buf := make([]byte, d.Size)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			off, err := d.Pixel(x, y, 0)
			require.NoError(t, err)
			buf[off] = byte((y*2 + x) * 50)
		}
	}
	v4s, err := d.ToFloat4(buf)
	require.NoError(t, err)
	require.Len(t, v4s, 4)

	out := make([]byte, d.Size)
	require.NoError(t, d.FromFloat4(out, 0, v4s))
	assert.Equal(t, buf, out)
}

func TestToFloat4RejectsCompressed(t *testing.T) {
	d, err := Make(pixfmt.BC1Unorm(), Extent{4, 4, 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	_, err = d.ToFloat4(make([]byte, d.Size))
	assert.Error(t, err)
}

func TestToRGBA8(t *testing.T) {
	d, err := Make(pixfmt.RGBA8(), Extent{1, 1, 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	out, err := d.ToRGBA8([]byte{10, 20, 30, 40})
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30, 40}, out)
}
