package blockcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func flatRGBA8(t *testing.T, w, h int, r, g, b, a byte) (plane.Desc, []byte) {
	t.Helper()
	p, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: w, H: h, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	buf := make([]byte, p.Size)
	for i := 0; i < len(buf); i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = r, g, b, a
	}
	return p, buf
}

func TestCompressBC1FlatColorRoundTrips(t *testing.T) {
	src, rgba := flatRGBA8(t, 4, 4, 255, 255, 255, 255)

	out, block, err := CompressBC1(src, rgba)
	require.NoError(t, err)
	assert.Equal(t, pixfmt.BC1Unorm(), out.Format)
	assert.Len(t, block, out.Size)

	decOut, decoded, err := Decompress(out, block)
	require.NoError(t, err)
	for i := 0; i < len(decoded); i += 4 {
		assert.Equal(t, byte(255), decoded[i], "pixel %d red", i/4)
		assert.Equal(t, byte(255), decoded[i+1], "pixel %d green", i/4)
		assert.Equal(t, byte(255), decoded[i+2], "pixel %d blue", i/4)
	}
	assert.Equal(t, pixfmt.RGBA8(), decOut.Format)
}

func TestCompressBC3PartialBlockPadsWithZero(t *testing.T) {
	// 3x3 source: one 4x4 block with the bottom row and right column
	// sourced from padding rather than real texels.
	src, rgba := flatRGBA8(t, 3, 3, 10, 20, 30, 200)

	out, block, err := CompressBC3(src, rgba)
	require.NoError(t, err)
	assert.Equal(t, pixfmt.BC3Unorm(), out.Format)
	assert.Equal(t, 16, out.Format.BlockBytes())
	assert.Len(t, block, out.Size)
	// Alpha endpoints: a0 is the real texels' 200, a1 the zero padding.
	assert.Equal(t, byte(200), block[0])
	assert.Equal(t, byte(0), block[1])
}

func TestCompressRejectsNonRGBA8Source(t *testing.T) {
	src, err := plane.Make(pixfmt.R8Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	_, _, err = CompressBC1(src, make([]byte, src.Size))
	assert.Error(t, err)
}
