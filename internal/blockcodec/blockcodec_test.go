package blockcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func TestDecompressBC1(t *testing.T) {
	p, err := plane.Make(pixfmt.BC1Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	block := make([]byte, p.Size)
	// A flat-color BC1 block: color0 == color1 (both 0xFFFF, opaque white)
	// with indices 0 selects endpoint 0 for every texel.
	block[0], block[1] = 0xff, 0xff
	block[2], block[3] = 0xff, 0xff

	out, rgba, err := Decompress(p, block)
	require.NoError(t, err)
	assert.Equal(t, pixfmt.RGBA8(), out.Format)
	assert.Len(t, rgba, out.Size)
}

func TestDecompressRejectsUnsupportedLayout(t *testing.T) {
	p, err := plane.Make(pixfmt.BC7Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	_, _, err = Decompress(p, make([]byte, p.Size))
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(pixfmt.LayoutBC1))
	assert.False(t, Supported(pixfmt.LayoutBC7))
}
