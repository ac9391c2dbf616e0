package copyeng

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func TestCopyNegativeDestination(t *testing.T) {
	src, err := plane.Make(pixfmt.RG8Unorm(), plane.Extent{W: 8, H: 8, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	srcBytes := make([]byte, src.Size)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			off, err := src.Pixel(x, y, 0)
			require.NoError(t, err)
			srcBytes[off] = byte(x)
			srcBytes[off+1] = byte(y)
		}
	}

	dst, err := plane.Make(pixfmt.R16Uint(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	dstBytes := make([]byte, dst.Size)

	require.NoError(t, CopyContent(dst, dstBytes, Point{-1, -1, 0}, src, srcBytes, Point{0, 0, 0}, Extent{8, 8, 1}))

	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			off, err := dst.Pixel(dx, dy, 0)
			require.NoError(t, err)
			got := binary.LittleEndian.Uint16(dstBytes[off : off+2])
			want := uint16(dx+1) | uint16(dy+1)<<8
			assert.Equal(t, want, got, "dx=%d dy=%d", dx, dy)
		}
	}
}

func TestCopyFullyOutOfBoundsIsNoop(t *testing.T) {
	src, err := plane.Make(pixfmt.R8Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	dst, err := plane.Make(pixfmt.R8Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	dstBytes := make([]byte, dst.Size)
	original := append([]byte(nil), dstBytes...)

	err = CopyContent(dst, dstBytes, Point{100, 100, 0}, src, make([]byte, src.Size), Point{0, 0, 0}, Extent{4, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, original, dstBytes)
}

func TestCopyRejectsBlockByteMismatch(t *testing.T) {
	src, err := plane.Make(pixfmt.R8Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	dst, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	err = CopyContent(dst, make([]byte, dst.Size), Point{}, src, make([]byte, src.Size), Point{}, Extent{1, 1, 1})
	assert.Error(t, err)
}
