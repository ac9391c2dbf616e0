package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func TestDecodePNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.NRGBA{R: byte(x * 10), G: byte(y * 20), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	desc, pix, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, desc.Faces)
	assert.Equal(t, 3, desc.Planes[0].Extent.W)
	assert.Equal(t, 2, desc.Planes[0].Extent.H)

	off, err := desc.Planes[0].Pixel(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(10), pix[off])
	assert.Equal(t, byte(20), pix[off+1])
	assert.Equal(t, byte(128), pix[off+2])
}

func TestEncodePNGThenDecodeMatches(t *testing.T) {
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 2, H: 2, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	desc, err := imgdesc.Make(base, 1, 1, 1, imgdesc.FaceMajor, 4)
	require.NoError(t, err)
	pix := make([]byte, desc.Size)
	for i := range pix {
		pix[i] = byte(i * 7)
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, PNG, desc, pix, 0))

	gotDesc, gotPix, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, desc.Planes[0].Extent, gotDesc.Planes[0].Extent)
	assert.Len(t, gotPix, len(pix))
}

func TestEncodeRejectsMultiPlane(t *testing.T) {
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 2, H: 2, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	desc, err := imgdesc.Make(base, 1, 6, 1, imgdesc.FaceMajor, 4)
	require.NoError(t, err)
	err = Encode(&bytes.Buffer{}, PNG, desc, make([]byte, desc.Size), 0)
	assert.Error(t, err)
}

func TestEncodeRejectsCompressed(t *testing.T) {
	base, err := plane.Make(pixfmt.BC1Unorm(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	desc, err := imgdesc.Make(base, 1, 1, 1, imgdesc.FaceMajor, 4)
	require.NoError(t, err)
	err = Encode(&bytes.Buffer{}, PNG, desc, make([]byte, desc.Size), 0)
	assert.Error(t, err)
}

func TestFormatForExtension(t *testing.T) {
	f, ok := FormatForExtension("JPG")
	assert.True(t, ok)
	assert.Equal(t, JPEG, f)

	_, ok = FormatForExtension("tga")
	assert.False(t, ok)
}

func TestSniffPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	assert.True(t, Sniff(buf.Bytes()))
	assert.False(t, Sniff([]byte("RIL_1234")))
}
