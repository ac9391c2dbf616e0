package ddscodec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/pixfmt"
)

// writeDDS assembles a minimal legal DDS stream for a simple 2D RGBA8
// surface, no mips, no cubemap faces, using the legacy DDPIXELFORMAT mask
// path (no DX10 extension).
func writeDDS(t *testing.T, w, h uint32, bgrx bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(magic[:])

	hdr := fileHeader{
		Size:   124,
		Flags:  ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelFormat,
		Height: h,
		Width:  w,
		Caps:   ddscapsComplex,
	}
	hdr.PixelFormat = pixelFormat{
		Size:        32,
		Flags:       ddpfRGB,
		RGBBitCount: 32,
		RBitMask:    0x00ff0000,
		GBitMask:    0x0000ff00,
		BBitMask:    0x000000ff,
	}
	if !bgrx {
		hdr.PixelFormat.Flags |= ddpfAlphaPixels
		hdr.PixelFormat.ABitMask = 0xff000000
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, hdr))

	npix := int(w) * int(h)
	for i := 0; i < npix; i++ {
		buf.WriteByte(byte(i))     // B
		buf.WriteByte(byte(i + 1)) // G
		buf.WriteByte(byte(i + 2)) // R
		buf.WriteByte(0xff)        // A or X
	}
	return buf.Bytes()
}

func TestReadLegacyRGBA(t *testing.T) {
	raw := writeDDS(t, 4, 4, false)
	res, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Desc.Faces)
	assert.Equal(t, 1, res.Desc.Levels)
	assert.Equal(t, pixfmt.RGBA8(), res.Desc.Planes[0].Format)
}

func TestReadBGRXRewritesToRGB(t *testing.T) {
	raw := writeDDS(t, 2, 2, true)
	res, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	// Source bytes were B,G,R,X = (0,1,2,0xff); after the rewrite the first
	// three bytes of each pixel must read back as R,G,B.
	assert.Equal(t, byte(2), res.Bytes[0])
	assert.Equal(t, byte(1), res.Bytes[1])
	assert.Equal(t, byte(0), res.Bytes[2])
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("NOPE1234567890")))
	assert.Error(t, err)
}

func TestReadRejectsPaletteIndexed(t *testing.T) {
	raw := writeDDS(t, 4, 4, false)
	binary.LittleEndian.PutUint32(raw[4+76:4+80], ddpfPaletteIndex8)
	_, err := Read(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestWriteReturnsNotImplemented(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, res(t).Desc, res(t).Bytes)
	assert.Error(t, err)
}

func res(t *testing.T) Result {
	t.Helper()
	raw := writeDDS(t, 2, 2, false)
	r, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	return r
}

// writeDX10DDS assembles a DDS stream that routes through the DX10
// extension header: dxgi 2 (R32G32B32A32_FLOAT), every pixel the same
// grey value.
func writeDX10DDS(t *testing.T, w, h uint32, grey float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(magic[:])

	hdr := fileHeader{
		Size:   124,
		Flags:  ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelFormat,
		Height: h,
		Width:  w,
	}
	hdr.PixelFormat = pixelFormat{
		Size:   32,
		Flags:  ddpfFourCC,
		FourCC: fourCCDX10,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, hdr))

	dx10 := dx10Header{DXGIFormat: 2, ResourceDimension: 3, ArraySize: 1}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, dx10))

	for i := uint32(0); i < w*h; i++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, grey))
		}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float32(1)))
	}
	return buf.Bytes()
}

func TestReadDX10RGBA32Float(t *testing.T) {
	grey := float32(166) / 255
	raw := writeDX10DDS(t, 4, 4, grey)

	res, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, pixfmt.RGBA32Float(), res.Desc.Planes[0].Format)

	rgba8, err := res.Desc.Planes[0].ToRGBA8(res.Bytes)
	require.NoError(t, err)
	assert.Equal(t, byte(166), rgba8[0])
	assert.Equal(t, byte(166), rgba8[1])
	assert.Equal(t, byte(166), rgba8[2])
	assert.Equal(t, byte(255), rgba8[3])
}

func TestReadCubemapFaces(t *testing.T) {
	raw := writeDDS(t, 2, 2, false)
	// Flip on the all-faces cubemap caps and repeat the pixel blob for the
	// five extra faces.
	capsOff := 4 + 104 + 4 // magic + header through PixelFormat + Caps
	binary.LittleEndian.PutUint32(raw[capsOff:capsOff+4], ddscaps2CubemapAllFaces)
	onePlane := raw[len(raw)-2*2*4:]
	for i := 0; i < 5; i++ {
		raw = append(raw, onePlane...)
	}

	res, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Desc.Faces)
	assert.Equal(t, 6, len(res.Desc.Planes))
}

func TestSniff(t *testing.T) {
	raw := writeDDS(t, 2, 2, false)
	assert.True(t, Sniff(raw))
	assert.False(t, Sniff([]byte("RIL_")))
}
