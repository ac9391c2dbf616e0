package rilcodec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
)

func testDesc(t *testing.T) (imgdesc.Desc, []byte) {
	t.Helper()
	base, err := plane.Make(pixfmt.RGBA8(), plane.Extent{W: 4, H: 4, D: 1}, 0, 0, 0, 4)
	require.NoError(t, err)
	d, err := imgdesc.Make(base, 1, 6, 0, imgdesc.FaceMajor, 16)
	require.NoError(t, err)
	pix := make([]byte, d.Size)
	for i := range pix {
		pix[i] = byte(i)
	}
	return d, pix
}

func TestWriteReadRoundTrip(t *testing.T) {
	desc, pix := testDesc(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, desc, pix))

	gotDesc, gotPix, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, desc, gotDesc)
	assert.Equal(t, pix, gotPix)
}

func TestSniffRecognizesMagic(t *testing.T) {
	desc, pix := testDesc(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, desc, pix))
	assert.True(t, Sniff(buf.Bytes()))
	assert.False(t, Sniff([]byte("DDS ")))
	assert.False(t, Sniff([]byte("RI")))
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("NOPE1234567890")))
	assert.Error(t, err)
}

func TestReadRejectsUnsupportedVersion(t *testing.T) {
	desc, pix := testDesc(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, desc, pix))
	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[4:8], 2)

	_, _, err := Read(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestReadRejectsTruncatedPixelBlob(t *testing.T) {
	desc, pix := testDesc(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, desc, pix))
	raw := buf.Bytes()[:buf.Len()-10]

	_, _, err := Read(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestWriteRejectsMismatchedPixelLength(t *testing.T) {
	desc, _ := testDesc(t)
	var buf bytes.Buffer
	err := Write(&buf, desc, make([]byte, desc.Size-1))
	assert.Error(t, err)
}
