package pixfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownEmpty(t *testing.T) {
	u := Unknown()
	assert.False(t, u.Valid())
	assert.True(t, u.Empty())
}

func TestValidFormatsAreNeverEmpty(t *testing.T) {
	for _, f := range []PixelFormat{RGBA8(), BC1Unorm(), R16Uint(), RG8Unorm(), RGBA32Float()} {
		assert.True(t, f.Valid())
		assert.False(t, f.Empty())
	}
}

func TestRoundTripU32(t *testing.T) {
	for _, f := range []PixelFormat{RGBA8(), BGRA8(), BC3Unorm(), Depth24Stencil8(), RGBA16Float()} {
		got := FromU32(f.ToU32())
		assert.Equal(t, f, got)
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, f := range []PixelFormat{RGBA8(), BC1Unorm(), R16Uint(), RG8Unorm(), BGRX8()} {
		s := f.String()
		parsed, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestLayout1Invariant(t *testing.T) {
	assert.Equal(t, 8, Layout1.BlockWidth())
	assert.Equal(t, 1, Layout1.BlockHeight())
	assert.Equal(t, 1, Layout1.BlockBytes())
}

func TestBlockBytesConsistency(t *testing.T) {
	// blockBytes * 8 == blockWidth * blockHeight * bitsPerPixel for every
	// uncompressed layout whose channel widths sum exactly.
	cases := []struct {
		l    Layout
		bpp  int
	}{
		{Layout8, 8}, {Layout16, 16}, {Layout32, 32},
		{Layout8_8, 16}, {Layout8_8_8_8, 32}, {Layout5_6_5, 16},
		{Layout10_10_10_2, 32}, {Layout5_5_5_1, 16}, {Layout4_4_4_4, 16},
	}
	for _, c := range cases {
		got := c.l.BlockBytes() * 8
		want := c.l.BlockWidth() * c.l.BlockHeight() * c.bpp
		assert.Equal(t, want, got, c.l.String())
	}
}

func TestRGBA8RoundTripBytes(t *testing.T) {
	f := RGBA8()
	src := []byte{10, 20, 30, 40}
	v4, err := f.StoreToFloat4(src)
	require.NoError(t, err)
	p, err := f.LoadFromFloat4(v4)
	require.NoError(t, err)
	assert.Equal(t, src, f.Bytes(p))
}

func TestRGBA32FloatRoundTrip(t *testing.T) {
	f := RGBA32Float()
	in := Float4{1.5, -2.25, 0, 100.125}
	p, err := f.LoadFromFloat4(in)
	require.NoError(t, err)
	out, err := f.StoreToFloat4(f.Bytes(p))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFloat16RoundTripFinite(t *testing.T) {
	f := R16Float()
	for _, v := range []float32{0, 1, -1, 0.5, -0.5, 123.25, -6.0} {
		p, err := f.LoadFromFloat4(Float4{v, 0, 0, 1})
		require.NoError(t, err)
		out, err := f.StoreToFloat4(f.Bytes(p))
		require.NoError(t, err)
		assert.InDelta(t, v, out[0], 0.01)
	}
}

func TestUnormClampAndRound(t *testing.T) {
	f := R8Unorm()
	p, err := f.LoadFromFloat4(Float4{2.0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, byte(255), f.Bytes(p)[0])

	p, err = f.LoadFromFloat4(Float4{-1.0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, byte(0), f.Bytes(p)[0])
}

func TestCompressedRejectsFloat4(t *testing.T) {
	f := BC1Unorm()
	_, err := f.StoreToFloat4(make([]byte, 8))
	assert.Error(t, err)
}

func TestBGRXSwizzleYieldsOpaqueAlpha(t *testing.T) {
	f := BGRX8()
	// memory order is B,G,R,X
	src := []byte{1, 2, 3, 99}
	v4, err := f.StoreToFloat4(src)
	require.NoError(t, err)
	assert.InDelta(t, float32(3)/255, v4[0], 1e-6) // R
	assert.InDelta(t, float32(2)/255, v4[1], 1e-6) // G
	assert.InDelta(t, float32(1)/255, v4[2], 1e-6) // B
	assert.Equal(t, float32(1), v4[3])             // A forced opaque
}

func TestDXGIRoundTrip(t *testing.T) {
	for _, code := range []int{28, 71, 87, 88, 61} {
		f := FromDXGI(code)
		require.True(t, f.Valid())
		assert.Equal(t, code, f.ToDXGI())
	}
}

func TestDXGIUnknownCode(t *testing.T) {
	assert.True(t, FromDXGI(0).Empty())
	assert.True(t, FromDXGI(999).Empty())
}

func BenchmarkStoreToFloat4(b *testing.B) {
	f := RGBA8()
	src := []byte{10, 20, 30, 40}
	for i := 0; i < b.N; i++ {
		if _, err := f.StoreToFloat4(src); err != nil {
			b.Fatal(err)
		}
	}
}

func TestOnePixelSegmentStraddleFails(t *testing.T) {
	p := onePixelFromBytes(make([]byte, 16))
	_, ok := p.segment(60, 16)
	assert.False(t, ok)
}

func TestOnePixelSetAndSegment(t *testing.T) {
	var p OnePixel
	require.True(t, p.set(0xABCD, 8, 16))
	v, ok := p.segment(8, 16)
	require.True(t, ok)
	assert.Equal(t, uint32(0xABCD), v)
}
