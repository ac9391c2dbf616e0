package pixfmt

import (
	"fmt"

	"github.com/rapidimg/ril/internal/rerr"
)

// Float4 is a canonical four-component pixel value.
type Float4 [4]float32

// StoreToFloat4 decodes one pixel block's raw bytes into a canonical
// Float4. f must not be a compressed (block > 1x1) layout.
func (f PixelFormat) StoreToFloat4(pixel []byte) (Float4, error) {
	if f.Compressed() {
		return Float4{}, fmt.Errorf("storeToFloat4: compressed layout %s: %w", f.Layout(), rerr.ErrUnsupportedConversion)
	}
	p := onePixelFromBytes(pixel)

	var out Float4
	for slot := 0; slot < 4; slot++ {
		sw := f.swizzle(slot)
		switch sw {
		case SwizzleConst0:
			out[slot] = 0
			continue
		case SwizzleConst1:
			out[slot] = 1
			continue
		}
		c := sw.channelIndex()
		bits := f.channelBits(c)
		if bits == 0 {
			out[slot] = 0
			continue
		}
		raw, ok := p.segment(f.channelShift(c), bits)
		if !ok {
			return Float4{}, fmt.Errorf("storeToFloat4: channel %d straddles 64-bit halves: %w", c, rerr.ErrUnsupportedConversion)
		}
		v, err := toFloat(raw, bits, f.signForChannel(c))
		if err != nil {
			return Float4{}, err
		}
		out[slot] = v
	}
	return out, nil
}

// LoadFromFloat4 encodes a canonical Float4 back into a packed pixel block,
// the inverse of StoreToFloat4.
func (f PixelFormat) LoadFromFloat4(v Float4) (OnePixel, error) {
	if f.Compressed() {
		return OnePixel{}, fmt.Errorf("loadFromFloat4: compressed layout %s: %w", f.Layout(), rerr.ErrUnsupportedConversion)
	}
	var out OnePixel
	for slot := 0; slot < 4; slot++ {
		sw := f.swizzle(slot)
		c := sw.channelIndex()
		if c < 0 {
			continue // constants contribute nothing to encode
		}
		bits := f.channelBits(c)
		if bits == 0 {
			continue
		}
		raw, err := fromFloat(v[slot], bits, f.signForChannel(c))
		if err != nil {
			return OnePixel{}, err
		}
		if !out.set(raw, f.channelShift(c), bits) {
			return OnePixel{}, fmt.Errorf("loadFromFloat4: channel %d straddles 64-bit halves: %w", c, rerr.ErrUnsupportedConversion)
		}
	}
	return out, nil
}

// Bytes returns the packed, little-endian encoding of p truncated to the
// format's block byte count.
func (f PixelFormat) Bytes(p OnePixel) []byte {
	return p.bytes(f.BlockBytes())
}

// GetPixelChannelFloat decodes a single output channel (0..3) of pixel,
// honoring constant swizzles.
func (f PixelFormat) GetPixelChannelFloat(pixel []byte, channelIndex int) (float32, error) {
	if channelIndex < 0 || channelIndex > 3 {
		return 0, fmt.Errorf("getPixelChannelFloat: channel index %d out of range", channelIndex)
	}
	v4, err := f.StoreToFloat4(pixel)
	if err != nil {
		return 0, err
	}
	return v4[channelIndex], nil
}
