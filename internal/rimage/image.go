// Package rimage owns the Image lifecycle: an ImageDesc plus its aligned
// pixel buffer, allocation, cloning, and a borrowed view type for passing
// planes without copying.
package rimage

import (
	"fmt"
	"log"
	"os"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/rerr"
)

// Logger receives the one normative diagnostic this package emits: a
// size mismatch in NewWithContent. An embedding application may redirect
// it by calling Logger.SetOutput or Logger.SetPrefix; the core never
// otherwise logs.
var Logger = log.New(os.Stderr, "rimage: ", log.LstdFlags)

// Image owns an ImageDesc and an aligned byte buffer of length Desc.Size.
// The zero value is not usable; construct with New or NewWithContent.
type Image struct {
	Desc  imgdesc.Desc
	bytes []byte
}

// New allocates a zeroed, aligned buffer sized for desc.
func New(desc imgdesc.Desc) (*Image, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	align := desc.Alignment
	if align == 0 {
		align = 4
	}
	buf := alignedAlloc(align, desc.Size)
	if buf == nil && desc.Size > 0 {
		return nil, rerr.ErrOutOfMemory
	}
	return &Image{Desc: desc, bytes: buf}, nil
}

// NewWithContent allocates like New, then copies min(desc.Size, len(initial))
// bytes from initial. A length mismatch is not an error; it is logged
// through Logger and otherwise ignored.
func NewWithContent(desc imgdesc.Desc, initial []byte) (*Image, error) {
	img, err := New(desc)
	if err != nil {
		return nil, err
	}
	if len(initial) != len(img.bytes) {
		Logger.Printf("initial content length %d != descriptor size %d, copying the overlap", len(initial), len(img.bytes))
	}
	n := len(initial)
	if n > len(img.bytes) {
		n = len(img.bytes)
	}
	copy(img.bytes, initial[:n])
	return img, nil
}

// Bytes returns the full pixel buffer.
func (img *Image) Bytes() []byte { return img.bytes }

// PlaneBytes returns the byte range owned by plane index i.
func (img *Image) PlaneBytes(i int) ([]byte, error) {
	if i < 0 || i >= len(img.Desc.Planes) {
		return nil, fmt.Errorf("rimage.PlaneBytes: index %d out of range: %w", i, rerr.ErrInvalidDescriptor)
	}
	p := img.Desc.Planes[i]
	return img.bytes[p.Offset : p.Offset+p.Size], nil
}

// Clone performs an explicit deep copy: a new aligned buffer with the same
// descriptor and pixel bytes. Callers should not rely on any implicit copy
// of Image; this method is the only supported way to duplicate one.
func (img *Image) Clone() (*Image, error) {
	out, err := New(img.Desc)
	if err != nil {
		return nil, err
	}
	copy(out.bytes, img.bytes)
	return out, nil
}

// Proxy is a borrowed (desc, bytes) pair for passing a view of an Image
// without transferring ownership. It has no destructor responsibility.
type Proxy struct {
	Desc  imgdesc.Desc
	Bytes []byte
}

// View returns a Proxy over img's current state.
func (img *Image) View() Proxy { return Proxy{Desc: img.Desc, Bytes: img.bytes} }
