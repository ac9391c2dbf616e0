// Package rilcodec reads and writes the library's native RIL container: a
// tag, a versioned fixed-layout header, a plane-descriptor array, and a raw
// pixel blob. The on-wire layout is versioned by struct identity: a reader
// rejects any file whose header or plane-descriptor size differs from the
// size this package emits.
package rilcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rapidimg/ril/internal/imgdesc"
	"github.com/rapidimg/ril/internal/pixfmt"
	"github.com/rapidimg/ril/internal/plane"
	"github.com/rapidimg/ril/internal/rerr"
)

var magic = [4]byte{'R', 'I', 'L', '_'}

const currentVersion = 1

// headerSize and planeDescSize are the fixed on-wire struct sizes this
// package emits; Read rejects any file claiming otherwise.
const (
	headerSize    = 48
	planeDescSize = 40
	firstPlaneOff = 8 + headerSize // tag + version + header
)

type wireHeader struct {
	HeaderSize    uint32
	PlaneDescSize uint32
	FirstPlaneOff uint32
	ArrayLength   uint32
	Faces         uint32
	Levels        uint32
	Alignment     uint32
	Size          uint64
	Reserved      [3]uint32
}

type wirePlane struct {
	Format    uint32
	W, H, D   uint32
	Step      uint32
	Pitch     uint32
	Slice     uint32
	Size      uint32
	Offset    uint32
	Alignment uint32
}

// Write serializes desc and pixelBytes as a RIL v1 file.
func Write(w io.Writer, desc imgdesc.Desc, pixelBytes []byte) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	if len(pixelBytes) != desc.Size {
		return fmt.Errorf("rilcodec.Write: pixel blob length %d != descriptor size %d: %w", len(pixelBytes), desc.Size, rerr.ErrInvalidDescriptor)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(currentVersion)); err != nil {
		return err
	}

	hdr := wireHeader{
		HeaderSize:    headerSize,
		PlaneDescSize: planeDescSize,
		FirstPlaneOff: firstPlaneOff,
		ArrayLength:   uint32(desc.ArrayLength),
		Faces:         uint32(desc.Faces),
		Levels:        uint32(desc.Levels),
		Alignment:     uint32(desc.Alignment),
		Size:          uint64(desc.Size),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}

	for _, p := range desc.Planes {
		wp := wirePlane{
			Format:    p.Format.ToU32(),
			W:         uint32(p.Extent.W),
			H:         uint32(p.Extent.H),
			D:         uint32(p.Extent.D),
			Step:      uint32(p.Step),
			Pitch:     uint32(p.Pitch),
			Slice:     uint32(p.Slice),
			Size:      uint32(p.Size),
			Offset:    uint32(p.Offset),
			Alignment: uint32(p.Alignment),
		}
		if err := binary.Write(w, binary.LittleEndian, wp); err != nil {
			return err
		}
	}

	_, err := w.Write(pixelBytes)
	return err
}

// Read parses a RIL file from r and returns its plane table and pixel blob.
func Read(r io.Reader) (imgdesc.Desc, []byte, error) {
	var tag [4]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: read tag: %w", err)
	}
	if tag != magic {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: not a RIL file: %w", rerr.ErrUnsupportedFileFormat)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: read version: %w", err)
	}
	if version != currentVersion {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: unsupported RIL version %d: %w", version, rerr.ErrUnsupportedFileFormat)
	}

	var hdr wireHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: read header: %w", err)
	}
	if hdr.HeaderSize != headerSize || hdr.PlaneDescSize != planeDescSize || hdr.FirstPlaneOff != firstPlaneOff {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: header struct identity mismatch (got %d/%d/%d, want %d/%d/%d): %w",
			hdr.HeaderSize, hdr.PlaneDescSize, hdr.FirstPlaneOff, headerSize, planeDescSize, firstPlaneOff, rerr.ErrCorruptFile)
	}

	n := int(hdr.ArrayLength) * int(hdr.Faces) * int(hdr.Levels)
	if n < 0 || n > 1<<20 {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: implausible plane count %d: %w", n, rerr.ErrCorruptFile)
	}

	planes := make([]plane.Desc, n)
	for i := 0; i < n; i++ {
		var wp wirePlane
		if err := binary.Read(r, binary.LittleEndian, &wp); err != nil {
			return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: read plane %d: %w", i, rerr.ErrCorruptFile)
		}
		planes[i] = plane.Desc{
			Format:    pixfmt.FromU32(wp.Format),
			Extent:    plane.Extent{W: int(wp.W), H: int(wp.H), D: int(wp.D)},
			Step:      int(wp.Step),
			Pitch:     int(wp.Pitch),
			Slice:     int(wp.Slice),
			Size:      int(wp.Size),
			Offset:    int(wp.Offset),
			Alignment: int(wp.Alignment),
		}
	}

	desc := imgdesc.Desc{
		ArrayLength: int(hdr.ArrayLength),
		Faces:       int(hdr.Faces),
		Levels:      int(hdr.Levels),
		Alignment:   int(hdr.Alignment),
		Size:        int(hdr.Size),
		Planes:      planes,
	}
	if err := desc.Validate(); err != nil {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: %w", err)
	}

	pixelBytes := make([]byte, desc.Size)
	if _, err := io.ReadFull(r, pixelBytes); err != nil {
		return imgdesc.Desc{}, nil, fmt.Errorf("rilcodec.Read: pixel blob truncated: %w", rerr.ErrCorruptFile)
	}

	return desc, pixelBytes, nil
}

// Sniff reports whether the first four bytes of b are the RIL magic,
// without consuming or requiring more than 4 bytes.
func Sniff(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic[:])
}
