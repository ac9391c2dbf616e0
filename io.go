package ril

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rapidimg/ril/internal/ddscodec"
	"github.com/rapidimg/ril/internal/raster"
	"github.com/rapidimg/ril/internal/rilcodec"
)

// SaveFormat names one of the container formats Save/SaveToStream can
// produce.
type SaveFormat int

const (
	SaveRIL SaveFormat = iota
	SaveDDS
	SavePNG
	SaveJPG
	SaveBMP
)

// SaveParameters is the explicit form of the save-dispatch decision that
// Save derives automatically from a filename's extension.
type SaveParameters struct {
	Format  SaveFormat
	Quality int // forwarded to the JPEG encoder; ignored otherwise
}

func formatForExtension(path string) (SaveFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ril":
		return SaveRIL, true
	case ".dds":
		return SaveDDS, true
	case ".png":
		return SavePNG, true
	case ".jpg", ".jpeg":
		return SaveJPG, true
	case ".bmp":
		return SaveBMP, true
	default:
		return 0, false
	}
}

// SaveToStream writes desc/pixelBytes to w in the format named by params.
func SaveToStream(params SaveParameters, w io.Writer, desc ImageDesc, pixelBytes []byte) error {
	switch params.Format {
	case SaveRIL:
		return rilcodec.Write(w, desc, pixelBytes)
	case SaveDDS:
		return ddscodec.Write(w, desc, pixelBytes)
	case SavePNG:
		return raster.Encode(w, raster.PNG, desc, pixelBytes, params.Quality)
	case SaveJPG:
		return raster.Encode(w, raster.JPEG, desc, pixelBytes, params.Quality)
	case SaveBMP:
		return raster.Encode(w, raster.BMP, desc, pixelBytes, params.Quality)
	default:
		return fmt.Errorf("ril.SaveToStream: unknown format %d: %w", params.Format, ErrUnsupportedFileFormat)
	}
}

// Save writes desc/pixelBytes to filename, choosing a container by
// lowercasing the path's extension: .ril, .dds, .png, .jpg/.jpeg, .bmp.
// An unrecognized extension is ErrUnsupportedFileFormat.
func Save(filename string, desc ImageDesc, pixelBytes []byte) error {
	format, ok := formatForExtension(filename)
	if !ok {
		return fmt.Errorf("ril.Save: %q: %w", filename, ErrUnsupportedFileFormat)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return SaveToStream(SaveParameters{Format: format}, f, desc, pixelBytes)
}

// Load sniffs r for a RIL tag, a DDS tag, or a PNG/JPEG/BMP signature, in
// that order, rewinding between attempts, and decodes with whichever
// codec matches. An unrecognized stream is ErrUnsupportedFileFormat.
func Load(r io.ReadSeeker) (ImageDesc, []byte, error) {
	var sniff [8]byte
	n, _ := io.ReadFull(r, sniff[:])
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return ImageDesc{}, nil, fmt.Errorf("ril.Load: seek: %w", err)
	}
	head := sniff[:n]

	switch {
	case rilcodec.Sniff(head):
		return rilcodec.Read(r)
	case ddscodec.Sniff(head):
		res, err := ddscodec.Read(r)
		if err != nil {
			return ImageDesc{}, nil, err
		}
		return res.Desc, res.Bytes, nil
	case raster.Sniff(head):
		return raster.Decode(r)
	default:
		return ImageDesc{}, nil, fmt.Errorf("ril.Load: no known container recognized: %w", ErrUnsupportedFileFormat)
	}
}

// LoadFile opens filename and decodes it with Load.
func LoadFile(filename string) (ImageDesc, []byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return ImageDesc{}, nil, err
	}
	defer f.Close()
	return Load(f)
}
