// Command rilcli batch-converts image containers using the ril package:
// RIL, DDS, PNG, JPEG, and BMP, chosen by file extension unless -format
// overrides it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rapidimg/ril"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		outDir    string
		format    string
		quality   int
		mipmaps   int
		parallel  int
		blockDesc bool
		compress  string
	)
	flag.StringVar(&outDir, "out", "", "output directory (required)")
	flag.StringVar(&format, "format", "", "override output format: ril|dds|png|jpg|bmp (default: the input file's extension)")
	flag.IntVar(&quality, "quality", 90, "JPEG quality, 1-100")
	flag.IntVar(&mipmaps, "mipmaps", 0, "generate this many mip levels for single-plane inputs (0 disables)")
	flag.IntVar(&parallel, "parallel", 4, "max concurrent conversions")
	flag.BoolVar(&blockDesc, "decompress", false, "decompress BC1/BC2/BC3 input planes to RGBA8 before conversion")
	flag.StringVar(&compress, "compress", "", "compress an RGBA8 single-plane input to a block format before conversion: bc1|bc3")
	flag.Parse()

	inputs := flag.Args()
	if outDir == "" || len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: rilcli -out <dir> [-format dds] [-mipmaps 4] [-decompress] [-compress bc1] file...")
		os.Exit(2)
	}

	if err := os.MkdirAll(outDir, 0777); err != nil {
		fmt.Fprintf(os.Stderr, "FAILED: %v\n", err)
		os.Exit(1)
	}

	opts := convertOptions{
		outDir:    outDir,
		format:    format,
		quality:   quality,
		mipmaps:   mipmaps,
		blockDesc: blockDesc,
		compress:  strings.ToLower(compress),
	}

	if err := convertAll(context.Background(), inputs, opts, parallel); err != nil {
		fmt.Fprintf(os.Stderr, "FAILED: %v\n", err)
		os.Exit(1)
	}
}

type convertOptions struct {
	outDir    string
	format    string
	quality   int
	mipmaps   int
	blockDesc bool
	compress  string
}

func convertAll(ctx context.Context, inputs []string, opts convertOptions, parallel int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	fmt.Printf("Converting %d files...\n", len(inputs))
	for _, in := range inputs {
		in := in
		g.Go(func() error { return convertOne(gctx, in, opts) })
	}
	return g.Wait()
}

func convertOne(ctx context.Context, inPath string, opts convertOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Printf("Loading %q...\n", inPath)
	desc, pix, err := ril.LoadFile(inPath)
	if err != nil {
		return fmt.Errorf("load %q: %w", inPath, err)
	}

	if opts.blockDesc && len(desc.Planes) > 0 {
		img, err := ril.NewImageWithContent(desc, pix)
		if err != nil {
			return fmt.Errorf("decompress %q: %w", inPath, err)
		}
		decompressed, err := ril.DecompressBlocks(img, 0)
		if err == nil {
			desc, pix = decompressed.Desc, decompressed.Bytes()
		}
	}

	if opts.compress != "" && len(desc.Planes) == 1 {
		codec, ok := map[string]ril.BlockCodec{"bc1": ril.BlockBC1, "bc3": ril.BlockBC3}[opts.compress]
		if !ok {
			return fmt.Errorf("compress %q: unknown codec", opts.compress)
		}
		img, err := ril.NewImageWithContent(desc, pix)
		if err != nil {
			return fmt.Errorf("compress %q: %w", inPath, err)
		}
		compressed, err := ril.CompressBlocks(img, 0, codec)
		if err != nil {
			return fmt.Errorf("compress %q: %w", inPath, err)
		}
		desc, pix = compressed.Desc, compressed.Bytes()
	}

	if opts.mipmaps > 0 && len(desc.Planes) == 1 {
		mipped, err := ril.GenerateMipmaps(desc.Planes[0], pix, opts.mipmaps)
		if err != nil {
			return fmt.Errorf("generate mipmaps for %q: %w", inPath, err)
		}
		desc, pix = mipped.Desc, mipped.Bytes()
	}

	outPath, params, err := resolveOutput(opts, inPath)
	if err != nil {
		return err
	}

	fmt.Printf("Writing %q...\n", outPath)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	defer f.Close()

	if err := ril.SaveToStream(params, f, desc, pix); err != nil {
		return fmt.Errorf("save %q: %w", outPath, err)
	}
	return nil
}

func resolveOutput(opts convertOptions, inPath string) (string, ril.SaveParameters, error) {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))

	ext := opts.format
	if ext == "" {
		ext = strings.TrimPrefix(filepath.Ext(inPath), ".")
	}
	ext = strings.ToLower(ext)

	var params ril.SaveParameters
	switch ext {
	case "ril":
		params.Format = ril.SaveRIL
	case "dds":
		params.Format = ril.SaveDDS
	case "png":
		params.Format = ril.SavePNG
	case "jpg", "jpeg":
		params.Format = ril.SaveJPG
		ext = "jpg"
	case "bmp":
		params.Format = ril.SaveBMP
	default:
		return "", ril.SaveParameters{}, fmt.Errorf("%q: %w", ext, ril.ErrUnsupportedFileFormat)
	}
	params.Quality = opts.quality

	return filepath.Join(opts.outDir, base+"."+ext), params, nil
}
