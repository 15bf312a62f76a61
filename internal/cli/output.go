package cli

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/ggbar"
)

// Image formats accepted by --format.
const (
	formatPNG  = "png"
	formatBMP  = "bmp"
	formatTIFF = "tiff"
)

// formatFor returns the explicit format, or the one implied by the output
// file extension, defaulting to PNG.
func formatFor(explicit, path string) (string, error) {
	f := strings.ToLower(explicit)
	if f == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".bmp":
			f = formatBMP
		case ".tif", ".tiff":
			f = formatTIFF
		default:
			f = formatPNG
		}
	}
	switch f {
	case formatPNG, formatBMP, formatTIFF:
		return f, nil
	case "tif":
		return formatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (want png, bmp or tiff)", explicit)
	}
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case formatBMP:
		return bmp.Encode(w, img)
	case formatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// rasterize draws bar onto a fresh context sized to the canvas.
func rasterize(bar *ggbar.Bar, width, height float64) (image.Image, error) {
	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	defer func() { _ = dc.Close() }()
	if err := bar.Draw(dc, width, height); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush drawing: %w", err)
	}
	return dc.Image(), nil
}

// writeFile writes via a temporary file and a rename so watchers never see
// a half-written image.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ggbar-*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
