// Package export writes rendered moiré frames to files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/moire/internal/params"
	"github.com/san-kum/moire/internal/render"
)

// Frame describes one image to export.
type Frame struct {
	Params  params.Parameters
	Time    float64
	Width   int
	Height  int
	Palette render.Palette
	// Scale is the SVG dot spacing; zero means 4.
	Scale float64
}

// WritePNG renders f and encodes it as PNG.
func WritePNG(w io.Writer, f Frame) error {
	return png.Encode(w, f.image())
}

func (f Frame) image() *image.RGBA {
	return render.Image(f.Params, f.Time, f.Width, f.Height, f.Palette)
}

// WriteSVG renders f onto a Braille canvas sized to cover the frame and
// writes it as SVG dots, one dot per scale units.
func WriteSVG(w io.Writer, f Frame, scale float64) error {
	if scale <= 0 {
		scale = 4
	}
	cols := int(float64(f.Width) / scale / 2)
	rows := int(float64(f.Height) / scale / 4)
	c := render.NewCanvas(cols, rows)
	render.RenderCanvas(c, f.Params, f.Time)
	_, err := io.WriteString(w, CanvasToSVG(c, scale, f.Palette))
	return err
}

// Save writes f to path, choosing the format from the extension. A failed
// encode removes the partial file.
func Save(path string, f Frame) error {
	var write func(io.Writer, Frame) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = WritePNG
	case ".svg":
		write = func(w io.Writer, f Frame) error { return WriteSVG(w, f, f.Scale) }
	default:
		return fmt.Errorf("export: unsupported format %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file, f); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("export %s: %w", path, err)
	}
	return file.Close()
}
