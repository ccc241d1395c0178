package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

// ErrUnknownImageFormat indicates an image format other than png, bmp or tiff.
var ErrUnknownImageFormat = errors.New("render: unknown image format")

// glyph is the side length of one tile before scaling.
const glyph = 3

// Palette used by Image.
var (
	PipeColor    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	LoopColor    = color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}
	InsideColor  = color.RGBA{R: 0x5d, G: 0xb8, B: 0x5b, A: 0xff}
	OutsideColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

func background(l region.Label) color.RGBA {
	switch l {
	case region.Loop:
		return LoopColor
	case region.Inside:
		return InsideColor
	default:
		return OutsideColor
	}
}

// Image draws r with scale×scale pixels per glyph pixel, so the result is
// 3·scale·W by 3·scale·H. scale < 1 is treated as 1.
func Image(r *region.Regions, scale int) *image.RGBA {
	scale = max(scale, 1)
	base := image.NewRGBA(image.Rect(0, 0, r.Width()*glyph, r.Height()*glyph))

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c := pipegrid.Coordinate{X: x, Y: y}
			ox, oy := x*glyph, y*glyph
			bg := background(r.Label(c))
			for dy := 0; dy < glyph; dy++ {
				for dx := 0; dx < glyph; dx++ {
					base.SetRGBA(ox+dx, oy+dy, bg)
				}
			}
			t := r.View(c)
			if t == pipegrid.Void {
				continue
			}
			// Centre pixel plus one arm per open direction.
			base.SetRGBA(ox+1, oy+1, PipeColor)
			for _, d := range pipegrid.Directions {
				if pipegrid.Opens(t).Has(d) {
					dx, dy := d.Offset()
					base.SetRGBA(ox+1+dx, oy+1+dy, PipeColor)
				}
			}
		}
	}

	if scale == 1 {
		return base
	}
	dst := image.NewRGBA(image.Rect(0, 0, base.Bounds().Dx()*scale, base.Bounds().Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return dst
}

// FormatFromPath returns "png", "bmp" or "tiff" from the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownImageFormat, ext)
	}
}

// WriteImage encodes img to w as png, bmp or tiff.
func WriteImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownImageFormat, format)
	}
}

// SaveImage renders r and writes it to path, picking the format from
// the extension.
func SaveImage(path string, r *region.Regions, scale int) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteImage(f, Image(r, scale), format)
}
