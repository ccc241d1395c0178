package render_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/pipeloop/region"
	"github.com/katalvlaran/pipeloop/render"
	"github.com/katalvlaran/pipeloop/solver"
)

// square solves the 5×5 loop with one enclosed tile.
func square(t *testing.T, opts ...solver.Option) *region.Regions {
	t.Helper()
	res, err := solver.Solve(context.Background(), []string{".....", ".S-7.", ".|.|.", ".L-J.", "....."}, opts...)
	require.NoError(t, err)
	return res.Regions
}

// TestASCII draws box glyphs with the start shape inferred.
func TestASCII(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.ASCII(&buf, square(t)))
	assert.Equal(t, "OOOOO\nO┌─┐O\nO│I│O\nO└─┘O\nOOOOO\n", buf.String())
}

// TestASCII_RawStart keeps the 'S' marker.
func TestASCII_RawStart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.ASCII(&buf, square(t, solver.WithStartPolicy(region.RawStart))))
	assert.Contains(t, buf.String(), "OS─┐O")
}

// TestImage checks size and the colours of a few glyph pixels.
func TestImage(t *testing.T) {
	r := square(t)
	img := render.Image(r, 2)
	assert.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())

	// Tile (2,2) is inside: its glyph spans pixels 12..17 at scale 2.
	assert.Equal(t, render.InsideColor, img.RGBAAt(14, 14))
	// Tile (0,0) is outside.
	assert.Equal(t, render.OutsideColor, img.RGBAAt(1, 1))
	// Tile (1,1) is the inferred 'F': centre and east/south arms are pipe, north arm is not.
	assert.Equal(t, render.PipeColor, img.RGBAAt(9, 9))
	assert.Equal(t, render.PipeColor, img.RGBAAt(11, 9))
	assert.Equal(t, render.PipeColor, img.RGBAAt(9, 11))
	assert.Equal(t, render.LoopColor, img.RGBAAt(9, 7))

	assert.Equal(t, image.Rect(0, 0, 15, 15), render.Image(r, 0).Bounds())
}

// TestWriteImage round-trips every supported encoder.
func TestWriteImage(t *testing.T) {
	img := render.Image(square(t), 1)
	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		"png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		"bmp":  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		"tiff": func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.WriteImage(&buf, img, format))
			got, err := decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), got.Bounds())
		})
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, render.WriteImage(&buf, img, "gif"), render.ErrUnknownImageFormat)
}

// TestSaveImage picks the encoder from the file extension.
func TestSaveImage(t *testing.T) {
	r := square(t)
	dir := t.TempDir()
	for _, name := range []string{"loop.png", "loop.BMP", "loop.tif"} {
		path := filepath.Join(dir, name)
		require.NoError(t, render.SaveImage(path, r, 1), name)
		st, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, st.Size(), name)
	}
	assert.ErrorIs(t, render.SaveImage(filepath.Join(dir, "loop.jpg"), r, 1), render.ErrUnknownImageFormat)
}
