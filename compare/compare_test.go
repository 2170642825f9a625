package compare

import (
	"context"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/deltae/colorspace"
	"github.com/mmuldo/deltae/difference"
	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/mmuldo/deltae/image"
	"github.com/mmuldo/deltae/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func gradient(w, h int, alpha uint8) *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x * 40), uint8(y * 40), uint8(255 - x*y*10), alpha})
		}
	}
	return img
}

func writePNG(t *testing.T, name string, img stdimage.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func run(t *testing.T, a, b stdimage.Image) *Result {
	t.Helper()
	res, err := Images(image.FromImage(a), image.FromImage(b), DefaultOptions())
	require.NoError(t, err)
	return res
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, colorspace.DefaultName, opts.ColorSpace.Name)
	assert.Equal(t, colorspace.D65, opts.WhitePoint)
	assert.Equal(t, difference.CIE2000, opts.Method)
}

func TestFiles_IdenticalRed(t *testing.T) {
	red := solid(2, 2, color.NRGBA{255, 0, 0, 255})
	a := writePNG(t, "a.png", red)
	b := writePNG(t, "b.png", red)

	res, err := Files(context.Background(), a, b, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Mean)
	assert.Equal(t, 2, res.Width)
	assert.Equal(t, 2, res.Height)
	assert.Equal(t, a, res.Original)
	assert.Equal(t, b, res.Compressed)
}

func TestImages_BlackWhite(t *testing.T) {
	res := run(t, solid(1, 1, color.Black), solid(1, 1, color.White))

	assert.InDelta(t, 100, res.Mean, 1e-3)
	assert.InDelta(t, 100, res.Max, 1e-3)
	assert.InDelta(t, 255*255, res.MSE, 1e-6)
	assert.InDelta(t, 0, res.PSNR, 1e-9)
	assert.Less(t, res.SSIM, 0.01)
}

func TestImages_Reflexive(t *testing.T) {
	img := gradient(6, 5, 255)

	res := run(t, img, img)
	assert.Equal(t, 0.0, res.Mean)
	assert.Equal(t, 0.0, res.MSE)
	assert.Equal(t, quality.MaxPSNR, res.PSNR)
	assert.InDelta(t, 1, res.SSIM, 1e-12)
}

func TestImages_SymmetricAndNonNegative(t *testing.T) {
	a := gradient(6, 5, 255)
	b := solid(6, 5, color.NRGBA{90, 140, 30, 255})

	ab := run(t, a, b).Mean
	ba := run(t, b, a).Mean
	assert.Greater(t, ab, 0.0)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestImages_AlphaIgnored(t *testing.T) {
	ref := solid(6, 5, color.NRGBA{200, 10, 80, 255})

	opaque := run(t, gradient(6, 5, 255), ref)
	translucent := run(t, gradient(6, 5, 77), ref)

	assert.Equal(t, opaque.Mean, translucent.Mean)
}

func TestImages_ShapeMismatch(t *testing.T) {
	_, err := Images(image.FromImage(solid(10, 10, color.White)), image.FromImage(solid(20, 20, color.White)), DefaultOptions())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindShapeMismatch))
}

func TestImages_Grayscale(t *testing.T) {
	gray := stdimage.NewGray(stdimage.Rect(0, 0, 2, 2))

	_, err := Images(image.FromImage(gray), image.FromImage(solid(2, 2, color.White)), DefaultOptions())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindShape))
}

func TestImages_MethodSelection(t *testing.T) {
	opts := DefaultOptions()
	opts.Method = difference.CIE1976

	res, err := Images(image.FromImage(solid(1, 1, color.Black)), image.FromImage(solid(1, 1, color.White)), opts)
	require.NoError(t, err)
	assert.Equal(t, difference.CIE1976, res.Method)
	assert.InDelta(t, 100, res.Mean, 1e-2)
}

func TestFiles_DecodeError(t *testing.T) {
	a := writePNG(t, "a.png", solid(1, 1, color.White))

	_, err := Files(context.Background(), a, filepath.Join(t.TempDir(), "missing.png"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDecode))
	assert.Contains(t, err.Error(), "load compressed")
}

func TestFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Files(ctx, "a.png", "b.png", DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
