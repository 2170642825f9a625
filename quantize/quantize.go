package quantize

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/esimov/colorquant"
	apperrors "github.com/mmuldo/deltae/errors"
)

var floydSteinberg = colorquant.Dither{
	Filter: [][]float32{
		[]float32{0.0, 0.0, 7.0 / 16.0},
		[]float32{3.0 / 16.0, 5.0 / 16.0, 1.0 / 16.0},
	},
}

// Quantize reduces src to at most num colors, the way a palette codec would.
// Floyd-Steinberg error diffusion is applied when dither is set.
func Quantize(src image.Image, num int, dither bool) (image.Image, error) {
	if num < 2 || num > 256 {
		return nil, apperrors.NewConfigError(fmt.Sprintf("colors must be within [2, 256], got %d", num), nil)
	}

	b := src.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	if dither {
		return floydSteinberg.Quantize(src, o, num, true, true), nil
	}
	return colorquant.NoDither.Quantize(src, o, num, false, true), nil
}

// WritePNG encodes img to path. No file is left behind when encoding fails.
func WritePNG(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return apperrors.NewIOError(path, "cannot create output", e)
	}

	if e = png.Encode(f, img); e != nil {
		f.Close()
		os.Remove(path)
		return apperrors.NewIOError(path, "cannot encode png", e)
	}
	if e = f.Close(); e != nil {
		return apperrors.NewIOError(path, "cannot write output", e)
	}
	return nil
}
