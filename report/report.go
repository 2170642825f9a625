package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/deltae/compare"
	apperrors "github.com/mmuldo/deltae/errors"
)

// FormatFloat renders v the way a plain print of a float does: shortest
// round-trip digits, ".0" on integral values, exponent form below 1e-4 and
// from 1e16 up.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return "inf"
		}
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Context exposes a result to templates.
func Context(res *compare.Result) pongo2.Context {
	return pongo2.Context{
		"original":   res.Original,
		"compressed": res.Compressed,
		"width":      res.Width,
		"height":     res.Height,
		"pixels":     res.Width * res.Height,
		"colorspace": res.ColorSpace,
		"whitepoint": string(res.WhitePoint),
		"method":     res.Method.String(),
		"mean":       res.Mean,
		"max":        res.Max,
		"mean_str":   FormatFloat(res.Mean),
		"max_str":    FormatFloat(res.Max),
		"mse":        res.MSE,
		"psnr":       res.PSNR,
		"ssim":       res.SSIM,
		"mse_str":    FormatFloat(res.MSE),
		"psnr_str":   FormatFloat(res.PSNR),
		"ssim_str":   FormatFloat(res.SSIM),
	}
}

// Render executes the template file at path against res.
func Render(path string, res *compare.Result) (string, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return "", apperrors.NewConfigError("cannot load report template "+path, e)
	}
	o, e := tpl.Execute(Context(res))
	if e != nil {
		return "", apperrors.NewInternalError("cannot render report", e)
	}
	return o, nil
}
