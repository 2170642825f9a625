package compare

import (
	"context"
	"fmt"

	"github.com/mmuldo/deltae/colorspace"
	"github.com/mmuldo/deltae/difference"
	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/mmuldo/deltae/image"
	"github.com/mmuldo/deltae/logger"
	"github.com/mmuldo/deltae/quality"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Options controls the comparison pipeline.
type Options struct {
	ColorSpace *colorspace.Descriptor
	WhitePoint colorspace.WhitePoint
	Method     difference.Method
}

// DefaultOptions compares in sRGB against D65 with CIEDE2000.
func DefaultOptions() Options {
	d, _ := colorspace.Lookup(colorspace.DefaultName)
	return Options{
		ColorSpace: d,
		WhitePoint: colorspace.D65,
		Method:     difference.DefaultMethod,
	}
}

// Result holds the output of a pipeline run.
type Result struct {
	Original   string
	Compressed string
	Width      int
	Height     int
	ColorSpace string
	WhitePoint colorspace.WhitePoint
	Method     difference.Method
	Mean       float64
	Max        float64

	// Channel statistics on the 0-255 scale, reported alongside Delta E.
	MSE  float64
	PSNR float64
	SSIM float64
}

// Files loads both images concurrently and compares them.
func Files(ctx context.Context, original, compressed string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var a, b *image.Image
	var g errgroup.Group
	g.Go(func() error {
		m, err := image.Load(original)
		if err != nil {
			return fmt.Errorf("load original: %w", err)
		}
		a = m
		return nil
	})
	g.Go(func() error {
		m, err := image.Load(compressed)
		if err != nil {
			return fmt.Errorf("load compressed: %w", err)
		}
		b = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res, err := Images(a, b, opts)
	if err != nil {
		return nil, err
	}
	res.Original, res.Compressed = original, compressed
	return res, nil
}

// Images runs normalize -> convert -> aggregate on two decoded images.
func Images(a, b *image.Image, opts Options) (*Result, error) {
	if opts.ColorSpace == nil {
		opts.ColorSpace = DefaultOptions().ColorSpace
	}

	// 1. Drop alpha
	a, err := image.RGB(a)
	if err != nil {
		return nil, fmt.Errorf("normalize original: %w", err)
	}
	b, err = image.RGB(b)
	if err != nil {
		return nil, fmt.Errorf("normalize compressed: %w", err)
	}

	// 2. Fail before converting anything
	if a.Width != b.Width || a.Height != b.Height {
		return nil, apperrors.NewShapeMismatchError(a.Width, a.Height, b.Width, b.Height)
	}

	// 3. RGB -> XYZ -> Lab
	conv := colorspace.NewConverter(opts.ColorSpace, opts.WhitePoint)
	labA, err := conv.Lab(a)
	if err != nil {
		return nil, fmt.Errorf("convert original: %w", err)
	}
	labB, err := conv.Lab(b)
	if err != nil {
		return nil, fmt.Errorf("convert compressed: %w", err)
	}

	// 4. Delta E map and mean
	d, err := difference.Compute(labA, labB, opts.Method)
	if err != nil {
		return nil, fmt.Errorf("delta E: %w", err)
	}

	res := &Result{
		Width:      a.Width,
		Height:     a.Height,
		ColorSpace: opts.ColorSpace.Name,
		WhitePoint: opts.WhitePoint,
		Method:     opts.Method,
		Mean:       d.Mean(),
		Max:        d.Max(),
	}

	// 5. Signal metrics on the same RGB samples
	res.MSE = quality.MSE(a, b)
	res.PSNR = quality.PSNR(res.MSE)
	res.SSIM = quality.SSIM(a, b)

	logger.WithFields(logrus.Fields{
		"width":      res.Width,
		"height":     res.Height,
		"colorspace": res.ColorSpace,
		"whitepoint": res.WhitePoint,
		"method":     res.Method.String(),
		"mean":       res.Mean,
		"max":        res.Max,
		"psnr":       res.PSNR,
		"ssim":       res.SSIM,
	}).Debug("delta E computed")

	return res, nil
}
