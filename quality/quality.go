package quality

import (
	"math"

	"github.com/mmuldo/deltae/image"
)

// MaxPSNR is reported when the images are identical or nearly so.
const MaxPSNR = 99.0

// WindowSize is the side of the non-overlapping SSIM blocks.
const WindowSize = 8

const (
	peak = 255.0
	c1   = (0.01 * peak) * (0.01 * peak)
	c2   = (0.03 * peak) * (0.03 * peak)
)

// MSE is the mean squared error over all R, G and B samples on the 0-255
// scale. a and b must be 3-channel images of the same size. Empty images
// have an MSE of 0.
func MSE(a, b *image.Image) float64 {
	if len(a.Pix) == 0 {
		return 0
	}
	var sum float64
	for i := range a.Pix {
		d := (a.Pix[i] - b.Pix[i]) * peak
		sum += d * d
	}
	return sum / float64(len(a.Pix))
}

// PSNR converts an MSE to decibels, capped at MaxPSNR.
func PSNR(mse float64) float64 {
	if mse <= 1e-12 {
		return MaxPSNR
	}
	return 10 * math.Log10(peak*peak/mse)
}

// SSIM averages the structural similarity of BT.601 luma over
// non-overlapping WindowSize blocks; partial blocks at the right and bottom
// edges are skipped. An image smaller than one block is scored as a single
// block covering the whole image, and an empty image scores 1.
func SSIM(a, b *image.Image) float64 {
	w, h := a.Width, a.Height
	if w == 0 || h == 0 {
		return 1
	}
	ya, yb := luma(a), luma(b)

	if w < WindowSize || h < WindowSize {
		return window(ya, yb, w, 0, 0, w, h)
	}

	var sum float64
	var n int
	for wy := 0; wy+WindowSize <= h; wy += WindowSize {
		for wx := 0; wx+WindowSize <= w; wx += WindowSize {
			sum += window(ya, yb, w, wx, wy, WindowSize, WindowSize)
			n++
		}
	}
	return sum / float64(n)
}

func luma(m *image.Image) []float64 {
	out := make([]float64, m.Width*m.Height)
	for i := range out {
		p := m.Pix[i*3 : i*3+3]
		out[i] = (0.299*p[0] + 0.587*p[1] + 0.114*p[2]) * peak
	}
	return out
}

// window scores the bw x bh block whose top-left corner is (x0, y0).
func window(ya, yb []float64, stride, x0, y0, bw, bh int) float64 {
	var sumX, sumY, sumX2, sumY2, sumXY float64
	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			xv, yv := ya[y*stride+x], yb[y*stride+x]
			sumX += xv
			sumY += yv
			sumX2 += xv * xv
			sumY2 += yv * yv
			sumXY += xv * yv
		}
	}

	n := float64(bw * bh)
	meanX, meanY := sumX/n, sumY/n
	varX := sumX2/n - meanX*meanX
	varY := sumY2/n - meanY*meanY
	covXY := sumXY/n - meanX*meanY

	num := (2*meanX*meanY + c1) * (2*covXY + c2)
	den := (meanX*meanX + meanY*meanY + c1) * (varX + varY + c2)
	return num / den
}
