package difference

import (
	"github.com/mmuldo/deltae/colorspace"
	apperrors "github.com/mmuldo/deltae/errors"
)

// Map holds one Delta E value per pixel.
type Map struct {
	Width  int
	Height int
	Values []float64
}

// Compute returns the per-pixel difference between a and b. The images must
// have the same dimensions; nothing is broadcast or truncated.
func Compute(a, b *colorspace.LabImage, m Method) (*Map, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return nil, apperrors.NewShapeMismatchError(a.Width, a.Height, b.Width, b.Height)
	}
	if len(a.Pix) != len(b.Pix) {
		return nil, apperrors.NewInternalError("lab buffers disagree with their dimensions", nil)
	}

	out := &Map{Width: a.Width, Height: a.Height, Values: make([]float64, len(a.Pix))}
	for i := range a.Pix {
		out.Values[i] = m.Distance(a.Pix[i], b.Pix[i])
	}
	return out, nil
}

// Mean is the arithmetic mean of the map, 0 for an empty map.
func (d *Map) Mean() float64 {
	if len(d.Values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range d.Values {
		sum += v
	}
	return sum / float64(len(d.Values))
}

// Max is the largest value in the map, 0 for an empty map.
func (d *Map) Max() float64 {
	var top float64
	for _, v := range d.Values {
		if v > top {
			top = v
		}
	}
	return top
}

// Mean computes the map and reduces it in one step.
func Mean(a, b *colorspace.LabImage, m Method) (float64, error) {
	d, err := Compute(a, b, m)
	if err != nil {
		return 0, err
	}
	return d.Mean(), nil
}
