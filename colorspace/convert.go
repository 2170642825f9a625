package colorspace

import (
	"fmt"

	"github.com/jkl1337/go-chromath"
	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/mmuldo/deltae/image"
)

// XYZImage holds one tristimulus value per pixel, on the Y=1 scale.
type XYZImage struct {
	Width  int
	Height int
	Pix    []chromath.XYZ
}

// LabImage holds one CIE L*a*b* value per pixel, L* in [0,100].
type LabImage struct {
	Width  int
	Height int
	Pix    []chromath.Lab
}

// At returns the Lab value of the pixel at (x, y).
func (m *LabImage) At(x, y int) chromath.Lab {
	return m.Pix[y*m.Width+x]
}

// Converter maps normalized RGB samples to XYZ and Lab for one descriptor
// and reference white.
type Converter struct {
	Descriptor *Descriptor
	WhitePoint WhitePoint

	rgb2Xyz *chromath.RGBTransformer
	lab2Xyz *chromath.LabTransformer
}

// NewConverter builds the transformers for d. With D50 the working space
// white is Bradford-adapted; with D65 sRGB is used as-is.
func NewConverter(d *Descriptor, wp WhitePoint) *Converter {
	c := &Converter{Descriptor: d, WhitePoint: wp}

	switch wp {
	case D50:
		c.rgb2Xyz = chromath.NewRGBTransformer(d.space, &chromath.AdaptationBradford, &chromath.IlluminantRefD50, &chromath.Scaler8bClamping, 1.0, nil)
		c.lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD50)
	default:
		c.rgb2Xyz = chromath.NewRGBTransformer(d.space, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
		c.lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	}

	return c
}

// ToXYZ linearizes the samples with the descriptor's transfer function and
// applies its primary matrix. m must have exactly three channels.
func (c *Converter) ToXYZ(m *image.Image) (*XYZImage, error) {
	if m.Channels != 3 {
		return nil, apperrors.NewShapeError(fmt.Sprintf("converter needs 3 channels, got %d", m.Channels))
	}

	out := &XYZImage{Width: m.Width, Height: m.Height, Pix: make([]chromath.XYZ, m.Width*m.Height)}
	for i := range out.Pix {
		p := m.Pix[i*3 : i*3+3]
		out.Pix[i] = c.XYZ(p[0], p[1], p[2])
	}
	return out, nil
}

// ToLab maps every XYZ value to Lab relative to the converter's white.
func (c *Converter) ToLab(m *XYZImage) *LabImage {
	out := &LabImage{Width: m.Width, Height: m.Height, Pix: make([]chromath.Lab, len(m.Pix))}
	for i, xyz := range m.Pix {
		out.Pix[i] = c.lab2Xyz.Invert(xyz)
	}
	return out
}

// Lab runs both stages.
func (c *Converter) Lab(m *image.Image) (*LabImage, error) {
	xyz, err := c.ToXYZ(m)
	if err != nil {
		return nil, err
	}
	return c.ToLab(xyz), nil
}

// XYZ converts a single normalized RGB triple.
func (c *Converter) XYZ(r, g, b float64) chromath.XYZ {
	return c.rgb2Xyz.Convert(chromath.RGB{r * 255, g * 255, b * 255})
}

// ColorLab converts a single normalized RGB triple to Lab.
func (c *Converter) ColorLab(r, g, b float64) chromath.Lab {
	return c.lab2Xyz.Invert(c.XYZ(r, g, b))
}
