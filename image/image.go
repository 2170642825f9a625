package image

import (
	"fmt"
	"image"
	"image/color"

	apperrors "github.com/mmuldo/deltae/errors"
)

// Image is a row-major array of samples in [0,1] with shape (Height, Width, Channels).
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []float64
}

// New allocates a zeroed image.
func New(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}
}

// At returns the samples of the pixel at (x, y).
func (m *Image) At(x, y int) []float64 {
	i := (y*m.Width + x) * m.Channels
	return m.Pix[i : i+m.Channels]
}

// FromImage converts a decoded image into normalized samples. Color samples
// are un-premultiplied so that alpha never leaks into R, G and B.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	channels := channelCount(src)
	m := New(b.Dx(), b.Dy(), channels)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := color.NRGBA64Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			px := m.At(x, y)
			switch channels {
			case 1:
				px[0] = norm(c.R)
			case 2:
				px[0], px[1] = norm(c.R), norm(c.A)
			default:
				px[0], px[1], px[2] = norm(c.R), norm(c.G), norm(c.B)
				if channels == 4 {
					px[3] = norm(c.A)
				}
			}
		}
	}

	return m
}

// RGB returns m restricted to its first three channels. A 3-channel image is
// returned unchanged.
func RGB(m *Image) (*Image, error) {
	if m.Channels < 3 {
		return nil, apperrors.NewShapeError(fmt.Sprintf("image has %d channel(s), need at least 3", m.Channels))
	}
	if m.Channels == 3 {
		return m, nil
	}

	out := New(m.Width, m.Height, 3)
	for i, j := 0, 0; i < len(m.Pix); i, j = i+m.Channels, j+3 {
		copy(out.Pix[j:j+3], m.Pix[i:i+3])
	}
	return out, nil
}

func norm(v uint16) float64 {
	return float64(v) / 0xffff
}

// channelCount mirrors the sample layout the file was stored with.
func channelCount(src image.Image) int {
	switch s := src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range s.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 4
	}
}
