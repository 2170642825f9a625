package quantize

import (
	"image"
	"image/color"
	"sort"
)

// Swatch is one distinct color of an image and the number of pixels
// painted with it.
type Swatch struct {
	Color  color.NRGBA
	Pixels int
}

// Histogram counts the pixels of every distinct non-premultiplied color in
// img. A palette codec is judged by how many keys survive.
func Histogram(img image.Image) map[color.NRGBA]int {
	h := make(map[color.NRGBA]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			h[color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)]++
		}
	}
	return h
}

// Rank flattens a histogram into swatches, most used first. Ties are broken
// on the channel values so the order is reproducible.
func Rank(h map[color.NRGBA]int) []Swatch {
	out := make([]Swatch, 0, len(h))
	for c, n := range h {
		out = append(out, Swatch{Color: c, Pixels: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Pixels != out[j].Pixels {
			return out[i].Pixels > out[j].Pixels
		}
		return packed(out[i].Color) < packed(out[j].Color)
	})
	return out
}

func packed(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
