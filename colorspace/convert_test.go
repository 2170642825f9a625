package colorspace

import (
	"testing"

	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/mmuldo/deltae/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSRGB(t *testing.T, wp WhitePoint) *Converter {
	t.Helper()
	d, err := Lookup("sRGB")
	require.NoError(t, err)
	return NewConverter(d, wp)
}

func TestLookup(t *testing.T) {
	d, err := Lookup("srgb")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, d.Name)

	_, err = Lookup("ProPhoto")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConfig))
	assert.Equal(t, []string{"sRGB"}, Names())
}

func TestParseWhitePoint(t *testing.T) {
	for in, want := range map[string]WhitePoint{"": D65, "d65": D65, "D50": D50, " d50 ": D50} {
		got, err := ParseWhitePoint(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseWhitePoint("E")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConfig))
}

func TestColorLab_Neutrals(t *testing.T) {
	for _, wp := range []WhitePoint{D65, D50} {
		c := newSRGB(t, wp)

		black := c.ColorLab(0, 0, 0)
		assert.InDelta(t, 0, black.L(), 1e-6)
		assert.InDelta(t, 0, black.A(), 1e-6)
		assert.InDelta(t, 0, black.B(), 1e-6)

		white := c.ColorLab(1, 1, 1)
		assert.InDelta(t, 100, white.L(), 0.01)
		assert.InDelta(t, 0, white.A(), 0.05)
		assert.InDelta(t, 0, white.B(), 0.05)
	}
}

func TestColorLab_RedD65(t *testing.T) {
	c := newSRGB(t, D65)

	red := c.ColorLab(1, 0, 0)
	assert.InDelta(t, 53.24, red.L(), 0.1)
	assert.InDelta(t, 80.09, red.A(), 0.2)
	assert.InDelta(t, 67.20, red.B(), 0.2)
}

func TestToXYZ_RejectsAlpha(t *testing.T) {
	c := newSRGB(t, D65)

	_, err := c.ToXYZ(image.New(2, 2, 4))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindShape))
}

func TestLab_PreservesShape(t *testing.T) {
	c := newSRGB(t, D65)
	m := image.New(3, 2, 3)
	copy(m.At(2, 1), []float64{1, 1, 1})

	lab, err := c.Lab(m)
	require.NoError(t, err)
	assert.Equal(t, 3, lab.Width)
	assert.Equal(t, 2, lab.Height)
	require.Len(t, lab.Pix, 6)
	assert.InDelta(t, 0, lab.At(0, 0).L(), 1e-6)
	assert.InDelta(t, 100, lab.At(2, 1).L(), 0.01)
}
