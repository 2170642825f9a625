package image

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	apperrors "github.com/mmuldo/deltae/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path into normalized float samples.
func Load(path string) (*Image, error) {
	src, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// Decode opens and decodes the image at path without normalizing it.
func Decode(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, apperrors.NewDecodeError(path, "cannot open image", e)
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, apperrors.NewDecodeError(path, "cannot decode image", e)
	}

	return i, nil
}
