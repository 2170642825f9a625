package colorspace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jkl1337/go-chromath"
	apperrors "github.com/mmuldo/deltae/errors"
)

// DefaultName is the descriptor assumed for every input image.
const DefaultName = "sRGB"

// Descriptor names an RGB working space: its primaries, native white and
// transfer function.
type Descriptor struct {
	Name  string
	space *chromath.RGBSpace
}

var descriptors = map[string]*Descriptor{
	"srgb": {Name: DefaultName, space: &chromath.SpaceSRGB},
}

// Lookup returns the registered descriptor for name, ignoring case.
func Lookup(name string) (*Descriptor, error) {
	if d, ok := descriptors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return nil, apperrors.NewConfigError(
		fmt.Sprintf("unknown colorspace %q (available: %s)", name, strings.Join(Names(), ", ")), nil)
}

// Names lists the registered descriptors.
func Names() []string {
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// WhitePoint is the reference white Lab values are computed against.
type WhitePoint string

const (
	D65 WhitePoint = "D65"
	D50 WhitePoint = "D50"
)

// ParseWhitePoint accepts "D65" or "D50", ignoring case.
func ParseWhitePoint(s string) (WhitePoint, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "D65":
		return D65, nil
	case "D50":
		return D50, nil
	default:
		return "", apperrors.NewConfigError(fmt.Sprintf("unknown white point %q (available: D65, D50)", s), nil)
	}
}
