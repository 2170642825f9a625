package difference

import (
	"fmt"
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/lucasb-eyer/go-colorful"
	apperrors "github.com/mmuldo/deltae/errors"
)

// Method selects the color-difference formula.
type Method int

const (
	CIE2000 Method = iota
	CIE1976
	CIE1994
)

// DefaultMethod is CIEDE2000.
const DefaultMethod = CIE2000

var klch = &deltae.KLChDefault

var methodNames = map[Method]string{
	CIE2000: "CIE 2000",
	CIE1976: "CIE 1976",
	CIE1994: "CIE 1994",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts the canonical names ("CIE 2000", "CIE 1976",
// "CIE 1994") and the short aliases ciede2000, cie76 and cie94, ignoring case.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	switch key {
	case "", "cie 2000", "cie2000", "ciede2000", "de2000":
		return CIE2000, nil
	case "cie 1976", "cie1976", "cie76", "de76":
		return CIE1976, nil
	case "cie 1994", "cie1994", "cie94", "de94":
		return CIE1994, nil
	default:
		return 0, apperrors.NewConfigError(
			fmt.Sprintf("unknown delta E method %q (available: CIE 2000, CIE 1976, CIE 1994)", s), nil)
	}
}

// Distance returns the difference between two Lab colors, L* in [0,100].
func (m Method) Distance(std, sample chromath.Lab) float64 {
	switch m {
	case CIE1976:
		return toColorful(std).DistanceCIE76(toColorful(sample)) * 100
	case CIE1994:
		return toColorful(std).DistanceCIE94(toColorful(sample)) * 100
	default:
		d := deltae.CIE2000(std, sample, klch)
		if math.IsNaN(d) {
			// hue is undefined for achromatic pairs
			d = toColorful(std).DistanceCIEDE2000(toColorful(sample)) * 100
		}
		return d
	}
}

// go-colorful keeps Lab scaled down by 100.
func toColorful(lab chromath.Lab) colorful.Color {
	return colorful.Lab(lab.L()/100, lab.A()/100, lab.B()/100)
}
