package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultFontFamily = "Hack"
	DefaultFontSize   = 10
)

var ErrFontSpec = errors.New("Too much set")

// FontSpec is a parsed --font value.
type FontSpec struct {
	Family string
	Style  string
	Size   int
}

// ParseFont accepts "Family", "Family,Style", "Size" and any mix of those in
// any order, e.g. "Mono,10,Bold". The first non-numeric token is the family,
// the second one the style.
func ParseFont(value string) (FontSpec, error) {
	spec := FontSpec{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.ParseUint(part, 10, 31); err == nil {
			if spec.Size != 0 || n == 0 {
				return FontSpec{}, fmt.Errorf("%w: %s", ErrFontSpec, value)
			}
			spec.Size = int(n)
			continue
		}
		switch {
		case spec.Family == "":
			spec.Family = part
		case spec.Style == "":
			spec.Style = part
		default:
			return FontSpec{}, fmt.Errorf("%w: %s", ErrFontSpec, value)
		}
	}

	if spec.Size == 0 {
		spec.Size = DefaultFontSize
	}
	if spec.Family == "" {
		spec.Family = DefaultFontFamily
	}
	return spec, nil
}
