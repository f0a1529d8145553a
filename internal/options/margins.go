package options

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/pkg/models"
)

const (
	DefaultMargin  = 5.0
	DefaultMargins = "5.0,5.0,5.0,5.0"
)

var ErrBadMargin = errors.New("Bad margin value")

// ParseMargins reads "left,right,top,bottom" in millimeters. Empty or
// missing values take DefaultMargin. Values after the fourth are checked
// but not used.
func ParseMargins(value string) (models.Margins, error) {
	list := make([]float64, 0, 4)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			list = append(list, DefaultMargin)
			continue
		}
		m, err := strconv.ParseFloat(part, 64)
		if err != nil || m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return models.Margins{}, fmt.Errorf("%w: %s", ErrBadMargin, part)
		}
		list = append(list, m)
	}
	for len(list) < 4 {
		list = append(list, DefaultMargin)
	}

	return models.Margins{
		Left:   list[0],
		Right:  list[1],
		Top:    list[2],
		Bottom: list[3],
	}, nil
}
