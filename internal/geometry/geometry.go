package geometry

import (
	"errors"
	"math"

	"github.com/kpauljoseph/wrt2pdf/internal/fonts"
	"github.com/kpauljoseph/wrt2pdf/pkg/models"
)

var ErrNoPrintArea = errors.New("No print area")

// Layout is the resolved page: its full size, margins and the printable
// area, all in points, plus the resulting capacity.
type Layout struct {
	Page      models.PageDimensions
	Margins   models.Margins
	Printable models.PageDimensions
	Capacity  models.PageCapacity
}

// Resolve derives the page layout. page is in points, margins in
// millimeters. A layout without a usable print area is still returned
// together with ErrNoPrintArea so callers can report it.
func Resolve(page models.PageDimensions, orientation models.Orientation, margins models.Margins, metrics fonts.Metrics) (Layout, error) {
	oriented := page.Oriented(orientation)
	pts := margins.Points()

	printable := models.PageDimensions{
		Width:  oriented.Width - pts.Left - pts.Right,
		Height: oriented.Height - pts.Top - pts.Bottom,
	}

	layout := Layout{
		Page:      oriented,
		Margins:   pts,
		Printable: printable,
		Capacity: models.PageCapacity{
			MaxColumns: fit(printable.Width, metrics.Advance),
			MaxLines:   fit(printable.Height, metrics.LineHeight),
		},
	}

	if !layout.Capacity.Usable() {
		return layout, ErrNoPrintArea
	}
	return layout, nil
}

// fitTolerance keeps ratios like 109.99999999 from losing a whole line.
const fitTolerance = 1e-9

// fit returns how often unit fits into length, never less than zero.
func fit(length, unit float64) int {
	if unit <= 0 || length <= 0 {
		return 0
	}
	return int(math.Max(0, math.Floor(length/unit+fitTolerance)))
}
