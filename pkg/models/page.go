package models

import (
	"fmt"
	"math"
)

// PointsPerMM converts millimeters into PDF user space units (1/72 inch).
const PointsPerMM = 72 / 25.4

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "Landscape"
	}
	return "Portrait"
}

// PageDimensions holds a page size in points.
type PageDimensions struct {
	Width  float64
	Height float64
}

// Oriented returns the dimensions turned to the given orientation.
func (d PageDimensions) Oriented(o Orientation) PageDimensions {
	long, short := math.Max(d.Width, d.Height), math.Min(d.Width, d.Height)
	if o == Landscape {
		return PageDimensions{Width: long, Height: short}
	}
	return PageDimensions{Width: short, Height: long}
}

// Millimeters returns the dimensions rounded to whole millimeters.
func (d PageDimensions) Millimeters() (int, int) {
	return int(math.Round(d.Width / PointsPerMM)), int(math.Round(d.Height / PointsPerMM))
}

func (d PageDimensions) String() string {
	w, h := d.Millimeters()
	return fmt.Sprintf("%d x %d mm", w, h)
}

// Margins are page margins in millimeters.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Points returns the margins converted to points.
func (m Margins) Points() Margins {
	return Margins{
		Left:   m.Left * PointsPerMM,
		Right:  m.Right * PointsPerMM,
		Top:    m.Top * PointsPerMM,
		Bottom: m.Bottom * PointsPerMM,
	}
}

// PageCapacity is the number of characters per line and lines per page
// that fit into the printable area.
type PageCapacity struct {
	MaxColumns int
	MaxLines   int
}

// Usable reports whether at least one character fits on the page.
func (c PageCapacity) Usable() bool {
	return c.MaxColumns >= 1 && c.MaxLines >= 1
}
