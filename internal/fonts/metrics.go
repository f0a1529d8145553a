package fonts

import (
	"github.com/go-pdf/fpdf"
)

// ReferenceChar is the glyph whose advance width stands for the width of
// one column.
const ReferenceChar = "X"

// Metrics are the values the page geometry is derived from, in points.
type Metrics struct {
	Advance    float64
	LineHeight float64
}

// Measure asks the PDF writer for the advance width of ReferenceChar in
// face at size points.
func Measure(face Face, size float64) (Metrics, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	if err := face.Apply(pdf, size); err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Advance:    pdf.GetStringWidth(ReferenceChar),
		LineHeight: face.LineHeight(size),
	}, nil
}
