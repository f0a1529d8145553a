package fonts

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

// bodyFamily is the name under which a font file is registered with fpdf.
const bodyFamily = "body"

// Face is a concrete font that can be handed to the PDF writer.
type Face struct {
	Family     string
	Style      string
	Path       string // empty for PDF core fonts
	FixedPitch bool

	// Ascent and Descent are fractions of the em size, both positive.
	Ascent  float64
	Descent float64

	coreName string
}

// IsCore reports whether the face is one of the fonts every PDF viewer
// ships with, in which case nothing gets embedded.
func (f Face) IsCore() bool {
	return f.Path == ""
}

// LineHeight returns the distance between two baselines in points.
func (f Face) LineHeight(size float64) float64 {
	return (f.Ascent + f.Descent) * size
}

func (f Face) String() string {
	if f.Style == "" {
		return f.Family
	}
	return f.Family + " " + f.Style
}

// Apply registers the face with pdf and makes it the current font.
func (f Face) Apply(pdf *fpdf.Fpdf, size float64) error {
	if f.IsCore() {
		pdf.SetFont(f.coreName, coreStyle(f.Style), size)
		return pdf.Error()
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", f.Path, err)
	}
	pdf.AddUTF8FontFromBytes(bodyFamily, "", data)
	pdf.SetFont(bodyFamily, "", size)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to load font %s: %w", f.Path, err)
	}
	return nil
}

// coreStyle maps a style name onto the style letters used by fpdf.
func coreStyle(style string) string {
	s := strings.ToLower(style)
	var code string
	if strings.Contains(s, "bold") {
		code += "B"
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		code += "I"
	}
	return code
}
