package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/kpauljoseph/wrt2pdf/internal/fonts"
	"github.com/kpauljoseph/wrt2pdf/internal/geometry"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"github.com/kpauljoseph/wrt2pdf/pkg/models"
	"github.com/kpauljoseph/wrt2pdf/pkg/version"
	"golang.org/x/text/encoding/charmap"
)

const TabWidth = 8

// breakTolerance absorbs the rounding error fpdf accumulates while advancing
// line by line, so a page holding exactly the computed number of lines does
// not break before the last one.
const breakTolerance = 1e-6

// Document is everything needed to write one PDF.
type Document struct {
	Lines       []string
	Title       string
	Face        fonts.Face
	Size        float64
	Orientation models.Orientation
	Layout      geometry.Layout
}

// Result describes a written PDF.
type Result struct {
	Path  string
	Pages int
}

type Renderer struct {
	validator *Validator
	logger    *logger.Logger
}

// NewRenderer returns a renderer. With validate set every written file is
// read back and checked.
func NewRenderer(validate bool, logger *logger.Logger) *Renderer {
	r := &Renderer{logger: logger}
	if validate {
		r.validator = NewValidator(logger)
	}
	return r
}

// Render lays out doc.Lines and writes the PDF to path. Page breaks and
// line wrapping are left to fpdf.
func (r *Renderer) Render(ctx context.Context, doc Document, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	portrait := doc.Layout.Page.Oriented(models.Portrait)
	orientation := "P"
	if doc.Orientation == models.Landscape {
		orientation = "L"
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: portrait.Width, Ht: portrait.Height},
	})

	m := doc.Layout.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(true, m.Bottom-breakTolerance)
	pdf.SetCellMargin(0)
	pdf.SetCreator(version.Creator(), true)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}

	pdf.AddPage()
	if err := doc.Face.Apply(pdf, doc.Size); err != nil {
		return Result{}, err
	}

	text := JoinLines(doc.Lines)
	if doc.Face.IsCore() {
		text = toWinAnsi(text)
	}
	lineHeight := doc.Face.LineHeight(doc.Size)
	pdf.MultiCell(0, lineHeight, text, "", "L", false)

	r.logger.Debug("Writing %d lines to %s", len(doc.Lines), path)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return Result{}, fmt.Errorf("failed to write PDF %s: %w", path, err)
	}

	result := Result{Path: path, Pages: pdf.PageNo()}
	if r.validator != nil {
		pages, err := r.validator.Check(path)
		if err != nil {
			return result, err
		}
		result.Pages = pages
	}

	r.logger.Debug("Wrote %d page(s) to %s", result.Pages, path)
	return result, nil
}

// JoinLines joins lines with newlines and expands tabs.
func JoinLines(lines []string) string {
	expanded := make([]string, len(lines))
	for i, line := range lines {
		expanded[i] = ExpandTabs(line, TabWidth)
	}
	return strings.Join(expanded, "\n")
}

// ExpandTabs replaces tabs by spaces up to the next multiple of width.
func ExpandTabs(line string, width int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// toWinAnsi converts text for the core fonts, which only know the
// Windows-1252 character set. Characters outside of it become '?'.
func toWinAnsi(text string) string {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r == '\n' {
			out = append(out, '\n')
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
