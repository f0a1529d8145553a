package inspect

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"github.com/kpauljoseph/wrt2pdf/pkg/models"
	"github.com/kpauljoseph/wrt2pdf/pkg/utils"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageReport is what is known about one page of a PDF.
type PageReport struct {
	Number     int
	Dimensions models.PageDimensions
	Text       string
	ImageHash  string
}

// Report describes a whole PDF.
type Report struct {
	Path  string
	Pages []PageReport
}

type Inspector struct {
	withImages bool
	logger     *logger.Logger
}

// New returns an inspector. withImages renders every page to compute its
// image hash, which is slow for long documents.
func New(withImages bool, logger *logger.Logger) *Inspector {
	return &Inspector{withImages: withImages, logger: logger}
}

// Inspect reads page sizes with pdfcpu and page text with MuPDF.
func (i *Inspector) Inspect(path string) (*Report, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() != len(dims) {
		i.logger.Debug("pdfcpu reports %d pages, MuPDF %d", len(dims), doc.NumPage())
	}

	report := &Report{Path: path}
	//Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		page := PageReport{Number: pageNum + 1}
		if pageNum < len(dims) {
			page.Dimensions = models.PageDimensions{Width: dims[pageNum].Width, Height: dims[pageNum].Height}
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text of page %d: %w", pageNum+1, err)
		}
		page.Text = text

		if i.withImages {
			img, err := doc.Image(pageNum)
			if err != nil {
				return nil, fmt.Errorf("failed to render page %d: %w", pageNum+1, err)
			}
			page.ImageHash, err = utils.GenerateImageHash(img)
			if err != nil {
				return nil, err
			}
		}

		i.logger.Trace("Page %d: %.2f x %.2f", page.Number, page.Dimensions.Width, page.Dimensions.Height)
		report.Pages = append(report.Pages, page)
	}

	return report, nil
}

// Difference is one mismatch found by Compare.
type Difference struct {
	Page   int
	Reason string
}

func (d Difference) String() string {
	if d.Page == 0 {
		return d.Reason
	}
	return fmt.Sprintf("page %d: %s", d.Page, d.Reason)
}

// Compare lists how b differs from a in page count, page size, text and,
// when both reports have them, page images.
func Compare(a, b *Report) []Difference {
	var diffs []Difference
	if len(a.Pages) != len(b.Pages) {
		diffs = append(diffs, Difference{Reason: fmt.Sprintf("page count %d != %d", len(a.Pages), len(b.Pages))})
	}

	n := min(len(a.Pages), len(b.Pages))
	for i := 0; i < n; i++ {
		pa, pb := a.Pages[i], b.Pages[i]
		if pa.Dimensions != pb.Dimensions {
			diffs = append(diffs, Difference{Page: pa.Number, Reason: fmt.Sprintf("size %s != %s", pa.Dimensions, pb.Dimensions)})
		}
		if pa.Text != pb.Text {
			diffs = append(diffs, Difference{Page: pa.Number, Reason: "text differs"})
		}
		if pa.ImageHash != "" && pb.ImageHash != "" && pa.ImageHash != pb.ImageHash {
			diffs = append(diffs, Difference{Page: pa.Number, Reason: "image differs"})
		}
	}
	return diffs
}
