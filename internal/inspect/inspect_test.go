package inspect_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/internal/fonts"
	"github.com/kpauljoseph/wrt2pdf/internal/geometry"
	"github.com/kpauljoseph/wrt2pdf/internal/inspect"
	"github.com/kpauljoseph/wrt2pdf/internal/pdf"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"github.com/kpauljoseph/wrt2pdf/pkg/models"
)

var _ = Describe("Inspector", func() {
	var (
		tempDir    string
		testLogger *logger.Logger
		render     func(name string, lines []string, o models.Orientation) string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "inspect-test-*")
		Expect(err).NotTo(HaveOccurred())
		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[test] "))

		render = func(name string, lines []string, o models.Orientation) string {
			ctx := context.Background()
			res, err := fonts.NewProvider(nil, testLogger).Resolve(ctx, "Courier", "")
			Expect(err).NotTo(HaveOccurred())
			metrics, err := fonts.Measure(res.Face, 10)
			Expect(err).NotTo(HaveOccurred())
			layout, err := geometry.Resolve(models.PageDimensions{Width: 595, Height: 842}, o,
				models.Margins{Left: 5, Right: 5, Top: 5, Bottom: 5}, metrics)
			Expect(err).NotTo(HaveOccurred())

			path := filepath.Join(tempDir, name)
			_, err = pdf.NewRenderer(false, testLogger).Render(ctx, pdf.Document{
				Lines:       lines,
				Face:        res.Face,
				Size:        10,
				Orientation: o,
				Layout:      layout,
			}, path)
			Expect(err).NotTo(HaveOccurred())
			return path
		}
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should read back text and page size", func() {
		path := render("a.pdf", []string{"first line", "second line"}, models.Portrait)

		report, err := inspect.New(false, testLogger).Inspect(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(report.Pages).To(HaveLen(1))
		page := report.Pages[0]
		Expect(page.Number).To(Equal(1))
		Expect(page.Dimensions.Width).To(BeNumerically("~", 595, 0.5))
		Expect(page.Dimensions.Height).To(BeNumerically("~", 842, 0.5))
		Expect(page.Text).To(ContainSubstring("first line"))
		Expect(page.Text).To(ContainSubstring("second line"))
		Expect(page.ImageHash).To(BeEmpty())
	})

	It("should find no differences between equal files", func() {
		a := render("a.pdf", []string{"same"}, models.Portrait)
		b := render("b.pdf", []string{"same"}, models.Portrait)

		inspector := inspect.New(true, testLogger)
		ra, err := inspector.Inspect(a)
		Expect(err).NotTo(HaveOccurred())
		rb, err := inspector.Inspect(b)
		Expect(err).NotTo(HaveOccurred())

		Expect(ra.Pages[0].ImageHash).NotTo(BeEmpty())
		Expect(inspect.Compare(ra, rb)).To(BeEmpty())
	})

	It("should report text and size differences", func() {
		a := render("a.pdf", []string{"one"}, models.Portrait)
		b := render("b.pdf", []string{"two"}, models.Landscape)

		inspector := inspect.New(false, testLogger)
		ra, err := inspector.Inspect(a)
		Expect(err).NotTo(HaveOccurred())
		rb, err := inspector.Inspect(b)
		Expect(err).NotTo(HaveOccurred())

		var reasons []string
		for _, d := range inspect.Compare(ra, rb) {
			reasons = append(reasons, d.String())
		}
		Expect(reasons).To(ContainElement("page 1: text differs"))
		Expect(reasons).To(ContainElement(HavePrefix("page 1: size")))
	})

	It("should report a different page count", func() {
		a := &inspect.Report{Pages: []inspect.PageReport{{Number: 1}}}
		b := &inspect.Report{}
		Expect(inspect.Compare(a, b)).To(Equal([]inspect.Difference{{Reason: "page count 1 != 0"}}))
	})

	It("should fail for a file that is not a PDF", func() {
		path := filepath.Join(tempDir, "bogus.pdf")
		Expect(os.WriteFile(path, []byte("not a pdf"), 0644)).To(Succeed())

		_, err := inspect.New(false, testLogger).Inspect(path)
		Expect(err).To(HaveOccurred())
	})
})
