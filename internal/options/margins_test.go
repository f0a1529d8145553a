package options_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/internal/options"
	"github.com/kpauljoseph/wrt2pdf/pkg/models"
)

var _ = Describe("Margins option", func() {
	DescribeTable("always yields four margins",
		func(value string, expected models.Margins) {
			margins, err := options.ParseMargins(value)
			Expect(err).NotTo(HaveOccurred())
			Expect(margins).To(Equal(expected))
		},
		Entry("empty", "", models.Margins{Left: 5, Right: 5, Top: 5, Bottom: 5}),
		Entry("default string", options.DefaultMargins, models.Margins{Left: 5, Right: 5, Top: 5, Bottom: 5}),
		Entry("left only", "10.5", models.Margins{Left: 10.5, Right: 5, Top: 5, Bottom: 5}),
		Entry("left and top", "10.5,,20", models.Margins{Left: 10.5, Right: 5, Top: 20, Bottom: 5}),
		Entry("all four", "1,2,3,4", models.Margins{Left: 1, Right: 2, Top: 3, Bottom: 4}),
		Entry("only commas", ",,,", models.Margins{Left: 5, Right: 5, Top: 5, Bottom: 5}),
		Entry("zero", "0,0,0,0", models.Margins{}),
		Entry("extra values ignored", "1,2,3,4,5", models.Margins{Left: 1, Right: 2, Top: 3, Bottom: 4}),
	)

	DescribeTable("rejects malformed values",
		func(value, bad string) {
			_, err := options.ParseMargins(value)
			Expect(err).To(MatchError(options.ErrBadMargin))
			Expect(err.Error()).To(Equal("Bad margin value: " + bad))
		},
		Entry("word", "1,abc", "abc"),
		Entry("negative", "-1", "-1"),
		Entry("not a number", "NaN", "NaN"),
		Entry("bad fifth value", "1,2,3,4,x", "x"),
	)
})
