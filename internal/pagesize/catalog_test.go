package pagesize_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/internal/pagesize"
)

var _ = Describe("Catalog", func() {
	var catalog *pagesize.Catalog

	BeforeEach(func() {
		catalog = pagesize.New()
	})

	Describe("Lookup", func() {
		It("should find A4", func() {
			e, err := catalog.Lookup("A4")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Key).To(Equal("A4"))
			Expect(e.Description()).To(Equal("210 x 297 mm"))
		})

		It("should ignore case", func() {
			e, err := catalog.Lookup("a4")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Key).To(Equal("A4"))
		})

		It("should not match a prefix", func() {
			_, err := catalog.Lookup("A")
			Expect(err).To(MatchError(pagesize.ErrKeyNotFound))
		})

		It("should name the missing key", func() {
			_, err := catalog.Lookup("Napkin")
			Expect(err).To(MatchError("Key not found: Napkin"))
		})
	})

	Describe("Filter", func() {
		It("should return everything for an empty filter", func() {
			Expect(catalog.Filter("")).To(HaveLen(len(catalog.Filter("mm"))))
		})

		It("should match keys ignoring case", func() {
			entries := catalog.Filter("a4")
			Expect(entries).NotTo(BeEmpty())
			for _, e := range entries {
				Expect(strings.ToLower(pagesize.Format(e))).To(ContainSubstring("a4"))
			}
		})

		It("should match descriptions", func() {
			keys := []string{}
			for _, e := range catalog.Filter("210 x 297") {
				keys = append(keys, e.Key)
			}
			Expect(keys).To(ContainElement("A4"))
		})

		It("should be sorted by key", func() {
			entries := catalog.Filter("")
			for i := 1; i < len(entries); i++ {
				Expect(entries[i-1].Key < entries[i].Key).To(BeTrue())
			}
		})

		It("should not list custom sizes", func() {
			for _, e := range catalog.Filter("custom") {
				Expect(strings.ToLower(e.Key)).NotTo(HavePrefix("custom"))
			}
		})
	})

	It("should format entries in two columns", func() {
		e, err := catalog.Lookup("A4")
		Expect(err).NotTo(HaveOccurred())
		Expect(pagesize.Format(e)).To(Equal("A4                 : 210 x 297 mm"))
	})
})
