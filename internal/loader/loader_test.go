package loader_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/internal/loader"
)

var _ = Describe("Loader", func() {
	DescribeTable("Load",
		func(input string, expected []string) {
			lines, err := loader.Load(strings.NewReader(input))
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal(expected))
		},
		Entry("empty input", "", nil),
		Entry("single line without newline", "hello", []string{"hello"}),
		Entry("trailing newline", "a\nb\n", []string{"a", "b"}),
		Entry("CRLF line endings", "a\r\nb\r\n", []string{"a", "b"}),
		Entry("empty lines are kept", "a\n\n\nb", []string{"a", "", "", "b"}),
		Entry("a lone newline", "\n", []string{""}),
		Entry("tabs are untouched", "\tx\n", []string{"\tx"}),
	)

	Context("when loading a file", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "loader-test-*")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(tempDir)
		})

		It("should read every line", func() {
			path := filepath.Join(tempDir, "in.txt")
			Expect(os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644)).To(Succeed())

			lines, err := loader.LoadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"one", "two", "three"}))
		})

		It("should fail for a missing file", func() {
			_, err := loader.LoadFile(filepath.Join(tempDir, "missing.txt"))
			Expect(err).To(HaveOccurred())
		})
	})
})
