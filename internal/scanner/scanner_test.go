package scanner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/internal/scanner"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
)

var _ = Describe("Scanner", func() {
	var (
		testDir    string
		testLogger *logger.Logger
		ctx        context.Context
	)

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "scanner-test-*")
		Expect(err).NotTo(HaveOccurred())

		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[test] "))
		testLogger.SetLevel(logger.LevelTrace)
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	Context("when scanning an empty directory", func() {
		It("should return no fonts", func() {
			s := scanner.New(testLogger)
			fonts, err := s.FindFonts(ctx, testDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(fonts).To(BeEmpty())
		})
	})

	Context("when scanning a directory with fonts", func() {
		BeforeEach(func() {
			for i, ext := range []string{".ttf", ".otf", ".TTF"} {
				err := os.WriteFile(
					filepath.Join(testDir, fmt.Sprintf("font%d%s", i, ext)),
					[]byte("dummy font content"),
					0644,
				)
				Expect(err).NotTo(HaveOccurred())
			}

			for _, name := range []string{"readme.txt", "font.pfb", "fonts.dir"} {
				err := os.WriteFile(filepath.Join(testDir, name), []byte("other"), 0644)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should find only TrueType and OpenType files", func() {
			s := scanner.New(testLogger)
			fonts, err := s.FindFonts(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(fonts).To(ConsistOf(
				filepath.Join(testDir, "font0.ttf"),
				filepath.Join(testDir, "font1.otf"),
				filepath.Join(testDir, "font2.TTF"),
			))
		})

		It("should not report a directory twice", func() {
			s := scanner.New(testLogger)
			fonts, err := s.FindFonts(ctx, testDir, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(fonts).To(HaveLen(3))
		})

		It("should stop when the context is canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			s := scanner.New(testLogger)
			_, err := s.FindFonts(canceled, testDir)
			Expect(err).To(Equal(context.Canceled))
		})
	})

	Context("when scanning nested directories", func() {
		BeforeEach(func() {
			nestedDir := filepath.Join(testDir, "truetype", "mono")
			err := os.MkdirAll(nestedDir, 0755)
			Expect(err).NotTo(HaveOccurred())

			err = os.WriteFile(filepath.Join(nestedDir, "Mono-Regular.ttf"), []byte("dummy"), 0644)
			Expect(err).NotTo(HaveOccurred())
			err = os.WriteFile(filepath.Join(testDir, "Sans.ttf"), []byte("dummy"), 0644)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should find fonts in all directories, sorted", func() {
			s := scanner.New(testLogger)
			fonts, err := s.FindFonts(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(fonts).To(Equal([]string{
				filepath.Join(testDir, "Sans.ttf"),
				filepath.Join(testDir, "truetype", "mono", "Mono-Regular.ttf"),
			}))
		})
	})

	Context("when a directory does not exist", func() {
		It("should skip it", func() {
			s := scanner.New(testLogger)
			fonts, err := s.FindFonts(ctx, filepath.Join(testDir, "missing"), "")
			Expect(err).NotTo(HaveOccurred())
			Expect(fonts).To(BeEmpty())
		})
	})

	Describe("DefaultFontDirs", func() {
		It("should use WINDIR on windows", func() {
			GinkgoT().Setenv("WINDIR", "/win")
			Expect(scanner.DefaultFontDirs("windows")).To(Equal([]string{filepath.Join("/win", "Fonts")}))
		})

		It("should include the system directory on linux", func() {
			Expect(scanner.DefaultFontDirs("linux")).To(ContainElement("/usr/share/fonts"))
		})

		It("should include the system directory on macOS", func() {
			Expect(scanner.DefaultFontDirs("darwin")).To(ContainElement("/System/Library/Fonts"))
		})
	})
})
