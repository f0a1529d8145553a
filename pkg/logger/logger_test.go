package logger_test

import (
	"bytes"
	stdlog "log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
)

var _ = Describe("Logger", func() {
	var (
		buf *bytes.Buffer
		log *logger.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = logger.New(logger.WithOutput(buf))
	})

	It("should always print info and notes", func() {
		log.Info("hello %d", 1)
		log.Warn("careful")
		Expect(buf.String()).To(Equal("INFO: hello 1\nNote: careful\n"))
	})

	It("should print debug messages only when verbose", func() {
		log.Debug("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetVerbose(true)
		log.Debug("shown")
		Expect(buf.String()).To(Equal("DEBUG: shown\n"))
	})

	It("should print trace messages only at trace level", func() {
		log.Trace("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetLevel(logger.LevelTrace)
		log.Trace("shown")
		Expect(buf.String()).To(Equal("TRACE: shown\n"))
	})

	It("should print debug messages at trace level", func() {
		log.SetLevel(logger.LevelTrace)
		log.Debug("scan")
		log.Trace("font")
		Expect(buf.String()).To(Equal("DEBUG: scan\nTRACE: font\n"))
	})

	It("should stamp messages with the configured flags", func() {
		log = logger.New(logger.WithOutput(buf), logger.WithFlags(stdlog.Ltime))
		log.Info("msg")
		Expect(buf.String()).To(MatchRegexp(`^\d{2}:\d{2}:\d{2} INFO: msg\n$`))
	})

	It("should honor the prefix", func() {
		log = logger.New(logger.WithOutput(buf), logger.WithPrefix("[x] "))
		log.Info("msg")
		Expect(buf.String()).To(Equal("[x] INFO: msg\n"))
	})
})
