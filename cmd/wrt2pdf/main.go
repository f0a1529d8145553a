package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	cli "github.com/jawher/mow.cli"
	"github.com/kpauljoseph/wrt2pdf/internal/app"
	"github.com/kpauljoseph/wrt2pdf/internal/config"
	"github.com/kpauljoseph/wrt2pdf/internal/options"
	"github.com/kpauljoseph/wrt2pdf/internal/scanner"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"github.com/kpauljoseph/wrt2pdf/pkg/version"
)

func main() {
	var (
		raw       options.Raw
		req       app.Request
		pdfSet    bool
		textSet   bool
		runErr    error
		cliParser = cli.App(version.Name, "Create a PDF out of a plain text file")
	)

	cliParser.Version("v version", version.GetVersionInfo())
	cliParser.ErrorHandling = flag.ContinueOnError
	cliParser.Spec = "[OPTIONS] [PDF [TEXT]]"

	cliParser.BoolOptPtr(&raw.Force, "F force", false, "Overwrite existing file [pdf-to-create]")
	cliParser.StringPtr(&raw.InFile, cli.StringOpt{
		Name:      "i in-file",
		Desc:      "File to be converted. When no [pdf-to-create] is given <file-name> is used with .pdf suffix",
		SetByUser: &raw.InFileSet,
	})
	cliParser.StringPtr(&raw.Font, cli.StringOpt{
		Name:      "f font",
		Desc:      "Set the font to use by description, e.g. 'Hack,Bold,11'",
		SetByUser: &raw.FontSet,
	})
	cliParser.BoolOptPtr(&req.ListFonts, "L list-fonts", false, "List available fixed pitch fonts")
	cliParser.StringPtr(&raw.Margins, cli.StringOpt{
		Name:      "m margins",
		Value:     options.DefaultMargins,
		Desc:      "Set the page margins in millimeter as string 'left,right,top,bottom'",
		SetByUser: &raw.MarginsSet,
	})
	cliParser.StringPtr(&raw.PageSize, cli.StringOpt{
		Name:      "p page-size",
		Desc:      "Set the paper size by key, see --list-page-keys",
		SetByUser: &raw.PageSizeSet,
	})
	cliParser.StringPtr(&req.PageKeyFilter, cli.StringOpt{
		Name:      "P list-page-keys",
		Desc:      "List paper size keys and description containing the given filter",
		SetByUser: &req.ListPageKeys,
	})
	cliParser.BoolOptPtr(&raw.Landscape, "l landscape", false, "Use page in landscape orientation")
	cliParser.BoolOptPtr(&raw.Info, "I info", false, "Like a dry-run, shows settings and resulting page size in rows/cols")
	cliParser.BoolOptPtr(&raw.TestPage, "T test-page", false, "Generate a test page to verify intended settings, similar to -I")
	cliParser.BoolOptPtr(&req.LongHelp, "H long-help", false, "Show usage, examples and some more hints")

	configPath := cliParser.StringOpt("c config", "", "Read option defaults from a YAML file")
	fontDirs := cliParser.StringsOpt("font-dir", nil, "Additional directory to search for fonts")
	verbose := cliParser.BoolOpt("verbose", false, "Show what is going on")
	trace := cliParser.BoolOpt("trace", false, "Like --verbose, also report every font file looked at")

	pdfArg := cliParser.String(cli.StringArg{
		Name:      "PDF",
		Desc:      "The suffix .pdf will be added automatically when missing",
		SetByUser: &pdfSet,
	})
	textArg := cliParser.String(cli.StringArg{
		Name:      "TEXT",
		Desc:      "File to be converted. When not given stdin is used",
		SetByUser: &textSet,
	})

	cliParser.Action = func() {
		log := logger.New()
		log.SetVerbose(*verbose)
		if *trace {
			log.SetLevel(logger.LevelTrace)
		}

		cfg := config.Default()
		if *configPath != "" {
			loaded, err := config.Load(*configPath)
			if err != nil {
				runErr = fmt.Errorf("Error loading config: %w", err)
				return
			}
			cfg = loaded
		}

		if pdfSet {
			raw.Args = append(raw.Args, *pdfArg)
		}
		if textSet {
			raw.Args = append(raw.Args, *textArg)
		}
		req.Options = raw.WithDefaults(cfg)

		dirs := scanner.DefaultFontDirs(runtime.GOOS)
		dirs = append(dirs, cfg.FontDirs...)
		dirs = append(dirs, *fontDirs...)

		wrt := app.New(dirs,
			app.WithLogger(log),
			app.WithValidation(cfg.ShouldValidate()),
			app.WithUsage(cliParser.PrintHelp),
		)

		runErr = wrt.Run(context.Background(), req)
		if errors.Is(runErr, options.ErrUsage) {
			cliParser.PrintHelp()
		}
	}

	if err := cliParser.Run(os.Args); err != nil {
		os.Exit(1)
	}

	if runErr != nil {
		if !errors.Is(runErr, options.ErrUsage) {
			fmt.Fprintln(os.Stderr, runErr)
		}
		os.Exit(1)
	}
}
