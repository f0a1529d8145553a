package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kpauljoseph/wrt2pdf/internal/inspect"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"github.com/kpauljoseph/wrt2pdf/pkg/version"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = version.Name + "-inspect"
	app.Version = version.Version
	app.Usage = "read back PDFs written by " + version.Name
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, V",
			Usage: "show verbose logging",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "show timestamped trace logging",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "show",
			Usage:     "print page sizes and the text of every page",
			ArgsUsage: "<file.pdf>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "no-text",
					Usage: "only print page sizes",
				},
			},
			Action: show,
		},
		{
			Name:      "compare",
			Usage:     "compare two PDFs page by page",
			ArgsUsage: "<a.pdf> <b.pdf>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "images",
					Usage: "also compare rendered page images",
				},
			},
			Action: compare,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) *logger.Logger {
	opts := []logger.Option{logger.WithPrefix("[" + version.Name + "-inspect] ")}
	if c.GlobalBool("trace") {
		opts = append(opts, logger.WithFlags(log.Ltime|log.Lmicroseconds))
	}
	l := logger.New(opts...)
	l.SetVerbose(c.GlobalBool("verbose"))
	if c.GlobalBool("trace") {
		l.SetLevel(logger.LevelTrace)
	}
	return l
}

func show(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("Please provide exactly one PDF file", 1)
	}

	report, err := inspect.New(false, newLogger(c)).Inspect(c.Args().First())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Printf("Analyzing PDF: %s\n", report.Path)
	for _, page := range report.Pages {
		fmt.Printf("\nPage %d:\n", page.Number)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points (%s)\n",
			page.Dimensions.Width, page.Dimensions.Height, page.Dimensions)
		if !c.Bool("no-text") {
			fmt.Printf("\n%s\n", page.Text)
		}
	}
	return nil
}

func compare(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError("Usage: compare a.pdf b.pdf", 1)
	}

	l := newLogger(c)
	l.Info("Comparing %s with %s", c.Args().Get(0), c.Args().Get(1))

	inspector := inspect.New(c.Bool("images"), l)
	a, err := inspector.Inspect(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	b, err := inspector.Inspect(c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	diffs := inspect.Compare(a, b)
	if len(diffs) == 0 {
		fmt.Printf("PDFs match: %d page(s)\n", len(a.Pages))
		return nil
	}
	for _, d := range diffs {
		fmt.Println(d)
	}
	return cli.NewExitError(fmt.Sprintf("%d difference(s) found", len(diffs)), 1)
}
