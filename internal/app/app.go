package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/internal/fonts"
	"github.com/kpauljoseph/wrt2pdf/internal/geometry"
	"github.com/kpauljoseph/wrt2pdf/internal/loader"
	"github.com/kpauljoseph/wrt2pdf/internal/options"
	"github.com/kpauljoseph/wrt2pdf/internal/pagesize"
	"github.com/kpauljoseph/wrt2pdf/internal/pdf"
	"github.com/kpauljoseph/wrt2pdf/internal/testpage"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
)

// Request is one invocation: the terminal listing modes plus the raw
// options for everything else.
type Request struct {
	LongHelp      bool
	ListFonts     bool
	ListPageKeys  bool
	PageKeyFilter string
	Options       options.Raw
}

type App struct {
	stdin    io.Reader
	stdout   io.Writer
	catalog  *pagesize.Catalog
	fonts    *fonts.Provider
	renderer pdf.DocumentRenderer
	logger   *logger.Logger
	usage    func()
	validate bool
}

type Option func(*App)

func WithStdin(r io.Reader) Option {
	return func(a *App) {
		a.stdin = r
	}
}

func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithRenderer replaces the fpdf based renderer.
func WithRenderer(r pdf.DocumentRenderer) Option {
	return func(a *App) {
		a.renderer = r
	}
}

// WithUsage sets the function printing the option summary, usually the
// help of the command line parser.
func WithUsage(usage func()) Option {
	return func(a *App) {
		a.usage = usage
	}
}

// WithValidation turns the pdfcpu check of written files on or off.
func WithValidation(validate bool) Option {
	return func(a *App) {
		a.validate = validate
	}
}

// New returns an App searching fontDirs for font files.
func New(fontDirs []string, opts ...Option) *App {
	a := &App{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		catalog:  pagesize.New(),
		logger:   logger.New(),
		validate: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.renderer == nil {
		a.renderer = pdf.NewRenderer(a.validate, a.logger)
	}
	a.fonts = fonts.NewProvider(fontDirs, a.logger)
	return a
}

// Run executes exactly one mode. The order of the checks is the order of
// precedence between them.
func (a *App) Run(ctx context.Context, req Request) error {
	switch {
	case req.LongHelp:
		PrintLongHelp(a.stdout, a.usage)
		return nil
	case req.ListFonts:
		return a.listFonts(ctx)
	case req.ListPageKeys:
		a.listPageKeys(req.PageKeyFilter)
		return nil
	}

	cfg, err := options.Normalize(req.Options, a.catalog)
	if err != nil {
		return err
	}
	a.logger.Debug("Input: %s, output: %s", cfg.InputName(), cfg.Output)

	st, err := a.resolve(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Info || cfg.TestPage {
		a.printReport(cfg, st)
	}
	if cfg.Info {
		fmt.Fprintf(a.stdout, "In-File          : %s\n", cfg.InputName())
		fmt.Fprintf(a.stdout, "Out-File         : %s\n", cfg.Output)
		return st.geometryErr
	}

	if st.geometryErr != nil {
		return st.geometryErr
	}

	var lines []string
	switch {
	case cfg.TestPage:
		lines = a.testPage(cfg, st)
	case cfg.UseStdin:
		a.logger.Debug("Reading from stdin")
		lines, err = loader.Load(a.stdin)
	default:
		lines, err = loader.LoadFile(cfg.Input)
	}
	if err != nil {
		return err
	}

	if !st.face.FixedPitch && !cfg.TestPage {
		a.logger.Warn("Font %s has no fixed pitch, lines may wrap early or late", st.face)
	}

	_, err = a.renderer.Render(ctx, pdf.Document{
		Lines:       lines,
		Title:       cfg.DocName,
		Face:        st.face,
		Size:        float64(cfg.Font.Size),
		Orientation: cfg.Orientation,
		Layout:      st.layout,
	}, cfg.Output)
	if err != nil {
		return err
	}

	if cfg.TestPage {
		fmt.Fprintf(a.stdout, "Test page written to: %s\n", cfg.Output)
	}
	return nil
}

// setup is the outcome of font and page geometry resolution.
type setup struct {
	face        fonts.Face
	layout      geometry.Layout
	geometryErr error
}

// resolve picks the font and computes the page capacity. A missing print
// area is kept in geometryErr so the info report is printed before failing.
func (a *App) resolve(ctx context.Context, cfg *options.Config) (setup, error) {
	res, err := a.fonts.Resolve(ctx, cfg.Font.Family, cfg.Font.Style)
	if err != nil {
		return setup{}, err
	}
	if res.Substituted {
		a.logger.Warn("Requested font %s is not available, using %s", requested(cfg.Font), res.Face)
	}

	metrics, err := fonts.Measure(res.Face, float64(cfg.Font.Size))
	if err != nil {
		return setup{}, err
	}
	a.logger.Debug("Advance of %q: %.3fpt, line height: %.3fpt", fonts.ReferenceChar, metrics.Advance, metrics.LineHeight)

	layout, err := geometry.Resolve(cfg.Page.Dimensions, cfg.Orientation, cfg.Margins, metrics)
	if err != nil && !errors.Is(err, geometry.ErrNoPrintArea) {
		return setup{}, err
	}
	return setup{face: res.Face, layout: layout, geometryErr: err}, nil
}

func (a *App) printReport(cfg *options.Config, s setup) {
	fixed := "NO"
	if s.face.FixedPitch {
		fixed = "yes"
	}
	w := a.stdout
	fmt.Fprintf(w, "Requested Font   : %s\n", cfg.Font.Family)
	fmt.Fprintf(w, "Req Font Style   : %s\n", cfg.Font.Style)
	fmt.Fprintf(w, "Req Font Size    : %d\n", cfg.Font.Size)
	fmt.Fprintf(w, "Used Font        : %s\n", s.face.Family)
	fmt.Fprintf(w, "Used Style       : %s\n", s.face.Style)
	fmt.Fprintf(w, "Used Size        : %d\n", cfg.Font.Size)
	fmt.Fprintf(w, "Has Fixed Pitch  : %s\n", fixed)
	fmt.Fprintf(w, "Page Size        : %s (%s)\n", cfg.Page.Key, cfg.Page.Description())
	fmt.Fprintf(w, "Page Orientation : %s\n", cfg.Orientation)
	fmt.Fprintf(w, "Max Lines        : %d\n", s.layout.Capacity.MaxLines)
	fmt.Fprintf(w, "Max Columns      : %d\n", s.layout.Capacity.MaxColumns)
}

func (a *App) testPage(cfg *options.Config, s setup) []string {
	page := testpage.Generate(s.layout.Capacity, testpage.Details{
		MarginOption:    cfg.MarginOption,
		MarginOptionSet: cfg.MarginOptionSet,
		FontOption:      cfg.FontOption,
		FontOptionSet:   cfg.FontOptionSet,
		UsedFamily:      s.face.Family,
		UsedStyle:       s.face.Style,
		UsedSize:        cfg.Font.Size,
		FixedPitch:      s.face.FixedPitch,
	})
	for _, w := range page.Warnings {
		a.logger.Warn("%s", w)
	}
	return page.Lines
}

func (a *App) listFonts(ctx context.Context) error {
	families, err := a.fonts.FixedPitchFamilies(ctx)
	if err != nil {
		return err
	}

	sizes := make([]string, len(fonts.StandardSizes))
	for i, s := range fonts.StandardSizes {
		sizes[i] = strconv.Itoa(s)
	}
	sizeList := strings.Join(sizes, " ")

	for _, fam := range families {
		fmt.Fprintln(a.stdout, fam.Name)
		for _, style := range fam.Styles {
			fmt.Fprintf(a.stdout, "  %s : %s\n", style, sizeList)
		}
	}
	return nil
}

func (a *App) listPageKeys(filter string) {
	for _, e := range a.catalog.Filter(filter) {
		fmt.Fprintln(a.stdout, pagesize.Format(e))
	}
}

func requested(f options.FontSpec) string {
	if f.Style == "" {
		return f.Family
	}
	return f.Family + " " + f.Style
}
