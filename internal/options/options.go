package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/internal/config"
	"github.com/kpauljoseph/wrt2pdf/internal/pagesize"
	"github.com/kpauljoseph/wrt2pdf/pkg/models"
)

const (
	TestPageInput = "[-> Test Page <-]"
	TestPageName  = "wrt2pdf-test-page.pdf"
	NotYetSet     = "[not yet set]"
	StdinName     = "<stdin>"
)

var (
	ErrUsage          = errors.New("missing arguments")
	ErrFileNotFound   = errors.New("File not found")
	ErrInputNotFound  = errors.New("TXT file not found")
	ErrOutputExists   = errors.New("File already exist")
	ErrTooManyOutputs = errors.New("too many arguments")
)

// Raw holds the option values as they came from the command line.
type Raw struct {
	Args []string

	Force       bool
	InFile      string
	InFileSet   bool
	Font        string
	FontSet     bool
	Margins     string
	MarginsSet  bool
	PageSize    string
	PageSizeSet bool
	Landscape   bool
	Info        bool
	TestPage    bool
}

// WithDefaults fills every option that was not given on the command line
// from the config file.
func (r Raw) WithDefaults(cfg *config.Config) Raw {
	if cfg == nil {
		return r
	}
	if !r.FontSet && cfg.Font != "" {
		r.Font, r.FontSet = cfg.Font, true
	}
	if !r.MarginsSet && cfg.Margins != "" {
		r.Margins, r.MarginsSet = cfg.Margins, true
	}
	if !r.PageSizeSet && cfg.PageSize != "" {
		r.PageSize, r.PageSizeSet = cfg.PageSize, true
	}
	if cfg.Landscape {
		r.Landscape = true
	}
	return r
}

// Config is the validated configuration of one run.
type Config struct {
	Output   string
	Input    string
	DocName  string
	UseStdin bool

	Font            FontSpec
	FontOption      string
	FontOptionSet   bool
	Margins         models.Margins
	MarginOption    string
	MarginOptionSet bool
	Page            pagesize.Entry
	Orientation     models.Orientation

	Force    bool
	Info     bool
	TestPage bool
}

// InputName is what reports show for the content source.
func (c *Config) InputName() string {
	if c.Input == "" {
		return StdinName
	}
	return c.Input
}

// Normalize validates raw and resolves input and output paths.
func Normalize(raw Raw, catalog *pagesize.Catalog) (*Config, error) {
	if len(raw.Args) > 2 {
		return nil, fmt.Errorf("%w: %s", ErrTooManyOutputs, strings.Join(raw.Args[2:], " "))
	}

	cfg := &Config{
		Font:            FontSpec{Family: DefaultFontFamily, Size: DefaultFontSize},
		FontOption:      raw.Font,
		FontOptionSet:   raw.FontSet,
		MarginOption:    raw.Margins,
		MarginOptionSet: raw.MarginsSet,
		Force:           raw.Force,
		Info:            raw.Info,
		TestPage:        raw.TestPage,
	}

	page, err := catalog.Lookup(pagesize.DefaultKey)
	if raw.PageSizeSet {
		page, err = catalog.Lookup(raw.PageSize)
	}
	if err != nil {
		return nil, err
	}
	cfg.Page = page

	if raw.Landscape {
		cfg.Orientation = models.Landscape
	}

	if raw.FontSet {
		if cfg.Font, err = ParseFont(raw.Font); err != nil {
			return nil, err
		}
	}

	margins := raw.Margins
	if margins == "" {
		margins = DefaultMargins
	}
	if cfg.Margins, err = ParseMargins(margins); err != nil {
		return nil, err
	}

	if err := resolvePaths(cfg, raw); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolvePaths(cfg *Config, raw Raw) error {
	needed := 1
	if raw.Info {
		cfg.Output = NotYetSet
		needed = 0
	}

	if raw.TestPage {
		cfg.Input = TestPageInput
		cfg.Output = filepath.Join(os.TempDir(), TestPageName)
		return nil
	}

	if raw.InFileSet {
		path, err := canonical(raw.InFile)
		if err != nil {
			return fmt.Errorf("%w: '%s'", ErrFileNotFound, raw.InFile)
		}
		cfg.Input = path
		cfg.DocName = filepath.Base(path)
		cfg.Output = filepath.Join(filepath.Dir(path), baseName(path)+".pdf")
		needed = 0
	}

	if len(raw.Args) < needed {
		return ErrUsage
	}

	if len(raw.Args) > 0 {
		out, err := OutputPath(raw.Args[0])
		if err != nil {
			return err
		}
		cfg.Output = out

		// only explicit names are protected, a name derived from --in-file is not
		if _, err := os.Stat(out); err == nil && !raw.Force {
			return fmt.Errorf("%w: %s\nUse --force if you don't care", ErrOutputExists, out)
		}
	}

	if cfg.Input == "" && len(raw.Args) == 2 {
		path, err := canonical(raw.Args[1])
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInputNotFound, raw.Args[1])
		}
		cfg.Input = path
		cfg.DocName = filepath.Base(path)
	}

	cfg.UseStdin = cfg.Input == "" && len(raw.Args) == 1
	return nil
}

// OutputPath makes sure name ends with ".pdf". A name already ending with
// it is returned unchanged, otherwise its extension is replaced and the
// directory is made absolute.
func OutputPath(name string) (string, error) {
	if strings.HasSuffix(name, ".pdf") {
		return name, nil
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path %s: %w", name, err)
	}
	return filepath.Join(filepath.Dir(abs), baseName(abs)+".pdf"), nil
}

// baseName is the file name without its last extension.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", resolved)
	}
	return resolved, nil
}
