package fonts

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/internal/scanner"
	"github.com/kpauljoseph/wrt2pdf/pkg/logger"
	"golang.org/x/text/language"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/hmtx"
	"seehuhn.de/go/sfnt/name"
	"seehuhn.de/go/sfnt/os2"
	"seehuhn.de/go/sfnt/post"
)

// StandardSizes is what --list-fonts reports for scalable fonts.
var StandardSizes = []int{6, 7, 8, 9, 10, 11, 12, 14, 16, 18, 20, 22, 24, 26, 28, 36, 48, 72}

// Family groups the faces sharing a family name.
type Family struct {
	Name       string
	Styles     []string
	FixedPitch bool
}

// Resolution is the outcome of a font request.
type Resolution struct {
	Face Face
	// Substituted is set when the requested family or style was not
	// available and another face was picked instead.
	Substituted bool
}

type Provider struct {
	scanner *scanner.DirectoryScanner
	dirs    []string
	logger  *logger.Logger
}

func NewProvider(dirs []string, log *logger.Logger) *Provider {
	return &Provider{
		scanner: scanner.New(log),
		dirs:    dirs,
		logger:  log,
	}
}

// Resolve picks the face for a family and optional style. Font files
// whose name does not mention the family are not opened at all.
func (p *Provider) Resolve(ctx context.Context, family, style string) (Resolution, error) {
	paths, err := p.scanner.FindFonts(ctx, p.dirs...)
	if err != nil {
		return Resolution{}, err
	}

	family = stripFoundry(family)

	var candidates []Face
	key := squash(family)
	for _, path := range paths {
		if key == "" || !strings.Contains(squash(filepath.Base(path)), key) {
			continue
		}
		face, err := readFace(path)
		if err != nil {
			p.logger.Trace("Skipping font %s: %v", path, err)
			continue
		}
		if strings.EqualFold(face.Family, family) {
			candidates = append(candidates, face)
		}
	}

	if len(candidates) > 0 {
		return pickStyle(candidates, style), nil
	}

	if core, ok := findCore(family); ok {
		face := core.face(style)
		return Resolution{
			Face:        face,
			Substituted: style != "" && !strings.EqualFold(face.Style, style),
		}, nil
	}

	p.logger.Debug("Font %q not found, using Courier", family)
	courier, _ := findCore("Courier")
	return Resolution{Face: courier.face(style), Substituted: true}, nil
}

// Families returns all families found in the font directories followed by
// the PDF core fonts, sorted by name.
func (p *Provider) Families(ctx context.Context) ([]Family, error) {
	paths, err := p.scanner.FindFonts(ctx, p.dirs...)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*Family)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		face, err := readFace(path)
		if err != nil {
			p.logger.Trace("Skipping font %s: %v", path, err)
			continue
		}
		fam, ok := byName[face.Family]
		if !ok {
			fam = &Family{Name: face.Family, FixedPitch: true}
			byName[face.Family] = fam
		}
		fam.FixedPitch = fam.FixedPitch && face.FixedPitch
		fam.Styles = appendUnique(fam.Styles, face.Style)
	}

	families := make([]Family, 0, len(byName)+len(coreFonts))
	for _, fam := range byName {
		families = append(families, *fam)
	}
	for _, c := range coreFonts {
		if c.name != c.family {
			continue
		}
		if _, ok := byName[c.family]; ok {
			continue
		}
		families = append(families, Family{Name: c.family, Styles: c.styles(), FixedPitch: c.fixedPitch})
	}

	sort.Slice(families, func(i, j int) bool {
		return strings.ToLower(families[i].Name) < strings.ToLower(families[j].Name)
	})
	return families, nil
}

// FixedPitchFamilies is Families restricted to monospaced fonts.
func (p *Provider) FixedPitchFamilies(ctx context.Context) ([]Family, error) {
	all, err := p.Families(ctx)
	if err != nil {
		return nil, err
	}
	var fixed []Family
	for _, fam := range all {
		if fam.FixedPitch {
			fixed = append(fixed, fam)
		}
	}
	return fixed, nil
}

// readFace decodes the naming and metric tables of a font file. The layout
// tables (GSUB, GPOS) are not touched, they are neither needed here nor
// readable for every font found on real systems.
func readFace(path string) (face Face, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Face{}, err
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			face, err = Face{}, fmt.Errorf("failed to parse font: %v", r)
		}
	}()

	dir, err := header.Read(f)
	if err != nil {
		return Face{}, fmt.Errorf("failed to parse font: %w", err)
	}

	headFd, err := dir.TableReader(f, "head")
	if err != nil {
		return Face{}, err
	}
	headInfo, err := head.Read(headFd)
	if err != nil {
		return Face{}, fmt.Errorf("head table: %w", err)
	}
	if headInfo.UnitsPerEm == 0 {
		return Face{}, fmt.Errorf("font has no units per em")
	}

	nameData, err := dir.ReadTableBytes(f, "name")
	if err != nil {
		return Face{}, err
	}
	names, err := name.Decode(nameData)
	if err != nil {
		return Face{}, fmt.Errorf("name table: %w", err)
	}
	family, style := familyAndStyle(names)
	if family == "" {
		return Face{}, fmt.Errorf("font has no family name")
	}

	hheaData, err := dir.ReadTableBytes(f, "hhea")
	if err != nil {
		return Face{}, err
	}
	hmtxData, err := dir.ReadTableBytes(f, "hmtx")
	if err != nil {
		return Face{}, err
	}
	metrics, err := hmtx.Decode(hheaData, hmtxData)
	if err != nil {
		return Face{}, fmt.Errorf("hmtx table: %w", err)
	}
	ascent, descent := metrics.Ascent, metrics.Descent

	if os2Fd, err := dir.TableReader(f, "OS/2"); err == nil {
		if info, err := os2.Read(os2Fd); err == nil && info.Ascent != 0 {
			ascent, descent = info.Ascent, info.Descent
		}
	}

	fixed := equalWidths(metrics.Widths)
	if postFd, err := dir.TableReader(f, "post"); err == nil {
		if info, err := post.Read(postFd); err == nil && info.IsFixedPitch {
			fixed = true
		}
	}

	upm := float64(headInfo.UnitsPerEm)
	return Face{
		Family:     family,
		Style:      style,
		Path:       path,
		FixedPitch: fixed,
		Ascent:     math.Abs(float64(ascent)) / upm,
		Descent:    math.Abs(float64(descent)) / upm,
	}, nil
}

// familyAndStyle prefers the typographic names, which group weights like
// "Light" under one family, over the legacy four-style names.
func familyAndStyle(names *name.Info) (string, string) {
	table, confidence := names.Windows.Choose(language.AmericanEnglish)
	if mac, macConfidence := names.Mac.Choose(language.AmericanEnglish); table == nil || confidence < language.High && macConfidence > confidence {
		table = mac
	}
	if table == nil {
		return "", ""
	}

	family, style := table.Family, table.Subfamily
	if table.TypographicFamily != "" {
		family = table.TypographicFamily
		if table.TypographicSubfamily != "" {
			style = table.TypographicSubfamily
		}
	}
	if style == "" {
		style = "Regular"
	}
	return family, style
}

// equalWidths reports whether all glyphs with a width share the same one.
func equalWidths(widths []funit.Int16) bool {
	var width funit.Int16
	for _, w := range widths {
		switch {
		case w == 0:
		case width == 0:
			width = w
		case w != width:
			return false
		}
	}
	return width != 0
}

// regularStyles are the names fonts use for their upright, normal weight face.
var regularStyles = []string{"Regular", "Book", "Normal", "Roman"}

func isRegular(style string) bool {
	for _, r := range regularStyles {
		if strings.EqualFold(style, r) {
			return true
		}
	}
	return false
}

func pickStyle(faces []Face, style string) Resolution {
	sort.Slice(faces, func(i, j int) bool {
		return faces[i].Path < faces[j].Path
	})
	if style != "" {
		for _, f := range faces {
			if strings.EqualFold(f.Style, style) {
				return Resolution{Face: f}
			}
		}
	}
	for _, f := range faces {
		if isRegular(f.Style) {
			return Resolution{Face: f, Substituted: style != "" && !isRegular(style)}
		}
	}
	return Resolution{Face: faces[0], Substituted: style != ""}
}

// stripFoundry removes a trailing "[Foundry]" from a family name.
func stripFoundry(family string) string {
	if i := strings.Index(family, "["); i > 0 {
		return strings.TrimSpace(family[:i])
	}
	return family
}

// squash lower-cases s and drops separators, so "Source Code Pro" and
// "SourceCodePro-Light.ttf" can be compared.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
