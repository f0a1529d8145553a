package testpage

import (
	"fmt"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/pkg/models"
)

const (
	WarnVeryLimited = "Print area very limited, the test page may look strange or even bad"
	WarnLimited     = "Print area limited, skip font/option info"

	// minInfoLines is the smallest page that gets the font/option lines.
	minInfoLines = 8
	// minWideInfoColumns is the narrowest wide banner page that gets them.
	minWideInfoColumns = 20
	// minBannerGap is how much wider than the banner a page must be for
	// the single line banner.
	minBannerGap = 6
)

// Details are the settings the test page reports.
type Details struct {
	MarginOption    string
	MarginOptionSet bool
	FontOption      string
	FontOptionSet   bool
	UsedFamily      string
	UsedStyle       string
	UsedSize        int
	FixedPitch      bool
}

// Page is a generated test page.
type Page struct {
	Lines    []string
	Warnings []string
}

// Generate fills exactly one page of the given capacity with lines that
// show the capacity itself. The first line is a banner with markers in the
// first and last column, the last line is marked as such.
func Generate(capacity models.PageCapacity, d Details) Page {
	g := &generator{cols: capacity.MaxColumns, rows: capacity.MaxLines, next: 2}

	if g.cols < 3 || g.rows < 2 {
		g.warn(WarnVeryLimited)
	}

	banner := fmt.Sprintf(" %d char/line, %d lines/page ", g.cols, g.rows)
	gap := g.cols - runeLen(banner)

	if gap < minBannerGap {
		first := truncate(fmt.Sprintf("< 1  %d char/line", g.cols), g.cols-2)
		g.add(first + padLeft(" >", g.cols-runeLen(first)))
		g.add(fmt.Sprintf("  2  %d lines/page", g.rows))
		g.next = 3

		if g.rows < minInfoLines {
			g.warn(WarnLimited)
		} else {
			g.details(d, narrowLabels)
		}
	} else {
		head := padRight("< 1 ", gap/2) + banner
		g.add(head + padLeft(" >", g.cols-runeLen(head)))

		if g.rows < minInfoLines || g.cols < minWideInfoColumns {
			g.warn(WarnLimited)
		} else {
			g.details(d, wideLabels)
		}
	}

	for ; g.next < g.rows; g.next++ {
		g.add(fmt.Sprintf("  %d", g.next))
	}

	if g.next == g.rows {
		marker := fmt.Sprintf("< %d", g.rows)
		width := g.cols - runeLen(marker)
		g.add(marker + padLeft(right("last line >", width), width))
	}

	// the narrow banner alone takes two lines
	if len(g.lines) > g.rows {
		g.lines = g.lines[:max(g.rows, 0)]
	}

	return Page{Lines: g.lines, Warnings: g.warnings}
}

type labels struct {
	margin, font, family, style, size, noFixedPitch string
}

var wideLabels = labels{
	margin:       "Margin Opt: ",
	font:         "Font Opt  : ",
	family:       "Used Font : ",
	style:        "Used Style: ",
	size:         "Used Size : ",
	noFixedPitch: "*** FONT HAS NO FIXED PITCH ***",
}

var narrowLabels = labels{
	margin:       "MO: ",
	font:         "FO: ",
	family:       "Ft: ",
	style:        "St: ",
	size:         "Si: ",
	noFixedPitch: "* NO FIXED PITCH *",
}

type generator struct {
	cols, rows int
	next       int
	lines      []string
	warnings   []string
}

// add appends a line cut to the page width.
func (g *generator) add(line string) {
	g.lines = append(g.lines, truncate(line, g.cols))
}

func (g *generator) warn(msg string) {
	g.warnings = append(g.warnings, msg)
}

func (g *generator) numbered(text string) {
	g.add(fmt.Sprintf("  %d  %s", g.next, text))
	g.next++
}

func (g *generator) details(d Details, l labels) {
	if d.MarginOptionSet {
		g.numbered(l.margin + d.MarginOption)
	}
	if d.FontOptionSet {
		g.numbered(l.font + d.FontOption)
	}
	g.numbered(l.family + d.UsedFamily)
	g.numbered(l.style + d.UsedStyle)
	g.numbered(fmt.Sprintf("%s%d", l.size, d.UsedSize))
	if !d.FixedPitch {
		g.numbered(l.noFixedPitch)
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

// truncate keeps at most n characters; n below zero yields "".
func truncate(s string, n int) string {
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// right returns the last n characters, or all of s when n is out of range.
func right(s string, n int) string {
	r := []rune(s)
	if n < 0 || n >= len(r) {
		return s
	}
	return string(r[len(r)-n:])
}

func padLeft(s string, width int) string {
	if n := width - runeLen(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - runeLen(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
