package app

import (
	"fmt"
	"io"

	"github.com/kpauljoseph/wrt2pdf/pkg/version"
)

// PrintLongHelp prints a banner, the option summary rendered by usage and
// then examples and hints. usage may be nil.
func PrintLongHelp(w io.Writer, usage func()) {
	me := version.Name
	fmt.Fprintf(w, "This is %s v%s\n", me, version.Version)
	if usage != nil {
		usage()
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  Create ./foo.pdf out of /some/where/bar on US Letter")
	fmt.Fprintf(w, "      %s -p letter foo /some/where/bar\n", me)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Make a PDF from this help text (funny line, huh?)")
	fmt.Fprintf(w, "      %s --long-help 2>&1 | %s %s-help\n", me, me, me)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Create /some/where/bar.pdf out of /some/where/bar.txt with a custom 10.5mm")
	fmt.Fprintln(w, "  left margin and 20mm top margin")
	fmt.Fprintf(w, "      %s --margins 10.5,,20  -i /some/where/bar.txt\n", me)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: You can omit margins, then is the default of 5mm used")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Use custom font and size by --font option")
	fmt.Fprintf(w, "      %s -f 'Source Code Pro,Light,11' -i foo.txt\n", me)
	fmt.Fprintf(w, "      %s -f 'Courier,Bold,10' -i foo.txt\n", me)
	fmt.Fprintf(w, "      %s -i foo.txt -f '10,Courier'\n", me)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: The first requests the font in style Light and size 11 points. The latter")
	fmt.Fprintln(w, "      two show that the parts of the description may appear in any order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Keep your preferred settings in a file")
	fmt.Fprintf(w, "      %s -c ~/.config/%s.yaml -i foo.txt\n", me, me)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Miscellaneous:")
	fmt.Fprintln(w, "  - The hard coded default paper is A4")
	fmt.Fprintln(w, "  - The hard coded default font is Hack in size 10 points, Courier is used when")
	fmt.Fprintln(w, "    Hack is not installed")
	fmt.Fprintln(w, "  - When using -i without [pdf-to-create] there is no override check done")
	fmt.Fprintln(w, "  - Only fonts with fixed pitch give correct calculations of maximum rows and")
	fmt.Fprintln(w, "    cols, -L lists them")
	fmt.Fprintln(w, "  - The key given by --page-size must match exactly but is case insensitive")
}
