package fonts

import "strings"

// Vertical metrics of the standard PDF fonts, taken from the Adobe AFM
// files (Ascender and Descender per 1000 units).
type coreFont struct {
	name       string
	family     string
	ascent     float64
	descent    float64
	fixedPitch bool
	italicWord string
}

var coreFonts = []coreFont{
	{name: "Courier", family: "Courier", ascent: 629, descent: 157, fixedPitch: true, italicWord: "Oblique"},
	{name: "Helvetica", family: "Helvetica", ascent: 718, descent: 207, italicWord: "Oblique"},
	{name: "Arial", family: "Helvetica", ascent: 718, descent: 207, italicWord: "Oblique"},
	{name: "Times", family: "Times", ascent: 683, descent: 217, italicWord: "Italic"},
}

func findCore(family string) (coreFont, bool) {
	for _, c := range coreFonts {
		if strings.EqualFold(c.name, family) {
			return c, true
		}
	}
	return coreFont{}, false
}

// styles lists the four styles every core family provides.
func (c coreFont) styles() []string {
	return []string{"Regular", "Bold", c.italicWord, "Bold " + c.italicWord}
}

func (c coreFont) face(style string) Face {
	name := "Regular"
	switch coreStyle(style) {
	case "B":
		name = "Bold"
	case "I":
		name = c.italicWord
	case "BI":
		name = "Bold " + c.italicWord
	}
	return Face{
		Family:     c.family,
		Style:      name,
		FixedPitch: c.fixedPitch,
		Ascent:     c.ascent / 1000,
		Descent:    c.descent / 1000,
		coreName:   strings.ToLower(c.family),
	}
}
